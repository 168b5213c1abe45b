// Package rest is an extensible base client for building typed HTTP API
// clients. It standardizes request dispatch, header composition, URL-path
// joining, and error normalization so concrete API clients only need to
// declare their endpoints.
//
// This package provides:
//   - A configurable Client with functional options
//   - JSON request/response handling with a single dispatch pipeline
//   - Multipart file uploads via SendFiles
//   - A uniform APIError produced from heterogeneous server error bodies
//   - A swappable ErrorParser for non-standard error shapes
//
// Basic Usage:
//
//	client := rest.New(
//	    rest.WithBaseURL("https://api.example.com"),
//	    rest.WithHeader("Authorization", "Bearer token"),
//	)
//
//	var user User
//	err := client.SendRequest(ctx, rest.MethodGet, "/users/42", rest.RequestOptions{}, &user)
//	if err != nil {
//	    var apiErr *rest.APIError
//	    if errors.As(err, &apiErr) && apiErr.Unauthorized {
//	        // re-authenticate
//	    }
//	}
//
// Or with the generic helper:
//
//	user, err := rest.Send[User](ctx, client, rest.MethodGet, "/users/42", rest.RequestOptions{})
//
// Error Normalization:
//
// Every failure, whether a network-level error or a non-2xx status, is
// surfaced as a *APIError. Clients talking to servers with non-standard
// error bodies replace the parser wholesale:
//
//	client := rest.New(
//	    rest.WithBaseURL("https://api.example.com"),
//	    rest.WithErrorParser(func(body []byte, resp *http.Response) *rest.APIError {
//	        // custom parsing, must always return a non-nil *APIError
//	    }),
//	)
//
// Thread Safety:
//
// Client is immutable after New and safe for concurrent use. Any number of
// SendRequest/SendFiles calls may run in parallel on the same instance.
package rest
