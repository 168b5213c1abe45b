package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrorParser converts a raw response body and transport response into an
// APIError. It must always return a non-nil value synchronously and never
// panic. resp is nil when no response was obtained at all. Supplying a
// custom parser via WithErrorParser replaces default parsing wholesale.
type ErrorParser func(body []byte, resp *http.Response) *APIError

// ParseErrorResponse is the default ErrorParser.
//
// With no transport response it returns a 503 "Service Unavailable" error
// wrapping ErrNoResponse. Otherwise the error carries the response's status
// and status text, and the body is probed for the conventional shapes:
//
//   - a details array of {key, errors} entries: the message becomes the
//     join of every entry's errors and Details is populated
//   - a message string field: used as the message
//   - a plain non-JSON body: used verbatim as the message
//
// Malformed JSON is swallowed: the defaults are kept and a diagnostic is
// emitted.
func ParseErrorResponse(body []byte, resp *http.Response) *APIError {
	return parseErrorResponse(body, resp, nopLogger{})
}

func parseErrorResponse(body []byte, resp *http.Response, log Logger) *APIError {
	if resp == nil {
		apiErr := NewAPIError(http.StatusServiceUnavailable, "Service Unavailable")
		apiErr.cause = ErrNoResponse
		return apiErr
	}

	apiErr := NewAPIError(resp.StatusCode, statusText(resp))

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return apiErr
	}

	// A body that does not even look like JSON is taken as the message
	// verbatim rather than silently discarded.
	if trimmed[0] != '{' && trimmed[0] != '[' && trimmed[0] != '"' {
		apiErr.Message = string(trimmed)
		return apiErr
	}

	if !gjson.ValidBytes(trimmed) {
		log.Warn("failed to parse error response body", "status", resp.StatusCode, "bytes", len(trimmed))
		return apiErr
	}

	parsed := gjson.ParseBytes(trimmed)

	if details := parsed.Get("details"); details.IsArray() {
		var fields []FieldError
		if err := json.Unmarshal([]byte(details.Raw), &fields); err == nil && hasFieldErrors(fields) {
			messages := make([]string, 0, len(fields))
			for _, field := range fields {
				messages = append(messages, strings.Join(field.Errors, ", "))
			}
			apiErr.Message = strings.Join(messages, ", ")
			apiErr.Details = fields
			apiErr.RawDetails = json.RawMessage(details.Raw)
			return apiErr
		}
		log.Warn("error response details have unexpected shape", "status", resp.StatusCode)
	}

	if message := parsed.Get("message"); message.Type == gjson.String && message.Str != "" {
		apiErr.Message = message.Str
	} else if parsed.Type == gjson.String && parsed.Str != "" {
		// JSON-encoded bare string body.
		apiErr.Message = parsed.Str
	}
	return apiErr
}

// hasFieldErrors reports whether a decoded details sequence actually
// carries the {key, errors} shape rather than some other array payload.
func hasFieldErrors(fields []FieldError) bool {
	if len(fields) == 0 {
		return false
	}
	for _, field := range fields {
		if field.Key != "" || len(field.Errors) > 0 {
			return true
		}
	}
	return false
}

// statusText extracts the text portion of a response status line, falling
// back to the standard text for the code.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
