package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/carlmjohnson/versioninfo"
	"github.com/hashicorp/go-cleanhttp"
)

// Client executes requests against one API host. It is immutable after New
// and safe for concurrent use; calls share only the configured base URL,
// headers and transport.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]*string
	userAgent  string
	logger     Logger
	parseError ErrorParser
	metrics    *MetricsCollector
}

// New constructs a Client from the provided functional options.
func New(options ...Option) *Client {
	c := &Client{
		httpClient: defaultHTTPClient(),
		headers:    make(map[string]*string),
		userAgent:  "restbase/" + versioninfo.Short(),
		logger:     nopLogger{},
	}

	for _, option := range options {
		option(c)
	}

	if c.parseError == nil {
		log := c.logger
		c.parseError = func(body []byte, resp *http.Response) *APIError {
			return parseErrorResponse(body, resp, log)
		}
	}

	return c
}

// defaultHTTPClient builds a pooled transport with a conservative timeout.
// The transport is configured by net/http semantics to treat every HTTP
// status as a response; only genuine network-level failures surface as
// errors from Do.
func defaultHTTPClient() *http.Client {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = 30 * time.Second
	return client
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SendRequest executes one API call and decodes the successful response
// body into out (skipped when out is nil; *[]byte and *json.RawMessage
// receive the raw body). Any failure, transport-level or a non-2xx status,
// is returned as a *APIError produced by the client's ErrorParser; the
// caller never receives a partial body alongside an error. Invalid inputs
// rejected before dispatch, such as an unencodable body or a malformed
// URL, return plain errors since no exchange took place.
func (c *Client) SendRequest(ctx context.Context, method, path string, opts RequestOptions, out any) error {
	header := c.requestHeaders(opts.Header)

	var body io.Reader
	if opts.Body != nil {
		raw, err := json.Marshal(opts.Body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		if header.Get("Content-Type") == "" {
			header.Set("Content-Type", "application/json")
		}
		body = newProgressReader(bytes.NewReader(raw), int64(len(raw)), opts.OnUploadProgress)
	}

	return c.dispatch(ctx, method, path, header, opts.Query, opts.QueryStruct, body, opts.OnDownloadProgress, out)
}

// Send is a generic convenience wrapper around Client.SendRequest for
// callers that prefer a typed return value over an out pointer.
func Send[T any](ctx context.Context, c *Client, method, path string, opts RequestOptions) (T, error) {
	var out T
	if err := c.SendRequest(ctx, method, path, opts, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// dispatch is the single pipeline behind SendRequest and SendFiles: build
// the URL, hand the request to the transport, classify the outcome, and
// route failures through the error parser. It has exactly two terminal
// states per call: decoded success or *APIError.
func (c *Client) dispatch(ctx context.Context, method, path string, header http.Header, params map[string]string, queryStruct any, body io.Reader, onDownload ProgressFunc, out any) error {
	start := time.Now()
	if c.metrics != nil {
		c.metrics.RecordRequestStart(method)
		defer c.metrics.RecordRequestEnd(method)
	}

	fullURL, err := c.buildURL(path, params, queryStruct)
	if err != nil {
		return fmt.Errorf("building request URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header = header

	c.logger.Debug("dispatching request", "method", method, "url", fullURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("transport failure", "method", method, "url", fullURL, "error", err)
		if c.metrics != nil {
			c.metrics.RecordError("Network", method)
			c.metrics.RecordRequest(method, 0, time.Since(start))
		}
		return c.parseError(nil, nil)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(newProgressReader(resp.Body, resp.ContentLength, onDownload))
	if err != nil {
		// The connection died mid-body; treat it like any other
		// transport-level failure.
		c.logger.Warn("reading response body", "method", method, "url", fullURL, "error", err)
		if c.metrics != nil {
			c.metrics.RecordError("Network", method)
			c.metrics.RecordRequest(method, resp.StatusCode, time.Since(start))
		}
		return c.parseError(nil, nil)
	}

	if c.metrics != nil {
		c.metrics.RecordRequest(method, resp.StatusCode, time.Since(start))
	}

	if !IsOkay(resp.StatusCode) {
		c.logger.Debug("request failed", "method", method, "url", fullURL, "status", resp.StatusCode)
		if c.metrics != nil {
			class := "Client"
			if resp.StatusCode >= 500 {
				class = "Server"
			}
			c.metrics.RecordError(class, method)
		}
		return c.parseError(respBody, resp)
	}

	c.logger.Debug("request succeeded", "method", method, "url", fullURL, "status", resp.StatusCode, "duration", time.Since(start))

	return decodeResponse(respBody, out)
}

// requestHeaders materializes the client's default headers, dropping
// nil-valued entries, then applies per-request additions on top.
func (c *Client) requestHeaders(extra map[string]string) http.Header {
	header := BuildHeaders(c.headers, c.logger)
	if c.metrics != nil {
		for key, value := range c.headers {
			if value == nil {
				c.metrics.RecordDroppedHeader(key)
			}
		}
	}
	if header.Get("User-Agent") == "" {
		header.Set("User-Agent", c.userAgent)
	}
	for key, val := range extra {
		header.Set(key, val)
	}
	return header
}

func decodeResponse(body []byte, out any) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	switch target := out.(type) {
	case *[]byte:
		*target = body
		return nil
	case *json.RawMessage:
		*target = json.RawMessage(body)
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}
