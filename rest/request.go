package rest

import (
	"io"
	"net/http"
	"net/url"

	"github.com/google/go-querystring/query"
)

// Supported request methods.
const (
	MethodGet    = http.MethodGet
	MethodPost   = http.MethodPost
	MethodPut    = http.MethodPut
	MethodDelete = http.MethodDelete
)

// RequestOptions is the per-call bundle for SendRequest. The zero value is
// a bare request. Options are consumed by the call that receives them and
// must not be reused concurrently when they hold readers or callbacks.
type RequestOptions struct {
	// Body, when non-nil, is JSON-encoded and sent with a
	// "Content-Type: application/json" header unless one is already set.
	Body any
	// Query adds string key/value query parameters.
	Query map[string]string
	// QueryStruct, when non-nil, is encoded with go-querystring `url` tags
	// and merged into the query. Query entries win on key collisions.
	QueryStruct any
	// Header adds or overrides headers for this request only.
	Header map[string]string

	OnUploadProgress   ProgressFunc
	OnDownloadProgress ProgressFunc
}

// File is one multipart upload payload: the form field's file name and the
// content reader.
type File struct {
	Name   string
	Reader io.Reader
}

// FileRequestOptions is the per-call bundle for SendFiles.
type FileRequestOptions struct {
	// Files maps form field names to upload payloads. Entries that are not
	// genuine file payloads (empty field name or nil reader) are skipped
	// with a diagnostic; the request still proceeds.
	Files map[string]File
	// Fields adds plain form fields alongside the files.
	Fields map[string]string
	Query  map[string]string
	Header map[string]string

	OnUploadProgress   ProgressFunc
	OnDownloadProgress ProgressFunc
}

// buildURL joins the client's base URL with the request path and attaches
// query parameters.
func (c *Client) buildURL(path string, params map[string]string, queryStruct any) (string, error) {
	u, err := url.Parse(JoinURIPaths(c.baseURL, path))
	if err != nil {
		return "", err
	}

	values := u.Query()
	if queryStruct != nil {
		structValues, err := query.Values(queryStruct)
		if err != nil {
			return "", err
		}
		for key, vals := range structValues {
			for _, val := range vals {
				values.Add(key, val)
			}
		}
	}
	for key, val := range params {
		values.Set(key, val)
	}
	if len(values) > 0 {
		u.RawQuery = values.Encode()
	}
	return u.String(), nil
}
