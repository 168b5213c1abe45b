package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
)

// SendFiles executes a multipart/form-data POST through the same pipeline
// as SendRequest. The JSON Content-Type is never applied here; the
// multipart writer supplies the boundary-carrying Content-Type itself.
// Entries in opts.Files that are not genuine file payloads are skipped
// with a diagnostic and the request proceeds without them.
func (c *Client) SendFiles(ctx context.Context, path string, opts FileRequestOptions, out any) error {
	header := c.requestHeaders(opts.Header)
	header.Del("Content-Type")

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	for name, value := range opts.Fields {
		if err := form.WriteField(name, value); err != nil {
			return fmt.Errorf("writing form field %q: %w", name, err)
		}
	}

	for name, file := range opts.Files {
		if name == "" || file.Reader == nil {
			c.logger.Warn("skipping invalid file payload", "field", name)
			continue
		}
		filename := file.Name
		if filename == "" {
			filename = name
		}
		part, err := form.CreateFormFile(name, filename)
		if err != nil {
			return fmt.Errorf("building multipart form: %w", err)
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return fmt.Errorf("reading file payload %q: %w", name, err)
		}
	}

	if err := form.Close(); err != nil {
		return fmt.Errorf("finalizing multipart form: %w", err)
	}

	header.Set("Content-Type", form.FormDataContentType())
	body := newProgressReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()), opts.OnUploadProgress)

	return c.dispatch(ctx, MethodPost, path, header, opts.Query, nil, body, opts.OnDownloadProgress, out)
}
