// Package transport provides uploader.Transport implementations: a plain
// HTTP PUT transport and an S3 (MinIO-compatible) transport.
package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/mkravets/uploadhub/internal/uploader"
)

// HTTP uploads the payload with a single PUT request to the request URL.
// Cancelling the upload context aborts the in-flight request and Upload
// returns uploader.ErrAborted.
type HTTP struct {
	Client *http.Client
}

func NewHTTP() *HTTP {
	return &HTTP{Client: &http.Client{}}
}

func (t *HTTP) Upload(ctx context.Context, req uploader.Request, progress func(percent int)) (*uploader.Response, error) {

	body := newProgressReader(bytes.NewReader(req.Payload), int64(len(req.Payload)), progress)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, req.URL, body)
	if err != nil {
		return nil, err
	}

	contentType := req.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("X-File-Name", req.Name)
	httpReq.ContentLength = int64(len(req.Payload))

	resp, err := t.Client.Do(httpReq)
	if err != nil {
		return nil, classify(ctx, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(ctx, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("upload failed: %s", resp.Status)
	}

	return &uploader.Response{StatusCode: resp.StatusCode, Body: data}, nil
}

// classify maps a request error to ErrAborted when the upload context was
// cancelled. A deadline expiry is not an abort: the manager records it as a
// failure, not a cancellation.
func classify(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) || errors.Is(err, context.Canceled) {
		return uploader.ErrAborted
	}
	return err
}
