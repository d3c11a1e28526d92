package uploader

import "context"

// Request describes one upload handed to a Transport.
type Request struct {
	URL      string
	Name     string
	MimeType string
	Payload  []byte
}

// Response is what a Transport returns on success.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport performs a single upload. Implementations must call progress
// with a 0-100 percentage as bytes are written (calls may be sparse and are
// allowed to repeat or arrive late; the manager suppresses anything after
// the record leaves the uploading state). Cancelling ctx must make Upload
// return ErrAborted or ctx.Err() in bounded time.
type Transport interface {
	Upload(ctx context.Context, req Request, progress func(percent int)) (*Response, error)
}
