package uploader

import "errors"

var (

	// validation errors, recorded on the rejected record
	ErrSizeExceeded   = errors.New("size exceeded")
	ErrTypeNotAllowed = errors.New("type not allowed")

	// ErrAborted is the expected outcome of a user-initiated cancellation.
	// Transports return it (or context.Canceled) when the upload context is
	// cancelled mid-flight; the manager records the upload as cancelled
	// rather than failed.
	ErrAborted = errors.New("upload aborted")
)
