package worker

import "errors"

var (
	// ErrUnknownKind indicates a Request.Kind the dispatcher does not serve.
	ErrUnknownKind = errors.New("worker: unknown job kind")
	// ErrTooLarge indicates a size above the dispatcher's limit.
	ErrTooLarge = errors.New("worker: size exceeds limit")
)
