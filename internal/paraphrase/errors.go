package paraphrase

import "errors"

// User-facing validation messages.
const (
	MsgEmptyText   = "Please provide some text to paraphrase."
	MsgInvalidTone = "Invalid tone selected."
)

// ErrUnknownModel is returned when a request names a model with no adapter.
var ErrUnknownModel = errors.New("unknown model")

// ValidationError reports a malformed request detected before any backend call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// GenerationError wraps a failed backend call. Its message is the backend's.
type GenerationError struct {
	Model string
	Err   error
}

func (e *GenerationError) Error() string { return e.Err.Error() }

func (e *GenerationError) Unwrap() error { return e.Err }
