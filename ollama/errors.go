package ollama

import "fmt"

// ErrorKind classifies a failed generate call so callers can translate it
// to a client-facing status without inspecting transport details.
type ErrorKind int

const (
	// KindUnavailable means the generator could not be reached at all.
	KindUnavailable ErrorKind = iota
	// KindTimeout means the call exceeded the configured bound.
	KindTimeout
	// KindUpstream means the generator was reached but returned an error or
	// an unusable payload.
	KindUpstream
	// KindInternal covers faults on our side of the call.
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindTimeout:
		return "timeout"
	case KindUpstream:
		return "upstream"
	default:
		return "internal"
	}
}

// Error is the failure result of a generate call. Message is safe to show
// to clients; the wrapped cause is for logs only.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Message, e.Kind, e.cause)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.cause
}
