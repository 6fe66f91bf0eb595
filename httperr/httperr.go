// Package httperr carries the two error families this engine raises:
// HttpInternalError for engine/transport failures, and HttpError for
// handler-facing failures that carry a status.
package httperr

import (
	"errors"
	"net"

	"httpengine/status"
)

// Kind distinguishes the transport-timeout variants from everything else.
type Kind int

const (
	// ConnectionTimeout means the peer was unresponsive at the transport
	// layer: a read or write hit its deadline (see FromIOError), including
	// while a body was being read.
	ConnectionTimeout Kind = iota + 1
	// DataTimeout means bytes stopped arriving before a header block was
	// complete: the header framer expected more and got none (peer closed,
	// deadline expired, or any other read failure).
	DataTimeout
	// Other covers parse failures, UTF-8/encoding errors, and anything
	// else not naturally a transport timeout.
	Other
)

// HttpInternalError is the engine-internal failure type. It is never
// surfaced to handler code directly.
type HttpInternalError struct {
	Kind    Kind
	Message string
}

func (e *HttpInternalError) Error() string {
	switch e.Kind {
	case ConnectionTimeout:
		return "connection timed out"
	case DataTimeout:
		return "data timed out"
	default:
		return e.Message
	}
}

// NewOther builds an HttpInternalError of Kind Other from a message.
func NewOther(msg string) *HttpInternalError {
	return &HttpInternalError{Kind: Other, Message: msg}
}

// ErrDataTimeout and ErrConnectionTimeout are the sentinel values tested
// with errors.Is against values produced by this package.
var (
	ErrDataTimeout       = &HttpInternalError{Kind: DataTimeout}
	ErrConnectionTimeout = &HttpInternalError{Kind: ConnectionTimeout}
)

// Is matches by Kind only, so callers can do errors.Is(err,
// httperr.ErrDataTimeout) regardless of the Message payload.
func (e *HttpInternalError) Is(target error) bool {
	other, ok := target.(*HttpInternalError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// FromIOError classifies a raw I/O error the way the rest of the engine
// expects: a timed-out net.Error becomes ConnectionTimeout, everything
// else becomes Other carrying the original message.
func FromIOError(err error) *HttpInternalError {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &HttpInternalError{Kind: ConnectionTimeout, Message: err.Error()}
	}
	return &HttpInternalError{Kind: Other, Message: err.Error()}
}

// HttpError is surfaced in handler return paths: a message plus the
// HTTP status it should produce.
type HttpError struct {
	Message string
	Status  status.Status
}

func (e *HttpError) Error() string { return e.Message }

// NewHttpError builds a handler-facing error with an explicit status.
func NewHttpError(msg string, st status.Status) *HttpError {
	return &HttpError{Message: msg, Status: st}
}
