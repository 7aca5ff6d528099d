package errors

import "fmt"

// gatewayNotFoundMessage is the fixed message of KindGatewayNotFound.
const gatewayNotFoundMessage = "The gateway to connect to discord was not found."

// ErrNoMoreItems signals that a lazily produced sequence has no more items.
// Iterators return it (or an error of the same kind) so callers can stop
// without treating exhaustion as misuse:
//
//	if errors.Is(err, errors.KindNoMoreItems) {
//	    break
//	}
var ErrNoMoreItems Error = New(KindNoMoreItems, "")

// New creates a new Error with the given kind and message.
// The error classification is determined by the kind using default mappings.
// Application-family kinds have their message mention-escaped.
//
// New is meant for kinds that carry no fields. Variants with fields have
// dedicated constructors (NewHTTPError, NewConnectionClosed, NewMissingRole, ...).
//
// Example:
//
//	err := errors.New(errors.KindInvalidArgument, "limit must be between 1 and 100")
func New(kind ErrorKind, message string) Error {
	if kind.IsA(KindApplication) {
		message = escapeMentions(message)
	}
	return &markerError{base: newBase(kind, message)}
}

// Newf creates a new Error with a formatted message.
// The error classification is determined by the kind using default mappings.
//
// Example:
//
//	err := errors.Newf(errors.KindInvalidCommandType, "unhandled command type: %d", cmdType)
func Newf(kind ErrorKind, format string, args ...interface{}) Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// NewGatewayNotFound creates the error raised when discovery of the realtime
// endpoint fails.
func NewGatewayNotFound() Error {
	return New(KindGatewayNotFound, gatewayNotFoundMessage)
}

// WrapGatewayNotFound creates the gateway-not-found error over the failure
// that prevented discovery. The classification of a wrapped taxonomy error is
// preserved; any other cause leaves the error retryable.
func WrapGatewayNotFound(cause error) Error {
	if cause == nil {
		return NewGatewayNotFound()
	}
	return Wrap(cause, KindGatewayNotFound, gatewayNotFoundMessage)
}
