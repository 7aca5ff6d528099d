package errors

import (
	"errors"
	"fmt"
)

// Wrap wraps an error with a kind and message while preserving the original error.
// The wrapped error is accessible via Unwrap() and compatible with errors.Is and errors.As.
//
// If the wrapped error is an Error, its classification is preserved.
// Otherwise, the default classification for the kind is used.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := rest.CheckResponse(resp); err != nil {
//	    return errors.Wrap(err, errors.KindLoginFailure, "Improper token has been passed.")
//	}
func Wrap(err error, kind ErrorKind, message string) Error {
	if err == nil {
		return nil
	}

	// Preserve classification if wrapping an Error
	e := New(kind, message).(*markerError)
	var inner Error
	if errors.As(err, &inner) {
		e.classification = inner.Classification()
	}
	e.cause = err
	return e
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := json.Unmarshal(raw, &payload); err != nil {
//	    return errors.Wrapf(err, errors.KindInvalidData, "malformed %s event", name)
//	}
func Wrapf(err error, kind ErrorKind, format string, args ...interface{}) Error {
	if err == nil {
		return nil
	}

	return Wrap(err, kind, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err != nil {
//	    return errors.WrapWithContext(err, errors.KindGatewayNotFound, "gateway lookup failed", map[string]interface{}{
//	        "endpoint": endpoint,
//	    })
//	}
func WrapWithContext(err error, kind ErrorKind, message string, ctx map[string]interface{}) Error {
	if err == nil {
		return nil
	}

	e := Wrap(err, kind, message).(*markerError)
	e.context = copyMap(ctx)
	return e
}
