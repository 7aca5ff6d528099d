package errors

import (
	"encoding/json"
	"fmt"
)

// base holds the fields shared by every variant.
// Variants embed it by value so a shallow copy yields an independent error.
type base struct {
	kind           ErrorKind
	classification ErrorClassification
	message        string
	details        map[string]interface{}
	context        map[string]interface{}
	cause          error
}

// newBase returns a base for kind with its default classification.
func newBase(kind ErrorKind, message string) base {
	return base{
		kind:           kind,
		classification: getDefaultClassification(kind),
		message:        message,
	}
}

// Error returns the display message.
// Format: "message" or "message: cause" if cause is present. Marker errors
// without a message fall back to the kind, e.g. "not owner".
func (e *base) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.display(), e.cause)
	}
	return e.display()
}

// Kind returns the error kind.
func (e *base) Kind() ErrorKind {
	return e.kind
}

// Classification returns the error classification.
func (e *base) Classification() ErrorClassification {
	return e.classification
}

// Message returns the error message.
func (e *base) Message() string {
	return e.message
}

// Details returns a defensive copy of the variant fields.
func (e *base) Details() map[string]interface{} {
	return copyMap(e.details)
}

// Context returns a defensive copy of the context map.
// Returns nil if no context has been attached (maintains immutability).
func (e *base) Context() map[string]interface{} {
	return copyMap(e.context)
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *base) Unwrap() error {
	return e.cause
}

// Is reports whether target is a kind this error belongs to.
func (e *base) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && e.kind.IsA(kind)
}

// MarshalJSON renders the error as an ErrorResponse.
// The wrapped error chain is intentionally excluded.
func (e *base) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(e.toResponse())
	if err != nil {
		return nil, &markerError{base: base{
			kind:           KindInvalidData,
			classification: ClassificationPermanent,
			message:        "failed to marshal error response",
			cause:          err,
		}}
	}
	return data, nil
}

func (e *base) display() string {
	if e.message == "" {
		return e.kind.describe()
	}
	return e.message
}

func (e *base) core() *base {
	return e
}

func (e *base) toResponse() *ErrorResponse {
	return &ErrorResponse{
		Kind:           string(e.kind),
		Category:       string(e.kind.Category()),
		Message:        e.display(),
		Classification: string(e.classification),
		Details:        copyMap(e.details),
		Context:        copyMap(e.context),
	}
}

// markerError is the concrete type for kinds that carry no fields beyond the
// message. It is private to enforce construction through package functions.
type markerError struct {
	base
}

func (e *markerError) clone() Error {
	c := *e
	return &c
}

func copyMap(in map[string]interface{}) map[string]interface{} {
	if in == nil {
		return nil
	}
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
