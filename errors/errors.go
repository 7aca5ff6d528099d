package errors

// Error extends the standard error interface with the structured information
// every failure raised by the client library carries.
//
// Error provides a kind for catch-site discrimination, a classification for
// retry decisions, variant-specific details, contextual metadata, and
// compatibility with standard library error handling (errors.Is, errors.As,
// errors.Unwrap).
type Error interface {
	error

	// Kind returns the variant of the error. Kinds form a single-rooted
	// hierarchy; use errors.Is(err, KindCheckFailure) to test membership of a
	// whole family.
	Kind() ErrorKind

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable display message.
	// It is empty for marker errors constructed without one.
	Message() string

	// Details returns the variant-specific fields (status, close code,
	// missing roles, ...) as a read-only map.
	// Returns nil for variants without fields.
	Details() map[string]interface{}

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}

// cloner is implemented by every concrete variant so that the With* helpers
// can derive a modified copy without losing the variant's type.
type cloner interface {
	Error
	clone() Error
	core() *base
}
