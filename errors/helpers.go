package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Because ErrorKind implements error, a kind is a valid target and matches
// every error of that kind or of a descendant kind.
//
// Example:
//
//	if errors.Is(err, errors.KindHTTP) {
//	    // Forbidden, NotFound and ServerError all match
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var httpErr *errors.HTTPError
//	if errors.As(err, &httpErr) {
//	    status := httpErr.Status()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetKind extracts the ErrorKind from an error.
// Returns KindUnknown if the error is nil or not an Error.
//
// This function handles the error chain and will extract the kind from
// the outermost Error in the chain.
//
// Example:
//
//	switch errors.GetKind(err) {
//	case errors.KindForbidden:
//	    // Handle missing access
//	}
func GetKind(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}

	var e Error
	if stderrors.As(err, &e) {
		return e.Kind()
	}

	return KindUnknown
}

// GetCategory extracts the ErrorCategory of the outermost Error in err's chain.
// Returns CategoryGeneral if the error is nil or not an Error.
func GetCategory(err error) ErrorCategory {
	return GetKind(err).Category()
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if the error is nil or not an Error.
// This is a safe default that prevents inappropriate retry attempts.
//
// This function handles the error chain and will extract the classification
// from the outermost Error in the chain.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var e Error
	if stderrors.As(err, &e) {
		return e.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if the error is nil or not an Error (safe default).
//
// Example:
//
//	if errors.IsRetryable(err) {
//	    // Let the transport retry, or resume the gateway session
//	}
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
