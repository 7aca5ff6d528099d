package errors

import "net/http"

// ErrorClassification indicates whether an error should trigger a retry.
// The HTTP and gateway layers use it to decide whether an operation should be
// retried (or a session resumed) or whether it represents a permanent failure.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: 5xx responses, rate limits, abnormal websocket closures.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: invalid arguments, forbidden requests, failed command checks.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps kinds to their default classification.
// Kinds that are not listed are permanent.
var defaultClassifications = map[ErrorKind]ErrorClassification{
	// Retryable errors (temporary failures)
	KindServerError:      ClassificationRetryable,
	KindConnectionClosed: ClassificationRetryable,
	KindGatewayNotFound:  ClassificationRetryable,

	// Permanent errors (will not succeed on retry)
	KindForbidden:                 ClassificationPermanent,
	KindNotFound:                  ClassificationPermanent,
	KindLoginFailure:              ClassificationPermanent,
	KindPrivilegedIntentsRequired: ClassificationPermanent,
	KindInteractionResponded:      ClassificationPermanent,
}

// getDefaultClassification returns the default classification for a kind.
// Returns ClassificationPermanent if the kind is not in the map (safe default).
func getDefaultClassification(kind ErrorKind) ErrorClassification {
	if class, ok := defaultClassifications[kind]; ok {
		return class
	}
	return ClassificationPermanent
}

// classifyStatus returns the classification of an HTTP response status.
// Rate-limited and server-side failures are retryable.
func classifyStatus(status int) ErrorClassification {
	if status == http.StatusTooManyRequests || status >= http.StatusInternalServerError {
		return ClassificationRetryable
	}
	return ClassificationPermanent
}
