package errors

// ErrorResponse represents the JSON structure of a serialized error.
// It provides a flat, serializable representation of errors without exposing
// internal error chains or sensitive information.
//
// The wrapped error chain is intentionally excluded to prevent information leakage
// while still providing useful debugging context through the Kind, Message,
// Details, and Context fields.
type ErrorResponse struct {
	// Kind is the error kind identifying the variant.
	Kind string `json:"kind"`

	// Category is the category of the kind.
	Category string `json:"category"`

	// Message is the human-readable display message.
	Message string `json:"message"`

	// Classification indicates whether the error is retryable or permanent.
	Classification string `json:"classification"`

	// Details contains the variant-specific fields.
	// Omitted from JSON if empty.
	Details map[string]interface{} `json:"details,omitempty"`

	// Context contains optional metadata about the error.
	// Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For Error instances, extracts kind, message, classification, details, and context.
// For standard errors, uses KindUnknown, ClassificationPermanent, and the error message.
//
// The wrapped error chain is intentionally excluded. HTTP causes may carry
// request routes and tokens in URLs; gateway causes may carry session ids.
//
// Example:
//
//	resp := errors.ToJSON(err)
//	data, _ := json.Marshal(resp)
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	var c cloner
	if As(err, &c) {
		return c.core().toResponse()
	}

	return &ErrorResponse{
		Kind:           string(KindUnknown),
		Category:       string(KindUnknown.Category()),
		Message:        err.Error(),
		Classification: string(ClassificationPermanent),
	}
}
