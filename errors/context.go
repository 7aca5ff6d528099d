package errors

import "errors"

// WithContext returns a copy of err with the context field key set to value.
// The copy keeps the concrete variant, so errors.As still finds it.
//
// If err is not an Error, it is converted to one with KindUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.NewHTTPError(resp, "")
//	err = errors.WithContext(err, "method", "PATCH")
//	err = errors.WithContext(err, "route", "/channels/{channel_id}")
func WithContext(err error, key string, value interface{}) Error {
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap returns a copy of err with the fields of ctx merged into its
// context. Fields in ctx replace existing fields with the same key; ctx itself
// is copied.
//
// If err is not an Error, it is converted to one with KindUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContextMap(err, map[string]interface{}{
//	    "guild_id":   guildID,
//	    "command_id": commandID,
//	})
func WithContextMap(err error, ctx map[string]interface{}) Error {
	if err == nil {
		return nil
	}

	derived, b := derive(err)
	merged := make(map[string]interface{}, len(b.context)+len(ctx))
	for _, src := range []map[string]interface{}{b.context, ctx} {
		for k, v := range src {
			merged[k] = v
		}
	}
	b.context = merged

	return derived
}

// WithClassification returns a copy of err with its classification replaced.
//
// The gateway layer uses it to mark closures with fatal close codes as
// permanent even though connection-closed errors are retryable by default.
//
// If err is not an Error, it is converted to one with KindUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.NewConnectionClosed(nil, 0, errors.WithCloseCode(4004))
//	err = errors.WithClassification(err, errors.ClassificationPermanent)
func WithClassification(err error, classification ErrorClassification) Error {
	if err == nil {
		return nil
	}

	derived, b := derive(err)
	b.classification = classification
	return derived
}

// derive returns a copy of the outermost Error in err's chain together with
// its shared fields, ready to be modified. Errors outside the taxonomy become
// KindUnknown errors wrapping err.
func derive(err error) (Error, *base) {
	var c cloner
	if errors.As(err, &c) {
		derived := c.clone()
		return derived, derived.(cloner).core()
	}

	m := &markerError{base: base{
		kind:           KindUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}}
	return m, &m.base
}
