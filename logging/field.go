package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jmgilman/go/chat/errors"
)

// Field renders err under the "error" key.
// Returns a no-op field if err is nil.
func Field(err error) zap.Field {
	if err == nil {
		return zap.Skip()
	}
	return zap.Object("error", Object(err))
}

// Object returns a zapcore.ObjectMarshaler rendering the kind, category,
// retryability, message, details, context and cause of err.
func Object(err error) zapcore.ObjectMarshaler {
	return errorObject{err: err}
}

type errorObject struct {
	err error
}

func (o errorObject) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	kind := errors.GetKind(o.err)
	enc.AddString("kind", string(kind))
	enc.AddString("category", string(kind.Category()))
	enc.AddBool("retryable", errors.IsRetryable(o.err))

	var e errors.Error
	if !errors.As(o.err, &e) {
		enc.AddString("message", o.err.Error())
		return nil
	}

	enc.AddString("message", errors.ToJSON(e).Message)
	if details := e.Details(); len(details) > 0 {
		if err := enc.AddReflected("details", details); err != nil {
			return err
		}
	}
	if ctx := e.Context(); len(ctx) > 0 {
		if err := enc.AddReflected("context", ctx); err != nil {
			return err
		}
	}
	if cause := e.Unwrap(); cause != nil {
		enc.AddString("cause", cause.Error())
	}
	return nil
}
