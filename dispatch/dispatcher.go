package dispatch

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/jmgilman/go/chat/errors"
	"github.com/jmgilman/go/chat/logging"
)

// Report is an application command error ready to be shown to the invoker.
type Report struct {
	// Kind is the kind of the error.
	Kind errors.ErrorKind

	// Message is the display message, already mention-escaped.
	Message string

	// Err is the error being reported.
	Err error
}

// Handler handles an application command error.
type Handler func(ctx context.Context, r Report) error

// Dispatcher counts, logs and routes errors. It is safe for concurrent use.
type Dispatcher struct {
	logger      *zap.Logger
	handler     Handler
	registerer  prometheus.Registerer
	errorsTotal *prometheus.CounterVec
}

// New creates a Dispatcher and registers its error counter.
// If a counter with the same name is already registered, it is reused.
func New(opts ...Option) (*Dispatcher, error) {
	d := &Dispatcher{
		logger:     zap.NewNop(),
		registerer: prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(d)
	}

	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_errors_total",
			Help: "Total number of errors dispatched, by kind and category",
		},
		[]string{"kind", "category"},
	)
	if err := d.registerer.Register(counter); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, errors.Wrap(err, errors.KindInvalidArgument, "failed to register error counter")
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, errors.Wrap(err, errors.KindInvalidArgument, "conflicting collector registered as chat_errors_total")
		}
		counter = existing
	}
	d.errorsTotal = counter

	return d, nil
}

// Dispatch routes err. Returns nil if err is nil.
//
// An application command error is passed to the handler and the handler's
// result is returned; without a handler it is logged at info level and
// consumed. Any other error is logged (warn if retryable, error otherwise)
// and returned unchanged.
func (d *Dispatcher) Dispatch(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	kind := errors.GetKind(err)
	d.errorsTotal.WithLabelValues(string(kind), string(kind.Category())).Inc()

	if kind.IsA(errors.KindApplication) {
		if d.handler == nil {
			d.logger.Info("application command error", logging.Field(err))
			return nil
		}
		return d.handler(ctx, Report{
			Kind:    kind,
			Message: errors.ToJSON(err).Message,
			Err:     err,
		})
	}

	if errors.IsRetryable(err) {
		d.logger.Warn("retryable error", logging.Field(err))
	} else {
		d.logger.Error("permanent error", logging.Field(err))
	}
	return err
}
