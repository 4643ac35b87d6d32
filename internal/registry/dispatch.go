package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Observer receives one measurement per dispatched calculation. Implemented
// by the metrics package; decoupled here so the core stays free of the
// Prometheus client.
type Observer interface {
	ObserveCalculation(score string, outcome string, elapsed time.Duration)
}

// Dispatcher is the single choke point through which every calculation
// request flows. It resolves the identifier, invokes the calculator inside a
// panic guard, and classifies every failure into the DispatchError taxonomy.
// It holds a read-only reference to the frozen registry, so any number of
// concurrent Calculate calls are safe without locking.
type Dispatcher struct {
	registry *Registry
	logger   zerolog.Logger
	observer Observer
}

// NewDispatcher builds a dispatcher over a bootstrapped registry. observer
// may be nil.
func NewDispatcher(r *Registry, logger zerolog.Logger, observer Observer) *Dispatcher {
	return &Dispatcher{registry: r, logger: logger, observer: observer}
}

// Registry exposes the underlying registry for catalog queries.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Calculate resolves id, invokes the calculator with params, and returns
// either the calculator's result unchanged or a *DispatchError. It never
// panics and never returns an unclassified error.
func (d *Dispatcher) Calculate(ctx context.Context, id string, params Params) (Result, error) {
	start := time.Now()

	calc, ok := d.registry.Resolve(id)
	if !ok {
		d.record(ctx, id, string(KindUnknownScore), start, nil)
		return nil, &DispatchError{
			Kind:    KindUnknownScore,
			Message: fmt.Sprintf("score %q is not registered", id),
			Details: map[string]any{"score_id": id},
		}
	}

	result, err := d.invoke(calc, params)
	if err != nil {
		var perr *ParameterError
		if errors.As(err, &perr) {
			d.record(ctx, id, string(KindInvalidParameters), start, nil)
			details := map[string]any{"score_id": id}
			if perr.Field != "" {
				details["parameter"] = perr.Field
			}
			return nil, &DispatchError{
				Kind:    KindInvalidParameters,
				Message: perr.Error(),
				Details: details,
				cause:   err,
			}
		}

		// Unanticipated failure: keep the original error for the logs but
		// hand the caller a generic message with no internals.
		d.record(ctx, id, string(KindComputationFailure), start, err)
		return nil, &DispatchError{
			Kind:    KindComputationFailure,
			Message: fmt.Sprintf("internal error calculating %q", id),
			Details: map[string]any{"score_id": id},
			cause:   err,
		}
	}

	d.record(ctx, id, "success", start, nil)
	return result, nil
}

// invoke runs the calculator and converts a panic into an error so that no
// failure mode can escape Calculate.
func (d *Dispatcher) invoke(calc Calculator, params Params) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("calculator panicked: %v", r)
		}
	}()
	return calc.Invoke(params)
}

func (d *Dispatcher) record(ctx context.Context, id, outcome string, start time.Time, cause error) {
	elapsed := time.Since(start)

	evt := d.logger.Info()
	if cause != nil {
		evt = d.logger.Error().Err(cause)
	}
	if rid, ok := ctx.Value(RequestIDKey).(string); ok && rid != "" {
		evt = evt.Str("request_id", rid)
	}
	evt.
		Str("score_id", id).
		Str("outcome", outcome).
		Dur("latency", elapsed).
		Msg("calculation")

	if d.observer != nil {
		d.observer.ObserveCalculation(id, outcome, elapsed)
	}
}

// requestIDContextKey is the context key type for request id propagation from
// the transport layer into dispatch logs.
type requestIDContextKey struct{}

// RequestIDKey carries the request id through the request context.
var RequestIDKey = requestIDContextKey{}
