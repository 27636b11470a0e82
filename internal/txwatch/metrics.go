package txwatch

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// instrumentationName scopes the tracer and meter used by this package.
const instrumentationName = "github.com/gabapcia/txwatch/internal/txwatch"

// Watch outcomes reported on spans and metrics.
const (
	outcomeConfirmed          = "confirmed"
	outcomeReverted           = "reverted"
	outcomeConnectionFailed   = "connection_failed"
	outcomeSubscriptionFailed = "subscription_failed"
	outcomeLookupFailed       = "lookup_failed"
	outcomeAborted            = "aborted"
	outcomeFailed             = "failed"
)

// instruments groups the OpenTelemetry instruments recorded by the watcher.
type instruments struct {
	watches  metric.Int64Counter     // completed watches, by outcome
	lookups  metric.Int64Counter     // receipt lookups sent to the node
	duration metric.Float64Histogram // wall time of a watch, in seconds
}

func newInstruments(meter metric.Meter) (instruments, error) {
	watches, watchesErr := meter.Int64Counter("txwatch.watches",
		metric.WithDescription("Number of completed transaction watches."),
	)
	lookups, lookupsErr := meter.Int64Counter("txwatch.receipt.lookups",
		metric.WithDescription("Number of receipt lookups sent to the node."),
	)
	duration, durationErr := meter.Float64Histogram("txwatch.watch.duration",
		metric.WithDescription("Time spent waiting for a transaction to be mined."),
		metric.WithUnit("s"),
	)

	return instruments{
		watches:  watches,
		lookups:  lookups,
		duration: duration,
	}, errors.Join(watchesErr, lookupsErr, durationErr)
}

// mustInstruments builds instruments from meter, falling back to no-op ones if
// the meter rejects any of them.
func mustInstruments(meter metric.Meter) instruments {
	inst, err := newInstruments(meter)
	if err != nil {
		inst, _ = newInstruments(noop.NewMeterProvider().Meter(instrumentationName))
	}
	return inst
}

func (i instruments) recordWatch(ctx context.Context, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(attribute.String("txwatch.outcome", outcome))
	i.watches.Add(ctx, 1, attrs)
	i.duration.Record(ctx, elapsed.Seconds(), attrs)
}

func (i instruments) recordLookup(ctx context.Context) {
	i.lookups.Add(ctx, 1)
}

// outcomeOf classifies the error returned by a watch.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeConfirmed
	case errors.Is(err, ErrTransactionFailed):
		return outcomeReverted
	case errors.Is(err, ErrConnectionFailed):
		return outcomeConnectionFailed
	case errors.Is(err, ErrSubscriptionFailed):
		return outcomeSubscriptionFailed
	case errors.Is(err, ErrReceiptLookupFailed):
		return outcomeLookupFailed
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return outcomeAborted
	default:
		return outcomeFailed
	}
}
