// Package txwatch waits for the confirmation of a single blockchain transaction.
//
// A watch first asks the node for the transaction receipt. When the transaction
// is not mined yet, it subscribes to new blocks and asks again on every block
// until a receipt shows up, then cancels the subscription and validates the
// receipt before handing it to the caller.
package txwatch

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/txwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/txwatch/internal/pkg/validator"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrConnectionFailed is returned when a session with the node could not be established.
	ErrConnectionFailed = errors.New("failed to connect to node")

	// ErrSubscriptionFailed is returned when the block subscription could not be opened.
	ErrSubscriptionFailed = errors.New("failed to subscribe to new blocks")

	// ErrReceiptLookupFailed is returned when a receipt lookup fails, before or
	// after subscribing.
	ErrReceiptLookupFailed = errors.New("failed to look up transaction receipt")
)

// Service watches transactions until they are mined.
type Service interface {
	// AwaitConfirmation blocks until txHash is mined and returns its validated
	// receipt.
	//
	// It fails with ErrConnectionFailed when no session can be opened, with a
	// *MiningError when the transaction was mined but failed on-chain, with
	// ErrReceiptLookupFailed or ErrSubscriptionFailed on node errors, and with
	// the context error when ctx ends first.
	AwaitConfirmation(ctx context.Context, txHash string) (Receipt, error)

	// GetConfirmation returns the outcome recorded for txHash by a previous
	// watch, or ErrConfirmationNotFound.
	GetConfirmation(ctx context.Context, txHash string) (Confirmation, error)
}

// watchRequest is the validated input of a watch.
type watchRequest struct {
	TxHash string `json:"txHash" validate:"required"`
}

type service struct {
	connector Connector
	storage   ConfirmationStorage

	retry   retry.Retry
	timeout time.Duration

	tracer      trace.Tracer
	instruments instruments
}

var _ Service = (*service)(nil)

// AwaitConfirmation implements Service.
func (s *service) AwaitConfirmation(ctx context.Context, txHash string) (Receipt, error) {
	if err := validator.Validate(watchRequest{TxHash: txHash}); err != nil {
		return Receipt{}, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	ctx, span := s.tracer.Start(ctx, "txwatch.AwaitConfirmation",
		trace.WithAttributes(attribute.String("tx.hash", txHash)),
	)
	defer span.End()

	startedAt := time.Now()

	receipt, err := s.await(ctx, txHash)

	outcome := outcomeOf(err)
	s.instruments.recordWatch(ctx, outcome, time.Since(startedAt))
	span.SetAttributes(attribute.String("txwatch.outcome", outcome))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return receipt, err
}

// GetConfirmation implements Service.
func (s *service) GetConfirmation(ctx context.Context, txHash string) (Confirmation, error) {
	if err := validator.Validate(watchRequest{TxHash: txHash}); err != nil {
		return Confirmation{}, err
	}

	return s.storage.LoadConfirmation(ctx, txHash)
}

type config struct {
	storage ConfirmationStorage
	retry   retry.Retry
	timeout time.Duration
}

// Option configures the service.
type Option func(*config)

// New creates a watcher that opens node sessions through connector.
//
// By default a watch waits without a deadline, receipt lookups are attempted
// once, and outcomes are not persisted.
func New(connector Connector, opts ...Option) *service {
	cfg := config{
		storage: nopConfirmationStorage{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		connector:   connector,
		storage:     cfg.storage,
		retry:       cfg.retry,
		timeout:     cfg.timeout,
		tracer:      otel.Tracer(instrumentationName),
		instruments: mustInstruments(otel.Meter(instrumentationName)),
	}
}

// WithConfirmationStorage records every resolved watch in cs.
func WithConfirmationStorage(cs ConfirmationStorage) Option {
	return func(c *config) {
		c.storage = cs
	}
}

// WithRetry retries failed receipt lookups with r before the failure aborts
// the watch.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithTimeout bounds every watch to d. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}
