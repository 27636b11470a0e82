package txwatch

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/txwatch/internal/pkg/logger"
	"github.com/gabapcia/txwatch/internal/pkg/x/chflow"
)

// notificationBufferSize is how many block notifications may queue up while a
// receipt lookup is in flight.
const notificationBufferSize = 16

// watchContext carries the state of a single watch. It is owned by the
// goroutine running the watch.
type watchContext struct {
	txHash  string
	session Session

	state        WatchState
	subscription SubscriptionID
	subscribed   bool
	lookups      int
}

func newWatchContext(txHash string) *watchContext {
	return &watchContext{
		txHash: txHash,
		state:  StateNotStarted,
	}
}

func (w *watchContext) transition(ctx context.Context, next WatchState) {
	logger.Debug(ctx, "watch state changed",
		"watch.from", w.state.String(),
		"watch.to", next.String(),
	)
	w.state = next
}

// await connects to the node, waits for the receipt of txHash and validates it.
func (s *service) await(ctx context.Context, txHash string) (Receipt, error) {
	ctx = logger.Derive(ctx, "tx.hash", txHash)
	w := newWatchContext(txHash)

	session, err := s.connector.Connect(ctx)
	if err != nil {
		w.transition(ctx, StateFailed)
		if ctx.Err() != nil {
			logger.Warn(ctx, "watch aborted while connecting to node", "error", err)
			return Receipt{}, ctx.Err()
		}

		logger.Error(ctx, "failed to connect to node", "error", err)
		return Receipt{}, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	w.session = session

	raw, err := s.watch(ctx, w)
	if err != nil {
		return Receipt{}, err
	}

	receipt, err := ValidateReceipt(raw)
	if err != nil {
		logger.Warn(ctx, "transaction mined with failure", "error", err)
	}

	s.saveConfirmation(ctx, txHash, raw, err)
	return receipt, err
}

// watch runs the confirmation state machine on an established session and
// returns the first receipt found for the transaction.
func (s *service) watch(ctx context.Context, w *watchContext) (Receipt, error) {
	w.transition(ctx, StateChecking)

	receipt, found, err := s.lookup(ctx, w)
	if err != nil {
		w.transition(ctx, StateFailed)
		return Receipt{}, err
	}

	if found {
		w.transition(ctx, StateResolved)
		logger.Info(ctx, "transaction already mined", "block.height", receipt.BlockNumber)
		return receipt, nil
	}

	return s.waitForBlocks(ctx, w)
}

// waitForBlocks subscribes to new blocks and looks the receipt up again on
// every notification. The subscription is cancelled exactly once, whatever the
// outcome.
func (s *service) waitForBlocks(ctx context.Context, w *watchContext) (Receipt, error) {
	notifyCtx, stopNotifications := context.WithCancel(ctx)
	defer stopNotifications()

	blocksCh := make(chan Block, notificationBufferSize)

	id, err := w.session.SubscribeToBlocks(notifyCtx, chflow.Forwarder(notifyCtx, blocksCh))
	if err != nil {
		w.transition(ctx, StateFailed)
		if ctx.Err() != nil {
			logger.Warn(ctx, "watch aborted while subscribing to new blocks", "error", err)
			return Receipt{}, ctx.Err()
		}

		logger.Error(ctx, "failed to subscribe to new blocks", "error", err)
		return Receipt{}, fmt.Errorf("%w: %w", ErrSubscriptionFailed, err)
	}

	w.subscription = id
	w.subscribed = true
	w.transition(ctx, StateSubscribed)

	ctx = logger.Derive(ctx, "subscription.id", id)
	logger.Info(ctx, "transaction not mined yet, waiting for new blocks")

	defer func() {
		// Late notifications must be dropped before the session is asked to
		// stop, since its delivery goroutine may be blocked on us.
		stopNotifications()
		s.unsubscribe(ctx, w)
	}()

	for {
		block, ok := chflow.Receive(ctx, blocksCh)
		if !ok {
			w.transition(ctx, StateFailed)
			logger.Warn(ctx, "watch aborted before the transaction was mined", "error", ctx.Err())
			return Receipt{}, ctx.Err()
		}

		logger.Debug(ctx, "new block received",
			"block.height", block.Height,
			"block.hash", block.Hash,
			"block.includes_tx", block.Includes(w.txHash),
		)

		receipt, found, err := s.lookup(ctx, w)
		if err != nil {
			w.transition(ctx, StateFailed)
			return Receipt{}, err
		}

		if found {
			w.transition(ctx, StateResolved)
			logger.Info(ctx, "transaction mined",
				"block.height", receipt.BlockNumber,
				"watch.lookups", w.lookups,
			)
			return receipt, nil
		}
	}
}

// lookup fetches the receipt once, or through the configured retry policy.
// A transaction that is not mined yet is reported with found set to false.
// A lookup cut short by ctx returns the context error unwrapped.
func (s *service) lookup(ctx context.Context, w *watchContext) (receipt Receipt, found bool, err error) {
	var result *Receipt
	operation := func() error {
		w.lookups++
		s.instruments.recordLookup(ctx)

		r, err := w.session.GetReceipt(ctx, w.txHash)
		if err != nil {
			logger.Debug(ctx, "receipt lookup failed", "watch.lookups", w.lookups, "error", err)
			return err
		}

		result = r
		return nil
	}

	if s.retry != nil {
		err = s.retry.Execute(ctx, operation)
	} else {
		err = operation()
	}
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn(ctx, "receipt lookup aborted", "error", err)
			return Receipt{}, false, ctx.Err()
		}

		logger.Error(ctx, "failed to look up transaction receipt", "error", err)
		return Receipt{}, false, fmt.Errorf("%w: %w", ErrReceiptLookupFailed, err)
	}

	if result == nil {
		return Receipt{}, false, nil
	}

	return *result, true, nil
}

// unsubscribe cancels the block subscription of w. It runs after the watch has
// settled, so it ignores the cancellation of ctx and only logs failures.
func (s *service) unsubscribe(ctx context.Context, w *watchContext) {
	if !w.subscribed {
		return
	}
	w.subscribed = false

	if err := w.session.UnsubscribeFromBlocks(context.WithoutCancel(ctx), w.subscription); err != nil {
		logger.Warn(ctx, "failed to unsubscribe from new blocks", "error", err)
		return
	}

	logger.Debug(ctx, "unsubscribed from new blocks")
}

// saveConfirmation records the outcome of a resolved watch. Storage failures
// never change the result handed to the caller.
func (s *service) saveConfirmation(ctx context.Context, txHash string, raw Receipt, validationErr error) {
	c := Confirmation{
		TxHash:      txHash,
		Receipt:     raw,
		ConfirmedAt: time.Now().UTC(),
	}
	if validationErr != nil {
		c.Failed = true
		c.Reason = validationErr.Error()
	}

	if err := s.storage.SaveConfirmation(context.WithoutCancel(ctx), c); err != nil {
		logger.Error(ctx, "failed to save confirmation", "error", err)
	}
}
