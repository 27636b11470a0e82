package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/txwatch/internal/pkg/logger"
	"github.com/gabapcia/txwatch/internal/pkg/types"
	"github.com/gabapcia/txwatch/internal/txwatch"

	"github.com/google/uuid"
)

var (
	// ErrSubscriptionNotFound is returned when unsubscribing an unknown or
	// already cancelled subscription.
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// errBlockNotAvailable is returned when the node does not serve a block it
	// reported as mined yet, as load-balanced endpoints sometimes do.
	errBlockNotAvailable = errors.New("block not available")
)

// BlockResponse represents a block returned by eth_getBlockByNumber when
// transaction objects are not requested.
type BlockResponse struct {
	Hash         string    `json:"hash"`
	ParentHash   string    `json:"parentHash"`
	Number       types.Hex `json:"number"`
	Timestamp    types.Hex `json:"timestamp"`
	Transactions []string  `json:"transactions"`
}

// toTxwatchBlock converts a BlockResponse to a txwatch.Block.
func (b BlockResponse) toTxwatchBlock() txwatch.Block {
	return txwatch.Block{
		Height:       b.Number,
		Hash:         b.Hash,
		Transactions: b.Transactions,
	}
}

// getLatestBlockNumber fetches the latest block number from the Ethereum node.
func (s *session) getLatestBlockNumber(ctx context.Context) (types.Hex, error) {
	data, err := s.conn.Fetch(ctx, "eth_blockNumber")
	if err != nil {
		return "", err
	}

	var blockNumber types.Hex
	return blockNumber, json.Unmarshal(data, &blockNumber)
}

// getBlockByNumber retrieves a block by its number, with transaction hashes only.
func (s *session) getBlockByNumber(ctx context.Context, blockNumber types.Hex) (BlockResponse, error) {
	data, err := s.conn.Fetch(ctx, "eth_getBlockByNumber", blockNumber, false)
	if err != nil {
		return BlockResponse{}, err
	}

	if isNull(data) {
		return BlockResponse{}, fmt.Errorf("%w: %s", errBlockNotAvailable, blockNumber)
	}

	var blockResponse BlockResponse
	return blockResponse, json.Unmarshal(data, &blockResponse)
}

// pollNewBlocks delivers every block from nextBlockNumber up to the latest one,
// in ascending order, and returns the block number to resume from.
//
// A failed request stops the round without skipping the block, so it is
// requested again on the next round.
func (s *session) pollNewBlocks(ctx context.Context, nextBlockNumber types.Hex, onBlock func(txwatch.Block)) types.Hex {
	latestBlockNumber, err := s.getLatestBlockNumber(ctx)
	if err != nil {
		logger.Warn(ctx, "failed to fetch latest block number", "error", err)
		return nextBlockNumber
	}

	for nextBlockNumber.Int() <= latestBlockNumber.Int() {
		if ctx.Err() != nil {
			return nextBlockNumber
		}

		block, err := s.getBlockByNumber(ctx, nextBlockNumber)
		if err != nil {
			logger.Warn(ctx, "failed to fetch block", "block.height", nextBlockNumber, "error", err)
			return nextBlockNumber
		}

		onBlock(block.toTxwatchBlock())
		nextBlockNumber = nextBlockNumber.Add(1)
	}

	return nextBlockNumber
}

// SubscribeToBlocks implements the txwatch.Session interface.
//
// Blocks mined after the call are delivered by a polling goroutine, one
// onBlock call at a time. The goroutine stops when the subscription is
// cancelled or ctx is done.
func (s *session) SubscribeToBlocks(ctx context.Context, onBlock func(txwatch.Block)) (txwatch.SubscriptionID, error) {
	latestBlockNumber, err := s.getLatestBlockNumber(ctx)
	if err != nil {
		return "", err
	}

	id := txwatch.SubscriptionID(uuid.NewString())
	subscriptionCtx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.subscriptions[id] = cancel
	s.mu.Unlock()

	subscriptionCtx = logger.Derive(subscriptionCtx, "subscription.id", id)
	go func() {
		nextBlockNumber := latestBlockNumber.Add(1)

		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-subscriptionCtx.Done():
				return
			case <-ticker.C:
				nextBlockNumber = s.pollNewBlocks(subscriptionCtx, nextBlockNumber, onBlock)
			}
		}
	}()

	return id, nil
}

// UnsubscribeFromBlocks implements the txwatch.Session interface.
// It stops the polling goroutine without waiting for it to return.
func (s *session) UnsubscribeFromBlocks(_ context.Context, id txwatch.SubscriptionID) error {
	s.mu.Lock()
	cancel, ok := s.subscriptions[id]
	delete(s.subscriptions, id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrSubscriptionNotFound, id)
	}

	cancel()
	return nil
}
