package txwatch

import (
	"context"
	"strings"

	"github.com/gabapcia/txwatch/internal/pkg/types"
)

// SubscriptionID identifies an active block subscription. It is returned by
// Session.SubscribeToBlocks and is required to cancel the subscription.
type SubscriptionID string

// Block is a new-block notification. It is read-only and discarded once the
// watcher has reacted to it.
type Block struct {
	Height       types.Hex // Block height
	Hash         string    // Block hash
	Transactions []string  // Hashes of the transactions included in the block
}

// Includes reports whether txHash is listed in the block. Hashes are compared
// case-insensitively. The result is a hint: the receipt lookup stays the source
// of truth.
func (b Block) Includes(txHash string) bool {
	for _, h := range b.Transactions {
		if strings.EqualFold(h, txHash) {
			return true
		}
	}
	return false
}

// Connector establishes sessions with a blockchain node.
type Connector interface {
	// Connect opens a session with the node. Implementations decide which
	// remote errors are fatal; any returned error aborts the watch.
	Connect(ctx context.Context) (Session, error)
}

// Session is an established connection to a blockchain node.
type Session interface {
	// GetReceipt looks up the mining receipt of txHash with a single attempt.
	// A transaction that is not mined yet yields a nil receipt and a nil error.
	GetReceipt(ctx context.Context, txHash string) (*Receipt, error)

	// SubscribeToBlocks registers onBlock to be invoked once per new block, in
	// block order, until the subscription is cancelled or ctx is done.
	//
	// onBlock is invoked from a goroutine owned by the session and never
	// before SubscribeToBlocks has returned. Calls may block until the
	// subscriber is ready for the next block or ctx is done.
	SubscribeToBlocks(ctx context.Context, onBlock func(Block)) (SubscriptionID, error)

	// UnsubscribeFromBlocks cancels the subscription identified by id.
	UnsubscribeFromBlocks(ctx context.Context, id SubscriptionID) error
}
