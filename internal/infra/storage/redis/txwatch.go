package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/txwatch/internal/txwatch"

	"github.com/redis/go-redis/v9"
)

// confirmationKey constructs the Redis key used to store the outcome of a
// watched transaction. Hashes are lowercased so that differently cased
// spellings of the same hash share a record. The format is:
//
//	"<prefix>:confirmation:<tx hash>"
func (c *client) confirmationKey(txHash string) string {
	return fmt.Sprintf("%s:confirmation:%s", c.keyPrefix, strings.ToLower(txHash))
}

// SaveConfirmation persists the outcome of a watch as JSON, with no expiration.
// A later record for the same transaction replaces the previous one.
func (c *client) SaveConfirmation(ctx context.Context, confirmation txwatch.Confirmation) error {
	data, err := json.Marshal(confirmation)
	if err != nil {
		return err
	}

	key := c.confirmationKey(confirmation.TxHash)
	return c.conn.Set(ctx, key, data, 0).Err()
}

// LoadConfirmation retrieves the outcome recorded for txHash.
//
// If nothing was recorded, it returns txwatch.ErrConfirmationNotFound.
func (c *client) LoadConfirmation(ctx context.Context, txHash string) (txwatch.Confirmation, error) {
	key := c.confirmationKey(txHash)

	data, err := c.conn.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = txwatch.ErrConfirmationNotFound
		}

		return txwatch.Confirmation{}, err
	}

	var confirmation txwatch.Confirmation
	if err := json.Unmarshal(data, &confirmation); err != nil {
		return txwatch.Confirmation{}, fmt.Errorf("corrupted confirmation for %s: %w", txHash, err)
	}

	return confirmation, nil
}

// Compile-time assertion to ensure client implements the ConfirmationStorage interface.
var _ txwatch.ConfirmationStorage = new(client)
