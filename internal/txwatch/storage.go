package txwatch

import (
	"context"
	"errors"
	"time"
)

// ErrConfirmationNotFound is returned when no outcome was recorded for a transaction.
var ErrConfirmationNotFound = errors.New("confirmation not found")

// Confirmation is the recorded outcome of a resolved watch.
type Confirmation struct {
	TxHash      string    `json:"txHash"`
	Receipt     Receipt   `json:"receipt"`
	Failed      bool      `json:"failed"`           // the receipt was rejected as an on-chain failure
	Reason      string    `json:"reason,omitempty"` // failure message when Failed is set
	ConfirmedAt time.Time `json:"confirmedAt"`
}

// ConfirmationStorage persists watch outcomes so they can be inspected after
// the watch returned.
type ConfirmationStorage interface {
	// SaveConfirmation records c, overwriting any previous record for c.TxHash.
	SaveConfirmation(ctx context.Context, c Confirmation) error

	// LoadConfirmation returns the record for txHash or ErrConfirmationNotFound.
	LoadConfirmation(ctx context.Context, txHash string) (Confirmation, error)
}

// nopConfirmationStorage is used when no storage is configured. It discards
// every record.
type nopConfirmationStorage struct{}

func (nopConfirmationStorage) SaveConfirmation(_ context.Context, _ Confirmation) error {
	return nil
}

func (nopConfirmationStorage) LoadConfirmation(_ context.Context, _ string) (Confirmation, error) {
	return Confirmation{}, ErrConfirmationNotFound
}
