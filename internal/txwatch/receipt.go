package txwatch

import (
	"errors"

	"github.com/gabapcia/txwatch/internal/pkg/types"
)

// ErrTransactionFailed is matched by every MiningError: the transaction was
// mined but failed on-chain.
var ErrTransactionFailed = errors.New("transaction failed on-chain")

// Log is a raw event log emitted by a mined transaction. Topics and data are
// kept undecoded.
type Log struct {
	Address  string    `json:"address"`
	Topics   []string  `json:"topics"`
	Data     string    `json:"data"`
	LogIndex types.Hex `json:"logIndex,omitempty"`
}

// Receipt is the outcome of mining a transaction. It is produced by a Session
// and never mutated afterwards.
type Receipt struct {
	TransactionHash string    `json:"transactionHash"`
	BlockHash       string    `json:"blockHash"`
	BlockNumber     types.Hex `json:"blockNumber"`
	From            string    `json:"from,omitempty"`
	To              string    `json:"to,omitempty"`
	GasUsed         types.Hex `json:"gasUsed,omitempty"`
	Status          types.Hex `json:"status,omitempty"`
	Logs            []Log     `json:"logs"`

	// Error is set when the transaction was mined but failed on-chain.
	Error bool `json:"error"`
	// Message describes the failure when Error is set.
	Message string `json:"message,omitempty"`
}

// MiningError reports a receipt whose error indicator is set. Its message is
// the one embedded in the receipt.
type MiningError struct {
	Message string
}

func (e *MiningError) Error() string {
	if e.Message == "" {
		return ErrTransactionFailed.Error()
	}
	return e.Message
}

func (e *MiningError) Is(target error) bool {
	return target == ErrTransactionFailed
}

// ValidateReceipt releases r unchanged when its error indicator is unset and
// fails with a *MiningError carrying r.Message otherwise.
func ValidateReceipt(r Receipt) (Receipt, error) {
	if r.Error {
		return Receipt{}, &MiningError{Message: r.Message}
	}
	return r, nil
}
