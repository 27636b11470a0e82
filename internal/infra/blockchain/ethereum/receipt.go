package ethereum

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/gabapcia/txwatch/internal/pkg/types"
	"github.com/gabapcia/txwatch/internal/txwatch"
)

// defaultRevertMessage is used when a node reports a failed status without a
// revert reason.
const defaultRevertMessage = "transaction reverted"

type (
	// LogResponse represents an event log entry of a receipt returned by the
	// Ethereum JSON-RPC API.
	LogResponse struct {
		Address          string    `json:"address"`
		Topics           []string  `json:"topics"`
		Data             string    `json:"data"`
		BlockNumber      types.Hex `json:"blockNumber"`
		TransactionHash  string    `json:"transactionHash"`
		TransactionIndex types.Hex `json:"transactionIndex"`
		BlockHash        string    `json:"blockHash"`
		LogIndex         types.Hex `json:"logIndex"`
		Removed          bool      `json:"removed"`
	}

	// ReceiptResponse represents a transaction receipt returned by
	// eth_getTransactionReceipt.
	ReceiptResponse struct {
		TransactionHash   string        `json:"transactionHash"`
		TransactionIndex  types.Hex     `json:"transactionIndex"`
		BlockHash         string        `json:"blockHash"`
		BlockNumber       types.Hex     `json:"blockNumber"`
		From              string        `json:"from"`
		To                string        `json:"to"`
		CumulativeGasUsed types.Hex     `json:"cumulativeGasUsed"`
		GasUsed           types.Hex     `json:"gasUsed"`
		EffectiveGasPrice types.Hex     `json:"effectiveGasPrice"`
		ContractAddress   string        `json:"contractAddress"`
		Logs              []LogResponse `json:"logs"`
		LogsBloom         string        `json:"logsBloom"`
		Type              types.Hex     `json:"type"`
		Status            types.Hex     `json:"status"`
		RevertReason      string        `json:"revertReason"` // only set by nodes that record revert reasons
	}
)

// failed reports whether the receipt status marks the transaction as reverted.
// Pre-Byzantium receipts carry no status and are treated as successful.
func (r ReceiptResponse) failed() bool {
	return !r.Status.IsEmpty() && r.Status.Int() == 0
}

// toTxwatchReceipt converts a ReceiptResponse to a txwatch.Receipt.
func (r ReceiptResponse) toTxwatchReceipt() txwatch.Receipt {
	logs := make([]txwatch.Log, len(r.Logs))
	for i, l := range r.Logs {
		logs[i] = txwatch.Log{
			Address:  l.Address,
			Topics:   l.Topics,
			Data:     l.Data,
			LogIndex: l.LogIndex,
		}
	}

	receipt := txwatch.Receipt{
		TransactionHash: r.TransactionHash,
		BlockHash:       r.BlockHash,
		BlockNumber:     r.BlockNumber,
		From:            r.From,
		To:              r.To,
		GasUsed:         r.GasUsed,
		Status:          r.Status,
		Logs:            logs,
	}

	if r.failed() {
		receipt.Error = true
		receipt.Message = r.RevertReason
		if receipt.Message == "" {
			receipt.Message = defaultRevertMessage
		}
	}

	return receipt
}

// isNull reports whether a JSON-RPC result is empty or a JSON null.
func isNull(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// GetReceipt implements the txwatch.Session interface.
// A null result means the transaction is not mined yet.
func (s *session) GetReceipt(ctx context.Context, txHash string) (*txwatch.Receipt, error) {
	data, err := s.conn.Fetch(ctx, "eth_getTransactionReceipt", txHash)
	if err != nil {
		return nil, err
	}

	if isNull(data) {
		return nil, nil
	}

	var receiptResponse ReceiptResponse
	if err := json.Unmarshal(data, &receiptResponse); err != nil {
		return nil, err
	}

	receipt := receiptResponse.toTxwatchReceipt()
	return &receipt, nil
}
