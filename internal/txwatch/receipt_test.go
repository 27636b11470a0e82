package txwatch

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReceipt(t *testing.T) {
	t.Run("successful receipt is returned unchanged", func(t *testing.T) {
		receipt := *minedReceipt("0xabc")

		got, err := ValidateReceipt(receipt)

		require.NoError(t, err)
		assert.Equal(t, receipt, got)
	})

	t.Run("failed receipt yields a mining error with its message", func(t *testing.T) {
		receipt := Receipt{TransactionHash: "0xabc", Error: true, Message: "reverted"}

		got, err := ValidateReceipt(receipt)

		var miningErr *MiningError
		require.ErrorAs(t, err, &miningErr)
		assert.Equal(t, "reverted", miningErr.Message)
		assert.Equal(t, Receipt{}, got)
	})

	t.Run("failed receipt without message", func(t *testing.T) {
		_, err := ValidateReceipt(Receipt{Error: true})

		assert.EqualError(t, err, ErrTransactionFailed.Error())
	})

	t.Run("message is ignored when the error indicator is unset", func(t *testing.T) {
		receipt := Receipt{TransactionHash: "0xabc", Message: "informational"}

		got, err := ValidateReceipt(receipt)

		require.NoError(t, err)
		assert.Equal(t, receipt, got)
	})
}

func TestMiningError(t *testing.T) {
	err := &MiningError{Message: "out of gas"}

	assert.Equal(t, "out of gas", err.Error())
	assert.True(t, errors.Is(err, ErrTransactionFailed))
	assert.True(t, errors.Is(fmt.Errorf("watch: %w", err), ErrTransactionFailed))
	assert.False(t, errors.Is(err, ErrConnectionFailed))
}
