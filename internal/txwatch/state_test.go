package txwatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWatchState(t *testing.T) {
	tests := []struct {
		state    WatchState
		name     string
		terminal bool
	}{
		{StateNotStarted, "not_started", false},
		{StateChecking, "checking", false},
		{StateSubscribed, "subscribed", false},
		{StateResolved, "resolved", true},
		{StateFailed, "failed", true},
		{WatchState(42), "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.state.String())
			assert.Equal(t, tt.terminal, tt.state.IsTerminal())
		})
	}
}

func TestBlock_Includes(t *testing.T) {
	block := Block{
		Height:       "0x10",
		Transactions: []string{"0xAbC", "0xdef"},
	}

	assert.True(t, block.Includes("0xabc"))
	assert.True(t, block.Includes("0xDEF"))
	assert.False(t, block.Includes("0x123"))
	assert.False(t, Block{}.Includes("0xabc"))
}
