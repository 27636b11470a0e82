package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gabapcia/txwatch/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/txwatch/internal/txwatch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyNode answers net_version normally and fails every receipt request with
// a 502 Bad Gateway.
type flakyNode struct {
	t *testing.T

	mu    sync.Mutex
	calls map[string]int
}

func (n *flakyNode) count(method string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls[method]
}

func (n *flakyNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID     string `json:"id"`
		Method string `json:"method"`
	}
	assert.NoError(n.t, json.NewDecoder(r.Body).Decode(&req))

	n.mu.Lock()
	n.calls[req.Method]++
	n.mu.Unlock()

	if req.Method != "net_version" {
		w.WriteHeader(http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	assert.NoError(n.t, json.NewEncoder(w).Encode(map[string]any{
		"jsonrpc": "2.0",
		"id":      req.ID,
		"result":  "1",
	}))
}

func TestNewNodeClient(t *testing.T) {
	newNode := func(t *testing.T) (*flakyNode, txwatch.Connector) {
		node := &flakyNode{t: t, calls: make(map[string]int)}
		srv := httptest.NewServer(node)
		t.Cleanup(srv.Close)

		return node, ethereum.NewConnector(newNodeClient(srv.URL, time.Second))
	}

	t.Run("receipt lookup is sent once", func(t *testing.T) {
		node, connector := newNode(t)

		session, err := connector.Connect(t.Context())
		require.NoError(t, err)

		receipt, err := session.GetReceipt(t.Context(), "0xabc")

		assert.Error(t, err)
		assert.Nil(t, receipt)
		assert.Equal(t, 1, node.count("eth_getTransactionReceipt"))
		assert.Equal(t, 1, node.count("net_version"))
	})

	t.Run("watch without retry policy fails after a single request", func(t *testing.T) {
		node, connector := newNode(t)
		svc := txwatch.New(connector)

		_, err := svc.AwaitConfirmation(t.Context(), "0xabc")

		assert.ErrorIs(t, err, txwatch.ErrReceiptLookupFailed)
		assert.Equal(t, 1, node.count("eth_getTransactionReceipt"))
	})
}
