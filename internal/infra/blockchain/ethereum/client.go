// Package ethereum implements the txwatch.Connector and txwatch.Session
// interfaces for Ethereum-compatible nodes using a JSON-RPC client.
package ethereum

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gabapcia/txwatch/internal/pkg/logger"
	"github.com/gabapcia/txwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txwatch/internal/txwatch"
)

const (
	// defaultConnectionTimeout bounds the reachability probe sent by Connect.
	defaultConnectionTimeout = 3 * time.Second

	// averageBlockTime defines the expected time between blocks in Ethereum.
	averageBlockTime = 12 * time.Second
)

type config struct {
	connectionTimeout time.Duration // bound for the probe sent by Connect
	pollInterval      time.Duration // delay between two block polls of a subscription
}

// Option configures the connector.
type Option func(*config)

// WithConnectionTimeout bounds the reachability probe sent by Connect.
// Default: 3 seconds.
func WithConnectionTimeout(d time.Duration) Option {
	return func(c *config) {
		c.connectionTimeout = d
	}
}

// WithPollInterval sets how often block subscriptions ask the node for new
// blocks. Default: 12 seconds.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// connector implements the txwatch.Connector interface for Ethereum-based networks.
// It communicates with an Ethereum node via a JSON-RPC client.
type connector struct {
	conn jsonrpc.Client
	cfg  config
}

// Ensure connector implements the txwatch.Connector interface at compile time.
var _ txwatch.Connector = (*connector)(nil)

// NewConnector creates an Ethereum connector using the provided JSON-RPC connection.
func NewConnector(conn jsonrpc.Client, opts ...Option) *connector {
	cfg := config{
		connectionTimeout: defaultConnectionTimeout,
		pollInterval:      averageBlockTime,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &connector{
		conn: conn,
		cfg:  cfg,
	}
}

// Connect implements the txwatch.Connector interface.
//
// It probes the node with net_version. Nodes that do not implement the method
// answer with a "method not found" error, which still proves the node is
// reachable, so the session is established anyway.
func (c *connector) Connect(ctx context.Context) (txwatch.Session, error) {
	probeCtx, cancel := context.WithTimeout(ctx, c.cfg.connectionTimeout)
	defer cancel()

	data, err := c.conn.Fetch(probeCtx, "net_version")
	switch {
	case jsonrpc.IsMethodNotFound(err):
		logger.Warn(ctx, "node does not implement net_version, assuming it is reachable", "error", err)
	case err != nil:
		return nil, err
	default:
		var networkID string
		if err := json.Unmarshal(data, &networkID); err != nil {
			return nil, err
		}
		logger.Debug(ctx, "connected to node", "network.id", networkID)
	}

	return newSession(c.conn, c.cfg.pollInterval), nil
}

// session implements the txwatch.Session interface on top of a JSON-RPC client.
type session struct {
	conn         jsonrpc.Client
	pollInterval time.Duration

	mu            sync.Mutex
	subscriptions map[txwatch.SubscriptionID]context.CancelFunc
}

// Ensure session implements the txwatch.Session interface at compile time.
var _ txwatch.Session = (*session)(nil)

func newSession(conn jsonrpc.Client, pollInterval time.Duration) *session {
	return &session{
		conn:          conn,
		pollInterval:  pollInterval,
		subscriptions: make(map[txwatch.SubscriptionID]context.CancelFunc),
	}
}
