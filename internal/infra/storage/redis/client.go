// Package redis stores the outcome of transaction watches on a Redis server.
package redis

import (
	"context"

	redis "github.com/redis/go-redis/v9"
)

// defaultKeyPrefix namespaces every key written by the watcher.
const defaultKeyPrefix = "txwatch"

type config struct {
	keyPrefix string
}

// Option configures the Redis client.
type Option func(*config)

// WithKeyPrefix sets the namespace of the keys written by the client, so that
// several deployments can share a database. An empty prefix keeps the default.
func WithKeyPrefix(prefix string) Option {
	return func(c *config) {
		if prefix != "" {
			c.keyPrefix = prefix
		}
	}
}

type client struct {
	conn      *redis.Client
	keyPrefix string
}

// Close releases the underlying connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to the Redis server at addr and pings it before returning.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	cfg := config{keyPrefix: defaultKeyPrefix}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &client{
		conn:      conn,
		keyPrefix: cfg.keyPrefix,
	}, nil
}
