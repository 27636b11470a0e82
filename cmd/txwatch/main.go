package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/txwatch/internal/config"
	"github.com/gabapcia/txwatch/internal/handlers/cli"
	"github.com/gabapcia/txwatch/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/txwatch/internal/infra/storage/redis"
	"github.com/gabapcia/txwatch/internal/pkg/logger"
	"github.com/gabapcia/txwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/txwatch/internal/pkg/telemetry"
	httptransport "github.com/gabapcia/txwatch/internal/pkg/transport/http"
	"github.com/gabapcia/txwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txwatch/internal/txwatch"
)

// shutdownTimeout bounds the final flush of telemetry.
const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		os.Exit(1)
	}
}

// newNodeClient builds the JSON-RPC client for the node. HTTP retries are
// disabled: every call is a single attempt and receipt lookups are retried
// only by the watcher's own retry policy.
func newNodeClient(endpoint string, timeout time.Duration) jsonrpc.Client {
	httpClient := httptransport.NewClient(
		httptransport.WithTimeout(timeout),
		httptransport.WithRetryMax(0),
	)

	return jsonrpc.NewClient(httpClient.StandardClient(), endpoint)
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to initialize telemetry:", err)
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()

	connector := ethereum.NewConnector(newNodeClient(cfg.NodeEndpoint, cfg.ConnectionTimeout),
		ethereum.WithConnectionTimeout(cfg.ConnectionTimeout),
		ethereum.WithPollInterval(cfg.BlockPollInterval),
	)

	opts := []txwatch.Option{
		txwatch.WithTimeout(cfg.WatchTimeout),
	}

	if cfg.LookupAttempts > 1 {
		opts = append(opts, txwatch.WithRetry(retry.New(retry.WithAttempts(cfg.LookupAttempts))))
	}

	if cfg.Redis.Enabled() {
		storage, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithKeyPrefix(cfg.Redis.KeyPrefix),
		)
		if err != nil {
			logger.Error(ctx, "failed to connect to redis", "error", err)
			return err
		}
		defer storage.Close()

		opts = append(opts, txwatch.WithConfirmationStorage(storage))
	}

	svc := txwatch.New(connector, opts...)

	if err := cli.Run(ctx, svc); err != nil {
		logger.Error(ctx, "command failed", "error", err)
		return err
	}

	return nil
}
