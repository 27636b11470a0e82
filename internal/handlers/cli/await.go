package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/txwatch/internal/txwatch"

	"github.com/urfave/cli/v3"
)

// awaitConfirmationCommand returns a CLI command that blocks until a
// transaction is mined and prints its validated receipt.
//
// Usage example:
//
//	txwatch await --tx 0x5c50... --timeout 5m
//
// The command stops early on an interrupt (SIGINT or SIGTERM).
func awaitConfirmationCommand(svc txwatch.Service) *cli.Command {
	return &cli.Command{
		Name:        "await",
		Description: "Wait until a transaction is mined and print its receipt.",
		Usage:       "Waits for a transaction to be mined. Fails if it was mined but reverted.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "tx",
				Usage:    "Hash of the transaction to wait for",
				Required: true,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Give up after this duration (0 waits forever)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			if timeout := c.Duration("timeout"); timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			receipt, err := svc.AwaitConfirmation(ctx, c.String("tx"))
			if err != nil {
				return err
			}

			return printJSON(c, receipt)
		},
	}
}
