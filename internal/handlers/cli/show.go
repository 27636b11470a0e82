package cli

import (
	"context"

	"github.com/gabapcia/txwatch/internal/txwatch"

	"github.com/urfave/cli/v3"
)

// showConfirmationCommand returns a CLI command that prints the outcome
// recorded for a transaction by an earlier await.
//
// Usage example:
//
//	txwatch show --tx 0x5c50...
func showConfirmationCommand(svc txwatch.Service) *cli.Command {
	return &cli.Command{
		Name:        "show",
		Description: "Print the recorded outcome of a watched transaction.",
		Usage:       "Reads the stored confirmation. Requires confirmation storage to be configured.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "tx",
				Usage:    "Hash of the watched transaction",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			confirmation, err := svc.GetConfirmation(ctx, c.String("tx"))
			if err != nil {
				return err
			}

			return printJSON(c, confirmation)
		},
	}
}
