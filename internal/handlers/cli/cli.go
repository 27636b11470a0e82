package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/gabapcia/txwatch/internal/txwatch"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the txwatch CLI application.
//
// It registers all available commands, including:
//
//   - `await`: Waits until a transaction is mined and prints its receipt.
//   - `show`: Prints the outcome recorded for a previously watched transaction.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, svc txwatch.Service) error {
	return newApp(svc, os.Stdout).Run(ctx, os.Args)
}

func newApp(svc txwatch.Service, w io.Writer) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "txwatch",
		Description:           "Command-line interface for waiting on blockchain transaction confirmations.",
		Usage:                 "txwatch [command] [flags]",
		Writer:                w,
		Commands: []*cli.Command{
			awaitConfirmationCommand(svc),
			showConfirmationCommand(svc),
		},
	}
}

// printJSON writes v as indented JSON to the root command writer.
func printJSON(c *cli.Command, v any) error {
	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
