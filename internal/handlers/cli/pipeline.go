package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/forgeledger/internal/audit"
	"github.com/gabapcia/forgeledger/internal/ledger"
	"github.com/gabapcia/forgeledger/internal/pkg/x/chflow"

	"github.com/urfave/cli/v3"
)

// auditCommand returns a CLI command that runs the scheduled integrity audit
// and prints every report it produces.
//
// Usage example:
//
//	forgeledger audit
//
// The process runs indefinitely until it receives an interrupt (SIGINT or SIGTERM).
func auditCommand(auditor audit.Service) *cli.Command {
	return &cli.Command{
		Name:        "audit",
		Description: "Starts the periodic chain integrity audit and prints each report.",
		Usage:       "Runs the audit schedule. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			reportsCh, err := auditor.Start(ctx)
			if err != nil {
				return err
			}
			defer auditor.Close()

			return chflow.ForEach(ctx, reportsCh, func(report ledger.Report) error {
				return renderReport(out(c), report)
			})
		},
	}
}
