package cli

import (
	"context"
	"os"

	"github.com/gabapcia/forgeledger/internal/audit"
	"github.com/gabapcia/forgeledger/internal/ledger"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the forgeledger CLI application.
//
// It registers all available commands, including:
//
//   - `wallet`: Creates wallets and inspects their balance and history.
//   - `emit`, `reward`: Mint new FC into a wallet.
//   - `transfer`, `pay`, `burn`: Move or destroy FC held by a wallet.
//   - `distribute`: Splits a USD amount across the category wallets.
//   - `verify`, `head`, `supply`: Inspect the chain.
//   - `audit`: Runs the periodic integrity audit until interrupted.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - svc: The ledger service used by every ledger command.
//   - auditor: The audit service used by the audit command.
func Run(ctx context.Context, svc ledger.Service, auditor audit.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "forgeledger",
		Description:           "Command-line interface for operating the ForgeCoin ledger.",
		Usage:                 "forgeledger [command] [flags]",
		Commands: []*cli.Command{
			walletCommand(svc),
			emitCommand(svc),
			rewardCommand(svc),
			transferCommand(svc),
			payCommand(svc),
			burnCommand(svc),
			distributeCommand(svc),
			verifyCommand(svc),
			headCommand(svc),
			supplyCommand(svc),
			auditCommand(auditor),
		},
	}

	return app.Run(ctx, os.Args)
}
