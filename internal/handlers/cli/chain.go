package cli

import (
	"context"
	"strconv"

	"github.com/gabapcia/forgeledger/internal/ledger"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

// verifyCommand returns a CLI command that re-verifies the whole chain.
// It fails with the integrity violation when discrepancies are found.
func verifyCommand(svc ledger.Service) *cli.Command {
	return &cli.Command{
		Name:        "verify",
		Description: "Recompute every hash, link and balance of the ledger.",
		Usage:       "Verifies the chain and prints any discrepancy found.",
		Action: func(ctx context.Context, c *cli.Command) error {
			report, err := svc.Verify(ctx)
			if err != nil {
				return err
			}

			if err := renderReport(out(c), report); err != nil {
				return err
			}

			return report.Err()
		},
	}
}

// headCommand returns a CLI command that prints the current chain head.
func headCommand(svc ledger.Service) *cli.Command {
	return &cli.Command{
		Name:        "head",
		Description: "Show the next block index and the hash of the last block.",
		Usage:       "Prints the chain head.",
		Action: func(ctx context.Context, c *cli.Command) error {
			head, err := svc.Head(ctx)
			if err != nil {
				return err
			}

			return renderTable(out(c), pterm.TableData{
				{"Next index", "Head hash", "Revision"},
				{strconv.FormatUint(head.NextIndex, 10), head.Hash, strconv.FormatUint(head.Revision, 10)},
			})
		},
	}
}

// supplyCommand returns a CLI command that prints the FC in circulation.
func supplyCommand(svc ledger.Service) *cli.Command {
	return &cli.Command{
		Name:        "supply",
		Description: "Sum the balances of every wallet.",
		Usage:       "Prints the total FC and USD held across wallets.",
		Action: func(ctx context.Context, c *cli.Command) error {
			supply, err := svc.TotalSupply(ctx)
			if err != nil {
				return err
			}

			return renderTable(out(c), pterm.TableData{
				{"Wallets", "FC", "USD"},
				{strconv.Itoa(supply.Wallets), supply.FC.String(), supply.USD.String()},
			})
		},
	}
}
