package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/forgeledger/internal/ledger"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

// defaultOwnerType is the owner type of wallets created from the CLI.
const defaultOwnerType = "usuario"

// walletCommand groups the wallet registry commands.
func walletCommand(svc ledger.Service) *cli.Command {
	return &cli.Command{
		Name:        "wallet",
		Description: "Create wallets and inspect their balances and history.",
		Usage:       "Manages ledger wallets.",
		Commands: []*cli.Command{
			createWalletCommand(svc),
			walletBalanceCommand(svc),
			walletHistoryCommand(svc),
		},
	}
}

// createWalletCommand returns a CLI command that registers a new wallet with
// zero balances.
//
// Usage example:
//
//	forgeledger wallet create --owner user-42
func createWalletCommand(svc ledger.Service) *cli.Command {
	return &cli.Command{
		Name:        "create",
		Description: "Register a new wallet with zero balances.",
		Usage:       "Creates a wallet for the given owner and prints its ID.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "owner",
				Usage:    "Owner identifier",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "type",
				Usage: "Owner type",
				Value: defaultOwnerType,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := svc.CreateWallet(ctx, c.String("owner"), c.String("type"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(out(c), pterm.Success.Sprintf("wallet %s created", id))
			return err
		},
	}
}

// walletBalanceCommand returns a CLI command that prints a wallet record.
//
// Usage example:
//
//	forgeledger wallet balance --id 3f9a0c1d2e4b5a67
func walletBalanceCommand(svc ledger.Service) *cli.Command {
	return &cli.Command{
		Name:        "balance",
		Description: "Show the FC and USD balances of a wallet.",
		Usage:       "Prints the wallet record.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Wallet ID",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			wallet, err := svc.GetBalance(ctx, c.String("id"))
			if err != nil {
				return err
			}

			return renderWallet(out(c), wallet)
		},
	}
}

// walletHistoryCommand returns a CLI command that lists the latest blocks
// involving a wallet.
//
// Usage example:
//
//	forgeledger wallet history --id 3f9a0c1d2e4b5a67 --limit 5
func walletHistoryCommand(svc ledger.Service) *cli.Command {
	return &cli.Command{
		Name:        "history",
		Description: "List the most recent blocks moving value into or out of a wallet.",
		Usage:       "Prints the wallet history, newest first.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Wallet ID",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of blocks to list (0 lists all)",
				Value: 20,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			blocks, err := svc.WalletHistory(ctx, c.String("id"), c.Int("limit"))
			if err != nil {
				return err
			}

			return renderBlocks(out(c), blocks...)
		},
	}
}
