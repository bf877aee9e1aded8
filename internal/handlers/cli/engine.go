package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gabapcia/forgeledger/internal/ledger"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
)

// emitCommand returns a CLI command that mints FC into a wallet.
//
// Usage example:
//
//	forgeledger emit --to 3f9a0c1d2e4b5a67 --fc 1000 --usd 100 --reason "monthly profit"
func emitCommand(svc ledger.Service) *cli.Command {
	return &cli.Command{
		Name:        "emit",
		Description: "Mint new FC from SYSTEM into a wallet.",
		Usage:       "Emits FC into the destination wallet and prints the appended block.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "to", Usage: "Destination wallet ID", Required: true},
			&cli.StringFlag{Name: "fc", Usage: "Amount of FC to mint", Required: true},
			&cli.StringFlag{Name: "usd", Usage: "USD value backing the emission", Value: "0"},
			&cli.StringFlag{Name: "reason", Usage: "Reason recorded in the block metadata"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			amountFC, err := decimalFlag(c, "fc")
			if err != nil {
				return err
			}

			amountUSD, err := decimalFlag(c, "usd")
			if err != nil {
				return err
			}

			block, err := svc.Emit(ctx, amountFC, amountUSD, c.String("to"), c.String("reason"))
			if err != nil {
				return err
			}

			return renderBlocks(out(c), block)
		},
	}
}

// rewardCommand returns a CLI command that mints FC into a wallet as a reward.
//
// Usage example:
//
//	forgeledger reward --to 3f9a0c1d2e4b5a67 --fc 50 --reason "bug bounty"
func rewardCommand(svc ledger.Service) *cli.Command {
	return &cli.Command{
		Name:        "reward",
		Description: "Mint FC into a wallet as a reward valued at the fixed exchange rate.",
		Usage:       "Rewards the destination wallet and prints the appended block.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "to", Usage: "Destination wallet ID", Required: true},
			&cli.StringFlag{Name: "fc", Usage: "Amount of FC to mint", Required: true},
			&cli.StringFlag{Name: "reason", Usage: "Reason recorded in the block metadata"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			amountFC, err := decimalFlag(c, "fc")
			if err != nil {
				return err
			}

			block, err := svc.Reward(ctx, amountFC, c.String("to"), c.String("reason"))
			if err != nil {
				return err
			}

			return renderBlocks(out(c), block)
		},
	}
}

// moveFlags are the flags shared by transfer and pay.
func moveFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "from", Usage: "Source wallet ID", Required: true},
		&cli.StringFlag{Name: "to", Usage: "Destination wallet ID", Required: true},
		&cli.StringFlag{Name: "fc", Usage: "Amount of FC to move", Required: true},
		&cli.StringFlag{Name: "concept", Usage: "Concept recorded in the block metadata"},
	}
}

type moveFunc func(ctx context.Context, src, dest string, amountFC decimal.Decimal, concept string) (ledger.Block, error)

func moveAction(move moveFunc) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		amountFC, err := decimalFlag(c, "fc")
		if err != nil {
			return err
		}

		block, err := move(ctx, c.String("from"), c.String("to"), amountFC, c.String("concept"))
		if err != nil {
			return err
		}

		return renderBlocks(out(c), block)
	}
}

// transferCommand returns a CLI command that moves FC between two wallets.
//
// Usage example:
//
//	forgeledger transfer --from 3f9a0c1d2e4b5a67 --to 8b7c6d5e4f3a2b10 --fc 25
func transferCommand(svc ledger.Service) *cli.Command {
	return &cli.Command{
		Name:        "transfer",
		Description: "Move FC from one wallet to another.",
		Usage:       "Transfers FC and prints the appended block.",
		Flags:       moveFlags(),
		Action:      moveAction(svc.Transfer),
	}
}

// payCommand returns a CLI command that settles a purchase between two wallets.
func payCommand(svc ledger.Service) *cli.Command {
	return &cli.Command{
		Name:        "pay",
		Description: "Move FC from a buyer wallet to a seller wallet as a payment.",
		Usage:       "Pays FC and prints the appended block.",
		Flags:       moveFlags(),
		Action:      moveAction(svc.Pay),
	}
}

// burnCommand returns a CLI command that destroys FC held by a wallet.
func burnCommand(svc ledger.Service) *cli.Command {
	return &cli.Command{
		Name:        "burn",
		Description: "Destroy FC held by a wallet.",
		Usage:       "Burns FC and prints the appended block.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "wallet", Usage: "Wallet ID", Required: true},
			&cli.StringFlag{Name: "fc", Usage: "Amount of FC to burn", Required: true},
			&cli.StringFlag{Name: "reason", Usage: "Reason recorded in the block metadata"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			amountFC, err := decimalFlag(c, "fc")
			if err != nil {
				return err
			}

			block, err := svc.Burn(ctx, c.String("wallet"), amountFC, c.String("reason"))
			if err != nil {
				return err
			}

			return renderBlocks(out(c), block)
		},
	}
}

// parseShares turns "category=percentage" pairs into a percentage map.
func parseShares(raw []string) (map[ledger.Category]decimal.Decimal, error) {
	percentages := make(map[ledger.Category]decimal.Decimal, len(raw))
	for _, pair := range raw {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --share %q, expected category=percentage", pair)
		}

		category, err := ledger.ParseCategory(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}

		pct, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid --share %q: %w", pair, err)
		}

		percentages[category] = pct
	}

	return percentages, nil
}

// distributeCommand returns a CLI command that splits a USD amount across the
// category wallets.
//
// Usage example:
//
//	forgeledger distribute --total 1000 --share hive=40 --share development=30 --share reserve=30
func distributeCommand(svc ledger.Service) *cli.Command {
	return &cli.Command{
		Name:        "distribute",
		Description: "Mint a USD amount across the category wallets according to percentages summing to 100.",
		Usage:       "Distributes the total and prints one row per category share.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "total", Usage: "Total USD to distribute", Required: true},
			&cli.StringSliceFlag{Name: "share", Usage: "Category share as category=percentage (repeatable)", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			totalUSD, err := decimalFlag(c, "total")
			if err != nil {
				return err
			}

			percentages, err := parseShares(c.StringSlice("share"))
			if err != nil {
				return err
			}

			summary, err := svc.Distribute(ctx, totalUSD, percentages)
			if err != nil {
				return err
			}

			data := pterm.TableData{
				{"Category", "Percentage", "USD", "FC", "Wallet", "Block"},
			}
			for _, share := range summary.Shares {
				data = append(data, []string{
					share.Category.String(),
					share.Percentage.String(),
					share.AmountUSD.String(),
					share.AmountFC.String(),
					share.WalletID,
					strconv.FormatUint(share.BlockIndex, 10),
				})
			}

			if _, err := fmt.Fprintln(out(c), pterm.Success.Sprintf("distribution %s completed, head %s", summary.ID, summary.HeadHash)); err != nil {
				return err
			}

			return renderTable(out(c), data)
		},
	}
}
