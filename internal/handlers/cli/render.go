package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gabapcia/forgeledger/internal/ledger"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
)

// out returns the writer every command renders to.
func out(c *cli.Command) io.Writer {
	return c.Root().Writer
}

// decimalFlag parses the string flag name as a decimal amount.
func decimalFlag(c *cli.Command, name string) (decimal.Decimal, error) {
	raw := c.String(name)

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid --%s %q: %w", name, raw, err)
	}

	return d, nil
}

// renderTable writes data as a table whose first row is the header.
func renderTable(w io.Writer, data pterm.TableData) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, table)
	return err
}

func renderBlocks(w io.Writer, blocks ...ledger.Block) error {
	data := pterm.TableData{
		{"Index", "Kind", "From", "To", "FC", "USD", "Timestamp", "Hash"},
	}
	for _, b := range blocks {
		data = append(data, []string{
			strconv.FormatUint(b.Index, 10),
			b.Kind.String(),
			b.From,
			b.To,
			b.AmountFC.String(),
			b.AmountUSD.String(),
			b.Timestamp.Format(time.RFC3339),
			b.Hash,
		})
	}

	return renderTable(w, data)
}

func renderWallet(w io.Writer, wallet ledger.Wallet) error {
	return renderTable(w, pterm.TableData{
		{"Wallet", "Owner", "Owner type", "Alias", "FC", "USD", "Updated"},
		{
			wallet.ID,
			wallet.OwnerID,
			wallet.OwnerType,
			wallet.Alias,
			wallet.BalanceFC.String(),
			wallet.BalanceUSD.String(),
			wallet.UpdatedAt.Format(time.RFC3339),
		},
	})
}

func renderReport(w io.Writer, report ledger.Report) error {
	if report.OK() {
		_, err := fmt.Fprintln(w, pterm.Success.Sprintf("chain intact: %d blocks, %d wallets, head %s",
			report.Blocks, report.Wallets, report.HeadHash))
		return err
	}

	data := pterm.TableData{
		{"Kind", "Block", "Wallet", "Detail"},
	}
	for _, d := range report.Discrepancies {
		index := ""
		if d.WalletID == "" {
			index = strconv.FormatUint(d.Index, 10)
		}

		data = append(data, []string{d.Kind.String(), index, d.WalletID, d.Detail})
	}

	if _, err := fmt.Fprintln(w, pterm.Error.Sprintf("%d discrepancies found", len(report.Discrepancies))); err != nil {
		return err
	}

	return renderTable(w, data)
}
