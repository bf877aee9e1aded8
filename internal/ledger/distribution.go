package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/forgeledger/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Share is the part of a distribution minted into one category wallet.
type Share struct {
	Category   Category
	Percentage decimal.Decimal
	AmountUSD  decimal.Decimal
	AmountFC   decimal.Decimal
	WalletID   string
	BlockIndex uint64
}

// DistributionSummary describes a completed distribution.
//
// Every emission of a distribution carries its ID in the "distribution_id"
// metadata key, and all of them are committed together.
type DistributionSummary struct {
	ID          string
	TotalUSD    decimal.Decimal
	Shares      []Share
	HeadHash    string
	CompletedAt time.Time
}

// validatePercentages checks that every category is known, no percentage is
// negative and the total is 100 within distributionTolerance.
func validatePercentages(percentages map[Category]decimal.Decimal) error {
	if len(percentages) == 0 {
		return fmt.Errorf("%w: no percentages given", ErrInvalidDistribution)
	}

	total := decimal.Zero
	for category, pct := range percentages {
		if !category.Valid() {
			return fmt.Errorf("%w: unknown category %s", ErrInvalidDistribution, category)
		}

		if pct.IsNegative() {
			return fmt.Errorf("%w: negative percentage for %s", ErrInvalidDistribution, category)
		}

		total = total.Add(pct)
	}

	if total.Sub(hundred).Abs().GreaterThan(distributionTolerance) {
		return fmt.Errorf("%w: percentages sum to %s, expected 100", ErrInvalidDistribution, total)
	}

	return nil
}

// categoryWallet resolves the well-known wallet of category, staging a new
// one when it does not exist yet.
func (u *unitOfWork) categoryWallet(ctx context.Context, category Category) (Wallet, error) {
	alias := category.WalletAlias()

	w, err := u.walletByAlias(ctx, alias)
	if err == nil {
		return w, nil
	}

	if !errors.Is(err, ErrWalletNotFound) {
		return Wallet{}, err
	}

	return u.registerWallet(ctx, alias, OwnerTypeSystem, alias)
}

// Distribute mints totalUSD across the category wallets according to
// percentages. For each category the USD share is total*pct/100 and the FC
// share is the USD share at ExchangeRate. Missing category wallets are
// created on the fly.
//
// The distribution is all-or-nothing: every emission and every lazily
// created wallet is committed in a single unit of work.
func (s *service) Distribute(ctx context.Context, totalUSD decimal.Decimal, percentages map[Category]decimal.Decimal) (DistributionSummary, error) {
	if !totalUSD.IsPositive() {
		return DistributionSummary{}, fmt.Errorf("%w: total must be positive, got %s", ErrInvalidAmount, totalUSD)
	}

	if err := validatePercentages(percentages); err != nil {
		return DistributionSummary{}, err
	}

	summary := DistributionSummary{
		ID:       uuid.Must(uuid.NewV7()).String(),
		TotalUSD: totalUSD,
	}

	err := s.mutate(ctx, "Distribute", func(u *unitOfWork) error {
		shares := make([]Share, 0, len(percentages))

		for _, category := range Categories() {
			pct, ok := percentages[category]
			if !ok || pct.IsZero() {
				continue
			}

			usdShare := totalUSD.Mul(pct).Div(hundred)
			fcShare := ConvertFromUSD(usdShare)

			wallet, err := u.categoryWallet(ctx, category)
			if err != nil {
				return err
			}

			block, err := u.mint(ctx, KindEmission, fcShare, usdShare, wallet.ID, map[string]string{
				"reason":          "distribution " + category.String(),
				"distribution_id": summary.ID,
				"category":        category.String(),
			})
			if err != nil {
				return fmt.Errorf("distribution share %s: %w", category, err)
			}

			shares = append(shares, Share{
				Category:   category,
				Percentage: pct,
				AmountUSD:  usdShare,
				AmountFC:   fcShare,
				WalletID:   wallet.ID,
				BlockIndex: block.Index,
			})
		}

		summary.Shares = shares
		summary.HeadHash = u.head.Hash
		summary.CompletedAt = u.now
		return nil
	})
	if err != nil {
		logger.Error(ctx, "distribution failed",
			"distribution.id", summary.ID,
			"distribution.total_usd", totalUSD.String(),
			"error", err,
		)
		return DistributionSummary{}, err
	}

	logger.Info(ctx, "distribution completed",
		"distribution.id", summary.ID,
		"distribution.total_usd", totalUSD.String(),
		"distribution.shares", len(summary.Shares),
		"chain.head", summary.HeadHash,
	)
	return summary, nil
}
