package ledger

import (
	"context"
	"fmt"

	"github.com/gabapcia/forgeledger/internal/pkg/logger"
	"github.com/gabapcia/forgeledger/internal/pkg/validator"

	"github.com/shopspring/decimal"
)

// mintInput validates the amounts of a minting operation.
type mintInput struct {
	AmountFC  decimal.Decimal `validate:"gt=0"`
	AmountUSD decimal.Decimal `validate:"gte=0"`
}

// moveInput validates the amount of a wallet to wallet movement or burn.
type moveInput struct {
	AmountFC decimal.Decimal `validate:"gt=0"`
}

// validateAmounts wraps validation failures in ErrInvalidAmount.
func validateAmounts(v any) error {
	if err := validator.Validate(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}

	return nil
}

// mint appends a block from SystemWallet to dest and credits dest.
// No block is staged when dest does not exist.
func (u *unitOfWork) mint(ctx context.Context, kind Kind, amountFC, amountUSD decimal.Decimal, dest string, metadata map[string]string) (Block, error) {
	if _, err := u.wallet(ctx, dest); err != nil {
		return Block{}, err
	}

	block, err := u.append(blockFields{
		kind:      kind,
		from:      SystemWallet,
		to:        dest,
		amountFC:  amountFC,
		amountUSD: amountUSD,
		metadata:  metadata,
	})
	if err != nil {
		return Block{}, err
	}

	if err := u.credit(ctx, dest, amountFC, amountUSD); err != nil {
		return Block{}, err
	}

	return block, nil
}

// move debits src, credits dest and appends the block recording it.
// The USD amount is derived from amountFC at ExchangeRate.
func (u *unitOfWork) move(ctx context.Context, kind Kind, src, dest string, amountFC decimal.Decimal, metadata map[string]string) (Block, error) {
	if src == dest {
		return Block{}, ErrSelfTransfer
	}

	if _, err := u.wallet(ctx, src); err != nil {
		return Block{}, fmt.Errorf("source %s: %w", src, err)
	}

	if _, err := u.wallet(ctx, dest); err != nil {
		return Block{}, fmt.Errorf("destination %s: %w", dest, err)
	}

	amountUSD := ConvertToUSD(amountFC)

	if err := u.debit(ctx, src, amountFC, amountUSD); err != nil {
		return Block{}, err
	}

	if err := u.credit(ctx, dest, amountFC, amountUSD); err != nil {
		return Block{}, err
	}

	block, err := u.append(blockFields{
		kind:      kind,
		from:      src,
		to:        dest,
		amountFC:  amountFC,
		amountUSD: amountUSD,
		metadata:  metadata,
	})
	return block, err
}

// Emit mints amountFC (worth amountUSD) into dest. No wallet is debited.
func (s *service) Emit(ctx context.Context, amountFC, amountUSD decimal.Decimal, dest, reason string) (Block, error) {
	if err := validateAmounts(mintInput{AmountFC: amountFC, AmountUSD: amountUSD}); err != nil {
		return Block{}, err
	}

	var block Block
	err := s.mutate(ctx, "Emit", func(u *unitOfWork) (err error) {
		block, err = u.mint(ctx, KindEmission, amountFC, amountUSD, dest, map[string]string{"reason": reason})
		return err
	})
	if err != nil {
		return Block{}, err
	}

	logger.Info(ctx, "forgecoins emitted",
		"block.index", block.Index,
		"block.hash", block.Hash,
		"wallet.id", dest,
		"amount.fc", amountFC.String(),
	)
	return block, nil
}

// Reward mints amountFC into dest as a Reward block valued at ExchangeRate.
func (s *service) Reward(ctx context.Context, amountFC decimal.Decimal, dest, reason string) (Block, error) {
	amountUSD := ConvertToUSD(amountFC)
	if err := validateAmounts(mintInput{AmountFC: amountFC, AmountUSD: amountUSD}); err != nil {
		return Block{}, err
	}

	var block Block
	err := s.mutate(ctx, "Reward", func(u *unitOfWork) (err error) {
		block, err = u.mint(ctx, KindReward, amountFC, amountUSD, dest, map[string]string{"reason": reason})
		return err
	})
	if err != nil {
		return Block{}, err
	}

	logger.Info(ctx, "reward granted",
		"block.index", block.Index,
		"wallet.id", dest,
		"amount.fc", amountFC.String(),
	)
	return block, nil
}

// Transfer moves amountFC from src to dest. The debit, the credit and the
// appended block are committed together or not at all.
func (s *service) Transfer(ctx context.Context, src, dest string, amountFC decimal.Decimal, concept string) (Block, error) {
	return s.transfer(ctx, "Transfer", KindTransfer, src, dest, amountFC, concept)
}

// Pay is a Transfer recorded as a Payment block.
func (s *service) Pay(ctx context.Context, src, dest string, amountFC decimal.Decimal, concept string) (Block, error) {
	return s.transfer(ctx, "Pay", KindPayment, src, dest, amountFC, concept)
}

func (s *service) transfer(ctx context.Context, operation string, kind Kind, src, dest string, amountFC decimal.Decimal, concept string) (Block, error) {
	if err := validateAmounts(moveInput{AmountFC: amountFC}); err != nil {
		return Block{}, err
	}

	var block Block
	err := s.mutate(ctx, operation, func(u *unitOfWork) (err error) {
		block, err = u.move(ctx, kind, src, dest, amountFC, map[string]string{"concept": concept})
		return err
	})
	if err != nil {
		logger.Warn(ctx, "transfer rejected",
			"block.kind", kind.String(),
			"wallet.from", src,
			"wallet.to", dest,
			"amount.fc", amountFC.String(),
			"error", err,
		)
		return Block{}, err
	}

	logger.Info(ctx, "forgecoins transferred",
		"block.index", block.Index,
		"block.kind", kind.String(),
		"wallet.from", src,
		"wallet.to", dest,
		"amount.fc", amountFC.String(),
	)
	return block, nil
}

// Burn destroys amountFC held by walletID, recording a block to SystemWallet.
func (s *service) Burn(ctx context.Context, walletID string, amountFC decimal.Decimal, reason string) (Block, error) {
	if err := validateAmounts(moveInput{AmountFC: amountFC}); err != nil {
		return Block{}, err
	}

	amountUSD := ConvertToUSD(amountFC)

	var block Block
	err := s.mutate(ctx, "Burn", func(u *unitOfWork) error {
		if err := u.debit(ctx, walletID, amountFC, amountUSD); err != nil {
			return err
		}

		var err error
		block, err = u.append(blockFields{
			kind:      KindBurn,
			from:      walletID,
			to:        SystemWallet,
			amountFC:  amountFC,
			amountUSD: amountUSD,
			metadata:  map[string]string{"reason": reason},
		})
		return err
	})
	if err != nil {
		return Block{}, err
	}

	logger.Info(ctx, "forgecoins burned",
		"block.index", block.Index,
		"wallet.id", walletID,
		"amount.fc", amountFC.String(),
	)
	return block, nil
}

// Supply is the amount of FC (and its USD counterpart) held across wallets.
type Supply struct {
	FC      decimal.Decimal
	USD     decimal.Decimal
	Wallets int
}

// TotalSupply returns the sum of every wallet balance.
func (s *service) TotalSupply(ctx context.Context) (Supply, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot, err := s.storage.Snapshot(ctx)
	if err != nil {
		return Supply{}, err
	}

	supply := Supply{
		FC:      decimal.Zero,
		USD:     decimal.Zero,
		Wallets: len(snapshot.Wallets),
	}
	for _, w := range snapshot.Wallets {
		supply.FC = supply.FC.Add(w.BalanceFC)
		supply.USD = supply.USD.Add(w.BalanceUSD)
	}

	return supply, nil
}
