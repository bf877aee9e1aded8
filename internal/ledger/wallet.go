package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/gabapcia/forgeledger/internal/pkg/logger"
	"github.com/gabapcia/forgeledger/internal/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OwnerTypeSystem is the owner type of wallets the ledger creates itself.
const OwnerTypeSystem = "sistema"

// walletIDLength is the number of hex characters kept from the ID digest.
const walletIDLength = 16

// maxWalletIDAttempts bounds the retries when a generated ID is already taken.
const maxWalletIDAttempts = 3

// Wallet is a named balance holder.
type Wallet struct {
	ID         string          // stable identifier derived at creation
	OwnerID    string          // owner reference (user, category, ...)
	OwnerType  string          // free-form owner category, e.g. "usuario"
	Alias      string          // well-known name for ledger-managed wallets, empty otherwise
	BalanceFC  decimal.Decimal // FC balance, never negative
	BalanceUSD decimal.Decimal // informational USD balance, never negative
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// walletInput is the validated input of CreateWallet.
type walletInput struct {
	OwnerID   string `validate:"required,max=128"`
	OwnerType string `validate:"required,max=64"`
}

// newWalletID derives a wallet identifier from the owner, the creation time
// and a random UUIDv7, so repeated calls for one owner never collide.
func newWalletID(ownerID, ownerType string, createdAt time.Time) string {
	seed := fmt.Sprintf("%s_%s_%d_%s", ownerID, ownerType, createdAt.UnixNano(), uuid.Must(uuid.NewV7()))
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])[:walletIDLength]
}

// newWallet builds an empty wallet for the given owner.
func newWallet(ownerID, ownerType string, now time.Time) Wallet {
	return Wallet{
		ID:         newWalletID(ownerID, ownerType, now),
		OwnerID:    ownerID,
		OwnerType:  ownerType,
		BalanceFC:  decimal.Zero,
		BalanceUSD: decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// registerWallet stages a new wallet in u, regenerating its ID if it is
// already taken.
func (u *unitOfWork) registerWallet(ctx context.Context, ownerID, ownerType, alias string) (Wallet, error) {
	for range maxWalletIDAttempts {
		w := newWallet(ownerID, ownerType, u.now)
		w.Alias = alias

		_, err := u.wallet(ctx, w.ID)
		if errors.Is(err, ErrWalletNotFound) {
			u.stage(w)
			return w, nil
		}
		if err != nil {
			return Wallet{}, err
		}
	}

	return Wallet{}, fmt.Errorf("could not allocate a unique wallet id for owner %q", ownerID)
}

// credit adds fc and usd to the staged balance of walletID.
func (u *unitOfWork) credit(ctx context.Context, walletID string, fc, usd decimal.Decimal) error {
	w, err := u.wallet(ctx, walletID)
	if err != nil {
		return err
	}

	w.BalanceFC = w.BalanceFC.Add(fc)
	w.BalanceUSD = w.BalanceUSD.Add(usd)
	w.UpdatedAt = u.now
	u.stage(w)
	return nil
}

// debit subtracts fc and usd from the staged balance of walletID.
//
// It fails with ErrInsufficientFunds, leaving the wallet untouched, when
// either balance would become negative.
func (u *unitOfWork) debit(ctx context.Context, walletID string, fc, usd decimal.Decimal) error {
	w, err := u.wallet(ctx, walletID)
	if err != nil {
		return err
	}

	if w.BalanceFC.LessThan(fc) || w.BalanceUSD.LessThan(usd) {
		return fmt.Errorf("%w: wallet %s holds %s FC / %s USD, needs %s FC / %s USD",
			ErrInsufficientFunds, walletID, w.BalanceFC, w.BalanceUSD, fc, usd)
	}

	w.BalanceFC = w.BalanceFC.Sub(fc)
	w.BalanceUSD = w.BalanceUSD.Sub(usd)
	w.UpdatedAt = u.now
	u.stage(w)
	return nil
}

// CreateWallet registers a new wallet with zero balances and returns its ID.
// Repeated calls with the same owner create distinct wallets.
func (s *service) CreateWallet(ctx context.Context, ownerID, ownerType string) (string, error) {
	if err := validator.Validate(walletInput{OwnerID: ownerID, OwnerType: ownerType}); err != nil {
		return "", err
	}

	var created Wallet
	err := s.mutate(ctx, "CreateWallet", func(u *unitOfWork) error {
		w, err := u.registerWallet(ctx, ownerID, ownerType, "")
		if err != nil {
			return err
		}

		created = w
		return nil
	})
	if err != nil {
		return "", err
	}

	logger.Info(ctx, "wallet created",
		"wallet.id", created.ID,
		"wallet.owner_id", ownerID,
		"wallet.owner_type", ownerType,
	)
	return created.ID, nil
}

// GetBalance returns the current wallet record, or ErrWalletNotFound.
func (s *service) GetBalance(ctx context.Context, walletID string) (Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.storage.GetWallet(ctx, walletID)
}

// WalletHistory returns up to limit blocks that move value into or out of
// walletID, newest first. A non-positive limit returns every block.
func (s *service) WalletHistory(ctx context.Context, walletID string, limit int) ([]Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.storage.GetWallet(ctx, walletID); err != nil {
		return nil, err
	}

	snapshot, err := s.storage.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	history := make([]Block, 0)
	for _, b := range slices.Backward(snapshot.Blocks) {
		if !b.Involves(walletID) {
			continue
		}

		history = append(history, b.Clone())
		if limit > 0 && len(history) == limit {
			break
		}
	}

	return history, nil
}
