// Package storagetest holds the behaviour every ledger.Storage backend must
// share, so each backend runs the same suite against its own instance.
package storagetest

import (
	"testing"
	"time"

	"github.com/gabapcia/forgeledger/internal/ledger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty storage. It is called once per subtest.
type Factory func(t *testing.T) ledger.Storage

var baseTime = time.Date(2025, 1, 2, 3, 4, 5, 123456789, time.UTC)

// Wallet returns a wallet holding fc FC valued at the ledger exchange rate.
func Wallet(id, alias, fc string) ledger.Wallet {
	balance := decimal.RequireFromString(fc)
	return ledger.Wallet{
		ID:         id,
		OwnerID:    "owner-" + id,
		OwnerType:  "usuario",
		Alias:      alias,
		BalanceFC:  balance,
		BalanceUSD: ledger.ConvertToUSD(balance),
		CreatedAt:  baseTime,
		UpdatedAt:  baseTime,
	}
}

// Chain returns n hash-linked emission blocks into walletID, starting at
// block 1.
func Chain(walletID string, n int) []ledger.Block {
	blocks := make([]ledger.Block, 0, n)
	prev := ledger.GenesisHash

	for i := range n {
		amount := decimal.NewFromInt(int64(10 * (i + 1)))
		b := ledger.Block{
			Index:     uint64(i + 1),
			Timestamp: baseTime.Add(time.Duration(i) * time.Second),
			Kind:      ledger.KindEmission,
			From:      ledger.SystemWallet,
			To:        walletID,
			AmountFC:  amount,
			AmountUSD: ledger.ConvertToUSD(amount),
			PrevHash:  prev,
			Metadata:  map[string]string{"reason": "seed", "n": string(rune('a' + i))},
		}
		b.Hash = b.ComputeHash()
		b.Signature = "sig-" + b.Hash[:8]

		blocks = append(blocks, b)
		prev = b.Hash
	}

	return blocks
}

func assertBlock(t *testing.T, want, got ledger.Block) {
	t.Helper()

	assert.Equal(t, want.Index, got.Index)
	assert.True(t, want.Timestamp.Equal(got.Timestamp), "timestamp %s != %s", want.Timestamp, got.Timestamp)
	assert.Equal(t, want.Kind, got.Kind)
	assert.Equal(t, want.From, got.From)
	assert.Equal(t, want.To, got.To)
	assert.Equal(t, want.AmountFC.String(), got.AmountFC.String())
	assert.Equal(t, want.AmountUSD.String(), got.AmountUSD.String())
	assert.Equal(t, want.PrevHash, got.PrevHash)
	assert.Equal(t, want.Hash, got.Hash)
	assert.Equal(t, want.Signature, got.Signature)
	assert.Equal(t, want.Metadata, got.Metadata)
	assert.Equal(t, want.Nonce, got.Nonce)
	assert.Equal(t, got.Hash, got.ComputeHash(), "stored block must still hash to its Hash")
}

func assertWallet(t *testing.T, want, got ledger.Wallet) {
	t.Helper()

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.OwnerID, got.OwnerID)
	assert.Equal(t, want.OwnerType, got.OwnerType)
	assert.Equal(t, want.Alias, got.Alias)
	assert.True(t, want.BalanceFC.Equal(got.BalanceFC), "balance_fc %s != %s", want.BalanceFC, got.BalanceFC)
	assert.True(t, want.BalanceUSD.Equal(got.BalanceUSD), "balance_usd %s != %s", want.BalanceUSD, got.BalanceUSD)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt))
}

// seed commits a two-block chain and two wallets on top of the genesis head.
func seed(t *testing.T, storage ledger.Storage) ([]ledger.Block, []ledger.Wallet) {
	t.Helper()

	blocks := Chain("w-user", 2)
	wallets := []ledger.Wallet{
		Wallet("w-user", "", "30"),
		Wallet("w-hive", ledger.CategoryHive.WalletAlias(), "0"),
	}

	err := storage.Commit(t.Context(), ledger.Commit{
		Revision: 0,
		Head:     ledger.Head{NextIndex: 3, Hash: blocks[1].Hash, Revision: 1},
		Blocks:   blocks,
		Wallets:  wallets,
	})
	require.NoError(t, err)

	return blocks, wallets
}

// Run exercises newStorage against the ledger.Storage contract.
func Run(t *testing.T, newStorage Factory) {
	t.Run("empty storage", func(t *testing.T) {
		storage := newStorage(t)

		head, err := storage.LoadHead(t.Context())
		require.NoError(t, err)
		assert.Equal(t, ledger.GenesisHead(), head)

		snapshot, err := storage.Snapshot(t.Context())
		require.NoError(t, err)
		assert.Equal(t, ledger.GenesisHead(), snapshot.Head)
		assert.Empty(t, snapshot.Blocks)
		assert.Empty(t, snapshot.Wallets)

		_, err = storage.GetWallet(t.Context(), "w-user")
		assert.ErrorIs(t, err, ledger.ErrWalletNotFound)

		_, err = storage.FindWalletByAlias(t.Context(), "WALLET_HIVE")
		assert.ErrorIs(t, err, ledger.ErrWalletNotFound)
	})

	t.Run("commit round trip", func(t *testing.T) {
		storage := newStorage(t)
		blocks, wallets := seed(t, storage)

		head, err := storage.LoadHead(t.Context())
		require.NoError(t, err)
		assert.Equal(t, ledger.Head{NextIndex: 3, Hash: blocks[1].Hash, Revision: 1}, head)

		snapshot, err := storage.Snapshot(t.Context())
		require.NoError(t, err)
		assert.Equal(t, head, snapshot.Head)

		require.Len(t, snapshot.Blocks, 2)
		for i := range blocks {
			assertBlock(t, blocks[i], snapshot.Blocks[i])
		}

		require.Len(t, snapshot.Wallets, 2)
		assertWallet(t, wallets[1], snapshot.Wallets[0])
		assertWallet(t, wallets[0], snapshot.Wallets[1])

		report := ledger.VerifyChain(snapshot.Blocks, snapshot.Wallets)
		for _, d := range report.Discrepancies {
			assert.Equal(t, ledger.SignatureMismatch, d.Kind, "unexpected discrepancy %s", d)
		}
	})

	t.Run("wallet lookups", func(t *testing.T) {
		storage := newStorage(t)
		_, wallets := seed(t, storage)

		got, err := storage.GetWallet(t.Context(), "w-user")
		require.NoError(t, err)
		assertWallet(t, wallets[0], got)

		got, err = storage.FindWalletByAlias(t.Context(), "WALLET_HIVE")
		require.NoError(t, err)
		assertWallet(t, wallets[1], got)

		_, err = storage.FindWalletByAlias(t.Context(), "WALLET_RESERVE")
		assert.ErrorIs(t, err, ledger.ErrWalletNotFound)
	})

	t.Run("stale revision is rejected", func(t *testing.T) {
		storage := newStorage(t)
		blocks, _ := seed(t, storage)

		err := storage.Commit(t.Context(), ledger.Commit{
			Revision: 0,
			Head:     ledger.Head{NextIndex: 4, Hash: "stale", Revision: 1},
			Blocks:   Chain("w-other", 3)[2:],
			Wallets:  []ledger.Wallet{Wallet("w-other", "", "30")},
		})
		assert.ErrorIs(t, err, ledger.ErrRevisionConflict)

		snapshot, err := storage.Snapshot(t.Context())
		require.NoError(t, err)
		assert.Equal(t, blocks[1].Hash, snapshot.Head.Hash)
		assert.Len(t, snapshot.Blocks, 2)
		assert.Len(t, snapshot.Wallets, 2)

		_, err = storage.GetWallet(t.Context(), "w-other")
		assert.ErrorIs(t, err, ledger.ErrWalletNotFound)
	})

	t.Run("wallets are replaced", func(t *testing.T) {
		storage := newStorage(t)
		_, _ = seed(t, storage)

		updated := Wallet("w-user", "", "12.5")
		updated.UpdatedAt = baseTime.Add(time.Hour)

		err := storage.Commit(t.Context(), ledger.Commit{
			Revision: 1,
			Head:     ledger.Head{NextIndex: 3, Hash: "unchanged", Revision: 2},
			Wallets:  []ledger.Wallet{updated},
		})
		require.NoError(t, err)

		got, err := storage.GetWallet(t.Context(), "w-user")
		require.NoError(t, err)
		assertWallet(t, updated, got)

		snapshot, err := storage.Snapshot(t.Context())
		require.NoError(t, err)
		assert.Len(t, snapshot.Wallets, 2)
		assert.Equal(t, uint64(2), snapshot.Head.Revision)
	})

	t.Run("drives a ledger", func(t *testing.T) {
		svc, err := ledger.New(newStorage(t))
		require.NoError(t, err)

		alice, err := svc.CreateWallet(t.Context(), "alice", "usuario")
		require.NoError(t, err)
		bob, err := svc.CreateWallet(t.Context(), "bob", "usuario")
		require.NoError(t, err)

		_, err = svc.Emit(t.Context(), decimal.NewFromInt(100), decimal.NewFromInt(10), alice, "seed")
		require.NoError(t, err)
		_, err = svc.Transfer(t.Context(), alice, bob, decimal.NewFromInt(40), "split")
		require.NoError(t, err)
		_, err = svc.Distribute(t.Context(), decimal.NewFromInt(50), map[ledger.Category]decimal.Decimal{
			ledger.CategoryHive:    decimal.NewFromInt(60),
			ledger.CategoryReserve: decimal.NewFromInt(40),
		})
		require.NoError(t, err)

		report, err := svc.Verify(t.Context())
		require.NoError(t, err)
		assert.True(t, report.OK(), "unexpected discrepancies: %v", report.Discrepancies)
		assert.Equal(t, 4, report.Blocks)
		assert.Equal(t, 4, report.Wallets)

		balance, err := svc.GetBalance(t.Context(), bob)
		require.NoError(t, err)
		assert.True(t, balance.BalanceFC.Equal(decimal.NewFromInt(40)))
	})
}
