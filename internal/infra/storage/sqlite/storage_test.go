package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/gabapcia/forgeledger/internal/infra/storage/storagetest"
	"github.com/gabapcia/forgeledger/internal/ledger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T, path string) *storage {
	t.Helper()

	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestStorage(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) ledger.Storage {
		return openTemp(t, filepath.Join(t.TempDir(), "ledger.db"))
	})
}

func TestOpen(t *testing.T) {
	t.Run("creates missing directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "ledger.db")

		s := openTemp(t, path)

		head, err := s.LoadHead(t.Context())
		require.NoError(t, err)
		assert.Equal(t, ledger.GenesisHead(), head)
	})

	t.Run("reopening keeps the chain", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledger.db")
		blocks := storagetest.Chain("w1", 2)

		first, err := Open(path)
		require.NoError(t, err)

		err = first.Commit(t.Context(), ledger.Commit{
			Head:    ledger.Head{NextIndex: 3, Hash: blocks[1].Hash, Revision: 1},
			Blocks:  blocks,
			Wallets: []ledger.Wallet{storagetest.Wallet("w1", "", "30")},
		})
		require.NoError(t, err)
		require.NoError(t, first.Close())

		second := openTemp(t, path)

		head, err := second.LoadHead(t.Context())
		require.NoError(t, err)
		assert.Equal(t, ledger.Head{NextIndex: 3, Hash: blocks[1].Hash, Revision: 1}, head)

		snapshot, err := second.Snapshot(t.Context())
		require.NoError(t, err)
		assert.Len(t, snapshot.Blocks, 2)
		assert.Len(t, snapshot.Wallets, 1)
	})
}

func TestBlockModel(t *testing.T) {
	block := storagetest.Chain("w1", 1)[0]
	block.Metadata = nil

	row, err := blockToDB(block)
	require.NoError(t, err)
	assert.Equal(t, "{}", row.Metadata)
	assert.Equal(t, "emission", row.Kind)

	decoded, err := blockFromDB(row)
	require.NoError(t, err)
	assert.Equal(t, block.ComputeHash(), decoded.ComputeHash())

	row.Kind = "mint"
	_, err = blockFromDB(row)
	assert.ErrorIs(t, err, ledger.ErrUnknownKind)

	row.Kind = "emission"
	row.AmountFC = "ten"
	_, err = blockFromDB(row)
	assert.ErrorContains(t, err, "amount_fc")
}

func TestWalletTimestamps(t *testing.T) {
	created := time.Date(2025, 5, 1, 8, 0, 0, 42, time.UTC)
	moved := created.Add(90 * time.Minute)

	now := created
	svc, err := ledger.New(openTemp(t, filepath.Join(t.TempDir(), "ledger.db")),
		ledger.WithClock(func() time.Time { return now }),
	)
	require.NoError(t, err)

	alice, err := svc.CreateWallet(t.Context(), "alice", "usuario")
	require.NoError(t, err)
	bob, err := svc.CreateWallet(t.Context(), "bob", "usuario")
	require.NoError(t, err)

	_, err = svc.Emit(t.Context(), decimal.NewFromInt(100), decimal.NewFromInt(10), alice, "seed")
	require.NoError(t, err)

	now = moved
	_, err = svc.Transfer(t.Context(), alice, bob, decimal.NewFromInt(30), "rent")
	require.NoError(t, err)

	for _, id := range []string{alice, bob} {
		w, err := svc.GetBalance(t.Context(), id)
		require.NoError(t, err)

		assert.True(t, created.Equal(w.CreatedAt), "created_at %s", w.CreatedAt)
		assert.True(t, moved.Equal(w.UpdatedAt), "updated_at %s", w.UpdatedAt)
	}

	report, err := svc.Verify(t.Context())
	require.NoError(t, err)
	assert.True(t, report.OK(), "unexpected discrepancies: %v", report.Discrepancies)
}

func TestWalletModel(t *testing.T) {
	w := storagetest.Wallet("w1", "", "12.5")
	w.UpdatedAt = w.CreatedAt.Add(time.Hour)

	decoded, err := walletFromDB(walletToDB(w))
	require.NoError(t, err)

	assert.True(t, w.CreatedAt.Equal(decoded.CreatedAt))
	assert.True(t, w.UpdatedAt.Equal(decoded.UpdatedAt))
}
