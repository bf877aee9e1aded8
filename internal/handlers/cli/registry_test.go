package cli

import (
	"testing"
	"time"

	"github.com/gabapcia/forgeledger/internal/ledger"
	ledgertest "github.com/gabapcia/forgeledger/internal/ledger/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestCreateWalletCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		// Arrange
		mockService := ledgertest.NewService(t)

		// Act
		cmd := createWalletCommand(mockService)

		// Assert
		assert.Equal(t, "create", cmd.Name)
		assert.Len(t, cmd.Flags, 2)

		ownerFlag := cmd.Flags[0].(*cli.StringFlag)
		assert.Equal(t, "owner", ownerFlag.Name)
		assert.True(t, ownerFlag.Required)

		typeFlag := cmd.Flags[1].(*cli.StringFlag)
		assert.Equal(t, "type", typeFlag.Name)
		assert.Equal(t, defaultOwnerType, typeFlag.Value)
	})

	t.Run("should print the created wallet ID", func(t *testing.T) {
		// Arrange
		mockService := ledgertest.NewService(t)
		mockService.EXPECT().CreateWallet(mock.Anything, "shop-7", "comercio").Return("0123456789abcdef", nil).Once()

		// Act
		output, err := runCommand(t.Context(), walletCommand(mockService), "wallet", "create", "--owner", "shop-7", "--type", "comercio")

		// Assert
		require.NoError(t, err)
		assert.Contains(t, output, "wallet 0123456789abcdef created")
	})

	t.Run("should return error when service fails", func(t *testing.T) {
		// Arrange
		mockService := ledgertest.NewService(t)
		mockService.EXPECT().CreateWallet(mock.Anything, "shop-7", defaultOwnerType).Return("", assert.AnError).Once()

		// Act
		_, err := runCommand(t.Context(), walletCommand(mockService), "wallet", "create", "--owner", "shop-7")

		// Assert
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("should fail with missing owner flag", func(t *testing.T) {
		// Arrange
		mockService := ledgertest.NewService(t)

		// Act
		_, err := runCommand(t.Context(), walletCommand(mockService), "wallet", "create")

		// Assert
		assert.Error(t, err)
	})
}

func TestWalletBalanceCommand(t *testing.T) {
	t.Run("should render the wallet record", func(t *testing.T) {
		// Arrange
		mockService := ledgertest.NewService(t)
		wallet := ledger.Wallet{
			ID:         "0123456789abcdef",
			OwnerID:    "user-1",
			OwnerType:  "usuario",
			BalanceFC:  decimal.RequireFromString("1000"),
			BalanceUSD: decimal.RequireFromString("100"),
			UpdatedAt:  time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		}
		mockService.EXPECT().GetBalance(mock.Anything, wallet.ID).Return(wallet, nil).Once()

		// Act
		output, err := runCommand(t.Context(), walletCommand(mockService), "wallet", "balance", "--id", wallet.ID)

		// Assert
		require.NoError(t, err)
		assert.Contains(t, output, wallet.ID)
		assert.Contains(t, output, "user-1")
		assert.Contains(t, output, "1000")
		assert.Contains(t, output, "2025-01-02T03:04:05Z")
	})

	t.Run("should return wallet not found", func(t *testing.T) {
		// Arrange
		mockService := ledgertest.NewService(t)
		mockService.EXPECT().GetBalance(mock.Anything, "missing").Return(ledger.Wallet{}, ledger.ErrWalletNotFound).Once()

		// Act
		_, err := runCommand(t.Context(), walletCommand(mockService), "wallet", "balance", "--id", "missing")

		// Assert
		assert.ErrorIs(t, err, ledger.ErrWalletNotFound)
	})
}

func TestWalletHistoryCommand(t *testing.T) {
	t.Run("should pass the limit and render every block", func(t *testing.T) {
		// Arrange
		mockService := ledgertest.NewService(t)
		blocks := []ledger.Block{
			{Index: 2, Kind: ledger.KindTransfer, From: "a", To: "b", AmountFC: decimal.NewFromInt(5), AmountUSD: decimal.RequireFromString("0.5"), Hash: "h2"},
			{Index: 1, Kind: ledger.KindEmission, From: ledger.SystemWallet, To: "a", AmountFC: decimal.NewFromInt(10), AmountUSD: decimal.NewFromInt(1), Hash: "h1"},
		}
		mockService.EXPECT().WalletHistory(mock.Anything, "a", 5).Return(blocks, nil).Once()

		// Act
		output, err := runCommand(t.Context(), walletCommand(mockService), "wallet", "history", "--id", "a", "--limit", "5")

		// Assert
		require.NoError(t, err)
		assert.Contains(t, output, "transfer")
		assert.Contains(t, output, "emission")
		assert.Contains(t, output, ledger.SystemWallet)
		assert.Contains(t, output, "h2")
	})

	t.Run("should use the default limit", func(t *testing.T) {
		// Arrange
		mockService := ledgertest.NewService(t)
		mockService.EXPECT().WalletHistory(mock.Anything, "a", 20).Return([]ledger.Block{}, nil).Once()

		// Act
		_, err := runCommand(t.Context(), walletCommand(mockService), "wallet", "history", "--id", "a")

		// Assert
		assert.NoError(t, err)
	})
}
