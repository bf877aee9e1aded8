package cli

import (
	"testing"

	"github.com/gabapcia/forgeledger/internal/ledger"
	ledgertest "github.com/gabapcia/forgeledger/internal/ledger/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// decimalEq matches a decimal argument by value rather than representation.
func decimalEq(s string) any {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(want)
	})
}

func TestEmitCommand(t *testing.T) {
	t.Run("should emit and render the block", func(t *testing.T) {
		// Arrange
		mockService := ledgertest.NewService(t)
		block := ledger.Block{
			Index:     1,
			Kind:      ledger.KindEmission,
			From:      ledger.SystemWallet,
			To:        "0123456789abcdef",
			AmountFC:  decimal.NewFromInt(1000),
			AmountUSD: decimal.NewFromInt(100),
			Hash:      "feedface",
		}
		mockService.EXPECT().Emit(mock.Anything, decimalEq("1000"), decimalEq("100"), "0123456789abcdef", "profit").Return(block, nil).Once()

		// Act
		output, err := runCommand(t.Context(), emitCommand(mockService),
			"emit", "--to", "0123456789abcdef", "--fc", "1000", "--usd", "100", "--reason", "profit")

		// Assert
		require.NoError(t, err)
		assert.Contains(t, output, "emission")
		assert.Contains(t, output, "feedface")
	})

	t.Run("should reject a malformed amount", func(t *testing.T) {
		// Arrange
		mockService := ledgertest.NewService(t)

		// Act
		_, err := runCommand(t.Context(), emitCommand(mockService), "emit", "--to", "a", "--fc", "lots")

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --fc")
	})

	t.Run("should propagate wallet not found", func(t *testing.T) {
		// Arrange
		mockService := ledgertest.NewService(t)
		mockService.EXPECT().Emit(mock.Anything, decimalEq("10"), decimalEq("0"), "missing", "").Return(ledger.Block{}, ledger.ErrWalletNotFound).Once()

		// Act
		_, err := runCommand(t.Context(), emitCommand(mockService), "emit", "--to", "missing", "--fc", "10")

		// Assert
		assert.ErrorIs(t, err, ledger.ErrWalletNotFound)
	})
}

func TestRewardCommand(t *testing.T) {
	t.Run("should reward the destination wallet", func(t *testing.T) {
		// Arrange
		mockService := ledgertest.NewService(t)
		mockService.EXPECT().Reward(mock.Anything, decimalEq("50"), "a", "bounty").Return(ledger.Block{Index: 3, Kind: ledger.KindReward}, nil).Once()

		// Act
		output, err := runCommand(t.Context(), rewardCommand(mockService), "reward", "--to", "a", "--fc", "50", "--reason", "bounty")

		// Assert
		require.NoError(t, err)
		assert.Contains(t, output, "reward")
	})
}

func TestTransferCommand(t *testing.T) {
	t.Run("should transfer between wallets", func(t *testing.T) {
		// Arrange
		mockService := ledgertest.NewService(t)
		mockService.EXPECT().Transfer(mock.Anything, "a", "b", decimalEq("25.5"), "rent").Return(ledger.Block{Index: 2, Kind: ledger.KindTransfer}, nil).Once()

		// Act
		output, err := runCommand(t.Context(), transferCommand(mockService),
			"transfer", "--from", "a", "--to", "b", "--fc", "25.5", "--concept", "rent")

		// Assert
		require.NoError(t, err)
		assert.Contains(t, output, "transfer")
	})

	t.Run("should propagate insufficient funds", func(t *testing.T) {
		// Arrange
		mockService := ledgertest.NewService(t)
		mockService.EXPECT().Transfer(mock.Anything, "a", "b", decimalEq("1000000"), "").Return(ledger.Block{}, ledger.ErrInsufficientFunds).Once()

		// Act
		_, err := runCommand(t.Context(), transferCommand(mockService), "transfer", "--from", "a", "--to", "b", "--fc", "1000000")

		// Assert
		assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
	})
}

func TestPayCommand(t *testing.T) {
	t.Run("should pay the seller wallet", func(t *testing.T) {
		// Arrange
		mockService := ledgertest.NewService(t)
		mockService.EXPECT().Pay(mock.Anything, "buyer", "seller", decimalEq("12"), "order-9").Return(ledger.Block{Index: 5, Kind: ledger.KindPayment}, nil).Once()

		// Act
		output, err := runCommand(t.Context(), payCommand(mockService),
			"pay", "--from", "buyer", "--to", "seller", "--fc", "12", "--concept", "order-9")

		// Assert
		require.NoError(t, err)
		assert.Contains(t, output, "payment")
	})
}

func TestBurnCommand(t *testing.T) {
	t.Run("should burn from the wallet", func(t *testing.T) {
		// Arrange
		mockService := ledgertest.NewService(t)
		mockService.EXPECT().Burn(mock.Anything, "a", decimalEq("3"), "expired").Return(ledger.Block{Index: 7, Kind: ledger.KindBurn, To: ledger.SystemWallet}, nil).Once()

		// Act
		output, err := runCommand(t.Context(), burnCommand(mockService), "burn", "--wallet", "a", "--fc", "3", "--reason", "expired")

		// Assert
		require.NoError(t, err)
		assert.Contains(t, output, "burn")
	})
}

func TestParseShares(t *testing.T) {
	t.Run("valid pairs", func(t *testing.T) {
		got, err := parseShares([]string{"hive=40", "development = 30", "reserve=30"})

		require.NoError(t, err)
		assert.Len(t, got, 3)
		assert.True(t, got[ledger.CategoryHive].Equal(decimal.NewFromInt(40)))
		assert.True(t, got[ledger.CategoryDevelopment].Equal(decimal.NewFromInt(30)))
		assert.True(t, got[ledger.CategoryReserve].Equal(decimal.NewFromInt(30)))
	})

	t.Run("missing separator", func(t *testing.T) {
		_, err := parseShares([]string{"hive40"})

		assert.Error(t, err)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := parseShares([]string{"marketing=100"})

		assert.ErrorIs(t, err, ledger.ErrInvalidDistribution)
	})

	t.Run("malformed percentage", func(t *testing.T) {
		_, err := parseShares([]string{"hive=forty"})

		assert.Error(t, err)
	})
}

func TestDistributeCommand(t *testing.T) {
	t.Run("should distribute and render every share", func(t *testing.T) {
		// Arrange
		mockService := ledgertest.NewService(t)
		summary := ledger.DistributionSummary{
			ID:       "0198a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b",
			TotalUSD: decimal.NewFromInt(1000),
			HeadHash: "beef",
			Shares: []ledger.Share{
				{Category: ledger.CategoryHive, Percentage: decimal.NewFromInt(40), AmountUSD: decimal.NewFromInt(400), AmountFC: decimal.NewFromInt(4000), WalletID: "w1", BlockIndex: 1},
				{Category: ledger.CategoryDevelopment, Percentage: decimal.NewFromInt(30), AmountUSD: decimal.NewFromInt(300), AmountFC: decimal.NewFromInt(3000), WalletID: "w2", BlockIndex: 2},
				{Category: ledger.CategoryReserve, Percentage: decimal.NewFromInt(30), AmountUSD: decimal.NewFromInt(300), AmountFC: decimal.NewFromInt(3000), WalletID: "w3", BlockIndex: 3},
			},
		}
		mockService.EXPECT().Distribute(mock.Anything, decimalEq("1000"), mock.MatchedBy(func(p map[ledger.Category]decimal.Decimal) bool {
			return len(p) == 3 && p[ledger.CategoryHive].Equal(decimal.NewFromInt(40))
		})).Return(summary, nil).Once()

		// Act
		output, err := runCommand(t.Context(), distributeCommand(mockService),
			"distribute", "--total", "1000", "--share", "hive=40", "--share", "development=30", "--share", "reserve=30")

		// Assert
		require.NoError(t, err)
		assert.Contains(t, output, summary.ID)
		assert.Contains(t, output, "4000")
		assert.Contains(t, output, "development")
		assert.Contains(t, output, "w3")
	})

	t.Run("should propagate invalid distribution", func(t *testing.T) {
		// Arrange
		mockService := ledgertest.NewService(t)
		mockService.EXPECT().Distribute(mock.Anything, decimalEq("1000"), mock.Anything).Return(ledger.DistributionSummary{}, ledger.ErrInvalidDistribution).Once()

		// Act
		_, err := runCommand(t.Context(), distributeCommand(mockService),
			"distribute", "--total", "1000", "--share", "hive=40", "--share", "reserve=57")

		// Assert
		assert.ErrorIs(t, err, ledger.ErrInvalidDistribution)
	})

	t.Run("should fail before calling the service on a bad share", func(t *testing.T) {
		// Arrange
		mockService := ledgertest.NewService(t)

		// Act
		_, err := runCommand(t.Context(), distributeCommand(mockService), "distribute", "--total", "1000", "--share", "bogus")

		// Assert
		assert.Error(t, err)
	})
}
