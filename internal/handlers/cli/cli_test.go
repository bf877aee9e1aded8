package cli

import (
	"bytes"
	"context"
	"os"
	"testing"

	audittest "github.com/gabapcia/forgeledger/internal/audit/mocks"
	"github.com/gabapcia/forgeledger/internal/ledger"
	ledgertest "github.com/gabapcia/forgeledger/internal/ledger/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/urfave/cli/v3"
)

// runCommand executes cmd as the only subcommand of a test application and
// returns everything it wrote.
func runCommand(ctx context.Context, cmd *cli.Command, args ...string) (string, error) {
	var buf bytes.Buffer
	app := &cli.Command{
		Writer:   &buf,
		Commands: []*cli.Command{cmd},
	}

	err := app.Run(ctx, append([]string{"test"}, args...))
	return buf.String(), err
}

func TestRun(t *testing.T) {
	// Save original os.Args to restore after tests
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	t.Run("should create CLI app with correct metadata", func(t *testing.T) {
		// Arrange
		mockLedger := ledgertest.NewService(t)
		mockAuditor := audittest.NewService(t)
		ctx := t.Context()

		os.Args = []string{"forgeledger", "--help"}

		// Act
		err := Run(ctx, mockLedger, mockAuditor)

		// Assert
		assert.NoError(t, err)
	})

	t.Run("should handle audit command start failure", func(t *testing.T) {
		// Arrange
		mockLedger := ledgertest.NewService(t)
		mockAuditor := audittest.NewService(t)
		ctx := t.Context()

		mockAuditor.EXPECT().Start(mock.Anything).Return(nil, assert.AnError).Once()

		os.Args = []string{"forgeledger", "audit"}

		// Act
		err := Run(ctx, mockLedger, mockAuditor)

		// Assert
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("should handle wallet create command", func(t *testing.T) {
		// Arrange
		mockLedger := ledgertest.NewService(t)
		mockAuditor := audittest.NewService(t)
		ctx := t.Context()

		mockLedger.EXPECT().CreateWallet(mock.Anything, "user-1", defaultOwnerType).Return("0123456789abcdef", nil).Once()

		os.Args = []string{"forgeledger", "wallet", "create", "--owner", "user-1"}

		// Act
		err := Run(ctx, mockLedger, mockAuditor)

		// Assert
		assert.NoError(t, err)
	})

	t.Run("should handle verify command on a tampered chain", func(t *testing.T) {
		// Arrange
		mockLedger := ledgertest.NewService(t)
		mockAuditor := audittest.NewService(t)
		ctx := t.Context()

		report := ledger.Report{
			Blocks: 2,
			Discrepancies: []ledger.Discrepancy{
				{Index: 1, Kind: ledger.HashMismatch, Detail: "tampered"},
			},
		}
		mockLedger.EXPECT().Verify(mock.Anything).Return(report, nil).Once()

		os.Args = []string{"forgeledger", "verify"}

		// Act
		err := Run(ctx, mockLedger, mockAuditor)

		// Assert
		assert.ErrorIs(t, err, ledger.ErrChainIntegrityViolation)
	})

	t.Run("should handle transfer command with missing flags", func(t *testing.T) {
		// Arrange
		mockLedger := ledgertest.NewService(t)
		mockAuditor := audittest.NewService(t)
		ctx := t.Context()

		os.Args = []string{"forgeledger", "transfer", "--from", "a"}

		// Act
		err := Run(ctx, mockLedger, mockAuditor)

		// Assert
		assert.Error(t, err)
	})

	t.Run("should handle help command for specific command", func(t *testing.T) {
		// Arrange
		mockLedger := ledgertest.NewService(t)
		mockAuditor := audittest.NewService(t)
		ctx := t.Context()

		os.Args = []string{"forgeledger", "help", "distribute"}

		// Act
		err := Run(ctx, mockLedger, mockAuditor)

		// Assert
		assert.NoError(t, err)
	})

	t.Run("should handle context cancellation", func(t *testing.T) {
		// Arrange
		mockLedger := ledgertest.NewService(t)
		mockAuditor := audittest.NewService(t)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		mockLedger.EXPECT().GetBalance(mock.Anything, "0123456789abcdef").Return(ledger.Wallet{}, context.Canceled).Once()

		os.Args = []string{"forgeledger", "wallet", "balance", "--id", "0123456789abcdef"}

		// Act
		err := Run(ctx, mockLedger, mockAuditor)

		// Assert
		assert.ErrorIs(t, err, context.Canceled)
	})
}
