package ledger

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrWalletNotFound is returned when an operation references a wallet
	// that does not exist in the registry.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrInsufficientFunds is returned when a debit would leave a wallet
	// with a negative FC or USD balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidDistribution is returned when distribution percentages are
	// empty, negative, reference an unknown category, or do not sum to 100.
	ErrInvalidDistribution = errors.New("invalid distribution")

	// ErrInvalidAmount is returned for non-positive or otherwise unusable amounts.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrSelfTransfer is returned when source and destination wallets are the same.
	ErrSelfTransfer = errors.New("source and destination wallets are the same")

	// ErrUnknownKind is returned when decoding a block kind that is not declared.
	ErrUnknownKind = errors.New("unknown block kind")

	// ErrChainIntegrityViolation is matched by IntegrityViolationError.
	ErrChainIntegrityViolation = errors.New("chain integrity violation")

	// ErrRevisionConflict is returned by Storage.Commit when the stored
	// revision no longer matches the one the unit of work was built on.
	// The engine retries the whole operation when it sees this error.
	ErrRevisionConflict = errors.New("storage revision conflict")
)

// IntegrityViolationError carries every discrepancy found by the verifier.
type IntegrityViolationError struct {
	Discrepancies []Discrepancy
}

func (e *IntegrityViolationError) Error() string {
	parts := make([]string, 0, len(e.Discrepancies))
	for _, d := range e.Discrepancies {
		parts = append(parts, d.String())
	}

	return fmt.Sprintf("%s: %s", ErrChainIntegrityViolation, strings.Join(parts, "; "))
}

// Is makes errors.Is(err, ErrChainIntegrityViolation) succeed.
func (e *IntegrityViolationError) Is(target error) bool {
	return target == ErrChainIntegrityViolation
}
