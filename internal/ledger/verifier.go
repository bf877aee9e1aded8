package ledger

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/gabapcia/forgeledger/internal/pkg/logger"
	"github.com/gabapcia/forgeledger/internal/pkg/types"

	"github.com/shopspring/decimal"
)

// DiscrepancyKind classifies an integrity problem.
type DiscrepancyKind uint8

const (
	// HashMismatch: the stored hash differs from the one recomputed from the block fields.
	HashMismatch DiscrepancyKind = iota + 1
	// LinkageBroken: PrevHash differs from the recomputed hash of the previous block.
	LinkageBroken
	// IndexGap: the block index does not follow the previous one.
	IndexGap
	// SignatureMismatch: the stored signature does not match the stored hash.
	SignatureMismatch
	// BalanceDesync: replaying the chain does not reproduce a wallet balance.
	BalanceDesync
)

var discrepancyNames = map[DiscrepancyKind]string{
	HashMismatch:      "hash_mismatch",
	LinkageBroken:     "linkage_broken",
	IndexGap:          "index_gap",
	SignatureMismatch: "signature_mismatch",
	BalanceDesync:     "balance_desync",
}

func (k DiscrepancyKind) String() string {
	if name, ok := discrepancyNames[k]; ok {
		return name
	}

	return fmt.Sprintf("discrepancy(%d)", uint8(k))
}

// Discrepancy is one problem found by the verifier.
//
// Index is set for chain problems, WalletID for balance problems.
type Discrepancy struct {
	Index    uint64
	WalletID string
	Kind     DiscrepancyKind
	Detail   string
}

func (d Discrepancy) String() string {
	if d.WalletID != "" {
		return fmt.Sprintf("%s wallet=%s: %s", d.Kind, d.WalletID, d.Detail)
	}

	return fmt.Sprintf("%s block=%d: %s", d.Kind, d.Index, d.Detail)
}

// Report is the outcome of an integrity verification.
type Report struct {
	CheckedAt     time.Time
	Blocks        int
	Wallets       int
	HeadHash      string
	Discrepancies []Discrepancy
}

// OK reports whether no discrepancy was found.
func (r Report) OK() bool {
	return len(r.Discrepancies) == 0
}

// Err returns an *IntegrityViolationError when the report has discrepancies.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}

	return &IntegrityViolationError{Discrepancies: slices.Clone(r.Discrepancies)}
}

// Has reports whether the report flags the block at index with kind.
func (r Report) Has(index uint64, kind DiscrepancyKind) bool {
	return slices.ContainsFunc(r.Discrepancies, func(d Discrepancy) bool {
		return d.Index == index && d.Kind == kind && d.WalletID == ""
	})
}

// balance is a replayed pair of FC and USD amounts.
type balance struct {
	fc  decimal.Decimal
	usd decimal.Decimal
}

func zeroBalance() balance {
	return balance{fc: decimal.Zero, usd: decimal.Zero}
}

// VerifyChain checks blocks (ordered by index) and wallets against every
// ledger invariant and returns the discrepancies found. It never modifies
// its input.
//
// Linkage is checked against the recomputed hash of the previous block, so
// tampering with block N flags N with HashMismatch and N+1 with LinkageBroken.
func VerifyChain(blocks []Block, wallets []Wallet) Report {
	report := Report{
		Blocks:        len(blocks),
		Wallets:       len(wallets),
		HeadHash:      GenesisHash,
		Discrepancies: make([]Discrepancy, 0),
	}

	var (
		prevHash      = GenesisHash
		expectedIndex = uint64(1)
		replayed      = types.NewDefaultMap[string](zeroBalance)
	)

	flag := func(index uint64, kind DiscrepancyKind, format string, args ...any) {
		report.Discrepancies = append(report.Discrepancies, Discrepancy{
			Index:  index,
			Kind:   kind,
			Detail: fmt.Sprintf(format, args...),
		})
	}

	for _, b := range blocks {
		if b.Index != expectedIndex {
			flag(b.Index, IndexGap, "expected index %d", expectedIndex)
		}
		expectedIndex = b.Index + 1

		recomputed := b.ComputeHash()
		if recomputed != b.Hash {
			flag(b.Index, HashMismatch, "stored %s, recomputed %s", b.Hash, recomputed)
		}

		if b.PrevHash != prevHash {
			flag(b.Index, LinkageBroken, "prev_hash %s, previous block hashes to %s", b.PrevHash, prevHash)
		}

		if computeSignature(b.Hash) != b.Signature {
			flag(b.Index, SignatureMismatch, "signature does not seal hash %s", b.Hash)
		}

		prevHash = recomputed
		report.HeadHash = b.Hash

		if b.From != SystemWallet {
			replayed.Update(b.From, func(v balance) balance {
				return balance{fc: v.fc.Sub(b.AmountFC), usd: v.usd.Sub(b.AmountUSD)}
			})
		}

		if b.To != SystemWallet {
			replayed.Update(b.To, func(v balance) balance {
				return balance{fc: v.fc.Add(b.AmountFC), usd: v.usd.Add(b.AmountUSD)}
			})
		}
	}

	// Wallets the chain moves value through but the registry does not hold.
	unknown := replayed.Keys()
	for _, w := range wallets {
		unknown.Delete(w.ID)

		expected := replayed.Get(w.ID)
		if !expected.fc.Equal(w.BalanceFC) || !expected.usd.Equal(w.BalanceUSD) {
			report.Discrepancies = append(report.Discrepancies, Discrepancy{
				WalletID: w.ID,
				Kind:     BalanceDesync,
				Detail: fmt.Sprintf("stored %s FC / %s USD, chain replays to %s FC / %s USD",
					w.BalanceFC, w.BalanceUSD, expected.fc, expected.usd),
			})
		}
	}

	for _, id := range types.Sorted(unknown) {
		report.Discrepancies = append(report.Discrepancies, Discrepancy{
			WalletID: id,
			Kind:     BalanceDesync,
			Detail:   "referenced by the chain but missing from the wallet registry",
		})
	}

	return report
}

// Verify replays the whole chain and wallet registry from a consistent
// storage snapshot. Discrepancies are reported, never repaired; the
// returned error is only set when the snapshot cannot be read.
func (s *service) Verify(ctx context.Context) (Report, error) {
	ctx, span := s.tracer.Start(ctx, "ledger.Verify")
	defer span.End()

	s.mu.RLock()
	snapshot, err := s.storage.Snapshot(ctx)
	s.mu.RUnlock()
	if err != nil {
		return Report{}, err
	}

	report := VerifyChain(snapshot.Blocks, snapshot.Wallets)
	report.CheckedAt = s.now()

	if !report.OK() {
		logger.Error(ctx, "chain integrity violation",
			"chain.blocks", report.Blocks,
			"chain.discrepancies", len(report.Discrepancies),
			"error", report.Err(),
		)
		return report, nil
	}

	logger.Debug(ctx, "chain verified",
		"chain.blocks", report.Blocks,
		"chain.head", report.HeadHash,
	)
	return report, nil
}
