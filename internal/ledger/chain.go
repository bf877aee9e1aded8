package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// unitOfWork stages wallet changes and chain appends for a single mutation.
//
// Nothing reaches the storage until commit, so a failed step leaves the
// ledger untouched. A unitOfWork is used by one goroutine and discarded
// after commit.
type unitOfWork struct {
	storage Storage
	now     time.Time // timestamp shared by every change in the unit
	base    Head      // head the unit was built on
	head    Head      // head after the staged appends

	wallets map[string]Wallet // staged wallet records by ID
	order   []string          // wallet IDs in staging order
	blocks  []Block           // staged blocks in index order
}

// newUnitOfWork loads the current head and returns an empty unit on top of it.
func newUnitOfWork(ctx context.Context, storage Storage, now time.Time) (*unitOfWork, error) {
	head, err := storage.LoadHead(ctx)
	if err != nil {
		return nil, err
	}

	return &unitOfWork{
		storage: storage,
		now:     now,
		base:    head,
		head:    head,
		wallets: make(map[string]Wallet),
	}, nil
}

// wallet returns the staged record of id, falling back to the storage.
func (u *unitOfWork) wallet(ctx context.Context, id string) (Wallet, error) {
	if w, ok := u.wallets[id]; ok {
		return w, nil
	}

	return u.storage.GetWallet(ctx, id)
}

// walletByAlias resolves alias against staged wallets first, then the storage.
func (u *unitOfWork) walletByAlias(ctx context.Context, alias string) (Wallet, error) {
	for _, id := range u.order {
		if w := u.wallets[id]; w.Alias == alias {
			return w, nil
		}
	}

	return u.storage.FindWalletByAlias(ctx, alias)
}

// stage records w as the new state of its wallet.
func (u *unitOfWork) stage(w Wallet) {
	if _, ok := u.wallets[w.ID]; !ok {
		u.order = append(u.order, w.ID)
	}

	u.wallets[w.ID] = w
}

// blockFields are the caller-provided fields of a block about to be appended.
type blockFields struct {
	kind      Kind
	from      string
	to        string
	amountFC  decimal.Decimal
	amountUSD decimal.Decimal
	metadata  map[string]string
}

// append builds the next block on top of the staged head and advances it.
//
// A block only moves forward: it is constructed, its hash is computed, it is
// signed and finally appended. Appended is terminal; nothing rewrites a
// block once it is staged.
func (u *unitOfWork) append(f blockFields) (Block, error) {
	if !f.kind.Valid() {
		return Block{}, ErrUnknownKind
	}

	block := Block{
		Index:     u.head.NextIndex,
		Timestamp: u.now,
		Kind:      f.kind,
		From:      f.from,
		To:        f.to,
		AmountFC:  f.amountFC,
		AmountUSD: f.amountUSD,
		PrevHash:  u.head.Hash,
		Metadata:  f.metadata,
		Nonce:     0,
	}

	block.Hash = block.ComputeHash()
	block.Signature = computeSignature(block.Hash)

	u.blocks = append(u.blocks, block)
	u.head.NextIndex = block.Index + 1
	u.head.Hash = block.Hash

	return block.Clone(), nil
}

// empty reports whether the unit has nothing to commit.
func (u *unitOfWork) empty() bool {
	return len(u.blocks) == 0 && len(u.order) == 0
}

// commit hands every staged change to the storage as one atomic Commit.
func (u *unitOfWork) commit(ctx context.Context) error {
	if u.empty() {
		return nil
	}

	wallets := make([]Wallet, 0, len(u.order))
	for _, id := range u.order {
		wallets = append(wallets, u.wallets[id])
	}

	head := u.head
	head.Revision = u.base.Revision + 1

	return u.storage.Commit(ctx, Commit{
		Revision: u.base.Revision,
		Head:     head,
		Blocks:   u.blocks,
		Wallets:  wallets,
	})
}

// Head returns the current chain head.
func (s *service) Head(ctx context.Context) (Head, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.storage.LoadHead(ctx)
}

// isRevisionConflict reports whether err is worth re-running a mutation for.
func isRevisionConflict(err error) bool {
	return errors.Is(err, ErrRevisionConflict)
}
