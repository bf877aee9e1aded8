package ledger

import "context"

// Head is the running state of the chain.
type Head struct {
	NextIndex uint64 // index the next appended block receives
	Hash      string // hash of the last appended block, GenesisHash when empty
	Revision  uint64 // number of commits applied to the storage
}

// GenesisHead returns the head of a storage that has never been written to.
func GenesisHead() Head {
	return Head{
		NextIndex: 1,
		Hash:      GenesisHash,
	}
}

// Snapshot is a consistent, point-in-time view of the whole ledger.
type Snapshot struct {
	Head    Head     // chain head at the time of the snapshot
	Blocks  []Block  // every block, ordered by index
	Wallets []Wallet // every wallet, ordered by ID
}

// Commit is the atomic unit a storage backend applies.
//
// Either all blocks are appended, all wallets are upserted and the head is
// replaced, or nothing changes.
type Commit struct {
	Revision uint64   // revision the unit of work was built on
	Head     Head     // head after the commit; Head.Revision is Revision+1
	Blocks   []Block  // new blocks in index order
	Wallets  []Wallet // full wallet records to create or replace
}

// Storage persists wallets and blocks for the ledger.
//
// Implementations must make Commit atomic and must reject a commit whose
// Revision differs from the stored one with ErrRevisionConflict. Snapshot
// must never observe a partially applied commit.
type Storage interface {
	// LoadHead returns the current head, or the genesis head for an empty storage.
	LoadHead(ctx context.Context) (Head, error)

	// GetWallet returns the wallet with the given ID or ErrWalletNotFound.
	GetWallet(ctx context.Context, id string) (Wallet, error)

	// FindWalletByAlias returns the wallet registered under alias or ErrWalletNotFound.
	FindWalletByAlias(ctx context.Context, alias string) (Wallet, error)

	// Snapshot returns every block and wallet as of a single revision.
	Snapshot(ctx context.Context) (Snapshot, error)

	// Commit atomically applies c.
	Commit(ctx context.Context, c Commit) error
}
