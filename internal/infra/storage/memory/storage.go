// Package memory provides an in-process ledger.Storage backed by plain Go
// collections. It is the default backend and the one used in tests.
package memory

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/gabapcia/forgeledger/internal/ledger"
)

type storage struct {
	mu sync.RWMutex

	head    ledger.Head
	blocks  []ledger.Block
	wallets map[string]ledger.Wallet
	aliases map[string]string
}

// Compile-time assertion to ensure storage implements ledger.Storage.
var _ ledger.Storage = (*storage)(nil)

// New returns an empty in-memory storage positioned at the genesis head.
func New() *storage {
	return &storage{
		head:    ledger.GenesisHead(),
		wallets: make(map[string]ledger.Wallet),
		aliases: make(map[string]string),
	}
}

func (s *storage) LoadHead(_ context.Context) (ledger.Head, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.head, nil
}

func (s *storage) GetWallet(_ context.Context, id string) (ledger.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.wallets[id]
	if !ok {
		return ledger.Wallet{}, ledger.ErrWalletNotFound
	}

	return w, nil
}

func (s *storage) FindWalletByAlias(_ context.Context, alias string) (ledger.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.aliases[alias]
	if !ok {
		return ledger.Wallet{}, ledger.ErrWalletNotFound
	}

	return s.wallets[id], nil
}

// Snapshot copies every block and wallet under the read lock.
func (s *storage) Snapshot(_ context.Context) (ledger.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blocks := make([]ledger.Block, len(s.blocks))
	for i, b := range s.blocks {
		blocks[i] = b.Clone()
	}

	wallets := slices.SortedFunc(maps.Values(s.wallets), func(a, b ledger.Wallet) int {
		return strings.Compare(a.ID, b.ID)
	})

	return ledger.Snapshot{
		Head:    s.head,
		Blocks:  blocks,
		Wallets: wallets,
	}, nil
}

// Commit applies c under the write lock after checking the revision.
func (s *storage) Commit(_ context.Context, c ledger.Commit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.head.Revision != c.Revision {
		return ledger.ErrRevisionConflict
	}

	for _, b := range c.Blocks {
		s.blocks = append(s.blocks, b.Clone())
	}

	for _, w := range c.Wallets {
		s.wallets[w.ID] = w
		if w.Alias != "" {
			s.aliases[w.Alias] = w.ID
		}
	}

	s.head = c.Head
	return nil
}
