package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/forgeledger/internal/ledger"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// defaultKeyPrefix is the namespace used when no WithKeyPrefix option is given.
const defaultKeyPrefix = "ledger"

// Head hash fields.
const (
	headFieldNextIndex = "next_index"
	headFieldHash      = "hash"
	headFieldRevision  = "revision"
)

// headKey is the hash holding the chain head: "<prefix>:head".
func (c *client) headKey() string {
	return fmt.Sprintf("%s:head", c.prefix)
}

// blocksKey is the list of JSON-encoded blocks in index order: "<prefix>:blocks".
func (c *client) blocksKey() string {
	return fmt.Sprintf("%s:blocks", c.prefix)
}

// walletsKey is the hash of wallet ID to JSON-encoded wallet: "<prefix>:wallets".
func (c *client) walletsKey() string {
	return fmt.Sprintf("%s:wallets", c.prefix)
}

// aliasesKey is the hash of wallet alias to wallet ID: "<prefix>:aliases".
func (c *client) aliasesKey() string {
	return fmt.Sprintf("%s:aliases", c.prefix)
}

// blockRecord is the JSON shape of a ledger.Block.
type blockRecord struct {
	Index     uint64            `json:"index"`
	Timestamp time.Time         `json:"timestamp"`
	Kind      ledger.Kind       `json:"kind"`
	From      string            `json:"from"`
	To        string            `json:"to"`
	AmountFC  decimal.Decimal   `json:"amount_fc"`
	AmountUSD decimal.Decimal   `json:"amount_usd"`
	PrevHash  string            `json:"prev_hash"`
	Hash      string            `json:"hash"`
	Signature string            `json:"signature"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Nonce     uint64            `json:"nonce"`
}

// walletRecord is the JSON shape of a ledger.Wallet.
type walletRecord struct {
	ID         string          `json:"id"`
	OwnerID    string          `json:"owner_id"`
	OwnerType  string          `json:"owner_type"`
	Alias      string          `json:"alias,omitempty"`
	BalanceFC  decimal.Decimal `json:"balance_fc"`
	BalanceUSD decimal.Decimal `json:"balance_usd"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func encodeBlock(b ledger.Block) (string, error) {
	data, err := json.Marshal(blockRecord(b))
	return string(data), err
}

func decodeBlock(data string) (ledger.Block, error) {
	var r blockRecord
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return ledger.Block{}, err
	}

	return ledger.Block(r), nil
}

func encodeWallet(w ledger.Wallet) (string, error) {
	data, err := json.Marshal(walletRecord(w))
	return string(data), err
}

func decodeWallet(data string) (ledger.Wallet, error) {
	var r walletRecord
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return ledger.Wallet{}, err
	}

	return ledger.Wallet(r), nil
}

// parseHead decodes the head hash. An empty hash is the genesis head.
func parseHead(fields map[string]string) (ledger.Head, error) {
	if len(fields) == 0 {
		return ledger.GenesisHead(), nil
	}

	nextIndex, err := strconv.ParseUint(fields[headFieldNextIndex], 10, 64)
	if err != nil {
		return ledger.Head{}, fmt.Errorf("invalid head next_index: %w", err)
	}

	revision, err := strconv.ParseUint(fields[headFieldRevision], 10, 64)
	if err != nil {
		return ledger.Head{}, fmt.Errorf("invalid head revision: %w", err)
	}

	return ledger.Head{
		NextIndex: nextIndex,
		Hash:      fields[headFieldHash],
		Revision:  revision,
	}, nil
}

// LoadHead returns the stored chain head.
func (c *client) LoadHead(ctx context.Context) (ledger.Head, error) {
	fields, err := c.conn.HGetAll(ctx, c.headKey()).Result()
	if err != nil {
		return ledger.Head{}, err
	}

	return parseHead(fields)
}

// GetWallet returns the wallet stored under id, or ledger.ErrWalletNotFound.
func (c *client) GetWallet(ctx context.Context, id string) (ledger.Wallet, error) {
	val, err := c.conn.HGet(ctx, c.walletsKey(), id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = ledger.ErrWalletNotFound
		}

		return ledger.Wallet{}, err
	}

	return decodeWallet(val)
}

// FindWalletByAlias resolves alias to a wallet, or ledger.ErrWalletNotFound.
//
// Aliases and wallets are never removed, so the two reads cannot observe a
// dangling alias.
func (c *client) FindWalletByAlias(ctx context.Context, alias string) (ledger.Wallet, error) {
	id, err := c.conn.HGet(ctx, c.aliasesKey(), alias).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = ledger.ErrWalletNotFound
		}

		return ledger.Wallet{}, err
	}

	return c.GetWallet(ctx, id)
}

// Snapshot reads head, blocks and wallets inside one MULTI/EXEC so the view
// never straddles a commit.
func (c *client) Snapshot(ctx context.Context) (ledger.Snapshot, error) {
	var (
		headCmd    *redis.MapStringStringCmd
		blocksCmd  *redis.StringSliceCmd
		walletsCmd *redis.MapStringStringCmd
	)

	_, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		headCmd = pipe.HGetAll(ctx, c.headKey())
		blocksCmd = pipe.LRange(ctx, c.blocksKey(), 0, -1)
		walletsCmd = pipe.HGetAll(ctx, c.walletsKey())
		return nil
	})
	if err != nil {
		return ledger.Snapshot{}, err
	}

	head, err := parseHead(headCmd.Val())
	if err != nil {
		return ledger.Snapshot{}, err
	}

	blocks := make([]ledger.Block, 0, len(blocksCmd.Val()))
	for _, raw := range blocksCmd.Val() {
		b, err := decodeBlock(raw)
		if err != nil {
			return ledger.Snapshot{}, fmt.Errorf("decode block: %w", err)
		}
		blocks = append(blocks, b)
	}

	wallets := make([]ledger.Wallet, 0, len(walletsCmd.Val()))
	for id, raw := range walletsCmd.Val() {
		w, err := decodeWallet(raw)
		if err != nil {
			return ledger.Snapshot{}, fmt.Errorf("decode wallet %s: %w", id, err)
		}
		wallets = append(wallets, w)
	}
	slices.SortFunc(wallets, func(a, b ledger.Wallet) int {
		return strings.Compare(a.ID, b.ID)
	})

	return ledger.Snapshot{
		Head:    head,
		Blocks:  blocks,
		Wallets: wallets,
	}, nil
}

// Commit applies the unit of work in a MULTI/EXEC guarded by WATCH on the
// head key. The stored revision must equal commit.Revision; otherwise, or
// when another client touches the head in between, ledger.ErrRevisionConflict
// is returned and nothing is written.
func (c *client) Commit(ctx context.Context, commit ledger.Commit) error {
	blocks := make([]any, 0, len(commit.Blocks))
	for _, b := range commit.Blocks {
		data, err := encodeBlock(b)
		if err != nil {
			return err
		}
		blocks = append(blocks, data)
	}

	wallets := make([]any, 0, 2*len(commit.Wallets))
	aliases := make([]any, 0)
	for _, w := range commit.Wallets {
		data, err := encodeWallet(w)
		if err != nil {
			return err
		}
		wallets = append(wallets, w.ID, data)

		if w.Alias != "" {
			aliases = append(aliases, w.Alias, w.ID)
		}
	}

	err := c.conn.Watch(ctx, func(tx *redis.Tx) error {
		fields, err := tx.HGetAll(ctx, c.headKey()).Result()
		if err != nil {
			return err
		}

		head, err := parseHead(fields)
		if err != nil {
			return err
		}

		if head.Revision != commit.Revision {
			return ledger.ErrRevisionConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if len(blocks) > 0 {
				pipe.RPush(ctx, c.blocksKey(), blocks...)
			}
			if len(wallets) > 0 {
				pipe.HSet(ctx, c.walletsKey(), wallets...)
			}
			if len(aliases) > 0 {
				pipe.HSet(ctx, c.aliasesKey(), aliases...)
			}

			pipe.HSet(ctx, c.headKey(),
				headFieldNextIndex, commit.Head.NextIndex,
				headFieldHash, commit.Head.Hash,
				headFieldRevision, commit.Head.Revision,
			)
			return nil
		})
		return err
	}, c.headKey())

	if errors.Is(err, redis.TxFailedErr) {
		return ledger.ErrRevisionConflict
	}

	return err
}

// Compile-time assertion to ensure client implements ledger.Storage.
var _ ledger.Storage = new(client)
