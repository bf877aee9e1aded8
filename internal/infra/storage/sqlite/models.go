package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gabapcia/forgeledger/internal/ledger"

	"github.com/shopspring/decimal"
)

// headRowID is the primary key of the single head row.
const headRowID = 1

// HeadDB is the single-row table holding the chain head.
type HeadDB struct {
	ID        uint   `gorm:"primaryKey;column:id"`
	NextIndex uint64 `gorm:"column:next_index;not null"`
	Hash      string `gorm:"column:hash;not null"`
	Revision  uint64 `gorm:"column:revision;not null"`
}

// BlockDB stores one ledger block. Amounts are kept as canonical decimal
// strings and timestamps as Unix nanoseconds so the hash inputs survive the
// round trip unchanged.
type BlockDB struct {
	Index     uint64 `gorm:"primaryKey;autoIncrement:false;column:block_index"`
	Timestamp int64  `gorm:"column:timestamp;not null"`
	Kind      string `gorm:"column:kind;not null"`
	From      string `gorm:"column:from_wallet;not null;index"`
	To        string `gorm:"column:to_wallet;not null;index"`
	AmountFC  string `gorm:"column:amount_fc;type:text;not null"`
	AmountUSD string `gorm:"column:amount_usd;type:text;not null"`
	PrevHash  string `gorm:"column:prev_hash;not null"`
	Hash      string `gorm:"column:hash;not null;uniqueIndex"`
	Signature string `gorm:"column:signature;not null"`
	Metadata  string `gorm:"column:metadata;type:text;not null"`
	Nonce     uint64 `gorm:"column:nonce;not null"`
}

// WalletDB stores one wallet. Alias is nullable so that only ledger-managed
// wallets take part in the unique index. Timestamps are the ones staged by
// the ledger; gorm must not stamp its own.
type WalletDB struct {
	ID         string  `gorm:"primaryKey;column:id"`
	OwnerID    string  `gorm:"column:owner_id;not null;index"`
	OwnerType  string  `gorm:"column:owner_type;not null"`
	Alias      *string `gorm:"column:alias;uniqueIndex"`
	BalanceFC  string  `gorm:"column:balance_fc;type:text;not null"`
	BalanceUSD string  `gorm:"column:balance_usd;type:text;not null"`
	CreatedNs  int64   `gorm:"column:created_at;not null;autoCreateTime:false"`
	UpdatedNs  int64   `gorm:"column:updated_at;not null;autoUpdateTime:false"`
}

func (HeadDB) TableName() string {
	return "ledger_head"
}

func (BlockDB) TableName() string {
	return "blocks"
}

func (WalletDB) TableName() string {
	return "wallets"
}

func headToDB(h ledger.Head) HeadDB {
	return HeadDB{
		ID:        headRowID,
		NextIndex: h.NextIndex,
		Hash:      h.Hash,
		Revision:  h.Revision,
	}
}

func headFromDB(h HeadDB) ledger.Head {
	return ledger.Head{
		NextIndex: h.NextIndex,
		Hash:      h.Hash,
		Revision:  h.Revision,
	}
}

func blockToDB(b ledger.Block) (BlockDB, error) {
	metadata := b.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}

	encoded, err := json.Marshal(metadata)
	if err != nil {
		return BlockDB{}, err
	}

	return BlockDB{
		Index:     b.Index,
		Timestamp: b.Timestamp.UnixNano(),
		Kind:      b.Kind.String(),
		From:      b.From,
		To:        b.To,
		AmountFC:  b.AmountFC.String(),
		AmountUSD: b.AmountUSD.String(),
		PrevHash:  b.PrevHash,
		Hash:      b.Hash,
		Signature: b.Signature,
		Metadata:  string(encoded),
		Nonce:     b.Nonce,
	}, nil
}

func blockFromDB(m BlockDB) (ledger.Block, error) {
	kind, err := ledger.ParseKind(m.Kind)
	if err != nil {
		return ledger.Block{}, err
	}

	amountFC, err := decimal.NewFromString(m.AmountFC)
	if err != nil {
		return ledger.Block{}, fmt.Errorf("block %d amount_fc: %w", m.Index, err)
	}

	amountUSD, err := decimal.NewFromString(m.AmountUSD)
	if err != nil {
		return ledger.Block{}, fmt.Errorf("block %d amount_usd: %w", m.Index, err)
	}

	var metadata map[string]string
	if err := json.Unmarshal([]byte(m.Metadata), &metadata); err != nil {
		return ledger.Block{}, fmt.Errorf("block %d metadata: %w", m.Index, err)
	}

	return ledger.Block{
		Index:     m.Index,
		Timestamp: time.Unix(0, m.Timestamp).UTC(),
		Kind:      kind,
		From:      m.From,
		To:        m.To,
		AmountFC:  amountFC,
		AmountUSD: amountUSD,
		PrevHash:  m.PrevHash,
		Hash:      m.Hash,
		Signature: m.Signature,
		Metadata:  metadata,
		Nonce:     m.Nonce,
	}, nil
}

func walletToDB(w ledger.Wallet) WalletDB {
	var alias *string
	if w.Alias != "" {
		alias = &w.Alias
	}

	return WalletDB{
		ID:         w.ID,
		OwnerID:    w.OwnerID,
		OwnerType:  w.OwnerType,
		Alias:      alias,
		BalanceFC:  w.BalanceFC.String(),
		BalanceUSD: w.BalanceUSD.String(),
		CreatedNs:  w.CreatedAt.UnixNano(),
		UpdatedNs:  w.UpdatedAt.UnixNano(),
	}
}

func walletFromDB(m WalletDB) (ledger.Wallet, error) {
	balanceFC, err := decimal.NewFromString(m.BalanceFC)
	if err != nil {
		return ledger.Wallet{}, fmt.Errorf("wallet %s balance_fc: %w", m.ID, err)
	}

	balanceUSD, err := decimal.NewFromString(m.BalanceUSD)
	if err != nil {
		return ledger.Wallet{}, fmt.Errorf("wallet %s balance_usd: %w", m.ID, err)
	}

	w := ledger.Wallet{
		ID:         m.ID,
		OwnerID:    m.OwnerID,
		OwnerType:  m.OwnerType,
		BalanceFC:  balanceFC,
		BalanceUSD: balanceUSD,
		CreatedAt:  time.Unix(0, m.CreatedNs).UTC(),
		UpdatedAt:  time.Unix(0, m.UpdatedNs).UTC(),
	}
	if m.Alias != nil {
		w.Alias = *m.Alias
	}

	return w, nil
}
