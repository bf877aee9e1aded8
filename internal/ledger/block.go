package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"maps"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// SystemWallet is the reserved sender of minted units and the receiver
	// of burned ones. It is never looked up in the wallet registry.
	SystemWallet = "SYSTEM"

	// signatureMarker is bound to every block hash to produce its signature.
	// The signature is a deterministic digest, not an authenticity proof.
	signatureMarker = "FORGELEDGER-SEAL"
)

// GenesisHash is the PrevHash of the first block: 64 zero characters.
var GenesisHash = strings.Repeat("0", sha256.Size*2)

// Block is one immutable, hash-linked ledger entry.
type Block struct {
	Index     uint64            // position in the chain, starting at 1
	Timestamp time.Time         // UTC time the block was constructed
	Kind      Kind              // event recorded by the block
	From      string            // sender wallet ID or SystemWallet
	To        string            // receiver wallet ID or SystemWallet
	AmountFC  decimal.Decimal   // amount in FC
	AmountUSD decimal.Decimal   // informational USD amount
	PrevHash  string            // Hash of the previous block, GenesisHash for block 1
	Hash      string            // digest over every field above plus Nonce and Metadata
	Signature string            // digest binding Hash to signatureMarker
	Metadata  map[string]string // free-form annotations, hashed with sorted keys
	Nonce     uint64            // always 0, reserved
}

// Clone returns a deep copy of the block so callers cannot mutate stored metadata.
func (b Block) Clone() Block {
	b.Metadata = maps.Clone(b.Metadata)
	return b
}

// ComputeHash recomputes the digest of the block from its fields.
// The stored Hash and Signature are not part of the input.
func (b Block) ComputeHash() string {
	metadata := b.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}

	// json.Marshal writes map keys in sorted order, which makes the
	// metadata encoding canonical.
	record := []any{
		b.Index,
		b.Timestamp.UnixNano(),
		b.Kind.String(),
		b.From,
		b.To,
		b.AmountFC.String(),
		b.AmountUSD.String(),
		b.PrevHash,
		b.Nonce,
		metadata,
	}

	// Marshalling a slice of scalars and a string map cannot fail.
	payload, _ := json.Marshal(record)

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// computeSignature derives the placeholder signature for a block hash.
func computeSignature(hash string) string {
	sum := sha256.Sum256([]byte(hash + ":" + signatureMarker))
	return hex.EncodeToString(sum[:])
}

// Involves reports whether the block moves value into or out of walletID.
func (b Block) Involves(walletID string) bool {
	return b.From == walletID || b.To == walletID
}
