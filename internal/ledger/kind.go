package ledger

import (
	"fmt"
	"strings"
)

// Kind identifies the value-moving event a Block records.
//
// The set of kinds is closed: only the constants below are valid, and any
// other value is rejected when parsing or hashing.
type Kind uint8

const (
	KindEmission     Kind = iota + 1 // new units minted from SYSTEM
	KindTransfer                     // wallet to wallet movement
	KindPayment                      // wallet to wallet movement settling a purchase
	KindReward                       // new units minted as a reward
	KindBurn                         // units destroyed, wallet to SYSTEM
	KindDistribution                 // valid on the chain; Distribute records its shares as emissions
)

var kindNames = map[Kind]string{
	KindEmission:     "emission",
	KindTransfer:     "transfer",
	KindPayment:      "payment",
	KindReward:       "reward",
	KindBurn:         "burn",
	KindDistribution: "distribution",
}

// String returns the canonical lowercase name of the kind. The name is part
// of the block hash, so it must never change for an existing kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind returns the Kind whose canonical name is s.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}

	*k = parsed
	return nil
}

// Category is one of the fixed destinations of a profit distribution.
type Category uint8

const (
	CategoryHive           Category = iota + 1 // community pool
	CategoryDevelopment                        // product development
	CategoryDreamFund                          // community dream fund
	CategoryInfrastructure                     // hosting and infrastructure
	CategoryReserve                            // treasury reserve
)

var categoryNames = map[Category]string{
	CategoryHive:           "hive",
	CategoryDevelopment:    "development",
	CategoryDreamFund:      "dream_fund",
	CategoryInfrastructure: "infrastructure",
	CategoryReserve:        "reserve",
}

// Categories returns every distribution category in declaration order.
// Distributions are always processed in this order.
func Categories() []Category {
	return []Category{
		CategoryHive,
		CategoryDevelopment,
		CategoryDreamFund,
		CategoryInfrastructure,
		CategoryReserve,
	}
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}

	return fmt.Sprintf("category(%d)", uint8(c))
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// WalletAlias is the well-known alias of the wallet that receives this
// category's share, e.g. "WALLET_DREAM_FUND".
func (c Category) WalletAlias() string {
	return "WALLET_" + strings.ToUpper(c.String())
}

// ParseCategory returns the Category whose canonical name is s.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if name == s {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown category %q", ErrInvalidDistribution, s)
}
