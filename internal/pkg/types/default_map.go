// Package types holds small generic collections used by the ledger.
package types

// DefaultMap is a map whose missing keys read as a value produced on demand.
//
//	balances := types.NewDefaultMap[string](decimal.Zero.Copy)
//	balances.Update("wallet", func(d decimal.Decimal) decimal.Decimal { return d.Add(amount) })
type DefaultMap[K comparable, V any] struct {
	data     map[K]V
	newValue func() V
}

// NewDefaultMap returns an empty map that reads missing keys as newValue().
func NewDefaultMap[K comparable, V any](newValue func() V) *DefaultMap[K, V] {
	return &DefaultMap[K, V]{
		data:     make(map[K]V),
		newValue: newValue,
	}
}

// Get returns the value stored under key, or a fresh default without
// storing it.
func (m *DefaultMap[K, V]) Get(key K) V {
	if v, ok := m.data[key]; ok {
		return v
	}

	return m.newValue()
}

// Set stores value under key.
func (m *DefaultMap[K, V]) Set(key K, value V) {
	m.data[key] = value
}

// Update replaces the value under key with fn applied to its current value,
// starting from the default when the key is missing.
func (m *DefaultMap[K, V]) Update(key K, fn func(V) V) {
	m.data[key] = fn(m.Get(key))
}

// Keys returns the set of keys that have been written.
func (m *DefaultMap[K, V]) Keys() Set[K] {
	keys := make(Set[K], len(m.data))
	for k := range m.data {
		keys.Add(k)
	}

	return keys
}

// Len returns the number of keys that have been written.
func (m *DefaultMap[K, V]) Len() int {
	return len(m.data)
}
