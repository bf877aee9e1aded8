package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMap(t *testing.T) {
	t.Run("missing keys read as default without being stored", func(t *testing.T) {
		calls := 0
		m := NewDefaultMap[string](func() int {
			calls++
			return 10
		})

		assert.Equal(t, 10, m.Get("a"))
		assert.Equal(t, 1, calls)
		assert.Zero(t, m.Len())
		assert.Empty(t, m.Keys())
	})

	t.Run("set overrides the default", func(t *testing.T) {
		m := NewDefaultMap[string](func() int { return 10 })
		m.Set("a", 1)

		assert.Equal(t, 1, m.Get("a"))
		assert.Equal(t, 10, m.Get("b"))
	})

	t.Run("update starts from the default", func(t *testing.T) {
		m := NewDefaultMap[string](func() []string { return nil })

		m.Update("w1", func(v []string) []string { return append(v, "x") })
		m.Update("w1", func(v []string) []string { return append(v, "y") })
		m.Update("w2", func(v []string) []string { return append(v, "z") })

		assert.Equal(t, []string{"x", "y"}, m.Get("w1"))
		assert.Equal(t, []string{"z"}, m.Get("w2"))
		assert.Equal(t, []string{"w1", "w2"}, Sorted(m.Keys()))
		assert.Equal(t, 2, m.Len())
	})
}
