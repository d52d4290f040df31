package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrozenIntSet(t *testing.T) {
	t.Run("SortedAndDeduplicated", func(t *testing.T) {
		s := NewFrozenIntSet(5, 1, 3, 1)
		assert.Equal(t, []int{1, 3, 5}, s.GetArray())
		assert.Equal(t, 3, s.Size())
		assert.Equal(t, 1, s.Min())
	})

	t.Run("OrderIndependent", func(t *testing.T) {
		a := NewFrozenIntSet(3, 1, 2)
		b := NewFrozenIntSet(2, 3, 1)
		assert.Equal(t, a.Hash(), b.Hash())
		assert.True(t, a.Equals(b))
		assert.True(t, b.Equals(a))
	})

	t.Run("DifferentMembers", func(t *testing.T) {
		a := NewFrozenIntSet(1, 2)
		b := NewFrozenIntSet(1, 3)
		c := NewFrozenIntSet(1, 2, 3)
		assert.False(t, a.Equals(b))
		assert.False(t, a.Equals(c))
		assert.False(t, a.Equals(signature{1, 2}))
	})

	t.Run("Empty", func(t *testing.T) {
		s := NewFrozenIntSet()
		assert.Equal(t, 0, s.Size())
		assert.Equal(t, -1, s.Min())
		assert.True(t, s.Equals(NewFrozenIntSet()))
	})

	t.Run("Nil", func(t *testing.T) {
		var a, b *FrozenIntSet
		assert.True(t, a.Equals(b))
		assert.False(t, a.Equals(NewFrozenIntSet(1)))
	})
}
