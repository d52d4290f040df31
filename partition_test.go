package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blocksOf(p *partition) [][]int {
	out := make([][]int, len(p.blocks))
	for i, b := range p.blocks {
		out[i] = b.GetArray()
	}
	return out
}

func TestInitialPartition(t *testing.T) {
	d := DFA{"A": {}, "B": {}, "C": {}}

	t.Run("FinalsFirst", func(t *testing.T) {
		c, err := compile(d, NewStateSet("B"))
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1}, {0, 2}}, blocksOf(initialPartition(c.Automaton)))
	})

	t.Run("NoFinals", func(t *testing.T) {
		c, err := compile(d, nil)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{0, 1, 2}}, blocksOf(initialPartition(c.Automaton)))
	})

	t.Run("AllFinal", func(t *testing.T) {
		c, err := compile(d, NewStateSet("A", "B", "C"))
		require.NoError(t, err)
		assert.Equal(t, [][]int{{0, 1, 2}}, blocksOf(initialPartition(c.Automaton)))
	})

	t.Run("Empty", func(t *testing.T) {
		c, err := compile(DFA{}, nil)
		require.NoError(t, err)
		assert.Empty(t, initialPartition(c.Automaton).blocks)
	})
}

func TestPartitionRefine(t *testing.T) {
	t.Run("SplitsOnSignature", func(t *testing.T) {
		// A and B agree, C has a different symbol set, D is the only final state.
		c, err := compile(DFA{
			"A": {'x': "D"},
			"B": {'x': "D"},
			"C": {'y': "D"},
			"D": {},
		}, NewStateSet("D"))
		require.NoError(t, err)

		p := initialPartition(c.Automaton)
		next := p.refine(c.Automaton)
		assert.Equal(t, [][]int{{3}, {0, 1}, {2}}, blocksOf(next))
	})

	t.Run("UsesSnapshot", func(t *testing.T) {
		// A -> B -> C -> D(final). Only C can be split off in the first round;
		// A and B must both be judged against the initial partition.
		c, err := compile(DFA{
			"A": {'x': "B"},
			"B": {'x': "C"},
			"C": {'x': "D"},
			"D": {},
		}, NewStateSet("D"))
		require.NoError(t, err)

		p := initialPartition(c.Automaton)
		r1 := p.refine(c.Automaton)
		assert.Equal(t, [][]int{{3}, {0, 1}, {2}}, blocksOf(r1))

		r2 := r1.refine(c.Automaton)
		assert.Equal(t, [][]int{{3}, {0}, {1}, {2}}, blocksOf(r2))
		assert.True(t, r2.refine(c.Automaton).equals(r2))
	})

	t.Run("NeverMerges", func(t *testing.T) {
		// F is final, S is not; both are sinks with equal (empty) signatures.
		c, err := compile(DFA{
			"A": {'a': "F", 'b': "S"},
			"F": {},
			"S": {},
		}, NewStateSet("F"))
		require.NoError(t, err)

		p := initialPartition(c.Automaton)
		for i := 0; i < 3; i++ {
			p = p.refine(c.Automaton)
			blockOf := p.blockIndexes(c.GetNumStates())
			assert.NotEqual(t, blockOf[c.index["F"]], blockOf[c.index["S"]])
		}
	})
}

func TestPartitionEquals(t *testing.T) {
	a := &partition{blocks: []*FrozenIntSet{NewFrozenIntSet(0, 1), NewFrozenIntSet(2)}}
	b := &partition{blocks: []*FrozenIntSet{NewFrozenIntSet(2), NewFrozenIntSet(1, 0)}}
	c := &partition{blocks: []*FrozenIntSet{NewFrozenIntSet(0), NewFrozenIntSet(1, 2)}}
	d := &partition{blocks: []*FrozenIntSet{NewFrozenIntSet(0), NewFrozenIntSet(1), NewFrozenIntSet(2)}}

	assert.True(t, a.equals(b))
	assert.True(t, b.equals(a))
	assert.False(t, a.equals(c))
	assert.False(t, a.equals(d))
	assert.True(t, (&partition{}).equals(&partition{}))
}

func TestPartitionSortedByMin(t *testing.T) {
	p := &partition{blocks: []*FrozenIntSet{
		NewFrozenIntSet(4),
		NewFrozenIntSet(3, 1),
		NewFrozenIntSet(0, 2),
	}}
	assert.Equal(t, [][]int{{0, 2}, {1, 3}, {4}}, blocksOf(&partition{blocks: p.sortedByMin()}))
	// the partition itself keeps its order
	assert.Equal(t, 4, p.blocks[0].Min())
}

func TestSignature(t *testing.T) {
	c, err := compile(DFA{
		"A": {'y': "B", 'x': "A"},
		"B": {},
	}, nil)
	require.NoError(t, err)

	blockOf := []int{5, 7}
	sig := signatureOf(c.Automaton, 0, blockOf, NewTransition())
	assert.Equal(t, signature{'x', 5, 'y', 7}, sig)
	assert.Empty(t, signatureOf(c.Automaton, 1, blockOf, NewTransition()))

	assert.True(t, sig.Equals(signature{'x', 5, 'y', 7}))
	assert.False(t, sig.Equals(signature{'x', 5}))
	assert.False(t, sig.Equals(NewFrozenIntSet('x', 5, 'y', 7)))
	assert.Equal(t, sig.Hash(), signature{'x', 5, 'y', 7}.Hash())
}
