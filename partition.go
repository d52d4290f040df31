package automaton

import "slices"

// partition is an ordered list of disjoint, non-empty blocks covering every
// state of an automaton. Refinement only ever splits blocks.
type partition struct {
	blocks []*FrozenIntSet
}

// initialPartition separates accept states from the rest. Empty blocks are
// left out, so the result has zero, one or two blocks.
func initialPartition(a *Automaton) *partition {
	var accept, reject []int
	for s := 0; s < a.GetNumStates(); s++ {
		if a.IsAccept(s) {
			accept = append(accept, s)
		} else {
			reject = append(reject, s)
		}
	}

	p := &partition{}
	for _, block := range [][]int{accept, reject} {
		if len(block) > 0 {
			p.blocks = append(p.blocks, NewFrozenIntSet(block...))
		}
	}
	return p
}

// blockIndexes returns state -> index of its block.
func (p *partition) blockIndexes(numStates int) []int {
	blockOf := make([]int, numStates)
	for i, block := range p.blocks {
		for _, s := range block.GetArray() {
			blockOf[s] = i
		}
	}
	return blockOf
}

// refine splits every block into subgroups of states with equal signatures.
// All signatures of a round are computed against the same snapshot of p.
// Subgroups keep the order of their smallest member.
func (p *partition) refine(a *Automaton) *partition {
	blockOf := p.blockIndexes(a.GetNumStates())
	next := &partition{blocks: make([]*FrozenIntSet, 0, len(p.blocks))}

	t := NewTransition()
	for _, block := range p.blocks {
		groupOf := NewHashMap[int](WithCapacity(block.Size()))
		var groups [][]int

		for _, s := range block.GetArray() {
			sig := signatureOf(a, s, blockOf, t)
			g, ok := groupOf.Get(sig)
			if !ok {
				g = len(groups)
				groupOf.Set(sig, g)
				groups = append(groups, nil)
			}
			groups[g] = append(groups[g], s)
		}

		for _, g := range groups {
			next.blocks = append(next.blocks, NewFrozenIntSet(g...))
		}
	}
	return next
}

// equals compares the two partitions as sets of sets; block order is ignored.
func (p *partition) equals(other *partition) bool {
	if len(p.blocks) != len(other.blocks) {
		return false
	}
	seen := NewHashMap[struct{}](WithCapacity(len(other.blocks)))
	for _, block := range other.blocks {
		seen.Set(block, struct{}{})
	}
	for _, block := range p.blocks {
		if _, ok := seen.Get(block); !ok {
			return false
		}
	}
	return true
}

// sortedByMin returns the blocks ordered by their smallest state.
func (p *partition) sortedByMin() []*FrozenIntSet {
	blocks := slices.Clone(p.blocks)
	slices.SortFunc(blocks, func(x, y *FrozenIntSet) int {
		return x.Min() - y.Min()
	})
	return blocks
}

var _ Hashable = signature(nil)

// signature is the flattened list of (label, target block) pairs of a state,
// in ascending label order.
type signature []int

func signatureOf(a *Automaton, state int, blockOf []int, t *Transition) signature {
	count := a.InitTransition(state, t)
	sig := make(signature, 0, 2*count)
	for i := 0; i < count; i++ {
		a.GetNextTransition(t)
		sig = append(sig, t.Label, blockOf[t.Dest])
	}
	return sig
}

func (s signature) Hash() uint64 {
	return mixSequence(s)
}

func (s signature) Equals(other Hashable) bool {
	o, ok := other.(signature)
	return ok && slices.Equal(s, o)
}
