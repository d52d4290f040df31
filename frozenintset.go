package automaton

import "slices"

var _ Hashable = &FrozenIntSet{}

// FrozenIntSet is an immutable set of states, stored sorted. Its hash does not
// depend on the order the members were supplied in, so two sets with the same
// members are interchangeable as HashMap keys.
type FrozenIntSet struct {
	values   []int
	hashCode uint64
}

// NewFrozenIntSet copies values, sorts them and drops duplicates.
func NewFrozenIntSet(values ...int) *FrozenIntSet {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	hashCode := uint64(len(sorted))
	for _, v := range sorted {
		hashCode += mix32(v)
	}
	return &FrozenIntSet{values: sorted, hashCode: hashCode}
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

func (f *FrozenIntSet) Equals(other Hashable) bool {
	o, ok := other.(*FrozenIntSet)
	if !ok {
		return false
	}
	if f == nil || o == nil {
		return f == o
	}
	return f.hashCode == o.hashCode && slices.Equal(f.values, o.values)
}

// GetArray returns the members in ascending order. The slice must not be modified.
func (f *FrozenIntSet) GetArray() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

// Min returns the smallest member, or -1 for an empty set.
func (f *FrozenIntSet) Min() int {
	if len(f.values) == 0 {
		return -1
	}
	return f.values[0]
}
