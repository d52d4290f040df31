package automaton

import (
	"maps"
	"slices"
)

// StateSet is a set of state identifiers, typically the final states.
type StateSet map[State]struct{}

func NewStateSet(states ...State) StateSet {
	s := make(StateSet, len(states))
	for _, state := range states {
		s[state] = struct{}{}
	}
	return s
}

func (s StateSet) Add(state State) {
	s[state] = struct{}{}
}

// Contains is safe on a nil set.
func (s StateSet) Contains(state State) bool {
	_, ok := s[state]
	return ok
}

func (s StateSet) Len() int {
	return len(s)
}

// Sorted returns the members in ascending order.
func (s StateSet) Sorted() []State {
	return slices.Sorted(maps.Keys(s))
}
