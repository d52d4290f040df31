package automaton

import (
	"fmt"
	"maps"
	"slices"
	"unicode/utf8"

	"go.uber.org/multierr"
)

// State is an opaque state identifier. States are ordered by plain string
// comparison wherever an order is needed.
type State string

// Symbol is a single input token.
type Symbol rune

// Transitions maps each symbol a state reacts to onto the target state.
// Symbols that are absent have no transition; they do not lead to a dead state.
type Transitions map[Symbol]State

// Symbols returns the symbols of the table in ascending order.
func (t Transitions) Symbols() []Symbol {
	return slices.Sorted(maps.Keys(t))
}

// DFA is a deterministic finite automaton given as state -> transition table.
// Values returned by this package are never modified after they are returned;
// callers must treat them as read-only too.
type DFA map[State]Transitions

// States returns all states in ascending order.
func (d DFA) States() []State {
	return slices.Sorted(maps.Keys(d))
}

// Alphabet returns every symbol used by any transition, in ascending order.
func (d DFA) Alphabet() []Symbol {
	seen := make(map[Symbol]struct{})
	for _, table := range d {
		for sym := range table {
			seen[sym] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// NumTransitions How many transitions the automaton has in total.
func (d DFA) NumTransitions() int {
	n := 0
	for _, table := range d {
		n += len(table)
	}
	return n
}

// Clone returns a deep copy. Empty tables are kept as empty, non-nil maps.
func (d DFA) Clone() DFA {
	out := make(DFA, len(d))
	for state, table := range d {
		cp := make(Transitions, len(table))
		maps.Copy(cp, table)
		out[state] = cp
	}
	return out
}

// Equal reports whether both automata have the same states and transitions.
// A nil table and an empty table are equal.
func (d DFA) Equal(other DFA) bool {
	return maps.EqualFunc(d, other, func(a, b Transitions) bool {
		return maps.Equal(a, b)
	})
}

// Validate checks that every state identifier is usable and that no
// transition dangles. All problems are reported together.
func (d DFA) Validate() error {
	var err error
	for _, state := range d.States() {
		if state == "" {
			err = multierr.Append(err, &MalformedAutomatonError{State: state, Reason: "empty state identifier"})
		}

		table := d[state]
		for _, sym := range table.Symbols() {
			if !utf8.ValidRune(rune(sym)) {
				err = multierr.Append(err, &MalformedAutomatonError{State: state, Reason: fmt.Sprintf("invalid symbol %#x", int32(sym))})
				continue
			}
			target := table[sym]
			if _, ok := d[target]; !ok {
				err = multierr.Append(err, &InvalidStateError{State: target, Role: RoleTarget, From: state, Symbol: sym})
			}
		}
	}
	return err
}

// checkFinals rejects final states that are not states of d.
func checkFinals(d DFA, finals StateSet) error {
	var err error
	for _, f := range finals.Sorted() {
		if _, ok := d[f]; !ok {
			err = multierr.Append(err, &InvalidStateError{State: f, Role: RoleFinal})
		}
	}
	return err
}
