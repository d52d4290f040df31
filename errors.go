package automaton

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is matched by every InvalidStateError.
	ErrInvalidState = errors.New("automaton: invalid state")

	// ErrMalformedAutomaton is matched by every MalformedAutomatonError.
	ErrMalformedAutomaton = errors.New("automaton: malformed automaton")

	// ErrInconsistentPartition means two states of one equivalence class
	// disagree on where a symbol leads. A stable partition never produces it.
	ErrInconsistentPartition = errors.New("automaton: inconsistent partition")
)

// Role says where an invalid state identifier was found.
type Role string

const (
	RoleStart  Role = "start"
	RoleFinal  Role = "final"
	RoleTarget Role = "target"
)

// InvalidStateError reports a start state, final state or transition target
// that is not a key of the automaton.
type InvalidStateError struct {
	State State
	Role  Role

	// From and Symbol locate the transition when Role is RoleTarget.
	From   State
	Symbol Symbol
}

func (e *InvalidStateError) Error() string {
	if e.Role == RoleTarget {
		return fmt.Sprintf("automaton: transition %q --%q--> %q targets an unknown state", e.From, e.Symbol, e.State)
	}
	return fmt.Sprintf("automaton: %s state %q is not a state of the automaton", e.Role, e.State)
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// MalformedAutomatonError reports a state identifier or symbol that cannot be
// used at all, independent of the rest of the automaton.
type MalformedAutomatonError struct {
	State  State
	Reason string
}

func (e *MalformedAutomatonError) Error() string {
	return fmt.Sprintf("automaton: state %q: %s", e.State, e.Reason)
}

func (e *MalformedAutomatonError) Is(target error) bool {
	return target == ErrMalformedAutomaton
}
