package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Automaton is the packed integer form of a DFA that the reduction algorithms
// work on. States are integers created with CreateState; accept states are
// kept in a bitset. Each state must have all of its transitions added at once,
// in strictly ascending label order, which keeps every state's transitions
// sorted by label and makes Step a binary search.
type Automaton struct {
	// Current state we are adding transitions to, or -1.
	curState int

	// Two ints per state: index into transitions where the state's leaving
	// transitions start (-1 if none were added yet), followed by their count.
	states []int

	isAccept *bitset.BitSet

	// Two ints per transition: dest, label.
	transitions []int
}

// Transition is a cursor over the transitions leaving one state.
type Transition struct {
	Source int
	Dest   int
	Label  int

	// Index into the packed transitions of the next transition to read.
	TransitionUpto int
}

func NewTransition() *Transition {
	return &Transition{Source: -1, Dest: -1}
}

func NewAutomaton(numStates, numTransitions int) *Automaton {
	return &Automaton{
		curState:    -1,
		states:      make([]int, 0, numStates*2),
		isAccept:    bitset.New(uint(numStates)),
		transitions: make([]int, 0, numTransitions*2),
	}
}

// CreateState Create a new state.
func (a *Automaton) CreateState() int {
	state := len(a.states) / 2
	a.states = append(a.states, -1, 0)
	return state
}

// SetAccept Set or clear this state as an accept state.
func (a *Automaton) SetAccept(state int, accept bool) {
	a.isAccept.SetTo(uint(state), accept)
}

// IsAccept Returns true if this state is an accept state.
func (a *Automaton) IsAccept(state int) bool {
	return a.isAccept.Test(uint(state))
}

// AddTransition Add a new transition from source to dest on label.
func (a *Automaton) AddTransition(source, dest, label int) error {
	numStates := a.GetNumStates()
	if source < 0 || source >= numStates {
		return fmt.Errorf("source state %d out of bounds (numStates=%d)", source, numStates)
	}
	if dest < 0 || dest >= numStates {
		return fmt.Errorf("dest state %d out of bounds (numStates=%d)", dest, numStates)
	}

	if a.curState != source {
		// Move to next source:
		if a.states[2*source] != -1 {
			return fmt.Errorf("from state (%d) already had transitions added", source)
		}
		a.curState = source
		a.states[2*source] = len(a.transitions)
	} else {
		count := a.states[2*source+1]
		last := a.transitions[a.states[2*source]+2*count-1]
		if label <= last {
			return fmt.Errorf("label %d of state %d is not above previous label %d", label, source, last)
		}
	}

	a.transitions = append(a.transitions, dest, label)
	a.states[2*source+1]++
	return nil
}

// FinishState
// Finishes the current state; call this once you are done adding transitions for a state.
func (a *Automaton) FinishState() {
	a.curState = -1
}

// GetNumStates How many states this automaton has.
func (a *Automaton) GetNumStates() int {
	return len(a.states) / 2
}

// GetNumTransitions How many transitions this automaton has.
func (a *Automaton) GetNumTransitions() int {
	return len(a.transitions) / 2
}

// GetNumTransitionsWithState How many transitions this state has.
func (a *Automaton) GetNumTransitionsWithState(state int) int {
	return a.states[2*state+1]
}

// InitTransition Initialize the provided Transition to iterate through all transitions leaving the specified
// state. You must call GetNextTransition to get each transition. Returns the number of transitions leaving
// this state.
func (a *Automaton) InitTransition(state int, t *Transition) int {
	t.Source = state
	t.TransitionUpto = a.states[2*state]
	return a.GetNumTransitionsWithState(state)
}

// GetNextTransition Iterate to the next transition after the provided one
func (a *Automaton) GetNextTransition(t *Transition) {
	t.Dest = a.transitions[t.TransitionUpto]
	t.Label = a.transitions[t.TransitionUpto+1]
	t.TransitionUpto += 2
}

// Step Performs lookup in transitions.
// Returns: destination state, -1 if no matching outgoing transition
func (a *Automaton) Step(state, label int) int {
	first := a.states[2*state]
	low, high := 0, a.states[2*state+1]-1

	// Labels are sorted, binary search.
	for low <= high {
		mid := (low + high) >> 1
		i := first + 2*mid
		switch l := a.transitions[i+1]; {
		case l < label:
			low = mid + 1
		case l > label:
			high = mid - 1
		default:
			return a.transitions[i]
		}
	}
	return -1
}
