package automaton

import (
	"github.com/bits-and-blooms/bitset"
)

// Prune
// Returns a new automaton holding only the states of d reachable from start, each keeping the
// transitions whose target is reachable too. d is not modified.
// Fails with InvalidStateError if start is not a state of d or if d has a dangling transition.
func Prune(d DFA, start State, opts ...Option) (DFA, error) {
	o := newOptions(opts...)

	if err := d.Validate(); err != nil {
		return nil, err
	}
	c, err := compile(d, nil)
	if err != nil {
		return nil, err
	}
	initial, ok := c.index[start]
	if !ok {
		return nil, &InvalidStateError{State: start, Role: RoleStart}
	}

	live := getLiveStatesFrom(c.Automaton, initial)

	pruned := make(DFA, live.Count())
	for s, ok := live.NextSet(0); ok; s, ok = live.NextSet(s + 1) {
		name := c.names[s]
		table := make(Transitions, len(d[name]))
		for sym, target := range d[name] {
			if live.Test(uint(c.index[target])) {
				table[sym] = target
			}
		}
		pruned[name] = table
	}

	o.logger.V(1).Info("pruned unreachable states",
		"start", start, "reachable", len(pruned), "dropped", len(d)-len(pruned))
	return pruned, nil
}

// getLiveStatesFrom returns the states reachable from initial, initial included.
// Each state enters the work list at most once, so cycles terminate.
func getLiveStatesFrom(a *Automaton, initial int) *bitset.BitSet {
	live := bitset.New(uint(a.GetNumStates()))
	live.Set(uint(initial))
	workList := []int{initial}

	t := NewTransition()
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]

		count := a.InitTransition(s, t)
		for i := 0; i < count; i++ {
			a.GetNextTransition(t)
			if !live.Test(uint(t.Dest)) {
				live.Set(uint(t.Dest))
				workList = append(workList, t.Dest)
			}
		}
	}
	return live
}
