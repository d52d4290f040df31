package automaton

// Reduction is the result of Reduce.
type Reduction struct {
	// Pruned is the input restricted to the states reachable from the start state.
	Pruned DFA

	// Minimized is the canonical minimal automaton.
	Minimized DFA

	// Start is the class of the start state in Minimized.
	Start State

	// Finals holds the classes of the reachable final states.
	Finals StateSet

	// Classes maps every reachable state of the input onto its class.
	Classes map[State]State
}

// Reduce
// Prunes d to the states reachable from start, then minimizes the result. Final states that exist in d
// but are unreachable are dropped; final states that are not states of d are rejected.
func Reduce(d DFA, start State, finals StateSet, opts ...Option) (*Reduction, error) {
	pruned, err := Prune(d, start, opts...)
	if err != nil {
		return nil, err
	}
	if err := checkFinals(d, finals); err != nil {
		return nil, err
	}

	reachableFinals := NewStateSet()
	for f := range finals {
		if _, ok := pruned[f]; ok {
			reachableFinals.Add(f)
		}
	}

	m, err := MinimizeClasses(pruned, reachableFinals, opts...)
	if err != nil {
		return nil, err
	}

	r := &Reduction{
		Pruned:    pruned,
		Minimized: m.DFA,
		Start:     m.Classes[start],
		Finals:    NewStateSet(),
		Classes:   m.Classes,
	}
	for f := range reachableFinals {
		r.Finals.Add(m.Classes[f])
	}
	return r, nil
}
