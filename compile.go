package automaton

// compiled pairs an Automaton with the names of its states. State i is the
// i-th state of the DFA in ascending name order, so comparing indexes is the
// same as comparing names.
type compiled struct {
	*Automaton
	names []State
	index map[State]int
}

// compile packs d into an Automaton. States in finals become accept states;
// final entries that are not states of d are ignored here.
func compile(d DFA, finals StateSet) (*compiled, error) {
	names := d.States()
	c := &compiled{
		Automaton: NewAutomaton(len(names), d.NumTransitions()),
		names:     names,
		index:     make(map[State]int, len(names)),
	}

	for _, name := range names {
		s := c.CreateState()
		c.index[name] = s
		if finals.Contains(name) {
			c.SetAccept(s, true)
		}
	}

	for s, name := range names {
		table := d[name]
		for _, sym := range table.Symbols() {
			target := table[sym]
			dest, ok := c.index[target]
			if !ok {
				return nil, &InvalidStateError{State: target, Role: RoleTarget, From: name, Symbol: sym}
			}
			if err := c.AddTransition(s, dest, int(sym)); err != nil {
				return nil, err
			}
		}
		c.FinishState()
	}

	return c, nil
}
