package automaton

// Run reports whether d, started in start, accepts s. A missing transition
// rejects. An invalid automaton or an unknown start state accepts nothing.
func Run(d DFA, start State, finals StateSet, s string) bool {
	c, err := compile(d, finals)
	if err != nil {
		return false
	}
	state, ok := c.index[start]
	if !ok {
		return false
	}
	for _, v := range s {
		state = c.Step(state, int(v))
		if state == -1 {
			return false
		}
	}
	return c.IsAccept(state)
}
