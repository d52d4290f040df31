package automaton

import (
	"fmt"
	"maps"
	"strconv"
)

// Minimization is the result of MinimizeClasses.
type Minimization struct {
	// DFA is the minimized automaton; its states are the class names.
	DFA DFA

	// Classes maps every state of the input onto its class name.
	Classes map[State]State

	// Rounds is the number of refinement rounds run, the last one being the
	// round that found the partition stable.
	Rounds int
}

// Minimize
// Merges the indistinguishable states of d. See MinimizeClasses.
func Minimize(d DFA, finals StateSet, opts ...Option) (DFA, error) {
	m, err := MinimizeClasses(d, finals, opts...)
	if err != nil {
		return nil, err
	}
	return m.DFA, nil
}

// MinimizeClasses
// Computes the coarsest partition of the states of d in which every two states of a block have the
// same accept status and, for every symbol, transitions into the same block. Each block becomes one
// state named <prefix><i>, blocks being numbered in order of their smallest original state.
//
// d should already be pruned; otherwise the result accepts the same language but may not be minimal.
// Every entry of finals must be a state of d.
func MinimizeClasses(d DFA, finals StateSet, opts ...Option) (*Minimization, error) {
	o := newOptions(opts...)

	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := checkFinals(d, finals); err != nil {
		return nil, err
	}
	c, err := compile(d, finals)
	if err != nil {
		return nil, err
	}

	p := initialPartition(c.Automaton)
	rounds := 0
	for {
		next := p.refine(c.Automaton)
		rounds++
		o.logger.V(1).Info("refinement round", "round", rounds, "blocks", len(next.blocks))
		if next.equals(p) {
			break
		}
		p = next
	}

	blocks := p.sortedByMin()
	classOf := make([]int, c.GetNumStates())
	for i, block := range blocks {
		for _, s := range block.GetArray() {
			classOf[s] = i
		}
	}
	className := func(i int) State {
		return State(o.classPrefix + strconv.Itoa(i))
	}

	m := &Minimization{
		DFA:     make(DFA, len(blocks)),
		Classes: make(map[State]State, len(c.names)),
		Rounds:  rounds,
	}

	t := NewTransition()
	for s, name := range c.names {
		class := className(classOf[s])
		m.Classes[name] = class

		count := c.InitTransition(s, t)
		table := make(Transitions, count)
		for i := 0; i < count; i++ {
			c.GetNextTransition(t)
			table[Symbol(t.Label)] = className(classOf[t.Dest])
		}

		if existing, ok := m.DFA[class]; ok {
			if !maps.Equal(existing, table) {
				return nil, fmt.Errorf("%w: state %q disagrees with class %s", ErrInconsistentPartition, name, class)
			}
			continue
		}
		m.DFA[class] = table
	}

	o.logger.V(1).Info("minimized automaton", "states", len(d), "classes", len(blocks), "rounds", rounds)
	return m, nil
}
