// Package automaton reduces deterministic finite automata to their canonical
// minimal form.
//
// A DFA is a map from state to transition table. Reduction runs in two stages:
//
//	pruned, err := automaton.Prune(d, start)
//	minimized, err := automaton.Minimize(pruned, finals)
//
// Prune keeps the states reachable from the start state. Minimize merges
// states that cannot be told apart by partition refinement and names each
// class Q0, Q1, ... in order of its smallest state. Reduce runs both stages
// and also maps the start and final states onto their classes.
//
// Definitions can be read from and written to YAML with ParseDefinition and
// Definition.Encode.
package automaton
