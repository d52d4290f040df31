package automaton

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Definition is the YAML document form of an automaton:
//
//	start: X
//	final: [N]
//	states:
//	  X: {i: I, j: K}
//	  N: {}
//
// Every symbol key must be exactly one character.
type Definition struct {
	Start  string                       `yaml:"start"`
	Final  []string                     `yaml:"final,omitempty"`
	States map[string]map[string]string `yaml:"states"`
}

// ParseDefinition decodes a single definition document. Unknown fields are rejected.
func ParseDefinition(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("automaton: empty definition")
		}
		return nil, fmt.Errorf("automaton: decode definition: %w", err)
	}
	return &def, nil
}

// NewDefinition builds the document form of d.
func NewDefinition(d DFA, start State, finals StateSet) *Definition {
	def := &Definition{
		Start:  string(start),
		States: make(map[string]map[string]string, len(d)),
	}
	for _, f := range finals.Sorted() {
		def.Final = append(def.Final, string(f))
	}
	for state, table := range d {
		out := make(map[string]string, len(table))
		for sym, target := range table {
			out[string(rune(sym))] = string(target)
		}
		def.States[string(state)] = out
	}
	return def
}

// Encode writes def as YAML. Map keys are written in sorted order.
func (def *Definition) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(def); err != nil {
		return fmt.Errorf("automaton: encode definition: %w", err)
	}
	return enc.Close()
}

// Automaton converts def into the in-memory types and validates the result:
// symbols must be single characters, the start state, final states and every
// transition target must be declared states. All problems are reported together.
func (def *Definition) Automaton() (DFA, State, StateSet, error) {
	var err error

	d := make(DFA, len(def.States))
	for name, table := range def.States {
		out := make(Transitions, len(table))
		for key, target := range table {
			r, size := utf8.DecodeRuneInString(key)
			if r == utf8.RuneError || size != len(key) {
				err = multierr.Append(err, &MalformedAutomatonError{
					State:  State(name),
					Reason: fmt.Sprintf("symbol %q is not a single character", key),
				})
				continue
			}
			out[Symbol(r)] = State(target)
		}
		d[State(name)] = out
	}

	start := State(def.Start)
	if _, ok := d[start]; !ok {
		err = multierr.Append(err, &InvalidStateError{State: start, Role: RoleStart})
	}
	finals := NewStateSet()
	for _, f := range def.Final {
		finals.Add(State(f))
	}
	err = multierr.Combine(err, checkFinals(d, finals), d.Validate())
	if err != nil {
		return nil, "", nil, err
	}
	return d, start, finals, nil
}
