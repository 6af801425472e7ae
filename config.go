package automaton

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Transition is a single entry of the transition table: reading symbol On
// while in state From moves the automaton to state To.
type Transition[N comparable, S comparable] struct {
	From N `yaml:"from"`
	On   S `yaml:"on"`
	To   N `yaml:"to"`
}

// Config defines a deterministic finite-state automaton.
type Config[N comparable, S comparable] struct {
	// Name identifies the machine in logs, metrics, and spans.
	Name string `yaml:"name"`

	// States declares the full state set.
	States []N `yaml:"states"`

	// Initial is the state the cursor starts in. Must be declared in States.
	Initial N `yaml:"initial"`

	// Alphabet is the authoritative set of input symbols. Process rejects
	// anything outside it, and the transition table is only consulted for
	// symbols it contains.
	Alphabet []S `yaml:"alphabet"`

	// Transitions is the transition table. Pairs with no entry default to a
	// self-loop at run time.
	Transitions []Transition[N, S] `yaml:"transitions"`
}

// tableKey identifies a transition-table entry by its (state, symbol) pair.
type tableKey[N comparable, S comparable] struct {
	from N
	on   S
}

// Validate checks the configuration and reports every problem found as a
// single (possibly joined) error. With strict set, table entries keyed on
// symbols outside the alphabet are errors rather than ignored.
func (c Config[N, S]) Validate(strict bool) error {
	var coll errorCollection

	if len(c.States) == 0 {
		coll.add(ErrNoStates)
	}

	declared := make(map[N]bool, len(c.States))

	for _, name := range c.States {
		if declared[name] {
			coll.add(fmt.Errorf("%w: %v", ErrDuplicateState, name))

			continue
		}

		declared[name] = true
	}

	if len(c.States) > 0 && !declared[c.Initial] {
		coll.add(fmt.Errorf("%w: %v", ErrUnknownInitialState, c.Initial))
	}

	alphabet := make(map[S]bool, len(c.Alphabet))
	for _, symbol := range c.Alphabet {
		alphabet[symbol] = true
	}

	seen := make(map[tableKey[N, S]]bool, len(c.Transitions))

	for _, transition := range c.Transitions {
		if !declared[transition.From] {
			coll.add(fmt.Errorf("%w: %v", ErrUnknownTransitionState, transition.From))
		}

		if !declared[transition.To] {
			coll.add(fmt.Errorf("%w: %v -> %v", ErrUnknownSuccessor, transition.From, transition.To))
		}

		if strict && !alphabet[transition.On] {
			coll.add(fmt.Errorf("%w: %v", ErrSymbolOutsideAlphabet, transition.On))
		}

		key := tableKey[N, S]{from: transition.From, on: transition.On}
		if seen[key] {
			coll.add(fmt.Errorf("%w: (%v, %v)", ErrDuplicateTransition, transition.From, transition.On))
		}

		seen[key] = true
	}

	return coll.err()
}

// EncodeDefinition writes the automaton definition as YAML. This is an
// export surface for diffing and visualization pipelines; the library never
// parses definitions back in.
func (c Config[N, S]) EncodeDefinition(writer io.Writer) error {
	encoder := yaml.NewEncoder(writer)

	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode automaton definition: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush automaton definition: %w", err)
	}

	return nil
}
