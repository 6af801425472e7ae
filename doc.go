// Package automaton provides deterministic finite-state automata with
// optional output behavior attached to state transitions.
//
// An Automaton is built once from a Config (or via the fluent Builder) and
// then driven one input symbol at a time with Process. Two output styles are
// supported: Moore automata emit output each time a state is entered, keyed
// on the new state alone, and Mealy automata emit output when a state is
// left, keyed on the old state and the symbol that caused the transition.
//
// Undeclared transitions never fail: a symbol with no table entry for the
// current state leaves the automaton where it is (self-loop default), so
// stepping is total over the declared alphabet. Symbols outside the alphabet
// are rejected without any state change.
//
// Example:
//
//	cfg := automaton.Config[string, int]{
//	    Name:     "doors",
//	    States:   []string{"open", "closed"},
//	    Initial:  "closed",
//	    Alphabet: []int{0, 1},
//	    Transitions: []automaton.Transition[string, int]{
//	        {From: "closed", On: 1, To: "open"},
//	        {From: "open", On: 0, To: "closed"},
//	    },
//	}
//
//	machine, err := automaton.NewMoore(cfg, func(ctx context.Context, state string) error {
//	    fmt.Println("now in", state)
//	    return nil
//	})
//
// A single automaton instance must be driven by one goroutine at a time; no
// internal synchronization is provided.
package automaton
