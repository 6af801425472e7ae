package automaton

import "errors"

// Predefined error types.
var (
	// ErrNoStates indicates that a configuration declares no states.
	ErrNoStates = errors.New("at least one state is required")
	// ErrDuplicateState indicates that a state name is declared more than once.
	ErrDuplicateState = errors.New("duplicate state name")
	// ErrUnknownInitialState indicates that the initial state is not among the declared states.
	ErrUnknownInitialState = errors.New("initial state is not a declared state")
	// ErrUnknownTransitionState indicates that a transition starts from an undeclared state.
	ErrUnknownTransitionState = errors.New("transition from-state is not a declared state")
	// ErrUnknownSuccessor indicates that a transition names an undeclared successor state.
	ErrUnknownSuccessor = errors.New("transition successor is not a declared state")
	// ErrDuplicateTransition indicates that two table entries share the same (state, symbol) pair.
	ErrDuplicateTransition = errors.New("duplicate transition for state and symbol")
	// ErrSymbolOutsideAlphabet indicates a table entry keyed on a symbol missing
	// from the declared alphabet. Only reported with WithStrictAlphabet; by
	// default such entries are ignored during compilation.
	ErrSymbolOutsideAlphabet = errors.New("transition symbol is not in the input alphabet")

	// ErrUnknownSymbol is returned by Process when the given symbol is outside
	// the declared input alphabet. The automaton's state is left unchanged.
	ErrUnknownSymbol = errors.New("unspecified input, not accepted by this automaton")
	// ErrStateNotFound is returned by ForceState when the named state is not declared.
	ErrStateNotFound = errors.New("state not found")
)

// errorCollection accumulates configuration errors so a single validation
// pass can report every problem at once. Nil errors are ignored.
type errorCollection struct {
	errors []error
}

func (c *errorCollection) add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// err returns the collected errors as a single error: nil when empty, the
// sole error when there is one, or a joined error otherwise.
func (c *errorCollection) err() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
