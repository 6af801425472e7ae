package automaton

// state is a single node in the compiled transition graph. Successor maps
// store interned state names rather than node pointers, so nodes never hold
// references to each other; the owning Automaton resolves names on each step.
type state[N comparable, S comparable] struct {
	name       N
	successors map[S]N
}

func newState[N comparable, S comparable](name N) *state[N, S] {
	return &state[N, S]{
		name:       name,
		successors: make(map[S]N),
	}
}

// setSuccessor records or overwrites the successor for symbol. Alphabet
// validity is the Automaton's responsibility, not checked here.
func (s *state[N, S]) setSuccessor(symbol S, successor N) {
	s.successors[symbol] = successor
}

// next returns the successor name for symbol. When no successor is declared
// the state's own name is returned with ok=false: undeclared input keeps the
// automaton where it is, so stepping never fails on an incomplete table.
func (s *state[N, S]) next(symbol S) (N, bool) {
	successor, ok := s.successors[symbol]
	if !ok {
		return s.name, false
	}

	return successor, true
}
