package automaton

// Builder provides a fluent API for constructing automata.
type Builder[N comparable, S comparable] struct {
	config Config[N, S]
}

// NewBuilder creates a builder for an automaton with the given name.
func NewBuilder[N comparable, S comparable](name string) *Builder[N, S] {
	return &Builder[N, S]{
		config: Config[N, S]{Name: name},
	}
}

// WithStates declares states.
func (b *Builder[N, S]) WithStates(states ...N) *Builder[N, S] {
	b.config.States = append(b.config.States, states...)

	return b
}

// WithInitialState sets the initial state.
func (b *Builder[N, S]) WithInitialState(state N) *Builder[N, S] {
	b.config.Initial = state

	return b
}

// WithAlphabet declares input symbols.
func (b *Builder[N, S]) WithAlphabet(symbols ...S) *Builder[N, S] {
	b.config.Alphabet = append(b.config.Alphabet, symbols...)

	return b
}

// AddTransition adds a transition table entry.
func (b *Builder[N, S]) AddTransition(from N, on S, to N) *Builder[N, S] {
	b.config.Transitions = append(b.config.Transitions, Transition[N, S]{
		From: from,
		On:   on,
		To:   to,
	})

	return b
}

// Config returns a copy of the accumulated configuration.
func (b *Builder[N, S]) Config() Config[N, S] {
	return b.config
}

// Build constructs a plain automaton with no output behavior.
func (b *Builder[N, S]) Build(opts ...Option) (*Automaton[N, S], error) {
	return New(b.config, opts...)
}

// BuildMoore constructs an automaton with Moore-style output.
func (b *Builder[N, S]) BuildMoore(output MooreOutput[N], opts ...Option) (*Automaton[N, S], error) {
	return NewMoore(b.config, output, opts...)
}

// BuildMealy constructs an automaton with Mealy-style output.
func (b *Builder[N, S]) BuildMealy(output MealyOutput[N, S], opts ...Option) (*Automaton[N, S], error) {
	return NewMealy(b.config, output, opts...)
}
