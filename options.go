package automaton

// options collects construction-time settings shared by all constructor
// variants.
type options struct {
	logger               Logger
	strict               bool
	constructionEmission bool
}

// Option configures automaton construction.
type Option func(*options)

// WithLogger sets the logger used for stepping events. Without this option
// no logging happens.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStrictAlphabet makes construction fail when a transition-table entry
// is keyed on a symbol outside the declared alphabet, instead of silently
// ignoring the entry during compilation.
func WithStrictAlphabet() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithConstructionEmission makes NewMealy invoke the output callback once at
// construction time with the initial state and the zero value of the symbol
// type, before any real transition. Moore automata always emit at
// construction; this option only affects Mealy.
func WithConstructionEmission() Option {
	return func(o *options) {
		o.constructionEmission = true
	}
}

func applyOptions(opts []Option) options {
	var settings options

	for _, opt := range opts {
		opt(&settings)
	}

	return settings
}
