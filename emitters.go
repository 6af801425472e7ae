package automaton

import "context"

// MooreOutput emits output keyed on the state just entered.
type MooreOutput[N comparable] func(ctx context.Context, state N) error

// MealyOutput emits output keyed on the state being left and the symbol that
// causes the transition.
type MealyOutput[N comparable, S comparable] func(ctx context.Context, state N, symbol S) error

// Emitter receives entry and exit notifications from the stepping routine.
// OnExit runs with the pre-move state before the cursor advances; OnEnter
// runs with the post-move state after it. Errors propagate unmodified to the
// Process caller.
type Emitter[N comparable, S comparable] interface {
	OnExit(ctx context.Context, old N, symbol S) error
	OnEnter(ctx context.Context, next N, symbol S) error
}

// nopEmitter is the default strategy for plain automata.
type nopEmitter[N comparable, S comparable] struct{}

func (nopEmitter[N, S]) OnExit(context.Context, N, S) error { return nil }

func (nopEmitter[N, S]) OnEnter(context.Context, N, S) error { return nil }

// mooreEmitter emits on entry, keyed only on the new state. The symbol is
// part of the hook signature for symmetry with Mealy and is ignored here.
type mooreEmitter[N comparable, S comparable] struct {
	machine string
	output  MooreOutput[N]
}

func (mooreEmitter[N, S]) OnExit(context.Context, N, S) error { return nil }

func (e mooreEmitter[N, S]) OnEnter(ctx context.Context, next N, _ S) error {
	err := e.output(ctx, next)
	if err != nil {
		return err
	}

	outputsEmittedTotal.WithLabelValues(e.machine, outputKindMoore).Inc()

	return nil
}

// mealyEmitter emits on exit, keyed on the state being left and the symbol.
type mealyEmitter[N comparable, S comparable] struct {
	machine string
	output  MealyOutput[N, S]
}

func (e mealyEmitter[N, S]) OnExit(ctx context.Context, old N, symbol S) error {
	err := e.output(ctx, old, symbol)
	if err != nil {
		return err
	}

	outputsEmittedTotal.WithLabelValues(e.machine, outputKindMealy).Inc()

	return nil
}

func (mealyEmitter[N, S]) OnEnter(context.Context, N, S) error { return nil }

// NewMoore creates an automaton with Moore-style output: the callback is
// invoked each time a state is entered, including once at construction with
// the initial state, before any Process call. The construction emission runs
// with a background context; if the callback fails, construction fails.
func NewMoore[N comparable, S comparable](
	cfg Config[N, S],
	output MooreOutput[N],
	opts ...Option,
) (*Automaton[N, S], error) {
	emitter := mooreEmitter[N, S]{
		machine: sanitizeMachine(cfg.Name),
		output:  output,
	}

	machine, err := NewWithEmitter(cfg, emitter, opts...)
	if err != nil {
		return nil, err
	}

	// Initial state entry with no triggering symbol.
	var zero S

	err = machine.emitter.OnEnter(context.Background(), machine.current.name, zero)
	if err != nil {
		return nil, err
	}

	return machine, nil
}

// NewMealy creates an automaton with Mealy-style output: the callback is
// invoked once per Process call with the pre-transition state and the input
// symbol, before the cursor moves. Nothing is emitted at construction unless
// WithConstructionEmission is set, in which case the callback runs once with
// the initial state and the zero value of the symbol type.
func NewMealy[N comparable, S comparable](
	cfg Config[N, S],
	output MealyOutput[N, S],
	opts ...Option,
) (*Automaton[N, S], error) {
	emitter := mealyEmitter[N, S]{
		machine: sanitizeMachine(cfg.Name),
		output:  output,
	}

	machine, err := NewWithEmitter(cfg, emitter, opts...)
	if err != nil {
		return nil, err
	}

	if applyOptions(opts).constructionEmission {
		var zero S

		err = machine.emitter.OnExit(context.Background(), machine.current.name, zero)
		if err != nil {
			return nil, err
		}
	}

	return machine, nil
}
