package automaton

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Automaton is a deterministic finite-state automaton over state names of
// type N and input symbols of type S. The state set, alphabet, and
// transition table are fixed at construction; only the cursor moves
// afterwards, one Process call at a time.
//
// An Automaton is not safe for concurrent use. Callers driving one instance
// from multiple goroutines must provide their own locking.
type Automaton[N comparable, S comparable] struct {
	name     string
	id       string
	states   map[N]*state[N, S]
	alphabet map[S]struct{}
	current  *state[N, S]
	emitter  Emitter[N, S]
	logger   Logger
}

// New creates an automaton with no output behavior.
func New[N comparable, S comparable](cfg Config[N, S], opts ...Option) (*Automaton[N, S], error) {
	return NewWithEmitter(cfg, nopEmitter[N, S]{}, opts...)
}

// NewWithEmitter creates an automaton with a caller-supplied emission
// strategy. Most callers want New, NewMoore, or NewMealy instead.
func NewWithEmitter[N comparable, S comparable](
	cfg Config[N, S],
	emitter Emitter[N, S],
	opts ...Option,
) (*Automaton[N, S], error) {
	settings := applyOptions(opts)

	err := cfg.Validate(settings.strict)
	if err != nil {
		return nil, fmt.Errorf("invalid automaton config: %w", err)
	}

	machine := &Automaton[N, S]{
		name:     cfg.Name,
		id:       uuid.New().String(),
		states:   make(map[N]*state[N, S], len(cfg.States)),
		alphabet: make(map[S]struct{}, len(cfg.Alphabet)),
		emitter:  emitter,
		logger:   settings.logger,
	}

	for _, name := range cfg.States {
		machine.states[name] = newState[N, S](name)
	}

	for _, symbol := range cfg.Alphabet {
		machine.alphabet[symbol] = struct{}{}
	}

	// Validate guarantees the initial state is declared.
	machine.current = machine.states[cfg.Initial]

	machine.connectStates(cfg)

	return machine, nil
}

// connectStates compiles the transition table into per-state successor maps.
// The alphabet is the authoritative symbol universe: entries keyed on
// symbols outside it are never consulted.
func (a *Automaton[N, S]) connectStates(cfg Config[N, S]) {
	for _, transition := range cfg.Transitions {
		if _, ok := a.alphabet[transition.On]; !ok {
			continue
		}

		a.states[transition.From].setSuccessor(transition.On, transition.To)
	}
}

// Process advances the automaton by one input symbol. The ordering is a hard
// contract: the exit hook runs with the old state and the symbol, then the
// cursor moves, then the enter hook runs with the new state. A symbol with
// no declared transition from the current state is a self-loop, never an
// error; a symbol outside the alphabet is rejected with ErrUnknownSymbol and
// no state change.
//
// Emission errors propagate unmodified. When the enter hook fails the cursor
// has already moved and stays moved.
//
// The context is passed through to tracing, logging, and the output
// callback; Process itself has no cancellation points.
func (a *Automaton[N, S]) Process(ctx context.Context, symbol S) (err error) {
	ctx, span := startStepSpan(ctx, a.name, a.id)

	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "stepped")
		}

		span.End()
	}()

	machine := sanitizeMachine(a.name)

	if _, ok := a.alphabet[symbol]; !ok {
		symbolsRejectedTotal.WithLabelValues(machine).Inc()

		if a.logger != nil {
			a.logger.SymbolRejected(ctx, machine, symbol)
		}

		err = fmt.Errorf("%w: %v", ErrUnknownSymbol, symbol)

		return err
	}

	old := a.current.name

	err = a.emitter.OnExit(ctx, old, symbol)
	if err != nil {
		stepsTotal.WithLabelValues(machine, outcomeError).Inc()

		return err
	}

	next, declared := a.current.next(symbol)
	a.current = a.states[next]

	span.SetAttributes(
		attribute.String("from", fmt.Sprint(old)),
		attribute.String("to", fmt.Sprint(next)),
		attribute.String("symbol", fmt.Sprint(symbol)),
		attribute.Bool("self_loop", !declared),
	)

	if !declared {
		selfLoopsTotal.WithLabelValues(machine).Inc()
	}

	err = a.emitter.OnEnter(ctx, next, symbol)
	if err != nil {
		stepsTotal.WithLabelValues(machine, outcomeError).Inc()

		return err
	}

	stepsTotal.WithLabelValues(machine, outcomeSuccess).Inc()

	if a.logger != nil {
		a.logger.TransitionExecuted(ctx, machine, old, next, symbol)
	}

	return nil
}

// CurrentState returns the name of the state the cursor is in.
func (a *Automaton[N, S]) CurrentState() N {
	return a.current.name
}

// ForceState jumps the cursor directly to the named state. This is an
// administrative override, not a simulated transition: the transition table
// is not consulted and no output hook runs.
func (a *Automaton[N, S]) ForceState(name N) error {
	target, ok := a.states[name]
	if !ok {
		return fmt.Errorf("%w: %v", ErrStateNotFound, name)
	}

	a.current = target

	machine := sanitizeMachine(a.name)
	forcedJumpsTotal.WithLabelValues(machine).Inc()

	if a.logger != nil {
		a.logger.StateForced(context.Background(), machine, name)
	}

	return nil
}

// SetLogger sets the logger for stepping events. A nil logger disables
// logging.
func (a *Automaton[N, S]) SetLogger(logger Logger) {
	a.logger = logger
}

// States returns the declared state names. The order is not guaranteed.
func (a *Automaton[N, S]) States() []N {
	names := make([]N, 0, len(a.states))
	for name := range a.states {
		names = append(names, name)
	}

	return names
}

// Alphabet returns the declared input symbols. The order is not guaranteed.
func (a *Automaton[N, S]) Alphabet() []S {
	symbols := make([]S, 0, len(a.alphabet))
	for symbol := range a.alphabet {
		symbols = append(symbols, symbol)
	}

	return symbols
}

// String implements fmt.Stringer.
func (a *Automaton[N, S]) String() string {
	return fmt.Sprintf("Automaton(machine=%s, states=%d, symbols=%d)",
		sanitizeMachine(a.name), len(a.states), len(a.alphabet))
}
