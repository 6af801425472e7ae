package automaton

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Output kind labels.
const (
	outputKindMoore = "moore"
	outputKindMealy = "mealy"
)

// Metric outcome constants.
const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

// Metric definitions with appropriate labels.
var (
	// stepsTotal tracks accepted Process calls by machine and outcome.
	stepsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "automaton_steps_total",
		Help: "Total number of processed symbols by machine and outcome (success or error)",
	}, []string{"machine", "outcome"})

	// symbolsRejectedTotal tracks Process calls refused by the alphabet check.
	symbolsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "automaton_symbols_rejected_total",
		Help: "Total number of symbols rejected for not being in the input alphabet",
	}, []string{"machine"})

	// selfLoopsTotal tracks steps that kept the automaton in place because no
	// transition was declared for the (state, symbol) pair.
	selfLoopsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "automaton_self_loops_total",
		Help: "Total number of steps resolved by the self-loop default",
	}, []string{"machine"})

	// outputsEmittedTotal tracks successful output callback invocations.
	outputsEmittedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "automaton_outputs_emitted_total",
		Help: "Total number of output callbacks invoked by machine and kind (moore or mealy)",
	}, []string{"machine", "kind"})

	// forcedJumpsTotal tracks administrative cursor jumps.
	forcedJumpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "automaton_forced_jumps_total",
		Help: "Total number of administrative cursor jumps that bypassed the transition table",
	}, []string{"machine"})
)

// sanitizeMachine keeps the machine label non-empty.
func sanitizeMachine(machine string) string {
	if machine == "" {
		return "unknown"
	}

	return machine
}
