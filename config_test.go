package automaton

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReportsAllProblems(t *testing.T) {
	t.Parallel()

	cfg := lightConfig()
	cfg.Initial = "Z"
	cfg.States = append(cfg.States, "A")
	cfg.Transitions = append(cfg.Transitions, Transition[string, int]{From: "A", On: 1, To: "Q"})

	err := cfg.Validate(false)
	require.Error(t, err)

	// One pass surfaces every configuration problem, not just the first.
	assert.ErrorIs(t, err, ErrUnknownInitialState)
	assert.ErrorIs(t, err, ErrDuplicateState)
	assert.ErrorIs(t, err, ErrUnknownSuccessor)
}

func TestValidateAcceptsEmptyAlphabet(t *testing.T) {
	t.Parallel()

	cfg := Config[string, int]{
		Name:    "stuck",
		States:  []string{"only"},
		Initial: "only",
	}

	require.NoError(t, cfg.Validate(false))

	machine, err := New(cfg)
	require.NoError(t, err)

	// Every symbol is outside an empty alphabet.
	err = machine.Process(context.Background(), 0)
	assert.ErrorIs(t, err, ErrUnknownSymbol)
	assert.Equal(t, "only", machine.CurrentState())
}

func TestEncodeDefinition(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	err := lightConfig().EncodeDefinition(&buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "name: light")
	assert.Contains(t, out, "initial: A")
	assert.Contains(t, out, "states:")
	assert.Contains(t, out, "alphabet:")
	assert.Contains(t, out, "from: A")
	assert.Contains(t, out, "to: B")
}
