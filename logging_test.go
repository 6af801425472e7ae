package automaton

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoggerTransitionExecuted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := NewDefaultLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	machine, err := New(lightConfig(), WithLogger(logger))
	require.NoError(t, err)

	require.NoError(t, machine.Process(context.Background(), 0))

	out := buf.String()
	assert.Contains(t, out, "Transition executed")
	assert.Contains(t, out, "machine=light")
	assert.Contains(t, out, "from=A")
	assert.Contains(t, out, "to=B")
	assert.Contains(t, out, "symbol=0")
}

func TestDefaultLoggerSymbolRejected(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := NewDefaultLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	machine, err := New(lightConfig(), WithLogger(logger))
	require.NoError(t, err)

	err = machine.Process(context.Background(), 5)
	require.ErrorIs(t, err, ErrUnknownSymbol)

	out := buf.String()
	assert.Contains(t, out, "Symbol rejected")
	assert.Contains(t, out, "symbol=5")
}

func TestDefaultLoggerStateForced(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := NewDefaultLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	machine, err := New(lightConfig(), WithLogger(logger))
	require.NoError(t, err)

	require.NoError(t, machine.ForceState("B"))

	out := buf.String()
	assert.Contains(t, out, "State forced")
	assert.Contains(t, out, "state=B")
}

func TestNilLoggerDisablesLogging(t *testing.T) {
	t.Parallel()

	machine, err := New(lightConfig())
	require.NoError(t, err)

	// No logger configured: stepping must not panic.
	require.NoError(t, machine.Process(context.Background(), 0))

	machine.SetLogger(nil)
	require.NoError(t, machine.Process(context.Background(), 1))
}

func TestLoggingThroughTestLogger(t *testing.T) {
	t.Parallel()

	// Route automaton logs through the test output.
	machine, err := New(lightConfig(), WithLogger(NewDefaultLogger(slogt.New(t))))
	require.NoError(t, err)

	for _, symbol := range []int{0, 1, 1} {
		require.NoError(t, machine.Process(context.Background(), symbol))
	}

	assert.Equal(t, "A", machine.CurrentState())
}
