package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateNext(t *testing.T) {
	t.Parallel()

	node := newState[string, int]("A")
	node.setSuccessor(0, "B")

	next, declared := node.next(0)
	assert.True(t, declared)
	assert.Equal(t, "B", next)

	// Undeclared symbol: stay put.
	next, declared = node.next(1)
	assert.False(t, declared)
	assert.Equal(t, "A", next)
}

func TestStateSetSuccessorOverwrites(t *testing.T) {
	t.Parallel()

	node := newState[string, int]("A")
	node.setSuccessor(0, "B")
	node.setSuccessor(0, "C")

	next, declared := node.next(0)
	assert.True(t, declared)
	assert.Equal(t, "C", next)
}
