// Package visualizer generates visual diagrams from automaton configurations.
package visualizer

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/amp-labs/automaton"
)

// Visualizer errors.
var (
	// ErrNoStates indicates that the config declares no states.
	ErrNoStates = errors.New("config must declare at least one state")
)

// GenerateMermaid converts a Config to a Mermaid state diagram.
func GenerateMermaid[N comparable, S comparable](config automaton.Config[N, S]) (string, error) {
	return GenerateMermaidWithOptions(config, DefaultOptions())
}

// GenerateMermaidWithOptions generates a Mermaid diagram with custom options.
func GenerateMermaidWithOptions[N comparable, S comparable](
	config automaton.Config[N, S],
	opts Options,
) (string, error) {
	if len(config.States) == 0 {
		return "", ErrNoStates
	}

	var sb strings.Builder

	sb.WriteString("```mermaid\n")
	sb.WriteString(fmt.Sprintf("stateDiagram-%s\n", opts.Direction))

	// Initial state marker
	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", fmt.Sprint(config.Initial)))

	highlightMap := make(map[string]bool)
	for _, state := range opts.HighlightPath {
		highlightMap[state] = true
	}

	for _, state := range config.States {
		name := fmt.Sprint(state)

		if highlightMap[name] {
			sb.WriteString(fmt.Sprintf("    class %s highlighted\n", name))
		}
	}

	for _, transition := range config.Transitions {
		label := ""
		if opts.ShowSymbols {
			label = ": " + fmt.Sprint(transition.On)
		}

		sb.WriteString(fmt.Sprintf("    %s --> %s%s\n",
			fmt.Sprint(transition.From), fmt.Sprint(transition.To), label))
	}

	if len(opts.HighlightPath) > 0 {
		sb.WriteString("\n")
		sb.WriteString("    classDef highlighted fill:#fff3cd,stroke:#856404,stroke-width:3px\n")
	}

	sb.WriteString("```\n")

	return sb.String(), nil
}

// GenerateDOT converts a Config to a Graphviz DOT graph.
func GenerateDOT[N comparable, S comparable](config automaton.Config[N, S]) (string, error) {
	return GenerateDOTWithOptions(config, DefaultOptions())
}

// GenerateDOTWithOptions generates a Graphviz DOT graph with custom options.
func GenerateDOTWithOptions[N comparable, S comparable](
	config automaton.Config[N, S],
	opts Options,
) (string, error) {
	if len(config.States) == 0 {
		return "", ErrNoStates
	}

	highlightMap := make(map[string]bool)
	for _, state := range opts.HighlightPath {
		highlightMap[state] = true
	}

	var sb strings.Builder

	sb.WriteString("digraph Automaton {\n")

	if opts.Direction == "LR" {
		sb.WriteString("  rankdir=LR;\n")
	}

	sb.WriteString("  node [shape=circle];\n")
	sb.WriteString("\n")

	// Invisible start node pointing at the initial state
	sb.WriteString("  start [shape=point];\n")
	sb.WriteString(fmt.Sprintf("  start -> %q;\n", fmt.Sprint(config.Initial)))
	sb.WriteString("\n")

	for _, state := range config.States {
		name := fmt.Sprint(state)

		if highlightMap[name] {
			sb.WriteString(fmt.Sprintf("  %q [style=filled, fillcolor=lightyellow];\n", name))
		} else {
			sb.WriteString(fmt.Sprintf("  %q;\n", name))
		}
	}

	sb.WriteString("\n")

	for _, transition := range config.Transitions {
		if opts.ShowSymbols {
			sb.WriteString(fmt.Sprintf("  %q -> %q [label=%q];\n",
				fmt.Sprint(transition.From), fmt.Sprint(transition.To), fmt.Sprint(transition.On)))
		} else {
			sb.WriteString(fmt.Sprintf("  %q -> %q;\n",
				fmt.Sprint(transition.From), fmt.Sprint(transition.To)))
		}
	}

	sb.WriteString("}\n")

	return sb.String(), nil
}

// WriteDOTFile renders the config as DOT and writes it to path.
func WriteDOTFile[N comparable, S comparable](
	path string,
	config automaton.Config[N, S],
	opts Options,
) error {
	dot, err := GenerateDOTWithOptions(config, opts)
	if err != nil {
		return err
	}

	//nolint:gosec // File path supplied by the caller on purpose
	if err := os.WriteFile(path, []byte(dot), 0o644); err != nil {
		return fmt.Errorf("failed to write DOT file %q: %w", path, err)
	}

	return nil
}
