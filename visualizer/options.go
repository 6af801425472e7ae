package visualizer

// Options configures the visualization output.
type Options struct {
	// ShowSymbols labels each edge with the input symbol that drives it
	ShowSymbols bool

	// Direction controls diagram flow: "TD" (top-down) or "LR" (left-right)
	Direction string

	// HighlightPath highlights a specific state path through the diagram
	HighlightPath []string
}

// DefaultOptions returns sensible defaults for visualization.
func DefaultOptions() Options {
	return Options{
		ShowSymbols: true,
		Direction:   "TD",
	}
}

// WithShowSymbols enables/disables edge symbol labels.
func (o Options) WithShowSymbols(show bool) Options {
	o.ShowSymbols = show

	return o
}

// WithDirection sets the diagram direction.
func (o Options) WithDirection(direction string) Options {
	o.Direction = direction

	return o
}

// WithHighlightPath sets states to highlight.
func (o Options) WithHighlightPath(path []string) Options {
	o.HighlightPath = path

	return o
}
