package automaton

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// startStepSpan creates the span for a single Process step.
// Uses the global tracer; the caller is responsible for calling span.End().
//
//nolint:spancheck // Span lifecycle managed by caller (factory pattern)
func startStepSpan(ctx context.Context, machine, id string) (context.Context, trace.Span) {
	tracer := otel.Tracer("automaton")
	ctx, span := tracer.Start(ctx, "automaton.process")
	span.SetAttributes(
		attribute.String("machine", sanitizeMachine(machine)),
		attribute.String("automaton.id", id),
	)

	return ctx, span
}
