package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a span for the named piece of work under the span carried by ctx, if any.
type NewSpan func(ctx context.Context, what string) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, what string) (context.Context, Span) {
		parent := SpanOf(ctx)

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		var args []any
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.DebugContext(ctx, "begin "+what, args...)

		return ctx, span
	}
}
