package logs

import "context"

// Span identifies one unit of work, usually the compilation of one source.
type Span string

type spanKey struct{}

var SpanKey spanKey

type sourceKey struct{}

var SourceKey sourceKey

func WithSource(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, SourceKey, name)
}

func SpanOf(ctx context.Context) Span {
	if v := ctx.Value(SpanKey); v != nil {
		return v.(Span)
	}
	return ""
}
