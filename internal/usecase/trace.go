package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const matchIDKey = attribute.Key("club.match_id")

var (
	tracer   = otel.Tracer("github.com/riskibarqy/club-stats/internal/usecase")
	noopSpan = trace.SpanFromContext(context.Background())
)

// startUsecaseSpan returns a no-op span when ctx carries no active trace.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if name == "" || !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, noopSpan
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}
