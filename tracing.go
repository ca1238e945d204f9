package sqlcraft

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var defaultInstrumentationName = "sqlcraft"

// TracingMiddlewareBuilder builds a middleware opening one span per executed
// statement.
type TracingMiddlewareBuilder struct {
	Tracer trace.Tracer
}

func (t *TracingMiddlewareBuilder) Build() Middleware {
	if t.Tracer == nil {
		t.Tracer = otel.GetTracerProvider().Tracer(defaultInstrumentationName)
	}

	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, sc *StatementContext) (*StatementResult, error) {
			ctx, span := t.Tracer.Start(ctx, sc.Verb)
			defer span.End()

			span.SetAttributes(attribute.String("db.system", sc.Dialect))
			span.SetAttributes(attribute.String("db.statement", sc.SQL))
			span.SetAttributes(attribute.String("db.sql.table", sc.Table))
			span.SetAttributes(attribute.String("statement.id", sc.ID.String()))

			res, err := next.HandleStatement(ctx, sc)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			return res, err
		})
	}
}
