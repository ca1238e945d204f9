package sqlcraft

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// LoggingMiddleware logs every executed statement through the given logger:
// statement id, verb, table, argument count, duration and outcome.
func LoggingMiddleware(logger zerolog.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, sc *StatementContext) (*StatementResult, error) {
			start := time.Now()
			res, err := next.HandleStatement(ctx, sc)
			evt := logger.Debug()
			if err != nil {
				evt = logger.Error().Err(err)
			}
			evt.
				Str("statement_id", sc.ID.String()).
				Str("verb", sc.Verb).
				Str("table", sc.Table).
				Str("sql", sc.SQL).
				Int("args", len(sc.Args)).
				Dur("duration", time.Since(start)).
				Msg("statement executed")
			return res, err
		})
	}
}
