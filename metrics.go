package sqlcraft

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsMiddlewareBuilder builds a middleware observing statement execution
// durations in a prometheus summary, labeled by verb, table and status.
type MetricsMiddlewareBuilder struct {
	Namespace string
	Subsystem string
	Name      string
	Help      string
}

func (m *MetricsMiddlewareBuilder) Build() Middleware {
	vec := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: m.Namespace,
		Subsystem: m.Subsystem,
		Name:      m.Name,
		Help:      m.Help,
		Objectives: map[float64]float64{
			0.5:   0.05,
			0.9:   0.01,
			0.99:  0.001,
			0.999: 0.0001,
		},
	}, []string{"verb", "table", "status"})
	prometheus.MustRegister(vec)

	return func(next Handler) Handler {
		return HandlerFunc(func(ctx context.Context, sc *StatementContext) (*StatementResult, error) {
			start := time.Now()
			res, err := next.HandleStatement(ctx, sc)
			status := "ok"
			if err != nil {
				status = "error"
			}
			vec.WithLabelValues(sc.Verb, sc.Table, status).
				Observe(float64(time.Since(start).Microseconds()))
			return res, err
		})
	}
}
