package chafengine

import (
	"context"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/metric"
)

type runMetrics struct {
	processed metric.Int64Counter
	excluded  metric.Int64Counter
	output    metric.Int64Counter
	errors    metric.Int64Counter
}

func newRunMetrics(mp metric.MeterProvider) (m runMetrics, _ error) {
	meter := mp.Meter("chafengine")

	for _, c := range []struct {
		to   *metric.Int64Counter
		name string
		desc string
	}{
		{&m.processed, "chaf.lines.processed", "Number of lines read"},
		{&m.excluded, "chaf.lines.excluded", "Number of lines dropped by filter"},
		{&m.output, "chaf.lines.output", "Number of lines kept"},
		{&m.errors, "chaf.lines.errors", "Number of lines kept due to filter error"},
	} {
		counter, err := meter.Int64Counter(c.name,
			metric.WithDescription(c.desc),
			metric.WithUnit("{line}"),
		)
		if err != nil {
			return m, errors.Wrapf(err, "create %q", c.name)
		}
		*c.to = counter
	}
	return m, nil
}

// Record adds run counters.
func (m runMetrics) Record(ctx context.Context, s *Stats) {
	m.processed.Add(ctx, int64(s.Total))
	m.excluded.Add(ctx, int64(s.Excluded))
	m.output.Add(ctx, int64(s.Included))
	m.errors.Add(ctx, int64(s.Errors))
}
