package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricRowsIn        = "dfrgram.pipeline.rows.in"
	metricRowsOut       = "dfrgram.pipeline.rows.out"
	metricStageDuration = "dfrgram.pipeline.stage.duration.seconds"

	attrStage = "stage"
)

// stageBucketBoundaries covers sub-millisecond filters up to multi-second
// loads of large unigram directories.
var stageBucketBoundaries = []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30}

// StageStats is the outcome of one pipeline stage.
type StageStats struct {
	Stage    string        `json:"stage"    yaml:"stage"`
	RowsIn   int           `json:"rows_in"  yaml:"rows_in"`
	RowsOut  int           `json:"rows_out" yaml:"rows_out"`
	Duration time.Duration `json:"-"        yaml:"-"`
}

// Dropped returns the number of rows removed by the stage.
func (s StageStats) Dropped() int { return s.RowsIn - s.RowsOut }

// StageMetrics holds OTel instruments for pipeline stages.
type StageMetrics struct {
	rowsIn   metric.Int64Counter
	rowsOut  metric.Int64Counter
	duration metric.Float64Histogram
}

// NewStageMetrics creates pipeline stage instruments from the given meter.
func NewStageMetrics(mt metric.Meter) (*StageMetrics, error) {
	rowsIn, err := mt.Int64Counter(metricRowsIn,
		metric.WithDescription("Rows entering a pipeline stage"),
		metric.WithUnit("{row}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricRowsIn, err)
	}

	rowsOut, err := mt.Int64Counter(metricRowsOut,
		metric.WithDescription("Rows leaving a pipeline stage"),
		metric.WithUnit("{row}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricRowsOut, err)
	}

	duration, err := mt.Float64Histogram(metricStageDuration,
		metric.WithDescription("Pipeline stage duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(stageBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricStageDuration, err)
	}

	return &StageMetrics{rowsIn: rowsIn, rowsOut: rowsOut, duration: duration}, nil
}

// RecordStage records the row counts and duration of one stage.
// Safe to call on a nil receiver (no-op).
func (sm *StageMetrics) RecordStage(ctx context.Context, stats StageStats) {
	if sm == nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String(attrStage, stats.Stage))

	sm.rowsIn.Add(ctx, int64(stats.RowsIn), attrs)
	sm.rowsOut.Add(ctx, int64(stats.RowsOut), attrs)
	sm.duration.Record(ctx, stats.Duration.Seconds(), attrs)
}
