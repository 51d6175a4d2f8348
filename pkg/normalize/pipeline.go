package normalize

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dfr-tools/dfrgram/pkg/observability"
	"github.com/dfr-tools/dfrgram/pkg/unigram"
)

const tracerName = "dfrgram/normalize"

// Names of the stages built by DefaultPipeline.
const (
	StageLemmatize       = "lemmatize"
	StageRemoveNumerals  = "remove-numerals"
	StageRemoveStopwords = "remove-stopwords"
	StageDropCounts      = "drop-counts"
)

// StageFunc transforms a table.
type StageFunc func(ctx context.Context, t unigram.Table) (unigram.Table, error)

// Stage is a named pipeline step.
type Stage struct {
	Name  string
	Apply StageFunc
}

// Options configures DefaultPipeline.
type Options struct {
	// Lemmatizer maps words to lemmas. Nil uses the WordNet noun rules.
	Lemmatizer Lemmatizer

	// RemoveMixed drops words that mix letters and numerals.
	RemoveMixed bool

	// Builtin is the always-applied stopword list. Nil uses NLTK English.
	Builtin StopList

	// Custom is the reviewed stopword list applied when IncludeCustom is set.
	Custom        StopList
	IncludeCustom bool

	// MinCount adds a count threshold stage when positive.
	MinCount int
}

// Pipeline applies its stages in order.
type Pipeline struct {
	Stages []Stage

	// Logger receives per-stage row counts. Nil uses slog.Default().
	Logger *slog.Logger

	// Metrics records per-stage row counts and durations. Nil-safe.
	Metrics *observability.StageMetrics

	// Tracer creates a span per stage. Nil uses the global tracer provider.
	Tracer trace.Tracer
}

// DefaultPipeline builds lemmatize → remove numerals → remove stopwords, plus
// a final count threshold when opts.MinCount is positive.
func DefaultPipeline(opts Options) *Pipeline {
	lem := opts.Lemmatizer
	if lem == nil {
		lem = NewNounLemmatizer()
	}

	builtin := opts.Builtin
	if builtin == nil {
		builtin = NLTKStopwords()
	}

	stages := []Stage{
		{Name: StageLemmatize, Apply: pure(func(t unigram.Table) unigram.Table {
			return Lemmatize(t, lem)
		})},
		{Name: StageRemoveNumerals, Apply: pure(func(t unigram.Table) unigram.Table {
			return RemoveNumerals(t, opts.RemoveMixed)
		})},
		{Name: StageRemoveStopwords, Apply: pure(func(t unigram.Table) unigram.Table {
			return RemoveStopwords(t, builtin, opts.Custom, opts.IncludeCustom)
		})},
	}

	if opts.MinCount > 0 {
		stages = append(stages, Stage{Name: StageDropCounts, Apply: pure(func(t unigram.Table) unigram.Table {
			return DropCounts(t, opts.MinCount)
		})})
	}

	return &Pipeline{Stages: stages}
}

func pure(fn func(unigram.Table) unigram.Table) StageFunc {
	return func(_ context.Context, t unigram.Table) (unigram.Table, error) {
		return fn(t), nil
	}
}

// Run applies every stage to t in order and reports per-stage statistics.
func (p *Pipeline) Run(ctx context.Context, t unigram.Table) (unigram.Table, []observability.StageStats, error) {
	logger := p.logger()

	tr := p.Tracer
	if tr == nil {
		tr = otel.Tracer(tracerName)
	}

	stats := make([]observability.StageStats, 0, len(p.Stages))

	for _, stage := range p.Stages {
		if ctx.Err() != nil {
			return nil, stats, fmt.Errorf("pipeline: %w", ctx.Err())
		}

		stageCtx, span := tr.Start(ctx, "dfrgram.normalize."+stage.Name,
			trace.WithAttributes(attribute.Int("rows.in", len(t))))

		start := time.Now()
		out, err := stage.Apply(stageCtx, t)

		if err != nil {
			span.RecordError(err)
			span.End()

			return nil, stats, fmt.Errorf("stage %s: %w", stage.Name, err)
		}

		st := observability.StageStats{
			Stage:    stage.Name,
			RowsIn:   len(t),
			RowsOut:  len(out),
			Duration: time.Since(start),
		}

		span.SetAttributes(attribute.Int("rows.out", st.RowsOut))
		span.End()

		logger.DebugContext(ctx, "pipeline stage done",
			"stage", st.Stage, "rows_in", st.RowsIn, "rows_out", st.RowsOut, "duration", st.Duration)
		p.Metrics.RecordStage(ctx, st)

		stats = append(stats, st)
		t = out
	}

	return t, stats, nil
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}

	return slog.Default()
}
