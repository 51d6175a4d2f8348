// Package corpus selects articles by publication years and type, and builds
// their normalized unigram table.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/dfr-tools/dfrgram/pkg/metadata"
	"github.com/dfr-tools/dfrgram/pkg/normalize"
	"github.com/dfr-tools/dfrgram/pkg/observability"
	"github.com/dfr-tools/dfrgram/pkg/unigram"
)

const tracerName = "dfrgram/corpus"

var (
	// ErrNoArticles is returned when no article matches a year span and type.
	ErrNoArticles = errors.New("no articles for given range")
	// ErrInvalidSpan is returned when a span ends before it starts.
	ErrInvalidSpan = errors.New("year span ends before it starts")
)

// YearSpan is an inclusive range of publication years.
type YearSpan struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to"   yaml:"to"`
}

// NewYearSpan returns the span from..to. A zero to selects the single year from.
func NewYearSpan(from, to int) (YearSpan, error) {
	if to == 0 {
		to = from
	}

	if to < from {
		return YearSpan{}, fmt.Errorf("%w: %d-%d", ErrInvalidSpan, from, to)
	}

	return YearSpan{From: from, To: to}, nil
}

// Years lists every year of the span in ascending order.
func (s YearSpan) Years() []int {
	if s.To < s.From {
		return nil
	}

	years := make([]int, 0, s.To-s.From+1)
	for y := s.From; y <= s.To; y++ {
		years = append(years, y)
	}

	return years
}

// Contains reports whether year lies in the span.
func (s YearSpan) Contains(year int) bool {
	return year >= s.From && year <= s.To
}

// String renders "From-To" for multi-year spans and "From" otherwise.
func (s YearSpan) String() string {
	if s.To > s.From {
		return strconv.Itoa(s.From) + "-" + strconv.Itoa(s.To)
	}

	return strconv.Itoa(s.From)
}

// SelectIDs returns the ids of articles of type atype published in span,
// grouped by year in span order and in input order within a year.
func SelectIDs(articles []metadata.Article, span YearSpan, atype string) ([]string, error) {
	byYear := make(map[int][]string)

	for _, a := range articles {
		if a.Type == atype && span.Contains(a.Year) {
			byYear[a.Year] = append(byYear[a.Year], a.ID)
		}
	}

	var ids []string
	for _, y := range span.Years() {
		ids = append(ids, byYear[y]...)
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrNoArticles, atype, span)
	}

	return ids, nil
}

// UnigramsByYears loads the unigram tables of the selected articles from src
// and runs them through p.
func UnigramsByYears(
	ctx context.Context,
	articles []metadata.Article,
	span YearSpan,
	atype string,
	src unigram.Source,
	p *normalize.Pipeline,
) (unigram.Table, []observability.StageStats, error) {
	ctx, sp := otel.Tracer(tracerName).Start(ctx, "dfrgram.corpus.unigrams_by_years",
		trace.WithAttributes(
			attribute.String("corpus.type", atype),
			attribute.String("corpus.span", span.String()),
		))
	defer sp.End()

	ids, err := SelectIDs(articles, span, atype)
	if err != nil {
		return nil, nil, err
	}

	sp.SetAttributes(attribute.Int("corpus.articles", len(ids)))

	raw, err := src.LoadForArticles(ctx, atype, ids)
	if err != nil {
		sp.RecordError(err)

		return nil, nil, err
	}

	return p.Run(ctx, raw)
}

// TypeLabel returns the display label of an article type.
func TypeLabel(atype string) string {
	switch atype {
	case unigram.TypeBookReview:
		return "Book Reviews"
	case unigram.TypeResearchArticle:
		return "Research Articles"
	default:
		return atype
	}
}

// ChartTitle formats the title of a top-n chart.
func ChartTitle(n int, journal, atype string, span YearSpan) string {
	return fmt.Sprintf("Top %d Unigram Counts from %s %s: %s", n, journal, TypeLabel(atype), span)
}
