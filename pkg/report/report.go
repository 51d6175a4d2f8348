// Package report holds the top-n unigram report and its text, JSON and YAML
// renderings.
package report

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dfr-tools/dfrgram/pkg/corpus"
	"github.com/dfr-tools/dfrgram/pkg/observability"
	"github.com/dfr-tools/dfrgram/pkg/unigram"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatPlot = "plot"
)

// ErrUnknownFormat is returned by ParseFormat for an unsupported name.
var ErrUnknownFormat = errors.New("unknown output format")

// Report is the outcome of one top-n run.
type Report struct {
	Title   string                     `json:"title"            yaml:"title"`
	Journal string                     `json:"journal"          yaml:"journal"`
	Type    string                     `json:"type"             yaml:"type"`
	Span    corpus.YearSpan            `json:"span"             yaml:"span"`
	N       int                        `json:"n"                yaml:"n"`
	Entries unigram.Table              `json:"entries"          yaml:"entries"`
	Stages  []observability.StageStats `json:"stages,omitempty" yaml:"stages,omitempty"`
}

// New builds the report of the n most frequent words of t, listed from the
// most to the least frequent.
func New(t unigram.Table, n int, journal, atype string, span corpus.YearSpan, stages []observability.StageStats) Report {
	entries := t.Top(n)
	slices.Reverse(entries)

	return Report{
		Title:   corpus.ChartTitle(n, journal, atype, span),
		Journal: journal,
		Type:    atype,
		Span:    span,
		N:       n,
		Entries: entries,
		Stages:  stages,
	}
}

// ParseFormat validates an output format name.
func ParseFormat(name string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(name))

	switch format {
	case FormatText, FormatJSON, FormatYAML, FormatPlot:
		return format, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}
