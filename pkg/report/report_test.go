package report_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dfr-tools/dfrgram/pkg/corpus"
	"github.com/dfr-tools/dfrgram/pkg/observability"
	"github.com/dfr-tools/dfrgram/pkg/report"
	"github.com/dfr-tools/dfrgram/pkg/terminal"
	"github.com/dfr-tools/dfrgram/pkg/unigram"
)

func sampleReport(t *testing.T) report.Report {
	t.Helper()

	span, err := corpus.NewYearSpan(1980, 1989)
	require.NoError(t, err)

	table := unigram.Table{
		{Word: "family", Count: 12},
		{Word: "woman", Count: 1500},
		{Word: "society", Count: 40},
		{Word: "class", Count: 40},
	}

	stages := []observability.StageStats{
		{Stage: "lemmatize", RowsIn: 10, RowsOut: 9, Duration: time.Millisecond},
		{Stage: "remove-stopwords", RowsIn: 9, RowsOut: 4},
	}

	return report.New(table, 3, "AJS", unigram.TypeResearchArticle, span, stages)
}

func TestNew(t *testing.T) {
	t.Parallel()

	rep := sampleReport(t)

	assert.Equal(t, []string{"woman", "class", "society"}, rep.Entries.Words())
	assert.Equal(t, 3, rep.N)
	assert.Equal(t, "AJS", rep.Journal)
	assert.Contains(t, rep.Title, "Top 3 Unigram Counts from AJS")
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: report.FormatText},
		{in: "JSON", want: report.FormatJSON},
		{in: " yaml ", want: report.FormatYAML},
		{in: "plot", want: report.FormatPlot},
		{in: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := report.ParseFormat(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, report.ErrUnknownFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteJSON_ValidatesAndReadsBack(t *testing.T) {
	t.Parallel()

	rep := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, rep))
	require.NoError(t, report.Validate(buf.Bytes()))

	got, err := report.ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, rep.Entries, got.Entries)
	assert.Equal(t, rep.Span, got.Span)
	require.Len(t, got.Stages, 2)
	assert.Equal(t, 5, got.Stages[1].Dropped())
}

func TestValidate_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "missing entries",
			doc:  `{"title":"t","journal":"j","type":"book-review","span":{"from":1,"to":2},"n":1}`,
			want: "entries",
		},
		{
			name: "negative count",
			doc: `{"title":"t","journal":"j","type":"book-review","span":{"from":1,"to":2},"n":1,` +
				`"entries":[{"word":"a","count":-1}]}`,
			want: "count",
		},
		{
			name: "malformed",
			doc:  `{"title":`,
			want: "invalid report",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := report.Validate([]byte(tt.doc))
			require.ErrorIs(t, err, report.ErrInvalidReport)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, report.WriteYAML(&buf, sampleReport(t)))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "AJS", decoded["journal"])

	entries, ok := decoded["entries"].([]any)
	require.True(t, ok)
	assert.Len(t, entries, 3)
	assert.Contains(t, buf.String(), "rows_out: 4")
}

func TestWriteText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	cfg := terminal.Config{Width: 80, NoColor: true}
	require.NoError(t, report.WriteText(&buf, sampleReport(t), cfg))

	out := buf.String()
	assert.Contains(t, out, "3 words")
	assert.Contains(t, out, "1,500")
	assert.Contains(t, out, "remove-stopwords")
	assert.Contains(t, out, "-5")
	assert.Less(t, strings.Index(out, "woman"), strings.Index(out, "society"))
}
