package plotpage

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/dfr-tools/dfrgram/pkg/unigram"
)

// Axis names of a top-n chart.
const (
	CountAxisName = "Count"
	WordAxisName  = "Word"
)

// BarBuilder builds a horizontal count chart.
type BarBuilder struct {
	style Style
	co    *ChartOpts
	title string
	words []string
	data  []opts.BarData
}

// NewBarChart creates a bar chart builder for the given style and theme.
func NewBarChart(style Style, theme Theme) *BarBuilder {
	return &BarBuilder{style: style, co: NewChartOpts(theme)}
}

// Title sets the chart title.
func (b *BarBuilder) Title(title string) *BarBuilder {
	b.title = title

	return b
}

// Table sets the bars from t. Rows are drawn bottom to top, so a table from
// unigram.Table.Top puts the largest count at the top.
func (b *BarBuilder) Table(t unigram.Table) *BarBuilder {
	b.words = t.Words()
	b.data = make([]opts.BarData, len(t))

	for i, e := range t {
		b.data[i] = opts.BarData{Name: e.Word, Value: e.Count}
	}

	return b
}

// Build returns the constructed bar chart.
func (b *BarBuilder) Build() *charts.Bar {
	style := b.style
	style.Height = style.heightFor(len(b.words))

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(b.co.Init(b.title, style)),
		charts.WithTitleOpts(b.co.Title(b.title)),
		charts.WithTooltipOpts(b.co.Tooltip("axis")),
		charts.WithGridOpts(b.co.Grid()),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(b.co.ValueAxis(CountAxisName)),
		charts.WithYAxisOpts(b.co.CategoryAxis(WordAxisName, b.words)),
	)

	bar.AddSeries(CountAxisName, b.data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: b.co.BarColor()}),
		charts.WithLabelOpts(b.co.ValueLabel()),
	)

	return bar
}

// TopChart builds the chart of the n most frequent words of t.
func TopChart(t unigram.Table, n int, title string, style Style, theme Theme) *charts.Bar {
	return NewBarChart(style, theme).Title(title).Table(t.Top(n)).Build()
}
