package plotpage_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfr-tools/dfrgram/pkg/plotpage"
	"github.com/dfr-tools/dfrgram/pkg/unigram"
)

var table = unigram.Table{
	{Word: "society", Count: 120},
	{Word: "woman", Count: 80},
	{Word: "family", Count: 95},
	{Word: "labor", Count: 40},
}

func TestTopChart(t *testing.T) {
	t.Parallel()

	bar := plotpage.TopChart(table, 3, "Top 3", plotpage.DefaultStyle(), plotpage.ThemeLight)
	require.NotNil(t, bar)

	require.Len(t, bar.MultiSeries, 1)
	assert.Equal(t, plotpage.CountAxisName, bar.MultiSeries[0].Name)

	require.NotEmpty(t, bar.YAxisList)
	assert.Equal(t, []string{"woman", "family", "society"}, bar.YAxisList[0].Data)
	assert.Equal(t, plotpage.WordAxisName, bar.YAxisList[0].Name)
	assert.Equal(t, "300px", bar.Initialization.Height)
}

func TestStyle_ExplicitHeight(t *testing.T) {
	t.Parallel()

	style := plotpage.Style{Width: "100%", Height: "700px"}

	bar := plotpage.NewBarChart(style, plotpage.ThemeDark).Table(table).Build()

	assert.Equal(t, "700px", bar.Initialization.Height)
	assert.Equal(t, "100%", bar.Initialization.Width)
}

func TestPage_Render(t *testing.T) {
	t.Parallel()

	bar := plotpage.TopChart(table, 0, "Top Unigram Counts from AJS Research Articles: 1980-1984",
		plotpage.DefaultStyle(), plotpage.ThemeLight)

	var buf bytes.Buffer
	require.NoError(t, plotpage.NewPage("dfrgram").Add(bar).Render(&buf))

	html := buf.String()
	assert.Contains(t, html, "<title>dfrgram</title>")
	assert.Contains(t, html, "Top Unigram Counts from AJS Research Articles: 1980-1984")
	assert.Contains(t, html, "society")
	assert.Contains(t, html, "echarts")
}

func TestParseTheme(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "light", "white", "LIGHT"} {
		theme, err := plotpage.ParseTheme(name)
		require.NoError(t, err)
		assert.Equal(t, plotpage.ThemeLight, theme)
	}

	theme, err := plotpage.ParseTheme("dark")
	require.NoError(t, err)
	assert.Equal(t, plotpage.ThemeDark, theme)

	_, err = plotpage.ParseTheme("neon")
	require.ErrorIs(t, err, plotpage.ErrUnknownTheme)
}
