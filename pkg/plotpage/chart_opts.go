package plotpage

import (
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Font sizes of chart text.
const (
	titleFontSize = 16
	labelFontSize = 12
)

// ChartOpts provides themed chart options based on the current theme.
type ChartOpts struct {
	theme ThemeConfig
}

// NewChartOpts creates a new ChartOpts with the given theme.
func NewChartOpts(theme Theme) *ChartOpts {
	return &ChartOpts{theme: GetThemeConfig(theme)}
}

// Init returns initialization options with themed background.
func (c *ChartOpts) Init(pageTitle string, style Style) opts.Initialization {
	return opts.Initialization{
		PageTitle:       pageTitle,
		Width:           style.Width,
		Height:          style.Height,
		BackgroundColor: c.theme.ChartBackground,
		Theme:           c.theme.EChartsTheme,
	}
}

// Title returns title options with themed text colors.
func (c *ChartOpts) Title(title string) opts.Title {
	return opts.Title{
		Title:      title,
		Left:       "center",
		TitleStyle: &opts.TextStyle{Color: c.theme.ChartText, FontSize: titleFontSize},
	}
}

// ValueAxis returns a count axis with its tick labels hidden.
func (c *ChartOpts) ValueAxis(name string) opts.XAxis {
	return opts.XAxis{
		Name:         name,
		Type:         "value",
		NameLocation: "middle",
		AxisLabel:    &opts.AxisLabel{Show: opts.Bool(false)},
		AxisLine:     &opts.AxisLine{LineStyle: &opts.LineStyle{Color: c.theme.ChartAxis}},
		SplitLine: &opts.SplitLine{
			Show:      opts.Bool(true),
			LineStyle: &opts.LineStyle{Color: c.theme.ChartGrid},
		},
	}
}

// CategoryAxis returns a word axis listing labels bottom to top.
func (c *ChartOpts) CategoryAxis(name string, labels []string) opts.YAxis {
	return opts.YAxis{
		Name:      name,
		Type:      "category",
		Data:      labels,
		AxisLabel: &opts.AxisLabel{Interval: "0", FontSize: labelFontSize, Color: c.theme.ChartTextMuted},
		AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: c.theme.ChartAxis}},
	}
}

// Grid returns grid options with room for word labels.
func (c *ChartOpts) Grid() opts.Grid {
	return opts.Grid{
		Top:          "60",
		Bottom:       "40",
		Left:         "5%",
		Right:        "10%",
		ContainLabel: opts.Bool(true),
	}
}

// Tooltip returns tooltip options.
func (c *ChartOpts) Tooltip(trigger string) opts.Tooltip {
	return opts.Tooltip{Show: opts.Bool(true), Trigger: trigger}
}

// ValueLabel returns a label drawn just outside the end of each bar.
func (c *ChartOpts) ValueLabel() opts.Label {
	return opts.Label{
		Show:     opts.Bool(true),
		Position: "right",
		Color:    c.theme.ChartText,
		FontSize: labelFontSize,
	}
}

// BarColor returns the fill color of the count series.
func (c *ChartOpts) BarColor() string {
	return c.theme.Bar
}
