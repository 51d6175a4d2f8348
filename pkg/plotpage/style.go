// Package plotpage renders unigram count tables as horizontal bar charts on
// a standalone HTML page.
package plotpage

import "strconv"

// Per-bar and fixed heights used when a Style has no explicit height.
const (
	barHeightPx      = 28
	chromeHeightPx   = 120
	minChartHeightPx = 300
)

// Style defines chart dimensions.
type Style struct {
	Width  string
	Height string
}

// DefaultStyle returns the default chart style. The empty height is sized
// to the number of bars at build time.
func DefaultStyle() Style {
	return Style{Width: "900px"}
}

// heightFor returns the explicit height, or one that fits bars rows.
func (s Style) heightFor(bars int) string {
	if s.Height != "" {
		return s.Height
	}

	return strconv.Itoa(max(minChartHeightPx, chromeHeightPx+bars*barHeightPx)) + "px"
}
