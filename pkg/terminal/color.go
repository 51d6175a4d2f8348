package terminal

import "github.com/fatih/color"

// Color represents a terminal foreground color.
type Color int

// Color constants.
const (
	ColorNone Color = iota
	ColorGreen
	ColorYellow
	ColorRed
	ColorBlue
	ColorGray
)

var colorAttrs = map[Color]color.Attribute{
	ColorGreen:  color.FgGreen,
	ColorYellow: color.FgYellow,
	ColorRed:    color.FgRed,
	ColorBlue:   color.FgBlue,
	ColorGray:   color.FgHiBlack,
}

// Colorize applies color to text. If NoColor is true, returns text unchanged.
func (c Config) Colorize(text string, col Color) string {
	if c.NoColor {
		return text
	}

	attr, ok := colorAttrs[col]
	if !ok {
		return text
	}

	painter := color.New(attr)
	painter.EnableColor()

	return painter.Sprint(text)
}

// ColorForRetention picks a color for the share of rows a pipeline stage kept.
func ColorForRetention(kept float64) Color {
	switch {
	case kept >= retentionHigh:
		return ColorGreen
	case kept >= retentionLow:
		return ColorYellow
	default:
		return ColorRed
	}
}

// Retention thresholds for ColorForRetention.
const (
	retentionHigh = 0.8
	retentionLow  = 0.5
)
