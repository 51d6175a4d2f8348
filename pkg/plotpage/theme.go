package plotpage

import (
	"errors"
	"fmt"
	"strings"
)

// Theme represents a color theme for charts.
type Theme string

const (
	// ThemeLight is the light color theme.
	ThemeLight Theme = "light"
	// ThemeDark is the dark color theme.
	ThemeDark Theme = "dark"
)

// ErrUnknownTheme is returned by ParseTheme for an unsupported name.
var ErrUnknownTheme = errors.New("unknown theme")

// ThemeConfig holds the colors used by chart options.
type ThemeConfig struct {
	ChartBackground string
	ChartGrid       string
	ChartAxis       string
	ChartText       string
	ChartTextMuted  string

	// Bar is the fill color of the single count series.
	Bar string

	// EChartsTheme is the go-echarts theme name.
	EChartsTheme string
}

// ParseTheme maps "light", "white" or "" to ThemeLight and "dark" to ThemeDark.
func ParseTheme(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(ThemeLight), "white":
		return ThemeLight, nil
	case string(ThemeDark):
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
}

// GetThemeConfig returns the configuration for a given theme.
func GetThemeConfig(theme Theme) ThemeConfig {
	if theme == ThemeDark {
		return darkTheme
	}

	return lightTheme
}

var lightTheme = ThemeConfig{
	ChartBackground: "#ffffff",
	ChartGrid:       "#e7e5e4", // stone-200.
	ChartAxis:       "#a8a29e", // stone-400.
	ChartText:       "#1c1917", // stone-900.
	ChartTextMuted:  "#44403c", // stone-700.
	Bar:             "black",
	EChartsTheme:    "white",
}

var darkTheme = ThemeConfig{
	ChartBackground: "#1c1917", // stone-900.
	ChartGrid:       "#44403c", // stone-700.
	ChartAxis:       "#78716c", // stone-500.
	ChartText:       "#fafaf9", // stone-50.
	ChartTextMuted:  "#d6d3d1", // stone-300.
	Bar:             "#d6d3d1", // stone-300.
	EChartsTheme:    "dark",
}
