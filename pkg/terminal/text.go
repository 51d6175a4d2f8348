package terminal

import (
	"strings"
	"unicode/utf8"
)

// Ellipsis is appended to truncated strings.
const Ellipsis = "..."

// EllipsisLen is the length of the ellipsis string.
const EllipsisLen = 3

// RuneWidth returns the number of runes in s.
func RuneWidth(s string) int {
	return utf8.RuneCountInString(s)
}

// TruncateWithEllipsis truncates s to maxWidth runes, adding "..." if truncated.
// If maxWidth is less than EllipsisLen, returns truncated ellipsis.
func TruncateWithEllipsis(s string, maxWidth int) string {
	if RuneWidth(s) <= maxWidth {
		return s
	}

	if maxWidth <= EllipsisLen {
		return strings.Repeat(".", max(maxWidth, 0))
	}

	runes := []rune(s)

	return string(runes[:maxWidth-EllipsisLen]) + Ellipsis
}
