// Package textutil provides rune-level text utilities: Unicode cleanup of
// extracted XML text and numeral classification of unigram tokens.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Clean NFC-normalizes text, collapses internal whitespace runs to a single
// space and trims both ends. Control characters are dropped.
func Clean(text string) string {
	normed := norm.NFC.String(text)

	normed = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}

		if unicode.IsControl(r) {
			return -1
		}

		return r
	}, normed)

	return strings.Join(strings.Fields(normed), " ")
}

// HasNumeral reports whether s contains at least one numeric rune.
// Numeric covers every Unicode number category, not only ASCII digits.
func HasNumeral(s string) bool {
	return strings.IndexFunc(s, unicode.IsNumber) >= 0
}

// IsNumeric reports whether s is non-empty and made only of numeric runes.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !unicode.IsNumber(r) {
			return false
		}
	}

	return true
}

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return len([]rune(s))
}
