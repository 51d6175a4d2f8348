package normalize

import (
	"regexp"

	"github.com/dfr-tools/dfrgram/pkg/textutil"
	"github.com/dfr-tools/dfrgram/pkg/unigram"
)

// yearLen is the rune length of a bare year token.
const yearLen = 4

// yearPrefix matches tokens that start like a year in 1000-2999. Any Unicode
// decimal digit counts after the leading 1 or 2.
var yearPrefix = regexp.MustCompile(`^[12]\p{Nd}{3}`)

// IsYear reports whether word likely represents a year: it starts with 1 or 2
// followed by three decimal digits. Only the prefix is checked, so "1980s"
// and "12345" count.
func IsYear(word string) bool {
	return yearPrefix.MatchString(word)
}

// RemoveNumerals drops numeral rows. With removeMixed, every word containing
// a numeric rune is dropped unless it is year-like. Without it, only fully
// numeric words are dropped, and four-rune numbers are kept as years.
func RemoveNumerals(t unigram.Table, removeMixed bool) unigram.Table {
	return t.Filter(func(e unigram.Entry) bool {
		if removeMixed {
			return !textutil.HasNumeral(e.Word) || IsYear(e.Word)
		}

		return !textutil.IsNumeric(e.Word) || textutil.RuneLen(e.Word) == yearLen
	})
}
