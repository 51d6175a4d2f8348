package metadata

import (
	"regexp"
	"strings"
)

// nameComponent matches a capitalized run: an uppercase ASCII letter and
// everything up to the next one.
var nameComponent = regexp.MustCompile(`[A-Z][^A-Z]*`)

var nameFixes = strings.NewReplacer("- ", "-", "I ", "I")

// FormatName splits merged fore and surnames such as "JaneDoe" into
// "Jane Doe". Names that already carry one capital per word are returned
// unchanged, as are names written in Hebrew.
func FormatName(name string) string {
	if hasHebrew(name) {
		return name
	}

	caps := 0

	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			caps++
		}
	}

	if caps-strings.Count(name, " ") == 1 {
		return name
	}

	comps := nameComponent.FindAllString(name, -1)
	for i, c := range comps {
		comps[i] = strings.TrimSpace(c)
	}

	return nameFixes.Replace(strings.Join(comps, " "))
}

func hasHebrew(s string) bool {
	for _, r := range s {
		if r >= '\u0590' && r <= '\u05ea' {
			return true
		}
	}

	return false
}

// FormatAuthors applies FormatName to the author of every article in place.
func FormatAuthors(articles []Article) {
	for i := range articles {
		articles[i].Author = FormatName(articles[i].Author)
	}
}

// RemoveMisc splits articles into regular rows and rows of type "misc",
// keeping input order in both.
func RemoveMisc(articles []Article) (clean, misc []Article) {
	for _, a := range articles {
		if a.Type == TypeMisc {
			misc = append(misc, a)
		} else {
			clean = append(clean, a)
		}
	}

	return clean, misc
}
