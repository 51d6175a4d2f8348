package normalize

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// WordListChange is one added or removed word of a word list diff.
type WordListChange struct {
	Word  string
	Added bool
}

// String formats the change as "+word" or "-word".
func (c WordListChange) String() string {
	if c.Added {
		return "+" + c.Word
	}

	return "-" + c.Word
}

// DiffWordLists compares two word lists line by line and returns the words
// removed from old and added in updated, in list order.
func DiffWordLists(old, updated []string) []WordListChange {
	dmp := diffmatchpatch.New()
	src, dst, lines := dmp.DiffLinesToRunes(joinLines(old), joinLines(updated))
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(src, dst, false), lines)

	var changes []WordListChange

	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			continue
		}

		for _, word := range strings.Split(d.Text, "\n") {
			if word == "" {
				continue
			}

			changes = append(changes, WordListChange{Word: word, Added: d.Type == diffmatchpatch.DiffInsert})
		}
	}

	return changes
}

func joinLines(words []string) string {
	if len(words) == 0 {
		return ""
	}

	return strings.Join(words, "\n") + "\n"
}
