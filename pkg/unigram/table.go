// Package unigram reads per-article unigram frequency tables and merges them
// into a single corpus-level word/count table.
package unigram

import (
	"cmp"
	"slices"
)

// Entry is one row of a unigram table.
type Entry struct {
	Word  string `json:"word"  yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Table is an ordered sequence of word/count rows.
type Table []Entry

// Len returns the number of rows.
func (t Table) Len() int { return len(t) }

// Total returns the sum of all counts.
func (t Table) Total() int {
	total := 0

	for _, e := range t {
		total += e.Count
	}

	return total
}

// Words returns the words in table order.
func (t Table) Words() []string {
	words := make([]string, len(t))

	for i, e := range t {
		words[i] = e.Word
	}

	return words
}

// Counts returns the counts in table order.
func (t Table) Counts() []int {
	counts := make([]int, len(t))

	for i, e := range t {
		counts[i] = e.Count
	}

	return counts
}

// Filter returns the rows for which keep returns true, preserving order.
func (t Table) Filter(keep func(Entry) bool) Table {
	out := make(Table, 0, len(t))

	for _, e := range t {
		if keep(e) {
			out = append(out, e)
		}
	}

	return out
}

// Top returns the n rows with the largest counts, ordered by ascending count
// so that a horizontal bar chart draws the largest bar on top.
// n <= 0 or n >= len(t) selects every row.
func (t Table) Top(n int) Table {
	sorted := slices.Clone(t)
	SortByCount(sorted)

	if n > 0 && n < len(sorted) {
		sorted = sorted[:n]
	}

	slices.Reverse(sorted)

	return sorted
}

// SortByCount sorts t in place by descending count; ties are broken by word.
func SortByCount(t Table) {
	slices.SortStableFunc(t, func(a, b Entry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}

		return cmp.Compare(a.Word, b.Word)
	})
}

// Aggregate concatenates tables, sums the counts of identical words and
// returns the result sorted by descending count.
func Aggregate(tables ...Table) Table {
	return GroupSum(slices.Concat(tables...), nil)
}

// GroupSum maps every word through key (identity when nil), sums counts per
// resulting word and returns the groups sorted by descending count.
func GroupSum(t Table, key func(string) string) Table {
	index := make(map[string]int, len(t))
	out := make(Table, 0, len(t))

	for _, e := range t {
		word := e.Word
		if key != nil {
			word = key(word)
		}

		if i, ok := index[word]; ok {
			out[i].Count += e.Count

			continue
		}

		index[word] = len(out)
		out = append(out, Entry{Word: word, Count: e.Count})
	}

	SortByCount(out)

	return out
}
