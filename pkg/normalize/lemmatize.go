package normalize

import "github.com/dfr-tools/dfrgram/pkg/unigram"

// Lemmatize maps every word through lem and sums the counts of words that
// share a lemma. The result is sorted by descending count.
func Lemmatize(t unigram.Table, lem Lemmatizer) unigram.Table {
	return unigram.GroupSum(t, lem.Lemma)
}

// DropCounts keeps the rows whose count is at least threshold.
func DropCounts(t unigram.Table, threshold int) unigram.Table {
	return t.Filter(func(e unigram.Entry) bool {
		return e.Count >= threshold
	})
}
