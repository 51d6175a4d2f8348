package unigram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dfr-tools/dfrgram/pkg/unigram"
)

func TestAggregate_SumsAndSorts(t *testing.T) {
	t.Parallel()

	a := unigram.Table{{Word: "society", Count: 5}, {Word: "class", Count: 2}}
	b := unigram.Table{{Word: "class", Count: 4}, {Word: "race", Count: 1}}

	got := unigram.Aggregate(a, b)

	assert.Equal(t, unigram.Table{
		{Word: "class", Count: 6},
		{Word: "society", Count: 5},
		{Word: "race", Count: 1},
	}, got)
}

func TestAggregate_TiesOrderedByWord(t *testing.T) {
	t.Parallel()

	got := unigram.Aggregate(unigram.Table{{Word: "zeta", Count: 3}, {Word: "alpha", Count: 3}})

	assert.Equal(t, []string{"alpha", "zeta"}, got.Words())
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, unigram.Aggregate())
}

func TestGroupSum_WithKey(t *testing.T) {
	t.Parallel()

	table := unigram.Table{{Word: "cats", Count: 2}, {Word: "cat", Count: 3}, {Word: "dog", Count: 4}}
	trim := func(w string) string {
		if w == "cats" {
			return "cat"
		}

		return w
	}

	got := unigram.GroupSum(table, trim)

	assert.Equal(t, unigram.Table{{Word: "cat", Count: 5}, {Word: "dog", Count: 4}}, got)
}

func TestTable_TopAscending(t *testing.T) {
	t.Parallel()

	table := unigram.Table{
		{Word: "a", Count: 10},
		{Word: "b", Count: 30},
		{Word: "c", Count: 20},
		{Word: "d", Count: 5},
	}

	got := table.Top(3)

	assert.Equal(t, []string{"a", "c", "b"}, got.Words())
	assert.Equal(t, []int{10, 20, 30}, got.Counts())
	assert.Equal(t, "a", table[0].Word, "input must not be reordered")
}

func TestTable_TopAllWhenOutOfRange(t *testing.T) {
	t.Parallel()

	table := unigram.Table{{Word: "a", Count: 1}, {Word: "b", Count: 2}}

	assert.Len(t, table.Top(0), 2)
	assert.Len(t, table.Top(10), 2)
}

func TestTable_FilterAndTotal(t *testing.T) {
	t.Parallel()

	table := unigram.Table{{Word: "a", Count: 1}, {Word: "b", Count: 2}, {Word: "c", Count: 3}}

	kept := table.Filter(func(e unigram.Entry) bool { return e.Count != 2 })

	assert.Equal(t, []string{"a", "c"}, kept.Words())
	assert.Equal(t, 6, table.Total())
	assert.Equal(t, 3, table.Len())
}
