package normalize_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfr-tools/dfrgram/pkg/normalize"
)

func TestBuildCustomStopwords(t *testing.T) {
	t.Parallel()

	rows := []normalize.ReviewRow{
		{Word: "review", Count: 90, Label: ""},
		{Word: "society", Count: 80, Label: "x"},
		{Word: "press", Count: 70, Label: "r"},
		{Word: "vol", Count: 60, Label: "s"},
		{Word: "culture", Count: 50, Label: "unchecked"},
		{Word: "pp", Count: 40, Label: " "},
	}

	stopwords, updated := normalize.BuildCustomStopwords(rows)

	assert.Equal(t, []string{"review", "society", "vol", "pp"}, stopwords)
	require.Len(t, updated, len(rows))
	assert.Equal(t, normalize.LabelReviewed, updated[1].Label)
	assert.Equal(t, "x", rows[1].Label, "input must not be modified")
	assert.Equal(t, "unchecked", updated[4].Label)
}

func TestBuildCustomStopwords_MarkedRowsJoinList(t *testing.T) {
	t.Parallel()

	stopwords, updated := normalize.BuildCustomStopwords([]normalize.ReviewRow{
		{Word: "mr", Label: normalize.LabelMarked},
		{Word: "the", Label: ""},
	})

	assert.Equal(t, []string{"mr", "the"}, stopwords)
	assert.Equal(t, normalize.LabelReviewed, updated[0].Label)
	assert.Empty(t, updated[1].Label)
}

func TestReadReviewCSV(t *testing.T) {
	t.Parallel()

	t.Run("any column order", func(t *testing.T) {
		t.Parallel()

		input := "stopword,word,count\nx,society,12\n,review,9\n"

		rows, err := normalize.ReadReviewCSV(strings.NewReader(input))
		require.NoError(t, err)

		assert.Equal(t, []normalize.ReviewRow{
			{Word: "society", Count: 12, Label: "x"},
			{Word: "review", Count: 9, Label: ""},
		}, rows)
	})

	t.Run("count optional", func(t *testing.T) {
		t.Parallel()

		rows, err := normalize.ReadReviewCSV(strings.NewReader("word,stopword\nvol,\n"))
		require.NoError(t, err)

		assert.Equal(t, []normalize.ReviewRow{{Word: "vol"}}, rows)
	})

	t.Run("short row", func(t *testing.T) {
		t.Parallel()

		rows, err := normalize.ReadReviewCSV(strings.NewReader("word,count,stopword\npp,3\n"))
		require.NoError(t, err)

		assert.Equal(t, []normalize.ReviewRow{{Word: "pp", Count: 3}}, rows)
	})

	t.Run("missing column", func(t *testing.T) {
		t.Parallel()

		_, err := normalize.ReadReviewCSV(strings.NewReader("word,count\npp,3\n"))
		require.ErrorIs(t, err, normalize.ErrReviewHeader)
	})

	t.Run("bad count", func(t *testing.T) {
		t.Parallel()

		_, err := normalize.ReadReviewCSV(strings.NewReader("word,count,stopword\npp,many,\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 2")
	})
}

func TestWriteReviewCSV_RoundTrip(t *testing.T) {
	t.Parallel()

	rows := []normalize.ReviewRow{
		{Word: "society", Count: 12, Label: "r"},
		{Word: "review, annual", Count: 9, Label: ""},
	}

	var buf bytes.Buffer
	require.NoError(t, normalize.WriteReviewCSV(&buf, rows))

	assert.True(t, strings.HasPrefix(buf.String(), "word,count,stopword\n"))

	back, err := normalize.ReadReviewCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, rows, back)
}

func TestWriteWordList(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, normalize.WriteWordList(&buf, []string{"review", "vol"}))

	assert.Equal(t, "review\nvol\n", buf.String())
}
