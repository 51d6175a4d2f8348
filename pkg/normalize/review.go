package normalize

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Review labels used in a stopword review sheet.
const (
	LabelReviewed  = "r"
	LabelMarked    = "x"
	LabelUnchecked = "unchecked"
)

// Review sheet column names.
const (
	reviewColWord  = "word"
	reviewColCount = "count"
	reviewColLabel = "stopword"
)

// ErrReviewHeader is returned when a review sheet lacks a required column.
var ErrReviewHeader = errors.New("review sheet is missing a column")

// ReviewRow is one manually labeled row of a stopword review sheet.
type ReviewRow struct {
	Word  string
	Count int
	Label string
}

// BuildCustomStopwords derives the custom stopword list from a review sheet.
//
// Rows labeled "r" were reviewed on an earlier pass and are skipped. Rows
// labeled "x" are newly marked stopwords: they join the list and are
// relabeled "r". Rows labeled "unchecked" await review and are skipped. Every
// other row, including an empty label, is a stopword. The returned rows carry
// the updated labels; the input is not modified.
func BuildCustomStopwords(rows []ReviewRow) ([]string, []ReviewRow) {
	updated := make([]ReviewRow, len(rows))
	copy(updated, rows)

	var stopwords []string

	for i, row := range updated {
		switch strings.TrimSpace(row.Label) {
		case LabelReviewed, LabelUnchecked:
			continue
		case LabelMarked:
			updated[i].Label = LabelReviewed
			stopwords = append(stopwords, row.Word)
		default:
			stopwords = append(stopwords, row.Word)
		}
	}

	return stopwords, updated
}

// ReadReviewCSV reads a review sheet with a "word,count,stopword" header.
// Columns may appear in any order; a missing count is read as zero.
func ReadReviewCSV(r io.Reader) ([]ReviewRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read review header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}

	for _, required := range []string{reviewColWord, reviewColLabel} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrReviewHeader, required)
		}
	}

	var rows []ReviewRow

	for line := 2; ; line++ {
		rec, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return nil, fmt.Errorf("read review row %d: %w", line, readErr)
		}

		row := ReviewRow{
			Word:  field(rec, cols[reviewColWord]),
			Label: field(rec, cols[reviewColLabel]),
		}

		if idx, ok := cols[reviewColCount]; ok {
			if raw := field(rec, idx); raw != "" {
				row.Count, err = strconv.Atoi(raw)
				if err != nil {
					return nil, fmt.Errorf("review row %d: count %q: %w", line, raw, err)
				}
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// WriteReviewCSV writes rows as a "word,count,stopword" review sheet.
func WriteReviewCSV(w io.Writer, rows []ReviewRow) error {
	cw := csv.NewWriter(w)

	err := cw.Write([]string{reviewColWord, reviewColCount, reviewColLabel})
	if err != nil {
		return fmt.Errorf("write review header: %w", err)
	}

	for _, row := range rows {
		err = cw.Write([]string{row.Word, strconv.Itoa(row.Count), row.Label})
		if err != nil {
			return fmt.Errorf("write review row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteWordList writes one word per line.
func WriteWordList(w io.Writer, words []string) error {
	bw := bufio.NewWriter(w)

	for _, word := range words {
		_, err := bw.WriteString(word + "\n")
		if err != nil {
			return fmt.Errorf("write word list: %w", err)
		}
	}

	return bw.Flush()
}

func field(rec []string, idx int) string {
	if idx >= len(rec) {
		return ""
	}

	return strings.TrimSpace(rec[idx])
}
