package metadata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrCSVHeader is returned when an articles CSV lacks a required column.
var ErrCSVHeader = errors.New("articles csv is missing a column")

// ArticleColumns is the header of the articles table.
var ArticleColumns = []string{"id", "type", "title", "auth1", "year", "lang"}

// CitationColumns is the header of the citations table.
var CitationColumns = []string{
	"id", "title", "article_author", "citation_author",
	"citation_source", "citation_year", "citation_general",
}

// WriteArticlesCSV writes articles with an ArticleColumns header.
func WriteArticlesCSV(w io.Writer, articles []Article) error {
	rows := make([][]string, 0, len(articles))

	for _, a := range articles {
		rows = append(rows, []string{a.ID, a.Type, a.Title, a.Author, strconv.Itoa(a.Year), a.Lang})
	}

	return writeCSV(w, ArticleColumns, rows)
}

// WriteCitationsCSV writes citations with a CitationColumns header.
func WriteCitationsCSV(w io.Writer, citations []Citation) error {
	rows := make([][]string, 0, len(citations))

	for _, c := range citations {
		rows = append(rows, []string{
			c.ArticleID, c.Title, c.ArticleAuthor, c.CitationAuthor,
			c.CitationSource, c.CitationYear, c.CitationGeneral,
		})
	}

	return writeCSV(w, CitationColumns, rows)
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)

	err := cw.Write(header)
	if err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	err = cw.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("write csv rows: %w", err)
	}

	return nil
}

// ReadArticlesCSV reads an articles table. Columns are located by header
// name, so extra columns and any column order are accepted.
func ReadArticlesCSV(r io.Reader) ([]Article, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read articles header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	for _, name := range ArticleColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrCSVHeader, name)
		}
	}

	var articles []Article

	for line := 2; ; line++ {
		rec, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return nil, fmt.Errorf("read articles row %d: %w", line, readErr)
		}

		get := func(name string) string {
			if idx := cols[name]; idx < len(rec) {
				return rec[idx]
			}

			return ""
		}

		year, convErr := strconv.Atoi(strings.TrimSpace(get("year")))
		if convErr != nil {
			return nil, fmt.Errorf("articles row %d: %w: %q", line, ErrInvalidYear, get("year"))
		}

		articles = append(articles, Article{
			ID:     get("id"),
			Type:   get("type"),
			Title:  get("title"),
			Author: get("auth1"),
			Year:   year,
			Lang:   get("lang"),
		})
	}

	return articles, nil
}
