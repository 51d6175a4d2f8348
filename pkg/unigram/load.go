package unigram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dfr-tools/dfrgram/pkg/alg/mapx"
	"github.com/dfr-tools/dfrgram/pkg/terminal"
)

// Article type directories understood by the loader.
const (
	TypeResearchArticle = "research-article"
	TypeBookReview      = "book-review"
	TypeBoth            = "both"
)

// idSuffixMarker separates the article id from the "ngram1.txt" suffix.
const idSuffixMarker = "-n"

var (
	// ErrBothUnsupported is returned when unigrams are requested for both article types at once.
	ErrBothUnsupported = errors.New("article type \"both\" is not supported")
	// ErrNoTables is returned when no unigram table matched the requested articles.
	ErrNoTables = errors.New("unable to collect unigram tables")
)

// Source reads per-article unigram tables laid out as <Dir>/<article-type>/<id>-ngram1.txt.
type Source struct {
	Dir string

	// Logger receives progress and summary messages. Nil uses slog.Default().
	Logger *slog.Logger

	// Progress receives a progress bar while tables are read. Nil disables it.
	Progress io.Writer
}

// ArticleIDFromFile extracts the article id from a unigram file name:
// everything before the last "-n". The second result is false when the
// name carries no such marker.
func ArticleIDFromFile(name string) (string, bool) {
	base := filepath.Base(name)

	idx := strings.LastIndex(base, idSuffixMarker)
	if idx <= 0 {
		return "", false
	}

	return base[:idx], true
}

// LoadForArticles reads the tables of articles of type atype whose id is in
// ids and aggregates them. A nil ids slice selects every table in the directory.
func (s Source) LoadForArticles(ctx context.Context, atype string, ids []string) (Table, error) {
	if atype == TypeBoth {
		return nil, ErrBothUnsupported
	}

	logger := s.logger()
	dir := filepath.Join(s.Dir, atype)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read unigram dir %s: %w", dir, err)
	}

	var wanted mapx.Set[string]
	if ids != nil {
		wanted = mapx.NewSet(ids...)
	}

	bar := terminal.NewProgress(len(entries), "Reading unigram tables", s.Progress)

	var tables []Table

	for _, entry := range entries {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("load unigram tables: %w", ctx.Err())
		}

		_ = bar.Add(1)

		if entry.IsDir() {
			continue
		}

		id, ok := ArticleIDFromFile(entry.Name())
		if !ok {
			logger.Warn("skipping unigram file without article id", "file", entry.Name())

			continue
		}

		if wanted != nil && !wanted.Has(id) {
			continue
		}

		table, readErr := readTableFile(filepath.Join(dir, entry.Name()))
		if readErr != nil {
			return nil, readErr
		}

		logger.Debug("read unigram table", "id", id, "rows", len(table))
		tables = append(tables, table)
	}

	_ = bar.Finish()

	logger.Info("Collected unigram tables", "articles", len(tables), "type", atype)

	if len(tables) == 0 {
		return nil, ErrNoTables
	}

	return Aggregate(tables...), nil
}

func (s Source) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}

	return slog.Default()
}

func readTableFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open unigram table: %w", err)
	}
	defer f.Close()

	table, err := ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return table, nil
}
