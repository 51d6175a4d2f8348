package metadata

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/dfr-tools/dfrgram/pkg/terminal"
)

const tracerName = "dfrgram/metadata"

// ParseOptions configures ParseDir.
type ParseOptions struct {
	// Logger receives progress and summary messages. Nil uses slog.Default().
	Logger *slog.Logger

	// Progress receives a progress bar while files are read. Nil disables it.
	Progress io.Writer

	// SkipInvalid logs and skips malformed files instead of failing.
	SkipInvalid bool
}

// ParseDir parses every *.xml file directly inside dir, in name order.
func ParseDir(ctx context.Context, dir string, opts ParseOptions) (Dataset, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "dfrgram.metadata.parse_dir")
	defer span.End()

	files, err := listXML(dir)
	if err != nil {
		return Dataset{}, err
	}

	span.SetAttributes(attribute.Int("metadata.files", len(files)))

	bar := terminal.NewProgress(len(files), "Reading metadata files", opts.Progress)

	var ds Dataset

	for _, path := range files {
		if ctx.Err() != nil {
			return Dataset{}, fmt.Errorf("parse metadata: %w", ctx.Err())
		}

		_ = bar.Add(1)

		article, cits, parseErr := parseFile(path)
		if parseErr != nil {
			if !opts.SkipInvalid {
				return Dataset{}, parseErr
			}

			logger.WarnContext(ctx, "skipping invalid metadata file", "file", path, "error", parseErr)

			continue
		}

		ds.Articles = append(ds.Articles, article)
		ds.Citations = append(ds.Citations, cits...)
	}

	_ = bar.Finish()

	span.SetAttributes(
		attribute.Int("metadata.articles", len(ds.Articles)),
		attribute.Int("metadata.citations", len(ds.Citations)),
	)
	logger.InfoContext(ctx, "Collected articles", "articles", len(ds.Articles), "citations", len(ds.Citations))

	return ds, nil
}

func listXML(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read metadata dir: %w", err)
	}

	files := make([]string, 0, len(entries))

	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.EqualFold(filepath.Ext(entry.Name()), metadataExt) {
			continue
		}

		files = append(files, filepath.Join(dir, entry.Name()))
	}

	return files, nil
}

func parseFile(path string) (Article, []Citation, error) {
	f, err := os.Open(path)
	if err != nil {
		return Article{}, nil, fmt.Errorf("open metadata file: %w", err)
	}
	defer f.Close()

	article, cits, err := ParseArticle(ArticleID(path), f)
	if err != nil {
		return Article{}, nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return article, cits, nil
}
