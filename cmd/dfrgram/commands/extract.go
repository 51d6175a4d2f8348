package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dfr-tools/dfrgram/pkg/metadata"
	"github.com/dfr-tools/dfrgram/pkg/persist"
	"github.com/dfr-tools/dfrgram/pkg/store"
)

// Files written by extract.
const (
	articlesFile  = "articles.csv"
	miscFile      = "misc.csv"
	citationsFile = "citations.csv"
	snapshotName  = "dataset"
	outputDirPerm = 0o750
)

type extractOptions struct {
	outputDir   string
	sqlitePath  string
	skipInvalid bool
}

func newExtractCommand(a *app) *cobra.Command {
	var opts extractOptions

	cmd := &cobra.Command{
		Use:   "extract [metadata-dir]",
		Short: "Extract article and citation tables from XML metadata",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, s *session) error {
				dir := s.cfg.Paths.MetadataDir
				if len(args) > 0 {
					dir = args[0]
				}

				if opts.outputDir == "" {
					opts.outputDir = s.cfg.Paths.OutputDir
				}

				return runExtract(ctx, cmd, s, dir, opts)
			})
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "output directory (default paths.output_dir)")
	cmd.Flags().StringVar(&opts.sqlitePath, "sqlite", "", "also export the dataset to this SQLite file")
	cmd.Flags().BoolVar(&opts.skipInvalid, "skip-invalid", false, "skip malformed metadata files instead of failing")

	return cmd
}

func runExtract(ctx context.Context, cmd *cobra.Command, s *session, dir string, opts extractOptions) error {
	ds, err := metadata.ParseDir(ctx, dir, metadata.ParseOptions{
		Logger:      s.logger,
		Progress:    s.progress,
		SkipInvalid: opts.skipInvalid,
	})
	if err != nil {
		return err
	}

	metadata.FormatAuthors(ds.Articles)
	clean, misc := metadata.RemoveMisc(ds.Articles)

	mkErr := os.MkdirAll(opts.outputDir, outputDirPerm)
	if mkErr != nil {
		return fmt.Errorf("create output dir: %w", mkErr)
	}

	writes := []struct {
		name  string
		write func(f *os.File) error
	}{
		{articlesFile, func(f *os.File) error { return metadata.WriteArticlesCSV(f, clean) }},
		{miscFile, func(f *os.File) error { return metadata.WriteArticlesCSV(f, misc) }},
		{citationsFile, func(f *os.File) error { return metadata.WriteCitationsCSV(f, ds.Citations) }},
	}

	for _, w := range writes {
		writeErr := writeFile(filepath.Join(opts.outputDir, w.name), w.write)
		if writeErr != nil {
			return writeErr
		}
	}

	reference := metadata.Dataset{Articles: clean, Citations: ds.Citations}

	snapshots := snapshotPersister()

	saveErr := snapshots.Save(opts.outputDir, &reference)
	if saveErr != nil {
		return fmt.Errorf("save snapshot: %w", saveErr)
	}

	s.logger.Debug("wrote dataset snapshot", "path", snapshots.Path(opts.outputDir))

	if opts.sqlitePath != "" {
		exportErr := store.ExportSQLite(ctx, opts.sqlitePath, reference)
		if exportErr != nil {
			return exportErr
		}
	}

	s.logger.Info("Wrote metadata tables", "dir", opts.outputDir,
		"articles", len(clean), "misc", len(misc), "citations", len(ds.Citations))

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s articles, %s misc and %s citations to %s\n",
		humanize.Comma(int64(len(clean))), humanize.Comma(int64(len(misc))),
		humanize.Comma(int64(len(ds.Citations))), opts.outputDir)

	return nil
}

func snapshotPersister() *persist.Persister[metadata.Dataset] {
	return persist.NewPersister[metadata.Dataset](snapshotName, persist.NewSnapshotCodec())
}

// writeFile creates path and hands it to write, joining the close error.
func writeFile(path string, write func(f *os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	defer func() {
		closeErr := f.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	err = write(f)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
