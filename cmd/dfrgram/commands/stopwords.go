package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dfr-tools/dfrgram/pkg/normalize"
	"github.com/dfr-tools/dfrgram/pkg/terminal"
)

// ErrNoStopwordFile is returned when stopwords build has nowhere to write.
var ErrNoStopwordFile = errors.New("stopword file is required (use --out or paths.custom_stopwords)")

type stopwordsOptions struct {
	outPath string
	diff    bool
}

func newStopwordsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stopwords",
		Short: "Manage the reviewed custom stopword list",
	}

	cmd.AddCommand(newStopwordsBuildCommand(a))

	return cmd
}

func newStopwordsBuildCommand(a *app) *cobra.Command {
	var opts stopwordsOptions

	cmd := &cobra.Command{
		Use:   "build <review.csv>",
		Short: "Build the custom stopword file from a review sheet",
		Long: `Build the custom stopword file from a labeled review sheet.

Rows labeled "x" are newly marked stopwords and are relabeled "r" in the sheet.
Rows labeled "r" or "unchecked" are skipped. Every other row is a stopword.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(_ context.Context, s *session) error {
				if opts.outPath == "" {
					opts.outPath = s.cfg.Paths.CustomStopwords
				}

				if opts.outPath == "" {
					return ErrNoStopwordFile
				}

				return runStopwordsBuild(cmd, s, args[0], opts)
			})
		},
	}

	cmd.Flags().StringVar(&opts.outPath, "out", "", "custom stopword file (default paths.custom_stopwords)")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "print the changes against the previous stopword file")

	return cmd
}

func runStopwordsBuild(cmd *cobra.Command, s *session, reviewPath string, opts stopwordsOptions) error {
	rows, err := readReviewSheet(reviewPath)
	if err != nil {
		return err
	}

	words, updated := normalize.BuildCustomStopwords(rows)

	if opts.diff {
		previous, prevErr := readPreviousList(opts.outPath)
		if prevErr != nil {
			return prevErr
		}

		printWordListDiff(cmd.OutOrStdout(), normalize.DiffWordLists(previous, words))
	}

	writeErr := writeFile(opts.outPath, func(f *os.File) error { return normalize.WriteWordList(f, words) })
	if writeErr != nil {
		return writeErr
	}

	writeErr = writeFile(reviewPath, func(f *os.File) error { return normalize.WriteReviewCSV(f, updated) })
	if writeErr != nil {
		return writeErr
	}

	s.logger.Info("Built custom stopwords", "review", reviewPath, "output", opts.outPath, "words", len(words))

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s custom stopwords to %s\n", humanize.Comma(int64(len(words))), opts.outPath)

	return nil
}

func readReviewSheet(path string) ([]normalize.ReviewRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open review sheet: %w", err)
	}
	defer f.Close()

	rows, err := normalize.ReadReviewCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}

// readPreviousList reads the current stopword file. A missing file is empty.
func readPreviousList(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("open stopword file: %w", err)
	}
	defer f.Close()

	return normalize.ReadWordList(f)
}

func printWordListDiff(w io.Writer, changes []normalize.WordListChange) {
	tc := terminal.NewConfig()

	if len(changes) == 0 {
		fmt.Fprintln(w, "No changes to the stopword list")

		return
	}

	for _, c := range changes {
		col := terminal.ColorRed
		if c.Added {
			col = terminal.ColorGreen
		}

		fmt.Fprintln(w, tc.Colorize(c.String(), col))
	}
}
