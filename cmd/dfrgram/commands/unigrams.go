package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dfr-tools/dfrgram/pkg/unigram"
)

func newUnigramsCommand(a *app) *cobra.Command {
	var (
		sel     selection
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "unigrams",
		Short: "Write the normalized unigram table of a span of years",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx context.Context, s *session) error {
				table, _, _, err := sel.collect(ctx, cmd, s)
				if err != nil {
					return err
				}

				return writeOutput(cmd, outPath, func(w io.Writer) error {
					return unigram.WriteTSV(w, table)
				})
			})
		},
	}

	sel.register(cmd.Flags())
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	return cmd
}

// writeOutput hands write the command's stdout, or path when it is set.
func writeOutput(cmd *cobra.Command, path string, write func(w io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}

	return writeFile(path, func(f *os.File) error { return write(f) })
}
