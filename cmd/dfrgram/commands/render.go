package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dfr-tools/dfrgram/pkg/report"
)

// ErrNoOutputFile is returned when render is called without --output.
var ErrNoOutputFile = errors.New("output file is required (use --output)")

func newRenderCommand(a *app) *cobra.Command {
	var outPath, theme string

	cmd := &cobra.Command{
		Use:   "render <report.json>",
		Short: "Render the chart of a JSON report as HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath == "" {
				return ErrNoOutputFile
			}

			return a.run(cmd, func(_ context.Context, s *session) error {
				if theme == "" {
					theme = s.cfg.Chart.Theme
				}

				rep, err := readReport(args[0])
				if err != nil {
					return err
				}

				writeErr := writeFile(outPath, func(f *os.File) error {
					return renderChart(f, rep, theme, s.cfg)
				})
				if writeErr != nil {
					return writeErr
				}

				s.logger.Info("Rendered chart", "report", args[0], "output", outPath)

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output HTML file")
	cmd.Flags().StringVar(&theme, "theme", "", "chart theme: light or dark (default chart.theme)")

	return cmd
}

func readReport(path string) (report.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return report.Report{}, fmt.Errorf("open report: %w", err)
	}
	defer f.Close()

	rep, err := report.ReadJSON(f)
	if err != nil {
		return report.Report{}, fmt.Errorf("%s: %w", path, err)
	}

	return rep, nil
}
