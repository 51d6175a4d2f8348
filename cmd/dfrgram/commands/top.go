package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dfr-tools/dfrgram/pkg/config"
	"github.com/dfr-tools/dfrgram/pkg/plotpage"
	"github.com/dfr-tools/dfrgram/pkg/report"
	"github.com/dfr-tools/dfrgram/pkg/terminal"
)

// ErrInvalidTopN is returned when -n is not positive.
var ErrInvalidTopN = errors.New("n must be positive")

type topOptions struct {
	n       int
	format  string
	outPath string
	journal string
	theme   string
}

func newTopCommand(a *app) *cobra.Command {
	var (
		sel  selection
		opts topOptions
	)

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Report the most frequent unigrams of a span of years",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx context.Context, s *session) error {
				opts.applyDefaults(cmd, s.cfg)

				if opts.n <= 0 {
					return fmt.Errorf("%w: %d", ErrInvalidTopN, opts.n)
				}

				format, err := report.ParseFormat(opts.format)
				if err != nil {
					return err
				}

				table, span, stats, err := sel.collect(ctx, cmd, s)
				if err != nil {
					return err
				}

				rep := report.New(table, opts.n, opts.journal, sel.atype, span, stats)

				s.logger.Info("Built top-n report", "title", rep.Title, "words", len(rep.Entries))

				return writeOutput(cmd, opts.outPath, func(w io.Writer) error {
					return writeReport(w, rep, format, opts.theme, s.cfg, opts.outPath == "")
				})
			})
		},
	}

	sel.register(cmd.Flags())
	cmd.Flags().IntVarP(&opts.n, "n", "n", 0, "number of words (default chart.top_n)")
	cmd.Flags().StringVar(&opts.format, "format", report.FormatText, "output format: text, json, yaml or plot")
	cmd.Flags().StringVar(&opts.outPath, "out", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.journal, "journal", "", "journal name in the title (default chart.journal)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "chart theme: light or dark (default chart.theme)")

	return cmd
}

func (o *topOptions) applyDefaults(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("n") {
		o.n = cfg.Chart.TopN
	}

	if o.journal == "" {
		o.journal = cfg.Chart.Journal
	}

	if o.theme == "" {
		o.theme = cfg.Chart.Theme
	}
}

// writeReport renders rep in format. Colors are used only on a terminal stream.
func writeReport(w io.Writer, rep report.Report, format, theme string, cfg *config.Config, toStdout bool) error {
	switch format {
	case report.FormatJSON:
		return report.WriteJSON(w, rep)
	case report.FormatYAML:
		return report.WriteYAML(w, rep)
	case report.FormatPlot:
		return renderChart(w, rep, theme, cfg)
	default:
		tc := terminal.NewConfig()
		if !toStdout {
			tc.NoColor = true
		}

		return report.WriteText(w, rep, tc)
	}
}

// renderChart writes the top-n bar chart of rep as a standalone HTML page.
func renderChart(w io.Writer, rep report.Report, themeName string, cfg *config.Config) error {
	theme, err := plotpage.ParseTheme(themeName)
	if err != nil {
		return err
	}

	style := plotpage.DefaultStyle()
	if cfg.Chart.Width > 0 {
		style.Width = strconv.Itoa(cfg.Chart.Width) + "px"
	}

	if cfg.Chart.Height > 0 {
		style.Height = strconv.Itoa(cfg.Chart.Height) + "px"
	}

	chart := plotpage.TopChart(rep.Entries, rep.N, rep.Title, style, theme)

	return plotpage.NewPage(rep.Title).Add(chart).Render(w)
}
