// Package commands implements the dfrgram subcommands.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dfr-tools/dfrgram/pkg/config"
	"github.com/dfr-tools/dfrgram/pkg/observability"
	"github.com/dfr-tools/dfrgram/pkg/version"
)

// app holds the global flags and the state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool
	quiet      bool
}

// session is the per-invocation environment built from config and flags.
type session struct {
	cfg       *config.Config
	logger    *slog.Logger
	providers observability.Providers
	metrics   *observability.StageMetrics
	progress  io.Writer
}

// NewRootCommand creates the dfrgram command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "dfrgram",
		Short: "Unigram charts from JSTOR Data-for-Research corpora",
		Long: `dfrgram turns a Data-for-Research corpus into tables and charts.

Commands:
  extract    XML article metadata to CSV tables, snapshot and SQLite
  unigrams   Normalized unigram table for a span of years
  top        Top-N unigram report as text, JSON, YAML or HTML chart
  render     HTML chart from a JSON report
  stopwords  Custom stopword list from a review sheet`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default dfrgram.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress progress bars")

	rootCmd.AddCommand(
		newExtractCommand(a),
		newUnigramsCommand(a),
		newTopCommand(a),
		newRenderCommand(a),
		newStopwordsCommand(a),
		newVersionCommand(),
	)

	return rootCmd
}

// run loads the configuration, initializes observability for cmd and calls
// fn. Observability is shut down after fn returns.
func (a *app) run(cmd *cobra.Command, fn func(ctx context.Context, s *session) error) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceVersion = version.Version
	obsCfg.Command = cmd.Name()
	obsCfg.OTLPEndpoint = cfg.Telemetry.OTLPEndpoint
	obsCfg.OTLPHeaders = observability.ParseOTLPHeaders(cfg.Telemetry.OTLPHeaders)
	obsCfg.OTLPInsecure = cfg.Telemetry.OTLPInsecure
	obsCfg.SampleRatio = cfg.Telemetry.SampleRatio
	obsCfg.MetricsTextfile = cfg.Telemetry.MetricsTextfile
	obsCfg.LogLevel = observability.ParseLevel(cfg.Logging.Level)
	obsCfg.LogJSON = cfg.LogJSON()
	obsCfg.LogOutput = cmd.ErrOrStderr()

	if a.verbose {
		obsCfg.LogLevel = slog.LevelDebug
	}

	providers, err := observability.Init(obsCfg)
	if err != nil {
		return fmt.Errorf("init observability: %w", err)
	}

	defer func() {
		shutdownErr := providers.Shutdown(context.Background())
		if shutdownErr != nil {
			providers.Logger.Warn("observability shutdown failed", "error", shutdownErr)
		}
	}()

	metrics, err := observability.NewStageMetrics(providers.Meter)
	if err != nil {
		return err
	}

	s := &session{
		cfg:       cfg,
		logger:    providers.Logger,
		providers: providers,
		metrics:   metrics,
	}

	if !a.quiet {
		s.progress = cmd.ErrOrStderr()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, span := providers.Tracer.Start(ctx, "dfrgram."+cmd.Name())
	defer span.End()

	return fn(ctx, s)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
