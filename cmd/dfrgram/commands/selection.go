package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dfr-tools/dfrgram/pkg/config"
	"github.com/dfr-tools/dfrgram/pkg/corpus"
	"github.com/dfr-tools/dfrgram/pkg/metadata"
	"github.com/dfr-tools/dfrgram/pkg/normalize"
	"github.com/dfr-tools/dfrgram/pkg/observability"
	"github.com/dfr-tools/dfrgram/pkg/unigram"
)

// ErrNoCustomStopwords is returned when custom stopwords are requested
// without a stopword file.
var ErrNoCustomStopwords = errors.New("custom stopwords requested but paths.custom_stopwords is not set")

// ErrNoFromYear is returned when the span start year is missing.
var ErrNoFromYear = errors.New("start year is required (use --from)")

// Selection and pipeline flag names.
const (
	flagReference       = "reference"
	flagNgrams          = "ngrams"
	flagType            = "type"
	flagFrom            = "from"
	flagTo              = "to"
	flagLemmatizer      = "lemmatizer"
	flagLemmaDict       = "lemma-dict"
	flagStopwords       = "stopwords"
	flagCustomStopwords = "custom-stopwords"
	flagIncludeCustom   = "include-custom"
	flagRemoveMixed     = "remove-mixed"
	flagMinCount        = "min-count"
	snapshotSuffix      = ".lz4"
)

// selection is the set of flags shared by unigrams and top.
type selection struct {
	reference string
	ngramDir  string
	atype     string
	from      int
	to        int

	lemmatizer      string
	lemmaDict       string
	stopwords       []string
	customStopwords string
	includeCustom   bool
	removeMixed     bool
	minCount        int
}

func (sel *selection) register(fs *pflag.FlagSet) {
	fs.StringVar(&sel.reference, flagReference, "",
		"reference table: articles.csv or dataset.gob.lz4 (default paths.output_dir/articles.csv)")
	fs.StringVar(&sel.ngramDir, flagNgrams, "", "unigram directory (default paths.ngram_dir)")
	fs.StringVar(&sel.atype, flagType, unigram.TypeResearchArticle, "article type: research-article or book-review")
	fs.IntVar(&sel.from, flagFrom, 0, "first year of the span")
	fs.IntVar(&sel.to, flagTo, 0, "last year of the span (default: same as --from)")

	fs.StringVar(&sel.lemmatizer, flagLemmatizer, "", "lemmatizer: wordnet, snowball or none")
	fs.StringVar(&sel.lemmaDict, flagLemmaDict, "", "word,lemma CSV overriding the wordnet rules")
	fs.StringSliceVar(&sel.stopwords, flagStopwords, nil, "built-in stopword sources: nltk, snowball")
	fs.StringVar(&sel.customStopwords, flagCustomStopwords, "", "custom stopword file")
	fs.BoolVar(&sel.includeCustom, flagIncludeCustom, false,
		"also remove custom stopwords (default: on when a custom stopword file is set)")
	fs.BoolVar(&sel.removeMixed, flagRemoveMixed, false,
		"also remove words mixing letters and numerals (default pipeline.remove_mixed)")
	fs.IntVar(&sel.minCount, flagMinCount, 0, "drop words counted fewer than this many times")
}

// applyTo overrides cfg with the flags set on the command line.
func (sel *selection) applyTo(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed(flagNgrams) {
		cfg.Paths.NgramDir = sel.ngramDir
	}

	if fs.Changed(flagLemmatizer) {
		cfg.Pipeline.Lemmatizer = sel.lemmatizer
	}

	if fs.Changed(flagLemmaDict) {
		cfg.Paths.LemmaDict = sel.lemmaDict
	}

	if fs.Changed(flagStopwords) {
		cfg.Pipeline.StopwordSources = sel.stopwords
	}

	if fs.Changed(flagCustomStopwords) {
		cfg.Paths.CustomStopwords = sel.customStopwords
	}

	if fs.Changed(flagIncludeCustom) {
		include := sel.includeCustom
		cfg.Pipeline.IncludeCustom = &include
	}

	if fs.Changed(flagRemoveMixed) {
		cfg.Pipeline.RemoveMixed = sel.removeMixed
	}

	if fs.Changed(flagMinCount) {
		cfg.Pipeline.MinCount = sel.minCount
	}
}

func (sel *selection) span() (corpus.YearSpan, error) {
	if sel.from == 0 {
		return corpus.YearSpan{}, ErrNoFromYear
	}

	return corpus.NewYearSpan(sel.from, sel.to)
}

// collect loads the reference table and returns the normalized unigram table
// of the selected articles with its per-stage statistics.
func (sel *selection) collect(
	ctx context.Context, cmd *cobra.Command, s *session,
) (unigram.Table, corpus.YearSpan, []observability.StageStats, error) {
	sel.applyTo(cmd.Flags(), s.cfg)

	span, err := sel.span()
	if err != nil {
		return nil, corpus.YearSpan{}, nil, err
	}

	refPath := sel.reference
	if refPath == "" {
		refPath = filepath.Join(s.cfg.Paths.OutputDir, articlesFile)
	}

	articles, err := loadReference(refPath)
	if err != nil {
		return nil, span, nil, err
	}

	pipeline, err := buildPipeline(s)
	if err != nil {
		return nil, span, nil, err
	}

	src := unigram.Source{Dir: s.cfg.Paths.NgramDir, Logger: s.logger, Progress: s.progress}

	table, stats, err := corpus.UnigramsByYears(ctx, articles, span, sel.atype, src, pipeline)
	if err != nil {
		return nil, span, nil, err
	}

	return table, span, stats, nil
}

// loadReference reads the article table from a dataset snapshot or a CSV file.
func loadReference(path string) ([]metadata.Article, error) {
	if strings.HasSuffix(path, snapshotSuffix) {
		ds, err := snapshotPersister().LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load snapshot %s: %w", path, err)
		}

		return ds.Articles, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference table: %w", err)
	}
	defer f.Close()

	articles, err := metadata.ReadArticlesCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return articles, nil
}

// buildPipeline assembles the normalization pipeline from the session config.
func buildPipeline(s *session) (*normalize.Pipeline, error) {
	cfg := s.cfg

	lem, err := normalize.NewLemmatizer(cfg.Pipeline.Lemmatizer, cfg.Paths.LemmaDict)
	if err != nil {
		return nil, err
	}

	builtin, err := normalize.BuiltinStopwords(cfg.Pipeline.StopwordSources...)
	if err != nil {
		return nil, err
	}

	opts := normalize.Options{
		Lemmatizer:    lem,
		RemoveMixed:   cfg.Pipeline.RemoveMixed,
		Builtin:       builtin,
		IncludeCustom: cfg.IncludeCustom(),
		MinCount:      cfg.Pipeline.MinCount,
	}

	if opts.IncludeCustom {
		if cfg.Paths.CustomStopwords == "" {
			return nil, ErrNoCustomStopwords
		}

		custom, loadErr := normalize.LoadWordSet(cfg.Paths.CustomStopwords)
		if loadErr != nil {
			return nil, loadErr
		}

		opts.Custom = custom
	}

	p := normalize.DefaultPipeline(opts)
	p.Logger = s.logger
	p.Metrics = s.metrics
	p.Tracer = s.providers.Tracer

	return p, nil
}
