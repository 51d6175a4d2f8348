package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfr-tools/dfrgram/cmd/dfrgram/commands"
	"github.com/dfr-tools/dfrgram/pkg/config"
	"github.com/dfr-tools/dfrgram/pkg/report"
	"github.com/dfr-tools/dfrgram/pkg/unigram"
	"github.com/dfr-tools/dfrgram/pkg/version"
)

const metadataTestdata = "../../../pkg/metadata/testdata"

var fixtureFiles = []string{"10.2307_2779032.xml", "10.2307_2779100.xml", "10.2307_2779200.xml"}

// fixture is a corpus laid out in a temporary directory.
type fixture struct {
	root     string
	config   string
	metadata string
	ngrams   string
	output   string
}

func newFixture(t *testing.T, configBody string) fixture {
	t.Helper()

	root := t.TempDir()
	fx := fixture{
		root:     root,
		config:   filepath.Join(root, "dfrgram.yaml"),
		metadata: filepath.Join(root, "metadata"),
		ngrams:   filepath.Join(root, "ngram1"),
		output:   filepath.Join(root, "out"),
	}

	require.NoError(t, os.WriteFile(fx.config, []byte(configBody), 0o600))
	require.NoError(t, os.MkdirAll(fx.metadata, 0o750))

	for _, name := range fixtureFiles {
		data, err := os.ReadFile(filepath.Join(metadataTestdata, name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(fx.metadata, name), data, 0o600))
	}

	typeDir := filepath.Join(fx.ngrams, unigram.TypeResearchArticle)
	require.NoError(t, os.MkdirAll(typeDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(typeDir, "10.2307_2779032-ngram1.txt"),
		[]byte("the\t50\nwomen\t10\n3rd\t8\nwoman\t4\nsocieties\t6\np2\t5\n1984\t3\n42\t9\n"), 0o600))

	return fx
}

// execute runs the root command with args and returns its stdout.
func (fx fixture) execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := commands.NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", fx.config, "-q"}, args...))

	err := cmd.Execute()

	return stdout.String(), err
}

func (fx fixture) extract(t *testing.T) {
	t.Helper()

	_, err := fx.execute(t, "extract", fx.metadata, "--output", fx.output)
	require.NoError(t, err)
}

func (fx fixture) selectArgs(extra ...string) []string {
	return append([]string{
		"--reference", filepath.Join(fx.output, "articles.csv"),
		"--ngrams", fx.ngrams,
		"--from", "1984",
	}, extra...)
}

func TestExtract(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, "")
	dbPath := filepath.Join(fx.root, "dataset.db")

	out, err := fx.execute(t, "extract", fx.metadata, "--output", fx.output, "--sqlite", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 2 articles, 1 misc and 2 citations")

	for _, name := range []string{"articles.csv", "misc.csv", "citations.csv", "dataset.gob.lz4"} {
		assert.FileExists(t, filepath.Join(fx.output, name))
	}

	assert.FileExists(t, dbPath)

	misc, err := os.ReadFile(filepath.Join(fx.output, "misc.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(misc), "Back Matter")
}

func TestExtract_MissingDir(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, "")

	_, err := fx.execute(t, "extract", filepath.Join(fx.root, "absent"), "--output", fx.output)
	require.Error(t, err)
}

func TestUnigrams(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, "")
	fx.extract(t)

	out, err := fx.execute(t, append([]string{"unigrams"}, fx.selectArgs()...)...)
	require.NoError(t, err)
	assert.Equal(t, "woman\t14\nsociety\t6\n1984\t3\n", out)
}

func TestUnigrams_DefaultsDropMixedTokens(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, "")
	fx.extract(t)

	out, err := fx.execute(t, append([]string{"unigrams"}, fx.selectArgs()...)...)
	require.NoError(t, err)
	assert.NotContains(t, out, "3rd")
	assert.NotContains(t, out, "p2")

	kept, err := fx.execute(t, append([]string{"unigrams"}, fx.selectArgs("--remove-mixed=false")...)...)
	require.NoError(t, err)
	assert.Contains(t, kept, "3rd\t8\n")
	assert.Contains(t, kept, "p2\t5\n")
}

func TestUnigrams_ConfiguredCustomStopwordsApply(t *testing.T) {
	t.Parallel()

	custom := filepath.Join(t.TempDir(), "custom.txt")
	require.NoError(t, os.WriteFile(custom, []byte("society\n"), 0o600))

	fx := newFixture(t, "paths:\n  custom_stopwords: "+custom+"\n")
	fx.extract(t)

	out, err := fx.execute(t, append([]string{"unigrams"}, fx.selectArgs()...)...)
	require.NoError(t, err)
	assert.Equal(t, "woman\t14\n1984\t3\n", out)

	out, err = fx.execute(t, append([]string{"unigrams"}, fx.selectArgs("--include-custom=false")...)...)
	require.NoError(t, err)
	assert.Equal(t, "woman\t14\nsociety\t6\n1984\t3\n", out)
}

func TestUnigrams_MissingFrom(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, "")
	fx.extract(t)

	_, err := fx.execute(t, "unigrams", "--ngrams", fx.ngrams,
		"--reference", filepath.Join(fx.output, "articles.csv"))
	require.ErrorIs(t, err, commands.ErrNoFromYear)
}

func TestUnigrams_NoArticlesInSpan(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, "")
	fx.extract(t)

	_, err := fx.execute(t, "unigrams", "--ngrams", fx.ngrams, "--from", "1950",
		"--reference", filepath.Join(fx.output, "articles.csv"))
	require.Error(t, err)
}

func TestTop_JSONWithMetrics(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	promPath := filepath.Join(root, "dfrgram.prom")

	fx := newFixture(t, "telemetry:\n  metrics_textfile: "+promPath+"\n"+
		"  otlp_headers: api-key=secret\n  sample_ratio: 0.5\n")
	fx.extract(t)

	repPath := filepath.Join(fx.root, "report.json")

	_, err := fx.execute(t, append([]string{"top"}, fx.selectArgs("-n", "2", "--format", "json", "--out", repPath)...)...)
	require.NoError(t, err)

	f, err := os.Open(repPath)
	require.NoError(t, err)

	defer f.Close()

	rep, err := report.ReadJSON(f)
	require.NoError(t, err)
	assert.Equal(t, "Top 2 Unigram Counts from AJS Research Articles: 1984", rep.Title)
	assert.Equal(t, []string{"woman", "society"}, rep.Entries.Words())
	assert.Len(t, rep.Stages, 3)

	prom, err := os.ReadFile(promPath)
	require.NoError(t, err)
	assert.Contains(t, string(prom), "dfrgram_pipeline_rows_in")
}

func TestTop_TextFromSnapshot(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, "chart:\n  journal: ASR\n")
	fx.extract(t)

	out, err := fx.execute(t, "top",
		"--reference", filepath.Join(fx.output, "dataset.gob.lz4"),
		"--ngrams", fx.ngrams, "--from", "1984", "--to", "1984")
	require.NoError(t, err)
	assert.Contains(t, out, "Top 50 Unigram Counts from ASR Research Articles: 1984")
	assert.Contains(t, out, "woman")
	assert.Contains(t, out, "remove-stopwords")
}

func TestTop_PlotAndRender(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, "")
	fx.extract(t)

	out, err := fx.execute(t, append([]string{"top"}, fx.selectArgs("--format", "plot", "--theme", "dark")...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "woman")

	repPath := filepath.Join(fx.root, "report.json")
	_, err = fx.execute(t, append([]string{"top"}, fx.selectArgs("--format", "json", "--out", repPath)...)...)
	require.NoError(t, err)

	chartPath := filepath.Join(fx.root, "chart.html")
	_, err = fx.execute(t, "render", repPath, "-o", chartPath)
	require.NoError(t, err)

	html, err := os.ReadFile(chartPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "society")
}

func TestTop_InvalidFormat(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, "")

	_, err := fx.execute(t, append([]string{"top"}, fx.selectArgs("--format", "csv")...)...)
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestTop_InvalidSampleRatio(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, "telemetry:\n  sample_ratio: 2\n")

	_, err := fx.execute(t, append([]string{"top"}, fx.selectArgs()...)...)
	require.ErrorIs(t, err, config.ErrInvalidSampling)
}

func TestTop_IncludeCustomWithoutFile(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, "")
	fx.extract(t)

	_, err := fx.execute(t, append([]string{"top"}, fx.selectArgs("--include-custom")...)...)
	require.ErrorIs(t, err, commands.ErrNoCustomStopwords)
}

func TestUnigrams_IncludeCustom(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, "")
	fx.extract(t)

	custom := filepath.Join(fx.root, "custom.txt")
	require.NoError(t, os.WriteFile(custom, []byte("society\n"), 0o600))

	out, err := fx.execute(t, append([]string{"unigrams"},
		fx.selectArgs("--include-custom", "--custom-stopwords", custom)...)...)
	require.NoError(t, err)
	assert.Equal(t, "woman\t14\n1984\t3\n", out)
}

func TestRender_RequiresOutput(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, "")

	_, err := fx.execute(t, "render", filepath.Join(fx.root, "report.json"))
	require.ErrorIs(t, err, commands.ErrNoOutputFile)
}

func TestRender_InvalidReport(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, "")
	repPath := filepath.Join(fx.root, "report.json")
	require.NoError(t, os.WriteFile(repPath, []byte(`{"title":"t"}`), 0o600))

	_, err := fx.execute(t, "render", repPath, "-o", filepath.Join(fx.root, "chart.html"))
	require.ErrorIs(t, err, report.ErrInvalidReport)
}

func TestStopwordsBuild(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, "")
	review := filepath.Join(fx.root, "review.csv")
	custom := filepath.Join(fx.root, "custom.txt")

	require.NoError(t, os.WriteFile(review, []byte("word,count,stopword\n"+
		"ibid,40,\n"+
		"society,30,x\n"+
		"vol,12,y\n"+
		"rare,1,unchecked\n"+
		"old,3,r\n"), 0o600))
	require.NoError(t, os.WriteFile(custom, []byte("ibid\npress\n"), 0o600))

	out, err := fx.execute(t, "stopwords", "build", review, "--out", custom, "--diff")
	require.NoError(t, err)
	assert.Contains(t, out, "-press")
	assert.Contains(t, out, "+society")
	assert.Contains(t, out, "+vol")
	assert.Contains(t, out, "Wrote 3 custom stopwords")

	words, err := os.ReadFile(custom)
	require.NoError(t, err)
	assert.Equal(t, "ibid\nsociety\nvol\n", string(words))

	sheet, err := os.ReadFile(review)
	require.NoError(t, err)
	assert.Contains(t, string(sheet), "society,30,r")
}

func TestStopwordsBuild_RequiresOutput(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, "")
	review := filepath.Join(fx.root, "review.csv")
	require.NoError(t, os.WriteFile(review, []byte("word,stopword\nibid,\n"), 0o600))

	_, err := fx.execute(t, "stopwords", "build", review)
	require.ErrorIs(t, err, commands.ErrNoStopwordFile)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	fx := newFixture(t, "")

	out, err := fx.execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, version.Version)
}
