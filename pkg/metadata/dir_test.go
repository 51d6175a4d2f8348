package metadata_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfr-tools/dfrgram/pkg/metadata"
)

func TestParseDir_FailsOnInvalidFile(t *testing.T) {
	t.Parallel()

	_, err := metadata.ParseDir(context.Background(), "testdata", metadata.ParseOptions{})
	require.ErrorIs(t, err, metadata.ErrInvalidYear)
	assert.Contains(t, err.Error(), "broken.xml")
}

func TestParseDir_SkipInvalid(t *testing.T) {
	t.Parallel()

	var logs, progress bytes.Buffer

	ds, err := metadata.ParseDir(context.Background(), "testdata", metadata.ParseOptions{
		Logger:      slog.New(slog.NewTextHandler(&logs, nil)),
		Progress:    &progress,
		SkipInvalid: true,
	})
	require.NoError(t, err)

	ids := make([]string, 0, len(ds.Articles))
	for _, a := range ds.Articles {
		ids = append(ids, a.ID)
	}

	assert.Equal(t, []string{"10.2307_2779032", "10.2307_2779100", "10.2307_2779200"}, ids)
	assert.Len(t, ds.Citations, 2)
	assert.Contains(t, logs.String(), "skipping invalid metadata file")
	assert.Contains(t, logs.String(), "Collected articles")
	assert.Contains(t, progress.String(), "Reading metadata files")
}

func TestParseDir_UpperCaseExtension(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(filepath.Join("testdata", "10.2307_2779032.xml"))
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "10.2307_2779032.XML"), data, 0o600))

	ds, err := metadata.ParseDir(context.Background(), dir, metadata.ParseOptions{})
	require.NoError(t, err)
	require.Len(t, ds.Articles, 1)
	assert.Equal(t, "10.2307_2779032", ds.Articles[0].ID)
	require.NotEmpty(t, ds.Citations)
	assert.Equal(t, "10.2307_2779032", ds.Citations[0].ArticleID)
}

func TestParseDir_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := metadata.ParseDir(context.Background(), "testdata/nope", metadata.ParseOptions{})
	require.Error(t, err)
}

func TestParseDir_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := metadata.ParseDir(ctx, "testdata", metadata.ParseOptions{SkipInvalid: true})
	require.ErrorIs(t, err, context.Canceled)
}
