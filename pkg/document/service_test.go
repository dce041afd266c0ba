package document

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winzigc/pkg/log"
	"winzigc/pkg/parser"
)

func TestNewCheckServiceDefaults(t *testing.T) {
	service := NewCheckService(nil, nil, nil, ProcessingOptions{})

	require.NotNil(t, service)
	assert.NotNil(t, service.parser)
	assert.NotNil(t, service.formatter)
	assert.Greater(t, service.opts.Jobs, 0)
}

func TestCheckFiles(t *testing.T) {
	var logs bytes.Buffer
	service := NewCheckService(nil, nil, log.New(&logs, slog.LevelInfo, false), ProcessingOptions{
		Jobs:     2,
		Validate: true,
	})

	files := []string{
		"testdata/factorial.wz",
		"testdata/broken.wz",
		"testdata/mismatch.wz",
		"testdata/missing.wz",
	}
	results, err := service.CheckFiles(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, results, len(files))

	for i, r := range results {
		assert.Equal(t, files[i], r.Filename, "results keep input order")
	}

	assert.NoError(t, results[0].Err)
	assert.Equal(t, "factorial", results[0].Document.ProgramName())
	assert.Empty(t, results[0].Issues)

	assert.True(t, errors.Is(results[1].Err, parser.ErrSyntax))
	assert.Nil(t, results[1].Document)

	assert.NoError(t, results[2].Err)
	assert.Len(t, results[2].Issues, 3)

	assert.True(t, errors.Is(results[3].Err, os.ErrNotExist))

	summary := Summarize(results)
	assert.Equal(t, Summary{Files: 4, Passed: 2, Failed: 2, Warnings: 3}, summary)

	assert.Contains(t, logs.String(), "checked file")
	assert.Contains(t, logs.String(), "check failed")
}

func TestCheckFilesWritesTrees(t *testing.T) {
	outDir := t.TempDir()
	service := NewCheckService(nil, nil, nil, ProcessingOptions{
		WriteTrees: true,
		OutputDir:  outDir,
	})

	results, err := service.CheckFiles(context.Background(), []string{"testdata/factorial.wz"})
	require.NoError(t, err)
	require.NoError(t, results[0].Err)

	expected := filepath.Join(outDir, "factorial.tree")
	assert.Equal(t, expected, results[0].OutputPath)

	written, err := os.ReadFile(expected)
	require.NoError(t, err)
	assert.Equal(t, results[0].Document.DumpTree(), string(written))
}

func TestCheckFilesJSONOutput(t *testing.T) {
	outDir := t.TempDir()
	service := NewCheckService(nil, nil, nil, ProcessingOptions{
		WriteTrees: true,
		OutputDir:  outDir,
		Format:     "json",
	})

	results, err := service.CheckFiles(context.Background(), []string{"testdata/factorial.wz"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "factorial.json"), results[0].OutputPath)
}

func TestCheckFilesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	service := NewCheckService(nil, nil, nil, ProcessingOptions{Jobs: 1})
	_, err := service.CheckFiles(ctx, []string{"testdata/factorial.wz", "testdata/mismatch.wz"})
	assert.True(t, errors.Is(err, context.Canceled))
}
