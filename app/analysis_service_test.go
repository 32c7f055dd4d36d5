package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drivestat/adapters/chart"
	"drivestat/adapters/tabular"
	"drivestat/domain/table"
	"drivestat/internal/errors"
)

func loadCSVFixture(t *testing.T, content string) *table.Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tbl, err := tabular.NewReader().Load(context.Background(), path, "")
	require.NoError(t, err)
	return tbl
}

func TestAnalyzeWritesAllArtifacts(t *testing.T) {
	tbl := loadCSVFixture(t, "a,b,c\n1,10,x\n2,20,y\n3,30,z\n4,20,x\n")
	outputDir := filepath.Join(t.TempDir(), "results", "nested")

	svc := NewAnalysisService(chart.NewRenderer(), nil)
	require.NoError(t, svc.Analyze(context.Background(), tbl, "b", outputDir))

	for _, name := range []string{SummaryFileName, HistogramFileName, BoxPlotFileName} {
		info, err := os.Stat(filepath.Join(outputDir, name))
		require.NoError(t, err, "artifact %s should exist", name)
		assert.Greater(t, info.Size(), int64(0), "artifact %s should not be empty", name)
	}

	content, err := os.ReadFile(filepath.Join(outputDir, SummaryFileName))
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "Summary statistics\n")
	assert.Contains(t, text, "count: 4\n")
	assert.Contains(t, text, "mean: 20.000000\n")
	assert.Contains(t, text, "\nMode: 20\n")
}

func TestAnalyzeUnknownColumn(t *testing.T) {
	tbl := loadCSVFixture(t, "a,b\n1,2\n")
	outputDir := filepath.Join(t.TempDir(), "results")

	svc := NewAnalysisService(chart.NewRenderer(), nil)
	err := svc.Analyze(context.Background(), tbl, "missing", outputDir)

	require.Error(t, err)
	assert.Equal(t, errors.CodeColumnNotFound, errors.GetCode(err))

	// The column is validated before anything is written
	_, statErr := os.Stat(outputDir)
	assert.True(t, os.IsNotExist(statErr), "no artifacts should be produced")
}

func TestAnalyzeNonNumericColumn(t *testing.T) {
	tbl := loadCSVFixture(t, "name\nalice\nbob\n")
	outputDir := filepath.Join(t.TempDir(), "results")

	svc := NewAnalysisService(chart.NewRenderer(), nil)
	err := svc.Analyze(context.Background(), tbl, "name", outputDir)

	require.Error(t, err)
	assert.Equal(t, errors.CodeRenderError, errors.GetCode(err))

	// Independent writes: the text summary may exist even though the run failed
	content, readErr := os.ReadFile(filepath.Join(outputDir, SummaryFileName))
	require.NoError(t, readErr)
	assert.Contains(t, string(content), "count: 0\n")
	assert.Contains(t, string(content), "Mode: alice\n")
}

func TestAnalyzeOverwritesExistingArtifacts(t *testing.T) {
	tbl := loadCSVFixture(t, "v\n1\n2\n3\n")
	outputDir := t.TempDir()

	stale := filepath.Join(outputDir, SummaryFileName)
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0644))

	svc := NewAnalysisService(chart.NewRenderer(), nil)
	require.NoError(t, svc.Analyze(context.Background(), tbl, "v", outputDir))

	content, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.NotEqual(t, "stale", string(content))
	assert.Contains(t, string(content), "count: 3\n")
}
