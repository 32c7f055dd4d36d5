package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"drivestat/domain/core"
	"drivestat/domain/table"
	"drivestat/internal"
	"drivestat/internal/describe"
	"drivestat/internal/errors"
	"drivestat/ports"
)

// Artifact file names, stable for downstream consumers.
const (
	SummaryFileName   = "summary_statistics.txt"
	HistogramFileName = "histogram.png"
	BoxPlotFileName   = "boxplot.png"
)

// AnalysisService computes the descriptive summary for one column of a
// loaded table and writes the text and chart artifacts. It is the whole
// analyzer: one call per run, side effects only.
type AnalysisService struct {
	renderer ports.ChartRenderer
	logger   *internal.Logger
}

// NewAnalysisService creates the analyzer with its chart renderer
func NewAnalysisService(renderer ports.ChartRenderer, logger *internal.Logger) *AnalysisService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &AnalysisService{renderer: renderer, logger: logger}
}

// Analyze computes the Summary for column and writes the three artifacts
// into outputDir, creating it (and parents) on demand. The column key is
// validated before anything is written; every later failure aborts the run
// and may leave a partial artifact set behind.
func (s *AnalysisService) Analyze(ctx context.Context, tbl *table.Table, column, outputDir string) error {
	runID := core.NewRunID()

	cells, ok := tbl.Column(column)
	if !ok {
		return errors.ColumnNotFound(column)
	}

	s.logger.Info("[Analysis] run %s: column %q, %d rows", runID, column, tbl.RowCount())

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return errors.IOError("failed to create output directory "+outputDir, err)
	}

	sum := describe.Column(column, cells)
	values := describe.NumericValues(cells)

	markers := describe.Distribution(values)
	s.logger.Debug("[Analysis] run %s: skewness=%.4f kurtosis=%.4f outliers=%d normal=%t (p=%.4f)",
		runID, markers.Skewness, markers.Kurtosis, markers.OutlierCount, markers.IsNormal, markers.ShapiroP)

	written := make([]core.Artifact, 0, 3)

	summaryPath := filepath.Join(outputDir, SummaryFileName)
	if err := os.WriteFile(summaryPath, []byte(sum.Render()), 0644); err != nil {
		return errors.IOError("failed to write summary to "+summaryPath, err)
	}
	written = append(written, core.Artifact{Kind: core.ArtifactSummaryText, Path: summaryPath})
	fmt.Printf("Summary saved to %s\n", summaryPath)

	histogramPath := filepath.Join(outputDir, HistogramFileName)
	if err := s.renderer.RenderHistogram(values, column, histogramPath); err != nil {
		return err
	}
	written = append(written, core.Artifact{Kind: core.ArtifactHistogram, Path: histogramPath})
	fmt.Printf("Histogram saved to %s\n", histogramPath)

	boxPlotPath := filepath.Join(outputDir, BoxPlotFileName)
	if err := s.renderer.RenderBoxPlot(values, column, boxPlotPath); err != nil {
		return err
	}
	written = append(written, core.Artifact{Kind: core.ArtifactBoxPlot, Path: boxPlotPath})
	fmt.Printf("Box plot saved to %s\n", boxPlotPath)

	s.logger.Info("[Analysis] run %s: wrote %d artifacts to %s", runID, len(written), outputDir)
	return nil
}
