package ports

import (
	"context"

	"drivestat/domain/table"
)

// TableLoader loads a dataset file into an in-memory Table.
// Spreadsheet paths honor the sheet selector; delimited text ignores it.
type TableLoader interface {
	Load(ctx context.Context, path string, sheet string) (*table.Table, error)
}

// ChartRenderer persists distribution charts for a column's numeric values.
type ChartRenderer interface {
	RenderHistogram(values []float64, column, path string) error
	RenderBoxPlot(values []float64, column, path string) error
}

// DriveMounter makes a networked storage path locally reachable before the
// analysis reads it. Availability is resolved once at construction; mounting
// with no capability degrades to a console notice, not an error.
type DriveMounter interface {
	Available() bool
	Mount(ctx context.Context) error
}
