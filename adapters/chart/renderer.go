package chart

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"drivestat/internal/errors"
)

// histogramBins is the fixed bin count for histogram rendering.
const histogramBins = 20

// Renderer draws distribution charts to image files using gonum/plot.
type Renderer struct{}

// NewRenderer creates a chart renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderHistogram draws a 20-bin histogram of the values and saves it at path.
// Columns that yield no numeric values cannot be drawn and fail with a
// render error.
func (r *Renderer) RenderHistogram(values []float64, column, path string) error {
	if len(values) == 0 {
		return errors.RenderError("no numeric values to draw for column "+column, nil)
	}

	hist, err := plotter.NewHist(plotter.Values(values), histogramBins)
	if err != nil {
		return errors.RenderError("failed to build histogram for column "+column, err)
	}

	p := plot.New()
	p.Title.Text = "Histogram of " + column
	p.X.Label.Text = column
	p.Y.Label.Text = "Frequency"
	p.Add(hist)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return errors.IOError("failed to save histogram to "+path, err)
	}
	return nil
}

// RenderBoxPlot draws a single-column box plot of the values and saves it
// at path.
func (r *Renderer) RenderBoxPlot(values []float64, column, path string) error {
	if len(values) == 0 {
		return errors.RenderError("no numeric values to draw for column "+column, nil)
	}

	box, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(values))
	if err != nil {
		return errors.RenderError("failed to build box plot for column "+column, err)
	}

	p := plot.New()
	p.Title.Text = "Box plot of " + column
	p.Y.Label.Text = column
	p.Add(box)
	p.NominalX(column)

	if err := p.Save(6*vg.Inch, 5*vg.Inch, path); err != nil {
		return errors.IOError("failed to save box plot to "+path, err)
	}
	return nil
}
