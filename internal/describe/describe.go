package describe

import (
	"math"
	"strconv"

	"drivestat/domain/summary"
	"drivestat/domain/table"

	"github.com/montanaflynn/stats"
)

// Column computes the descriptive Summary for one column given its raw cells
// in row order. Missing cells are ignored for every measure; statistical
// measures additionally ignore cells that do not parse as numbers. A column
// with no numeric values yields count 0 and NaN measures rather than an error.
func Column(name string, cells []string) summary.Summary {
	s := summary.Summary{Column: name}

	values := NumericValues(cells)
	s.Count = len(values)

	if len(values) == 0 {
		nan := math.NaN()
		s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max = nan, nan, nan, nan, nan, nan, nan
	} else {
		data := stats.Float64Data(values)
		s.Mean, _ = stats.Mean(data)
		// Sample standard deviation, matching the reference describe() output
		s.Std, _ = stats.StandardDeviationSample(data)
		s.Min, _ = stats.Min(data)
		s.Q25, _ = stats.Percentile(data, 25)
		s.Median, _ = stats.Median(data)
		s.Q75, _ = stats.Percentile(data, 75)
		s.Max, _ = stats.Max(data)
	}

	s.Mode, s.HasMode = Mode(cells)
	return s
}

// NumericValues extracts the numeric values of a column in row order,
// skipping missing and non-numeric cells.
func NumericValues(cells []string) []float64 {
	values := make([]float64, 0, len(cells))
	for _, cell := range cells {
		if table.IsMissing(cell) {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	return values
}

// Mode returns the most frequent non-missing value of a column. Ties are
// broken by first occurrence in row order, regardless of value type. The
// second return is false when the column has no non-missing values.
func Mode(cells []string) (string, bool) {
	counts := make(map[string]int, len(cells))
	order := make([]string, 0, len(cells))

	for _, cell := range cells {
		if table.IsMissing(cell) {
			continue
		}
		if counts[cell] == 0 {
			order = append(order, cell)
		}
		counts[cell]++
	}

	best := ""
	bestCount := 0
	for _, v := range order {
		// strictly greater keeps the first-encountered value on ties
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}

	if bestCount == 0 {
		return "", false
	}
	return best, true
}
