package summary

import (
	"fmt"
	"strings"
)

// Summary is the fixed-shape descriptive statistics record for one column.
// Statistical measures are computed over the column's non-missing numeric
// values; Mode is the most frequent non-missing raw value with ties broken
// by first occurrence in row order.
type Summary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`

	// Mode is absent (HasMode false) when the column is entirely missing.
	Mode    string `json:"mode,omitempty"`
	HasMode bool   `json:"has_mode"`
}

// Header is the first line of the text artifact.
const Header = "Summary statistics"

// Render serializes the summary into the stable text artifact format:
// the header line, the statistic block as label:value lines, a blank
// line, then the mode line.
func (s Summary) Render() string {
	var b strings.Builder

	b.WriteString(Header + "\n")
	fmt.Fprintf(&b, "count: %d\n", s.Count)
	fmt.Fprintf(&b, "mean: %f\n", s.Mean)
	fmt.Fprintf(&b, "std: %f\n", s.Std)
	fmt.Fprintf(&b, "min: %f\n", s.Min)
	fmt.Fprintf(&b, "25%%: %f\n", s.Q25)
	fmt.Fprintf(&b, "50%%: %f\n", s.Median)
	fmt.Fprintf(&b, "75%%: %f\n", s.Q75)
	fmt.Fprintf(&b, "max: %f\n", s.Max)
	b.WriteString("\n")

	if s.HasMode {
		fmt.Fprintf(&b, "Mode: %s\n", s.Mode)
	} else {
		b.WriteString("Mode: n/a\n")
	}

	return b.String()
}
