package describe

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// DistributionMarkers captures distribution shape diagnostics for a column.
// They are reported on the debug channel alongside the Summary and never
// appear in the text artifact.
type DistributionMarkers struct {
	Skewness     float64
	Kurtosis     float64
	OutlierCount int
	IsNormal     bool
	ShapiroP     float64
}

// Distribution computes shape diagnostics over a column's numeric values.
// Fewer than three values yields zero markers.
func Distribution(values []float64) DistributionMarkers {
	markers := DistributionMarkers{}
	if len(values) < 3 {
		return markers
	}

	data := stats.Float64Data(values)
	mean, err := stats.Mean(data)
	if err != nil {
		return markers
	}
	stdDev, err := stats.StandardDeviation(data)
	if err != nil || stdDev == 0 {
		return markers
	}

	markers.Skewness = sampleSkewness(values, mean, stdDev)
	markers.Kurtosis = sampleKurtosis(values, mean, stdDev)
	markers.IsNormal, markers.ShapiroP = approximateNormality(markers.Skewness, markers.Kurtosis)

	q25, err1 := stats.Percentile(data, 25)
	q75, err2 := stats.Percentile(data, 75)
	if err1 == nil && err2 == nil {
		markers.OutlierCount = countOutliers(values, q25, q75)
	}

	return markers
}

// sampleSkewness computes sample skewness using the adjusted Fisher-Pearson coefficient
func sampleSkewness(values []float64, mean, stdDev float64) float64 {
	if len(values) < 3 {
		return 0
	}

	n := float64(len(values))
	sumCubed := 0.0
	for _, x := range values {
		d := (x - mean) / stdDev
		sumCubed += d * d * d
	}

	skewness := sumCubed / n

	// Bias correction for sample skewness
	correction := math.Sqrt(n*(n-1)) / (n - 2)
	return skewness * correction
}

// sampleKurtosis computes sample kurtosis (not excess)
func sampleKurtosis(values []float64, mean, stdDev float64) float64 {
	if len(values) < 4 {
		return 0
	}

	n := float64(len(values))
	sumFourth := 0.0
	for _, x := range values {
		d := (x - mean) / stdDev
		sumFourth += d * d * d * d
	}

	kurtosis := sumFourth / n
	excess := kurtosis - 3

	if n > 3 {
		correction := (n - 1) / ((n - 2) * (n - 3))
		excess = excess*correction + 6/(n+1)
	}

	return excess + 3
}

// approximateNormality runs a simplified skewness/kurtosis based normality
// check with a chi-squared p-value approximation.
func approximateNormality(skewness, kurtosis float64) (isNormal bool, pValue float64) {
	testStat := math.Abs(skewness) + math.Abs(kurtosis-3)/2

	chiDist := distuv.ChiSquared{K: 2}
	pValue = 1 - chiDist.CDF(testStat*testStat)

	return pValue > 0.05, pValue
}

// countOutliers counts values outside the 1.5*IQR fences
func countOutliers(values []float64, q25, q75 float64) int {
	iqr := q75 - q25
	lower := q25 - 1.5*iqr
	upper := q75 + 1.5*iqr

	count := 0
	for _, x := range values {
		if x < lower || x > upper {
			count++
		}
	}
	return count
}
