// Package stats provides the shared numeric primitives used by the analytics
// engines. Every function is total over finite inputs, including the empty
// slice: degenerate inputs return 0 rather than NaN.
package stats

import "math"

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// PopulationStdDev returns the population standard deviation around the given
// mean, or 0 for an empty slice.
func PopulationStdDev(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}

// CoefficientOfVariation returns the relative dispersion of values as a
// percentage (stddev/mean x 100). Returns 0 when values is empty or the mean
// is 0, so callers never divide by zero.
func CoefficientOfVariation(values []float64) float64 {
	mean := Mean(values)
	if mean == 0 {
		return 0
	}
	return PopulationStdDev(values, mean) / mean * 100
}

// LinearRegressionSlope returns the ordinary least-squares slope of values
// against their indices 0..n-1. Returns 0 for fewer than 2 points or a
// singular design matrix.
func LinearRegressionSlope(values []float64) float64 {
	slope, _ := LinearRegression(values)
	return slope
}

// LinearRegression computes slope and R-squared for a series of y-values where
// x = 0, 1, 2, ... (the index). R-squared is 1 when the series is constant.
func LinearRegression(values []float64) (slope, rSquared float64) {
	n := float64(len(values))
	if n < 2 {
		return 0, 0
	}
	var sumX, sumY, sumXY, sumX2 float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
	}
	denom := n*sumX2 - sumX*sumX
	if denom == 0 {
		return 0, 0
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	meanY := sumY / n
	var ssRes, ssTot float64
	for i, y := range values {
		predicted := slope*float64(i) + intercept
		ssRes += (y - predicted) * (y - predicted)
		ssTot += (y - meanY) * (y - meanY)
	}
	if ssTot == 0 {
		return slope, 1
	}
	rSquared = 1 - ssRes/ssTot
	return slope, rSquared
}
