// Package statistics implements the descriptive-statistics helpers the
// original simulation's utils/Statistics.h provides, used here for
// wealth-inequality reporting (spec.md's macro aggregates never named
// this, but CLI.cpp surfaces it as a standard status line; see
// SPEC_FULL.md's macro-policy supplement).
package statistics

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean of data, or 0 for an empty slice.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// Variance returns the sample (Bessel-corrected) variance, or 0 for
// fewer than two observations.
func Variance(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	m := Mean(data)
	sum := 0.0
	for _, v := range data {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(data)-1)
}

// StdDev returns the sample standard deviation.
func StdDev(data []float64) float64 {
	return math.Sqrt(Variance(data))
}

// Median returns the middle value of data (averaging the two central
// values for an even-length slice), or 0 for an empty slice. data is
// not mutated.
func Median(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := sortedCopy(data)
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the linearly-interpolated p-th percentile (0-100)
// of data, or 0 for an empty slice.
func Percentile(data []float64, p float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := sortedCopy(data)
	idx := (p / 100.0) * float64(len(sorted)-1)
	lower := int(idx)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	frac := idx - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

// GiniCoefficient returns the Gini coefficient of inequality over data
// (0 = perfect equality, approaching 1 = maximal inequality), using the
// same sort-and-weight formula as utils/Statistics.h's giniCoefficient.
// Returns 0 for an empty slice or when every value sums to zero.
func GiniCoefficient(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := sortedCopy(data)
	n := float64(len(sorted))
	sum, cumSum := 0.0, 0.0
	for i, v := range sorted {
		cumSum += v
		sum += (2*float64(i+1) - n - 1) * v
	}
	if cumSum == 0 {
		return 0
	}
	return sum / (n * cumSum)
}

func sortedCopy(data []float64) []float64 {
	out := make([]float64, len(data))
	copy(out, data)
	sort.Float64s(out)
	return out
}
