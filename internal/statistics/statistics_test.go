package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanAndVarianceEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Variance([]float64{5}))
}

func TestMedianOddAndEven(t *testing.T) {
	assert.Equal(t, 3.0, Median([]float64{5, 1, 3, 2, 4}))
	assert.InDelta(t, 2.5, Median([]float64{1, 2, 3, 4}), 1e-9)
}

func TestGiniPerfectEquality(t *testing.T) {
	data := []float64{100, 100, 100, 100}
	assert.InDelta(t, 0, GiniCoefficient(data), 1e-9)
}

func TestGiniMaximalInequality(t *testing.T) {
	data := []float64{0, 0, 0, 100}
	g := GiniCoefficient(data)
	assert.Greater(t, g, 0.7)
}

func TestGiniEmptyIsZero(t *testing.T) {
	assert.Equal(t, 0.0, GiniCoefficient(nil))
}

func TestGiniAllZeroIsZero(t *testing.T) {
	assert.Equal(t, 0.0, GiniCoefficient([]float64{0, 0, 0}))
}

func TestPercentileMatchesMedianAtP50(t *testing.T) {
	data := []float64{10, 20, 30, 40}
	assert.InDelta(t, Median(data), Percentile(data, 50), 1e-9)
}
