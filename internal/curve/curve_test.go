package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario S1: a single demand/supply pair clears at a known price and
// quantity.
func TestSolveScenarioS1(t *testing.T) {
	d := Demand{Intercept: 100, Slope: 1.5}
	s := Supply{Intercept: 20, Slope: 1.0}

	eq := Solve(d, s)
	require.True(t, eq.Ok)
	assert.InDelta(t, 32.0, eq.Quantity, 0.5)
	assert.InDelta(t, 52.0, eq.Price, 1.0)
}

func TestSolveDegenerateWhenSlopesVanish(t *testing.T) {
	eq := Solve(Demand{Intercept: 50, Slope: 0}, Supply{Intercept: 10, Slope: 0})
	assert.False(t, eq.Ok)
}

func TestSolveDegenerateWhenQuantityNonPositive(t *testing.T) {
	// Supply intercept above demand intercept: no positive quantity clears.
	eq := Solve(Demand{Intercept: 10, Slope: 1}, Supply{Intercept: 50, Slope: 1})
	assert.False(t, eq.Ok)
}

// TestAggregationIdentity checks testable property 1: aggregating two
// identical lines halves the slope and leaves the intercept unchanged
// relative to any one line (horizontal summation).
func TestAggregationIdentity(t *testing.T) {
	line := Demand{Intercept: 60, Slope: 2}
	agg, ok := AggregateDemand([]Demand{line, line})
	require.True(t, ok)
	assert.InDelta(t, 60, agg.Intercept, 1e-9)
	assert.InDelta(t, 1, agg.Slope, 1e-9)
}

func TestAggregateDemandExcludesDegenerateLines(t *testing.T) {
	agg, ok := AggregateDemand([]Demand{
		{Intercept: 10, Slope: 0},
		{Intercept: 40, Slope: 2},
	})
	require.True(t, ok)
	assert.InDelta(t, 40, agg.Intercept, 1e-9)
	assert.InDelta(t, 2, agg.Slope, 1e-9)
}

func TestAggregateDemandEmptyIsNotOk(t *testing.T) {
	_, ok := AggregateDemand(nil)
	assert.False(t, ok)
}

// Scenario S2: three farmers with distinct supply lines aggregate to a
// known combined line.
func TestAggregateSupplyScenarioS2(t *testing.T) {
	lines := []Supply{
		{Intercept: 10, Slope: 2},
		{Intercept: 15, Slope: 4},
		{Intercept: 20, Slope: 8},
	}
	agg, ok := AggregateSupply(lines)
	require.True(t, ok)
	assert.InDelta(t, 1.0/(1.0/2+1.0/4+1.0/8), agg.Slope, 1e-9)
	expectedIntercept := (10.0/2 + 15.0/4 + 20.0/8) * agg.Slope
	assert.InDelta(t, expectedIntercept, agg.Intercept, 1e-9)
}

func TestDemandQuantityFloorsAtZero(t *testing.T) {
	d := Demand{Intercept: 10, Slope: 1}
	assert.Equal(t, 0.0, d.Quantity(20))
}

func TestSupplyQuantityFloorsAtZero(t *testing.T) {
	s := Supply{Intercept: 20, Slope: 1}
	assert.Equal(t, 0.0, s.Quantity(5))
}

func TestConsumerSurplusAtMarketPrice(t *testing.T) {
	d := Demand{Intercept: 40, Slope: 2}
	// Q* at price 10 is (40-10)/2 = 15; surplus = 0.5*(40-10)*15 = 225.
	assert.InDelta(t, 225.0, ConsumerSurplus(d, 10), 1e-9)
}

func TestConsumerSurplusDegenerateSlope(t *testing.T) {
	assert.Equal(t, 0.0, ConsumerSurplus(Demand{Intercept: 40, Slope: 0}, 10))
}
