package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shafin2954/cppConomy-sub000/internal/curve"
)

func TestNewFloorsInitialPrice(t *testing.T) {
	m := New(1, 0.01)
	assert.Equal(t, minPrice, m.Price)
}

func TestClearAndRecordOverwritesPriceWhenCurvesNonTrivial(t *testing.T) {
	m := New(1, 10)
	m.RefreshAggregates(
		[]curve.Demand{{Intercept: 100, Slope: 1.5}},
		[]curve.Supply{{Intercept: 20, Slope: 1.0}},
	)
	eq := m.ClearAndRecord()
	require.True(t, eq.Ok)
	assert.InDelta(t, eq.Price, m.Price, 1e-9)
}

func TestClearAndRecordLeavesPriceWhenDegenerate(t *testing.T) {
	m := New(1, 42)
	m.RefreshAggregates(nil, nil)
	m.ClearAndRecord()
	assert.Equal(t, 42.0, m.Price)
}

// TestTatonnementMonotonicity checks testable property 5 for positive
// excess demand: the price rises. The falling and no-op cases are
// covered by the two tests below.
func TestTatonnementMonotonicity(t *testing.T) {
	m := New(1, 50)
	m.Demand = curve.Demand{Intercept: 200, Slope: 1}
	m.Supply = curve.Supply{Intercept: 10, Slope: 1}

	before := m.Price
	m.AdjustPrice()
	assert.Greater(t, m.Price, before)
}

func TestTatonnementMovesDownOnNegativeExcessDemand(t *testing.T) {
	m := New(1, 50)
	m.Demand = curve.Demand{Intercept: 60, Slope: 1}
	m.Supply = curve.Supply{Intercept: 10, Slope: 1}

	before := m.Price
	m.AdjustPrice()
	assert.Less(t, m.Price, before)
}

func TestTatonnementNoOpWhenBothQuantitiesZero(t *testing.T) {
	m := New(1, 50)
	m.Demand = curve.Demand{}
	m.Supply = curve.Supply{}

	before := m.Price
	m.AdjustPrice()
	assert.Equal(t, before, m.Price)
}

func TestRecordHistoryBoundedAtLimit(t *testing.T) {
	m := New(1, 10)
	for i := 0; i < historyLimit+10; i++ {
		m.RecordHistory()
	}
	assert.Len(t, m.History, historyLimit)
}
