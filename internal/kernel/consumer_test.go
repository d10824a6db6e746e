package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shafin2954/cppConomy-sub000/internal/catalog"
	"github.com/Shafin2954/cppConomy-sub000/internal/curve"
)

func newTestCatalog() (*catalog.Catalog, catalog.ProductID) {
	cat := catalog.New()
	rice := cat.Register(catalog.Product{Name: "rice", DecayRate: 0.05, Elasticity: 0.15, BaseConsumption: 3.0})
	return cat, rice
}

func TestWTPFloorsAtPriceFloor(t *testing.T) {
	c := NewConsumer(1, "Test", 0, 100, 100)
	c.AddNeed(1, curve.Demand{Intercept: 5, Slope: 2})
	c.Consumed[1] = 10 // drives WTP negative
	assert.InDelta(t, priceFloor, c.WTP(1), 1e-9)
}

func TestApplyPriceShockDampensInterceptAboveThreshold(t *testing.T) {
	c := NewConsumer(1, "Test", 0, 100, 100)
	c.AddNeed(1, curve.Demand{Intercept: 10, Slope: 1})
	prices := map[catalog.ProductID]float64{1: 13} // 13/10 = 1.3 > 1.2
	c.ApplyPriceShock(prices)
	assert.InDelta(t, 9.5, c.DemandLines[1].Intercept, 1e-9)
}

func TestApplyPriceShockNoOpBelowThreshold(t *testing.T) {
	c := NewConsumer(1, "Test", 0, 100, 100)
	c.AddNeed(1, curve.Demand{Intercept: 10, Slope: 1})
	prices := map[catalog.ProductID]float64{1: 11} // 1.1 < 1.2
	c.ApplyPriceShock(prices)
	assert.InDelta(t, 10, c.DemandLines[1].Intercept, 1e-9)
}

// TestBudgetConstraint checks testable property 3: expenses never exceed
// budgetShare of daily income for a single need (absent a price floor
// override).
func TestBudgetConstraint(t *testing.T) {
	cat, rice := newTestCatalog()
	c := NewConsumer(1, "Test", 0, 50, 100)
	c.AddNeed(rice, curve.Demand{Intercept: 20, Slope: 1})

	prices := map[catalog.ProductID]float64{rice: 20}
	c.UpdateDaily(cat, rice, 100, prices)

	assert.LessOrEqual(t, c.LastExpenses, budgetShare*100+1e-6)
}

func TestUpdateDailyAgesAndAccumulatesSavings(t *testing.T) {
	cat, rice := newTestCatalog()
	c := NewConsumer(1, "Test", 0, 1000, 50)
	c.AddNeed(rice, curve.Demand{Intercept: 20, Slope: 1})
	prices := map[catalog.ProductID]float64{rice: 5}

	startSavings := c.Savings
	c.UpdateDaily(cat, rice, 100, prices)

	require.Equal(t, 1, c.AgeDays)
	assert.InDelta(t, startSavings+c.DailyIncome-c.LastExpenses, c.Savings, 1e-6)
}

func TestConsumerSurplusMatchesCurvePackage(t *testing.T) {
	c := NewConsumer(1, "Test", 0, 100, 100)
	c.AddNeed(1, curve.Demand{Intercept: 40, Slope: 2})
	assert.InDelta(t, curve.ConsumerSurplus(curve.Demand{Intercept: 40, Slope: 2}, 10), c.ConsumerSurplus(1, 10), 1e-9)
}
