package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shafin2954/cppConomy-sub000/internal/catalog"
)

const rice catalog.ProductID = 1

// TestFarmerSupplyCurveScenarioS3 reproduces the spec's rice supply-curve
// worked example: base cost 37, base slope 0.22, land 5 (no small-farm
// penalty), tech 0.6, weather 0.7, tax 0.05, giving c = 33.7.
func TestFarmerSupplyCurveScenarioS3(t *testing.T) {
	f := NewFarmer(1, "Test", 0, 500, 300, 5, 0.6, 0.05)
	f.Weather = 0.7
	f.AddCrop(rice, 0.5, 0.05, 40, 37, 0.22)

	line := f.SupplyLines[rice]

	smallFarmPenalty := 0.0
	techDiscount := -8 * 0.6
	weatherPenalty := 10 * max(0, 0.65-0.7)
	taxPenalty := 30 * 0.05
	wantC := 37 + smallFarmPenalty + techDiscount + weatherPenalty + taxPenalty
	wantM := 0.22 + 0.18/5 + 0.06*(1-0.6)

	assert.InDelta(t, wantC, line.Intercept, 1e-9)
	assert.InDelta(t, wantM, line.Slope, 1e-9)
}

func TestFarmerSupplyCurveSmallFarmPenalty(t *testing.T) {
	f := NewFarmer(1, "Smallholder", 0, 500, 300, 1, 0, 0)
	f.Weather = 1
	f.AddCrop(rice, 0.5, 0.05, 40, 37, 0.22)

	line := f.SupplyLines[rice]
	wantC := 37 + 2.5*(3-1) // land=1 < 3
	assert.InDelta(t, wantC, line.Intercept, 1e-9)
}

func TestFarmerSupplyCurveFloors(t *testing.T) {
	// Extreme tech discount should floor the intercept at 8, and slope at
	// 0.08, never going negative.
	f := NewFarmer(1, "Techie", 0, 500, 300, 100, 1, 0)
	f.Weather = 1
	f.AddCrop(rice, 0.5, 0.05, 40, 5, 0.01)

	line := f.SupplyLines[rice]
	assert.GreaterOrEqual(t, line.Intercept, 8.0)
	assert.GreaterOrEqual(t, line.Slope, 0.08)
}

func TestSupplyQuantityZeroBelowMarginalCost(t *testing.T) {
	f := NewFarmer(1, "Test", 0, 500, 300, 5, 0.5, 0.05)
	f.Weather = 0.8
	f.AddCrop(rice, 0.5, 0.05, 40, 37, 0.22)

	mcEff := f.SupplyLines[rice].Intercept + f.Tax - 2*f.Tech
	assert.Equal(t, 0.0, f.SupplyQuantity(rice, mcEff))
	assert.Equal(t, 0.0, f.SupplyQuantity(rice, mcEff-1))
}

func TestSupplyQuantityCapsAtMaxOutput(t *testing.T) {
	f := NewFarmer(1, "Test", 0, 500, 300, 5, 0.5, 0.05)
	f.Weather = 0.8
	f.AddCrop(rice, 0.5, 0.05, 1, 37, 0.22) // tiny maxOutput

	q := f.SupplyQuantity(rice, 500) // very high price would imply huge Q
	assert.Equal(t, f.MaxOutput[rice], q)
}

func TestEffectiveSupplyLineMatchesSupplyQuantityFormula(t *testing.T) {
	f := NewFarmer(1, "Test", 0, 500, 300, 5, 0.5, 0.05)
	f.Weather = 0.8
	f.AddCrop(rice, 0.5, 0.05, 40, 37, 0.22)

	line, ok := f.EffectiveSupplyLine(rice)
	require.True(t, ok)

	price := 60.0
	want := (price - line.Intercept) / line.Slope
	if want < 0 {
		want = 0
	}
	assert.InDelta(t, want, f.SupplyQuantity(rice, price), 1e-9)
}

func TestEvolveCropsGrowsAndDecays(t *testing.T) {
	f := NewFarmer(1, "Test", 0, 500, 300, 5, 0.5, 0.05)
	f.Weather = 0.5
	f.AddCrop(rice, 2.0, 1.0, 10, 37, 0.22)

	f.EvolveCrops()
	assert.InDelta(t, 10+2.0-1.0*0.5, f.MaxOutput[rice], 1e-9)
}

func TestEvolveCropsFloorsAtZero(t *testing.T) {
	f := NewFarmer(1, "Test", 0, 500, 300, 5, 0.5, 0.05)
	f.Weather = 1
	f.AddCrop(rice, 0, 100, 1, 37, 0.22)

	f.EvolveCrops()
	assert.Equal(t, 0.0, f.MaxOutput[rice])
}

func TestUpgradeTechRederivesSupplyCurve(t *testing.T) {
	f := NewFarmer(1, "Test", 0, 500, 300, 5, 0.2, 0.05)
	f.AddCrop(rice, 0.5, 0.05, 40, 37, 0.22)
	before := f.SupplyLines[rice].Intercept

	f.UpgradeTech(0.8)
	after := f.SupplyLines[rice].Intercept

	assert.Less(t, after, before)
}
