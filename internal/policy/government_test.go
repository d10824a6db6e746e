package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustTaxClampsAndTargets(t *testing.T) {
	g := NewGovernment()

	g.AdjustTax(1.5, "corporate")
	assert.Equal(t, 1.0, g.CorporateTaxRate)
	assert.Equal(t, defaultIncomeTaxRate, g.IncomeTaxRate)

	g.AdjustTax(-0.2, "income")
	assert.Equal(t, 0.0, g.IncomeTaxRate)

	g.AdjustTax(0.3, "")
	assert.Equal(t, 0.3, g.IncomeTaxRate)
	assert.Equal(t, 0.3, g.CorporateTaxRate)
}

func TestSetInterestRateClamps(t *testing.T) {
	g := NewGovernment()
	g.SetInterestRate(10)
	assert.Equal(t, maxInterestRate, g.InterestRate)
	g.SetInterestRate(-1)
	assert.Equal(t, 0.0, g.InterestRate)
}

func TestCollectTaxesAccumulatesBudgetAndRevenue(t *testing.T) {
	g := NewGovernment()
	g.IncomeTaxRate = 0.2
	collected := g.CollectTaxes(1000)
	assert.Equal(t, 200.0, collected)
	assert.Equal(t, defaultBudget+200, g.Budget)
	assert.Equal(t, 200.0, g.TaxRevenue)
}

func TestSpendBorrowsOnDeficit(t *testing.T) {
	g := &Government{Budget: 100}
	g.Spend(150)
	assert.Equal(t, 0.0, g.Budget)
	assert.Equal(t, 50.0, g.Debt)
	assert.Equal(t, 150.0, g.Spending)
}

func TestSpendWithinBudget(t *testing.T) {
	g := &Government{Budget: 100}
	g.Spend(40)
	assert.Equal(t, 60.0, g.Budget)
	assert.Equal(t, 0.0, g.Debt)
}

func TestInjectMoneyIncreasesDebtOnly(t *testing.T) {
	g := NewGovernment()
	startBudget := g.Budget
	g.InjectMoney(500)
	assert.Equal(t, 500.0, g.Debt)
	assert.Equal(t, startBudget, g.Budget)
}

func TestResetMonthlyStats(t *testing.T) {
	g := NewGovernment()
	g.CollectTaxes(1000)
	g.Spend(50)
	g.ResetMonthlyStats()
	assert.Equal(t, 0.0, g.TaxRevenue)
	assert.Equal(t, 0.0, g.Spending)
}

func TestPhillipsCurveAtNaturalRateReturnsExpected(t *testing.T) {
	got := Inflation(NaturalUnemployment, NaturalUnemployment, 0.02)
	assert.InDelta(t, 0.02, got, 1e-9)
}

func TestPhillipsCurveFloorsAtDeflationLimit(t *testing.T) {
	got := Inflation(0.9, NaturalUnemployment, 0.02)
	assert.Equal(t, inflationFloor, got)
}

func TestAdaptiveExpectationMovesTowardActual(t *testing.T) {
	got := AdaptiveExpectation(0.02, 0.06, 0.5)
	assert.InDelta(t, 0.04, got, 1e-9)
}

func TestOkunPotentialGdpAtNaturalRateEqualsActual(t *testing.T) {
	got := PotentialGDP(1000, NaturalUnemployment, NaturalUnemployment)
	assert.InDelta(t, 1000, got, 1e-9)
}

func TestOkunGdpGapZeroWhenPotentialNonPositive(t *testing.T) {
	assert.Equal(t, 0.0, GDPGap(1000, 0))
}

func TestQuantityTheoryPriceLevel(t *testing.T) {
	got := PriceLevel(1000, 2, 500)
	assert.InDelta(t, 4, got, 1e-9)
}

func TestQuantityTheoryPriceLevelGuardsZeroOutput(t *testing.T) {
	assert.Equal(t, 1.0, PriceLevel(1000, 2, 0))
}

func TestGetShockEffectPandemicReducesGdpAndRaisesUnemployment(t *testing.T) {
	eff := GetShockEffect(Pandemic, 1.0)
	assert.InDelta(t, 0.9, eff.GDPImpact, 1e-9)
	assert.InDelta(t, 0.05, eff.UnemploymentImpact, 1e-9)
}

func TestGetShockEffectClampsSeverity(t *testing.T) {
	low := GetShockEffect(TechBoom, -5)
	high := GetShockEffect(TechBoom, 100)
	assert.InDelta(t, GetShockEffect(TechBoom, 0.1).GDPImpact, low.GDPImpact, 1e-9)
	assert.InDelta(t, GetShockEffect(TechBoom, 2.0).GDPImpact, high.GDPImpact, 1e-9)
}

func TestGetShockEffectUnknownTypeIsNeutral(t *testing.T) {
	eff := GetShockEffect(ShockType("trade_war"), 1.0)
	assert.Equal(t, 1.0, eff.GDPImpact)
	assert.Equal(t, 1.0, eff.WealthImpact)
	assert.Equal(t, 0.0, eff.UnemploymentImpact)
}
