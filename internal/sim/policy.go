package sim

import (
	"github.com/Shafin2954/cppConomy-sub000/internal/firm"
	"github.com/Shafin2954/cppConomy-sub000/internal/policy"
	"github.com/Shafin2954/cppConomy-sub000/internal/statistics"
)

// applyMacroPolicy is phase 9 of the per-day schedule: a macro-policy
// supplement beyond spec.md §4.6's original eight phases (SPEC_FULL.md).
// It collects the government's taxes against this tick's income and
// firm revenue, rolls the Phillips-curve/quantity-theory indicators and
// a wealth-inequality statistic into Macro, and may fire a stochastic
// shock.
func (w *World) applyMacroPolicy() {
	gov := w.Government

	totalIncome := 0.0
	for _, c := range w.Consumers {
		totalIncome += c.DailyIncome
	}
	for _, l := range w.Laborers {
		totalIncome += l.DailyIncome
	}
	for _, f := range w.Farmers {
		totalIncome += f.DailyIncome
	}
	gov.CollectTaxes(totalIncome)

	totalRevenue := 0.0
	for _, fm := range w.Firms {
		totalRevenue += fm.Costs.Q * w.maxPriceAcross(fm.Outputs)
	}
	gov.CollectCorporateTax(totalRevenue)

	actualInflation := policy.Inflation(w.Macro.Unemployment, policy.NaturalUnemployment, w.ExpectedInflation)
	w.ExpectedInflation = policy.AdaptiveExpectation(w.ExpectedInflation, actualInflation, 0.3)

	w.Macro.Inflation = actualInflation
	w.Macro.CPI = policy.PriceLevel(w.Macro.MoneySupply, policy.MoneyVelocity, w.Macro.GDP)
	w.Macro.InterestRate = gov.InterestRate
	w.Macro.Debt = gov.Debt
	w.Macro.Budget = gov.Budget
	w.Macro.TaxRevenue = gov.TaxRevenue
	w.Macro.Gini = w.wealthGini()

	if w.RNG.Bool(policy.ShockProbability) {
		t := policy.ShockTypes[w.RNG.Intn(len(policy.ShockTypes))]
		severity := w.RNG.Uniform(0.5, 1.5)
		w.ApplyShock(t, severity)
	}
}

// wealthGini computes the Gini coefficient of inequality over every
// living household agent's savings (CLI.cpp's "Gini Coefficient" status
// line, backed by utils/Statistics.h's giniCoefficient).
func (w *World) wealthGini() float64 {
	wealth := make([]float64, 0, len(w.Consumers)+len(w.Laborers)+len(w.Farmers))
	for _, c := range w.Consumers {
		wealth = append(wealth, c.Savings)
	}
	for _, l := range w.Laborers {
		wealth = append(wealth, l.Savings)
	}
	for _, f := range w.Farmers {
		wealth = append(wealth, f.Savings)
	}
	return statistics.GiniCoefficient(wealth)
}

// ApplyShock applies one stochastic macro shock's effect to the world:
// wealth impact scales every agent's and firm's cash, productivity
// impact scales Cobb-Douglas firms' total factor productivity,
// unemployment impact fires a proportional share of the workforce, and
// inflation impact folds directly into inflation expectations (grounded
// on original_source/src/models/StochasticShock.h; the original's
// apply* methods are stubs deferring to "the economy's tick loop", so
// the mapping onto this world's concrete agent/firm state is this
// repo's own — see DESIGN.md).
func (w *World) ApplyShock(t policy.ShockType, severity float64) {
	eff := policy.GetShockEffect(t, severity)

	for _, c := range w.Consumers {
		c.Savings *= eff.WealthImpact
	}
	for _, l := range w.Laborers {
		l.Savings *= eff.WealthImpact
	}
	for _, f := range w.Farmers {
		f.Savings *= eff.WealthImpact
	}
	for _, fm := range w.Firms {
		fm.Cash *= eff.WealthImpact
		if fm.Production.Kind == firm.CobbDouglas {
			fm.Production.A *= eff.ProductivityImpact
		}
		fm.RecomputeCosts()
	}

	if eff.UnemploymentImpact > 0 {
		toFire := int(eff.UnemploymentImpact * float64(len(w.Laborers)))
		fired := 0
		for _, fm := range w.Firms {
			for fired < toFire && len(fm.Workers) > 0 {
				wk, ok := fm.Fire()
				if !ok {
					break
				}
				if l, ok := w.laborerByID(wk.LaborerID); ok {
					l.IsHired = false
					l.Employer = 0
				}
				fired++
			}
		}
	}

	w.ExpectedInflation += eff.InflationImpact
	w.LastShockType = string(t)
	w.LastShockDay = w.Day
}

// --- Government commands (macro-policy supplement, spec.md §6-adjacent) ---

// GovTax adjusts the income and/or corporate tax rate. A rate outside
// [0,1] is rejected with a range error. target is "income"/"personal",
// "corporate"/"business", or "all" for both (Government::adjustTax).
func (w *World) GovTax(rate float64, target string) error {
	if rate < 0 || rate > 1 {
		return errRange("tax rate must be in [0,1], got %v", rate)
	}
	w.Government.AdjustTax(rate, target)
	return nil
}

// GovInterestRate sets the central bank policy rate. A rate outside
// [0, 0.25] is rejected with a range error (Government::setInterestRate).
func (w *World) GovInterestRate(rate float64) error {
	if rate < 0 || rate > 0.25 {
		return errRange("interest rate must be in [0,0.25], got %v", rate)
	}
	w.Government.SetInterestRate(rate)
	return nil
}

// GovStimulus grants a fiscal stimulus of the given amount, borrowing
// against the national debt if it exceeds the treasury's budget
// (Government::grantStimulus).
func (w *World) GovStimulus(amount float64) error {
	if amount < 0 {
		return errRange("stimulus amount must be >= 0, got %v", amount)
	}
	w.Government.GrantStimulus(amount)
	return nil
}

// TriggerShock manually applies one of the named stochastic macro
// shocks at the given severity.
func (w *World) TriggerShock(name string, severity float64) error {
	for _, t := range policy.ShockTypes {
		if string(t) == name {
			w.ApplyShock(t, severity)
			return nil
		}
	}
	return errNotFound("unknown shock type %q", name)
}
