// Package policy implements the macro-policy authority the original
// simulation's Government singleton models: fiscal tax rates, a central
// bank interest rate, and a treasury ledger (budget, national debt,
// period spending/revenue), plus the structural macro relationships
// (Phillips curve, Okun's law, quantity theory of money) and the
// stochastic shock catalog it drives (original_source/src/core/Government.h,
// original_source/src/models/*.h).
package policy

// Default calibration, carried over from original_source/src/core/Government.cpp
// and original_source/src/utils/Config.h.
const (
	defaultIncomeTaxRate    = 0.20
	defaultCorporateTaxRate = 0.21
	defaultInterestRate     = 0.05
	defaultBudget           = 1e5

	maxInterestRate = 0.25
)

// Government tracks one world's fiscal and monetary policy state. Unlike
// the original's process-wide singleton, each World owns its own
// instance (spec.md §5 forbids hidden global state).
type Government struct {
	IncomeTaxRate    float64
	CorporateTaxRate float64
	InterestRate     float64

	Budget     float64
	Debt       float64
	Spending   float64
	TaxRevenue float64
}

// NewGovernment returns a Government at the original's default rates,
// with a budget scaled to this world's economy rather than the
// original's real-economy figure (DESIGN.md records this scaling
// decision).
func NewGovernment() *Government {
	return &Government{
		IncomeTaxRate:    defaultIncomeTaxRate,
		CorporateTaxRate: defaultCorporateTaxRate,
		InterestRate:     defaultInterestRate,
		Budget:           defaultBudget,
	}
}

// AdjustTax sets a tax rate, clamped to [0,1]. target selects which
// rate to move: "corporate"/"business", "income"/"personal", or any
// other value (including "") adjusts both (Government::adjustTax).
func (g *Government) AdjustTax(rate float64, target string) {
	rate = clamp(rate, 0, 1)
	switch target {
	case "corporate", "business":
		g.CorporateTaxRate = rate
	case "income", "personal":
		g.IncomeTaxRate = rate
	default:
		g.IncomeTaxRate = rate
		g.CorporateTaxRate = rate
	}
}

// SetInterestRate sets the central bank rate, clamped to [0, 0.25]
// (Government::setInterestRate).
func (g *Government) SetInterestRate(rate float64) {
	g.InterestRate = clamp(rate, 0, maxInterestRate)
}

// CollectTaxes applies the income tax rate to an aggregate income
// figure and deposits the proceeds into the treasury, returning the
// amount collected (Government::collectTaxes).
func (g *Government) CollectTaxes(income float64) float64 {
	collected := income * g.IncomeTaxRate
	g.Budget += collected
	g.TaxRevenue += collected
	return collected
}

// CollectCorporateTax applies the corporate tax rate to an aggregate
// firm-revenue figure. The original has no separate method for this
// (collectTaxes only ever receives worker income); this repo adds the
// corporate leg since firms are a first-class agent here.
func (g *Government) CollectCorporateTax(revenue float64) float64 {
	collected := revenue * g.CorporateTaxRate
	g.Budget += collected
	g.TaxRevenue += collected
	return collected
}

// Spend draws down the treasury, borrowing against the national debt
// once the budget is exhausted (Government::spend).
func (g *Government) Spend(amount float64) {
	if amount > g.Budget {
		g.Debt += amount - g.Budget
		g.Budget = 0
	} else {
		g.Budget -= amount
	}
	g.Spending += amount
}

// GrantStimulus spends amount as fiscal stimulus; mechanically
// identical to Spend, kept as a distinct entry point so callers can
// label the ledger line the way Government::grantStimulus does.
func (g *Government) GrantStimulus(amount float64) {
	g.Spend(amount)
}

// InjectMoney performs quantitative easing: the amount increases the
// national debt exactly as Government::injectMoney's comment states
// ("simplification: money injection increases debt"). The caller is
// responsible for folding amount into the world's own money-supply
// aggregate.
func (g *Government) InjectMoney(amount float64) {
	g.Debt += amount
}

// ResetMonthlyStats zeroes the period tax-revenue/spending counters
// (Government::resetMonthlyStats).
func (g *Government) ResetMonthlyStats() {
	g.TaxRevenue = 0
	g.Spending = 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
