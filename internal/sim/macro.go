package sim

// defaultExpectedInflation seeds adaptive inflation expectations at
// original_source/src/utils/Config.h's EXPECTED_INFLATION.
const defaultExpectedInflation = 0.02

// MacroStats is the per-day macroeconomic snapshot computed in phase 5
// of pass_day (spec.md §4.6), enriched with the macro-policy indicators
// phase 9 (internal/sim/policy.go) computes on top of it.
type MacroStats struct {
	GDP          float64
	Employment   int
	LaborForce   int
	Unemployment float64
	MoneySupply  float64
	Population   int
	FirmCount    int

	// Inflation, CPI, InterestRate, Debt, Budget, TaxRevenue, and Gini
	// are the macro-policy supplement (SPEC_FULL.md): Phillips-curve
	// inflation, a quantity-theory price level, the government's
	// current policy rate and ledger, and a wealth-inequality statistic
	// over living agents' savings.
	Inflation    float64
	CPI          float64
	InterestRate float64
	Debt         float64
	Budget       float64
	TaxRevenue   float64
	Gini         float64
}

// computeMacro rebuilds the macro snapshot from current world state and
// the GDP accumulated from this tick's post-agent market clearing.
func (w *World) computeMacro(gdp float64) MacroStats {
	employment := 0
	for _, f := range w.Firms {
		employment += len(f.Workers)
	}

	laborForce := len(w.Laborers)
	unemployment := 0.0
	if laborForce > 0 {
		unemployment = float64(laborForce-employment) / float64(laborForce)
	}

	moneySupply := 0.0
	for _, c := range w.Consumers {
		moneySupply += c.Savings
	}
	for _, l := range w.Laborers {
		moneySupply += l.Savings
	}
	for _, fa := range w.Farmers {
		moneySupply += fa.Savings
	}
	for _, fm := range w.Firms {
		moneySupply += fm.Cash
	}

	population := len(w.Consumers) + len(w.Laborers) + len(w.Farmers)

	return MacroStats{
		GDP:          gdp,
		Employment:   employment,
		LaborForce:   laborForce,
		Unemployment: unemployment,
		MoneySupply:  moneySupply,
		Population:   population,
		FirmCount:    len(w.Firms),
	}
}

// GDPPerCapita returns the GDP-per-capita estimate consumer daily
// updates use (spec.md §4.2 inputs).
func (w *World) GDPPerCapita() float64 {
	pop := len(w.Consumers) + len(w.Laborers) + len(w.Farmers)
	if pop == 0 {
		return 1
	}
	return w.Macro.GDP / float64(pop)
}
