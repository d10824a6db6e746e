package sim

import (
	"github.com/Shafin2954/cppConomy-sub000/internal/agents"
	"github.com/Shafin2954/cppConomy-sub000/internal/catalog"
	"github.com/Shafin2954/cppConomy-sub000/internal/curve"
	"github.com/Shafin2954/cppConomy-sub000/internal/firm"
)

// maxFastForwardDays bounds the n-day fast-forward argument to pass_day
// (spec.md §6: "1 <= n <= 365").
const maxFastForwardDays = 365

// PassDay advances the world by n days (default 1), running the eight
// phases from spec.md §4.6 plus the macro-policy phase 9 once per day,
// in order, with no concurrency (spec.md §5).
func (w *World) PassDay(n int) error {
	if n <= 0 || n > maxFastForwardDays {
		return errRange("day count must be in [1,%d], got %d", maxFastForwardDays, n)
	}
	for i := 0; i < n; i++ {
		w.passOneDay()
	}
	return nil
}

func (w *World) passOneDay() {
	w.Day++

	// Phase 1: pre-price clearing.
	w.clearAllMarkets()

	// Phase 2: agent day.
	gdpPerCapita := w.GDPPerCapita()
	prices := w.PriceMap()
	w.runAgentDay(gdpPerCapita, prices)

	// Phase 3: post-agent clearing.
	equilibria := w.clearAllMarkets()

	// Phase 4: firm cost pass + auto-optimization.
	w.runFirmPass()

	// Phase 5: macro aggregates.
	gdp := 0.0
	for _, m := range w.Markets {
		gdp += m.Price * equilibria[m.Product].Quantity
	}
	w.Macro = w.computeMacro(gdp)

	// Phase 6: tâtonnement.
	for _, m := range w.Markets {
		m.AdjustPrice()
	}

	// Phase 7: income jitter.
	w.runIncomeJitter()

	// Phase 8: periodic demand shock.
	if w.Day%7 == 0 {
		w.runDemandShock()
	}

	// Phase 9: macro policy (tax collection, inflation/CPI, inequality,
	// stochastic shocks) — a supplement beyond spec.md's original eight
	// phases (SPEC_FULL.md).
	w.applyMacroPolicy()
}

// clearAllMarkets re-aggregates and clears every market, appending to
// history, and returns each market's equilibrium keyed by product
// (spec.md §4.6 phases 1 and 3 share this logic).
func (w *World) clearAllMarkets() map[catalog.ProductID]curve.Equilibrium {
	out := make(map[catalog.ProductID]curve.Equilibrium, len(w.Markets))
	for _, m := range w.Markets {
		demands := w.collectDemand(m.Product)
		supplies := w.collectSupply(m.Product)
		m.RefreshAggregates(demands, supplies)
		out[m.Product] = m.ClearAndRecord()
		m.RecordHistory()
	}
	return out
}

// collectDemand gathers every consumer/laborer/farmer demand line for a
// product (spec.md §4.5 refresh_aggregates).
func (w *World) collectDemand(id catalog.ProductID) []curve.Demand {
	var lines []curve.Demand
	for _, c := range w.Consumers {
		if c.Alive {
			if d, ok := c.DemandLines[id]; ok {
				lines = append(lines, d)
			}
		}
	}
	for _, f := range w.Farmers {
		if f.Alive {
			if d, ok := f.DemandLines[id]; ok {
				lines = append(lines, d)
			}
		}
	}
	for _, l := range w.Laborers {
		if l.Alive {
			if d, ok := l.DemandLines[id]; ok {
				lines = append(lines, d)
			}
		}
	}
	return lines
}

// collectSupply gathers every farmer (effective, weather-adjusted) and
// firm (cost-derived) supply line for a product.
func (w *World) collectSupply(id catalog.ProductID) []curve.Supply {
	var lines []curve.Supply
	for _, f := range w.Farmers {
		if !f.Alive {
			continue
		}
		for _, crop := range f.Crops {
			if crop != id {
				continue
			}
			if s, ok := f.EffectiveSupplyLine(crop); ok {
				lines = append(lines, s)
			}
		}
	}
	for _, fm := range w.Firms {
		produces := false
		for _, out := range fm.Outputs {
			if out == id {
				produces = true
				break
			}
		}
		if !produces {
			continue
		}
		if s, ok := fm.DerivedSupplyLine(); ok {
			lines = append(lines, s)
		}
	}
	return lines
}

// runAgentDay applies the price shock rule then the daily update to
// every consumer, farmer, then laborer, in each population's insertion
// order (spec.md §4.6 phase 2).
func (w *World) runAgentDay(gdpPerCapita float64, prices map[catalog.ProductID]float64) {
	for _, c := range w.Consumers {
		if !c.Alive {
			continue
		}
		c.ApplyPriceShock(prices)
		c.UpdateDaily(w.Catalog, w.Staple, gdpPerCapita, prices)
	}
	for _, f := range w.Farmers {
		if !f.Alive {
			continue
		}
		f.ApplyPriceShock(prices)
		f.UpdateDaily(w.Catalog, w.Staple, gdpPerCapita, prices, w.RNG.Float64)
	}
	for _, l := range w.Laborers {
		if !l.Alive {
			continue
		}
		l.ApplyPriceShock(prices)
		l.UpdateDaily(w.Catalog, w.Staple, gdpPerCapita, prices)
	}
}

// runFirmPass recomputes every firm's costs, then runs the
// auto-optimization heuristic once per firm (spec.md §4.6 phase 4).
func (w *World) runFirmPass() {
	var unemployed []firm.HireCandidate
	for _, l := range w.Laborers {
		if l.Alive && !l.IsHired {
			unemployed = append(unemployed, firm.HireCandidate{LaborerID: l.ID, Skill: l.Skill, MinWage: l.MinWage})
		}
	}

	for _, fm := range w.Firms {
		fm.RecomputeCosts()

		price := w.maxPriceAcross(fm.Outputs)
		before := fm.L()
		fm.AutoOptimize(w.Day, price, unemployed, w.RNG)

		if fm.L() > before {
			// A hire happened: remove the chosen laborer from the
			// unemployed pool and mark it employed so a later firm this
			// same tick can't double-hire it.
			hired := fm.Workers[len(fm.Workers)-1]
			for i, cand := range unemployed {
				if cand.LaborerID == hired.LaborerID {
					unemployed = append(unemployed[:i], unemployed[i+1:]...)
					break
				}
			}
			if l, ok := w.laborerByID(hired.LaborerID); ok {
				l.IsHired = true
				l.Employer = fm.OwnerID
			}
		} else if fm.L() < before {
			// A fire happened during AutoOptimize; the fired worker is
			// no longer tracked by the firm, so find it among laborers
			// by elimination: any laborer marked hired by this firm that
			// the firm no longer lists.
			w.reconcileFired(fm)
		}
	}
}

func (w *World) maxPriceAcross(products []catalog.ProductID) float64 {
	max := 0.0
	for _, id := range products {
		if m, ok := w.MarketFor(id); ok && m.Price > max {
			max = m.Price
		}
	}
	return max
}

func (w *World) laborerByID(id int64) (*agents.Laborer, bool) {
	for _, l := range w.Laborers {
		if l.ID == id {
			return l, true
		}
	}
	return nil, false
}

// reconcileFired clears IsHired/Employer on any laborer the firm
// previously employed but no longer lists among its Workers.
func (w *World) reconcileFired(fm *firm.Firm) {
	still := make(map[int64]bool, len(fm.Workers))
	for _, wk := range fm.Workers {
		still[wk.LaborerID] = true
	}
	for _, l := range w.Laborers {
		if l.Employer == fm.OwnerID && l.IsHired && !still[l.ID] {
			l.IsHired = false
			l.Employer = 0
		}
	}
}

// runIncomeJitter applies the daily income jitter to every agent, in
// insertion order across consumers, then laborers, then farmers (spec.md
// §5 determinism requirement), then drifts every firm's wage.
func (w *World) runIncomeJitter() {
	for _, c := range w.Consumers {
		if !c.Alive {
			continue
		}
		jitterIncome(c, w.RNG.Uniform(-0.04, 0.04))
	}
	for _, l := range w.Laborers {
		if !l.Alive {
			continue
		}
		jitterIncome(&l.Consumer, w.RNG.Uniform(-0.04, 0.04))
	}
	for _, f := range w.Farmers {
		if !f.Alive {
			continue
		}
		jitterIncome(&f.Consumer, w.RNG.Uniform(-0.04, 0.04))
	}

	wageTrend := 0.994
	if w.Macro.LaborForce > 0 {
		rate := float64(w.Macro.Employment) / float64(w.Macro.LaborForce)
		switch {
		case rate > 0.80:
			wageTrend = 1.012
		case rate > 0.55:
			wageTrend = 1.003
		}
	}
	for _, fm := range w.Firms {
		fm.Wage *= wageTrend * (1 + w.RNG.Uniform(-0.03, 0.03))
		if fm.Wage < 250 {
			fm.Wage = 250
		}
		fm.RecomputeCosts()
	}
}

// runDemandShock applies the periodic (every 7th day) demand shock from
// spec.md §4.6 phase 8: one market is chosen uniformly at random, and
// every agent's demand intercept for that product is scaled by a random
// factor, floored at 1.
func (w *World) runDemandShock() {
	if len(w.Markets) == 0 {
		return
	}
	m := w.Markets[w.RNG.Intn(len(w.Markets))]
	factor := 1 + w.RNG.Uniform(-0.05, 0.05)

	for _, c := range w.Consumers {
		shockIntercept(c, m.Product, factor)
	}
	for _, l := range w.Laborers {
		shockIntercept(&l.Consumer, m.Product, factor)
	}
	for _, f := range w.Farmers {
		shockIntercept(&f.Consumer, m.Product, factor)
	}
}
