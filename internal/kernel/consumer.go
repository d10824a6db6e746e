// Package kernel provides the Consumer behavior shared by every household
// archetype (plain consumers, farmers, laborers). spec.md's design notes
// (§9) call for factoring this out as a single embedded component rather
// than a class-inheritance hierarchy; Farmer and Laborer in
// internal/agents embed Consumer and extend it with their own fields and
// per-day hooks.
package kernel

import (
	"math"

	"github.com/Shafin2954/cppConomy-sub000/internal/catalog"
	"github.com/Shafin2954/cppConomy-sub000/internal/curve"
)

// budgetShare is the maximum fraction of daily income a consumer will
// spend on any single good (spec.md §4.2 step 2b).
const budgetShare = 0.3

// priceFloor is the minimum usable observed or fallback price.
const priceFloor = 0.01

// Consumer is the daily-consumption component embedded by every household
// agent kind.
type Consumer struct {
	ID      int64
	Name    string
	AgeDays int
	Alive   bool

	Savings      float64 // money stock
	DailyIncome  float64 // flow
	LastExpenses float64
	MuPerUnit    float64 // marginal utility per monetary unit, cached

	// Needs is the ordered set of products this consumer wants, in
	// insertion order. DemandLines, Consumed, and Substitution are keyed
	// by the same ProductIDs as Needs; spec.md §3's invariant requires
	// these four collections to always agree on their key set.
	Needs       []catalog.ProductID
	DemandLines map[catalog.ProductID]curve.Demand
	Consumed    map[catalog.ProductID]float64
	// Substitution is the substitution ratio of each good relative to
	// the staple good (rice), MU(good)/MU(staple).
	Substitution map[catalog.ProductID]float64

	lastIncomeSnapshot float64
}

// NewConsumer creates an empty Consumer with no needs yet (use AddNeed to
// register them, which keeps the four collections in the §3 invariant).
func NewConsumer(id int64, name string, ageDays int, savings, dailyIncome float64) Consumer {
	return Consumer{
		ID:                 id,
		Name:               name,
		AgeDays:            ageDays,
		Alive:              true,
		Savings:            savings,
		DailyIncome:        dailyIncome,
		MuPerUnit:          1 / max(1, savings+30*dailyIncome),
		Needs:              nil,
		DemandLines:        make(map[catalog.ProductID]curve.Demand),
		Consumed:           make(map[catalog.ProductID]float64),
		Substitution:       make(map[catalog.ProductID]float64),
		lastIncomeSnapshot: dailyIncome,
	}
}

// AddNeed registers a product as a need with its initial demand line.
// This is the only path that may create a demand entry, so it is the
// single place that must preserve the §3 key-set invariant.
func (c *Consumer) AddNeed(id catalog.ProductID, d curve.Demand) {
	if _, exists := c.DemandLines[id]; exists {
		return
	}
	c.Needs = append(c.Needs, id)
	c.DemandLines[id] = d
	c.Consumed[id] = 0
	c.Substitution[id] = 1
}

// HasNeed reports whether the consumer has a registered need for id.
func (c *Consumer) HasNeed(id catalog.ProductID) bool {
	_, ok := c.DemandLines[id]
	return ok
}

// WTP returns the willingness-to-pay for a need at its current consumed
// quantity: WTP = max(priceFloor, c - m*consumed).
func (c *Consumer) WTP(id catalog.ProductID) float64 {
	d, ok := c.DemandLines[id]
	if !ok {
		return 0
	}
	wtp := d.Intercept - d.Slope*c.Consumed[id]
	if wtp < priceFloor {
		wtp = priceFloor
	}
	return wtp
}

// ApplyPriceShock implements the per-tick demand shock rule from
// spec.md §4.6 phase 2: if an observed market price exceeds 1.2x the
// current demand intercept for a need, the intercept is dampened by a
// factor of 0.95 (testable property 7).
func (c *Consumer) ApplyPriceShock(prices map[catalog.ProductID]float64) {
	for _, id := range c.Needs {
		p, ok := prices[id]
		if !ok {
			continue
		}
		d := c.DemandLines[id]
		if d.Intercept <= 0 {
			continue
		}
		if p/d.Intercept > 1.2 {
			d.Intercept *= 0.95
			c.DemandLines[id] = d
		}
	}
}

// UpdateDaily runs the consumer daily update (spec.md §4.2) in its fixed
// order: age, per-need consumption, savings accumulation, income-driven
// demand shifts, marginal utility refresh, substitution-ratio refresh.
func (c *Consumer) UpdateDaily(cat *catalog.Catalog, staple catalog.ProductID, gdpPerCapita float64, prices map[catalog.ProductID]float64) {
	c.AgeDays++

	expenses := 0.0
	wealth := c.Savings
	denom := max(1, gdpPerCapita)

	for _, id := range c.Needs {
		product := cat.Get(id)
		d := c.DemandLines[id]

		incomeElasticBase := product.BaseConsumption * ipow(wealth/denom, product.Elasticity)
		budgetCap := budgetShare * c.DailyIncome
		if d.Intercept > 0 {
			budgetCap /= d.Intercept
		} else {
			budgetCap = 0
		}
		q := min(incomeElasticBase, budgetCap)
		if q < 0 {
			q = 0
		}

		var price float64
		if observed, ok := prices[id]; ok && observed > priceFloor {
			price = observed
		} else {
			price = c.WTP(id)
		}

		expenses += price * q
		consumed := c.Consumed[id] + q
		consumed -= product.DecayRate
		if consumed < 0 {
			consumed = 0
		}
		c.Consumed[id] = consumed
	}

	c.LastExpenses = expenses
	c.Savings += c.DailyIncome - expenses

	deltaIncome := c.DailyIncome - c.lastIncomeSnapshot
	if abs(deltaIncome) > 0.01 {
		for _, id := range c.Needs {
			product := cat.Get(id)
			d := c.DemandLines[id]
			if product.Elasticity > 0 {
				d.Intercept += deltaIncome * 0.05 * product.Elasticity
			} else if product.Elasticity < 0 {
				d.Intercept = max(0.5, d.Intercept+deltaIncome*0.02*product.Elasticity)
			}
			c.DemandLines[id] = d
		}
	}
	c.lastIncomeSnapshot = c.DailyIncome

	c.MuPerUnit = 1 / max(1, c.Savings+30*c.DailyIncome)

	stapleMU := c.WTP(staple) * c.MuPerUnit
	if stapleMU <= 0 {
		stapleMU = priceFloor * c.MuPerUnit
	}
	for _, id := range c.Needs {
		mu := c.WTP(id) * c.MuPerUnit
		c.Substitution[id] = mu / stapleMU
	}
}

// ConsumerSurplus returns ½·(c − p_m)·Q* for a need at the given market
// price (spec.md §4.2, GLOSSARY).
func (c *Consumer) ConsumerSurplus(id catalog.ProductID, marketPrice float64) float64 {
	d, ok := c.DemandLines[id]
	if !ok {
		return 0
	}
	return curve.ConsumerSurplus(d, marketPrice)
}

func ipow(base, exp float64) float64 {
	if base <= 0 {
		return 0
	}
	return math.Pow(base, exp)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
