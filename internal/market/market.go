// Package market implements per-product market aggregation, equilibrium,
// tâtonnement price adjustment, and bounded price history (spec.md §4.5).
package market

import (
	"github.com/Shafin2954/cppConomy-sub000/internal/catalog"
	"github.com/Shafin2954/cppConomy-sub000/internal/curve"
)

// historyLimit is the bounded price-history ring size (spec.md §3,
// "N = 30 in the source").
const historyLimit = 30

// minPrice is the price floor (spec.md §3: "always >= 0.1").
const minPrice = 0.1

// minSlope mirrors curve.minSlope; duplicated here because the package
// boundary keeps aggregation guard logic colocated with the clearing
// decision it gates (spec.md §4.5: "Equilibrium recorded only overwrites
// the market price when both curves are non-trivial").
const minSlope = 1e-4

// Market holds the economic state for one product.
type Market struct {
	Product catalog.ProductID
	Price   float64

	Demand curve.Demand
	Supply curve.Supply

	History []float64
}

// New creates a market for a product at the given initial price.
func New(product catalog.ProductID, initialPrice float64) *Market {
	if initialPrice < minPrice {
		initialPrice = minPrice
	}
	return &Market{Product: product, Price: initialPrice}
}

// RefreshAggregates aggregates the given individual demand and supply
// curves into the market's current Demand and Supply lines (spec.md
// §4.1). Demand comes from consumers, farmers, and laborers holding a
// need for this product; supply comes from farmers producing it and
// firms producing it.
func (m *Market) RefreshAggregates(demands []curve.Demand, supplies []curve.Supply) {
	if agg, ok := curve.AggregateDemand(demands); ok {
		m.Demand = agg
	} else {
		m.Demand = curve.Demand{}
	}
	if agg, ok := curve.AggregateSupply(supplies); ok {
		m.Supply = agg
	} else {
		m.Supply = curve.Supply{}
	}
}

// Equilibrium solves the current aggregate curves. Degenerate cases
// return a zero-quantity equilibrium at the current price (spec.md
// §4.1, §4.5).
func (m *Market) Equilibrium() curve.Equilibrium {
	eq := curve.Solve(m.Demand, m.Supply)
	if !eq.Ok {
		return curve.Equilibrium{Price: m.Price, Quantity: 0, Ok: false}
	}
	return eq
}

// ClearAndRecord computes the equilibrium and, if both curves are
// non-trivial (m_d, m_s > 1e-4) and p* > 0.1, overwrites the market
// price; otherwise the price is left for the tâtonnement step to move
// (spec.md §4.5). Returns the equilibrium that was computed either way.
func (m *Market) ClearAndRecord() curve.Equilibrium {
	eq := m.Equilibrium()
	if eq.Ok && m.Demand.Slope > minSlope && m.Supply.Slope > minSlope && eq.Price > minPrice {
		m.Price = eq.Price
	}
	if m.Price < minPrice {
		m.Price = minPrice
	}
	return eq
}

// AdjustPrice runs one Walrasian tâtonnement step (spec.md §4.5):
// compute excess demand at the current price, nudge price 2% toward
// clearing, floor at 0.1. No-op if both quantities are zero.
func (m *Market) AdjustPrice() {
	qd := m.Demand.Quantity(m.Price)
	qs := m.Supply.Quantity(m.Price)
	if qd == 0 && qs == 0 {
		return
	}

	ed := qd - qs
	switch {
	case ed > 0:
		m.Price *= 1.02
	case ed < 0:
		m.Price *= 0.98
	}
	if m.Price < minPrice {
		m.Price = minPrice
	}
}

// ExcessDemand returns Qd(p) - Qs(p) at the given price, exposed for the
// tâtonnement-monotonicity property test (testable property 5).
func (m *Market) ExcessDemand(price float64) float64 {
	return m.Demand.Quantity(price) - m.Supply.Quantity(price)
}

// RecordHistory appends the current price to the bounded history,
// evicting the oldest entry once the length exceeds historyLimit.
func (m *Market) RecordHistory() {
	m.History = append(m.History, m.Price)
	if len(m.History) > historyLimit {
		m.History = m.History[len(m.History)-historyLimit:]
	}
}
