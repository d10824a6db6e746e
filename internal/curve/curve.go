// Package curve implements the linear demand/supply primitives and their
// aggregation and equilibrium algebra (spec.md §4.1).
package curve

// minSlope is the floor below which a line is treated as absent from
// aggregation (spec.md §4.1: "m_i ≤ 10⁻⁴ are excluded").
const minSlope = 1e-4

// Demand is an inverse linear demand curve p = c - m*Q over Q in [0, c/m].
type Demand struct {
	Slope     float64 // m > 0
	Intercept float64 // c >= 0
}

// Supply is an inverse linear supply curve p = c + m*Q over Q in [0, maxQ].
type Supply struct {
	Slope     float64 // m > 0
	Intercept float64 // c >= 0
}

// Price returns the willingness-to-pay at quantity q: p = c - m*q.
func (d Demand) Price(q float64) float64 {
	return d.Intercept - d.Slope*q
}

// Quantity returns the quantity demanded at price p: Q = (c - p)/m.
// Returns 0 if the line is degenerate or the implied quantity is negative.
func (d Demand) Quantity(p float64) float64 {
	if d.Slope <= minSlope {
		return 0
	}
	q := (d.Intercept - p) / d.Slope
	if q < 0 {
		return 0
	}
	return q
}

// Price returns the marginal cost at quantity q: p = c + m*q.
func (s Supply) Price(q float64) float64 {
	return s.Intercept + s.Slope*q
}

// Quantity returns the quantity supplied at price p: Q = (p - c)/m.
// Returns 0 if the line is degenerate, the price is below the cost floor,
// or the implied quantity is negative.
func (s Supply) Quantity(p float64) float64 {
	if s.Slope <= minSlope {
		return 0
	}
	q := (p - s.Intercept) / s.Slope
	if q < 0 {
		return 0
	}
	return q
}

// AggregateDemand horizontally sums a set of individual demand curves into
// one aggregate inverse-demand curve (spec.md §4.1):
//
//	S_m = Σ(1/m_i), S_c = Σ(c_i/m_i)
//	c_agg = S_c/S_m, m_agg = 1/S_m
//
// Lines with m_i <= minSlope are excluded. Returns the zero Demand and
// false if no line survives exclusion.
func AggregateDemand(lines []Demand) (Demand, bool) {
	var sm, sc float64
	n := 0
	for _, l := range lines {
		if l.Slope <= minSlope {
			continue
		}
		sm += 1 / l.Slope
		sc += l.Intercept / l.Slope
		n++
	}
	if n == 0 || sm <= minSlope {
		return Demand{}, false
	}
	return Demand{
		Intercept: sc / sm,
		Slope:     1 / sm,
	}, true
}

// AggregateSupply is AggregateDemand's mirror for supply curves (same
// horizontal-sum algebra, "+" instead of "-").
func AggregateSupply(lines []Supply) (Supply, bool) {
	var sm, sc float64
	n := 0
	for _, l := range lines {
		if l.Slope <= minSlope {
			continue
		}
		sm += 1 / l.Slope
		sc += l.Intercept / l.Slope
		n++
	}
	if n == 0 || sm <= minSlope {
		return Supply{}, false
	}
	return Supply{
		Intercept: sc / sm,
		Slope:     1 / sm,
	}, true
}

// Equilibrium is a cleared (price, quantity) pair. Ok is false when the
// market did not clear this tick (spec.md §4.1).
type Equilibrium struct {
	Price    float64
	Quantity float64
	Ok       bool
}

// Solve finds the intersection of an aggregate demand and supply curve:
//
//	c_d - m_d*Q = c_s + m_s*Q  =>  Q* = (c_d - c_s)/(m_d + m_s), p* = c_d - m_d*Q*
//
// If m_d + m_s < 1e-4 or Q* <= 0 the market does not clear; Ok is false.
func Solve(d Demand, s Supply) Equilibrium {
	denom := d.Slope + s.Slope
	if denom < minSlope {
		return Equilibrium{}
	}
	q := (d.Intercept - s.Intercept) / denom
	if q <= 0 {
		return Equilibrium{}
	}
	p := d.Intercept - d.Slope*q
	return Equilibrium{Price: p, Quantity: q, Ok: true}
}

// ConsumerSurplus computes ½·(c − p_m)·Q* at market price p_m for the
// given demand line, with Q* = max(0, (c - p_m)/m) (spec.md §4.2).
func ConsumerSurplus(d Demand, marketPrice float64) float64 {
	if d.Slope <= minSlope {
		return 0
	}
	q := (d.Intercept - marketPrice) / d.Slope
	if q < 0 {
		q = 0
	}
	return 0.5 * (d.Intercept - marketPrice) * q
}
