// Package firm implements firms: their polymorphic production function,
// cost accounting, and factor-mix optimization heuristic (spec.md §4.4).
package firm

import "math"

// Kind is a closed tag identifying which production function variant a
// Firm uses. There are exactly two variants and the choice never mutates
// after construction (spec.md §3, §9 design notes), so this is
// represented as a tagged sum rather than an interface with virtual
// dispatch.
type Kind uint8

const (
	// CobbDouglas is Q(L,K) = A * L^α * K^β.
	CobbDouglas Kind = iota
	// CES is Q(L,K) = (L^ρ + K^ρ)^(1/ρ).
	CES
)

// ProductionFunction is the tagged-sum production function a Firm is
// constructed with. Only the fields relevant to Kind are meaningful.
type ProductionFunction struct {
	Kind Kind

	// Cobb-Douglas parameters.
	Alpha float64
	Beta  float64
	A     float64

	// CES parameter.
	Rho float64
}

// NewCobbDouglas constructs a Cobb-Douglas production function.
func NewCobbDouglas(a, alpha, beta float64) ProductionFunction {
	return ProductionFunction{Kind: CobbDouglas, A: a, Alpha: alpha, Beta: beta}
}

// NewCES constructs a CES production function.
func NewCES(rho float64) ProductionFunction {
	return ProductionFunction{Kind: CES, Rho: rho}
}

// Output evaluates Q(L, K). L and K are treated as plain real counts —
// labor headcount and capital-unit count — per the open question in
// spec.md §9: capital efficiency does not weight K (see DESIGN.md for
// the rationale).
func (p ProductionFunction) Output(l, k float64) float64 {
	if l < 0 {
		l = 0
	}
	if k < 0 {
		k = 0
	}
	switch p.Kind {
	case CES:
		if p.Rho == 0 {
			return 0
		}
		sum := powf(l, p.Rho) + powf(k, p.Rho)
		if sum <= 0 {
			return 0
		}
		return powf(sum, 1/p.Rho)
	default: // CobbDouglas
		return p.A * powf(l, p.Alpha) * powf(k, p.Beta)
	}
}

// MPL returns the discrete marginal product of labor Q(L+1,K) - Q(L,K).
func (p ProductionFunction) MPL(l, k float64) float64 {
	return p.Output(l+1, k) - p.Output(l, k)
}

// MPK returns the discrete marginal product of capital Q(L,K+1) - Q(L,K).
func (p ProductionFunction) MPK(l, k float64) float64 {
	return p.Output(l, k+1) - p.Output(l, k)
}

func powf(base, exp float64) float64 {
	if base <= 0 {
		if exp == 0 {
			return 1
		}
		return 0
	}
	return math.Pow(base, exp)
}
