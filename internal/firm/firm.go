package firm

import (
	"math"

	"github.com/Shafin2954/cppConomy-sub000/internal/catalog"
	"github.com/Shafin2954/cppConomy-sub000/internal/curve"
	"github.com/Shafin2954/cppConomy-sub000/internal/entropy"
)

// minOutput is the Q floor below which fixed/average costs are treated
// as undefined (spec.md §4.4).
const minOutput = 1e-4

// CapitalUnit is one unit of hired capital, each with its own rental
// rate and an efficiency. Efficiency is recorded but not read by the
// production function, the cost metrics, or FactorEfficiency (spec.md
// §9 open question — see DESIGN.md).
type CapitalUnit struct {
	Rental     float64
	Efficiency float64
}

// Worker is a snapshot of one hired laborer, decoupled from the live
// Laborer so firing or the laborer's own state changing elsewhere can't
// retroactively corrupt a firm's cost history.
type Worker struct {
	LaborerID int64
	Skill     float64
	HiredTick uint64
}

// Costs holds the cached cost metrics recomputed on every hire, fire,
// capital change, or daily pass (spec.md §4.4).
type Costs struct {
	Q   float64
	TFC float64
	TVC float64
	TC  float64
	AFC float64
	AVC float64
	AC  float64
	MPL float64
	MPK float64
	MC  float64
}

// Firm is a production unit owned by a consumer.
type Firm struct {
	ID            int64
	OwnerID       int64
	Cash          float64
	Production    ProductionFunction
	Wage          float64
	FixedOverhead float64
	Workers       []Worker
	Capital       []CapitalUnit
	Outputs       []catalog.ProductID

	Costs Costs
}

// New constructs a Firm with the given production function and no
// workers or capital (workers are added separately via Hire so cost
// history is consistent from the start).
func New(id, ownerID int64, pf ProductionFunction, wage, fixedOverhead float64, outputs []catalog.ProductID) *Firm {
	return &Firm{
		ID:            id,
		OwnerID:       ownerID,
		Production:    pf,
		Wage:          wage,
		FixedOverhead: fixedOverhead,
		Outputs:       outputs,
	}
}

// L returns the current labor headcount.
func (f *Firm) L() float64 {
	return float64(len(f.Workers))
}

// K returns the current capital-unit count.
func (f *Firm) K() float64 {
	return float64(len(f.Capital))
}

// averageCapitalRental returns the mean rental rate across capital
// units, or 0 if the firm has none.
func (f *Firm) averageCapitalRental() float64 {
	if len(f.Capital) == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range f.Capital {
		sum += c.Rental
	}
	return sum / float64(len(f.Capital))
}

// RecomputeCosts rebuilds the cached Costs from current L, K, wage,
// capital, and overhead (spec.md §4.4).
func (f *Firm) RecomputeCosts() {
	l, k := f.L(), f.K()
	q := f.Production.Output(l, k)

	rentalSum := 0.0
	for _, c := range f.Capital {
		rentalSum += c.Rental
	}

	tfc := f.FixedOverhead + rentalSum
	tvc := l * f.Wage
	tc := tfc + tvc

	var afc, avc, ac float64
	if q > minOutput {
		afc = tfc / q
		avc = tvc / q
		ac = tc / q
	} else {
		afc = math.Inf(1)
		avc = 0
		ac = math.Inf(1)
	}

	mpl := f.Production.MPL(l, k)
	mpk := f.Production.MPK(l, k)

	var mc float64
	if mpl > minOutput {
		mc = f.Wage / mpl
	} else {
		mc = math.Inf(1)
	}

	f.Costs = Costs{Q: q, TFC: tfc, TVC: tvc, TC: tc, AFC: afc, AVC: avc, AC: ac, MPL: mpl, MPK: mpk, MC: mc}
}

// FactorEfficiency returns (MPL/wage, MPK/average_capital_rental) per
// spec.md §4.4.
func (f *Firm) FactorEfficiency() (laborEff, capitalEff float64) {
	laborEff = 0
	if f.Wage > 0 {
		laborEff = f.Costs.MPL / f.Wage
	}
	rental := f.averageCapitalRental()
	if rental > 0 {
		capitalEff = f.Costs.MPK / rental
	}
	return laborEff, capitalEff
}

// FavorsHiring reports whether the firm's current factor mix favors
// hiring labor over adding capital, and whether the mix is already near
// optimal (|Δ| < 0.05).
func (f *Firm) FavorsHiring() (favorsLabor, nearOptimal bool) {
	laborEff, capitalEff := f.FactorEfficiency()
	delta := laborEff - capitalEff
	return laborEff > capitalEff, math.Abs(delta) < 0.05
}

// ScaleVerdict reports whether the firm is experiencing economies of
// scale (MC < AC) or diminishing returns (MC > AC), per testable
// property 6. Returns "" when Q is degenerate (AC undefined).
func (f *Firm) ScaleVerdict() string {
	if math.IsInf(f.Costs.AC, 1) {
		return ""
	}
	if f.Costs.MC < f.Costs.AC {
		return "economies of scale"
	}
	if f.Costs.MC > f.Costs.AC {
		return "diminishing returns"
	}
	return "constant returns"
}

// Hire adds a worker snapshot and recomputes costs.
func (f *Firm) Hire(laborerID int64, skill float64, tick uint64) {
	f.Workers = append(f.Workers, Worker{LaborerID: laborerID, Skill: skill, HiredTick: tick})
	f.RecomputeCosts()
}

// Fire removes the most recently hired worker and recomputes costs.
// Reports false if the firm has no workers.
func (f *Firm) Fire() (Worker, bool) {
	if len(f.Workers) == 0 {
		return Worker{}, false
	}
	last := f.Workers[len(f.Workers)-1]
	f.Workers = f.Workers[:len(f.Workers)-1]
	f.RecomputeCosts()
	return last, true
}

// FireByID removes the worker with the given laborer ID, wherever it is
// in the hire order, for an explicit firm_fire(laborer) command.
// Reports false if no such worker is hired.
func (f *Firm) FireByID(laborerID int64) bool {
	for i, w := range f.Workers {
		if w.LaborerID == laborerID {
			f.Workers = append(f.Workers[:i], f.Workers[i+1:]...)
			f.RecomputeCosts()
			return true
		}
	}
	return false
}

// AddCapital adds a capital unit and recomputes costs.
func (f *Firm) AddCapital(rental, efficiency float64) {
	f.Capital = append(f.Capital, CapitalUnit{Rental: rental, Efficiency: efficiency})
	f.RecomputeCosts()
}

// outputScale is the revenue-per-marginal-worker scaling constant from
// spec.md §4.4.
const outputScale = 80.0

// HireCandidate is a laborer eligible to be hired: its stable ID, skill,
// and reservation wage.
type HireCandidate struct {
	LaborerID int64
	Skill     float64
	MinWage   float64
}

// AutoOptimize runs the once-per-tick hire/fire/capital heuristic from
// spec.md §4.4. candidates should be the pool of currently-unemployed
// laborers; marketPrice is the max market price across the firm's
// output products. rng supplies the capital-addition draws.
func (f *Firm) AutoOptimize(tick uint64, marketPrice float64, candidates []HireCandidate, rng *entropy.Source) {
	revPerWorker := f.Costs.MPL * outputScale * marketPrice

	if revPerWorker > 1.05*f.Wage && f.L() < 8 {
		if best, ok := bestCandidate(candidates, f.Wage); ok {
			f.Hire(best.LaborerID, best.Skill, tick)
		}
	} else if revPerWorker < 0.80*f.Wage && f.L() > 1 {
		f.Fire()
	}

	if rng.Bool(1.0/20) && f.Costs.MPK*outputScale*marketPrice > 0.5*f.Costs.AC {
		rental := 1.8*f.Wage + rng.Uniform(0, 200)
		efficiency := 1 + rng.Uniform(0, 1)
		f.AddCapital(rental, efficiency)
	}
}

// DerivedSupplyLine returns the firm's contribution to a market's
// aggregate supply curve, derived from its cost structure (spec.md
// §4.1: "their supply contribution uses a derived line from their cost
// structure"). The intercept is marginal cost (the firm won't sell
// below it); the slope flattens as output grows, reflecting that larger
// firms move more quantity per unit price change. Returns ok=false if
// marginal cost is undefined (no workers, MPL <= 0).
func (f *Firm) DerivedSupplyLine() (curve.Supply, bool) {
	if math.IsInf(f.Costs.MC, 1) || f.Costs.MC <= 0 {
		return curve.Supply{}, false
	}
	slope := 1 / math.Max(1, f.Costs.Q)
	return curve.Supply{Intercept: f.Costs.MC, Slope: slope}, true
}

// bestCandidate picks the highest-skill candidate whose reservation wage
// is at or below the firm's wage.
func bestCandidate(candidates []HireCandidate, firmWage float64) (HireCandidate, bool) {
	var best HireCandidate
	found := false
	for _, c := range candidates {
		if c.MinWage > firmWage {
			continue
		}
		if !found || c.Skill > best.Skill {
			best = c
			found = true
		}
	}
	return best, found
}
