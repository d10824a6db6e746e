// Package agents provides the household agent kinds that extend the
// shared kernel.Consumer component: Farmer (consumer + producer) and
// Laborer (consumer + employable). Both embed kernel.Consumer rather than
// inheriting from it (spec.md §9 design notes).
package agents

import (
	"github.com/Shafin2954/cppConomy-sub000/internal/catalog"
	"github.com/Shafin2954/cppConomy-sub000/internal/curve"
	"github.com/Shafin2954/cppConomy-sub000/internal/kernel"
)

// Farmer extends Consumer with a crop portfolio and per-crop supply
// economics (spec.md §3, §4.3).
type Farmer struct {
	kernel.Consumer

	Land    float64 // acres
	Tech    float64 // [0,1]
	Tax     float64 // [0,1]
	Weather float64 // [0,1]

	// Crops is the ordered set of crop products this farmer grows.
	// SupplyLines, GrowthRate, DecayRate, MaxOutput, baseCost, baseSlope
	// are all keyed by the same ProductIDs (mirrors the Consumer
	// invariant in spec.md §3).
	Crops       []catalog.ProductID
	SupplyLines map[catalog.ProductID]curve.Supply
	GrowthRate  map[catalog.ProductID]float64
	DecayRate   map[catalog.ProductID]float64
	MaxOutput   map[catalog.ProductID]float64

	baseCost  map[catalog.ProductID]float64
	baseSlope map[catalog.ProductID]float64
}

// NewFarmer creates a Farmer with no crops registered yet; use AddCrop to
// register each one, which preserves the crop-map key-set invariant.
func NewFarmer(id int64, name string, ageDays int, savings, dailyIncome, land, tech, tax float64) *Farmer {
	return &Farmer{
		Consumer:    kernel.NewConsumer(id, name, ageDays, savings, dailyIncome),
		Land:        land,
		Tech:        tech,
		Tax:         tax,
		Weather:     0.5,
		Crops:       nil,
		SupplyLines: make(map[catalog.ProductID]curve.Supply),
		GrowthRate:  make(map[catalog.ProductID]float64),
		DecayRate:   make(map[catalog.ProductID]float64),
		MaxOutput:   make(map[catalog.ProductID]float64),
		baseCost:    make(map[catalog.ProductID]float64),
		baseSlope:   make(map[catalog.ProductID]float64),
	}
}

// AddCrop registers a crop with its base cost/slope table entries (used
// to rederive the supply curve on tech/tax changes) and an initial
// production capacity.
func (f *Farmer) AddCrop(id catalog.ProductID, growthRate, decayRate, maxOutput, baseCost, baseSlope float64) {
	if _, exists := f.baseCost[id]; exists {
		return
	}
	f.Crops = append(f.Crops, id)
	f.GrowthRate[id] = growthRate
	f.DecayRate[id] = decayRate
	f.MaxOutput[id] = maxOutput
	f.baseCost[id] = baseCost
	f.baseSlope[id] = baseSlope
	f.RecomputeSupplyCurve(id)
}

// RecomputeSupplyCurve rederives a crop's (c_k, m_k) supply line from its
// base-cost/base-slope table entry, offset by the small-farm, tech,
// weather and tax adjustments in spec.md §4.3. Call after any tech
// upgrade or tax change.
func (f *Farmer) RecomputeSupplyCurve(crop catalog.ProductID) {
	base, ok := f.baseCost[crop]
	if !ok {
		return
	}
	slopeBase := f.baseSlope[crop]

	smallFarmPenalty := 0.0
	if f.Land < 3 {
		smallFarmPenalty = 2.5 * (3 - f.Land)
	}
	techDiscount := -8 * f.Tech
	weatherPenalty := 10 * max(0, 0.65-f.Weather)
	taxPenalty := 30 * f.Tax

	c := base + smallFarmPenalty + techDiscount + weatherPenalty + taxPenalty
	if c < 8 {
		c = 8
	}

	m := slopeBase + 0.18/max(1, f.Land) + 0.06*(1-f.Tech)
	if m < 0.08 {
		m = 0.08
	}

	f.SupplyLines[crop] = curve.Supply{Intercept: c, Slope: m}
}

// SupplyQuantity returns how much of a crop the farmer would produce at a
// quoted market price p, per the effective-cost-floor rule in spec.md
// §4.3:
//
//	MC_eff = c_k + tax - 2*tech
//	m_eff  = m_k * weather
//	produce 0 if p <= MC_eff or m_eff <= 0
//	else min((p - MC_eff)/m_eff, maxOutput_k)
func (f *Farmer) SupplyQuantity(crop catalog.ProductID, price float64) float64 {
	line, ok := f.SupplyLines[crop]
	if !ok {
		return 0
	}
	mcEff := line.Intercept + f.Tax - 2*f.Tech
	mEff := line.Slope * f.Weather
	if price <= mcEff || mEff <= 0 {
		return 0
	}
	q := (price - mcEff) / mEff
	maxQ := f.MaxOutput[crop]
	if q > maxQ {
		q = maxQ
	}
	if q < 0 {
		q = 0
	}
	return q
}

// EffectiveSupplyLine returns the farmer's current per-crop supply line
// after the instantaneous tax/tech/weather transform (spec.md §4.3:
// MC_eff = c_k + tax - 2*tech, m_eff = m_k * weather), the same line
// SupplyQuantity implicitly evaluates. Markets aggregate this line
// rather than the static stored one so that today's weather is
// reflected in the clearing price.
func (f *Farmer) EffectiveSupplyLine(crop catalog.ProductID) (curve.Supply, bool) {
	line, ok := f.SupplyLines[crop]
	if !ok {
		return curve.Supply{}, false
	}
	mcEff := line.Intercept + f.Tax - 2*f.Tech
	mEff := line.Slope * f.Weather
	if mEff <= 0 {
		return curve.Supply{}, false
	}
	return curve.Supply{Intercept: mcEff, Slope: mEff}, true
}

// EvolveCrops applies the per-day maxOutput growth/decay rule from
// spec.md §4.3 step 2: maxOutput grows by growth_rate and shrinks by
// decay_rate*weather, clamped at zero.
func (f *Farmer) EvolveCrops() {
	for _, id := range f.Crops {
		out := f.MaxOutput[id] + f.GrowthRate[id] - f.DecayRate[id]*f.Weather
		if out < 0 {
			out = 0
		}
		f.MaxOutput[id] = out
	}
}

// RedrawWeather draws a new uniform weather value in [0,1] from the
// given source (spec.md §4.3 step 1). Routing through the caller-supplied
// source, rather than a package-level RNG, keeps draw order under the
// scheduler's control (spec.md §5 determinism requirement).
func (f *Farmer) RedrawWeather(draw func() float64) {
	f.Weather = draw()
}

// UpgradeTech sets the farmer's tech level and rederives every crop's
// supply curve. Tech must be in [0,1]; callers validate range before
// calling (spec.md §7 precondition errors).
func (f *Farmer) UpgradeTech(level float64) {
	f.Tech = level
	for _, crop := range f.Crops {
		f.RecomputeSupplyCurve(crop)
	}
}

// SetTax sets the farmer's tax rate and rederives every crop's supply
// curve. Tax must be in [0,1]; callers validate range before calling.
func (f *Farmer) SetTax(rate float64) {
	f.Tax = rate
	for _, crop := range f.Crops {
		f.RecomputeSupplyCurve(crop)
	}
}

// UpdateDaily runs the shared Consumer update followed by the farmer's
// own weather redraw and crop evolution (spec.md §4.3: "First runs the
// Consumer daily update... then...").
func (f *Farmer) UpdateDaily(cat *catalog.Catalog, staple catalog.ProductID, gdpPerCapita float64, prices map[catalog.ProductID]float64, drawWeather func() float64) {
	f.Consumer.UpdateDaily(cat, staple, gdpPerCapita, prices)
	f.RedrawWeather(drawWeather)
	f.EvolveCrops()
}
