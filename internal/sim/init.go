package sim

import (
	"github.com/Shafin2954/cppConomy-sub000/internal/agents"
	"github.com/Shafin2954/cppConomy-sub000/internal/catalog"
	"github.com/Shafin2954/cppConomy-sub000/internal/curve"
	"github.com/Shafin2954/cppConomy-sub000/internal/firm"
	"github.com/Shafin2954/cppConomy-sub000/internal/kernel"
	"github.com/Shafin2954/cppConomy-sub000/internal/market"
)

// DefaultSeed is the fixed seed used by the default initialization for
// reproducibility (spec.md §4.7).
const DefaultSeed = 42

const (
	defaultWage     = 380.0
	defaultOverhead = 2500.0
)

// cropSpec is the base-cost/base-slope table entry for one crop (spec.md
// §4.3's "base-cost/base-slope tables per crop").
type cropSpec struct {
	name       string
	baseCost   float64
	baseSlope  float64
	growthRate float64
	decayRate  float64
	maxOutput  float64
}

// cropCatalog is the fixed set of crops farmers may grow. rice's
// base-cost/base-slope (37, 0.22) reproduces testable scenario S3.
var cropCatalog = []cropSpec{
	{name: "rice", baseCost: 37, baseSlope: 0.22, growthRate: 0.5, decayRate: 0.05, maxOutput: 40},
	{name: "potato", baseCost: 20, baseSlope: 0.15, growthRate: 0.4, decayRate: 0.08, maxOutput: 30},
	{name: "banana", baseCost: 25, baseSlope: 0.18, growthRate: 0.3, decayRate: 0.15, maxOutput: 25},
	{name: "corn", baseCost: 22, baseSlope: 0.16, growthRate: 0.45, decayRate: 0.06, maxOutput: 35},
	{name: "jute", baseCost: 30, baseSlope: 0.20, growthRate: 0.2, decayRate: 0.02, maxOutput: 20},
}

// productSpec is a catalog entry plus the typical market price used to
// seed default demand lines and initial market price.
type productSpec struct {
	catalog.Product
	typicalPrice float64
}

// defaultProducts is the fixed ten-market default catalog (spec.md §4.7:
// "rice, cloth, computer, phone, potato, banana, corn, jute are in the
// default set" — tools and medicine round the default set out to ten).
var defaultProducts = []productSpec{
	{Product: catalog.Product{Name: "rice", DecayRate: 0.05, Elasticity: 0.15, BaseConsumption: 3.0, GrowthRate: 0.5}, typicalPrice: 12},
	{Product: catalog.Product{Name: "potato", DecayRate: 0.08, Elasticity: -0.2, BaseConsumption: 1.5, GrowthRate: 0.4}, typicalPrice: 8},
	{Product: catalog.Product{Name: "banana", DecayRate: 0.15, Elasticity: 0.3, BaseConsumption: 0.8, GrowthRate: 0.3}, typicalPrice: 9},
	{Product: catalog.Product{Name: "corn", DecayRate: 0.06, Elasticity: 0.1, BaseConsumption: 1.2, GrowthRate: 0.45}, typicalPrice: 7},
	{Product: catalog.Product{Name: "jute", DecayRate: 0.02, Elasticity: 0.25, BaseConsumption: 0.3, GrowthRate: 0.2}, typicalPrice: 15},
	{Product: catalog.Product{Name: "cloth", DecayRate: 0.01, Elasticity: 0.4, BaseConsumption: 1.0, GrowthRate: 0}, typicalPrice: 20},
	{Product: catalog.Product{Name: "computer", DecayRate: 0, Elasticity: 1.2, BaseConsumption: 0.02, GrowthRate: 0}, typicalPrice: 600},
	{Product: catalog.Product{Name: "phone", DecayRate: 0, Elasticity: 0.9, BaseConsumption: 0.05, GrowthRate: 0}, typicalPrice: 300},
	{Product: catalog.Product{Name: "tools", DecayRate: 0.01, Elasticity: 0.5, BaseConsumption: 0.3, GrowthRate: 0}, typicalPrice: 35},
	{Product: catalog.Product{Name: "medicine", DecayRate: 0.03, Elasticity: 0.6, BaseConsumption: 0.4, GrowthRate: 0}, typicalPrice: 50},
}

// defaultDemandLine derives a starting demand line for a product given
// its typical price: the intercept is set so that typicalPrice sits
// comfortably above base consumption on the curve, and the slope is
// tuned so the line clears near base consumption at that price.
func defaultDemandLine(p catalog.Product, typicalPrice float64) curve.Demand {
	intercept := typicalPrice * 1.6
	slope := (intercept - typicalPrice) / max(0.1, p.BaseConsumption)
	if slope < 0.05 {
		slope = 0.05
	}
	return curve.Demand{Intercept: intercept, Slope: slope}
}

// seedNeeds registers a default need (and demand line) for every
// catalog product on a freshly-created consumer-embedding agent.
func (w *World) seedNeeds(c *kernel.Consumer) {
	for _, p := range defaultProducts {
		id := w.Catalog.MustLookup(p.Name).ID
		w.seedNeedFor(c, id)
	}
}

func (w *World) seedNeedFor(c *kernel.Consumer, id catalog.ProductID) {
	p := w.Catalog.Get(id)
	spec := findProductSpec(p.Name)
	c.AddNeed(id, defaultDemandLine(p, spec.typicalPrice))
}

func findProductSpec(name string) productSpec {
	for _, p := range defaultProducts {
		if p.Name == name {
			return p
		}
	}
	return productSpec{typicalPrice: 10}
}

// seedCrops registers the default crop portfolio (all five crops) on a
// freshly-created farmer.
func (w *World) seedCrops(f *agents.Farmer) {
	for _, cs := range cropCatalog {
		id := w.Catalog.MustLookup(cs.name).ID
		f.AddCrop(id, cs.growthRate, cs.decayRate, cs.maxOutput, cs.baseCost, cs.baseSlope)
	}
}

// BuildDefaultCatalog registers the fixed default product set and
// returns the catalog plus the staple (rice) handle.
func BuildDefaultCatalog() (*catalog.Catalog, catalog.ProductID) {
	cat := catalog.New()
	for _, p := range defaultProducts {
		cat.Register(p.Product)
	}
	staple := cat.MustLookup("rice").ID
	return cat, staple
}

// consumerRoster is the fixed named set of pure consumers in the
// default initialization.
var consumerRoster = []struct {
	name    string
	age     int
	savings float64
	income  float64
}{
	{"Amara", 28 * 365, 1200, 420},
	{"Boris", 41 * 365, 3400, 510},
	{"Chandra", 22 * 365, 300, 260},
	{"Delia", 35 * 365, 2100, 380},
	{"Elan", 55 * 365, 5200, 600},
	{"Farrah", 19 * 365, 150, 210},
}

// laborerRoster is the fixed named set of laborers in the default
// initialization.
var laborerRoster = []struct {
	name    string
	age     int
	skill   float64
	minWage float64
}{
	{"Garrick", 26 * 365, 0.6, 280},
	{"Hana", 33 * 365, 0.8, 340},
	{"Ibrahim", 45 * 365, 0.4, 220},
	{"Jova", 24 * 365, 0.3, 200},
	{"Kestrel", 38 * 365, 0.9, 400},
	{"Lior", 29 * 365, 0.5, 250},
}

// farmerRoster is the fixed named set of farmers in the default
// initialization.
var farmerRoster = []struct {
	name string
	age  int
	land float64
	tech float64
	tax  float64
}{
	{"Mira", 40 * 365, 5, 0.6, 0.05},
	{"Nilsson", 52 * 365, 2, 0.3, 0.08},
	{"Oyelaran", 31 * 365, 8, 0.4, 0.05},
	{"Petra", 46 * 365, 3, 0.5, 0.10},
	{"Quin", 28 * 365, 1.5, 0.2, 0.05},
	{"Rasheed", 60 * 365, 10, 0.7, 0.12},
}

// firmSpec is one entry in the default firm roster.
type firmSpec struct {
	ownerIdx int // index into consumerRoster
	cash     float64
	pf       firm.ProductionFunction
	wage     float64
	overhead float64
	output   string
	workers  int // initial hire count, drawn from laborerRoster in order
}

var firmRoster = []firmSpec{
	{ownerIdx: 0, cash: 8000, pf: firm.NewCobbDouglas(1.2, 0.6, 0.4), wage: 430, overhead: 3500, output: "computer", workers: 2},
	{ownerIdx: 1, cash: 6000, pf: firm.NewCobbDouglas(1.0, 0.5, 0.5), wage: 360, overhead: 2200, output: "phone", workers: 2},
	{ownerIdx: 2, cash: 4000, pf: firm.NewCES(0.5), wage: 320, overhead: 1800, output: "cloth", workers: 1},
	{ownerIdx: 3, cash: 3500, pf: firm.NewCobbDouglas(0.9, 0.55, 0.35), wage: 300, overhead: 1500, output: "tools", workers: 1},
	{ownerIdx: 4, cash: 5000, pf: firm.NewCES(0.3), wage: 340, overhead: 2000, output: "medicine", workers: 2},
	{ownerIdx: 5, cash: 4500, pf: firm.NewCobbDouglas(1.1, 0.5, 0.5), wage: 310, overhead: 1700, output: "cloth", workers: 1},
}

// NewDefaultWorld builds the fixed seeded initialization described in
// spec.md §4.7: the product catalog, ten markets, a roster of consumers,
// laborers, farmers, and firms, with default selections on index 0 of
// each sequence.
func NewDefaultWorld() *World {
	cat, staple := BuildDefaultCatalog()
	w := NewWorld(cat, staple, DefaultSeed)

	for _, p := range defaultProducts {
		id := cat.MustLookup(p.Name).ID
		w.AddMarket(market.New(id, p.typicalPrice))
	}

	for _, cr := range consumerRoster {
		w.AddConsumer(cr.name, cr.age)
	}
	// Re-seed savings/income onto the just-created roster (AddConsumer
	// uses flat defaults; the roster wants varied, named figures).
	for i, cr := range consumerRoster {
		w.Consumers[i].Savings = cr.savings
		w.Consumers[i].DailyIncome = cr.income
	}

	for _, lr := range laborerRoster {
		w.AddLaborer(lr.name, lr.age, lr.skill, lr.minWage)
	}

	for _, fr := range farmerRoster {
		w.AddFarmer(fr.name, fr.age, fr.land, fr.tech)
	}
	for i, fr := range farmerRoster {
		w.Farmers[i].Tax = fr.tax
		for _, crop := range w.Farmers[i].Crops {
			w.Farmers[i].RecomputeSupplyCurve(crop)
		}
	}

	for _, fs := range firmRoster {
		outputID := cat.MustLookup(fs.output).ID
		fm := firm.New(w.allocID(), w.Consumers[fs.ownerIdx].ID, fs.pf, fs.wage, fs.overhead, []catalog.ProductID{outputID})
		fm.Cash = fs.cash
		for j := 0; j < fs.workers && j < len(w.Laborers); j++ {
			l := w.Laborers[j]
			fm.Hire(l.ID, l.Skill, 0)
			l.Employer = w.Consumers[fs.ownerIdx].ID
			l.IsHired = true
		}
		fm.RecomputeCosts()
		w.Firms = append(w.Firms, fm)
	}

	if len(w.Consumers) > 0 {
		w.Selection.Consumer.Assign(w.Consumers[0].ID)
	}
	if len(w.Laborers) > 0 {
		w.Selection.Laborer.Assign(w.Laborers[0].ID)
	}
	if len(w.Farmers) > 0 {
		w.Selection.Farmer.Assign(w.Farmers[0].ID)
	}
	if len(w.Markets) > 0 {
		w.Selection.Market.Assign(int64(w.Markets[0].Product))
	}

	return w
}
