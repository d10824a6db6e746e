// Package sim provides the World: the owning container for every agent,
// firm, and market, the per-day scheduler, and the selection registry
// the external command layer drives (spec.md §3, §4.6, §6).
package sim

import (
	"github.com/google/uuid"

	"github.com/Shafin2954/cppConomy-sub000/internal/agents"
	"github.com/Shafin2954/cppConomy-sub000/internal/catalog"
	"github.com/Shafin2954/cppConomy-sub000/internal/entropy"
	"github.com/Shafin2954/cppConomy-sub000/internal/firm"
	"github.com/Shafin2954/cppConomy-sub000/internal/kernel"
	"github.com/Shafin2954/cppConomy-sub000/internal/market"
	"github.com/Shafin2954/cppConomy-sub000/internal/policy"
	"github.com/Shafin2954/cppConomy-sub000/internal/selection"
)

// World owns every agent, firm, and market in the simulated economy. It
// is the sole owner of this state (spec.md §3): selection handles are
// the only non-owning references inside the kernel.
type World struct {
	RunID uuid.UUID

	Catalog *catalog.Catalog
	RNG     *entropy.Source
	Staple  catalog.ProductID

	Consumers []*kernel.Consumer
	Laborers  []*agents.Laborer
	Farmers   []*agents.Farmer
	Firms     []*firm.Firm
	Markets   []*market.Market

	marketIndex map[catalog.ProductID]*market.Market

	Selection selection.Registry

	Day   uint64
	Macro MacroStats

	// Government is this world's fiscal/monetary policy authority
	// (macro-policy supplement to spec.md; see SPEC_FULL.md).
	Government *policy.Government
	// ExpectedInflation is the adaptive-expectations state the Phillips
	// curve reads and updates every day.
	ExpectedInflation float64
	// LastShockType and LastShockDay record the most recently applied
	// stochastic macro shock, for status reporting.
	LastShockType string
	LastShockDay  uint64

	nextID int64
}

// NewWorld creates an empty World with a seeded RNG and a stamped run ID
// (spec.md §5: "random number generator is a process-wide singleton
// seeded once at startup").
func NewWorld(cat *catalog.Catalog, staple catalog.ProductID, seed int64) *World {
	return &World{
		RunID:             uuid.New(),
		Catalog:           cat,
		RNG:               entropy.New(seed),
		Staple:            staple,
		marketIndex:       make(map[catalog.ProductID]*market.Market),
		Government:        policy.NewGovernment(),
		ExpectedInflation: defaultExpectedInflation,
	}
}

// allocID mints the next stable integer ID, shared across every agent
// and firm kind so that a firm's OwnerID uniquely identifies one entity
// regardless of which sequence it lives in. Markets are identified by
// their product, not by an allocated ID.
func (w *World) allocID() int64 {
	w.nextID++
	return w.nextID
}

// AddMarket registers a market and indexes it by product.
func (w *World) AddMarket(m *market.Market) {
	w.Markets = append(w.Markets, m)
	w.marketIndex[m.Product] = m
}

// MarketFor returns the market for a product, if one exists.
func (w *World) MarketFor(id catalog.ProductID) (*market.Market, bool) {
	m, ok := w.marketIndex[id]
	return m, ok
}

// PriceMap builds the {product -> price} map phase 2 of pass_day needs,
// and that CLI commands use to quote current prices.
func (w *World) PriceMap() map[catalog.ProductID]float64 {
	prices := make(map[catalog.ProductID]float64, len(w.Markets))
	for _, m := range w.Markets {
		prices[m.Product] = m.Price
	}
	return prices
}

// --- Lookup helpers -------------------------------------------------

// FindConsumer returns the consumer with the given name, if alive.
func (w *World) FindConsumer(name string) (*kernel.Consumer, bool) {
	for _, c := range w.Consumers {
		if c.Alive && c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// FindConsumerByID returns the consumer with the given stable ID.
func (w *World) FindConsumerByID(id int64) (*kernel.Consumer, bool) {
	for _, c := range w.Consumers {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// FindLaborer returns the laborer with the given name, if alive.
func (w *World) FindLaborer(name string) (*agents.Laborer, bool) {
	for _, l := range w.Laborers {
		if l.Alive && l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// FindFarmer returns the farmer with the given name, if alive.
func (w *World) FindFarmer(name string) (*agents.Farmer, bool) {
	for _, f := range w.Farmers {
		if f.Alive && f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// FindFirmByID returns the firm with the given stable ID.
func (w *World) FindFirmByID(id int64) (*firm.Firm, bool) {
	for _, f := range w.Firms {
		if f.ID == id {
			return f, true
		}
	}
	return nil, false
}

// FirstFirmOwnedBy returns the first firm (in insertion order) owned by
// the given consumer ID. The "selected firm" is always derived this way
// rather than stored as its own handle (spec.md §3).
func (w *World) FirstFirmOwnedBy(ownerID int64) (*firm.Firm, bool) {
	for _, f := range w.Firms {
		if f.OwnerID == ownerID {
			return f, true
		}
	}
	return nil, false
}

// --- Selection -------------------------------------------------------

// SelectConsumer selects a consumer by name.
func (w *World) SelectConsumer(name string) error {
	c, ok := w.FindConsumer(name)
	if !ok {
		return errNotFound("consumer %q not found", name)
	}
	w.Selection.Consumer.Assign(c.ID)
	return nil
}

// SelectLaborer selects a laborer by name.
func (w *World) SelectLaborer(name string) error {
	l, ok := w.FindLaborer(name)
	if !ok {
		return errNotFound("laborer %q not found", name)
	}
	w.Selection.Laborer.Assign(l.ID)
	return nil
}

// SelectFarmer selects a farmer by name.
func (w *World) SelectFarmer(name string) error {
	f, ok := w.FindFarmer(name)
	if !ok {
		return errNotFound("farmer %q not found", name)
	}
	w.Selection.Farmer.Assign(f.ID)
	return nil
}

// SelectMarket selects the market for a product by name.
func (w *World) SelectMarket(productName string) error {
	p, ok := w.Catalog.Lookup(productName)
	if !ok {
		return errNotFound("product %q not found", productName)
	}
	if _, ok := w.marketIndex[p.ID]; !ok {
		return errNotFound("no market for product %q", productName)
	}
	w.Selection.Market.Assign(int64(p.ID))
	return nil
}

// ClearSelection empties every selection handle.
func (w *World) ClearSelection() {
	w.Selection.ClearAll()
}

// SelectedConsumer resolves the consumer selection handle, if set.
func (w *World) SelectedConsumer() (*kernel.Consumer, bool) {
	id, set := w.Selection.Consumer.Get()
	if !set {
		return nil, false
	}
	return w.FindConsumerByID(id)
}

// SelectedLaborer resolves the laborer selection handle, if set.
func (w *World) SelectedLaborer() (*agents.Laborer, bool) {
	id, set := w.Selection.Laborer.Get()
	if !set {
		return nil, false
	}
	for _, l := range w.Laborers {
		if l.ID == id {
			return l, true
		}
	}
	return nil, false
}

// SelectedFarmer resolves the farmer selection handle, if set.
func (w *World) SelectedFarmer() (*agents.Farmer, bool) {
	id, set := w.Selection.Farmer.Get()
	if !set {
		return nil, false
	}
	for _, f := range w.Farmers {
		if f.ID == id {
			return f, true
		}
	}
	return nil, false
}

// SelectedMarket resolves the market selection handle, if set.
func (w *World) SelectedMarket() (*market.Market, bool) {
	id, set := w.Selection.Market.Get()
	if !set {
		return nil, false
	}
	return w.MarketFor(catalog.ProductID(id))
}

// SelectedFirm derives the "selected firm" as the first firm owned by
// the selected consumer (spec.md §3).
func (w *World) SelectedFirm() (*firm.Firm, bool) {
	c, ok := w.SelectedConsumer()
	if !ok {
		return nil, false
	}
	return w.FirstFirmOwnedBy(c.ID)
}
