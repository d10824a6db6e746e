// Package catalog provides the static product catalog shared by reference
// across the simulation. Products are immutable once registered; agents
// hold a stable ProductID handle rather than a name or pointer.
package catalog

import "fmt"

// ProductID is a stable handle into a Catalog. It is an index, not a
// pointer, so it survives copies and serialization without dangling.
type ProductID int

// Product is a static descriptor for one tradeable good.
type Product struct {
	ID ProductID
	// Name is the human-readable, lookup key (e.g. "rice").
	Name string
	// DecayRate is the inventory lost per day to spoilage.
	DecayRate float64
	// Elasticity is income elasticity η. Positive: normal good.
	// Negative: inferior good.
	Elasticity float64
	// BaseConsumption is the reference daily consumption quantity used
	// by the income-elastic demand rule.
	BaseConsumption float64
	// GrowthRate is the daily capacity growth for crops; zero for
	// manufactured goods.
	GrowthRate float64
}

// Catalog is the ordered, append-only set of registered products.
type Catalog struct {
	products []Product
	byName   map[string]ProductID
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{byName: make(map[string]ProductID)}
}

// Register adds a product and returns its stable handle. Registering the
// same name twice is a programming error.
func (c *Catalog) Register(p Product) ProductID {
	if _, exists := c.byName[p.Name]; exists {
		panic(fmt.Sprintf("catalog: product %q already registered", p.Name))
	}
	id := ProductID(len(c.products))
	p.ID = id
	c.products = append(c.products, p)
	c.byName[p.Name] = id
	return id
}

// Get returns the product for a handle. Panics on an out-of-range handle,
// which can only arise from a programming error (handles are only minted
// by Register).
func (c *Catalog) Get(id ProductID) Product {
	return c.products[id]
}

// Lookup resolves a product by name, for the paths where agent
// initialization only has a name on hand (spec.md §3).
func (c *Catalog) Lookup(name string) (Product, bool) {
	id, ok := c.byName[name]
	if !ok {
		return Product{}, false
	}
	return c.products[id], true
}

// MustLookup is Lookup but panics if the name is unknown; used during
// deterministic world initialization where every name is a known literal.
func (c *Catalog) MustLookup(name string) Product {
	p, ok := c.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("catalog: unknown product %q", name))
	}
	return p
}

// All returns every registered product in registration order.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of registered products.
func (c *Catalog) Len() int {
	return len(c.products)
}
