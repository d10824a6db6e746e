package sim

import (
	"github.com/Shafin2954/cppConomy-sub000/internal/agents"
	"github.com/Shafin2954/cppConomy-sub000/internal/firm"
	"github.com/Shafin2954/cppConomy-sub000/internal/kernel"
)

// defaultSavings and defaultIncome seed newly-added agents; the fixed
// seeded roster in init.go uses more varied, named figures, but ad-hoc
// additions via the "add" commands (spec.md §6) get a plain baseline.
const (
	defaultSavings = 500.0
	defaultIncome  = 300.0
)

// AddConsumer creates a pure consumer with default needs for every
// catalog product and appends it to the World (spec.md §6
// add_consumer(name, age)).
func (w *World) AddConsumer(name string, age int) *kernel.Consumer {
	c := kernel.NewConsumer(w.allocID(), name, age, defaultSavings, defaultIncome)
	w.seedNeeds(&c)
	ptr := &c
	w.Consumers = append(w.Consumers, ptr)
	return ptr
}

// AddLaborer creates a laborer with the given skill and reservation
// wage (spec.md §6 add_laborer(name, age, skill, min_wage)).
func (w *World) AddLaborer(name string, age int, skill, minWage float64) (*agents.Laborer, error) {
	if skill < 0 || skill > 1 {
		return nil, errRange("skill must be in [0,1], got %v", skill)
	}
	l := agents.NewLaborer(w.allocID(), name, age, defaultSavings, defaultIncome, skill, minWage)
	w.seedNeeds(&l.Consumer)
	w.Laborers = append(w.Laborers, l)
	return l, nil
}

// AddFarmer creates a farmer with the given land and tech level, and
// seeds it with the default crop portfolio (spec.md §6
// add_farmer(name, age, land, tech)).
func (w *World) AddFarmer(name string, age int, land, tech float64) (*agents.Farmer, error) {
	if tech < 0 || tech > 1 {
		return nil, errRange("tech must be in [0,1], got %v", tech)
	}
	f := agents.NewFarmer(w.allocID(), name, age, defaultSavings, defaultIncome, land, tech, 0.05)
	w.seedNeeds(&f.Consumer)
	w.seedCrops(f)
	w.Farmers = append(w.Farmers, f)
	return f, nil
}

// AddFirm creates a firm owned by the given consumer with a
// Cobb-Douglas production function (spec.md §6
// add_firm(owner_id, cash, α, β)).
func (w *World) AddFirm(ownerID int64, cash, alpha, beta float64) (*firm.Firm, error) {
	if _, ok := w.FindConsumerByID(ownerID); !ok {
		if _, ok := w.findAnyAgentByID(ownerID); !ok {
			return nil, errNotFound("owner %d not found", ownerID)
		}
	}
	pf := firm.NewCobbDouglas(1.0, alpha, beta)
	f := firm.New(w.allocID(), ownerID, pf, defaultWage, defaultOverhead, nil)
	f.Cash = cash
	w.Firms = append(w.Firms, f)
	f.RecomputeCosts()
	return f, nil
}

// findAnyAgentByID checks laborers and farmers too, since AddFirm does
// not restrict ownership to the pure-consumer sequence (spec.md §3 names
// "a consumer" as the typical owner; every firm in the default roster is
// consumer-owned).
func (w *World) findAnyAgentByID(id int64) (int64, bool) {
	for _, l := range w.Laborers {
		if l.ID == id {
			return id, true
		}
	}
	for _, f := range w.Farmers {
		if f.ID == id {
			return id, true
		}
	}
	return 0, false
}

// --- Kill operations (spec.md §6, testable property 8) --------------

// KillConsumer kills the given consumer: clears any selection handle
// pointing at it, marks it dead, and removes it from the owning
// sequence. Firm ownership records are left as-is, mirroring the
// source (spec.md §3 lifecycle, §8 property 8c).
func (w *World) KillConsumer(id int64) error {
	for i, c := range w.Consumers {
		if c.ID == id {
			if sel, ok := w.Selection.Consumer.Get(); ok && sel == id {
				w.Selection.Consumer.Clear()
			}
			c.Alive = false
			w.Consumers = append(w.Consumers[:i], w.Consumers[i+1:]...)
			return nil
		}
	}
	return errNotFound("consumer %d not found", id)
}

// KillLaborer kills the given laborer.
func (w *World) KillLaborer(id int64) error {
	for i, l := range w.Laborers {
		if l.ID == id {
			if sel, ok := w.Selection.Laborer.Get(); ok && sel == id {
				w.Selection.Laborer.Clear()
			}
			l.Alive = false
			w.Laborers = append(w.Laborers[:i], w.Laborers[i+1:]...)
			return nil
		}
	}
	return errNotFound("laborer %d not found", id)
}

// KillFarmer kills the given farmer.
func (w *World) KillFarmer(id int64) error {
	for i, f := range w.Farmers {
		if f.ID == id {
			if sel, ok := w.Selection.Farmer.Get(); ok && sel == id {
				w.Selection.Farmer.Clear()
			}
			f.Alive = false
			w.Farmers = append(w.Farmers[:i], w.Farmers[i+1:]...)
			return nil
		}
	}
	return errNotFound("farmer %d not found", id)
}

// --- Mutation commands (spec.md §6) ----------------------------------

// FarmerUpgrade sets the selected farmer's tech level.
func (w *World) FarmerUpgrade(level float64) error {
	f, ok := w.SelectedFarmer()
	if !ok {
		return errPrecondition("no farmer selected")
	}
	if level < 0 || level > 1 {
		return errRange("tech level must be in [0,1], got %v", level)
	}
	f.UpgradeTech(level)
	return nil
}

// FarmerTax sets the selected farmer's tax rate.
func (w *World) FarmerTax(rate float64) error {
	f, ok := w.SelectedFarmer()
	if !ok {
		return errPrecondition("no farmer selected")
	}
	if rate < 0 || rate > 1 {
		return errRange("tax rate must be in [0,1], got %v", rate)
	}
	f.SetTax(rate)
	return nil
}

// FirmHire hires the named laborer into the selected firm. Validates
// fully before mutating: a laborer-not-found error leaves the firm's
// worker list and cost fields untouched (spec.md §7 transaction policy).
func (w *World) FirmHire(laborerName string) error {
	fm, ok := w.SelectedFirm()
	if !ok {
		return errPrecondition("no firm selected (select a consumer that owns one)")
	}
	l, ok := w.FindLaborer(laborerName)
	if !ok {
		return errNotFound("laborer %q not found", laborerName)
	}
	fm.Hire(l.ID, l.Skill, w.Day)
	l.Employer = fm.OwnerID
	l.IsHired = true
	return nil
}

// FirmFire fires the named laborer from the selected firm.
func (w *World) FirmFire(laborerName string) error {
	fm, ok := w.SelectedFirm()
	if !ok {
		return errPrecondition("no firm selected (select a consumer that owns one)")
	}
	l, ok := w.FindLaborer(laborerName)
	if !ok {
		return errNotFound("laborer %q not found", laborerName)
	}
	if !fm.FireByID(l.ID) {
		return errPrecondition("laborer %q is not hired by the selected firm", laborerName)
	}
	l.Employer = 0
	l.IsHired = false
	return nil
}

// FirmCapital adds a capital unit to the selected firm.
func (w *World) FirmCapital(rental, efficiency float64) error {
	fm, ok := w.SelectedFirm()
	if !ok {
		return errPrecondition("no firm selected (select a consumer that owns one)")
	}
	if rental < 0 {
		return errRange("rental must be >= 0, got %v", rental)
	}
	fm.AddCapital(rental, efficiency)
	return nil
}

// SetIncome sets the daily income of whichever household agent is
// currently selected (consumer, laborer, or farmer, checked in that
// order), per spec.md §6 set_income(value).
func (w *World) SetIncome(value float64) error {
	if value < 0 {
		return errRange("income must be >= 0, got %v", value)
	}
	c := w.selectedAnyConsumer()
	if c == nil {
		return errPrecondition("no consumer, laborer, or farmer selected")
	}
	c.DailyIncome = value
	return nil
}

// selectedAnyConsumer returns the embedded Consumer of whichever
// selection handle currently resolves, preferring the plain-consumer
// handle, then laborer, then farmer.
func (w *World) selectedAnyConsumer() *kernel.Consumer {
	if c, ok := w.SelectedConsumer(); ok {
		return c
	}
	if l, ok := w.SelectedLaborer(); ok {
		return &l.Consumer
	}
	if f, ok := w.SelectedFarmer(); ok {
		return &f.Consumer
	}
	return nil
}
