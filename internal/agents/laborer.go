package agents

import (
	"github.com/Shafin2954/cppConomy-sub000/internal/catalog"
	"github.com/Shafin2954/cppConomy-sub000/internal/kernel"
)

// Laborer extends Consumer with a skill level and a reservation wage.
// It adds no structural per-day hook of its own (spec.md §9: "laborer
// adds nothing structural") — its daily update is exactly the shared
// Consumer update.
type Laborer struct {
	kernel.Consumer

	Skill     float64 // [0,1]
	MinWage   float64
	Employer  int64 // firm owner id this laborer currently works for, 0 if unemployed
	IsHired   bool
}

// NewLaborer creates a Laborer with the given skill and reservation wage.
func NewLaborer(id int64, name string, ageDays int, savings, dailyIncome, skill, minWage float64) *Laborer {
	return &Laborer{
		Consumer: kernel.NewConsumer(id, name, ageDays, savings, dailyIncome),
		Skill:    skill,
		MinWage:  minWage,
	}
}

// UpdateDaily runs the shared Consumer update; laborers have no
// additional per-day behavior beyond it.
func (l *Laborer) UpdateDaily(cat *catalog.Catalog, staple catalog.ProductID, gdpPerCapita float64, prices map[catalog.ProductID]float64) {
	l.Consumer.UpdateDaily(cat, staple, gdpPerCapita, prices)
}
