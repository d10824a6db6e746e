package clicmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Shafin2954/cppConomy-sub000/internal/catalog"
	"github.com/Shafin2954/cppConomy-sub000/internal/kernel"
	"github.com/Shafin2954/cppConomy-sub000/internal/sim"
)

// This file renders the *_details / *_mu / *_surplus / *_substitution /
// *_needs / *_demand_curve family of inspection commands (spec.md §6).
// Each operates on whichever agent kind's selection handle is currently
// set, erroring with a precondition message otherwise.

func (d *Dispatcher) consumerDetails() (string, error) {
	c, ok := d.World.SelectedConsumer()
	if !ok {
		return "", fmt.Errorf("no consumer selected")
	}
	return renderConsumer(d, c), nil
}

func renderConsumer(d *Dispatcher, c *kernel.Consumer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "consumer %q (id %d)\n", c.Name, c.ID)
	fmt.Fprintf(&b, "age %d days\n", c.AgeDays)
	fmt.Fprintf(&b, "savings %s\n", humanize.Commaf(c.Savings))
	fmt.Fprintf(&b, "daily income %s\n", humanize.Commaf(c.DailyIncome))
	fmt.Fprintf(&b, "last expenses %s\n", humanize.Commaf(c.LastExpenses))
	fmt.Fprintf(&b, "marginal utility per unit %.6f\n", c.MuPerUnit)
	fmt.Fprintf(&b, "needs: %s\n", strings.Join(sortedProductNames(c.Needs, d.World.Catalog), ", "))
	return b.String()
}

func (d *Dispatcher) consumerMU(args []string) (string, error) {
	c, ok := d.World.SelectedConsumer()
	if !ok {
		return "", fmt.Errorf("no consumer selected")
	}
	id, err := resolveProductArg(d.World, args)
	if err != nil {
		return "", err
	}
	mu := c.WTP(id) * c.MuPerUnit
	return fmt.Sprintf("%.6f", mu), nil
}

func (d *Dispatcher) consumerSurplus(args []string) (string, error) {
	c, ok := d.World.SelectedConsumer()
	if !ok {
		return "", fmt.Errorf("no consumer selected")
	}
	id, err := resolveProductArg(d.World, args)
	if err != nil {
		return "", err
	}
	m, ok := d.World.MarketFor(id)
	if !ok {
		return "", fmt.Errorf("no market for that product")
	}
	s := c.ConsumerSurplus(id, m.Price)
	return fmt.Sprintf("%.4f", s), nil
}

func (d *Dispatcher) consumerSubstitution() (string, error) {
	c, ok := d.World.SelectedConsumer()
	if !ok {
		return "", fmt.Errorf("no consumer selected")
	}
	return renderSubstitution(d, c.Needs, c.Substitution), nil
}

func (d *Dispatcher) consumerNeeds() (string, error) {
	c, ok := d.World.SelectedConsumer()
	if !ok {
		return "", fmt.Errorf("no consumer selected")
	}
	return renderNeeds(d, c.Needs, c.Consumed), nil
}

func (d *Dispatcher) consumerDemandCurve(args []string) (string, error) {
	c, ok := d.World.SelectedConsumer()
	if !ok {
		return "", fmt.Errorf("no consumer selected")
	}
	id, err := resolveProductArg(d.World, args)
	if err != nil {
		return "", err
	}
	dl, ok := c.DemandLines[id]
	if !ok {
		return "", fmt.Errorf("no demand line for that product")
	}
	return fmt.Sprintf("p = %.4f - %.4fQ", dl.Intercept, dl.Slope), nil
}

// --- farmer --------------------------------------------------------------

func (d *Dispatcher) farmerDetails() (string, error) {
	f, ok := d.World.SelectedFarmer()
	if !ok {
		return "", fmt.Errorf("no farmer selected")
	}
	var b strings.Builder
	b.WriteString(renderConsumer(d, &f.Consumer))
	fmt.Fprintf(&b, "land %.2f acres\n", f.Land)
	fmt.Fprintf(&b, "tech %.2f\n", f.Tech)
	fmt.Fprintf(&b, "tax %.2f\n", f.Tax)
	fmt.Fprintf(&b, "weather %.2f\n", f.Weather)
	return b.String(), nil
}

func (d *Dispatcher) farmerMU(args []string) (string, error) {
	f, ok := d.World.SelectedFarmer()
	if !ok {
		return "", fmt.Errorf("no farmer selected")
	}
	id, err := resolveProductArg(d.World, args)
	if err != nil {
		return "", err
	}
	mu := f.WTP(id) * f.MuPerUnit
	return fmt.Sprintf("%.6f", mu), nil
}

func (d *Dispatcher) farmerSurplus(args []string) (string, error) {
	f, ok := d.World.SelectedFarmer()
	if !ok {
		return "", fmt.Errorf("no farmer selected")
	}
	id, err := resolveProductArg(d.World, args)
	if err != nil {
		return "", err
	}
	m, ok := d.World.MarketFor(id)
	if !ok {
		return "", fmt.Errorf("no market for that product")
	}
	s := f.ConsumerSurplus(id, m.Price)
	return fmt.Sprintf("%.4f", s), nil
}

func (d *Dispatcher) farmerSubstitution() (string, error) {
	f, ok := d.World.SelectedFarmer()
	if !ok {
		return "", fmt.Errorf("no farmer selected")
	}
	return renderSubstitution(d, f.Needs, f.Substitution), nil
}

func (d *Dispatcher) farmerNeeds() (string, error) {
	f, ok := d.World.SelectedFarmer()
	if !ok {
		return "", fmt.Errorf("no farmer selected")
	}
	return renderNeeds(d, f.Needs, f.Consumed), nil
}

func (d *Dispatcher) farmerDemandCurve(args []string) (string, error) {
	f, ok := d.World.SelectedFarmer()
	if !ok {
		return "", fmt.Errorf("no farmer selected")
	}
	id, err := resolveProductArg(d.World, args)
	if err != nil {
		return "", err
	}
	dl, ok := f.DemandLines[id]
	if !ok {
		return "", fmt.Errorf("no demand line for that product")
	}
	return fmt.Sprintf("p = %.4f - %.4fQ", dl.Intercept, dl.Slope), nil
}

func (d *Dispatcher) farmerSupply(args []string) (string, error) {
	f, ok := d.World.SelectedFarmer()
	if !ok {
		return "", fmt.Errorf("no farmer selected")
	}
	if len(args) != 2 {
		return "", fmt.Errorf("farmer_supply(product, price) takes 2 arguments")
	}
	id, err := resolveProduct(d.World, args[0])
	if err != nil {
		return "", err
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
	if err != nil {
		return "", fmt.Errorf("invalid price %q", args[1])
	}
	q := f.SupplyQuantity(id.ID, price)
	return fmt.Sprintf("%.4f", q), nil
}

func (d *Dispatcher) farmerCrops() (string, error) {
	f, ok := d.World.SelectedFarmer()
	if !ok {
		return "", fmt.Errorf("no farmer selected")
	}
	var b strings.Builder
	for _, id := range f.Crops {
		p := d.World.Catalog.Get(id)
		line := f.SupplyLines[id]
		fmt.Fprintf(&b, "%s\tmax_output=%.2f\tgrowth=%.2f\tdecay=%.2f\tsupply=(%.2f + %.4fQ)\n",
			p.Name, f.MaxOutput[id], f.GrowthRate[id], f.DecayRate[id], line.Intercept, line.Slope)
	}
	return b.String(), nil
}

func (d *Dispatcher) farmerWeather() (string, error) {
	f, ok := d.World.SelectedFarmer()
	if !ok {
		return "", fmt.Errorf("no farmer selected")
	}
	return fmt.Sprintf("%.4f", f.Weather), nil
}

func (d *Dispatcher) farmerSupplyCurve(args []string) (string, error) {
	f, ok := d.World.SelectedFarmer()
	if !ok {
		return "", fmt.Errorf("no farmer selected")
	}
	id, err := resolveProductArg(d.World, args)
	if err != nil {
		return "", err
	}
	line, ok := f.EffectiveSupplyLine(id)
	if !ok {
		return "", fmt.Errorf("no supply line for that crop")
	}
	return fmt.Sprintf("p = %.4f + %.4fQ", line.Intercept, line.Slope), nil
}

// --- laborer ---------------------------------------------------------

func (d *Dispatcher) laborerDetails() (string, error) {
	l, ok := d.World.SelectedLaborer()
	if !ok {
		return "", fmt.Errorf("no laborer selected")
	}
	var b strings.Builder
	b.WriteString(renderConsumer(d, &l.Consumer))
	fmt.Fprintf(&b, "skill %.2f\n", l.Skill)
	fmt.Fprintf(&b, "min wage %s\n", humanize.Commaf(l.MinWage))
	fmt.Fprintf(&b, "hired %v (employer %d)\n", l.IsHired, l.Employer)
	return b.String(), nil
}

// --- firm --------------------------------------------------------------

func (d *Dispatcher) firmDetails() (string, error) {
	f, ok := d.World.SelectedFirm()
	if !ok {
		return "", fmt.Errorf("no firm selected (select a consumer that owns one)")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "firm %d, owner %d\n", f.ID, f.OwnerID)
	fmt.Fprintf(&b, "cash %s\n", humanize.Commaf(f.Cash))
	fmt.Fprintf(&b, "wage %s\n", humanize.Commaf(f.Wage))
	fmt.Fprintf(&b, "workers %d, capital units %d\n", len(f.Workers), len(f.Capital))
	fmt.Fprintf(&b, "outputs: %s\n", strings.Join(sortedProductNames(f.Outputs, d.World.Catalog), ", "))
	return b.String(), nil
}

func (d *Dispatcher) firmCosts() (string, error) {
	f, ok := d.World.SelectedFirm()
	if !ok {
		return "", fmt.Errorf("no firm selected (select a consumer that owns one)")
	}
	c := f.Costs
	var b strings.Builder
	fmt.Fprintf(&b, "Q   %.4f\n", c.Q)
	fmt.Fprintf(&b, "TFC %s\n", humanize.Commaf(c.TFC))
	fmt.Fprintf(&b, "TVC %s\n", humanize.Commaf(c.TVC))
	fmt.Fprintf(&b, "TC  %s\n", humanize.Commaf(c.TC))
	fmt.Fprintf(&b, "AFC %s\n", formatMaybeInf(c.AFC))
	fmt.Fprintf(&b, "AVC %.4f\n", c.AVC)
	fmt.Fprintf(&b, "AC  %s\n", formatMaybeInf(c.AC))
	fmt.Fprintf(&b, "MC  %s\n", formatMaybeInf(c.MC))
	fmt.Fprintf(&b, "verdict: %s\n", f.ScaleVerdict())
	return b.String(), nil
}

func (d *Dispatcher) firmOutput() (string, error) {
	f, ok := d.World.SelectedFirm()
	if !ok {
		return "", fmt.Errorf("no firm selected (select a consumer that owns one)")
	}
	return fmt.Sprintf("%.4f", f.Costs.Q), nil
}

func (d *Dispatcher) firmMP() (string, error) {
	f, ok := d.World.SelectedFirm()
	if !ok {
		return "", fmt.Errorf("no firm selected (select a consumer that owns one)")
	}
	return fmt.Sprintf("MPL=%.6f MPK=%.6f", f.Costs.MPL, f.Costs.MPK), nil
}

func (d *Dispatcher) firmEfficiency() (string, error) {
	f, ok := d.World.SelectedFirm()
	if !ok {
		return "", fmt.Errorf("no firm selected (select a consumer that owns one)")
	}
	laborEff, capitalEff := f.FactorEfficiency()
	favorsLabor, nearOptimal := f.FavorsHiring()
	return fmt.Sprintf("labor_efficiency=%.4f capital_efficiency=%.4f favors_hiring=%v near_optimal=%v",
		laborEff, capitalEff, favorsLabor, nearOptimal), nil
}

// --- market --------------------------------------------------------------

func (d *Dispatcher) marketDetails() (string, error) {
	m, ok := d.World.SelectedMarket()
	if !ok {
		return "", fmt.Errorf("no market selected")
	}
	p := d.World.Catalog.Get(m.Product)
	var b strings.Builder
	fmt.Fprintf(&b, "market %s\n", p.Name)
	fmt.Fprintf(&b, "price %s\n", humanize.Commaf(m.Price))
	fmt.Fprintf(&b, "demand p = %.4f - %.4fQ\n", m.Demand.Intercept, m.Demand.Slope)
	fmt.Fprintf(&b, "supply p = %.4f + %.4fQ\n", m.Supply.Intercept, m.Supply.Slope)
	eq := m.Equilibrium()
	if eq.Ok {
		fmt.Fprintf(&b, "equilibrium p*=%.4f Q*=%.4f\n", eq.Price, eq.Quantity)
	} else {
		fmt.Fprintf(&b, "equilibrium: degenerate\n")
	}
	return b.String(), nil
}

func (d *Dispatcher) marketHistory() (string, error) {
	m, ok := d.World.SelectedMarket()
	if !ok {
		return "", fmt.Errorf("no market selected")
	}
	strs := make([]string, len(m.History))
	for i, p := range m.History {
		strs[i] = strconv.FormatFloat(p, 'f', 2, 64)
	}
	return strings.Join(strs, ", "), nil
}

// --- shared rendering helpers --------------------------------------------

func renderSubstitution(d *Dispatcher, needs []catalog.ProductID, sub map[catalog.ProductID]float64) string {
	var b strings.Builder
	for _, id := range needs {
		p := d.World.Catalog.Get(id)
		fmt.Fprintf(&b, "%s\t%.4f\n", p.Name, sub[id])
	}
	return b.String()
}

func renderNeeds(d *Dispatcher, needs []catalog.ProductID, consumed map[catalog.ProductID]float64) string {
	var b strings.Builder
	for _, id := range needs {
		p := d.World.Catalog.Get(id)
		fmt.Fprintf(&b, "%s\tconsumed=%.4f\n", p.Name, consumed[id])
	}
	return b.String()
}

func formatMaybeInf(v float64) string {
	if v > 1e18 {
		return "+Inf"
	}
	return humanize.Commaf(v)
}

// resolveProductArg expects exactly one argument naming a product and
// resolves it against the world catalog.
func resolveProductArg(w *sim.World, args []string) (catalog.ProductID, error) {
	name, err := oneArg(args)
	if err != nil {
		return 0, err
	}
	p, err := resolveProduct(w, name)
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}
