package clicmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"

	"github.com/Shafin2954/cppConomy-sub000/internal/catalog"
	"github.com/Shafin2954/cppConomy-sub000/internal/sim"
)

// Dispatcher routes parsed Commands onto World operations. It holds no
// state of its own beyond the World reference — every command is a
// self-contained transaction against it (spec.md §7).
type Dispatcher struct {
	World *sim.World
}

// NewDispatcher creates a Dispatcher over the given World.
func NewDispatcher(w *sim.World) *Dispatcher {
	return &Dispatcher{World: w}
}

// Execute runs one parsed Command and returns its textual result.
// Errors are returned as-is; the caller renders them as "Error: <msg>"
// per spec.md §7 (this package never prints directly, matching the
// ambient convention that kernel-adjacent packages don't log — only
// cmd/ does).
func (d *Dispatcher) Execute(cmd *Command) (string, error) {
	if cmd == nil {
		return "", nil
	}

	switch cmd.Name {
	case "__assign__":
		return d.assign(cmd.Args[0], cmd.Args[1])
	case "__property__":
		return d.property(cmd.Args[0], cmd.Args[1])
	}

	w := d.World

	switch cmd.Name {
	case "consumers":
		return d.listConsumers(), nil
	case "laborers":
		return d.listLaborers(), nil
	case "farmers":
		return d.listFarmers(), nil
	case "firms":
		return d.listFirms(), nil
	case "markets":
		return d.listMarkets(), nil
	case "products":
		return d.listProducts(), nil

	case "add_consumer":
		name, age, err := nameAge(cmd.Args)
		if err != nil {
			return "", err
		}
		c := w.AddConsumer(name, age)
		return fmt.Sprintf("added consumer %q (id %d)", c.Name, c.ID), nil

	case "add_laborer":
		if len(cmd.Args) != 4 {
			return "", fmt.Errorf("add_laborer(name, age, skill, min_wage) takes 4 arguments")
		}
		name := cmd.Args[0]
		age, err := strconv.Atoi(strings.TrimSpace(cmd.Args[1]))
		if err != nil {
			return "", fmt.Errorf("invalid age %q", cmd.Args[1])
		}
		skill, err := strconv.ParseFloat(strings.TrimSpace(cmd.Args[2]), 64)
		if err != nil {
			return "", fmt.Errorf("invalid skill %q", cmd.Args[2])
		}
		minWage, err := strconv.ParseFloat(strings.TrimSpace(cmd.Args[3]), 64)
		if err != nil {
			return "", fmt.Errorf("invalid min_wage %q", cmd.Args[3])
		}
		l, err := w.AddLaborer(name, age, skill, minWage)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("added laborer %q (id %d)", l.Name, l.ID), nil

	case "add_farmer":
		if len(cmd.Args) != 4 {
			return "", fmt.Errorf("add_farmer(name, age, land, tech) takes 4 arguments")
		}
		name := cmd.Args[0]
		age, err := strconv.Atoi(strings.TrimSpace(cmd.Args[1]))
		if err != nil {
			return "", fmt.Errorf("invalid age %q", cmd.Args[1])
		}
		land, err := strconv.ParseFloat(strings.TrimSpace(cmd.Args[2]), 64)
		if err != nil {
			return "", fmt.Errorf("invalid land %q", cmd.Args[2])
		}
		tech, err := strconv.ParseFloat(strings.TrimSpace(cmd.Args[3]), 64)
		if err != nil {
			return "", fmt.Errorf("invalid tech %q", cmd.Args[3])
		}
		f, err := w.AddFarmer(name, age, land, tech)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("added farmer %q (id %d)", f.Name, f.ID), nil

	case "add_firm":
		if len(cmd.Args) != 4 {
			return "", fmt.Errorf("add_firm(owner_id, cash, alpha, beta) takes 4 arguments")
		}
		ownerID, err := strconv.ParseInt(strings.TrimSpace(cmd.Args[0]), 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid owner_id %q", cmd.Args[0])
		}
		cash, err := strconv.ParseFloat(strings.TrimSpace(cmd.Args[1]), 64)
		if err != nil {
			return "", fmt.Errorf("invalid cash %q", cmd.Args[1])
		}
		alpha, err := strconv.ParseFloat(strings.TrimSpace(cmd.Args[2]), 64)
		if err != nil {
			return "", fmt.Errorf("invalid alpha %q", cmd.Args[2])
		}
		beta, err := strconv.ParseFloat(strings.TrimSpace(cmd.Args[3]), 64)
		if err != nil {
			return "", fmt.Errorf("invalid beta %q", cmd.Args[3])
		}
		fm, err := w.AddFirm(ownerID, cash, alpha, beta)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("added firm (id %d, owner %d)", fm.ID, fm.OwnerID), nil

	case "select_consumer":
		name, err := oneArg(cmd.Args)
		if err != nil {
			return "", err
		}
		if err := w.SelectConsumer(name); err != nil {
			return "", err
		}
		return fmt.Sprintf("selected consumer %q", name), nil

	case "select_laborer":
		name, err := oneArg(cmd.Args)
		if err != nil {
			return "", err
		}
		if err := w.SelectLaborer(name); err != nil {
			return "", err
		}
		return fmt.Sprintf("selected laborer %q", name), nil

	case "select_farmer":
		name, err := oneArg(cmd.Args)
		if err != nil {
			return "", err
		}
		if err := w.SelectFarmer(name); err != nil {
			return "", err
		}
		return fmt.Sprintf("selected farmer %q", name), nil

	case "select_market":
		name, err := oneArg(cmd.Args)
		if err != nil {
			return "", err
		}
		if err := w.SelectMarket(name); err != nil {
			return "", err
		}
		return fmt.Sprintf("selected market %q", name), nil

	case "clear_selection":
		w.ClearSelection()
		return "selection cleared", nil

	case "consumer_details":
		return d.consumerDetails()
	case "consumer_mu":
		return d.consumerMU(cmd.Args)
	case "consumer_surplus":
		return d.consumerSurplus(cmd.Args)
	case "consumer_substitution":
		return d.consumerSubstitution()
	case "consumer_needs":
		return d.consumerNeeds()
	case "consumer_demand_curve":
		return d.consumerDemandCurve(cmd.Args)

	case "farmer_details":
		return d.farmerDetails()
	case "farmer_mu":
		return d.farmerMU(cmd.Args)
	case "farmer_surplus":
		return d.farmerSurplus(cmd.Args)
	case "farmer_substitution":
		return d.farmerSubstitution()
	case "farmer_needs":
		return d.farmerNeeds()
	case "farmer_demand_curve":
		return d.farmerDemandCurve(cmd.Args)
	case "farmer_supply":
		return d.farmerSupply(cmd.Args)
	case "farmer_crops":
		return d.farmerCrops()
	case "farmer_weather":
		return d.farmerWeather()
	case "farmer_supply_curve":
		return d.farmerSupplyCurve(cmd.Args)

	case "laborer_details":
		return d.laborerDetails()

	case "firm_details":
		return d.firmDetails()
	case "firm_costs":
		return d.firmCosts()
	case "firm_output":
		return d.firmOutput()
	case "firm_mp":
		return d.firmMP()
	case "firm_efficiency":
		return d.firmEfficiency()

	case "market_details":
		return d.marketDetails()
	case "market_history":
		return d.marketHistory()

	case "farmer_upgrade":
		level, err := oneFloat(cmd.Args)
		if err != nil {
			return "", err
		}
		if err := w.FarmerUpgrade(level); err != nil {
			return "", err
		}
		return fmt.Sprintf("farmer tech upgraded to %.2f", level), nil

	case "farmer_tax":
		rate, err := oneFloat(cmd.Args)
		if err != nil {
			return "", err
		}
		if err := w.FarmerTax(rate); err != nil {
			return "", err
		}
		return fmt.Sprintf("farmer tax set to %.2f", rate), nil

	case "firm_hire":
		name, err := oneArg(cmd.Args)
		if err != nil {
			return "", err
		}
		if err := w.FirmHire(name); err != nil {
			return "", err
		}
		return fmt.Sprintf("hired %q", name), nil

	case "firm_fire":
		name, err := oneArg(cmd.Args)
		if err != nil {
			return "", err
		}
		if err := w.FirmFire(name); err != nil {
			return "", err
		}
		return fmt.Sprintf("fired %q", name), nil

	case "firm_capital":
		if len(cmd.Args) != 2 {
			return "", fmt.Errorf("firm_capital(rental, efficiency) takes 2 arguments")
		}
		rental, err := strconv.ParseFloat(strings.TrimSpace(cmd.Args[0]), 64)
		if err != nil {
			return "", fmt.Errorf("invalid rental %q", cmd.Args[0])
		}
		efficiency, err := strconv.ParseFloat(strings.TrimSpace(cmd.Args[1]), 64)
		if err != nil {
			return "", fmt.Errorf("invalid efficiency %q", cmd.Args[1])
		}
		if err := w.FirmCapital(rental, efficiency); err != nil {
			return "", err
		}
		return "capital unit added", nil

	case "set_income":
		value, err := oneFloat(cmd.Args)
		if err != nil {
			return "", err
		}
		if err := w.SetIncome(value); err != nil {
			return "", err
		}
		return fmt.Sprintf("income set to %s", humanize.Commaf(value)), nil

	case "kill_consumer":
		c, ok := w.SelectedConsumer()
		if !ok {
			return "", fmt.Errorf("no consumer selected")
		}
		if err := w.KillConsumer(c.ID); err != nil {
			return "", err
		}
		return fmt.Sprintf("killed consumer %q", c.Name), nil

	case "kill_farmer":
		f, ok := w.SelectedFarmer()
		if !ok {
			return "", fmt.Errorf("no farmer selected")
		}
		if err := w.KillFarmer(f.ID); err != nil {
			return "", err
		}
		return fmt.Sprintf("killed farmer %q", f.Name), nil

	case "kill_laborer":
		l, ok := w.SelectedLaborer()
		if !ok {
			return "", fmt.Errorf("no laborer selected")
		}
		if err := w.KillLaborer(l.ID); err != nil {
			return "", err
		}
		return fmt.Sprintf("killed laborer %q", l.Name), nil

	case "pass_day":
		n := 1
		if len(cmd.Args) == 1 {
			v, err := strconv.Atoi(strings.TrimSpace(cmd.Args[0]))
			if err != nil {
				return "", fmt.Errorf("invalid day count %q", cmd.Args[0])
			}
			n = v
		} else if len(cmd.Args) > 1 {
			return "", fmt.Errorf("pass_day takes at most one argument")
		}
		if err := w.PassDay(n); err != nil {
			return "", err
		}
		return fmt.Sprintf("advanced %d day(s), now day %d", n, w.Day), nil

	case "gov_tax":
		if len(cmd.Args) != 2 {
			return "", fmt.Errorf("gov_tax(rate, target) takes 2 arguments")
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(cmd.Args[0]), 64)
		if err != nil {
			return "", fmt.Errorf("invalid rate %q", cmd.Args[0])
		}
		target := strings.TrimSpace(cmd.Args[1])
		if err := w.GovTax(rate, target); err != nil {
			return "", err
		}
		return fmt.Sprintf("tax rate set to %.2f (%s)", rate, target), nil

	case "gov_interest":
		rate, err := oneFloat(cmd.Args)
		if err != nil {
			return "", err
		}
		if err := w.GovInterestRate(rate); err != nil {
			return "", err
		}
		return fmt.Sprintf("interest rate set to %.4f", rate), nil

	case "gov_stimulus":
		amount, err := oneFloat(cmd.Args)
		if err != nil {
			return "", err
		}
		if err := w.GovStimulus(amount); err != nil {
			return "", err
		}
		return fmt.Sprintf("stimulus of %s granted", humanize.Commaf(amount)), nil

	case "trigger_shock":
		if len(cmd.Args) != 2 {
			return "", fmt.Errorf("trigger_shock(type, severity) takes 2 arguments")
		}
		name := strings.TrimSpace(cmd.Args[0])
		severity, err := strconv.ParseFloat(strings.TrimSpace(cmd.Args[1]), 64)
		if err != nil {
			return "", fmt.Errorf("invalid severity %q", cmd.Args[1])
		}
		if err := w.TriggerShock(name, severity); err != nil {
			return "", err
		}
		return fmt.Sprintf("triggered %s shock (severity %.2f)", name, severity), nil

	case "status":
		return d.status(), nil

	case "exit", "quit":
		return "bye", nil
	}

	return "", fmt.Errorf("unknown command %q", cmd.Name)
}

// --- argument helpers -------------------------------------------------

func oneArg(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("expected exactly one argument, got %d", len(args))
	}
	return args[0], nil
}

func oneFloat(args []string) (float64, error) {
	s, err := oneArg(args)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}

func nameAge(args []string) (string, int, error) {
	if len(args) != 2 {
		return "", 0, fmt.Errorf("expected (name, age), got %d arguments", len(args))
	}
	age, err := strconv.Atoi(strings.TrimSpace(args[1]))
	if err != nil {
		return "", 0, fmt.Errorf("invalid age %q", args[1])
	}
	return args[0], age, nil
}

func resolveProduct(w *sim.World, name string) (catalog.Product, error) {
	p, ok := w.Catalog.Lookup(strings.TrimSpace(name))
	if !ok {
		return catalog.Product{}, fmt.Errorf("unknown product %q", name)
	}
	return p, nil
}

// --- assignment / property access -------------------------------------

func (d *Dispatcher) assign(target, value string) (string, error) {
	switch target {
	case "gdp":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return "", fmt.Errorf("invalid gdp value %q", value)
		}
		d.World.Macro.GDP = v
		return fmt.Sprintf("gdp = %s", humanize.Commaf(v)), nil
	}
	return "", fmt.Errorf("unassignable target %q", target)
}

func (d *Dispatcher) property(obj, prop string) (string, error) {
	switch obj {
	case "system":
		switch prop {
		case "gdp":
			return humanize.Commaf(d.World.Macro.GDP), nil
		case "day":
			return strconv.FormatUint(d.World.Day, 10), nil
		case "unemployment":
			return fmt.Sprintf("%.4f", d.World.Macro.Unemployment), nil
		case "population":
			return strconv.Itoa(d.World.Macro.Population), nil
		case "money_supply":
			return humanize.Commaf(d.World.Macro.MoneySupply), nil
		case "inflation":
			return fmt.Sprintf("%.4f", d.World.Macro.Inflation), nil
		case "cpi":
			return fmt.Sprintf("%.4f", d.World.Macro.CPI), nil
		case "gini":
			return fmt.Sprintf("%.4f", d.World.Macro.Gini), nil
		case "interest_rate":
			return fmt.Sprintf("%.4f", d.World.Macro.InterestRate), nil
		case "debt":
			return humanize.Commaf(d.World.Macro.Debt), nil
		case "budget":
			return humanize.Commaf(d.World.Macro.Budget), nil
		case "tax_revenue":
			return humanize.Commaf(d.World.Macro.TaxRevenue), nil
		}
	}
	return "", fmt.Errorf("unknown property %s.%s", obj, prop)
}

// --- listings -----------------------------------------------------------

func (d *Dispatcher) listConsumers() string {
	var b strings.Builder
	for _, c := range d.World.Consumers {
		fmt.Fprintf(&b, "%d\t%s\tage=%d\tsavings=%s\tincome=%s\n", c.ID, c.Name, c.AgeDays/365, humanize.Commaf(c.Savings), humanize.Commaf(c.DailyIncome))
	}
	return b.String()
}

func (d *Dispatcher) listLaborers() string {
	var b strings.Builder
	for _, l := range d.World.Laborers {
		fmt.Fprintf(&b, "%d\t%s\tskill=%.2f\tmin_wage=%s\thired=%v\n", l.ID, l.Name, l.Skill, humanize.Commaf(l.MinWage), l.IsHired)
	}
	return b.String()
}

func (d *Dispatcher) listFarmers() string {
	var b strings.Builder
	for _, f := range d.World.Farmers {
		fmt.Fprintf(&b, "%d\t%s\tland=%.1f\ttech=%.2f\ttax=%.2f\n", f.ID, f.Name, f.Land, f.Tech, f.Tax)
	}
	return b.String()
}

func (d *Dispatcher) listFirms() string {
	var b strings.Builder
	for _, f := range d.World.Firms {
		fmt.Fprintf(&b, "%d\towner=%d\tworkers=%d\tcapital=%d\twage=%s\tcash=%s\n", f.ID, f.OwnerID, len(f.Workers), len(f.Capital), humanize.Commaf(f.Wage), humanize.Commaf(f.Cash))
	}
	return b.String()
}

func (d *Dispatcher) listMarkets() string {
	var b strings.Builder
	for _, m := range d.World.Markets {
		p := d.World.Catalog.Get(m.Product)
		fmt.Fprintf(&b, "%s\tprice=%s\n", p.Name, humanize.Commaf(m.Price))
	}
	return b.String()
}

func (d *Dispatcher) listProducts() string {
	var b strings.Builder
	for _, p := range d.World.Catalog.All() {
		fmt.Fprintf(&b, "%s\tdecay=%.2f\teta=%.2f\tbase_consumption=%.2f\n", p.Name, p.DecayRate, p.Elasticity, p.BaseConsumption)
	}
	return b.String()
}

// --- status -------------------------------------------------------------

func (d *Dispatcher) status() string {
	w := d.World
	epoch := time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	dateStr, err := strftime.Format("%Y-%m-%d", epoch.AddDate(0, 0, int(w.Day)))
	if err != nil {
		dateStr = fmt.Sprintf("day %d", w.Day)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "run %s\n", w.RunID)
	fmt.Fprintf(&b, "day %d (%s)\n", w.Day, dateStr)
	fmt.Fprintf(&b, "population %d (consumers=%d laborers=%d farmers=%d)\n",
		w.Macro.Population, len(w.Consumers), len(w.Laborers), len(w.Farmers))
	fmt.Fprintf(&b, "firms %d\n", w.Macro.FirmCount)
	fmt.Fprintf(&b, "gdp %s\n", humanize.Commaf(w.Macro.GDP))
	fmt.Fprintf(&b, "unemployment %.2f%%\n", w.Macro.Unemployment*100)
	fmt.Fprintf(&b, "money supply %s\n", humanize.Commaf(w.Macro.MoneySupply))
	fmt.Fprintf(&b, "inflation %.2f%%\n", w.Macro.Inflation*100)
	fmt.Fprintf(&b, "interest rate %.2f%%\n", w.Macro.InterestRate*100)
	fmt.Fprintf(&b, "national debt %s\n", humanize.Commaf(w.Macro.Debt))
	fmt.Fprintf(&b, "Gini Coefficient %.4f\n", w.Macro.Gini)
	if w.LastShockType != "" {
		fmt.Fprintf(&b, "last shock %s (day %d)\n", w.LastShockType, w.LastShockDay)
	}
	return b.String()
}

// sortedProductNames is used by a couple of detail renderers to keep
// map-free, stable output ordering.
func sortedProductNames(ids []catalog.ProductID, cat *catalog.Catalog) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = cat.Get(id).Name
	}
	sort.Strings(names)
	return names
}
