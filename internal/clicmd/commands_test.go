package clicmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shafin2954/cppConomy-sub000/internal/sim"
)

func newDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	return NewDispatcher(sim.NewDefaultWorld())
}

func run(t *testing.T, d *Dispatcher, line string) (string, error) {
	t.Helper()
	cmd, err := Parse(line)
	require.NoError(t, err)
	require.NotNil(t, cmd)
	return d.Execute(cmd)
}

func TestStatusReportsPopulation(t *testing.T) {
	d := newDispatcher(t)
	out, err := run(t, d, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "population")
}

func TestAddConsumerThenSelectAndDetails(t *testing.T) {
	d := newDispatcher(t)

	out, err := run(t, d, `add_consumer("Nadia", 30)`)
	require.NoError(t, err)
	assert.Contains(t, out, "Nadia")

	_, err = run(t, d, `select_consumer("Nadia")`)
	require.NoError(t, err)

	out, err = run(t, d, "consumer_details")
	require.NoError(t, err)
	assert.Contains(t, out, "Nadia")
}

func TestConsumerDetailsWithoutSelectionErrors(t *testing.T) {
	d := newDispatcher(t)
	d.World.ClearSelection()
	_, err := run(t, d, "consumer_details")
	assert.Error(t, err)
}

func TestPassDayAdvancesDayCounter(t *testing.T) {
	d := newDispatcher(t)
	startDay := d.World.Day

	out, err := run(t, d, "pass_day(3)")
	require.NoError(t, err)
	assert.Contains(t, out, "advanced 3 day(s)")
	assert.Equal(t, startDay+3, d.World.Day)
}

func TestGdpAssignmentAndPropertyAccess(t *testing.T) {
	d := newDispatcher(t)

	_, err := run(t, d, "gdp = 50000")
	require.NoError(t, err)

	out, err := run(t, d, "system.gdp")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "50,000") || strings.Contains(out, "50000"))
}

func TestFirmHireCommandEndToEnd(t *testing.T) {
	d := newDispatcher(t)

	var target string
	for _, l := range d.World.Laborers {
		if !l.IsHired {
			target = l.Name
			break
		}
	}
	require.NotEmpty(t, target)

	out, err := run(t, d, "firm_hire(\""+target+"\")")
	require.NoError(t, err)
	assert.Contains(t, out, "hired")
}

func TestUnknownCommandErrors(t *testing.T) {
	d := newDispatcher(t)
	_, err := run(t, d, "not_a_real_command")
	assert.Error(t, err)
}

func TestMarketsListingIncludesRice(t *testing.T) {
	d := newDispatcher(t)
	out, err := run(t, d, "markets")
	require.NoError(t, err)
	assert.Contains(t, out, "rice")
}

func TestStatusIncludesGiniAndInflation(t *testing.T) {
	d := newDispatcher(t)
	out, err := run(t, d, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Gini Coefficient")
	assert.Contains(t, out, "inflation")
}

func TestGovTaxCommandEndToEnd(t *testing.T) {
	d := newDispatcher(t)
	out, err := run(t, d, `gov_tax(0.25, "income")`)
	require.NoError(t, err)
	assert.Contains(t, out, "tax rate set")
	assert.InDelta(t, 0.25, d.World.Government.IncomeTaxRate, 1e-9)
}

func TestGovInterestCommandEndToEnd(t *testing.T) {
	d := newDispatcher(t)
	_, err := run(t, d, "gov_interest(0.08)")
	require.NoError(t, err)
	assert.InDelta(t, 0.08, d.World.Government.InterestRate, 1e-9)
}

func TestTriggerShockCommandEndToEnd(t *testing.T) {
	d := newDispatcher(t)
	out, err := run(t, d, `trigger_shock("tech_boom", 1.0)`)
	require.NoError(t, err)
	assert.Contains(t, out, "tech_boom")
	assert.Equal(t, "tech_boom", d.World.LastShockType)
}

func TestSystemGiniPropertyAccess(t *testing.T) {
	d := newDispatcher(t)
	out, err := run(t, d, "system.gini")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestKillConsumerCommand(t *testing.T) {
	d := newDispatcher(t)
	before := len(d.World.Consumers)

	out, err := run(t, d, "kill_consumer")
	require.NoError(t, err)
	assert.Contains(t, out, "killed consumer")
	assert.Len(t, d.World.Consumers, before-1)
}
