package clicmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlankLineIsNoOp(t *testing.T) {
	cmd, err := Parse("   ")
	require.NoError(t, err)
	assert.Nil(t, cmd)
}

func TestParseBareCommand(t *testing.T) {
	cmd, err := Parse("status")
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, "status", cmd.Name)
	assert.Nil(t, cmd.Args)
}

func TestParseCallWithArgs(t *testing.T) {
	cmd, err := Parse(`add_consumer("Nadia", 30)`)
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.Equal(t, "add_consumer", cmd.Name)
	assert.Equal(t, []string{"Nadia", "30"}, cmd.Args)
}

func TestParseCallWithNoArgs(t *testing.T) {
	cmd, err := Parse("pass_day()")
	require.NoError(t, err)
	assert.Equal(t, "pass_day", cmd.Name)
	assert.Nil(t, cmd.Args)
}

func TestParseMalformedCallMissingCloseParen(t *testing.T) {
	_, err := Parse("pass_day(1")
	assert.Error(t, err)
}

func TestParsePropertyAccess(t *testing.T) {
	cmd, err := Parse("system.gdp")
	require.NoError(t, err)
	assert.Equal(t, "__property__", cmd.Name)
	assert.Equal(t, []string{"system", "gdp"}, cmd.Args)
}

func TestParseAssignment(t *testing.T) {
	cmd, err := Parse("gdp = 125000")
	require.NoError(t, err)
	assert.Equal(t, "__assign__", cmd.Name)
	assert.Equal(t, []string{"gdp", "125000"}, cmd.Args)
}

func TestParseAssignmentDoesNotMatchEquality(t *testing.T) {
	_, err := Parse("a == b")
	// "==" is not a valid top-level form at all here; it falls through to
	// a bare/dotted parse and fails for containing no dot or parens, so it
	// is treated as a bare (if odd) command name rather than erroring.
	assert.NoError(t, err)
}

func TestParseAssignmentInsideParensIsNotTopLevel(t *testing.T) {
	cmd, err := Parse(`add_firm(1, cash=1000, 0.5, 0.5)`)
	require.NoError(t, err)
	assert.Equal(t, "add_firm", cmd.Name)
}

func TestParseQuotedArgStripsQuotes(t *testing.T) {
	cmd, err := Parse(`select_consumer("Amara")`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Amara"}, cmd.Args)
}
