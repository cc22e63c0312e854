/* input_processing_test.go
 * Contains unit tests for input_processing.go
 */

package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var afcField = []string{
	"Kansas City Chiefs",
	"Buffalo Bills",
	"Baltimore Ravens",
	"Houston Texans",
	"LA Chargers",
	"Pittsburgh Steelers",
	"Denver Broncos",
}

func TestCheckTeamNames_ExactAndCaseInsensitive(t *testing.T) {
	valid, invalid := CheckTeamNames([]string{"Buffalo Bills", "denver broncos"}, afcField)
	assert.Equal(t, []string{"Buffalo Bills", "Denver Broncos"}, valid)
	assert.Empty(t, invalid)
}

func TestCheckTeamNames_Abbreviation(t *testing.T) {
	valid, invalid := CheckTeamNames([]string{"ravens", "steelers"}, afcField)
	assert.Equal(t, []string{"Baltimore Ravens", "Pittsburgh Steelers"}, valid)
	assert.Empty(t, invalid)
}

func TestCheckTeamNames_Invalid(t *testing.T) {
	valid, invalid := CheckTeamNames([]string{"Chiefs", "Dolphins"}, afcField)
	assert.Equal(t, []string{"Kansas City Chiefs"}, valid)
	assert.Equal(t, []string{"Dolphins"}, invalid)
}

func TestResolveTeam_SeedSuffix(t *testing.T) {
	team, err := ResolveTeam("Kansas City Chiefs (1)", afcField)
	require.NoError(t, err)
	assert.Equal(t, "Kansas City Chiefs", team.Name())
}

func TestResolveTeam_LongerThanField(t *testing.T) {
	team, err := ResolveTeam("Kansas City Chiefs (1)", []string{"Chiefs", "Bills"})
	require.NoError(t, err)
	assert.Equal(t, "Chiefs", team.Name())
}

func TestResolveTeam_Placeholder(t *testing.T) {
	for _, raw := range []string{"", "x", "NaN"} {
		team, err := ResolveTeam(raw, afcField)
		require.NoError(t, err)
		assert.False(t, team.Known())
	}
}

func TestResolveTeam_NoField(t *testing.T) {
	team, err := ResolveTeam("  Patriots (2) ", nil)
	require.NoError(t, err)
	assert.Equal(t, "Patriots", team.Name())
}

func TestResolveTeam_NotInField(t *testing.T) {
	_, err := ResolveTeam("Dolphins", afcField)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "'Dolphins' is not a team in the playoff field")
}

func TestContainsWord(t *testing.T) {
	assert.True(t, containsWord("kansas city chiefs", "chiefs"))
	assert.True(t, containsWord("kansas city chiefs", "kansas city"))
	assert.False(t, containsWord("kansas city chiefs", "chief"))
	assert.False(t, containsWord("kansas city chiefs", ""))
}
