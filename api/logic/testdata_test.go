/* testdata_test.go
 * Contains bracket fixtures shared by the logic tests. The results are the 2017-18 playoffs in the 12 team layout
 */

package logic

import (
	"testing"

	"playoff-bracket/api/bracket"
	"playoff-bracket/api/shared"

	"github.com/stretchr/testify/require"
)

// row is a compact matchup: slot, team A, team B, winner
type row [4]string

func rawRows(rows []row) []shared.RawMatchup {
	raw := make([]shared.RawMatchup, len(rows))
	for i, r := range rows {
		raw[i] = shared.RawMatchup{Slot: r[0], TeamA: r[1], TeamB: r[2], Winner: r[3]}
	}
	return raw
}

func buildLegacy(t *testing.T, owner string, tiebreaker int, rows []row) *bracket.Bracket {
	t.Helper()
	b, err := BuildBracket(owner, tiebreaker, bracket.LegacyLayout(), rawRows(rows), nil)
	require.NoError(t, err)
	return b
}

// actualResults builds the ground truth with reseeding alternates applied
func actualResults(t *testing.T) *bracket.Bracket {
	t.Helper()
	actual := buildLegacy(t, bracket.ActualOwner, 0, []row{
		{"WildCard 1", "Bills", "Jaguars", "Jaguars"},
		{"WildCard 2", "Titans", "Chiefs", "Titans"},
		{"WildCard 3", "Falcons", "Rams", "Falcons"},
		{"WildCard 4", "Panthers", "Saints", "Saints"},
		{"Divisional 1", "Titans", "Patriots", "Patriots"},
		{"Divisional 2", "Jaguars", "Steelers", "Jaguars"},
		{"Divisional 3", "Falcons", "Eagles", "Eagles"},
		{"Divisional 4", "Saints", "Vikings", "Vikings"},
		{"Conference 1", "Jaguars", "Patriots", "Patriots"},
		{"Conference 2", "Vikings", "Eagles", "Eagles"},
		{"Super Bowl", "Patriots", "Eagles", "Eagles"},
	})
	require.NoError(t, bracket.LegacyLayout().ApplyAlternates(actual))
	return actual
}

// partialResults is the ground truth part way through the Divisional round
func partialResults(t *testing.T) *bracket.Bracket {
	t.Helper()
	actual := buildLegacy(t, bracket.ActualOwner, 0, []row{
		{"WildCard 1", "Bills", "Jaguars", "Jaguars"},
		{"WildCard 2", "Titans", "Chiefs", "Titans"},
		{"WildCard 3", "Falcons", "Rams", "Falcons"},
		{"WildCard 4", "Panthers", "Saints", "Saints"},
		{"Divisional 1", "Titans", "Patriots", "Patriots"},
		{"Divisional 2", "Jaguars", "Steelers", "x"},
		{"Divisional 3", "Falcons", "Eagles", "Eagles"},
		{"Divisional 4", "Saints", "Vikings", ""},
		{"Conference 1", "", "Patriots", "x"},
		{"Conference 2", "x", "Eagles", "x"},
		{"Super Bowl", "x", "x", "x"},
	})
	require.NoError(t, bracket.LegacyLayout().ApplyAlternates(actual))
	return actual
}

func entryNathan(t *testing.T) *bracket.Bracket {
	return buildLegacy(t, "Nathan Mott", 37, []row{
		{"WildCard 1", "Bills", "Jaguars", "Jaguars"},
		{"WildCard 2", "Titans", "Chiefs", "Chiefs"},
		{"WildCard 3", "Falcons", "Rams", "Falcons"},
		{"WildCard 4", "Panthers", "Saints", "Saints"},
		{"Divisional 1", "Chiefs", "Patriots", "Patriots"},
		{"Divisional 2", "Jaguars", "Steelers", "Jaguars"},
		{"Divisional 3", "Falcons", "Eagles", "Falcons"},
		{"Divisional 4", "Saints", "Vikings", "Vikings"},
		{"Conference 1", "Jaguars", "Patriots", "Jaguars"},
		{"Conference 2", "Falcons", "Vikings", "Vikings"},
		{"Super Bowl", "Jaguars", "Vikings", "Vikings"},
	})
}

func entryAshley(t *testing.T) *bracket.Bracket {
	return buildLegacy(t, "Ashley Mott", 52, []row{
		{"WildCard 1", "Bills", "Jaguars", "Bills"},
		{"WildCard 2", "Titans", "Chiefs", "Titans"},
		{"WildCard 3", "Falcons", "Rams", "Rams"},
		{"WildCard 4", "Panthers", "Saints", "Saints"},
		{"Divisional 1", "Bills", "Patriots", "Bills"},
		{"Divisional 2", "Titans", "Steelers", "Steelers"},
		{"Divisional 3", "Saints", "Eagles", "Eagles"},
		{"Divisional 4", "Rams", "Vikings", "Vikings"},
		{"Conference 1", "Bills", "Steelers", "Steelers"},
		{"Conference 2", "Rams", "Eagles", "Rams"},
		{"Super Bowl", "Steelers", "Rams", "Rams"},
	})
}

func entryJo(t *testing.T) *bracket.Bracket {
	return buildLegacy(t, "Jo Pugliese", 37, []row{
		{"WildCard 1", "Bills", "Jaguars", "Jaguars"},
		{"WildCard 2", "Titans", "Chiefs", "Chiefs"},
		{"WildCard 3", "Falcons", "Rams", "Rams"},
		{"WildCard 4", "Panthers", "Saints", "Saints"},
		{"Divisional 1", "Jaguars", "Patriots", "Patriots"},
		{"Divisional 2", "Chiefs", "Steelers", "Steelers"},
		{"Divisional 3", "Saints", "Eagles", "Eagles"},
		{"Divisional 4", "Rams", "Vikings", "Vikings"},
		{"Conference 1", "Steelers", "Patriots", "Patriots"},
		{"Conference 2", "Vikings", "Eagles", "Eagles"},
		{"Super Bowl", "Patriots", "Eagles", "Patriots"},
	})
}

func allEntries(t *testing.T) []*bracket.Bracket {
	return []*bracket.Bracket{entryNathan(t), entryAshley(t), entryJo(t)}
}
