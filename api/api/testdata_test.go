/* testdata_test.go
 * Contains the 2017-18 playoffs in the 12 team layout, as stored documents
 */

package api

import (
	"testing"

	"playoff-bracket/api/bracket"
	"playoff-bracket/api/metrics"
	"playoff-bracket/api/shared"
	"playoff-bracket/api/store"

	"github.com/rs/zerolog"
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

var results2018 = []row{
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
}

func entryDoc(owner string, tiebreaker int, rows []row) store.BracketDoc {
	return store.BracketDoc{Owner: owner, Season: "2017-18", Tiebreaker: tiebreaker, Matchups: rawRows(rows)}
}

var nathan = entryDoc("Nathan Mott", 37, []row{
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

var ashley = entryDoc("Ashley Mott", 52, []row{
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

var jo = entryDoc("Jo Pugliese", 37, []row{
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

// newTestAPI returns an API over a MockStore holding the three entries and, when withResults is set, the full results
func newTestAPI(t *testing.T, withResults bool) (*API, *MockStore) {
	t.Helper()
	mockStore := NewMockStore("2017-18")
	for _, doc := range []store.BracketDoc{nathan, ashley, jo} {
		mockStore.Entries[doc.Owner] = doc
	}
	if withResults {
		total := 74
		mockStore.Actual = &store.ActualDoc{Season: "2017-18", FinalTotal: &total, Matchups: rawRows(results2018)}
	}

	return &API{
		Store:   mockStore,
		Layout:  bracket.LegacyLayout(),
		Workers: 2,
		Metrics: metrics.NewManager(),
		Log:     zerolog.Nop(),
	}, mockStore
}
