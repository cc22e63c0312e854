/* picks.go
 * Contains the aggregation of which winner the entries picked for a slot
 */

package logic

import (
	"math"
	"sort"

	"playoff-bracket/api/bracket"
)

// PickShare is how many entries picked one team to win a slot
type PickShare struct {
	Team    string
	Count   int
	Percent float64 // share of all picks, rounded to two decimals
}

// PickDistribution counts the predicted winners of a slot across entries.
// Preconditions: Receives the entries and the slot name
// Postconditions: Returns the shares sorted by count then team name, both descending, or an error if an entry does not
// hold the slot. Entries without a pick for the slot are left out
func PickDistribution(entries []*bracket.Bracket, slot string) ([]PickShare, error) {
	counts := make(map[string]int)
	total := 0
	for _, e := range entries {
		m, err := e.Matchup(slot)
		if err != nil {
			return nil, err
		}
		if m.Winner().Known() {
			counts[m.Winner().Name()]++
			total++
		}
	}

	shares := make([]PickShare, 0, len(counts))
	for team, count := range counts {
		shares = append(shares, PickShare{
			Team:    team,
			Count:   count,
			Percent: math.Round(float64(count)/float64(total)*10000) / 100,
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Team > shares[j].Team
	})
	return shares, nil
}
