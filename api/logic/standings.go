/* standings.go
 * Contains the ordering of scored brackets for leaderboards and reports
 */

package logic

import (
	"sort"

	"playoff-bracket/api/bracket"
)

// Standing is one row of the standings
type Standing struct {
	Rank       int
	Owner      string
	Score      int
	Tiebreaker int
	// TiebreakerDiff is the distance between the tiebreaker and the real final total, or -1 when it is not known yet
	TiebreakerDiff int
}

// SortStandings orders brackets by score, highest first. Equal scores are ordered by how close the tiebreaker is to
// the real final total when finalTotal is not negative, otherwise they keep their input order. Equal rows share a rank
func SortStandings(entries []*bracket.Bracket, finalTotal int) []Standing {
	standings := make([]Standing, len(entries))
	for i, e := range entries {
		diff := -1
		if finalTotal >= 0 {
			diff = abs(e.Tiebreaker() - finalTotal)
		}
		standings[i] = Standing{
			Owner:          e.Owner(),
			Score:          e.TotalScore(),
			Tiebreaker:     e.Tiebreaker(),
			TiebreakerDiff: diff,
		}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Score != standings[j].Score {
			return standings[i].Score > standings[j].Score
		}
		return standings[i].TiebreakerDiff < standings[j].TiebreakerDiff
	})

	for i := range standings {
		if i > 0 && standings[i].Score == standings[i-1].Score && standings[i].TiebreakerDiff == standings[i-1].TiebreakerDiff {
			standings[i].Rank = standings[i-1].Rank
			continue
		}
		standings[i].Rank = i + 1
	}
	return standings
}

// SortBrackets returns the brackets in standings order without changing the input slice
func SortBrackets(entries []*bracket.Bracket, finalTotal int) []*bracket.Bracket {
	byOwner := make(map[string][]*bracket.Bracket, len(entries))
	for _, e := range entries {
		byOwner[e.Owner()] = append(byOwner[e.Owner()], e)
	}
	sorted := make([]*bracket.Bracket, 0, len(entries))
	for _, s := range SortStandings(entries, finalTotal) {
		sorted = append(sorted, byOwner[s.Owner][0])
		byOwner[s.Owner] = byOwner[s.Owner][1:]
	}
	return sorted
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
