/* summary.go
 * Contains the per entry summary used when an entrant checks their bracket
 */

package logic

import (
	"fmt"
	"strings"

	"playoff-bracket/api/bracket"
)

// ScoreResult counts the picks of an entry by outcome. A matchup holds one pick for its winner and, outside the
// Wild Card round, one for its participants
type ScoreResult struct {
	Successes int
	Pending   int
	Failed    int
}

// SummarizeEntry describes every pick of a scored entry
// Preconditions: Receives a bracket that has been through a scoring pass and the slot names in display order
// Postconditions: Returns the counts of succeeded, pending and failed picks and a report with one block per slot, or
// an error if a slot is missing
func SummarizeEntry(b *bracket.Bracket, slots []string) (ScoreResult, string, error) {
	var result ScoreResult
	var response strings.Builder

	mark := func(credit, resolved bool) string {
		switch {
		case credit:
			result.Successes++
			return "[Succeeded]"
		case resolved:
			result.Failed++
			return "[Failed]"
		}
		result.Pending++
		return "[Pending]"
	}

	for _, slot := range slots {
		m, err := b.Matchup(slot)
		if err != nil {
			return ScoreResult{}, "", err
		}
		response.WriteString(fmt.Sprintf("[%s] %s vs %s (%d pts)\n", slot, m.TeamA(), m.TeamB(), m.Score()))
		response.WriteString(fmt.Sprintf("  winner: %s %s\n", m.Winner(), mark(m.WinnerCredit(), m.WinnerResolved())))
		if m.Kind() != bracket.WildCard {
			response.WriteString(fmt.Sprintf("  matchup: %s\n", mark(m.ParticipantsCredit(), m.ParticipantsResolved())))
		}
	}
	response.WriteString(fmt.Sprintf("Total: %d points\n", b.TotalScore()))
	return result, response.String(), nil
}
