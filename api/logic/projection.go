/* projection.go
 * Contains the projection from a scored matchup to the facts a report needs to colour it. This does not render
 * anything, renderers decide what the states look like
 */

package logic

import "playoff-bracket/api/bracket"

// CellState is the colouring of one part of a matchup in a report
type CellState int

const (
	Pending CellState = iota
	Favorable
	Unfavorable
)

func (s CellState) String() string {
	switch s {
	case Favorable:
		return "favorable"
	case Unfavorable:
		return "unfavorable"
	default:
		return "pending"
	}
}

// MatchupView holds the display facts of one scored matchup
type MatchupView struct {
	Slot       string
	TeamA      string
	TeamB      string
	Points     int
	Background CellState // from the participants pick
	EmphasizeA bool      // TeamA is the predicted winner
	EmphasizeB bool      // TeamB is the predicted winner
	WinnerMark CellState // from the winner pick, independent of Background
}

// ProjectMatchup derives the display facts of a scored matchup
func ProjectMatchup(m *bracket.Matchup) MatchupView {
	return MatchupView{
		Slot:       m.Slot(),
		TeamA:      m.TeamA().Name(),
		TeamB:      m.TeamB().Name(),
		Points:     m.Score(),
		Background: cellState(m.ParticipantsCredit(), m.ParticipantsResolved()),
		EmphasizeA: m.TeamA().Is(m.Winner()),
		EmphasizeB: m.TeamB().Is(m.Winner()),
		WinnerMark: cellState(m.WinnerCredit(), m.WinnerResolved()),
	}
}

// ProjectBracket projects every matchup of a bracket in the order of the given slot names
func ProjectBracket(b *bracket.Bracket, slots []string) ([]MatchupView, error) {
	views := make([]MatchupView, 0, len(slots))
	for _, slot := range slots {
		m, err := b.Matchup(slot)
		if err != nil {
			return nil, err
		}
		views = append(views, ProjectMatchup(m))
	}
	return views, nil
}

func cellState(credit, resolved bool) CellState {
	if credit {
		return Favorable
	}
	if resolved {
		return Unfavorable
	}
	return Pending
}
