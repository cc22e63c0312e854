/* matchup.go
 * Contains the Matchup struct which holds one game of a bracket: the two participants, the winner and the points
 * awarded for it. A Matchup in a prediction holds the predicted values, a Matchup in the ground truth holds the real ones
 */

package bracket

// MaxMatchupScore is the most points a single matchup can be worth: one for the winner and one for the participants
const MaxMatchupScore = 2

type Matchup struct {
	slot      string
	kind      RoundKind
	teamA     Team
	teamB     Team
	winner    Team
	altWinner Team

	score int

	// Reporting flags. These never gate scoring
	winnerCredit         bool
	participantsCredit   bool
	winnerResolved       bool
	participantsResolved bool
}

// NewMatchup creates an unscored matchup
// Preconditions: Receives the slot name, round kind, both participants and the (predicted or real) winner
// Postconditions: Returns a pointer to a Matchup with no alternate winner, score 0 and all flags unset
func NewMatchup(slot string, kind RoundKind, teamA, teamB, winner Team) *Matchup {
	return &Matchup{
		slot:   slot,
		kind:   kind,
		teamA:  teamA,
		teamB:  teamB,
		winner: winner,
	}
}

func (m *Matchup) Slot() string         { return m.slot }
func (m *Matchup) Kind() RoundKind      { return m.kind }
func (m *Matchup) TeamA() Team          { return m.teamA }
func (m *Matchup) TeamB() Team          { return m.teamB }
func (m *Matchup) Winner() Team         { return m.winner }
func (m *Matchup) AltWinner() Team      { return m.altWinner }
func (m *Matchup) Score() int           { return m.score }
func (m *Matchup) WinnerCredit() bool   { return m.winnerCredit }
func (m *Matchup) WinnerResolved() bool { return m.winnerResolved }

func (m *Matchup) ParticipantsCredit() bool   { return m.participantsCredit }
func (m *Matchup) ParticipantsResolved() bool { return m.participantsResolved }

// SetAltWinner sets the team that is also accepted as the winner of this slot. Only meaningful on the ground truth
func (m *Matchup) SetAltWinner(team Team) {
	m.altWinner = team
}

// RecordWinnerPoint awards the "predicted the winner" point.
// The credit flag is set on the first call even when the cap stops the score from moving, so the report can still
// show the pick as correct. Later calls are no-ops.
// Postconditions: Returns true if the score was incremented
func (m *Matchup) RecordWinnerPoint(unit int) bool {
	if m.winnerCredit {
		return false
	}
	m.winnerCredit = true
	return m.addScore(unit)
}

// RecordParticipantsPoint awards the "predicted both participants" point. Wild Card participants are set by seeding,
// so this never does anything for a Wild Card matchup.
// Postconditions: Returns true if the score was incremented
func (m *Matchup) RecordParticipantsPoint(unit int) bool {
	if m.kind == WildCard || m.participantsCredit {
		return false
	}
	m.participantsCredit = true
	return m.addScore(unit)
}

// MarkWinnerResolved records that the real game has finished
func (m *Matchup) MarkWinnerResolved() {
	m.winnerResolved = true
}

// MarkParticipantsResolved records that the real participants of this slot are final
func (m *Matchup) MarkParticipantsResolved() {
	m.participantsResolved = true
}

// ParticipantsKnown reports whether both participants are determined
func (m *Matchup) ParticipantsKnown() bool {
	return m.teamA.Known() && m.teamB.Known()
}

// SameParticipants compares the participants of two matchups as an unordered pair. Undetermined teams never match.
func (m *Matchup) SameParticipants(other *Matchup) bool {
	if m.teamA.Is(other.teamA) && m.teamB.Is(other.teamB) {
		return true
	}
	return m.teamA.Is(other.teamB) && m.teamB.Is(other.teamA)
}

// Malformed reports whether the same known team has been placed on both sides
func (m *Matchup) Malformed() bool {
	return m.teamA.Is(m.teamB)
}

func (m *Matchup) addScore(unit int) bool {
	if unit <= 0 || m.score >= MaxMatchupScore {
		return false
	}
	m.score += unit
	if m.score > MaxMatchupScore {
		m.score = MaxMatchupScore
	}
	return true
}
