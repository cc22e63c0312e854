/* prediction.go
 * Contains the logic for turning raw entry data into Bracket objects that can be scored
 */

package logic

import (
	"errors"
	"fmt"
	"strings"

	"playoff-bracket/api/bracket"
	"playoff-bracket/api/shared"
)

// BuildBracket creates a bracket from raw matchups
// Preconditions: Receives owner label, tiebreaker, the contest layout, the raw matchups of the entry and the playoff
// field (may be empty to accept any team name). Slots missing from raw are left undetermined
// Postconditions: Returns a Bracket holding every slot of the layout, or an error listing every team name that could
// not be resolved, an unknown slot name or a round that does not match the layout
func BuildBracket(owner string, tiebreaker int, layout bracket.Layout, raw []shared.RawMatchup, field []string) (*bracket.Bracket, error) {
	bySlot := make(map[string]shared.RawMatchup, len(raw))
	for _, r := range raw {
		def, ok := layout.Slot(r.Slot)
		if !ok {
			return nil, fmt.Errorf("%w: %q in entry %q", bracket.ErrUnknownSlot, r.Slot, owner)
		}
		if r.Round != "" {
			kind, err := bracket.ParseRoundKind(r.Round)
			if err != nil {
				return nil, err
			}
			if kind != def.Kind {
				return nil, fmt.Errorf("%w: slot %q of entry %q is %s, expected %s", bracket.ErrLayoutMismatch, r.Slot, owner, kind, def.Kind)
			}
		}
		bySlot[r.Slot] = r
	}

	var invalid []string
	resolve := func(value string) bracket.Team {
		team, err := ResolveTeam(value, field)
		if err != nil {
			invalid = append(invalid, fmt.Sprintf("'%s'", value))
		}
		return team
	}

	matchups := make([]*bracket.Matchup, 0, len(layout.Slots))
	for _, def := range layout.Slots {
		r := bySlot[def.Name]
		m := bracket.NewMatchup(def.Name, def.Kind, resolve(r.TeamA), resolve(r.TeamB), resolve(r.Winner))
		if r.AltWinner != "" {
			m.SetAltWinner(resolve(r.AltWinner))
		}
		matchups = append(matchups, m)
	}
	if len(invalid) > 0 {
		return nil, errors.New("entry " + owner + " has team names that are not in the playoff field: " + strings.Join(invalid, " "))
	}

	return bracket.NewBracket(owner, tiebreaker, matchups)
}

// RawFromBracket converts a bracket back into raw matchups in layout order, using an empty string for undetermined teams
func RawFromBracket(b *bracket.Bracket, layout bracket.Layout) ([]shared.RawMatchup, error) {
	raw := make([]shared.RawMatchup, 0, len(layout.Slots))
	for _, def := range layout.Slots {
		m, err := b.Matchup(def.Name)
		if err != nil {
			return nil, err
		}
		raw = append(raw, shared.RawMatchup{
			Slot:      m.Slot(),
			Round:     m.Kind().String(),
			TeamA:     m.TeamA().Name(),
			TeamB:     m.TeamB().Name(),
			Winner:    m.Winner().Name(),
			AltWinner: m.AltWinner().Name(),
		})
	}
	return raw, nil
}
