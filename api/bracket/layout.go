/* layout.go
 * Contains the slot layouts of the playoff bracket. A layout names every slot, the round it belongs to, and for
 * reseeded rounds the sibling slot whose winner is also accepted when the league reshuffles the pairings
 */

package bracket

import (
	"fmt"
	"strings"
)

// SuperBowl is the name of the final slot in every layout
const SuperBowl = "Super Bowl"

// SlotDef describes one named slot of a layout
type SlotDef struct {
	Name    string
	Kind    RoundKind
	Sibling string // empty when the slot is never reseeded
}

// Layout is the ordered set of slots that every bracket of a contest holds
type Layout struct {
	Name  string
	Slots []SlotDef
}

// NFLLayout returns the 14 team format: six Wild Card games, four Divisional games, two Conference games and the
// Super Bowl. Divisional games are reseeded in pairs (1 with 2 in the AFC, 3 with 4 in the NFC)
func NFLLayout() Layout {
	return buildLayout("nfl", 6)
}

// LegacyLayout returns the 12 team format with four Wild Card games
func LegacyLayout() Layout {
	return buildLayout("legacy", 4)
}

// LayoutByName returns the layout registered under name
func LayoutByName(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "nfl":
		return NFLLayout(), nil
	case "legacy":
		return LegacyLayout(), nil
	}
	return Layout{}, fmt.Errorf("unknown layout: %q", name)
}

func buildLayout(name string, wildCards int) Layout {
	var slots []SlotDef
	for i := 1; i <= wildCards; i++ {
		slots = append(slots, SlotDef{Name: fmt.Sprintf("WildCard %d", i), Kind: WildCard})
	}
	slots = append(slots,
		SlotDef{Name: "Divisional 1", Kind: Divisional, Sibling: "Divisional 2"},
		SlotDef{Name: "Divisional 2", Kind: Divisional, Sibling: "Divisional 1"},
		SlotDef{Name: "Divisional 3", Kind: Divisional, Sibling: "Divisional 4"},
		SlotDef{Name: "Divisional 4", Kind: Divisional, Sibling: "Divisional 3"},
		SlotDef{Name: "Conference 1", Kind: Conference},
		SlotDef{Name: "Conference 2", Kind: Conference},
		SlotDef{Name: SuperBowl, Kind: Final},
	)
	return Layout{Name: name, Slots: slots}
}

// Slot returns the definition of a named slot
func (l Layout) Slot(name string) (SlotDef, bool) {
	for _, s := range l.Slots {
		if s.Name == name {
			return s, true
		}
	}
	return SlotDef{}, false
}

// SlotNames returns the slot names in layout order
func (l Layout) SlotNames() []string {
	names := make([]string, len(l.Slots))
	for i, s := range l.Slots {
		names[i] = s.Name
	}
	return names
}

// SlotsOfKind returns the slot names of one round in layout order
func (l Layout) SlotsOfKind(kind RoundKind) []string {
	var names []string
	for _, s := range l.Slots {
		if s.Kind == kind {
			names = append(names, s.Name)
		}
	}
	return names
}

// NewEmptyBracket returns a bracket that holds every slot of the layout with nothing determined yet
func (l Layout) NewEmptyBracket(owner string, tiebreaker int) *Bracket {
	matchups := make([]*Matchup, len(l.Slots))
	for i, s := range l.Slots {
		matchups[i] = NewMatchup(s.Name, s.Kind, Team{}, Team{}, Team{})
	}
	b, _ := NewBracket(owner, tiebreaker, matchups) // slot names of a layout are unique
	return b
}

// ApplyAlternates sets the alternate winner of every reseeded slot of the ground truth to the real winner of its
// sibling slot. Slots without a sibling are left alone.
// Preconditions: Receives the ground truth bracket which holds every slot of the layout
// Postconditions: Alternate winners are set, or an error is returned if a slot is missing
func (l Layout) ApplyAlternates(actual *Bracket) error {
	for _, s := range l.Slots {
		if s.Sibling == "" {
			continue
		}
		m, err := actual.Matchup(s.Name)
		if err != nil {
			return err
		}
		sibling, err := actual.Matchup(s.Sibling)
		if err != nil {
			return err
		}
		m.SetAltWinner(sibling.Winner())
	}
	return nil
}

// Validate checks that a bracket holds exactly the slots of the layout, each with the layout's round kind, and that
// no matchup has the same team on both sides
func (l Layout) Validate(b *Bracket) error {
	if len(b.matchups) != len(l.Slots) {
		return fmt.Errorf("%w: bracket %q has %d slots, layout %q has %d", ErrLayoutMismatch, b.owner, len(b.matchups), l.Name, len(l.Slots))
	}
	for _, s := range l.Slots {
		m, err := b.Matchup(s.Name)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLayoutMismatch, err)
		}
		if m.Kind() != s.Kind {
			return fmt.Errorf("%w: slot %q of bracket %q is %s, expected %s", ErrLayoutMismatch, s.Name, b.owner, m.Kind(), s.Kind)
		}
		if m.Malformed() {
			return fmt.Errorf("%w: slot %q of bracket %q has %s on both sides", ErrMalformedMatchup, s.Name, b.owner, m.TeamA())
		}
	}
	return nil
}
