/* bracket.go
 * Contains the Bracket struct: one person's set of matchup predictions (or the real results) and the points
 * accumulated against the real results
 */

package bracket

import (
	"errors"
	"fmt"
	"sort"
)

// ActualOwner is the owner label used for the ground truth bracket
const ActualOwner = "Actual"

var (
	// ErrUnknownSlot is returned when a slot name is looked up that the bracket does not hold
	ErrUnknownSlot = errors.New("unknown slot")
	// ErrMalformedMatchup is returned when a matchup has the same team on both sides
	ErrMalformedMatchup = errors.New("malformed matchup")
	// ErrLayoutMismatch is returned when a bracket does not hold the slots of its layout
	ErrLayoutMismatch = errors.New("bracket does not match layout")
)

type Bracket struct {
	owner      string
	tiebreaker int
	matchups   map[string]*Matchup
	totalScore int
}

// NewBracket creates a bracket from a set of matchups keyed by slot name
// Preconditions: Receives owner label, tiebreaker value and a slice of matchups with unique slot names
// Postconditions: Returns a pointer to the Bracket, or an error if two matchups share a slot name
func NewBracket(owner string, tiebreaker int, matchups []*Matchup) (*Bracket, error) {
	byName := make(map[string]*Matchup, len(matchups))
	for _, m := range matchups {
		if _, ok := byName[m.Slot()]; ok {
			return nil, fmt.Errorf("slot %q appears more than once in bracket %q", m.Slot(), owner)
		}
		byName[m.Slot()] = m
	}
	return &Bracket{
		owner:      owner,
		tiebreaker: tiebreaker,
		matchups:   byName,
	}, nil
}

func (b *Bracket) Owner() string   { return b.owner }
func (b *Bracket) Tiebreaker() int { return b.tiebreaker }
func (b *Bracket) TotalScore() int { return b.totalScore }

// Matchup returns the matchup held in a slot, or ErrUnknownSlot
func (b *Bracket) Matchup(slot string) (*Matchup, error) {
	m, ok := b.matchups[slot]
	if !ok {
		return nil, fmt.Errorf("%w: %q in bracket %q", ErrUnknownSlot, slot, b.owner)
	}
	return m, nil
}

// Slots returns the slot names held by the bracket in sorted order
func (b *Bracket) Slots() []string {
	names := make([]string, 0, len(b.matchups))
	for name := range b.matchups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddPoints adds to the bracket's total. Negative values are ignored so the total never decreases
func (b *Bracket) AddPoints(points int) int {
	if points > 0 {
		b.totalScore += points
	}
	return b.totalScore
}

func (b *Bracket) String() string {
	return fmt.Sprintf("%s: %d", b.owner, b.totalScore)
}
