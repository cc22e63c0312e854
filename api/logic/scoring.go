/* scoring.go
 * Contains the reconciliation engine which scores every entry bracket against the actual bracket. Each slot of the
 * actual bracket is compared with the same slot of every entry; the actual bracket is only ever read
 */

package logic

import (
	"context"
	"fmt"

	"playoff-bracket/api/bracket"

	"golang.org/x/sync/errgroup"
)

// pointUnit is the value of one correct pick
const pointUnit = 1

// ScoreEntries scores every entry against the actual bracket in place
// Preconditions: Receives the actual bracket (with alternate winners already applied) and the entries to score. Every
// entry must hold every slot of the actual bracket
// Postconditions: Entry matchups carry their points and flags and each entry's total is updated, or the first
// precondition violation is returned
func ScoreEntries(actual *bracket.Bracket, entries []*bracket.Bracket) error {
	for _, slot := range actual.Slots() {
		actualMatchup, err := actual.Matchup(slot)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := scoreSlot(actualMatchup, entry); err != nil {
				return err
			}
		}
	}
	return nil
}

// ScoreEntry scores a single entry against the actual bracket
func ScoreEntry(actual *bracket.Bracket, entry *bracket.Bracket) error {
	for _, slot := range actual.Slots() {
		actualMatchup, err := actual.Matchup(slot)
		if err != nil {
			return err
		}
		if err := scoreSlot(actualMatchup, entry); err != nil {
			return err
		}
	}
	return nil
}

// ScoreEntriesParallel scores entries with up to `workers` goroutines. Entries never read each other and the actual
// bracket is only read, so each entry is an independent unit of work. The result is the same as ScoreEntries.
func ScoreEntriesParallel(ctx context.Context, actual *bracket.Bracket, entries []*bracket.Bracket, workers int) error {
	if workers <= 1 {
		return ScoreEntries(actual, entries)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, entry := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return ScoreEntry(actual, entry)
		})
	}
	return g.Wait()
}

// scoreSlot applies the winner rule and the participants rule for one slot of one entry
func scoreSlot(actualMatchup *bracket.Matchup, entry *bracket.Bracket) error {
	entryMatchup, err := entry.Matchup(actualMatchup.Slot())
	if err != nil {
		return err
	}
	if entryMatchup.Malformed() {
		return fmt.Errorf("%w: slot %q of bracket %q has %s on both sides", bracket.ErrMalformedMatchup, entryMatchup.Slot(), entry.Owner(), entryMatchup.TeamA())
	}

	realWinner := actualMatchup.Winner()
	if realWinner.Known() {
		entryMatchup.MarkWinnerResolved()

		predicted := entryMatchup.Winner()
		if predicted.Is(realWinner) || predicted.Is(actualMatchup.AltWinner()) {
			if entryMatchup.RecordWinnerPoint(pointUnit) {
				entry.AddPoints(pointUnit)
			}
		}
	}

	if actualMatchup.Kind() == bracket.WildCard {
		return nil
	}

	if actualMatchup.ParticipantsKnown() {
		entryMatchup.MarkParticipantsResolved()
	}
	if entryMatchup.SameParticipants(actualMatchup) {
		if entryMatchup.RecordParticipantsPoint(pointUnit) {
			entry.AddPoints(pointUnit)
		}
	}
	return nil
}
