/* test_helpers.go
 * Contains test helper functions for store package tests
 */

package store

import (
	"context"
	"time"

	"playoff-bracket/api/shared"
)

// CreateTestStore creates a Store connected to a test database.
// Returns the store and a cleanup function.
func CreateTestStore(ctx context.Context, mongoURI string) (*Store, func(), error) {
	store, err := NewStore(ctx, "test_playoff_bracket", mongoURI, "test_season")
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if store.Client != nil {
			// Drop test database
			store.Database.Drop(context.TODO())
			// Disconnect client
			store.Client.Disconnect(context.TODO())
		}
	}

	return store, cleanup, nil
}

// CreateSampleEntry creates a sample BracketDoc holding the conference round and the Super Bowl.
func CreateSampleEntry(owner string, tiebreaker int) BracketDoc {
	return BracketDoc{
		Owner:      owner,
		Season:     "test_season",
		Tiebreaker: tiebreaker,
		Matchups: []shared.RawMatchup{
			{Slot: "Conference 1", Round: "Conference", TeamA: "Chiefs", TeamB: "Bills", Winner: "Chiefs"},
			{Slot: "Conference 2", Round: "Conference", TeamA: "Eagles", TeamB: "Commanders", Winner: "Eagles"},
			{Slot: "Super Bowl", Round: "Super Bowl", TeamA: "Chiefs", TeamB: "Eagles", Winner: "Eagles"},
		},
		SubmittedAt: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}
