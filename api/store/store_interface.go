/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 */

package store

import (
	"context"

	"playoff-bracket/api/shared"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	StoreEntry(ctx context.Context, entry BracketDoc) error
	GetEntry(ctx context.Context, owner string) (BracketDoc, error)
	GetAllEntries(ctx context.Context) ([]BracketDoc, error)
	FetchActualBracket(ctx context.Context) (ActualDoc, error)
	StoreActualResult(ctx context.Context, result shared.RawMatchup) error
	StoreFinalTotal(ctx context.Context, total int) error
	StoreLeaderboard(ctx context.Context, leaderboard Leaderboard) error
	FetchLeaderboardFromDB(ctx context.Context) ([]LeaderboardEntry, error)

	// Getter methods for accessing fields
	GetDatabase() interface{ Name() string }
	GetSeason() string
	GetClient() interface{ Disconnect(context.Context) error }
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)

// GetDatabase returns the database instance
func (s *Store) GetDatabase() interface{ Name() string } {
	return s.Database
}

// GetSeason returns the season the store reads and writes
func (s *Store) GetSeason() string {
	return s.Season
}

// GetClient returns the MongoDB client
func (s *Store) GetClient() interface{ Disconnect(context.Context) error } {
	return s.Client
}
