/* leaderboard.go
 * Contains the methods for interacting with the leaderboard collection
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FetchLeaderboardFromDB returns the leaderboard from the db
// Preconditions: Receives receiver pointer for Store which contains DB information such as database name, collection and season
// Postconditions: Returns slice of LeaderboardEntry, or an error if it occurs
func (s *Store) FetchLeaderboardFromDB(ctx context.Context) ([]LeaderboardEntry, error) {
	var res Leaderboard
	err := s.Collections.Leaderboard.FindOne(ctx, bson.D{{Key: "season", Value: s.Season}}, options.FindOne()).Decode(&res)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch leaderboard from database: %w", err)
	}

	return res.Entries, nil
}

// StoreLeaderboard updates the leaderboard stored in the DB
// Preconditions: Receives receiver pointer for Store and the Leaderboard value to be stored
// Postconditions: Updates the leaderboard collection in Mongo and returns nil, or an error if it occurs
func (s *Store) StoreLeaderboard(ctx context.Context, leaderboard Leaderboard) error {
	if len(leaderboard.Entries) == 0 {
		return fmt.Errorf("leaderboard is empty")
	}
	leaderboard.Season = s.Season

	filter := bson.M{"season": s.Season}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.Collections.Leaderboard.ReplaceOne(ctx, filter, leaderboard, opts); err != nil {
		return fmt.Errorf("leaderboard update failed: %w", err)
	}
	return nil
}
