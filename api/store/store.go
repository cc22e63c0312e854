/* store.go
 * Contains the store struct and NewStore function. The methods for this package were split into three files:
 * entries, results and leaderboard. Each of these files contain methods for interacting with that part of the database
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collections holds the collections used by the contest
type Collections struct {
	Entries     *mongo.Collection
	Results     *mongo.Collection
	Leaderboard *mongo.Collection
}

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Season      string
	Collections Collections
}

// Function for initialising Store. Opens the db connection and sets the collections
// Preconditions: Receives a context, strings containing the dbName, mongoURI and season (e.g. 2025-26)
// Postconditions: Returns pointer to the Store object with its indexes in place, or error if it occurs
func NewStore(ctx context.Context, dbName string, mongoURI string, season string) (*Store, error) {
	if season == "" {
		return nil, fmt.Errorf("season cannot be empty")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	s := &Store{
		Client:   client,
		Database: db,
		Season:   season,
		Collections: Collections{
			Entries:     db.Collection("bracket_entries"),
			Results:     db.Collection("actual_results"),
			Leaderboard: db.Collection("leaderboard"),
		},
	}
	if err := s.EnsureIndexes(ctx); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}
