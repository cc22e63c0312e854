/* results.go
 * Contains the methods for interacting with the actual_results collection
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"playoff-bracket/api/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Bounds the retries of a slot write that loses a race with another writer of the same season
const maxResultAttempts = 3

// EnsureIndexes creates the unique season index of the results collection. StoreActualResult relies on it to stop a
// racing upsert from creating a second document for the season
func (s *Store) EnsureIndexes(ctx context.Context) error {
	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "season", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("season_unique"),
	}
	if _, err := s.Collections.Results.Indexes().CreateOne(ctx, index); err != nil {
		return fmt.Errorf("failed to create results index: %w", err)
	}
	return nil
}

// FetchActualBracket retrieves the ground truth of the season from the db
// Postconditions: Returns the ActualDoc, mongo.ErrNoDocuments if no result has been recorded yet, or another error
func (s *Store) FetchActualBracket(ctx context.Context) (ActualDoc, error) {
	var res ActualDoc
	err := s.Collections.Results.FindOne(ctx, bson.D{{Key: "season", Value: s.Season}}, options.FindOne()).Decode(&res)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ActualDoc{}, err
		}
		return ActualDoc{}, fmt.Errorf("error fetching results from db: %w", err)
	}
	return res, nil
}

// StoreActualResult records the real outcome of one slot
// Preconditions: Receives a context and the RawMatchup of the slot. Slot must not be empty
// Postconditions: Replaces the slot in the season's ground truth, appending it or creating the document when needed,
// or returns an error if it occurs. Each write changes only the one slot on the server, so results stored at the
// same time for different slots are all kept
func (s *Store) StoreActualResult(ctx context.Context, result shared.RawMatchup) error {
	if result.Slot == "" {
		return fmt.Errorf("result has no slot")
	}

	for attempt := 0; attempt < maxResultAttempts; attempt++ {
		now := time.Now().UTC()

		// Replace the slot in place when the season already holds it
		replace := bson.M{"$set": bson.M{"matchups.$": result, "updated_at": now}}
		res, err := s.Collections.Results.UpdateOne(ctx, bson.M{"season": s.Season, "matchups.slot": result.Slot}, replace)
		if err != nil {
			return fmt.Errorf("results update failed: %w", err)
		}
		if res.MatchedCount > 0 {
			return nil
		}

		// Otherwise append it, creating the season document on the first result. If another writer adds the slot
		// first the filter no longer matches, the upsert hits the unique season index and the replace is retried
		push := bson.M{"$push": bson.M{"matchups": result}, "$set": bson.M{"updated_at": now}}
		filter := bson.M{"season": s.Season, "matchups.slot": bson.M{"$ne": result.Slot}}
		_, err = s.Collections.Results.UpdateOne(ctx, filter, push, options.Update().SetUpsert(true))
		if err == nil {
			return nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("results update failed: %w", err)
		}
	}
	return fmt.Errorf("results update failed: slot %q kept changing after %d attempts", result.Slot, maxResultAttempts)
}

// StoreFinalTotal records the total points scored in the Super Bowl, used to break ties
func (s *Store) StoreFinalTotal(ctx context.Context, total int) error {
	if total < 0 {
		return fmt.Errorf("final total cannot be negative: %d", total)
	}
	update := bson.M{"$set": bson.M{
		"final_total": total,
		"updated_at":  time.Now().UTC(),
	}}
	return s.upsertResults(ctx, update)
}

func (s *Store) upsertResults(ctx context.Context, update bson.M) error {
	opts := options.Update().SetUpsert(true)
	if _, err := s.Collections.Results.UpdateOne(ctx, bson.M{"season": s.Season}, update, opts); err != nil {
		return fmt.Errorf("results update failed: %w", err)
	}
	return nil
}
