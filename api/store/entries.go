/* entries.go
 * Contains the methods for interacting with the bracket_entries collection
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StoreEntry stores a candidate bracket in the db
// Preconditions: Receives a context and the BracketDoc of the entry. The entry's Owner must not be empty
// Postconditions: Stores or replaces the owner's entry for the season, or returns an error if the operation was unsuccessful
func (s *Store) StoreEntry(ctx context.Context, entry BracketDoc) error {
	if entry.Owner == "" {
		return fmt.Errorf("entry has no owner")
	}
	entry.Season = s.Season
	if entry.SubmittedAt.IsZero() {
		entry.SubmittedAt = time.Now().UTC()
	}

	// Attempt to find an existing document
	var existing BracketDoc
	filter := bson.M{"owner": entry.Owner, "season": s.Season}
	err := s.Collections.Entries.FindOne(ctx, filter).Decode(&existing)
	notFound := errors.Is(err, mongo.ErrNoDocuments)

	if err != nil && !notFound {
		return fmt.Errorf("lookup for existing entry failed: %w", err)
	}

	// The owner does not have an entry stored so we create a new document
	if notFound {
		entry.ID = primitive.NilObjectID
		if _, err := s.Collections.Entries.InsertOne(ctx, entry); err != nil {
			return fmt.Errorf("failed to insert new entry: %w", err)
		}
		return nil
	}

	// Else replace the owner's existing entry, keeping its id
	entry.ID = existing.ID
	if _, err := s.Collections.Entries.ReplaceOne(ctx, bson.M{"_id": existing.ID}, entry); err != nil {
		return fmt.Errorf("failed to update existing entry: %w", err)
	}
	return nil
}

// GetEntry does DB lookup and gets the entry of an owner
// Preconditions: Receives a context and the owner label or Discord user id of the entry
// Postconditions: Returns the entry if it exists, mongo.ErrNoDocuments if it does not, or another error if it occurs
func (s *Store) GetEntry(ctx context.Context, owner string) (BracketDoc, error) {
	filter := bson.M{
		"season": s.Season,
		"$or": bson.A{
			bson.M{"owner": owner},
			bson.M{"userid": owner},
		},
	}

	var result BracketDoc
	err := s.Collections.Entries.FindOne(ctx, filter, options.FindOne()).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return BracketDoc{}, err
		}
		return BracketDoc{}, fmt.Errorf("error fetching entry from db: %w", err)
	}
	return result, nil
}

// GetAllEntries does DB lookup and gets every entry stored for the season. Used in scoring passes.
// Postconditions: Returns the entries ordered by owner, or an error if it occurs
func (s *Store) GetAllEntries(ctx context.Context) ([]BracketDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "owner", Value: 1}})
	cursor, err := s.Collections.Entries.Find(ctx, bson.D{{Key: "season", Value: s.Season}}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching entries from db: %w", err)
	}

	// Unpack the cursor into a slice
	var results []BracketDoc
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of entries: %w", err)
	}
	return results, nil
}
