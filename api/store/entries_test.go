/* entries_test.go
 * Contains unit tests for entries.go
 */

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// region StoreEntry tests

func TestStoreEntry_InsertNew(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("inserts a new entry", func(mt *mtest.T) {
		store := newMockStore(mt)

		// Mock FindOne returning no documents (new entry)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.bracket_entries", mtest.FirstBatch))
		// Mock InsertOne success
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := store.StoreEntry(context.Background(), CreateSampleEntry("Nathan Mott", 37))
		assert.NoError(t, err)
	})
}

func TestStoreEntry_ReplaceExisting(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("replaces an existing entry", func(mt *mtest.T) {
		store := newMockStore(mt)

		existing := CreateSampleEntry("Nathan Mott", 37)
		existing.ID = primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "test.bracket_entries", mtest.FirstBatch, toBsonDoc(t, existing)),
			bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}},
		)

		updated := CreateSampleEntry("Nathan Mott", 41)
		err := store.StoreEntry(context.Background(), updated)
		assert.NoError(t, err)
	})
}

func TestStoreEntry_MissingOwner(t *testing.T) {
	store := &Store{Season: "test_season"}
	err := store.StoreEntry(context.Background(), BracketDoc{})
	assert.EqualError(t, err, "entry has no owner")
}

func TestStoreEntry_FindOneError(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns error when FindOne fails", func(mt *mtest.T) {
		store := newMockStore(mt)
		mt.AddMockResponses(databaseError())

		err := store.StoreEntry(context.Background(), CreateSampleEntry("Nathan Mott", 37))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "lookup for existing entry failed")
	})
}

func TestStoreEntry_InsertError(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns error when insert fails", func(mt *mtest.T) {
		store := newMockStore(mt)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "test.bracket_entries", mtest.FirstBatch),
			databaseError(),
		)

		err := store.StoreEntry(context.Background(), CreateSampleEntry("Nathan Mott", 37))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to insert new entry")
	})
}

// endregion

// region GetEntry tests

func TestGetEntry_Success(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the stored entry", func(mt *mtest.T) {
		store := newMockStore(mt)
		entry := CreateSampleEntry("Ashley Mott", 52)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.bracket_entries", mtest.FirstBatch, toBsonDoc(t, entry)))

		got, err := store.GetEntry(context.Background(), "Ashley Mott")
		require.NoError(t, err)
		assert.Equal(t, "Ashley Mott", got.Owner)
		assert.Equal(t, 52, got.Tiebreaker)
		require.Len(t, got.Matchups, 3)
		assert.Equal(t, "Super Bowl", got.Matchups[2].Slot)
		assert.Equal(t, "Eagles", got.Matchups[2].Winner)
	})
}

func TestGetEntry_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns ErrNoDocuments", func(mt *mtest.T) {
		store := newMockStore(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.bracket_entries", mtest.FirstBatch))

		_, err := store.GetEntry(context.Background(), "Nobody")
		assert.Equal(t, mongo.ErrNoDocuments, err)
	})
}

func TestGetEntry_DatabaseError(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("wraps database errors", func(mt *mtest.T) {
		store := newMockStore(mt)
		mt.AddMockResponses(databaseError())

		_, err := store.GetEntry(context.Background(), "Nathan Mott")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error fetching entry from db")
	})
}

// endregion

// region GetAllEntries tests

func TestGetAllEntries_Success(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns every entry of the season", func(mt *mtest.T) {
		store := newMockStore(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.bracket_entries", mtest.FirstBatch,
			toBsonDoc(t, CreateSampleEntry("Ashley Mott", 52)),
			toBsonDoc(t, CreateSampleEntry("Jo Pugliese", 37)),
		))

		entries, err := store.GetAllEntries(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Ashley Mott", entries[0].Owner)
		assert.Equal(t, "Jo Pugliese", entries[1].Owner)
	})
}

func TestGetAllEntries_Empty(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns no entries", func(mt *mtest.T) {
		store := newMockStore(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.bracket_entries", mtest.FirstBatch))

		entries, err := store.GetAllEntries(context.Background())
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestGetAllEntries_DatabaseError(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("wraps database errors", func(mt *mtest.T) {
		store := newMockStore(mt)
		mt.AddMockResponses(databaseError())

		_, err := store.GetAllEntries(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error fetching entries from db")
	})
}

// endregion
