/* test_mocks.go
 * Contains mock structures and interfaces for testing the API package
 */

package api

import (
	"context"

	"playoff-bracket/api/shared"
	"playoff-bracket/api/store"

	"go.mongodb.org/mongo-driver/mongo"
)

// MockStore implements the Store interface for testing
type MockStore struct {
	// Storage for mock data
	Entries     map[string]store.BracketDoc
	Actual      *store.ActualDoc
	Leaderboard *store.Leaderboard

	// Error injection for testing error paths
	StoreEntryError       error
	GetEntryError         error
	GetAllEntriesError    error
	FetchActualError      error
	StoreActualError      error
	StoreLeaderboardError error
	FetchLeaderboardError error

	Season   string
	Database interface{ Name() string }
}

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}

// NewMockStore creates a new MockStore with default values
func NewMockStore(season string) *MockStore {
	return &MockStore{
		Entries:  make(map[string]store.BracketDoc),
		Season:   season,
		Database: &mockDatabase{name: "test_db"},
	}
}

// StoreEntry mock implementation
func (m *MockStore) StoreEntry(_ context.Context, entry store.BracketDoc) error {
	if m.StoreEntryError != nil {
		return m.StoreEntryError
	}
	entry.Season = m.Season
	m.Entries[entry.Owner] = entry
	return nil
}

// GetEntry mock implementation
func (m *MockStore) GetEntry(_ context.Context, owner string) (store.BracketDoc, error) {
	if m.GetEntryError != nil {
		return store.BracketDoc{}, m.GetEntryError
	}
	if entry, ok := m.Entries[owner]; ok {
		return entry, nil
	}
	for _, entry := range m.Entries {
		if entry.UserID != "" && entry.UserID == owner {
			return entry, nil
		}
	}
	return store.BracketDoc{}, mongo.ErrNoDocuments
}

// GetAllEntries mock implementation
func (m *MockStore) GetAllEntries(_ context.Context) ([]store.BracketDoc, error) {
	if m.GetAllEntriesError != nil {
		return nil, m.GetAllEntriesError
	}
	var entries []store.BracketDoc
	for _, entry := range m.Entries {
		entries = append(entries, entry)
	}
	return entries, nil
}

// FetchActualBracket mock implementation
func (m *MockStore) FetchActualBracket(_ context.Context) (store.ActualDoc, error) {
	if m.FetchActualError != nil {
		return store.ActualDoc{}, m.FetchActualError
	}
	if m.Actual == nil {
		return store.ActualDoc{}, mongo.ErrNoDocuments
	}
	return *m.Actual, nil
}

// StoreActualResult mock implementation
func (m *MockStore) StoreActualResult(_ context.Context, result shared.RawMatchup) error {
	if m.StoreActualError != nil {
		return m.StoreActualError
	}
	if m.Actual == nil {
		m.Actual = &store.ActualDoc{Season: m.Season}
	}
	for i, existing := range m.Actual.Matchups {
		if existing.Slot == result.Slot {
			m.Actual.Matchups[i] = result
			return nil
		}
	}
	m.Actual.Matchups = append(m.Actual.Matchups, result)
	return nil
}

// StoreFinalTotal mock implementation
func (m *MockStore) StoreFinalTotal(_ context.Context, total int) error {
	if m.StoreActualError != nil {
		return m.StoreActualError
	}
	if m.Actual == nil {
		m.Actual = &store.ActualDoc{Season: m.Season}
	}
	m.Actual.FinalTotal = &total
	return nil
}

// StoreLeaderboard mock implementation
func (m *MockStore) StoreLeaderboard(_ context.Context, leaderboard store.Leaderboard) error {
	if m.StoreLeaderboardError != nil {
		return m.StoreLeaderboardError
	}
	m.Leaderboard = &leaderboard
	return nil
}

// FetchLeaderboardFromDB mock implementation
func (m *MockStore) FetchLeaderboardFromDB(_ context.Context) ([]store.LeaderboardEntry, error) {
	if m.FetchLeaderboardError != nil {
		return nil, m.FetchLeaderboardError
	}
	if m.Leaderboard == nil {
		return nil, mongo.ErrNoDocuments
	}
	entries := make([]store.LeaderboardEntry, len(m.Leaderboard.Entries))
	copy(entries, m.Leaderboard.Entries)
	return entries, nil
}

// Implement getter methods for store.Interface
func (m *MockStore) GetDatabase() interface{ Name() string } {
	return m.Database
}

func (m *MockStore) GetSeason() string {
	return m.Season
}

// mockClient implements minimal client interface
type mockClient struct{}

func (mc *mockClient) Disconnect(ctx context.Context) error {
	return nil
}

func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return &mockClient{}
}
