/* api.go
 * This file contains the public methods for interacting with this package. The bot and web server should only call
 * the methods in this file, not the sub packages for logic and store
 */

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"playoff-bracket/api/bracket"
	"playoff-bracket/api/config"
	"playoff-bracket/api/logic"
	"playoff-bracket/api/metrics"
	"playoff-bracket/api/report"
	"playoff-bracket/api/shared"
	"playoff-bracket/api/store"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
)

// API provides methods for scoring the contest and reading its results
type API struct {
	Store   store.Interface
	Layout  bracket.Layout
	Field   []string
	Workers int
	Metrics *metrics.Manager
	Log     zerolog.Logger

	// scoring passes run one at a time
	mu sync.Mutex
	// rescoring tracks the passes started by RescoreInBackground
	rescoring sync.WaitGroup
}

// Bounds a scoring pass started after a result is recorded
const rescoreTimeout = 2 * time.Minute

// NewAPI creates a new API instance with the provided configuration
// Preconditions: Receives a context, a validated Config, a logger and a metrics manager (may be nil)
// Postconditions: Returns the API connected to the store, or an error if the store could not be initialised
func NewAPI(ctx context.Context, cfg *config.Config, log zerolog.Logger, m *metrics.Manager) (*API, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s, err := store.NewStore(ctx, cfg.Database, cfg.MongoURI, cfg.Season)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return &API{
		Store:   s,
		Layout:  cfg.BracketLayout(),
		Field:   cfg.Teams,
		Workers: cfg.Workers,
		Metrics: m,
		Log:     log.With().Str("season", cfg.Season).Logger(),
	}, nil
}

// Close disconnects from the store
func (a *API) Close(ctx context.Context) error {
	return a.Store.GetClient().Disconnect(ctx)
}

// ScoreContest runs a full scoring pass over every entry of the season and stores the resulting leaderboard.
// Preconditions: Receives a context. Results that have not been recorded yet are treated as undetermined
// Postconditions: Returns the scored Contest, or an error if the ground truth is invalid, scoring fails or the
// leaderboard could not be stored
func (a *API) ScoreContest(ctx context.Context) (*Contest, error) {
	return a.runPass(ctx, true)
}

// RescoreInBackground starts a scoring pass that stores the leaderboard, without waiting for it. Failures are logged
func (a *API) RescoreInBackground() {
	a.rescoring.Add(1)
	go func() {
		defer a.rescoring.Done()
		ctx, cancel := context.WithTimeout(context.Background(), rescoreTimeout)
		defer cancel()
		if _, err := a.ScoreContest(ctx); err != nil {
			a.Log.Error().Err(err).Msg("rescoring after a new result failed")
		}
	}()
}

// WaitForRescoring blocks until every pass started by RescoreInBackground has finished
func (a *API) WaitForRescoring() {
	a.rescoring.Wait()
}

// runPass scores the contest, storing the leaderboard when persist is set
func (a *API) runPass(ctx context.Context, persist bool) (*Contest, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	start := time.Now()
	contest, err := a.scoreContest(ctx, persist)
	if err != nil {
		a.Metrics.RecordPass(0, 0, time.Since(start), err)
		a.Log.Error().Err(err).Msg("scoring pass failed")
		return nil, err
	}

	points := 0
	for _, e := range contest.Entries {
		points += e.TotalScore()
	}
	a.Metrics.RecordPass(len(contest.Entries), points, time.Since(start), nil)
	a.Log.Info().Int("entries", len(contest.Entries)).Int("points", points).Bool("stored", persist).Dur("took", time.Since(start)).Msg("scoring pass finished")
	return contest, nil
}

func (a *API) scoreContest(ctx context.Context, persist bool) (*Contest, error) {
	actual, finalTotal, err := a.loadActual(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := a.loadEntries(ctx)
	if err != nil {
		return nil, err
	}

	if err := logic.ScoreEntriesParallel(ctx, actual, entries, a.Workers); err != nil {
		return nil, fmt.Errorf("scoring pass failed: %w", err)
	}

	contest := &Contest{
		Actual:     actual,
		Entries:    entries,
		FinalTotal: finalTotal,
		Standings:  logic.SortStandings(entries, finalTotal),
	}
	if !persist || len(entries) == 0 {
		return contest, nil
	}

	leaderboard, err := a.buildLeaderboard(contest)
	if err != nil {
		return nil, err
	}
	if err := a.Store.StoreLeaderboard(ctx, leaderboard); err != nil {
		return nil, err
	}
	return contest, nil
}

// GenerateLeaderboard contains the logic required to generate a leaderboard.
// Preconditions: Receives receiver pointer to api
// Postconditions: Scores the contest, updates the leaderboard in the DB and returns nil, or returns an error if it occurs
func (a *API) GenerateLeaderboard(ctx context.Context) error {
	_, err := a.ScoreContest(ctx)
	return err
}

// GetLeaderboardEntries fetches the stored leaderboard in rank order
func (a *API) GetLeaderboardEntries(ctx context.Context) ([]store.LeaderboardEntry, error) {
	entries, err := a.Store.FetchLeaderboardFromDB(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rank < entries[j].Rank
	})
	return entries, nil
}

// GetLeaderboard fetches the leaderboard from the db and generates a response string
// Preconditions: Receives receiver pointer to api
// Postconditions: Returns a string with the summary of the leaderboard for this season
func (a *API) GetLeaderboard(ctx context.Context) (string, error) {
	entries, err := a.GetLeaderboardEntries(ctx)
	if err != nil {
		return "", err
	}

	var response strings.Builder
	response.WriteString("The entries with the best brackets are:\n")
	for _, e := range entries {
		response.WriteString(fmt.Sprintf("%d. %s, %d points (%d successes, %d failures, tiebreaker %d)\n",
			e.Rank, e.Owner, e.Score, e.Successes, e.Failed, e.Tiebreaker))
	}
	return response.String(), nil
}

// CheckEntry scores a single entry against the current results and describes every pick.
// Preconditions: Receives a context and the owner label or Discord user id of the entry
// Postconditions: Returns the report, mongo.ErrNoDocuments if the owner has no entry, or another error if it occurs
func (a *API) CheckEntry(ctx context.Context, owner string) (string, error) {
	doc, err := a.Store.GetEntry(ctx, owner)
	if err != nil {
		return "", err
	}
	entry, err := a.toBracket(doc)
	if err != nil {
		return "", err
	}

	actual, _, err := a.loadActual(ctx)
	if err != nil {
		return "", err
	}
	if err := logic.ScoreEntry(actual, entry); err != nil {
		return "", err
	}

	_, summary, err := logic.SummarizeEntry(entry, a.Layout.SlotNames())
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Bracket of %s\n%s", entry.Owner(), summary), nil
}

// SubmitEntry validates an entry and stores it for the season, replacing an earlier entry of the same owner.
// Preconditions: Receives the submitting user (UserID may be empty), the owner label, the tiebreaker guess and the
// raw matchups of the entry
// Postconditions: Stores the entry with team names normalised to the playoff field, or returns an error describing
// every invalid value
func (a *API) SubmitEntry(ctx context.Context, user shared.User, owner string, tiebreaker int, raw []shared.RawMatchup) error {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		owner = user.Username
	}
	if owner == "" || strings.EqualFold(owner, bracket.ActualOwner) {
		return fmt.Errorf("invalid entry name: %q", owner)
	}
	if tiebreaker < 0 {
		return fmt.Errorf("tiebreaker cannot be negative: %d", tiebreaker)
	}

	b, err := logic.BuildBracket(owner, tiebreaker, a.Layout, raw, a.Field)
	if err != nil {
		return err
	}
	if err := a.Layout.Validate(b); err != nil {
		return err
	}

	doc, err := store.FromBracket(b, a.Layout, a.Store.GetSeason())
	if err != nil {
		return err
	}
	doc.UserID = user.UserID
	if err := a.Store.StoreEntry(ctx, doc); err != nil {
		return err
	}
	a.Log.Info().Str("owner", owner).Msg("entry stored")
	return nil
}

// SetActualResult records the real outcome of one slot.
// Preconditions: Receives a context and the result. Teams may be placeholders while a game is not decided yet
// Postconditions: Stores the result with team names normalised to the playoff field, or returns an error if the slot
// is unknown, a team is not in the field or the result contradicts itself
func (a *API) SetActualResult(ctx context.Context, result shared.RawMatchup) error {
	def, ok := a.Layout.Slot(strings.TrimSpace(result.Slot))
	if !ok {
		return fmt.Errorf("%w: %q", bracket.ErrUnknownSlot, result.Slot)
	}

	var invalid []string
	resolve := func(value string) bracket.Team {
		team, err := logic.ResolveTeam(value, a.Field)
		if err != nil {
			invalid = append(invalid, err.Error())
		}
		return team
	}
	teamA, teamB, winner := resolve(result.TeamA), resolve(result.TeamB), resolve(result.Winner)
	if len(invalid) > 0 {
		return errors.New(strings.Join(invalid, ", "))
	}

	m := bracket.NewMatchup(def.Name, def.Kind, teamA, teamB, winner)
	if m.Malformed() {
		return fmt.Errorf("%w: %s plays itself in %s", bracket.ErrMalformedMatchup, teamA, def.Name)
	}
	if winner.Known() && m.ParticipantsKnown() && !winner.Is(teamA) && !winner.Is(teamB) {
		return fmt.Errorf("winner %s did not play in %s", winner, def.Name)
	}

	normalised := shared.RawMatchup{
		Slot:   def.Name,
		Round:  def.Kind.String(),
		TeamA:  teamA.Name(),
		TeamB:  teamB.Name(),
		Winner: winner.Name(),
	}
	if err := a.Store.StoreActualResult(ctx, normalised); err != nil {
		return err
	}
	a.Metrics.RecordResultStored()
	a.Log.Info().Str("slot", def.Name).Str("winner", winner.String()).Msg("result stored")
	return nil
}

// SetFinalTotal records the total points scored in the Super Bowl, used to break ties
func (a *API) SetFinalTotal(ctx context.Context, total int) error {
	return a.Store.StoreFinalTotal(ctx, total)
}

// GetPickDistribution counts which winner the entries picked for a slot, the Super Bowl when slot is empty
func (a *API) GetPickDistribution(ctx context.Context, slot string) ([]logic.PickShare, error) {
	if slot == "" {
		slot = bracket.SuperBowl
	}
	def, ok := a.Layout.Slot(slot)
	if !ok {
		return nil, fmt.Errorf("%w: %q", bracket.ErrUnknownSlot, slot)
	}
	entries, err := a.loadEntries(ctx)
	if err != nil {
		return nil, err
	}
	return logic.PickDistribution(entries, def.Name)
}

// CheckTeams matches team names against the playoff field
// Preconditions: Receives the names to check
// Postconditions: Returns the field names the input resolved to and the names that matched nothing. With no field
// configured every name is returned unchanged as valid
func (a *API) CheckTeams(names []string) ([]string, []string) {
	if len(a.Field) == 0 {
		return names, nil
	}
	return logic.CheckTeamNames(names, a.Field)
}

// WriteReport scores the contest and writes the HTML report to w. The stored leaderboard is left unchanged
func (a *API) WriteReport(ctx context.Context, w io.Writer) error {
	contest, err := a.runPass(ctx, false)
	if err != nil {
		return err
	}
	return report.HTML(w, report.Page{
		Title:      fmt.Sprintf("NFL Playoff Bracket %s", a.Store.GetSeason()),
		Layout:     a.Layout,
		Entries:    contest.Entries,
		FinalTotal: contest.FinalTotal,
	})
}

// loadActual builds the ground truth with the reseeding alternates applied. A season without results yet gives a
// bracket where nothing is determined
func (a *API) loadActual(ctx context.Context) (*bracket.Bracket, int, error) {
	doc, err := a.Store.FetchActualBracket(ctx)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, 0, err
	}

	actual, err := doc.ToBracket(a.Layout, a.Field)
	if err != nil {
		return nil, 0, fmt.Errorf("stored results are invalid: %w", err)
	}
	if err := a.Layout.ApplyAlternates(actual); err != nil {
		return nil, 0, err
	}
	if err := a.Layout.Validate(actual); err != nil {
		return nil, 0, fmt.Errorf("stored results are invalid: %w", err)
	}
	return actual, doc.FinalTotalOr(-1), nil
}

// loadEntries builds every stored entry of the season. Entries that no longer fit the layout or the field are left
// out of the pass and logged
func (a *API) loadEntries(ctx context.Context) ([]*bracket.Bracket, error) {
	docs, err := a.Store.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]*bracket.Bracket, 0, len(docs))
	for _, doc := range docs {
		b, err := a.toBracket(doc)
		if err != nil {
			a.Log.Warn().Err(err).Str("owner", doc.Owner).Msg("skipping invalid entry")
			continue
		}
		entries = append(entries, b)
	}
	return entries, nil
}

func (a *API) toBracket(doc store.BracketDoc) (*bracket.Bracket, error) {
	b, err := doc.ToBracket(a.Layout, a.Field)
	if err != nil {
		return nil, err
	}
	if err := a.Layout.Validate(b); err != nil {
		return nil, err
	}
	return b, nil
}

// buildLeaderboard turns the standings of a scored contest into the stored leaderboard
func (a *API) buildLeaderboard(contest *Contest) (store.Leaderboard, error) {
	counts := make(map[string]logic.ScoreResult, len(contest.Entries))
	for _, e := range contest.Entries {
		result, _, err := logic.SummarizeEntry(e, a.Layout.SlotNames())
		if err != nil {
			return store.Leaderboard{}, err
		}
		counts[e.Owner()] = result
	}

	leaderboard := store.Leaderboard{
		Season:    a.Store.GetSeason(),
		UpdatedAt: time.Now().UTC(),
	}
	for _, s := range contest.Standings {
		c := counts[s.Owner]
		leaderboard.Entries = append(leaderboard.Entries, store.LeaderboardEntry{
			Rank:       s.Rank,
			Owner:      s.Owner,
			Score:      s.Score,
			Tiebreaker: s.Tiebreaker,
			Successes:  c.Successes,
			Pending:    c.Pending,
			Failed:     c.Failed,
		})
	}
	return leaderboard, nil
}
