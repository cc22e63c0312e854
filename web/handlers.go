/* handlers.go
 * Contains the HTTP handlers. Results arrive by webhook and trigger an asynchronous scoring pass, the standings are
 * served as JSON and as the HTML report
 */

package web

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"playoff-bracket/api/bracket"
	"playoff-bracket/api/shared"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	secretHeader = "X-Webhook-Secret"
	maxBodyBytes = 1 << 20
)

// NewServer creates a Server from the configuration
func NewServer(cfg Config) *Server {
	return &Server{
		api:     cfg.API,
		metrics: cfg.Metrics,
		log:     cfg.Log,
		secret:  cfg.WebhookSecret,
	}
}

// Routes returns the handler serving every endpoint
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/webhooks/results", s.instrument("results", s.ResultsWebhookHandler))
	mux.Handle("/entries", s.instrument("entries", s.EntryHandler))
	mux.Handle("/leaderboard", s.instrument("leaderboard", s.LeaderboardHandler))
	mux.Handle("/picks", s.instrument("picks", s.PicksHandler))
	mux.Handle("/report", s.instrument("report", s.ReportHandler))
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.Handler())
	}
	return mux
}

// ResultsWebhookHandler HTTP endpoint that receives the result of a game, or the Super Bowl total, and kicks off
// rescoring every entry
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: Stores the result and responds 202 while the scoring pass runs in the background, or responds with
// the reason the result was rejected
func (s *Server) ResultsWebhookHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !s.authorised(r) {
		writeError(w, http.StatusUnauthorized, errors.New("missing or invalid webhook secret"))
		return
	}
	defer r.Body.Close()

	var event ResultEvent
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&event); err != nil {
		s.log.Warn().Err(err).Msg("failed to decode results webhook")
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if event.Slot == "" && event.FinalTotal == nil {
		writeError(w, http.StatusBadRequest, errors.New("event has neither a slot nor a final total"))
		return
	}

	ctx := r.Context()
	if event.Slot != "" {
		if err := s.api.SetActualResult(ctx, event.RawMatchup); err != nil {
			writeError(w, statusFor(err), err)
			return
		}
	}
	if event.FinalTotal != nil {
		if err := s.api.SetFinalTotal(ctx, *event.FinalTotal); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	s.log.Info().Str("slot", event.Slot).Str("winner", event.Winner).Msg("results webhook accepted")
	s.api.RescoreInBackground()
	w.WriteHeader(http.StatusAccepted)
}

// EntryHandler HTTP endpoint that accepts a bracket entry
// Preconditions: Receives an EntryRequest body
// Postconditions: Stores the entry and responds 201, or responds 400 with every problem found in the entry
func (s *Server) EntryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !s.authorised(r) {
		writeError(w, http.StatusUnauthorized, errors.New("missing or invalid webhook secret"))
		return
	}
	defer r.Body.Close()

	var req EntryRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	user := shared.User{UserID: req.UserID, Username: req.Username}
	if err := s.api.SubmitEntry(r.Context(), user, req.Owner, req.Tiebreaker, req.Matchups); err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// LeaderboardHandler HTTP endpoint that serves the stored leaderboard as JSON
func (s *Server) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	entries, err := s.api.GetLeaderboardEntries(r.Context())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeError(w, http.StatusNotFound, errors.New("no leaderboard has been generated yet"))
			return
		}
		s.log.Error().Err(err).Msg("leaderboard fetch failed")
		writeError(w, http.StatusInternalServerError, errors.New("leaderboard unavailable"))
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// PicksHandler HTTP endpoint that serves the pick distribution of the slot named by the slot query parameter
func (s *Server) PicksHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	shares, err := s.api.GetPickDistribution(r.Context(), r.URL.Query().Get("slot"))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, shares)
}

// ReportHandler HTTP endpoint that scores the contest and serves the HTML report. The stored leaderboard is not
// changed
func (s *Server) ReportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var page bytes.Buffer
	if err := s.api.WriteReport(r.Context(), &page); err != nil {
		s.log.Error().Err(err).Msg("report generation failed")
		http.Error(w, "report unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page.Bytes())
}

// authorised reports whether the request carries the webhook secret, or no secret is configured
func (s *Server) authorised(r *http.Request) bool {
	if s.secret == "" {
		return true
	}
	got := r.Header.Get(secretHeader)
	return subtle.ConstantTimeCompare([]byte(got), []byte(s.secret)) == 1
}

// statusFor maps an error from the api to a response code
func statusFor(err error) int {
	switch {
	case errors.Is(err, bracket.ErrUnknownSlot), errors.Is(err, bracket.ErrMalformedMatchup):
		return http.StatusBadRequest
	case errors.Is(err, mongo.ErrNoDocuments):
		return http.StatusNotFound
	case mongo.IsTimeout(err), mongo.IsNetworkError(err), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusUnprocessableEntity
	}
}

// instrument records the response code of every request to an endpoint
func (s *Server) instrument(endpoint string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next(rec, r)
		s.metrics.RecordHTTPRequest(endpoint, rec.code)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, errorResponse{Error: err.Error()})
}
