/* models.go
 * Contains the web server configuration and the request bodies it accepts
 */

package web

import (
	"playoff-bracket/api/api"
	"playoff-bracket/api/metrics"
	"playoff-bracket/api/shared"

	"github.com/rs/zerolog"
)

// Config holds the configuration for the web server
type Config struct {
	Addr          string
	API           *api.API
	Metrics       *metrics.Manager
	Log           zerolog.Logger
	WebhookSecret string
}

// Server is the HTTP server that receives results and serves the standings
type Server struct {
	api     *api.API
	metrics *metrics.Manager
	log     zerolog.Logger
	secret  string
}

// ResultEvent is the body of a results webhook. Slot may be empty when only the final total is sent
type ResultEvent struct {
	shared.RawMatchup
	FinalTotal *int `json:"final_total,omitempty"`
}

// EntryRequest is the body of an entry submission
type EntryRequest struct {
	Owner      string              `json:"owner"`
	UserID     string              `json:"user_id,omitempty"`
	Username   string              `json:"username,omitempty"`
	Tiebreaker int                 `json:"tiebreaker"`
	Matchups   []shared.RawMatchup `json:"matchups"`
}

// errorResponse is written for every rejected request
type errorResponse struct {
	Error string `json:"error"`
}
