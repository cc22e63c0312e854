/* models.go
 * This file contain the structs and helper functions that relate to DB objects
 */

package store

import (
	"time"

	"playoff-bracket/api/bracket"
	"playoff-bracket/api/logic"
	"playoff-bracket/api/shared"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BracketDoc is a candidate entry as stored in the bracket_entries collection
type BracketDoc struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	Owner       string              `bson:"owner"`
	UserID      string              `bson:"userid,omitempty"`
	Season      string              `bson:"season"`
	Tiebreaker  int                 `bson:"tiebreaker"`
	Matchups    []shared.RawMatchup `bson:"matchups"`
	SubmittedAt time.Time           `bson:"submitted_at,omitempty"`
}

// ActualDoc is the ground truth of a season. FinalTotal is nil until the Super Bowl has been played
type ActualDoc struct {
	Season     string              `bson:"season"`
	FinalTotal *int                `bson:"final_total,omitempty"`
	Matchups   []shared.RawMatchup `bson:"matchups"`
	UpdatedAt  time.Time           `bson:"updated_at"`
}

// Leaderboard is the stored result of the latest scoring pass
type Leaderboard struct {
	Season    string             `bson:"season"`
	UpdatedAt time.Time          `bson:"updated_at"`
	Entries   []LeaderboardEntry `bson:"entries"`
}

type LeaderboardEntry struct {
	Rank       int    `bson:"rank" json:"rank"`
	Owner      string `bson:"owner" json:"owner"`
	Score      int    `bson:"score" json:"score"`
	Tiebreaker int    `bson:"tiebreaker" json:"tiebreaker"`
	Successes  int    `bson:"successes" json:"successes"`
	Pending    int    `bson:"pending" json:"pending"`
	Failed     int    `bson:"failed" json:"failed"`
}

// ToBracket converts a stored entry into a Bracket
// Preconditions: Receives the layout of the contest and the playoff field (may be empty)
// Postconditions: Returns the Bracket, or an error if the document does not fit the layout or names unknown teams
func (d BracketDoc) ToBracket(layout bracket.Layout, field []string) (*bracket.Bracket, error) {
	return logic.BuildBracket(d.Owner, d.Tiebreaker, layout, d.Matchups, field)
}

// ToBracket converts the stored ground truth into a Bracket owned by bracket.ActualOwner
func (d ActualDoc) ToBracket(layout bracket.Layout, field []string) (*bracket.Bracket, error) {
	return logic.BuildBracket(bracket.ActualOwner, d.FinalTotalOr(0), layout, d.Matchups, field)
}

// FinalTotalOr returns the final total, or def when it is not known yet
func (d ActualDoc) FinalTotalOr(def int) int {
	if d.FinalTotal == nil {
		return def
	}
	return *d.FinalTotal
}

// FromBracket converts a Bracket into an entry document for the season
func FromBracket(b *bracket.Bracket, layout bracket.Layout, season string) (BracketDoc, error) {
	raw, err := logic.RawFromBracket(b, layout)
	if err != nil {
		return BracketDoc{}, err
	}
	return BracketDoc{
		Owner:      b.Owner(),
		Season:     season,
		Tiebreaker: b.Tiebreaker(),
		Matchups:   raw,
	}, nil
}
