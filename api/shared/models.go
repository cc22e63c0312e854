/* models.go
 * This file contain the structs that are shared between sub packages
 */

package shared

type User struct {
	UserID   string
	Username string
}

// RawMatchup is one slot of a bracket as it arrives from intake or is stored in the db. Team values are free text
// and may hold a placeholder for a team that is not known yet
type RawMatchup struct {
	Slot      string `bson:"slot" json:"slot"`
	Round     string `bson:"round,omitempty" json:"round,omitempty"`
	TeamA     string `bson:"team_a" json:"team_a"`
	TeamB     string `bson:"team_b" json:"team_b"`
	Winner    string `bson:"winner" json:"winner"`
	AltWinner string `bson:"alt_winner,omitempty" json:"alt_winner,omitempty"`
}
