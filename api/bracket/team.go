/* team.go
 * Contains the Team type used for participants and winners. A Team is either a known team name or undetermined,
 * which is how the data model represents a game that has not been played or a pairing that is not yet set
 */

package bracket

import "strings"

// Team identifies one participant of a matchup. The zero value is an undetermined team.
type Team struct {
	name string
}

// undeterminedForms are the raw values that older entry sheets used to mean "not known yet"
var undeterminedForms = map[string]bool{
	"":     true,
	"x":    true,
	"nan":  true,
	"none": true,
	"null": true,
	"tbd":  true,
}

// NewTeam returns a known team with the given name. Use ParseTeam for raw intake values.
func NewTeam(name string) Team {
	return Team{name: strings.TrimSpace(name)}
}

// ParseTeam converts a raw intake value into a Team.
// Preconditions: Receives the raw string as it was stored or entered
// Postconditions: Returns an undetermined Team for any of the placeholder forms, otherwise a known Team
func ParseTeam(raw string) Team {
	trimmed := strings.TrimSpace(raw)
	if undeterminedForms[strings.ToLower(trimmed)] {
		return Team{}
	}
	return Team{name: trimmed}
}

// Known reports whether the team has been determined
func (t Team) Known() bool {
	return t.name != ""
}

// Name returns the team name, or an empty string when undetermined
func (t Team) Name() string {
	return t.name
}

// Is reports whether both teams are known and name the same team
func (t Team) Is(other Team) bool {
	return t.Known() && other.Known() && t.name == other.name
}

func (t Team) String() string {
	if !t.Known() {
		return "TBD"
	}
	return t.name
}
