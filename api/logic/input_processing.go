/* input_processing.go
 * Contains the logic for resolving free text team names from entries against the playoff field
 */

package logic

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"playoff-bracket/api/bracket"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// seedSuffix matches the seed the entry form appends to a team, e.g. "Kansas City Chiefs (1)"
var seedSuffix = regexp.MustCompile(`\s*\(\d+\)\s*$`)

// CheckTeamNames processes team names from an entry and checks them against the playoff field.
// Preconditions: receives two string slices; one containing the entry's team names and another that is the field
// Postconditions: returns two string slices, a slice of correctly formatted team names and a slice of the names that
// could not be matched
func CheckTeamNames(entryTeams []string, validTeams []string) ([]string, []string) {
	var formattedTeamNames []string
	var invalidTeams []string

	for _, team := range entryTeams {
		name, ok := matchTeamName(team, validTeams)
		if !ok {
			invalidTeams = append(invalidTeams, team)
			continue
		}
		formattedTeamNames = append(formattedTeamNames, name)
	}
	return formattedTeamNames, invalidTeams
}

// ResolveTeam converts a raw team value into a Team, matching it against the field when one is configured.
// Placeholder values resolve to an undetermined team and are never an error.
// Postconditions: Returns the Team, or an error if a known name does not match any team in the field
func ResolveTeam(raw string, field []string) (bracket.Team, error) {
	team := bracket.ParseTeam(seedSuffix.ReplaceAllString(raw, ""))
	if !team.Known() || len(field) == 0 {
		return team, nil
	}
	name, ok := matchTeamName(team.Name(), field)
	if !ok {
		return bracket.Team{}, fmt.Errorf("'%s' is not a team in the playoff field", raw)
	}
	return bracket.NewTeam(name), nil
}

// matchTeamName returns the field name that best matches the input
func matchTeamName(input string, field []string) (string, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(seedSuffix.ReplaceAllString(input, "")))
	if cleaned == "" {
		return "", false
	}

	lookup := make(map[string]string, len(field))
	var fieldLower []string
	for _, name := range field {
		lower := strings.ToLower(name)
		lookup[lower] = name
		fieldLower = append(fieldLower, lower)
	}

	if name, ok := lookup[cleaned]; ok {
		return name, true
	}

	// Input abbreviates a field name, e.g. "pats" for "new england patriots"
	ranks := fuzzy.RankFind(cleaned, fieldLower)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return lookup[ranks[0].Target], true
	}

	// Input is longer than the field name, e.g. "kansas city chiefs" for "chiefs"
	var contained []string
	for _, lower := range fieldLower {
		if containsWord(cleaned, lower) {
			contained = append(contained, lower)
		}
	}
	if len(contained) == 1 {
		return lookup[contained[0]], true
	}
	return "", false
}

// containsWord reports whether phrase appears in s on word boundaries
func containsWord(s, phrase string) bool {
	words := strings.Fields(s)
	target := strings.Fields(phrase)
	if len(target) == 0 {
		return false
	}
	for i := 0; i+len(target) <= len(words); i++ {
		match := true
		for j := range target {
			if words[i+j] != target[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
