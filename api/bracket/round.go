/* round.go
 * Contains the RoundKind enum which decides which scoring rules apply to a slot
 */

package bracket

import (
	"fmt"
	"strings"
)

// RoundKind is the playoff stage a slot belongs to
type RoundKind int

const (
	WildCard RoundKind = iota
	Divisional
	Conference
	Final
)

func (k RoundKind) String() string {
	switch k {
	case WildCard:
		return "WildCard"
	case Divisional:
		return "Divisional"
	case Conference:
		return "Conference"
	case Final:
		return "Super Bowl"
	default:
		return fmt.Sprintf("RoundKind(%d)", int(k))
	}
}

// ParseRoundKind converts the stored name of a round back into a RoundKind.
// Both "Final" and "Super Bowl" are accepted for the last round.
func ParseRoundKind(s string) (RoundKind, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "")) {
	case "wildcard":
		return WildCard, nil
	case "divisional":
		return Divisional, nil
	case "conference":
		return Conference, nil
	case "final", "superbowl":
		return Final, nil
	}
	return 0, fmt.Errorf("unknown round kind: %q", s)
}
