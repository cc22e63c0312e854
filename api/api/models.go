/* models.go
 * This file contain the structs that are used by api consumers
 */

package api

import (
	"playoff-bracket/api/bracket"
	"playoff-bracket/api/logic"
)

// Contest is the outcome of a scoring pass
type Contest struct {
	Actual  *bracket.Bracket
	Entries []*bracket.Bracket
	// FinalTotal is the real Super Bowl total, or -1 when it is not known yet
	FinalTotal int
	Standings  []logic.Standing
}
