/* standings_test.go
 * Contains unit tests for standings.go
 */

package logic

import (
	"testing"

	"playoff-bracket/api/bracket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredBracket(t *testing.T, owner string, tiebreaker int, points int) *bracket.Bracket {
	t.Helper()
	b, err := bracket.NewBracket(owner, tiebreaker, nil)
	require.NoError(t, err)
	b.AddPoints(points)
	return b
}

func TestSortStandings_ByScore(t *testing.T) {
	entries := []*bracket.Bracket{
		scoredBracket(t, "Ashley", 52, 4),
		scoredBracket(t, "Nathan", 37, 10),
		scoredBracket(t, "Jo", 37, 9),
	}

	standings := SortStandings(entries, -1)
	require.Len(t, standings, 3)
	assert.Equal(t, "Nathan", standings[0].Owner)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, "Jo", standings[1].Owner)
	assert.Equal(t, "Ashley", standings[2].Owner)
	assert.Equal(t, 52, standings[2].Tiebreaker)
	assert.Equal(t, -1, standings[2].TiebreakerDiff)
}

func TestSortStandings_TiesShareRankWithoutFinalTotal(t *testing.T) {
	entries := []*bracket.Bracket{
		scoredBracket(t, "Klay", 59, 9),
		scoredBracket(t, "Lisa", 52, 9),
		scoredBracket(t, "Vishu", 41, 3),
	}

	standings := SortStandings(entries, -1)
	assert.Equal(t, "Klay", standings[0].Owner)
	assert.Equal(t, "Lisa", standings[1].Owner)
	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, 1, standings[1].Rank)
	assert.Equal(t, 3, standings[2].Rank)
}

func TestSortStandings_TiebreakerDistance(t *testing.T) {
	entries := []*bracket.Bracket{
		scoredBracket(t, "Klay", 59, 9),
		scoredBracket(t, "Lisa", 52, 9),
		scoredBracket(t, "Cannon", 30, 9),
	}

	// The final total was 74
	standings := SortStandings(entries, 74)
	assert.Equal(t, []string{"Klay", "Lisa", "Cannon"}, []string{standings[0].Owner, standings[1].Owner, standings[2].Owner})
	assert.Equal(t, 15, standings[0].TiebreakerDiff)
	assert.Equal(t, []int{1, 2, 3}, []int{standings[0].Rank, standings[1].Rank, standings[2].Rank})
}

func TestSortBrackets_DuplicateOwners(t *testing.T) {
	first := scoredBracket(t, "Jo", 37, 2)
	second := scoredBracket(t, "Jo", 45, 5)

	sorted := SortBrackets([]*bracket.Bracket{first, second}, -1)
	require.Len(t, sorted, 2)
	assert.Same(t, second, sorted[0])
	assert.Same(t, first, sorted[1])
}
