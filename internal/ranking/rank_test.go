package ranking

import (
	"testing"
	"time"

	"campus-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankOf_FindsUserPosition(t *testing.T) {
	attempts := []domain.Attempt{
		attempt("u1", "javascript", 10, 10, secs(40), 0),
		attempt("u2", "javascript", 6, 10, secs(40), time.Minute),
		attempt("u3", "javascript", 8, 10, secs(40), 2*time.Minute),
	}
	ranking := BuildGlobalRanking(attempts, nil, DefaultConfig())

	result := RankOf("u3", ranking, 10)

	require.NotNil(t, result.Rank)
	assert.Equal(t, 2, *result.Rank)
	assert.Equal(t, 3, result.Total)
	require.NotNil(t, result.Stats)
	assert.Equal(t, "u3", result.Stats.UserID)
}

func TestRankOf_UserWithNoAttempts(t *testing.T) {
	attempts := []domain.Attempt{
		attempt("u1", "javascript", 10, 10, secs(40), 0),
		attempt("u2", "javascript", 6, 10, secs(40), time.Minute),
	}
	ranking := BuildGlobalRanking(attempts, nil, DefaultConfig())

	result := RankOf("ghost", ranking, 10)

	assert.Nil(t, result.Rank)
	assert.Nil(t, result.Stats)
	assert.Equal(t, 2, result.Total)
	assert.Len(t, result.Top, 2)
}

func TestRankOf_TopSliceCarriesOneBasedRanks(t *testing.T) {
	var attempts []domain.Attempt
	for i := 0; i < 12; i++ {
		userID := string(rune('a' + i))
		attempts = append(attempts, attempt(userID, "web", 10-i%10, 10, secs(60), time.Duration(i)*time.Minute))
	}
	ranking := BuildGlobalRanking(attempts, nil, DefaultConfig())

	result := RankOf("a", ranking, 10)

	require.Len(t, result.Top, 10)
	for i, row := range result.Top {
		assert.Equal(t, i+1, row.Rank)
	}
}

func TestRankOf_EmptyRanking(t *testing.T) {
	result := RankOf("u1", nil, 10)

	assert.Nil(t, result.Rank)
	assert.Nil(t, result.Stats)
	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Top)
}
