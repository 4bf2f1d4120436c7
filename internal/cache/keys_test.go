package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	assert.Equal(t, "campusquiz:quiz:leaderboard:javascript",
		GenerateCacheKey("quiz", "leaderboard", "javascript"))

	assert.Equal(t, "campusquiz:quiz:history:u1:javascript_20",
		GenerateCacheKey("quiz", "history", "u1", "javascript", "20"))
}

func TestWellKnownKeys(t *testing.T) {
	assert.Equal(t, "campusquiz:quiz:leaderboard:python", LeaderboardKey("python"))
	assert.Equal(t, "campusquiz:quiz:global_ranking:all", GlobalRankingKey())
}
