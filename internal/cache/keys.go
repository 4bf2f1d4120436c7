package cache

import "strings"

const (
	GlobalKeyPrefix = "campusquiz"

	// Object types used by the scoring service.
	ObjectLeaderboard   = "leaderboard"
	ObjectGlobalRanking = "global_ranking"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// LeaderboardKey is the cache key for one track's leaderboard.
func LeaderboardKey(track string) string {
	return GenerateCacheKey("quiz", ObjectLeaderboard, track)
}

// GlobalRankingKey is the cache key for the full global ranking snapshot.
func GlobalRankingKey() string {
	return GenerateCacheKey("quiz", ObjectGlobalRanking, "all")
}
