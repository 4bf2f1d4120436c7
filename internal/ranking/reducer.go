package ranking

import (
	"campus-quiz/internal/domain"
)

// GroupKeyFunc derives the grouping key for an attempt, e.g. the user ID
// alone (one track's leaderboard) or user ID plus track (per-track bests
// feeding the global rating).
type GroupKeyFunc func(domain.Attempt) string

// ByUser groups attempts by submitting user.
func ByUser(a domain.Attempt) string {
	return a.UserID
}

// ByUserAndTrack groups attempts by (user, track). The NUL separator keeps
// distinct pairs from colliding.
func ByUserAndTrack(a domain.Attempt) string {
	return a.UserID + "\x00" + a.Track
}

// ByTrack groups attempts by track.
func ByTrack(a domain.Attempt) string {
	return a.Track
}

// BestPerGroup collapses a multiset of attempts into the single best attempt
// per group key under the ordering in Less. The same input multiset yields
// the same winners regardless of iteration order, except on full ties where
// the first occurrence in input order wins.
func BestPerGroup(attempts []domain.Attempt, key GroupKeyFunc) map[string]domain.Attempt {
	best := make(map[string]domain.Attempt, len(attempts))
	for _, a := range attempts {
		k := key(a)
		cur, ok := best[k]
		if !ok || Less(a, cur) {
			best[k] = a
		}
	}
	return best
}
