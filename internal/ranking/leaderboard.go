package ranking

import (
	"sort"

	"campus-quiz/internal/domain"
)

// PlaceholderName is shown for winners whose profile could not be resolved
// from the user directory. A missing name never fails the leaderboard.
const PlaceholderName = "Anonymous"

// LeaderboardEntry is one row of a per-track leaderboard: a user's best
// attempt for the track annotated with display data.
type LeaderboardEntry struct {
	UserID    string
	Name      string
	Avatar    string
	Score     int
	Total     int
	TimeTaken *float64
}

// BuildLeaderboard ranks all users' best attempts for one track and returns
// the first topN rows joined with display profiles. A track with no attempts
// yields an empty (non-nil) slice.
func BuildLeaderboard(track string, attempts []domain.Attempt, users map[string]domain.PublicProfile, topN int) []LeaderboardEntry {
	track = domain.NormalizeTrack(track)

	var scoped []domain.Attempt
	for _, a := range attempts {
		if a.Track == track {
			scoped = append(scoped, a)
		}
	}

	winners := sortedWinners(BestPerGroup(scoped, ByUser))
	if topN > 0 && len(winners) > topN {
		winners = winners[:topN]
	}

	entries := make([]LeaderboardEntry, 0, len(winners))
	for _, w := range winners {
		name, avatar := PlaceholderName, ""
		if p, ok := users[w.UserID]; ok {
			if p.Name != "" {
				name = p.Name
			}
			avatar = p.Avatar
		}
		entries = append(entries, LeaderboardEntry{
			UserID:    w.UserID,
			Name:      name,
			Avatar:    avatar,
			Score:     w.Score,
			Total:     w.Total,
			TimeTaken: w.TimeTaken,
		})
	}
	return entries
}

// sortedWinners flattens a reduction result into a deterministically ordered
// slice: group keys first (so map iteration order never leaks into output),
// then the best-attempt ordering.
func sortedWinners(best map[string]domain.Attempt) []domain.Attempt {
	keys := make([]string, 0, len(best))
	for k := range best {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	winners := make([]domain.Attempt, 0, len(keys))
	for _, k := range keys {
		winners = append(winners, best[k])
	}
	sort.SliceStable(winners, func(i, j int) bool {
		return Less(winners[i], winners[j])
	})
	return winners
}
