package ranking

import (
	"sort"
	"time"

	"campus-quiz/internal/domain"
)

// TrackBest summarizes one user's standing on one track: their best attempt
// plus how many times they played and when they last played.
type TrackBest struct {
	Track      string
	Score      int
	Total      int
	TimeTaken  *float64
	Attempts   int
	LastPlayed time.Time
}

// BestPerTrack reduces a single user's attempt history into one TrackBest per
// track, ordered by most recently played. The caller is expected to pass only
// that user's attempts.
func BestPerTrack(attempts []domain.Attempt) []TrackBest {
	bests := BestPerGroup(attempts, ByTrack)

	counts := make(map[string]int, len(bests))
	lastPlayed := make(map[string]time.Time, len(bests))
	for _, a := range attempts {
		counts[a.Track]++
		if a.CreatedAt.After(lastPlayed[a.Track]) {
			lastPlayed[a.Track] = a.CreatedAt
		}
	}

	rows := make([]TrackBest, 0, len(bests))
	for track, best := range bests {
		rows = append(rows, TrackBest{
			Track:      track,
			Score:      best.Score,
			Total:      best.Total,
			TimeTaken:  best.TimeTaken,
			Attempts:   counts[track],
			LastPlayed: lastPlayed[track],
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].LastPlayed.Equal(rows[j].LastPlayed) {
			return rows[i].LastPlayed.After(rows[j].LastPlayed)
		}
		return rows[i].Track < rows[j].Track
	})
	return rows
}
