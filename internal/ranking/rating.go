package ranking

import (
	"math"
	"sort"

	"campus-quiz/internal/domain"
)

// Config carries the speed-bonus tuning constants. The defaults reproduce
// the production formula: up to 5 bonus points per track, decaying by one
// point per 40 seconds taken (so a track finished in 200s or more earns
// nothing). The values are tuning history, not derived; changing them
// changes every published rating.
type Config struct {
	SpeedBonusMax     float64
	SpeedBonusDivisor float64
}

// DefaultConfig returns the production speed-bonus constants.
func DefaultConfig() Config {
	return Config{
		SpeedBonusMax:     5,
		SpeedBonusDivisor: 40,
	}
}

// UserRating is a user's composite standing across every track they have
// played, built from their best attempt per track.
type UserRating struct {
	UserID      string
	Name        string
	Avatar      string
	QuizzesDone int
	AccuracySum float64 // sum of (score/total)*100 over tracks
	SpeedBonus  float64 // sum of per-track speed bonuses
	Rating      float64 // AccuracySum + SpeedBonus, rounded to 1 decimal
	TotalTime   float64 // sum of measured times, seconds
}

// BuildGlobalRanking computes composite ratings for every user with at least
// one attempt and returns them ordered by rating descending, total time
// ascending. Rounding to one decimal happens only on the final Rating field;
// intermediate sums and the sort itself use the unrounded value so rounding
// error never compounds across tracks or reorders near-ties.
func BuildGlobalRanking(attempts []domain.Attempt, users map[string]domain.PublicProfile, cfg Config) []UserRating {
	bests := BestPerGroup(attempts, ByUserAndTrack)

	perUser := make(map[string][]domain.Attempt)
	for _, a := range bests {
		perUser[a.UserID] = append(perUser[a.UserID], a)
	}

	userIDs := make([]string, 0, len(perUser))
	for id := range perUser {
		userIDs = append(userIDs, id)
	}
	sort.Strings(userIDs)

	type scored struct {
		UserRating
		exact float64 // unrounded rating, used for ordering
	}

	rows := make([]scored, 0, len(userIDs))
	for _, id := range userIDs {
		r := scored{UserRating: UserRating{UserID: id}}
		for _, a := range perUser[id] {
			r.QuizzesDone++
			r.AccuracySum += float64(a.Score) / float64(a.Total) * 100
			if a.TimeTaken != nil {
				r.TotalTime += *a.TimeTaken
				if *a.TimeTaken > 0 {
					r.SpeedBonus += math.Max(0, cfg.SpeedBonusMax-*a.TimeTaken/cfg.SpeedBonusDivisor)
				}
			}
		}
		r.exact = r.AccuracySum + r.SpeedBonus
		r.Rating = roundTo1(r.exact)
		if p, ok := users[id]; ok {
			r.Name = p.Name
			r.Avatar = p.Avatar
		} else {
			r.Name = PlaceholderName
		}
		rows = append(rows, r)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].exact != rows[j].exact {
			return rows[i].exact > rows[j].exact
		}
		return rows[i].TotalTime < rows[j].TotalTime
	})

	ranking := make([]UserRating, len(rows))
	for i, r := range rows {
		ranking[i] = r.UserRating
	}
	return ranking
}

func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
