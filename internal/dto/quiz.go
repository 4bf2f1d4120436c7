package dto

import (
	"time"

	"campus-quiz/internal/domain"
	"campus-quiz/internal/ranking"
)

// SubmitScoreRequest is the body of POST /api/quiz/score.
type SubmitScoreRequest struct {
	Track     string   `json:"track" validate:"required"`
	Score     int      `json:"score"`
	Total     int      `json:"total" validate:"required"`
	TimeTaken *float64 `json:"time_taken,omitempty"` // seconds; omitted for untimed attempts
}

// AttemptResponse represents one recorded quiz attempt.
type AttemptResponse struct {
	ID        string    `json:"id"`
	Track     string    `json:"track"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	TimeTaken *float64  `json:"time_taken,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAttemptResponse converts a domain attempt to its API shape.
func NewAttemptResponse(a *domain.Attempt) AttemptResponse {
	return AttemptResponse{
		ID:        a.ID,
		Track:     a.Track,
		Score:     a.Score,
		Total:     a.Total,
		TimeTaken: a.TimeTaken,
		CreatedAt: a.CreatedAt,
	}
}

// SubmitScoreResponse is the body returned by POST /api/quiz/score.
type SubmitScoreResponse struct {
	Attempt AttemptResponse `json:"attempt"`
	Best    AttemptResponse `json:"best"`
}

// TrackBestResponse is one entry of GET /api/quiz/scores.
type TrackBestResponse struct {
	Track      string    `json:"track"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	TimeTaken  *float64  `json:"time_taken,omitempty"`
	Attempts   int       `json:"attempts"`
	LastPlayed time.Time `json:"last_played"`
}

// NewTrackBestResponses converts the per-track bests to their API shape.
func NewTrackBestResponses(bests []ranking.TrackBest) []TrackBestResponse {
	out := make([]TrackBestResponse, 0, len(bests))
	for _, b := range bests {
		out = append(out, TrackBestResponse{
			Track:      b.Track,
			Score:      b.Score,
			Total:      b.Total,
			TimeTaken:  b.TimeTaken,
			Attempts:   b.Attempts,
			LastPlayed: b.LastPlayed,
		})
	}
	return out
}

// HistoryResponse is the body of GET /api/quiz/history/:track.
type HistoryResponse struct {
	Track    string            `json:"track"`
	Attempts []AttemptResponse `json:"attempts"`
}

// LeaderboardEntryResponse is one row of a track leaderboard.
type LeaderboardEntryResponse struct {
	Name      string   `json:"name"`
	Avatar    string   `json:"avatar,omitempty"`
	Score     int      `json:"score"`
	Total     int      `json:"total"`
	TimeTaken *float64 `json:"time_taken,omitempty"`
}

// LeaderboardResponse is the body of GET /api/quiz/leaderboard/:track.
type LeaderboardResponse struct {
	Track   string                     `json:"track"`
	Entries []LeaderboardEntryResponse `json:"entries"`
}

// NewLeaderboardResponse converts ranking entries to their API shape.
func NewLeaderboardResponse(track string, entries []ranking.LeaderboardEntry) LeaderboardResponse {
	out := make([]LeaderboardEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, LeaderboardEntryResponse{
			Name:      e.Name,
			Avatar:    e.Avatar,
			Score:     e.Score,
			Total:     e.Total,
			TimeTaken: e.TimeTaken,
		})
	}
	return LeaderboardResponse{Track: track, Entries: out}
}

// GlobalRankStatsResponse summarizes one user's aggregate rating.
type GlobalRankStatsResponse struct {
	Name        string  `json:"name"`
	Avatar      string  `json:"avatar,omitempty"`
	QuizzesDone int     `json:"quizzes_done"`
	AccuracySum float64 `json:"accuracy_sum"`
	SpeedBonus  float64 `json:"speed_bonus"`
	Rating      float64 `json:"rating"`
	TotalTime   float64 `json:"total_time"`
}

// RankedUserResponse is one row of the global top list.
type RankedUserResponse struct {
	Rank   int     `json:"rank"`
	Name   string  `json:"name"`
	Avatar string  `json:"avatar,omitempty"`
	Rating float64 `json:"rating"`
}

// GlobalRankResponse is the body of GET /api/quiz/global-rank.
// Rank and Stats are null for users with no attempts yet.
type GlobalRankResponse struct {
	Rank  *int                     `json:"rank"`
	Total int                      `json:"total"`
	Stats *GlobalRankStatsResponse `json:"stats"`
	Top   []RankedUserResponse     `json:"top10"`
}

// NewGlobalRankResponse converts a rank lookup result to its API shape.
func NewGlobalRankResponse(r ranking.RankResult) GlobalRankResponse {
	resp := GlobalRankResponse{
		Rank:  r.Rank,
		Total: r.Total,
		Top:   make([]RankedUserResponse, 0, len(r.Top)),
	}
	if r.Stats != nil {
		resp.Stats = &GlobalRankStatsResponse{
			Name:        r.Stats.Name,
			Avatar:      r.Stats.Avatar,
			QuizzesDone: r.Stats.QuizzesDone,
			AccuracySum: r.Stats.AccuracySum,
			SpeedBonus:  r.Stats.SpeedBonus,
			Rating:      r.Stats.Rating,
			TotalTime:   r.Stats.TotalTime,
		}
	}
	for _, u := range r.Top {
		resp.Top = append(resp.Top, RankedUserResponse{
			Rank:   u.Rank,
			Name:   u.Name,
			Avatar: u.Avatar,
			Rating: u.Rating,
		})
	}
	return resp
}

// QuestionResponse is one question of GET /api/quiz/questions/:track.
// The answer index is part of the response: the client checks selections
// locally and submits the resulting score via POST /quiz/score.
type QuestionResponse struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
	Order    int      `json:"order"`
}

// QuestionsResponse is the body of GET /api/quiz/questions/:track.
type QuestionsResponse struct {
	Track     string             `json:"track"`
	Questions []QuestionResponse `json:"questions"`
}

// NewQuestionsResponse converts a track's questions to their API shape.
func NewQuestionsResponse(track string, questions []domain.QuizQuestion) QuestionsResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, QuestionResponse{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.Options,
			Answer:   q.Answer,
			Order:    q.Order,
		})
	}
	return QuestionsResponse{Track: track, Questions: out}
}
