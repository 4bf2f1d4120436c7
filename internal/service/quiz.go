package service

import (
	"context"
	"encoding/json"

	"campus-quiz/internal/cache"
	"campus-quiz/internal/config"
	"campus-quiz/internal/domain"
	"campus-quiz/internal/dto"
	"campus-quiz/internal/logger"
	"campus-quiz/internal/ranking"
	"campus-quiz/internal/util"

	"go.uber.org/zap"
)

// QuizService defines the interface for scoring and ranking operations
type QuizService interface {
	RecordAttempt(ctx context.Context, userID string, req *dto.SubmitScoreRequest) (*dto.SubmitScoreResponse, error)
	GetBestScores(ctx context.Context, userID string) ([]dto.TrackBestResponse, error)
	GetHistory(ctx context.Context, userID, track string, limit int) (*dto.HistoryResponse, error)
	GetLeaderboard(ctx context.Context, track string) (*dto.LeaderboardResponse, error)
	GetGlobalRank(ctx context.Context, userID string) (*dto.GlobalRankResponse, error)
	GetQuestions(ctx context.Context, track string) (*dto.QuestionsResponse, error)
}

// quizService implements QuizService
type quizService struct {
	attempts  domain.AttemptRepository
	questions domain.QuestionRepository
	users     domain.UserRepository
	cache     domain.Cache
	cfg       *config.Config
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	attempts domain.AttemptRepository,
	questions domain.QuestionRepository,
	users domain.UserRepository,
	cacheAdapter domain.Cache,
	cfg *config.Config,
) QuizService {
	return &quizService{
		attempts:  attempts,
		questions: questions,
		users:     users,
		cache:     cacheAdapter,
		cfg:       cfg,
	}
}

func (s *quizService) ratingConfig() ranking.Config {
	cfg := ranking.Config{
		SpeedBonusMax:     s.cfg.Quiz.SpeedBonusMax,
		SpeedBonusDivisor: s.cfg.Quiz.SpeedBonusDivisor,
	}
	if cfg.SpeedBonusDivisor == 0 {
		cfg = ranking.DefaultConfig()
	}
	return cfg
}

// RecordAttempt appends a new attempt and returns it together with the user's
// best attempt for that track after the write.
func (s *quizService) RecordAttempt(ctx context.Context, userID string, req *dto.SubmitScoreRequest) (*dto.SubmitScoreResponse, error) {
	attempt := domain.NewAttempt(userID, req.Track, req.Score, req.Total, req.TimeTaken)
	attempt.ID = util.NewULID()
	if err := attempt.Validate(); err != nil {
		return nil, err
	}

	if err := s.attempts.CreateAttempt(ctx, attempt); err != nil {
		return nil, domain.NewInternalError("failed to record attempt", err)
	}

	history, err := s.attempts.GetAttemptsByUserAndTrack(ctx, userID, attempt.Track, 0)
	if err != nil {
		return nil, domain.NewInternalError("failed to load attempt history", err)
	}
	best := *attempt
	if winner, ok := ranking.BestPerGroup(history, ranking.ByUser)[userID]; ok {
		best = winner
	}

	s.invalidateRankings(ctx, attempt.Track)

	return &dto.SubmitScoreResponse{
		Attempt: dto.NewAttemptResponse(attempt),
		Best:    dto.NewAttemptResponse(&best),
	}, nil
}

// invalidateRankings drops the cached leaderboard for the written track and
// the global ranking snapshot. Cache errors are logged, never surfaced; the
// TTL bounds staleness either way.
func (s *quizService) invalidateRankings(ctx context.Context, track string) {
	log := logger.Get()
	if err := s.cache.Delete(ctx, cache.LeaderboardKey(track)); err != nil {
		log.Warn("Failed to invalidate leaderboard cache", zap.String("track", track), zap.Error(err))
	}
	if err := s.cache.Delete(ctx, cache.GlobalRankingKey()); err != nil {
		log.Warn("Failed to invalidate global ranking cache", zap.Error(err))
	}
}

// GetBestScores returns the caller's best attempt per track.
func (s *quizService) GetBestScores(ctx context.Context, userID string) ([]dto.TrackBestResponse, error) {
	attempts, err := s.attempts.GetAttemptsByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("failed to load attempts", err)
	}
	return dto.NewTrackBestResponses(ranking.BestPerTrack(attempts)), nil
}

// GetHistory returns the caller's recent attempts on one track, newest first.
func (s *quizService) GetHistory(ctx context.Context, userID, track string, limit int) (*dto.HistoryResponse, error) {
	if limit <= 0 {
		limit = s.cfg.Quiz.HistoryLimit
	}
	attempts, err := s.attempts.GetAttemptsByUserAndTrack(ctx, userID, track, limit)
	if err != nil {
		return nil, domain.NewInternalError("failed to load attempt history", err)
	}

	resp := &dto.HistoryResponse{Track: track, Attempts: make([]dto.AttemptResponse, 0, len(attempts))}
	for i := range attempts {
		resp.Attempts = append(resp.Attempts, dto.NewAttemptResponse(&attempts[i]))
	}
	return resp, nil
}

// GetLeaderboard returns the track's top list, serving the cached snapshot
// when one exists.
func (s *quizService) GetLeaderboard(ctx context.Context, track string) (*dto.LeaderboardResponse, error) {
	log := logger.Get()
	key := cache.LeaderboardKey(track)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var entries []ranking.LeaderboardEntry
		if err := json.Unmarshal([]byte(cached), &entries); err == nil {
			resp := dto.NewLeaderboardResponse(track, entries)
			return &resp, nil
		}
		log.Warn("Failed to unmarshal cached leaderboard", zap.String("key", key))
	} else if err != domain.ErrCacheMiss {
		log.Warn("Leaderboard cache read failed", zap.String("key", key), zap.Error(err))
	}

	attempts, err := s.attempts.GetAttemptsByTrack(ctx, track)
	if err != nil {
		return nil, domain.NewInternalError("failed to load track attempts", err)
	}
	entries := ranking.BuildLeaderboard(track, attempts, s.resolveProfiles(ctx, attempts), s.cfg.Quiz.LeaderboardSize)

	if payload, err := json.Marshal(entries); err == nil {
		if err := s.cache.Set(ctx, key, string(payload), s.cfg.Quiz.RankingCacheTTL); err != nil {
			log.Warn("Leaderboard cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	resp := dto.NewLeaderboardResponse(track, entries)
	return &resp, nil
}

// GetGlobalRank returns the caller's position in the global rating together
// with the top list.
func (s *quizService) GetGlobalRank(ctx context.Context, userID string) (*dto.GlobalRankResponse, error) {
	rankingSnapshot, err := s.globalRanking(ctx)
	if err != nil {
		return nil, err
	}
	resp := dto.NewGlobalRankResponse(ranking.RankOf(userID, rankingSnapshot, s.cfg.Quiz.LeaderboardSize))
	return &resp, nil
}

func (s *quizService) globalRanking(ctx context.Context) ([]ranking.UserRating, error) {
	log := logger.Get()
	key := cache.GlobalRankingKey()

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var snapshot []ranking.UserRating
		if err := json.Unmarshal([]byte(cached), &snapshot); err == nil {
			return snapshot, nil
		}
		log.Warn("Failed to unmarshal cached global ranking", zap.String("key", key))
	} else if err != domain.ErrCacheMiss {
		log.Warn("Global ranking cache read failed", zap.String("key", key), zap.Error(err))
	}

	attempts, err := s.attempts.GetAllAttempts(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to load attempts", err)
	}
	snapshot := ranking.BuildGlobalRanking(attempts, s.resolveProfiles(ctx, attempts), s.ratingConfig())

	if payload, err := json.Marshal(snapshot); err == nil {
		if err := s.cache.Set(ctx, key, string(payload), s.cfg.Quiz.RankingCacheTTL); err != nil {
			log.Warn("Global ranking cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return snapshot, nil
}

// resolveProfiles looks up display data for every user appearing in attempts.
// Directory failures degrade to placeholder display data instead of failing
// the read.
func (s *quizService) resolveProfiles(ctx context.Context, attempts []domain.Attempt) map[string]domain.PublicProfile {
	seen := make(map[string]struct{}, len(attempts))
	ids := make([]string, 0, len(attempts))
	for _, a := range attempts {
		if _, ok := seen[a.UserID]; ok {
			continue
		}
		seen[a.UserID] = struct{}{}
		ids = append(ids, a.UserID)
	}
	if len(ids) == 0 {
		return nil
	}

	profiles, err := s.users.GetProfilesByIDs(ctx, ids)
	if err != nil {
		logger.Get().Warn("Failed to resolve user profiles, using placeholders", zap.Int("users", len(ids)), zap.Error(err))
		return nil
	}
	return profiles
}

// GetQuestions returns the track's question bank. An unknown track is a
// NotFound error, unlike the ranking reads which treat it as empty.
func (s *quizService) GetQuestions(ctx context.Context, track string) (*dto.QuestionsResponse, error) {
	questions, err := s.questions.GetQuestionsByTrack(ctx, track)
	if err != nil {
		return nil, domain.NewInternalError("failed to load questions", err)
	}
	if len(questions) == 0 {
		return nil, domain.NewNotFoundError("no questions for track: " + track)
	}
	resp := dto.NewQuestionsResponse(track, questions)
	return &resp, nil
}
