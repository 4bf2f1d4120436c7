package repository

import (
	"context"
	"fmt"
	"time"

	"campus-quiz/internal/domain"
	"campus-quiz/internal/repository/models"
	"campus-quiz/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxQuizAttemptRepository implements domain.AttemptRepository using sqlx.
// The attempt log is append-only; there is no update or delete path.
type sqlxQuizAttemptRepository struct {
	db *sqlx.DB
}

// NewSQLXQuizAttemptRepository creates a new instance of sqlxQuizAttemptRepository.
func NewSQLXQuizAttemptRepository(db *sqlx.DB) domain.AttemptRepository {
	return &sqlxQuizAttemptRepository{db: db}
}

func toDomainAttempt(m *models.QuizAttempt) *domain.Attempt {
	if m == nil {
		return nil
	}
	return &domain.Attempt{
		ID:        m.ID,
		UserID:    m.UserID,
		Track:     m.Track,
		Score:     m.Score,
		Total:     m.Total,
		TimeTaken: util.NullFloat64ToPtr(m.TimeTaken),
		CreatedAt: m.CreatedAt,
	}
}

func fromDomainAttempt(a *domain.Attempt) *models.QuizAttempt {
	if a == nil {
		return nil
	}
	return &models.QuizAttempt{
		ID:        a.ID,
		UserID:    a.UserID,
		Track:     a.Track,
		Score:     a.Score,
		Total:     a.Total,
		TimeTaken: util.FloatPtrToNullFloat64(a.TimeTaken),
		CreatedAt: a.CreatedAt,
	}
}

// CreateAttempt inserts a new quiz attempt into the database.
func (r *sqlxQuizAttemptRepository) CreateAttempt(ctx context.Context, attempt *domain.Attempt) error {
	m := fromDomainAttempt(attempt)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	query := `INSERT INTO quiz_attempts (ID, USER_ID, TRACK, SCORE, TOTAL, TIME_TAKEN, CREATED_AT)
	          VALUES (:1, :2, :3, :4, :5, :6, :7)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.UserID,
		m.Track,
		m.Score,
		m.Total,
		m.TimeTaken,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create quiz attempt: %w", err)
	}
	return nil
}

const attemptColumns = "ID, USER_ID, TRACK, SCORE, TOTAL, TIME_TAKEN, CREATED_AT"

func (r *sqlxQuizAttemptRepository) selectAttempts(ctx context.Context, query string, args ...interface{}) ([]domain.Attempt, error) {
	var rows []models.QuizAttempt
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select quiz attempts: %w", err)
	}

	attempts := make([]domain.Attempt, 0, len(rows))
	for i := range rows {
		attempts = append(attempts, *toDomainAttempt(&rows[i]))
	}
	return attempts, nil
}

// GetAttemptsByUser retrieves every attempt a user has ever made.
func (r *sqlxQuizAttemptRepository) GetAttemptsByUser(ctx context.Context, userID string) ([]domain.Attempt, error) {
	query := fmt.Sprintf(`SELECT %s FROM quiz_attempts WHERE USER_ID = :1`, attemptColumns)
	return r.selectAttempts(ctx, query, userID)
}

// GetAttemptsByUserAndTrack retrieves a user's attempts on one track, newest
// first. limit <= 0 means no limit.
func (r *sqlxQuizAttemptRepository) GetAttemptsByUserAndTrack(ctx context.Context, userID, track string, limit int) ([]domain.Attempt, error) {
	if limit > 0 {
		query := fmt.Sprintf(`SELECT %s FROM quiz_attempts WHERE USER_ID = :1 AND TRACK = :2 ORDER BY CREATED_AT DESC FETCH FIRST %d ROWS ONLY`, attemptColumns, limit)
		return r.selectAttempts(ctx, query, userID, track)
	}
	query := fmt.Sprintf(`SELECT %s FROM quiz_attempts WHERE USER_ID = :1 AND TRACK = :2 ORDER BY CREATED_AT DESC`, attemptColumns)
	return r.selectAttempts(ctx, query, userID, track)
}

// GetAttemptsByTrack retrieves every attempt on one track across all users.
// Result order is incidental; ranking imposes its own ordering.
func (r *sqlxQuizAttemptRepository) GetAttemptsByTrack(ctx context.Context, track string) ([]domain.Attempt, error) {
	query := fmt.Sprintf(`SELECT %s FROM quiz_attempts WHERE TRACK = :1`, attemptColumns)
	return r.selectAttempts(ctx, query, track)
}

// GetAllAttempts retrieves the full attempt log for global ranking.
func (r *sqlxQuizAttemptRepository) GetAllAttempts(ctx context.Context) ([]domain.Attempt, error) {
	query := fmt.Sprintf(`SELECT %s FROM quiz_attempts`, attemptColumns)
	return r.selectAttempts(ctx, query)
}
