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

// sqlxQuestionRepository implements domain.QuestionRepository using sqlx.
type sqlxQuestionRepository struct {
	db *sqlx.DB
}

// NewSQLXQuestionRepository creates a new instance of sqlxQuestionRepository.
func NewSQLXQuestionRepository(db *sqlx.DB) domain.QuestionRepository {
	return &sqlxQuestionRepository{db: db}
}

func toDomainQuestion(m *models.QuizQuestion) *domain.QuizQuestion {
	if m == nil {
		return nil
	}
	return &domain.QuizQuestion{
		ID:        m.ID,
		Track:     m.Track,
		Question:  m.Question,
		Options:   []string(m.Options),
		Answer:    m.AnswerIndex,
		Order:     m.DisplayOrder,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromDomainQuestion(q *domain.QuizQuestion) *models.QuizQuestion {
	if q == nil {
		return nil
	}
	return &models.QuizQuestion{
		ID:           q.ID,
		Track:        q.Track,
		Question:     q.Question,
		Options:      models.StringSlice(q.Options),
		AnswerIndex:  q.Answer,
		DisplayOrder: q.Order,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

// CreateQuestion inserts a new question into the question bank.
func (r *sqlxQuestionRepository) CreateQuestion(ctx context.Context, question *domain.QuizQuestion) error {
	m := fromDomainQuestion(question)
	if m.ID == "" {
		m.ID = util.NewULID()
	}
	m.CreatedAt = time.Now()
	m.UpdatedAt = time.Now()

	query := `INSERT INTO quiz_questions (ID, TRACK, QUESTION, OPTIONS, ANSWER_INDEX, DISPLAY_ORDER, CREATED_AT, UPDATED_AT)
	          VALUES (:1, :2, :3, :4, :5, :6, :7, :8)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.Track,
		m.Question,
		m.Options,
		m.AnswerIndex,
		m.DisplayOrder,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	question.ID = m.ID
	return nil
}

// GetQuestionsByTrack returns all questions for a track in display order.
func (r *sqlxQuestionRepository) GetQuestionsByTrack(ctx context.Context, track string) ([]domain.QuizQuestion, error) {
	var rows []models.QuizQuestion
	query := `SELECT ID, TRACK, QUESTION, OPTIONS, ANSWER_INDEX, DISPLAY_ORDER, CREATED_AT, UPDATED_AT
	          FROM quiz_questions WHERE TRACK = :1 ORDER BY DISPLAY_ORDER ASC, CREATED_AT ASC`

	if err := r.db.SelectContext(ctx, &rows, query, domain.NormalizeTrack(track)); err != nil {
		return nil, fmt.Errorf("failed to get questions by track: %w", err)
	}

	questions := make([]domain.QuizQuestion, 0, len(rows))
	for i := range rows {
		questions = append(questions, *toDomainQuestion(&rows[i]))
	}
	return questions, nil
}
