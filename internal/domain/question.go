package domain

import (
	"context"
	"time"
)

// QuestionOptionCount is the fixed number of answer options per question.
const QuestionOptionCount = 4

// QuizQuestion represents one multiple-choice question in a quiz track.
type QuizQuestion struct {
	ID        string
	Track     string
	Question  string
	Options   []string // exactly QuestionOptionCount entries
	Answer    int      // index into Options
	Order     int      // display position within the track
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewQuizQuestion creates a new QuizQuestion with a normalized track.
func NewQuizQuestion(track, question string, options []string, answer, order int) *QuizQuestion {
	now := time.Now()
	return &QuizQuestion{
		Track:     NormalizeTrack(track),
		Question:  question,
		Options:   options,
		Answer:    answer,
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the question
func (q *QuizQuestion) Validate() error {
	if q.Track == "" {
		return NewValidationError("track is required")
	}
	if q.Question == "" {
		return NewValidationError("question is required")
	}
	if len(q.Options) != QuestionOptionCount {
		return NewValidationError("exactly four options are required")
	}
	if q.Answer < 0 || q.Answer >= QuestionOptionCount {
		return NewValidationError("answer must index one of the options")
	}
	return nil
}

// QuestionRepository defines the interface for question bank persistence.
type QuestionRepository interface {
	CreateQuestion(ctx context.Context, question *QuizQuestion) error
	GetQuestionsByTrack(ctx context.Context, track string) ([]QuizQuestion, error)
}
