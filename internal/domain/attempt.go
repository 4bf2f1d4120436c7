package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	// MaxTotal is the largest question count a single submission may carry.
	MaxTotal = 100
)

// Attempt represents one scored quiz submission. Attempts are immutable
// once created; "best" scores are always derived by reduction over the
// attempt history, never maintained as mutable running state.
type Attempt struct {
	ID        string
	UserID    string
	Track     string   // normalized quiz subject, e.g. "javascript"
	Score     int      // 0 <= Score <= Total
	Total     int      // 1 <= Total <= MaxTotal
	TimeTaken *float64 // seconds; nil when the client did not measure
	CreatedAt time.Time
}

// NormalizeTrack canonicalizes a track identifier the same way everywhere:
// lowercase and trimmed.
func NormalizeTrack(track string) string {
	return strings.ToLower(strings.TrimSpace(track))
}

// NewAttempt creates a new Attempt with a normalized track and the creation
// timestamp set. The ID is assigned by the caller before persisting.
func NewAttempt(userID, track string, score, total int, timeTaken *float64) *Attempt {
	return &Attempt{
		UserID:    userID,
		Track:     NormalizeTrack(track),
		Score:     score,
		Total:     total,
		TimeTaken: timeTaken,
		CreatedAt: time.Now(),
	}
}

// Validate enforces the write-time invariants. Everything downstream
// (the ranking aggregations) relies on these holding, in particular
// Total >= 1 so the accuracy division can never divide by zero.
func (a *Attempt) Validate() error {
	if a.UserID == "" {
		return NewValidationError("user id is required")
	}
	if a.Track == "" {
		return NewValidationError("track is required")
	}
	if a.Total < 1 || a.Total > MaxTotal {
		return NewValidationError(fmt.Sprintf("total must be between 1 and %d", MaxTotal))
	}
	if a.Score < 0 || a.Score > a.Total {
		return NewValidationError("score must be between 0 and total")
	}
	if a.TimeTaken != nil && *a.TimeTaken < 0 {
		return NewValidationError("time taken cannot be negative")
	}
	return nil
}

// AttemptRepository defines the interface for attempt persistence.
// It is append-only: attempts are never updated or deleted. Result
// ordering from storage is incidental; callers impose their own ordering.
type AttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *Attempt) error
	GetAttemptsByUser(ctx context.Context, userID string) ([]Attempt, error)
	GetAttemptsByUserAndTrack(ctx context.Context, userID, track string, limit int) ([]Attempt, error)
	GetAttemptsByTrack(ctx context.Context, track string) ([]Attempt, error)
	GetAllAttempts(ctx context.Context) ([]Attempt, error)
}
