package models

import (
	"database/sql"
	"time"
)

// QuizAttempt represents one row of the append-only attempt log.
// Rows are never updated or deleted.
type QuizAttempt struct {
	ID        string          `db:"ID"` // ULID
	UserID    string          `db:"USER_ID"`
	Track     string          `db:"TRACK"` // normalized lowercase track name
	Score     int             `db:"SCORE"`
	Total     int             `db:"TOTAL"`
	TimeTaken sql.NullFloat64 `db:"TIME_TAKEN"` // seconds; NULL when unmeasured
	CreatedAt time.Time       `db:"CREATED_AT"`
}
