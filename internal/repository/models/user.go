package models

import (
	"database/sql"
	"time"
)

// User represents a user row. Local accounts have PasswordHash set;
// Google accounts have GoogleID set. Both may be present after linking.
type User struct {
	ID           string         `db:"ID"` // ULID
	Name         string         `db:"NAME"`
	Email        string         `db:"EMAIL"`
	PasswordHash sql.NullString `db:"PASSWORD_HASH"`
	College      sql.NullString `db:"COLLEGE"`
	Role         string         `db:"ROLE"` // "member" or "admin"
	Avatar       sql.NullString `db:"AVATAR"`
	GoogleID     sql.NullString `db:"GOOGLE_ID"`
	CreatedAt    time.Time      `db:"CREATED_AT"`
	UpdatedAt    time.Time      `db:"UPDATED_AT"`
	DeletedAt    sql.NullTime   `db:"DELETED_AT"`
}
