package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User represents a domain user object. Local accounts carry a bcrypt
// PasswordHash; accounts created through Google OAuth carry a GoogleID
// and no password.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	College      string
	Role         string
	Avatar       string
	GoogleID     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// NewUser creates a new local User instance
func NewUser(name, email, passwordHash, college string) *User {
	now := time.Now()
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		College:      college,
		Role:         RoleMember,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Validate validates the user
func (u *User) Validate() error {
	if u.Name == "" {
		return NewValidationError("name is required")
	}
	if u.Email == "" {
		return NewValidationError("email is required")
	}
	if u.PasswordHash == "" && u.GoogleID == "" {
		return NewValidationError("either a password or a google id is required")
	}
	return nil
}

// PublicProfile is the display-only slice of a user joined into
// leaderboards and rankings.
type PublicProfile struct {
	Name   string
	Avatar string
}

// UserRepository defines the interface for user data persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, userID string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*User, error)
	UpdateName(ctx context.Context, userID, name string) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error

	// GetProfilesByIDs resolves display data for a set of users. Missing
	// IDs are simply absent from the result map.
	GetProfilesByIDs(ctx context.Context, userIDs []string) (map[string]PublicProfile, error)
}
