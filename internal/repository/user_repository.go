package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"campus-quiz/internal/domain"
	"campus-quiz/internal/repository/models"
	"campus-quiz/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db *sqlx.DB
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}
	return &domain.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash.String,
		College:      m.College.String,
		Role:         m.Role,
		Avatar:       m.Avatar.String,
		GoogleID:     m.GoogleID.String,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

func fromDomainUser(u *domain.User) *models.User {
	if u == nil {
		return nil
	}
	var deletedAt sql.NullTime
	if u.DeletedAt != nil {
		deletedAt = util.TimeToNullTime(*u.DeletedAt)
	}
	return &models.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: util.StringToNullString(u.PasswordHash),
		College:      util.StringToNullString(u.College),
		Role:         u.Role,
		Avatar:       util.StringToNullString(u.Avatar),
		GoogleID:     util.StringToNullString(u.GoogleID),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		DeletedAt:    deletedAt,
	}
}

const userColumns = "ID, NAME, EMAIL, PASSWORD_HASH, COLLEGE, ROLE, AVATAR, GOOGLE_ID, CREATED_AT, UPDATED_AT, DELETED_AT"

// CreateUser inserts a new user into the database.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	m := fromDomainUser(user)
	m.CreatedAt = time.Now()
	m.UpdatedAt = time.Now()

	query := `INSERT INTO users (ID, NAME, EMAIL, PASSWORD_HASH, COLLEGE, ROLE, AVATAR, GOOGLE_ID, CREATED_AT, UPDATED_AT)
	          VALUES (:1, :2, :3, :4, :5, :6, :7, :8, :9, :10)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.College,
		m.Role,
		m.Avatar,
		m.GoogleID,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *sqlxUserRepository) getUserBy(ctx context.Context, column string, value string) (*domain.User, error) {
	var m models.User
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = :1 AND DELETED_AT IS NULL`, userColumns, column)

	err := r.db.GetContext(ctx, &m, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // not found; callers decide whether that is an error
		}
		return nil, fmt.Errorf("failed to get user by %s: %w", strings.ToLower(column), err)
	}
	return toDomainUser(&m), nil
}

// GetUserByID retrieves a user by their internal ID.
func (r *sqlxUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUserBy(ctx, "ID", userID)
}

// GetUserByEmail retrieves a user by email (used for local login and
// duplicate-registration checks).
func (r *sqlxUserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUserBy(ctx, "EMAIL", strings.ToLower(strings.TrimSpace(email)))
}

// GetUserByGoogleID retrieves a user by their Google ID.
func (r *sqlxUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return r.getUserBy(ctx, "GOOGLE_ID", googleID)
}

// UpdateName updates a user's display name.
func (r *sqlxUserRepository) UpdateName(ctx context.Context, userID, name string) error {
	query := `UPDATE users SET NAME = :1, UPDATED_AT = :2 WHERE ID = :3 AND DELETED_AT IS NULL`

	result, err := r.db.ExecContext(ctx, query, name, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update user name: %w", err)
	}
	return requireRowAffected(result)
}

// UpdatePassword replaces a user's password hash.
func (r *sqlxUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	query := `UPDATE users SET PASSWORD_HASH = :1, UPDATED_AT = :2 WHERE ID = :3 AND DELETED_AT IS NULL`

	result, err := r.db.ExecContext(ctx, query, passwordHash, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to update user password: %w", err)
	}
	return requireRowAffected(result)
}

func requireRowAffected(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetProfilesByIDs resolves display name and avatar for a set of users.
// Unknown IDs are silently absent from the result.
func (r *sqlxUserRepository) GetProfilesByIDs(ctx context.Context, userIDs []string) (map[string]domain.PublicProfile, error) {
	profiles := make(map[string]domain.PublicProfile, len(userIDs))
	if len(userIDs) == 0 {
		return profiles, nil
	}

	placeholders := make([]string, len(userIDs))
	args := make([]interface{}, len(userIDs))
	for i, id := range userIDs {
		placeholders[i] = fmt.Sprintf(":%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`SELECT ID, NAME, AVATAR FROM users WHERE ID IN (%s) AND DELETED_AT IS NULL`,
		strings.Join(placeholders, ", "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query user profiles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		var avatar sql.NullString
		if err := rows.Scan(&id, &name, &avatar); err != nil {
			return nil, fmt.Errorf("failed to scan user profile: %w", err)
		}
		profiles[id] = domain.PublicProfile{Name: name, Avatar: avatar.String}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user profiles: %w", err)
	}
	return profiles, nil
}
