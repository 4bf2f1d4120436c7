package dto

import (
	"campus-quiz/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// GoogleUserInfo holds user information obtained from Google.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// AuthClaims defines the custom claims for the session JWT.
type AuthClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	College  string `json:"college,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateNameRequest is the body of PATCH /api/user/name.
type UpdateNameRequest struct {
	Name string `json:"name" validate:"required"`
}

// UpdatePasswordRequest is the body of PATCH /api/user/password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// UserProfileResponse defines the structure for a user's profile information.
type UserProfileResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	College string `json:"college,omitempty"`
	Role    string `json:"role"`
	Avatar  string `json:"avatar,omitempty"`
}

// NewUserProfileResponse converts a domain user to its API shape.
func NewUserProfileResponse(u *domain.User) UserProfileResponse {
	return UserProfileResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		College: u.College,
		Role:    u.Role,
		Avatar:  u.Avatar,
	}
}

// AuthResponse is returned by register, login and the OAuth callback.
type AuthResponse struct {
	User  UserProfileResponse `json:"user"`
	Token string              `json:"token"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}
