package validation

import (
	"fmt"
	"regexp"
	"strings"

	"campus-quiz/internal/domain"
	"campus-quiz/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// trackPattern matches normalized track slugs (lowercase alphanumeric with
// hyphens and underscores).
var trackPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// emailPattern is a coarse shape check, not an RFC parser.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateTrack validates a track path or body parameter. The returned track
// is normalized.
func (v *Validator) ValidateTrack(track string) (string, error) {
	normalized := domain.NormalizeTrack(track)
	if normalized == "" {
		return "", domain.NewValidationError("track is required")
	}
	if !trackPattern.MatchString(normalized) {
		return "", domain.NewValidationError(fmt.Sprintf("invalid track: %q", track))
	}
	return normalized, nil
}

// ValidateSubmitScoreRequest validates the score submission body. The request
// track is normalized in place.
func (v *Validator) ValidateSubmitScoreRequest(req *dto.SubmitScoreRequest) error {
	track, err := v.ValidateTrack(req.Track)
	if err != nil {
		return err
	}
	req.Track = track

	if req.Total < 1 || req.Total > domain.MaxTotal {
		return domain.NewValidationError(fmt.Sprintf("total must be between 1 and %d", domain.MaxTotal))
	}
	if req.Score < 0 || req.Score > req.Total {
		return domain.NewValidationError("score must be between 0 and total")
	}
	if req.TimeTaken != nil && *req.TimeTaken < 0 {
		return domain.NewValidationError("time_taken must not be negative")
	}
	return nil
}

// ValidateRegisterRequest validates the local registration body.
func (v *Validator) ValidateRegisterRequest(req *dto.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return domain.NewValidationError("name is required")
	}
	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		return domain.NewValidationError("invalid email address")
	}
	return v.ValidatePassword(req.Password)
}

// ValidateLoginRequest validates the local login body.
func (v *Validator) ValidateLoginRequest(req *dto.LoginRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return domain.NewValidationError("email is required")
	}
	if req.Password == "" {
		return domain.NewValidationError("password is required")
	}
	return nil
}

// ValidatePassword enforces the minimum password policy.
func (v *Validator) ValidatePassword(password string) error {
	if len(password) < 8 {
		return domain.NewValidationError("password must be at least 8 characters")
	}
	if len(password) > 72 { // bcrypt input limit
		return domain.NewValidationError("password must be at most 72 characters")
	}
	return nil
}

// ValidateUpdateNameRequest validates the display name update body.
func (v *Validator) ValidateUpdateNameRequest(req *dto.UpdateNameRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.NewValidationError("name is required")
	}
	if len(name) > 100 {
		return domain.NewValidationError("name must be at most 100 characters")
	}
	req.Name = name
	return nil
}
