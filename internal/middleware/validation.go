package middleware

import (
	"campus-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidatedTrackKey is the fiber.Ctx locals key holding the normalized track
// set by ValidateTrack.
const ValidatedTrackKey = "validated_track"

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateTrack validates the :track path parameter and stores the normalized
// value for handlers.
func (vm *ValidationMiddleware) ValidateTrack() fiber.Handler {
	return func(c *fiber.Ctx) error {
		track, err := vm.validator.ValidateTrack(c.Params("track"))
		if err != nil {
			return err // handled by ErrorHandler
		}

		c.Locals(ValidatedTrackKey, track)
		return c.Next()
	}
}

// Track returns the normalized track set by ValidateTrack.
func Track(c *fiber.Ctx) string {
	if v, ok := c.Locals(ValidatedTrackKey).(string); ok {
		return v
	}
	return ""
}
