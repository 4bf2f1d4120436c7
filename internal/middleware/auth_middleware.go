package middleware

import (
	"strings"

	"campus-quiz/internal/domain"
	"campus-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "

	// TokenCookie is the httpOnly session cookie set on login.
	TokenCookie = "token"

	// UserIDKey is the fiber.Ctx locals key holding the authenticated user ID.
	UserIDKey = "userID"
)

// extractToken reads the session token from the cookie or, failing that, the
// Authorization header. The cookie is the primary transport; the header keeps
// non-browser clients working.
func extractToken(c *fiber.Ctx) string {
	if cookie := c.Cookies(TokenCookie); cookie != "" {
		return cookie
	}
	authHeader := c.Get(AuthorizationHeader)
	if strings.HasPrefix(authHeader, BearerSchema) {
		return strings.TrimPrefix(authHeader, BearerSchema)
	}
	return ""
}

// Protected requires a valid session JWT and sets the userID local.
func Protected(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return domain.NewUnauthorizedError("authentication required")
		}

		claims, err := authService.ValidateJWT(tokenString)
		if err != nil {
			return domain.NewUnauthorizedError("invalid or expired session")
		}

		c.Locals(UserIDKey, claims.UserID)
		return c.Next()
	}
}

// UserID returns the authenticated user ID set by Protected. Empty when the
// route is not protected.
func UserID(c *fiber.Ctx) string {
	if v, ok := c.Locals(UserIDKey).(string); ok {
		return v
	}
	return ""
}
