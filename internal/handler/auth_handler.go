package handler

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"campus-quiz/internal/config"
	"campus-quiz/internal/domain"
	"campus-quiz/internal/dto"
	"campus-quiz/internal/logger"
	"campus-quiz/internal/middleware"
	"campus-quiz/internal/service"
	"campus-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const oauthStateCookieName = "oauthstate"

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService service.AuthService
	userService service.UserService
	appConfig   *config.Config
	validator   *validation.Validator
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, userService service.UserService, appConfig *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		appConfig:   appConfig,
		validator:   validation.NewValidator(),
	}
}

// setSessionCookie issues the httpOnly session cookie.
func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Expires:  time.Now().Add(h.appConfig.JWT.TokenTTL),
		HTTPOnly: true,
		Secure:   c.Secure(),
		SameSite: "Lax",
		Path:     "/",
	})
}

func (h *AuthHandler) clearCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   c.Secure(),
		SameSite: "Lax",
		Path:     "/",
	})
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	if err := h.validator.ValidateRegisterRequest(&req); err != nil {
		return err
	}

	user, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		return err
	}

	token, err := h.authService.CreateJWT(user)
	if err != nil {
		return domain.NewInternalError("failed to create session", err)
	}
	h.setSessionCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		User:  dto.NewUserProfileResponse(user),
		Token: token,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	if err := h.validator.ValidateLoginRequest(&req); err != nil {
		return err
	}

	user, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		return err
	}

	token, err := h.authService.CreateJWT(user)
	if err != nil {
		return domain.NewInternalError("failed to create session", err)
	}
	h.setSessionCookie(c, token)

	return c.JSON(dto.AuthResponse{
		User:  dto.NewUserProfileResponse(user),
		Token: token,
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.clearCookie(c, middleware.TokenCookie)
	return c.JSON(dto.MessageResponse{Message: "logged out"})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	profile, err := h.userService.GetProfile(c.Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// GoogleLogin initiates the Google OAuth2 login flow.
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	appLogger := logger.Get()
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		appLogger.Error("Failed to generate random state for OAuth", zap.Error(err))
		return domain.NewInternalError("could not start oauth flow", err)
	}
	state := base64.URLEncoding.EncodeToString(b)

	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookieName,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		Secure:   c.Secure(),
		SameSite: "Lax",
		Path:     "/",
	})

	return c.Redirect(h.authService.GetGoogleLoginURL(state), fiber.StatusTemporaryRedirect)
}

// GoogleCallback handles the redirect back from Google.
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	appLogger := logger.Get()
	code := c.Query("code")
	receivedState := c.Query("state")
	expectedState := c.Cookies(oauthStateCookieName)

	h.clearCookie(c, oauthStateCookieName)

	if code == "" {
		return domain.NewValidationError("authorization code is missing")
	}

	user, err := h.authService.HandleGoogleCallback(c.Context(), code, receivedState, expectedState)
	if err != nil {
		appLogger.Warn("Google OAuth callback failed", zap.Error(err))
		return domain.NewUnauthorizedError("google sign-in failed")
	}

	token, err := h.authService.CreateJWT(user)
	if err != nil {
		return domain.NewInternalError("failed to create session", err)
	}
	h.setSessionCookie(c, token)

	if h.appConfig.Server.FrontendURL != "" {
		return c.Redirect(h.appConfig.Server.FrontendURL, fiber.StatusTemporaryRedirect)
	}
	return c.JSON(dto.AuthResponse{
		User:  dto.NewUserProfileResponse(user),
		Token: token,
	})
}
