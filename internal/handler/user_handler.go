package handler

import (
	"campus-quiz/internal/domain"
	"campus-quiz/internal/dto"
	"campus-quiz/internal/middleware"
	"campus-quiz/internal/service"
	"campus-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user profile HTTP requests.
type UserHandler struct {
	userService service.UserService
	validator   *validation.Validator
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validation.NewValidator(),
	}
}

// UpdateName handles PATCH /api/user/name
func (h *UserHandler) UpdateName(c *fiber.Ctx) error {
	var req dto.UpdateNameRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	if err := h.validator.ValidateUpdateNameRequest(&req); err != nil {
		return err
	}

	profile, err := h.userService.UpdateName(c.Context(), middleware.UserID(c), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// UpdatePassword handles PATCH /api/user/password
func (h *UserHandler) UpdatePassword(c *fiber.Ctx) error {
	var req dto.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	if req.CurrentPassword == "" {
		return domain.NewValidationError("current_password is required")
	}
	if err := h.validator.ValidatePassword(req.NewPassword); err != nil {
		return err
	}

	if err := h.userService.UpdatePassword(c.Context(), middleware.UserID(c), &req); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "password updated"})
}
