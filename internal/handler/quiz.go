package handler

import (
	"campus-quiz/internal/domain"
	"campus-quiz/internal/dto"
	"campus-quiz/internal/middleware"
	"campus-quiz/internal/service"
	"campus-quiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles scoring and ranking HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// SubmitScore handles POST /api/quiz/score
func (h *QuizHandler) SubmitScore(c *fiber.Ctx) error {
	var req dto.SubmitScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewValidationError("invalid request body")
	}
	if err := h.validator.ValidateSubmitScoreRequest(&req); err != nil {
		return err
	}

	resp, err := h.service.RecordAttempt(c.Context(), middleware.UserID(c), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetBestScores handles GET /api/quiz/scores
func (h *QuizHandler) GetBestScores(c *fiber.Ctx) error {
	bests, err := h.service.GetBestScores(c.Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(bests)
}

// GetHistory handles GET /api/quiz/history/:track
func (h *QuizHandler) GetHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	resp, err := h.service.GetHistory(c.Context(), middleware.UserID(c), middleware.Track(c), limit)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetLeaderboard handles GET /api/quiz/leaderboard/:track
func (h *QuizHandler) GetLeaderboard(c *fiber.Ctx) error {
	resp, err := h.service.GetLeaderboard(c.Context(), middleware.Track(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetGlobalRank handles GET /api/quiz/global-rank
func (h *QuizHandler) GetGlobalRank(c *fiber.Ctx) error {
	resp, err := h.service.GetGlobalRank(c.Context(), middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuestions handles GET /api/quiz/questions/:track
func (h *QuizHandler) GetQuestions(c *fiber.Ctx) error {
	resp, err := h.service.GetQuestions(c.Context(), middleware.Track(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
