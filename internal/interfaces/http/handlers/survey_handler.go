package handlers

import (
	"errors"
	"strconv"

	"github.com/ankitcloud202/alramzbot/internal/application/usecases"
	"github.com/ankitcloud202/alramzbot/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SurveyHandler manages operator-defined survey scripts.
type SurveyHandler struct {
	surveyUseCase *usecases.SurveyUseCase
}

// NewSurveyHandler creates a new SurveyHandler.
func NewSurveyHandler(surveyUseCase *usecases.SurveyUseCase) *SurveyHandler {
	return &SurveyHandler{
		surveyUseCase: surveyUseCase,
	}
}

// CreateSurvey stores a survey definition.
func (h *SurveyHandler) CreateSurvey(c *fiber.Ctx) error {
	var input usecases.SurveyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	survey, err := h.surveyUseCase.CreateSurvey(input)
	if err != nil {
		if errors.Is(err, entities.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create survey"})
	}

	return c.Status(fiber.StatusCreated).JSON(survey)
}

// GetSurveys returns stored surveys with pagination.
func (h *SurveyHandler) GetSurveys(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid 'page' parameter"})
	}

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid 'limit' parameter"})
	}

	surveys, total, err := h.surveyUseCase.GetSurveys(page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list surveys"})
	}

	return c.JSON(fiber.Map{
		"data":  surveys,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetSurvey returns one survey with its questions and options.
func (h *SurveyHandler) GetSurvey(c *fiber.Ctx) error {
	survey, err := h.surveyUseCase.GetSurveyByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "survey not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch survey"})
	}
	return c.JSON(survey)
}

// DeleteSurvey removes a survey definition.
func (h *SurveyHandler) DeleteSurvey(c *fiber.Ctx) error {
	if err := h.surveyUseCase.DeleteSurvey(c.Params("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "survey not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete survey"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
