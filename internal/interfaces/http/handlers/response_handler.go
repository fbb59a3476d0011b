package handlers

import (
	"github.com/ankitcloud202/alramzbot/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// ResponseHandler serves the survey response views backed by the shared
// cached fetch.
type ResponseHandler struct {
	responseUseCase *usecases.ResponseUseCase
}

// NewResponseHandler creates a new ResponseHandler.
func NewResponseHandler(responseUseCase *usecases.ResponseUseCase) *ResponseHandler {
	return &ResponseHandler{
		responseUseCase: responseUseCase,
	}
}

// GetResponses returns the table projection of the current response set.
func (h *ResponseHandler) GetResponses(c *fiber.Ctx) error {
	rows, err := h.responseUseCase.GetRows(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to fetch survey responses"})
	}
	return c.JSON(fiber.Map{
		"data":  rows,
		"total": len(rows),
	})
}

// GetDistribution returns the per-question rating histogram.
func (h *ResponseHandler) GetDistribution(c *fiber.Ctx) error {
	rows, err := h.responseUseCase.GetDistribution(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to fetch survey responses"})
	}
	return c.JSON(fiber.Map{
		"data": rows,
	})
}

// GetMonthlyAverages returns the monthly average rating series.
func (h *ResponseHandler) GetMonthlyAverages(c *fiber.Ctx) error {
	rows, err := h.responseUseCase.GetMonthlyAverages(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to fetch survey responses"})
	}
	return c.JSON(fiber.Map{
		"data": rows,
	})
}

// Refresh forces a re-fetch of the response set ("Sync Now").
func (h *ResponseHandler) Refresh(c *fiber.Ctx) error {
	count, err := h.responseUseCase.Refresh(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "failed to refresh survey responses"})
	}
	return c.JSON(fiber.Map{
		"status": "refreshed",
		"total":  count,
	})
}
