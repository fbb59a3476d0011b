package handlers

import (
	"errors"
	"strconv"

	"github.com/ankitcloud202/alramzbot/internal/application/usecases"
	"github.com/ankitcloud202/alramzbot/internal/domain/entities"
	"github.com/ankitcloud202/alramzbot/internal/domain/repositories"
	"github.com/gofiber/fiber/v2"
)

// CallHandler triggers outbound survey calls and serves the call log.
type CallHandler struct {
	callUseCase *usecases.CallUseCase
	callRepo    *repositories.CallRepository
}

// NewCallHandler creates a new CallHandler.
func NewCallHandler(callUseCase *usecases.CallUseCase, callRepo *repositories.CallRepository) *CallHandler {
	return &CallHandler{
		callUseCase: callUseCase,
		callRepo:    callRepo,
	}
}

// TriggerCalls proxies a call batch to the call-initiation service. The
// response body contract is raw text: "Success" on 200, the error text with
// "Internal Error" appended on 500.
func (h *CallHandler) TriggerCalls(c *fiber.Ctx) error {
	var input usecases.CallInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if _, err := h.callUseCase.TriggerCalls(c.UserContext(), input); err != nil {
		if errors.Is(err, entities.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error() + "Internal Error")
	}

	return c.SendString("Success")
}

// GetCalls returns the call log, most recent first.
func (h *CallHandler) GetCalls(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid 'page' parameter"})
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid 'limit' parameter"})
	}

	calls, total, err := h.callRepo.GetCalls(page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list call logs"})
	}

	return c.JSON(fiber.Map{
		"data":  calls,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}
