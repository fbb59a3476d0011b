package handlers

import (
	"github.com/ankitcloud202/alramzbot/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
)

// FlowHandler serves the static IVR flow graph for the dashboard diagram.
type FlowHandler struct{}

// NewFlowHandler creates a new FlowHandler.
func NewFlowHandler() *FlowHandler {
	return &FlowHandler{}
}

// GetFlow returns the survey call-flow graph.
func (h *FlowHandler) GetFlow(c *fiber.Ctx) error {
	nodes, edges := entities.IVRFlow()
	return c.JSON(fiber.Map{
		"nodes": nodes,
		"edges": edges,
	})
}
