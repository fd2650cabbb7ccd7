package handlers

import (
	"github.com/gofiber/fiber/v2"

	"foundation_api/internal/respond"
)

// Health godoc
// @Summary      Health check
// @Tags         meta
// @Produce      json
// @Success      200 {object} respond.Envelope
// @Router       /health [get]
func Health(c *fiber.Ctx) error {
	return respond.Success(c, fiber.StatusOK, fiber.Map{"status": "ok"})
}
