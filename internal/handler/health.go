package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	startAt time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startAt: time.Now()}
}

// Live handles GET /health/live — liveness probe. The service holds no
// backing connections, so liveness is the only probe it exposes.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":         "ok",
		"uptime_seconds": int(time.Since(h.startAt).Seconds()),
	})
}
