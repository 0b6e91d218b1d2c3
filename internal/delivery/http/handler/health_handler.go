package handler

import (
	"github.com/gofiber/fiber/v3"

	"jobportal/internal/pkg/response"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", func(c fiber.Ctx) error {
		return response.JSON(c, fiber.StatusOK, response.Message{Message: "OK"})
	})
}
