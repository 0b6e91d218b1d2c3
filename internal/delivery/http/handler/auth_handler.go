package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/pkg/response"
	"jobportal/internal/usecase/auth"
)

type AuthHandler struct {
	uc auth.Usecase
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

func NewAuthHandler(uc auth.Usecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/login", h.Login)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAuthError(fiber.StatusBadRequest, "Invalid JSON format", err)
	}

	res, err := h.uc.Login(c.Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return mapAuthError(err)
	}

	return response.JSON(c, fiber.StatusOK, loginResponse{
		Success:   true,
		Message:   "Login successful",
		Token:     res.Token,
		ExpiresIn: res.ExpiresIn,
	})
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidInput):
		return middleware.NewAuthError(fiber.StatusBadRequest, "Username and password are required", err)
	case errors.Is(err, auth.ErrInvalidCredentials):
		return middleware.NewAuthError(fiber.StatusUnauthorized, "Invalid username or password", err)
	case errors.Is(err, auth.ErrServiceUnavailable):
		return middleware.NewAuthError(fiber.StatusInternalServerError, "Authentication service unavailable", err)
	default:
		return middleware.NewAuthError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
