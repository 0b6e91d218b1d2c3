package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"jobportal/internal/pkg/response"
)

// AppError carries the status and client-facing message for a failed
// request. The cause is logged, never rendered; 500-class responses
// fall back to a generic message when none is set.
type AppError struct {
	StatusCode int
	Message    string
	// WithSuccessFlag adds "success": false to the body, matching the
	// auth endpoint's envelope.
	WithSuccessFlag bool
	Cause           error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

func NewAuthError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, WithSuccessFlag: true, Cause: cause}
}

type ErrorMiddleware struct {
	logger *zap.Logger
}

func NewErrorMiddleware(logger *zap.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("panic recovered", zap.Any("panic", r),
					zap.String("path", c.Path()))
				err = response.JSON(c, fiber.StatusInternalServerError,
					response.Message{Message: response.MessageInternalServerError})
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, withSuccess := m.normalizeError(c, err)
		if withSuccess {
			return response.JSON(c, status, struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}{Success: false, Message: msg})
		}
		return response.JSON(c, status, response.Message{Message: msg})
	}
}

func (m *ErrorMiddleware) normalizeError(c fiber.Ctx, err error) (int, string, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}

		if status >= 500 {
			m.logger.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.Error(err))
		}
		return status, msg, appErr.WithSuccessFlag
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		if status >= 500 {
			m.logger.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", status),
				zap.Error(err))
			return status, response.MessageInternalServerError, false
		}
		msg := fiberErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}
		return status, msg, false
	}

	m.logger.Error("unhandled error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))
	return fiber.StatusInternalServerError, response.MessageInternalServerError, false
}
