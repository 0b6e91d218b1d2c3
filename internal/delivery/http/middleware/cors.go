package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

// PortalCORS allows the browser frontend to reach the application
// endpoints. Preflight OPTIONS requests are answered here and never
// reach a handler.
func PortalCORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{"Content-Type", "X-Amz-Date", "Authorization", "X-Api-Key", "X-Amz-Security-Token"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
	})
}

// AuthCORS is the narrower header set for the login endpoint.
func AuthCORS() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		AllowMethods: []string{"POST", "OPTIONS"},
	})
}
