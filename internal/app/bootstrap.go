package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"jobportal/internal/config"
	"jobportal/internal/database/schema"
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/delivery/http/routes"
	v1 "jobportal/internal/delivery/http/routes/v1"
	"jobportal/internal/pkg/logger"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap wires the full application: clients, middleware, routes.
// It also runs the schema migration so the first request never races
// table creation. The returned cleanup closes every client handle.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	log := logger.New(cfg.App.LogLevel, cfg.App.LogFormat)

	container, err := NewContainer(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := schema.Ensure(ctx, container.DB); err != nil {
		_ = container.Close()
		return nil, nil, fmt.Errorf("ensure schema: %w", err)
	}

	f := fiber.New(fiber.Config{})
	registerGlobalMiddleware(f, log)

	routes.NewRegistry(v1.Deps{
		DB:          container.DB,
		Credentials: container.Credentials,
		Store:       container.Store,
		Cache:       container.Cache,
		Logger:      log,
	}).Register(f)

	app := &App{Fiber: f, Container: container}
	cleanup := func() error {
		_ = log.Sync()
		return container.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, log *zap.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	app.Use(middleware.NewErrorMiddleware(log).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
