package v1

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"jobportal/internal/database"
	"jobportal/internal/database/schema"
	"jobportal/internal/delivery/http/handler"
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/pkg/jwt"
	"jobportal/internal/repository"
	appuc "jobportal/internal/usecase/application"
	"jobportal/internal/usecase/auth"
)

type Deps struct {
	DB          database.DB
	Credentials auth.CredentialStore
	Store       appuc.ObjectStore
	Cache       appuc.ListCache
	Logger      *zap.Logger
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService()
	authUC := auth.NewService(d.Credentials, jwtSvc, d.Logger)

	repo := repository.NewPostgresApplicationRepository(d.DB)
	appSvc := appuc.NewService(
		repo,
		d.Store,
		d.Cache,
		func(ctx context.Context) error { return schema.Ensure(ctx, d.DB) },
		d.Logger,
	)

	authHandler := handler.NewAuthHandler(authUC)
	appHandler := handler.NewApplicationHandler(appSvc)

	authGroup := r.Group("/auth", middleware.AuthCORS())
	authHandler.RegisterRoutes(authGroup)

	appsGroup := r.Group("/applications", middleware.PortalCORS())
	appHandler.RegisterRoutes(appsGroup)
}
