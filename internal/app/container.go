package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"jobportal/internal/config"
	"jobportal/internal/database"
	dbpostgres "jobportal/internal/database/postgres"
	"jobportal/internal/infrastructure/cache"
	"jobportal/internal/infrastructure/secrets"
	"jobportal/internal/infrastructure/storage"
)

// Container holds the process-wide client handles. They are built once
// at startup and injected into the handlers, never reached for as
// globals.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	DB          database.DB
	Store       *storage.S3Store
	Credentials *secrets.SecretsManagerStore
	Cache       *cache.Redis
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewS3Store(ctx, cfg.AWS.Region, cfg.AWS.S3Bucket)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	creds, err := secrets.NewSecretsManagerStore(ctx, cfg.AWS.Region, cfg.AWS.AdminCredentialsSecret)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{
		Config:      cfg,
		Logger:      logger,
		DB:          db,
		Store:       store,
		Credentials: creds,
		Cache:       cache.NewRedis(cfg.Redis, logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
