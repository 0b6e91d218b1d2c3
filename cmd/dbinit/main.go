package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"jobportal/internal/config"
	"jobportal/internal/database"
	"jobportal/internal/database/postgres"
	"jobportal/internal/database/schema"
)

// dbinit creates the applications table and its indexes, then reports
// the current row count. Safe to run repeatedly.
func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadDatabase()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("close error: %v", err)
		}
	}()

	count, err := run(ctx, db)
	if err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	log.Printf("schema ready, applications table holds %d rows", count)
}

func run(ctx context.Context, db database.DB) (int, error) {
	if err := db.Ping(ctx); err != nil {
		return 0, fmt.Errorf("ping database: %w", err)
	}
	if err := schema.Ensure(ctx, db); err != nil {
		return 0, err
	}
	return schema.Count(ctx, db)
}
