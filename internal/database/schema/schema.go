// Package schema holds the idempotent DDL for the applications table.
// Ensure is safe to run on every cold start; it never drops or alters
// existing structure.
package schema

import (
	"context"
	"fmt"

	"jobportal/internal/database"
)

const createApplicationsTable = `
CREATE TABLE IF NOT EXISTS applications (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	first_name VARCHAR(100) NOT NULL,
	last_name VARCHAR(100) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(20),
	experience VARCHAR(50) NOT NULL,
	location VARCHAR(255),
	skills TEXT,
	cover_letter TEXT,
	cv_file_path VARCHAR(500),
	cv_file_name VARCHAR(255),
	cv_file_type VARCHAR(100),
	submitted_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

var createIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_applications_email ON applications(email)`,
	`CREATE INDEX IF NOT EXISTS idx_applications_submitted_at ON applications(submitted_at DESC)`,
}

// Ensure creates the applications table and its indexes if they do not
// exist yet. All statements run in one transaction.
func Ensure(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin schema init: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, createApplicationsTable); err != nil {
		return fmt.Errorf("create applications table: %w", err)
	}
	for _, ddl := range createIndexes {
		if _, err := tx.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// Count returns the current number of stored applications. The dbinit
// command reports it after initialization as a connectivity check.
func Count(ctx context.Context, db database.DB) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
