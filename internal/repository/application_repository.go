package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jobportal/internal/database"
	"jobportal/internal/domain/application"

	"github.com/google/uuid"
)

const applicationColumns = `id, first_name, last_name, email, phone, experience,
	location, skills, cover_letter, cv_file_path, cv_file_name, cv_file_type,
	submitted_at, created_at, updated_at`

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Insert(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (
			id, first_name, last_name, email, phone, experience,
			location, skills, cover_letter, cv_file_path, cv_file_name, cv_file_type
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		a.ID, a.FirstName, a.LastName, a.Email, a.Phone, a.Experience,
		a.Location, a.Skills, a.CoverLetter, a.CVFilePath, a.CVFileName, a.CVFileType,
	)
	return err
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)

	a, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) List(ctx context.Context, f application.ListFilter) ([]application.Application, error) {
	query, args := buildListQuery(f)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) Count(ctx context.Context, f application.ListFilter) (int, error) {
	query, args := buildCountQuery(f)

	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// buildWhere renders the shared filter clause. The page query and the
// count query must see the exact same condition set.
func buildWhere(f application.ListFilter) (string, []any) {
	var conds []string
	var args []any

	next := func() int { return len(args) + 1 }

	if f.Email != "" {
		conds = append(conds, fmt.Sprintf("email ILIKE $%d", next()))
		args = append(args, "%"+f.Email+"%")
	}
	if f.Experience != "" {
		conds = append(conds, fmt.Sprintf("experience = $%d", next()))
		args = append(args, f.Experience)
	}
	if f.DateFrom != nil {
		conds = append(conds, fmt.Sprintf("submitted_at >= $%d", next()))
		args = append(args, *f.DateFrom)
	}
	if f.DateTo != nil {
		conds = append(conds, fmt.Sprintf("submitted_at <= $%d", next()))
		args = append(args, *f.DateTo)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func buildListQuery(f application.ListFilter) (string, []any) {
	where, args := buildWhere(f)

	query := `SELECT ` + applicationColumns + ` FROM applications` + where +
		fmt.Sprintf(" ORDER BY submitted_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Offset)

	return query, args
}

func buildCountQuery(f application.ListFilter) (string, []any) {
	where, args := buildWhere(f)
	return `SELECT COUNT(*) FROM applications` + where, args
}

type scanner interface {
	Scan(dest ...any) error
}

func scanApplication(s scanner) (application.Application, error) {
	var a application.Application
	err := s.Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.Experience,
		&a.Location, &a.Skills, &a.CoverLetter, &a.CVFilePath, &a.CVFileName, &a.CVFileType,
		&a.SubmittedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return application.Application{}, err
	}
	return a, nil
}
