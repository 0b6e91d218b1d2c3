package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("application not found")

// ListFilter combines the optional list filters. Zero values mean
// "not applied"; all supplied filters AND together.
type ListFilter struct {
	Email      string
	Experience string
	DateFrom   *time.Time
	DateTo     *time.Time

	Limit  int
	Offset int
}

type Repository interface {
	Insert(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	List(ctx context.Context, f ListFilter) ([]Application, error)
	Count(ctx context.Context, f ListFilter) (int, error)
}
