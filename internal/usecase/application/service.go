package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "jobportal/internal/domain/application"
)

var (
	ErrUpload      = errors.New("failed to upload CV file")
	ErrPersistence = errors.New("database error occurred")

	// ErrNotFound mirrors the repository sentinel so handlers only
	// depend on this package.
	ErrNotFound = domain.ErrNotFound
)

// ValidationError reports every problem with a submission at once so
// the client can fix them in a single pass.
type ValidationError struct {
	MissingFields []string
	Reason        string
}

func (e *ValidationError) Error() string {
	if len(e.MissingFields) > 0 {
		return "Missing required fields: " + strings.Join(e.MissingFields, ", ")
	}
	return e.Reason
}

// ObjectStore is the blob store holding CV files.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string, metadata map[string]string) error
	Get(ctx context.Context, key string) ([]byte, error)
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}

// ListCache is an optional read cache for list pages. Implementations
// must degrade to no-ops rather than fail.
type ListCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type Service struct {
	repo         domain.Repository
	store        ObjectStore
	cache        ListCache
	ensureSchema func(ctx context.Context) error
	logger       *zap.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

func NewService(
	repo domain.Repository,
	store ObjectStore,
	cache ListCache,
	ensureSchema func(ctx context.Context) error,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ensureSchema == nil {
		ensureSchema = func(context.Context) error { return nil }
	}
	return &Service{
		repo:         repo,
		store:        store,
		cache:        cache,
		ensureSchema: ensureSchema,
		logger:       logger,
		now:          time.Now,
		newID:        uuid.New,
	}
}
