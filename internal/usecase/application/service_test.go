package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domain "jobportal/internal/domain/application"
)

type fakeRepo struct {
	inserted []domain.Application
	byID     map[uuid.UUID]domain.Application
	listRows []domain.Application
	total    int

	insertErr error
	getErr    error
	listErr   error
	countErr  error

	lastFilter domain.ListFilter
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[uuid.UUID]domain.Application{}}
}

func (r *fakeRepo) Insert(ctx context.Context, a domain.Application) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, a)
	r.byID[a.ID] = a
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Application, error) {
	if r.getErr != nil {
		return domain.Application{}, r.getErr
	}
	a, ok := r.byID[id]
	if !ok {
		return domain.Application{}, domain.ErrNotFound
	}
	return a, nil
}

func (r *fakeRepo) List(ctx context.Context, f domain.ListFilter) ([]domain.Application, error) {
	r.lastFilter = f
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.listRows, nil
}

func (r *fakeRepo) Count(ctx context.Context, f domain.ListFilter) (int, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	return r.total, nil
}

type fakeStore struct {
	objects  map[string][]byte
	metadata map[string]map[string]string

	putErr     error
	getErr     error
	presignErr error

	presignedKeys []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		objects:  map[string][]byte{},
		metadata: map[string]map[string]string{},
	}
}

func (s *fakeStore) Put(ctx context.Context, key string, body []byte, contentType string, metadata map[string]string) error {
	if s.putErr != nil {
		return s.putErr
	}
	s.objects[key] = body
	s.metadata[key] = metadata
	return nil
}

func (s *fakeStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	body, ok := s.objects[key]
	if !ok {
		return nil, errors.New("no such object")
	}
	return body, nil
}

func (s *fakeStore) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	if s.presignErr != nil {
		return "", s.presignErr
	}
	s.presignedKeys = append(s.presignedKeys, key)
	return "https://example.com/" + key, nil
}

type fakeCache struct {
	data            map[string][]byte
	deletedPatterns []string
	getCalls        int
	setCalls        int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	c.getCalls++
	return false, nil
}

func (c *fakeCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	c.setCalls++
	c.data[key] = nil
	return nil
}

func (c *fakeCache) DeleteByPattern(ctx context.Context, pattern string) error {
	c.deletedPatterns = append(c.deletedPatterns, pattern)
	return nil
}

func newTestService(repo *fakeRepo, store *fakeStore, cache *fakeCache) *Service {
	var c ListCache
	if cache != nil {
		c = cache
	}
	svc := NewService(repo, store, c, nil, nil)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	svc.newID = func() uuid.UUID {
		return uuid.MustParse("11111111-2222-3333-4444-555555555555")
	}
	return svc
}

func strPtr(s string) *string { return &s }

func validSubmitInput() SubmitInput {
	return SubmitInput{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@example.com",
		Experience: "5-10",
		Skills:     "Go, SQL",
	}
}
