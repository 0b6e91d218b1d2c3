package application

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	domain "jobportal/internal/domain/application"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 1000

	// maxListPage keeps (page-1)*limit inside int32 with the largest
	// allowed limit, so the OFFSET parameter can never overflow.
	maxListPage = math.MaxInt32 / MaxPageSize

	// CoverLetterPreviewLen is where the list view truncates cover
	// letters; longer texts get an ellipsis marker appended.
	CoverLetterPreviewLen = 200

	listCacheKeyPrefix = "applications:list:"
	listCacheTTL       = 60 * time.Second
)

type ListParams struct {
	Page  int
	Limit int

	Email      string
	Experience string
	DateFrom   *time.Time
	DateTo     *time.Time
}

type ListItem struct {
	App                domain.Application
	CoverLetterPreview *string
}

type Pagination struct {
	CurrentPage int
	PerPage     int
	TotalCount  int
	TotalPages  int
	HasNext     bool
	HasPrev     bool
}

type ListResult struct {
	Items      []ListItem
	Pagination Pagination
}

func (s *Service) List(ctx context.Context, p ListParams) (ListResult, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > maxListPage {
		p.Page = maxListPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	offset := (p.Page - 1) * p.Limit

	key := listCacheKey(p)
	if s.cache != nil {
		var cached ListResult
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	filter := domain.ListFilter{
		Email:      p.Email,
		Experience: p.Experience,
		DateFrom:   p.DateFrom,
		DateTo:     p.DateTo,
		Limit:      p.Limit,
		Offset:     offset,
	}

	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("application list query failed", zap.Error(err))
		return ListResult{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("application count query failed", zap.Error(err))
		return ListResult{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	items := make([]ListItem, 0, len(rows))
	for _, a := range rows {
		items = append(items, ListItem{
			App:                a,
			CoverLetterPreview: coverLetterPreview(a.CoverLetter),
		})
	}

	result := ListResult{
		Items: items,
		Pagination: Pagination{
			CurrentPage: p.Page,
			PerPage:     p.Limit,
			TotalCount:  total,
			TotalPages:  (total + p.Limit - 1) / p.Limit,
			HasNext:     offset+len(items) < total,
			HasPrev:     p.Page > 1,
		},
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, result, listCacheTTL); err != nil {
			s.logger.Warn("list cache write failed", zap.Error(err))
		}
	}

	return result, nil
}

// coverLetterPreview truncates on character count, not bytes, so
// multi-byte text keeps its full budget and never splits a rune.
func coverLetterPreview(coverLetter *string) *string {
	if coverLetter == nil {
		return nil
	}
	runes := []rune(*coverLetter)
	if len(runes) <= CoverLetterPreviewLen {
		return coverLetter
	}
	preview := string(runes[:CoverLetterPreviewLen]) + "..."
	return &preview
}

func listCacheKey(p ListParams) string {
	from, to := "", ""
	if p.DateFrom != nil {
		from = p.DateFrom.UTC().Format(time.RFC3339)
	}
	if p.DateTo != nil {
		to = p.DateTo.UTC().Format(time.RFC3339)
	}
	return fmt.Sprintf("%sp=%d:l=%d:e=%s:x=%s:f=%s:t=%s",
		listCacheKeyPrefix, p.Page, p.Limit, p.Email, p.Experience, from, to)
}
