package application

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "jobportal/internal/domain/application"
)

// CVDownloadURLTTL is how long a signed CV download link stays valid.
const CVDownloadURLTTL = 3600 * time.Second

type GetOptions struct {
	IncludeCVContent bool
}

// Detail is one application enriched with CV access information. The
// enrichment fields stay nil when no CV is stored or when fetching it
// failed; enrichment failures never fail the whole lookup.
type Detail struct {
	App domain.Application

	CVDownloadURL  *string
	CVContentHex   *string
	CVContentSize  *int
	CVContentError *string
}

func (s *Service) Get(ctx context.Context, id uuid.UUID, opts GetOptions) (Detail, error) {
	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return Detail{}, ErrNotFound
		}
		s.logger.Error("application lookup failed",
			zap.String("application_id", id.String()), zap.Error(err))
		return Detail{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	d := Detail{App: app}
	if !app.HasCV() {
		return d, nil
	}

	url, err := s.store.PresignGet(ctx, *app.CVFilePath, CVDownloadURLTTL)
	if err != nil {
		s.logger.Error("presigned URL generation failed",
			zap.String("application_id", id.String()), zap.Error(err))
	} else {
		d.CVDownloadURL = &url
	}

	if opts.IncludeCVContent {
		content, err := s.store.Get(ctx, *app.CVFilePath)
		if err != nil {
			s.logger.Error("cv content fetch failed",
				zap.String("application_id", id.String()), zap.Error(err))
			msg := "failed to fetch CV content"
			d.CVContentError = &msg
		} else {
			encoded := hex.EncodeToString(content)
			size := len(content)
			d.CVContentHex = &encoded
			d.CVContentSize = &size
		}
	}

	return d, nil
}
