package application

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "jobportal/internal/domain/application"
)

// MaxCVBytes bounds the decoded CV size. Uploads above this are
// rejected at validation time rather than forwarded to the store.
const MaxCVBytes = 10 << 20

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type SubmitInput struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Experience  string
	Location    string
	Skills      string
	CoverLetter string

	// CV is the base64-encoded file content. It is only considered
	// when CVFileName is present as well.
	CV         string
	CVFileName string
	CVFileType string
}

type SubmitResult struct {
	ApplicationID uuid.UUID
	SubmittedAt   time.Time
}

func (s *Service) Submit(ctx context.Context, in SubmitInput) (SubmitResult, error) {
	if err := validateSubmission(in); err != nil {
		return SubmitResult{}, err
	}

	// The id is generated before any storage write so the CV object
	// key can embed it.
	id := s.newID()
	now := s.now().UTC()

	var cvFilePath *string
	if in.CV != "" && in.CVFileName != "" {
		key, err := s.uploadCV(ctx, id, now, in)
		if err != nil {
			return SubmitResult{}, err
		}
		cvFilePath = &key
	}

	if err := s.ensureSchema(ctx); err != nil {
		s.logger.Error("schema initialization failed", zap.Error(err))
		return SubmitResult{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	app := domain.Application{
		ID:          id,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       optional(in.Phone),
		Experience:  in.Experience,
		Location:    optional(in.Location),
		Skills:      in.Skills,
		CoverLetter: optional(in.CoverLetter),
		CVFilePath:  cvFilePath,
	}
	if cvFilePath != nil {
		app.CVFileName = optional(in.CVFileName)
		app.CVFileType = optional(cvContentType(in.CVFileType))
	}

	if err := s.repo.Insert(ctx, app); err != nil {
		s.logger.Error("application insert failed",
			zap.String("application_id", id.String()), zap.Error(err))
		return SubmitResult{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.invalidateListCache(ctx)

	s.logger.Info("application saved",
		zap.String("application_id", id.String()), zap.String("email", in.Email))

	return SubmitResult{ApplicationID: id, SubmittedAt: now}, nil
}

func (s *Service) uploadCV(ctx context.Context, id uuid.UUID, now time.Time, in SubmitInput) (string, error) {
	content, err := base64.StdEncoding.DecodeString(in.CV)
	if err != nil {
		return "", &ValidationError{Reason: "Invalid CV file encoding"}
	}
	if len(content) == 0 {
		return "", &ValidationError{Reason: "CV file is empty"}
	}
	if len(content) > MaxCVBytes {
		return "", &ValidationError{Reason: "CV file exceeds the maximum allowed size"}
	}

	key := fmt.Sprintf("cvs/%s_%s.%s", id, now.Format("20060102_150405"), cvExtension(in.CVFileName))

	err = s.store.Put(ctx, key, content, cvContentType(in.CVFileType), map[string]string{
		"original_name":  in.CVFileName,
		"application_id": id.String(),
		"uploaded_at":    now.Format(time.RFC3339),
	})
	if err != nil {
		s.logger.Error("cv upload failed",
			zap.String("application_id", id.String()), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}

	return key, nil
}

func (s *Service) invalidateListCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, listCacheKeyPrefix+"*"); err != nil {
		s.logger.Warn("list cache invalidation failed", zap.Error(err))
	}
}

func validateSubmission(in SubmitInput) error {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"firstName", in.FirstName},
		{"lastName", in.LastName},
		{"email", in.Email},
		{"experience", in.Experience},
		{"skills", in.Skills},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{MissingFields: missing}
	}

	if !emailPattern.MatchString(in.Email) {
		return &ValidationError{Reason: "Invalid email format"}
	}
	return nil
}

func cvExtension(fileName string) string {
	if i := strings.LastIndex(fileName, "."); i >= 0 && i < len(fileName)-1 {
		return fileName[i+1:]
	}
	return "pdf"
}

func cvContentType(fileType string) string {
	if fileType == "" {
		return "application/pdf"
	}
	return fileType
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
