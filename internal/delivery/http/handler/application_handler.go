package handler

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"jobportal/internal/delivery/http/dto"
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/pkg/response"
	appuc "jobportal/internal/usecase/application"
)

type ApplicationHandler struct {
	uc *appuc.Service
}

type submitRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Experience  string `json:"experience"`
	Location    string `json:"location"`
	Skills      string `json:"skills"`
	CoverLetter string `json:"coverLetter"`
	CV          string `json:"cv"`
	CVFileName  string `json:"cvFileName"`
	CVFileType  string `json:"cvFileType"`
}

type submitResponse struct {
	Message       string `json:"message"`
	ApplicationID string `json:"application_id"`
	SubmittedAt   string `json:"submitted_at"`
}

func NewApplicationHandler(uc *appuc.Service) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.Submit)
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
}

func (h *ApplicationHandler) Submit(c fiber.Ctx) error {
	var req submitRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid JSON format", err)
	}

	res, err := h.uc.Submit(c.Context(), appuc.SubmitInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		Experience:  req.Experience,
		Location:    req.Location,
		Skills:      req.Skills,
		CoverLetter: req.CoverLetter,
		CV:          req.CV,
		CVFileName:  req.CVFileName,
		CVFileType:  req.CVFileType,
	})
	if err != nil {
		return mapApplicationError(err)
	}

	return response.JSON(c, fiber.StatusOK, submitResponse{
		Message:       "Application submitted successfully",
		ApplicationID: res.ApplicationID.String(),
		SubmittedAt:   res.SubmittedAt.UTC().Format(time.RFC3339),
	})
}

func (h *ApplicationHandler) Get(c fiber.Ctx) error {
	rawID := strings.TrimSpace(c.Params("id"))
	if rawID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Application ID is required", nil)
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application ID", err)
	}

	includeContent := strings.EqualFold(c.Query("include_cv_content"), "true")

	detail, err := h.uc.Get(c.Context(), id, appuc.GetOptions{IncludeCVContent: includeContent})
	if err != nil {
		return mapApplicationError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.FromDetail(detail))
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	params := appuc.ListParams{
		Page:       parseQueryInt(c, "page", 1),
		Limit:      parseQueryInt(c, "limit", appuc.DefaultPageSize),
		Email:      c.Query("email"),
		Experience: c.Query("experience"),
	}

	var err error
	if params.DateFrom, err = parseQueryDate(c, "date_from"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid date_from format", err)
	}
	if params.DateTo, err = parseQueryDate(c, "date_to"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid date_to format", err)
	}

	result, err := h.uc.List(c.Context(), params)
	if err != nil {
		return mapApplicationError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.FromListResult(result, listFilters(c)))
}

func mapApplicationError(err error) error {
	var vErr *appuc.ValidationError
	switch {
	case errors.As(err, &vErr):
		return middleware.NewAppError(fiber.StatusBadRequest, vErr.Error(), nil)
	case errors.Is(err, appuc.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", err)
	case errors.Is(err, appuc.ErrUpload):
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to upload CV file", err)
	case errors.Is(err, appuc.ErrPersistence):
		return middleware.NewAppError(fiber.StatusInternalServerError, "Database error occurred", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}

// parseQueryInt falls back to the default for absent, malformed, or
// non-positive values.
func parseQueryInt(c fiber.Ctx, key string, def int) int {
	s := c.Query(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return def
	}
	return v
}

func parseQueryDate(c fiber.Ctx, key string) (*time.Time, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("unsupported date format: " + s)
}

func listFilters(c fiber.Ctx) dto.ListFiltersResponse {
	q := func(key string) *string {
		if v := c.Query(key); v != "" {
			return &v
		}
		return nil
	}
	return dto.ListFiltersResponse{
		Email:      q("email"),
		Experience: q("experience"),
		DateFrom:   q("date_from"),
		DateTo:     q("date_to"),
	}
}
