package dto

import (
	"time"

	domain "jobportal/internal/domain/application"
	appuc "jobportal/internal/usecase/application"
)

type ApplicationResponse struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Experience  string  `json:"experience"`
	Location    *string `json:"location"`
	Skills      string  `json:"skills"`
	CoverLetter *string `json:"cover_letter"`
	CVFilePath  *string `json:"cv_file_path"`
	CVFileName  *string `json:"cv_file_name"`
	CVFileType  *string `json:"cv_file_type"`
	SubmittedAt string  `json:"submitted_at"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type ApplicationDetailResponse struct {
	ApplicationResponse

	// CVDownloadURL renders as an explicit null when the CV exists
	// but signing failed, so clients can tell "no link" from "no key".
	CVDownloadURL  *string `json:"cv_download_url"`
	CVContentHex   *string `json:"cv_content_hex,omitempty"`
	CVContentSize  *int    `json:"cv_content_size,omitempty"`
	CVContentError *string `json:"cv_content_error,omitempty"`
}

type ApplicationListItemResponse struct {
	ApplicationResponse

	CoverLetterPreview *string `json:"cover_letter_preview"`
}

type PaginationResponse struct {
	CurrentPage int  `json:"current_page"`
	PerPage     int  `json:"per_page"`
	TotalCount  int  `json:"total_count"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

type ListFiltersResponse struct {
	Email      *string `json:"email"`
	Experience *string `json:"experience"`
	DateFrom   *string `json:"date_from"`
	DateTo     *string `json:"date_to"`
}

type ApplicationListResponse struct {
	Applications []ApplicationListItemResponse `json:"applications"`
	Pagination   PaginationResponse            `json:"pagination"`
	Filters      ListFiltersResponse           `json:"filters"`
}

func FromApplication(a domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID.String(),
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Email:       a.Email,
		Phone:       a.Phone,
		Experience:  a.Experience,
		Location:    a.Location,
		Skills:      a.Skills,
		CoverLetter: a.CoverLetter,
		CVFilePath:  a.CVFilePath,
		CVFileName:  a.CVFileName,
		CVFileType:  a.CVFileType,
		SubmittedAt: isoTime(a.SubmittedAt),
		CreatedAt:   isoTime(a.CreatedAt),
		UpdatedAt:   isoTime(a.UpdatedAt),
	}
}

func FromDetail(d appuc.Detail) ApplicationDetailResponse {
	return ApplicationDetailResponse{
		ApplicationResponse: FromApplication(d.App),
		CVDownloadURL:       d.CVDownloadURL,
		CVContentHex:        d.CVContentHex,
		CVContentSize:       d.CVContentSize,
		CVContentError:      d.CVContentError,
	}
}

func FromListResult(r appuc.ListResult, f ListFiltersResponse) ApplicationListResponse {
	items := make([]ApplicationListItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		resp := FromApplication(it.App)
		items = append(items, ApplicationListItemResponse{
			ApplicationResponse: resp,
			CoverLetterPreview:  it.CoverLetterPreview,
		})
	}

	return ApplicationListResponse{
		Applications: items,
		Pagination: PaginationResponse{
			CurrentPage: r.Pagination.CurrentPage,
			PerPage:     r.Pagination.PerPage,
			TotalCount:  r.Pagination.TotalCount,
			TotalPages:  r.Pagination.TotalPages,
			HasNext:     r.Pagination.HasNext,
			HasPrev:     r.Pagination.HasPrev,
		},
		Filters: f,
	}
}

func isoTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
