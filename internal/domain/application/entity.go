package application

import (
	"time"

	"github.com/google/uuid"
)

// Application is one submitted job application. Rows are insert-only;
// nothing in the service mutates or deletes them.
type Application struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	Phone       *string
	Experience  string
	Location    *string
	Skills      string
	CoverLetter *string

	// CV fields are all nil together when no file was supplied.
	CVFilePath *string
	CVFileName *string
	CVFileType *string

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasCV reports whether a stored CV object is referenced by this row.
func (a Application) HasCV() bool {
	return a.CVFilePath != nil && *a.CVFilePath != ""
}
