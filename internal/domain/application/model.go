package application

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/types"
)

// Application represents a visa application submitted through the public
// site and triaged by the back office.
type Application struct {
	// ID is the unique identifier for the application
	ID string `db:"id" json:"id"`

	// ReferenceNumber is the short code quoted back to the applicant
	ReferenceNumber string `db:"reference_number" json:"reference_number"`

	// FirstName is the applicant's first name
	FirstName string `db:"first_name" json:"first_name"`

	// LastName is the applicant's last name
	LastName string `db:"last_name" json:"last_name"`

	// Email is the applicant's email address
	Email string `db:"email" json:"email"`

	// Phone is the applicant's phone number
	Phone string `db:"phone" json:"phone"`

	// Nationality is the applicant's nationality
	Nationality string `db:"nationality" json:"nationality"`

	// PassportNumber is the applicant's passport number
	PassportNumber string `db:"passport_number" json:"passport_number"`

	// DateOfBirth is the applicant's date of birth (YYYY-MM-DD)
	DateOfBirth string `db:"date_of_birth" json:"date_of_birth"`

	// Country is the destination country applied for
	Country string `db:"country" json:"country"`

	// VisaType is the visa category applied for
	VisaType string `db:"visa_type" json:"visa_type"`

	// PurposeOfTravel is the applicant's stated purpose
	PurposeOfTravel string `db:"purpose_of_travel" json:"purpose_of_travel"`

	// IntendedTravelDate is the planned travel date (YYYY-MM-DD)
	IntendedTravelDate string `db:"intended_travel_date" json:"intended_travel_date"`

	// Documents holds references to uploaded supporting documents.
	// Only references are stored here, never the blobs themselves.
	Documents DocumentList `db:"documents" json:"documents"`

	// Notes holds internal remarks added by admins
	Notes string `db:"notes" json:"notes"`

	// Status is the triage state of the application
	Status types.ApplicationStatus `db:"status" json:"status"`

	types.BaseModel
}

// DocumentRef points at a stored document in external storage.
type DocumentRef struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	StorageRef  string    `json:"storage_ref"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// DocumentList is stored as a JSONB column.
type DocumentList []DocumentRef

func (d DocumentList) Value() (driver.Value, error) {
	if d == nil {
		return "[]", nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (d *DocumentList) Scan(src interface{}) error {
	if src == nil {
		*d = DocumentList{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return ierr.NewError("unsupported type for document list").
			Mark(ierr.ErrDatabase)
	}
	return json.Unmarshal(data, d)
}
