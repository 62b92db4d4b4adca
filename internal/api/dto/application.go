package dto

import (
	"time"

	"github.com/visahub/visahub/internal/domain/application"
	"github.com/visahub/visahub/internal/types"
	"github.com/visahub/visahub/internal/validator"
)

// PersonalInfo is the applicant identity block of a submission
type PersonalInfo struct {
	FirstName      string `json:"firstName" binding:"required" validate:"required"`
	LastName       string `json:"lastName" binding:"required" validate:"required"`
	Email          string `json:"email" binding:"required,email" validate:"required,email"`
	Phone          string `json:"phone" binding:"required" validate:"required"`
	Nationality    string `json:"nationality" validate:"omitempty"`
	PassportNumber string `json:"passportNumber" validate:"omitempty"`
	DateOfBirth    string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
}

// VisaInfo is the trip block of a submission
type VisaInfo struct {
	Country            string `json:"country" binding:"required" validate:"required"`
	VisaType           string `json:"visaType" binding:"required" validate:"required"`
	PurposeOfTravel    string `json:"purposeOfTravel" validate:"omitempty"`
	IntendedTravelDate string `json:"intendedTravelDate" validate:"omitempty,datetime=2006-01-02"`
}

// CreateApplicationRequest is the public submission payload. Any
// caller-supplied status is ignored; applications always start pending.
type CreateApplicationRequest struct {
	PersonalInfo PersonalInfo `json:"personalInfo" binding:"required"`
	VisaInfo     VisaInfo     `json:"visaInfo" binding:"required"`
}

func (r *CreateApplicationRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateApplicationRequest) ToApplication() *application.Application {
	return &application.Application{
		ID:                 types.GenerateUUIDWithPrefix(types.UUID_PREFIX_APPLICATION),
		ReferenceNumber:    types.GenerateReferenceNumber(types.REFERENCE_PREFIX_APPLICATION),
		FirstName:          r.PersonalInfo.FirstName,
		LastName:           r.PersonalInfo.LastName,
		Email:              r.PersonalInfo.Email,
		Phone:              r.PersonalInfo.Phone,
		Nationality:        r.PersonalInfo.Nationality,
		PassportNumber:     r.PersonalInfo.PassportNumber,
		DateOfBirth:        r.PersonalInfo.DateOfBirth,
		Country:            r.VisaInfo.Country,
		VisaType:           r.VisaInfo.VisaType,
		PurposeOfTravel:    r.VisaInfo.PurposeOfTravel,
		IntendedTravelDate: r.VisaInfo.IntendedTravelDate,
		Documents:          application.DocumentList{},
		Status:             types.ApplicationStatusPending,
		BaseModel:          types.GetDefaultBaseModel(),
	}
}

// UpdateApplicationStatusRequest carries the admin-mutable fields
type UpdateApplicationStatusRequest struct {
	Status types.ApplicationStatus `json:"status" binding:"required"`
	Notes  *string                 `json:"notes,omitempty"`
}

func (r *UpdateApplicationStatusRequest) Validate() error {
	return r.Status.Validate()
}

// UploadDocumentResponse reports a stored document reference
type UploadDocumentResponse struct {
	DocumentID string `json:"document_id"`
	FileName   string `json:"file_name"`
	StorageRef string `json:"storage_ref"`
}

type ApplicationResponse struct {
	*application.Application
}

// CreateApplicationResponse is the public acknowledgment; it exposes the
// reference number rather than the full record.
type CreateApplicationResponse struct {
	ID              string    `json:"id"`
	ReferenceNumber string    `json:"reference_number"`
	Status          string    `json:"status"`
	Message         string    `json:"message"`
	CreatedAt       time.Time `json:"created_at"`
}

// ListApplicationsResponse represents a paginated list of applications
type ListApplicationsResponse = types.ListResponse[*ApplicationResponse]

// NewDocumentRef builds the document entry recorded against an
// application after a successful upload.
func NewDocumentRef(fileName, contentType, storageRef string) application.DocumentRef {
	return application.DocumentRef{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DOCUMENT),
		FileName:    fileName,
		ContentType: contentType,
		StorageRef:  storageRef,
		UploadedAt:  time.Now().UTC(),
	}
}
