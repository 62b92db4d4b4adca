package dto

import (
	"time"

	"github.com/visahub/visahub/internal/domain/consultation"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/types"
	"github.com/visahub/visahub/internal/validator"
)

// ClientInfo identifies the person booking a consultation
type ClientInfo struct {
	Name  string `json:"name" binding:"required" validate:"required"`
	Email string `json:"email" binding:"required,email" validate:"required,email"`
	Phone string `json:"phone" binding:"required" validate:"required"`
}

// ConsultationDetails describes the requested session
type ConsultationDetails struct {
	VisaType      string `json:"visaType" binding:"required" validate:"required"`
	Country       string `json:"country" binding:"required" validate:"required"`
	PreferredDate string `json:"preferredDate" binding:"required" validate:"required,datetime=2006-01-02"`
	PreferredTime string `json:"preferredTime" binding:"required" validate:"required"`
	Message       string `json:"message" validate:"omitempty"`
}

// CreateConsultationRequest is the public booking payload
type CreateConsultationRequest struct {
	ClientInfo          ClientInfo          `json:"clientInfo" binding:"required"`
	ConsultationDetails ConsultationDetails `json:"consultationDetails" binding:"required"`
}

func (r *CreateConsultationRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateConsultationRequest) ToConsultation() *consultation.Consultation {
	return &consultation.Consultation{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CONSULTATION),
		ClientName:    r.ClientInfo.Name,
		ClientEmail:   r.ClientInfo.Email,
		ClientPhone:   r.ClientInfo.Phone,
		VisaType:      r.ConsultationDetails.VisaType,
		Country:       r.ConsultationDetails.Country,
		PreferredDate: r.ConsultationDetails.PreferredDate,
		PreferredTime: r.ConsultationDetails.PreferredTime,
		Message:       r.ConsultationDetails.Message,
		Status:        types.ConsultationStatusPending,
		BaseModel:     types.GetDefaultBaseModel(),
	}
}

// UpdateConsultationStatusRequest carries the admin-mutable fields.
// ScheduledAt is required when moving to confirmed.
type UpdateConsultationStatusRequest struct {
	Status      types.ConsultationStatus `json:"status" binding:"required"`
	AdminNotes  *string                  `json:"admin_notes,omitempty"`
	ScheduledAt *time.Time               `json:"scheduled_at,omitempty"`
}

func (r *UpdateConsultationStatusRequest) Validate() error {
	if err := r.Status.Validate(); err != nil {
		return err
	}
	if r.Status == types.ConsultationStatusConfirmed && r.ScheduledAt == nil {
		return ierr.NewError("scheduled_at is required when confirming").
			WithHint("Provide scheduled_at to confirm a consultation").
			Mark(ierr.ErrValidation)
	}
	return nil
}

type ConsultationResponse struct {
	*consultation.Consultation
}

// CreateConsultationResponse is the public acknowledgment
type CreateConsultationResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ListConsultationsResponse represents a paginated list of consultations
type ListConsultationsResponse = types.ListResponse[*ConsultationResponse]
