package dto

import (
	"time"

	"github.com/visahub/visahub/internal/domain/inquiry"
	"github.com/visahub/visahub/internal/types"
	"github.com/visahub/visahub/internal/validator"
)

// CreateInquiryRequest is the public contact-form payload
type CreateInquiryRequest struct {
	Name    string `json:"name" binding:"required" validate:"required"`
	Email   string `json:"email" binding:"required,email" validate:"required,email"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" binding:"required" validate:"required"`
}

func (r *CreateInquiryRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateInquiryRequest) ToInquiry() *inquiry.Inquiry {
	return &inquiry.Inquiry{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INQUIRY),
		Name:      r.Name,
		Email:     r.Email,
		Subject:   r.Subject,
		Message:   r.Message,
		Status:    types.InquiryStatusNew,
		BaseModel: types.GetDefaultBaseModel(),
	}
}

// UpdateInquiryStatusRequest carries the admin-mutable fields
type UpdateInquiryStatusRequest struct {
	Status types.InquiryStatus `json:"status" binding:"required"`
}

func (r *UpdateInquiryStatusRequest) Validate() error {
	return r.Status.Validate()
}

// ReplyInquiryRequest posts an admin reply; the reply is emailed to the
// submitter and the inquiry moves to replied.
type ReplyInquiryRequest struct {
	Reply string `json:"reply" binding:"required" validate:"required"`
}

func (r *ReplyInquiryRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type InquiryResponse struct {
	*inquiry.Inquiry
}

// CreateInquiryResponse is the public acknowledgment
type CreateInquiryResponse struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ListInquiriesResponse represents a paginated list of inquiries
type ListInquiriesResponse = types.ListResponse[*InquiryResponse]
