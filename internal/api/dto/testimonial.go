package dto

import (
	"time"

	"github.com/visahub/visahub/internal/domain/testimonial"
	"github.com/visahub/visahub/internal/types"
	"github.com/visahub/visahub/internal/validator"
)

// CreateTestimonialRequest is the public submission payload. New
// testimonials are never approved or featured, whatever the caller sends.
type CreateTestimonialRequest struct {
	ClientName    string `json:"clientName" binding:"required" validate:"required"`
	ClientEmail   string `json:"clientEmail" binding:"required,email" validate:"required,email"`
	ClientCountry string `json:"clientCountry" validate:"omitempty"`
	VisaType      string `json:"visaType" validate:"omitempty"`
	Rating        int    `json:"rating" binding:"required" validate:"required"`
	Text          string `json:"testimonialText" binding:"required" validate:"required"`
}

func (r *CreateTestimonialRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return types.ValidateTestimonialRating(r.Rating)
}

func (r *CreateTestimonialRequest) ToTestimonial() *testimonial.Testimonial {
	return &testimonial.Testimonial{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TESTIMONIAL),
		ClientName:    r.ClientName,
		ClientEmail:   r.ClientEmail,
		ClientCountry: r.ClientCountry,
		VisaType:      r.VisaType,
		Rating:        r.Rating,
		Text:          r.Text,
		IsApproved:    false,
		IsFeatured:    false,
		BaseModel:     types.GetDefaultBaseModel(),
	}
}

// UpdateTestimonialRequest flips the moderation flags
type UpdateTestimonialRequest struct {
	IsApproved *bool `json:"is_approved,omitempty"`
	IsFeatured *bool `json:"is_featured,omitempty"`
}

type TestimonialResponse struct {
	*testimonial.Testimonial
}

// CreateTestimonialResponse is the public acknowledgment
type CreateTestimonialResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ListTestimonialsResponse represents a paginated list of testimonials
type ListTestimonialsResponse = types.ListResponse[*TestimonialResponse]
