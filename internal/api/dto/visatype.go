package dto

import (
	"github.com/shopspring/decimal"
	"github.com/visahub/visahub/internal/domain/visatype"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/types"
	"github.com/visahub/visahub/internal/validator"
)

func ierrNegativeFee() error {
	return ierr.NewError("fees cannot be negative").
		WithHint("Fees must be zero or positive").
		Mark(ierr.ErrValidation)
}

// CreateVisaTypeRequest is the admin payload for a new visa type
type CreateVisaTypeRequest struct {
	Name           string          `json:"name" binding:"required" validate:"required"`
	CountryID      string          `json:"country_id" binding:"required" validate:"required"`
	Category       string          `json:"category" validate:"omitempty"`
	Description    string          `json:"description" validate:"omitempty"`
	Requirements   []string        `json:"requirements" validate:"omitempty"`
	ProcessingTime string          `json:"processing_time" validate:"omitempty"`
	GovernmentFee  decimal.Decimal `json:"government_fee"`
	ServiceFee     decimal.Decimal `json:"service_fee"`
}

func (r *CreateVisaTypeRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.GovernmentFee.IsNegative() || r.ServiceFee.IsNegative() {
		return ierrNegativeFee()
	}
	return nil
}

func (r *CreateVisaTypeRequest) ToVisaType() *visatype.VisaType {
	return &visatype.VisaType{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_VISA_TYPE),
		Name:           r.Name,
		CountryID:      r.CountryID,
		Category:       r.Category,
		Description:    r.Description,
		Requirements:   r.Requirements,
		ProcessingTime: r.ProcessingTime,
		GovernmentFee:  r.GovernmentFee,
		ServiceFee:     r.ServiceFee,
		IsActive:       true,
		BaseModel:      types.GetDefaultBaseModel(),
	}
}

// UpdateVisaTypeRequest carries edits; nil fields are untouched
type UpdateVisaTypeRequest struct {
	Name           *string          `json:"name,omitempty"`
	Category       *string          `json:"category,omitempty"`
	Description    *string          `json:"description,omitempty"`
	Requirements   *[]string        `json:"requirements,omitempty"`
	ProcessingTime *string          `json:"processing_time,omitempty"`
	GovernmentFee  *decimal.Decimal `json:"government_fee,omitempty"`
	ServiceFee     *decimal.Decimal `json:"service_fee,omitempty"`
	IsActive       *bool            `json:"is_active,omitempty"`
}

func (r *UpdateVisaTypeRequest) Validate() error {
	if r.GovernmentFee != nil && r.GovernmentFee.IsNegative() {
		return ierrNegativeFee()
	}
	if r.ServiceFee != nil && r.ServiceFee.IsNegative() {
		return ierrNegativeFee()
	}
	return nil
}

type VisaTypeResponse struct {
	*visatype.VisaType
}

// ListVisaTypesResponse represents a paginated list of visa types
type ListVisaTypesResponse = types.ListResponse[*VisaTypeResponse]
