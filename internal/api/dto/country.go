package dto

import (
	"strings"

	"github.com/visahub/visahub/internal/domain/country"
	"github.com/visahub/visahub/internal/types"
	"github.com/visahub/visahub/internal/validator"
)

// CreateCountryRequest is the admin payload for a new destination country
type CreateCountryRequest struct {
	Name           string `json:"name" binding:"required" validate:"required"`
	Code           string `json:"code" binding:"required" validate:"required,len=2,alpha"`
	FlagEmoji      string `json:"flag_emoji" validate:"omitempty"`
	Summary        string `json:"summary" validate:"omitempty"`
	ProcessingTime string `json:"processing_time" validate:"omitempty"`
	IsPopular      bool   `json:"is_popular"`
}

func (r *CreateCountryRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateCountryRequest) ToCountry() *country.Country {
	return &country.Country{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_COUNTRY),
		Name:           r.Name,
		Code:           strings.ToUpper(r.Code),
		FlagEmoji:      r.FlagEmoji,
		Summary:        r.Summary,
		ProcessingTime: r.ProcessingTime,
		IsPopular:      r.IsPopular,
		IsActive:       true,
		BaseModel:      types.GetDefaultBaseModel(),
	}
}

// UpdateCountryRequest carries edits; nil fields are untouched
type UpdateCountryRequest struct {
	Name           *string `json:"name,omitempty"`
	Code           *string `json:"code,omitempty" validate:"omitempty,len=2,alpha"`
	FlagEmoji      *string `json:"flag_emoji,omitempty"`
	Summary        *string `json:"summary,omitempty"`
	ProcessingTime *string `json:"processing_time,omitempty"`
	IsPopular      *bool   `json:"is_popular,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

func (r *UpdateCountryRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type CountryResponse struct {
	*country.Country
}

// ListCountriesResponse represents a paginated list of countries
type ListCountriesResponse = types.ListResponse[*CountryResponse]
