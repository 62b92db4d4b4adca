package visatype

import (
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/visahub/visahub/internal/types"
)

// VisaType represents one visa category offered for a country.
// Visa types are soft-deleted via IsActive.
type VisaType struct {
	// ID is the unique identifier for the visa type
	ID string `db:"id" json:"id"`

	// Name is the display name, e.g. "Student Visa"
	Name string `db:"name" json:"name"`

	// CountryID links the visa type to its country
	CountryID string `db:"country_id" json:"country_id"`

	// Category groups visa types, e.g. "study", "work", "visit"
	Category string `db:"category" json:"category"`

	// Description is the marketing copy for the visa page
	Description string `db:"description" json:"description"`

	// Requirements lists the documents the applicant must provide
	Requirements pq.StringArray `db:"requirements" json:"requirements"`

	// ProcessingTime is the typical processing window as free text
	ProcessingTime string `db:"processing_time" json:"processing_time"`

	// GovernmentFee is the official fee charged by the embassy
	GovernmentFee decimal.Decimal `db:"government_fee" json:"government_fee"`

	// ServiceFee is the consultancy's own fee
	ServiceFee decimal.Decimal `db:"service_fee" json:"service_fee"`

	// IsActive gates public visibility (soft delete)
	IsActive bool `db:"is_active" json:"is_active"`

	types.BaseModel
}
