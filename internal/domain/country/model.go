package country

import (
	"github.com/visahub/visahub/internal/types"
)

// Country represents a destination country page on the public site.
// Countries are soft-deleted via IsActive.
type Country struct {
	// ID is the unique identifier for the country
	ID string `db:"id" json:"id"`

	// Name is the display name
	Name string `db:"name" json:"name"`

	// Code is the ISO 3166-1 alpha-2 code
	Code string `db:"code" json:"code"`

	// FlagEmoji is the flag shown next to the name
	FlagEmoji string `db:"flag_emoji" json:"flag_emoji"`

	// Summary is the marketing blurb for the country page
	Summary string `db:"summary" json:"summary"`

	// ProcessingTime is the typical processing window as free text
	ProcessingTime string `db:"processing_time" json:"processing_time"`

	// IsPopular surfaces the country on the home page
	IsPopular bool `db:"is_popular" json:"is_popular"`

	// IsActive gates public visibility (soft delete)
	IsActive bool `db:"is_active" json:"is_active"`

	types.BaseModel
}
