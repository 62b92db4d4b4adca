package types

import (
	"github.com/samber/lo"
	ierr "github.com/visahub/visahub/internal/errors"
)

const (
	FilterDefaultPage  = 1
	FilterDefaultLimit = 10
	FilterMaxLimit     = 100
)

// BaseFilter defines common filtering capabilities
type BaseFilter interface {
	GetPage() int
	GetLimit() int
	GetOffset() int
	Validate() error
	IsUnlimited() bool
}

// QueryFilter represents a generic page/limit filter with optional fields
type QueryFilter struct {
	Page  *int `json:"page,omitempty" form:"page" validate:"omitempty,min=1"`
	Limit *int `json:"limit,omitempty" form:"limit" validate:"omitempty,min=1,max=100"`
}

// NewDefaultQueryFilter returns the filter applied when the caller sends none
func NewDefaultQueryFilter() *QueryFilter {
	return &QueryFilter{
		Page:  lo.ToPtr(FilterDefaultPage),
		Limit: lo.ToPtr(FilterDefaultLimit),
	}
}

// NewNoLimitQueryFilter returns a filter that disables pagination
func NewNoLimitQueryFilter() *QueryFilter {
	return &QueryFilter{
		Page: lo.ToPtr(FilterDefaultPage),
	}
}

// IsUnlimited returns true if this is an unlimited query
func (f QueryFilter) IsUnlimited() bool {
	return f.Limit == nil
}

// GetPage returns the page value or default if not set
func (f QueryFilter) GetPage() int {
	if f.Page == nil {
		return FilterDefaultPage
	}
	return *f.Page
}

// GetLimit returns the limit value or default if not set
func (f QueryFilter) GetLimit() int {
	if f.IsUnlimited() {
		return 0
	}
	return *f.Limit
}

// GetOffset derives the row offset from page and limit
func (f QueryFilter) GetOffset() int {
	if f.IsUnlimited() {
		return 0
	}
	return (f.GetPage() - 1) * f.GetLimit()
}

// Validate validates the filter fields
func (f QueryFilter) Validate() error {
	if f.Page != nil && *f.Page < 1 {
		return ierr.NewError("page must be at least 1").
			WithHint("Page numbering starts at 1").
			Mark(ierr.ErrValidation)
	}
	if f.Limit != nil && (*f.Limit < 1 || *f.Limit > FilterMaxLimit) {
		return ierr.NewError("limit out of range").
			WithHintf("Limit must be between 1 and %d", FilterMaxLimit).
			Mark(ierr.ErrValidation)
	}
	return nil
}
