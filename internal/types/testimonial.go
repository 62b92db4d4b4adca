package types

import (
	ierr "github.com/visahub/visahub/internal/errors"
)

const (
	TestimonialMinRating = 1
	TestimonialMaxRating = 5
)

// ValidateTestimonialRating checks a 1-5 star rating.
func ValidateTestimonialRating(rating int) error {
	if rating < TestimonialMinRating || rating > TestimonialMaxRating {
		return ierr.NewErrorf("invalid rating: %d", rating).
			WithHintf("Rating must be between %d and %d", TestimonialMinRating, TestimonialMaxRating).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// TestimonialFilter represents the filter options for listing testimonials.
// Approval and featured states are independent booleans, so the filter
// uses optional pointers rather than a status enum.
type TestimonialFilter struct {
	*QueryFilter
	IsApproved *bool `json:"is_approved,omitempty" form:"is_approved"`
	IsFeatured *bool `json:"is_featured,omitempty" form:"is_featured"`
	MinRating  *int  `json:"min_rating,omitempty" form:"min_rating" validate:"omitempty,min=1,max=5"`
}

func NewDefaultTestimonialFilter() *TestimonialFilter {
	return &TestimonialFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *TestimonialFilter) Validate() error {
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
	}
	if f.MinRating != nil {
		if err := ValidateTestimonialRating(*f.MinRating); err != nil {
			return err
		}
	}
	return nil
}
