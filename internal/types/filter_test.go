package types

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestQueryFilterDefaults(t *testing.T) {
	f := NewDefaultQueryFilter()
	assert.Equal(t, FilterDefaultPage, f.GetPage())
	assert.Equal(t, FilterDefaultLimit, f.GetLimit())
	assert.Equal(t, 0, f.GetOffset())
	assert.False(t, f.IsUnlimited())
}

func TestQueryFilterOffset(t *testing.T) {
	f := QueryFilter{Page: lo.ToPtr(3), Limit: lo.ToPtr(20)}
	assert.Equal(t, 40, f.GetOffset())
}

func TestQueryFilterUnlimited(t *testing.T) {
	f := QueryFilter{Page: lo.ToPtr(1)}
	assert.True(t, f.IsUnlimited())
	assert.Equal(t, 0, f.GetLimit())
	assert.Equal(t, 0, f.GetOffset())
}

func TestQueryFilterValidate(t *testing.T) {
	assert.NoError(t, QueryFilter{}.Validate())
	assert.NoError(t, QueryFilter{Page: lo.ToPtr(1), Limit: lo.ToPtr(FilterMaxLimit)}.Validate())
	assert.Error(t, QueryFilter{Page: lo.ToPtr(0)}.Validate())
	assert.Error(t, QueryFilter{Limit: lo.ToPtr(0)}.Validate())
	assert.Error(t, QueryFilter{Limit: lo.ToPtr(FilterMaxLimit + 1)}.Validate())
}

func TestNewPaginationResponse(t *testing.T) {
	p := NewPaginationResponse(25, 10, 2)
	assert.Equal(t, 25, p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 10, p.Limit)

	// exact multiple
	p = NewPaginationResponse(30, 10, 1)
	assert.Equal(t, 3, p.TotalPages)

	// unlimited queries report a single page
	p = NewPaginationResponse(500, 0, 1)
	assert.Equal(t, 1, p.TotalPages)

	p = NewPaginationResponse(0, 10, 1)
	assert.Equal(t, 0, p.TotalPages)
}

func TestStatusValidation(t *testing.T) {
	assert.NoError(t, ApplicationStatusUnderReview.Validate())
	assert.Error(t, ApplicationStatus("escalated").Validate())

	assert.NoError(t, ConsultationStatusCancelled.Validate())
	assert.Error(t, ConsultationStatus("rescheduled").Validate())

	assert.NoError(t, InquiryStatusReplied.Validate())
	assert.Error(t, InquiryStatus("spam").Validate())

	assert.NoError(t, BlogPostStatusArchived.Validate())
	assert.Error(t, BlogPostStatus("deleted").Validate())
}

func TestValidateTestimonialRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.NoError(t, ValidateTestimonialRating(rating))
	}
	assert.Error(t, ValidateTestimonialRating(0))
	assert.Error(t, ValidateTestimonialRating(6))
	assert.Error(t, ValidateTestimonialRating(-1))
}
