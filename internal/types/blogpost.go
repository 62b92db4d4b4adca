package types

import (
	ierr "github.com/visahub/visahub/internal/errors"
)

// BlogPostStatus tracks the editorial state of a post. Archiving is the
// soft-delete state; archived posts never appear in public listings.
type BlogPostStatus string

const (
	BlogPostStatusDraft     BlogPostStatus = "draft"
	BlogPostStatusPublished BlogPostStatus = "published"
	BlogPostStatusArchived  BlogPostStatus = "archived"
)

func (s BlogPostStatus) String() string {
	return string(s)
}

func (s BlogPostStatus) Validate() error {
	allowed := []BlogPostStatus{
		BlogPostStatusDraft,
		BlogPostStatusPublished,
		BlogPostStatusArchived,
	}
	for _, status := range allowed {
		if s == status {
			return nil
		}
	}
	return ierr.NewErrorf("invalid blog post status: %s", s).
		WithHintf("Status must be one of %v", allowed).
		Mark(ierr.ErrValidation)
}

// BlogPostFilter represents the filter options for listing blog posts
type BlogPostFilter struct {
	*QueryFilter
	Status        BlogPostStatus `json:"status,omitempty" form:"status"`
	Tag           string         `json:"tag,omitempty" form:"tag"`
	PublishedOnly bool           `json:"-" form:"-"`
}

func NewDefaultBlogPostFilter() *BlogPostFilter {
	return &BlogPostFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *BlogPostFilter) Validate() error {
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
	}
	if f.Status != "" {
		if err := f.Status.Validate(); err != nil {
			return err
		}
	}
	return nil
}
