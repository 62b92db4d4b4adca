package types

import (
	ierr "github.com/visahub/visahub/internal/errors"
)

// InquiryStatus tracks a contact inquiry through triage.
type InquiryStatus string

const (
	InquiryStatusNew     InquiryStatus = "new"
	InquiryStatusRead    InquiryStatus = "read"
	InquiryStatusReplied InquiryStatus = "replied"
	InquiryStatusClosed  InquiryStatus = "closed"
)

func (s InquiryStatus) String() string {
	return string(s)
}

func (s InquiryStatus) Validate() error {
	allowed := []InquiryStatus{
		InquiryStatusNew,
		InquiryStatusRead,
		InquiryStatusReplied,
		InquiryStatusClosed,
	}
	for _, status := range allowed {
		if s == status {
			return nil
		}
	}
	return ierr.NewErrorf("invalid inquiry status: %s", s).
		WithHintf("Status must be one of %v", allowed).
		Mark(ierr.ErrValidation)
}

// InquiryFilter represents the filter options for listing inquiries
type InquiryFilter struct {
	*QueryFilter
	Status InquiryStatus `json:"status,omitempty" form:"status"`
}

func NewDefaultInquiryFilter() *InquiryFilter {
	return &InquiryFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *InquiryFilter) Validate() error {
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
