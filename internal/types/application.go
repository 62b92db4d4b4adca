package types

import (
	ierr "github.com/visahub/visahub/internal/errors"
)

// ApplicationStatus tracks a visa application through the back office.
// Transitions within the enum are unconstrained; only membership is
// enforced at the boundary.
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusApproved    ApplicationStatus = "approved"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusCompleted   ApplicationStatus = "completed"
)

func (s ApplicationStatus) String() string {
	return string(s)
}

func (s ApplicationStatus) Validate() error {
	allowed := []ApplicationStatus{
		ApplicationStatusPending,
		ApplicationStatusUnderReview,
		ApplicationStatusApproved,
		ApplicationStatusRejected,
		ApplicationStatusCompleted,
	}
	for _, status := range allowed {
		if s == status {
			return nil
		}
	}
	return ierr.NewErrorf("invalid application status: %s", s).
		WithHintf("Status must be one of %v", allowed).
		Mark(ierr.ErrValidation)
}

// ApplicationFilter represents the filter options for listing applications
type ApplicationFilter struct {
	*QueryFilter
	Status  ApplicationStatus `json:"status,omitempty" form:"status"`
	Country string            `json:"country,omitempty" form:"country"`
}

func NewDefaultApplicationFilter() *ApplicationFilter {
	return &ApplicationFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *ApplicationFilter) Validate() error {
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
