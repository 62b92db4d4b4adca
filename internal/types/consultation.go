package types

import (
	ierr "github.com/visahub/visahub/internal/errors"
)

// ConsultationStatus tracks a consultation booking.
type ConsultationStatus string

const (
	ConsultationStatusPending   ConsultationStatus = "pending"
	ConsultationStatusConfirmed ConsultationStatus = "confirmed"
	ConsultationStatusCompleted ConsultationStatus = "completed"
	ConsultationStatusCancelled ConsultationStatus = "cancelled"
)

func (s ConsultationStatus) String() string {
	return string(s)
}

func (s ConsultationStatus) Validate() error {
	allowed := []ConsultationStatus{
		ConsultationStatusPending,
		ConsultationStatusConfirmed,
		ConsultationStatusCompleted,
		ConsultationStatusCancelled,
	}
	for _, status := range allowed {
		if s == status {
			return nil
		}
	}
	return ierr.NewErrorf("invalid consultation status: %s", s).
		WithHintf("Status must be one of %v", allowed).
		Mark(ierr.ErrValidation)
}

// ConsultationFilter represents the filter options for listing consultations
type ConsultationFilter struct {
	*QueryFilter
	Status ConsultationStatus `json:"status,omitempty" form:"status"`
}

func NewDefaultConsultationFilter() *ConsultationFilter {
	return &ConsultationFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *ConsultationFilter) Validate() error {
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
