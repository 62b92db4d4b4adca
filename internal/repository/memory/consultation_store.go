package memory

import (
	"context"

	"github.com/samber/lo"
	"github.com/visahub/visahub/internal/domain/consultation"
	"github.com/visahub/visahub/internal/types"
)

// InMemoryConsultationStore implements consultation.Repository
type InMemoryConsultationStore struct {
	*InMemoryStore[*consultation.Consultation]
}

// NewInMemoryConsultationStore creates a new in-memory consultation store
func NewInMemoryConsultationStore() *InMemoryConsultationStore {
	return &InMemoryConsultationStore{
		InMemoryStore: NewInMemoryStore[*consultation.Consultation](),
	}
}

func copyConsultation(c *consultation.Consultation) *consultation.Consultation {
	if c == nil {
		return nil
	}

	out := *c
	if c.ScheduledAt != nil {
		t := *c.ScheduledAt
		out.ScheduledAt = &t
	}
	return &out
}

func (s *InMemoryConsultationStore) Create(ctx context.Context, c *consultation.Consultation) error {
	return s.InMemoryStore.Create(ctx, c.ID, copyConsultation(c))
}

func (s *InMemoryConsultationStore) Get(ctx context.Context, id string) (*consultation.Consultation, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyConsultation(c), nil
}

func (s *InMemoryConsultationStore) List(ctx context.Context, filter *types.ConsultationFilter) ([]*consultation.Consultation, error) {
	items, err := s.InMemoryStore.List(ctx, filter, consultationFilterFn, consultationSortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(c *consultation.Consultation, _ int) *consultation.Consultation {
		return copyConsultation(c)
	}), nil
}

func (s *InMemoryConsultationStore) Count(ctx context.Context, filter *types.ConsultationFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, consultationFilterFn)
}

func (s *InMemoryConsultationStore) Update(ctx context.Context, c *consultation.Consultation) error {
	return s.InMemoryStore.Update(ctx, c.ID, copyConsultation(c))
}

func (s *InMemoryConsultationStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

func consultationFilterFn(_ context.Context, c *consultation.Consultation, filter interface{}) bool {
	f, ok := filter.(*types.ConsultationFilter)
	if !ok || f == nil {
		return true
	}

	if f.Status != "" && c.Status != f.Status {
		return false
	}

	return true
}

func consultationSortFn(i, j *consultation.Consultation) bool {
	if !i.CreatedAt.Equal(j.CreatedAt) {
		return i.CreatedAt.After(j.CreatedAt)
	}
	return i.ID > j.ID
}
