package memory

import (
	"context"

	"github.com/samber/lo"
	"github.com/visahub/visahub/internal/domain/testimonial"
	"github.com/visahub/visahub/internal/types"
)

// InMemoryTestimonialStore implements testimonial.Repository
type InMemoryTestimonialStore struct {
	*InMemoryStore[*testimonial.Testimonial]
}

// NewInMemoryTestimonialStore creates a new in-memory testimonial store
func NewInMemoryTestimonialStore() *InMemoryTestimonialStore {
	return &InMemoryTestimonialStore{
		InMemoryStore: NewInMemoryStore[*testimonial.Testimonial](),
	}
}

func copyTestimonial(t *testimonial.Testimonial) *testimonial.Testimonial {
	if t == nil {
		return nil
	}

	out := *t
	return &out
}

func (s *InMemoryTestimonialStore) Create(ctx context.Context, t *testimonial.Testimonial) error {
	return s.InMemoryStore.Create(ctx, t.ID, copyTestimonial(t))
}

func (s *InMemoryTestimonialStore) Get(ctx context.Context, id string) (*testimonial.Testimonial, error) {
	t, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyTestimonial(t), nil
}

func (s *InMemoryTestimonialStore) List(ctx context.Context, filter *types.TestimonialFilter) ([]*testimonial.Testimonial, error) {
	items, err := s.InMemoryStore.List(ctx, filter, testimonialFilterFn, testimonialSortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(t *testimonial.Testimonial, _ int) *testimonial.Testimonial {
		return copyTestimonial(t)
	}), nil
}

func (s *InMemoryTestimonialStore) Count(ctx context.Context, filter *types.TestimonialFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, testimonialFilterFn)
}

func (s *InMemoryTestimonialStore) Update(ctx context.Context, t *testimonial.Testimonial) error {
	return s.InMemoryStore.Update(ctx, t.ID, copyTestimonial(t))
}

func (s *InMemoryTestimonialStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

func testimonialFilterFn(_ context.Context, t *testimonial.Testimonial, filter interface{}) bool {
	f, ok := filter.(*types.TestimonialFilter)
	if !ok || f == nil {
		return true
	}

	if f.IsApproved != nil && t.IsApproved != *f.IsApproved {
		return false
	}

	if f.IsFeatured != nil && t.IsFeatured != *f.IsFeatured {
		return false
	}

	if f.MinRating != nil && t.Rating < *f.MinRating {
		return false
	}

	return true
}

func testimonialSortFn(i, j *testimonial.Testimonial) bool {
	if !i.CreatedAt.Equal(j.CreatedAt) {
		return i.CreatedAt.After(j.CreatedAt)
	}
	return i.ID > j.ID
}
