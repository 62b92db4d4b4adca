package memory

import (
	"context"

	"github.com/samber/lo"
	"github.com/visahub/visahub/internal/domain/inquiry"
	"github.com/visahub/visahub/internal/types"
)

// InMemoryInquiryStore implements inquiry.Repository
type InMemoryInquiryStore struct {
	*InMemoryStore[*inquiry.Inquiry]
}

// NewInMemoryInquiryStore creates a new in-memory inquiry store
func NewInMemoryInquiryStore() *InMemoryInquiryStore {
	return &InMemoryInquiryStore{
		InMemoryStore: NewInMemoryStore[*inquiry.Inquiry](),
	}
}

func copyInquiry(inq *inquiry.Inquiry) *inquiry.Inquiry {
	if inq == nil {
		return nil
	}

	out := *inq
	return &out
}

func (s *InMemoryInquiryStore) Create(ctx context.Context, inq *inquiry.Inquiry) error {
	return s.InMemoryStore.Create(ctx, inq.ID, copyInquiry(inq))
}

func (s *InMemoryInquiryStore) Get(ctx context.Context, id string) (*inquiry.Inquiry, error) {
	inq, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyInquiry(inq), nil
}

func (s *InMemoryInquiryStore) List(ctx context.Context, filter *types.InquiryFilter) ([]*inquiry.Inquiry, error) {
	items, err := s.InMemoryStore.List(ctx, filter, inquiryFilterFn, inquirySortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(inq *inquiry.Inquiry, _ int) *inquiry.Inquiry {
		return copyInquiry(inq)
	}), nil
}

func (s *InMemoryInquiryStore) Count(ctx context.Context, filter *types.InquiryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, inquiryFilterFn)
}

func (s *InMemoryInquiryStore) Update(ctx context.Context, inq *inquiry.Inquiry) error {
	return s.InMemoryStore.Update(ctx, inq.ID, copyInquiry(inq))
}

func (s *InMemoryInquiryStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

func inquiryFilterFn(_ context.Context, inq *inquiry.Inquiry, filter interface{}) bool {
	f, ok := filter.(*types.InquiryFilter)
	if !ok || f == nil {
		return true
	}

	if f.Status != "" && inq.Status != f.Status {
		return false
	}

	return true
}

func inquirySortFn(i, j *inquiry.Inquiry) bool {
	if !i.CreatedAt.Equal(j.CreatedAt) {
		return i.CreatedAt.After(j.CreatedAt)
	}
	return i.ID > j.ID
}
