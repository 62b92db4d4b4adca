package memory

import (
	"context"

	"github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/visahub/visahub/internal/domain/visatype"
	"github.com/visahub/visahub/internal/types"
)

// InMemoryVisaTypeStore implements visatype.Repository
type InMemoryVisaTypeStore struct {
	*InMemoryStore[*visatype.VisaType]
}

// NewInMemoryVisaTypeStore creates a new in-memory visa type store
func NewInMemoryVisaTypeStore() *InMemoryVisaTypeStore {
	return &InMemoryVisaTypeStore{
		InMemoryStore: NewInMemoryStore[*visatype.VisaType](),
	}
}

func copyVisaType(vt *visatype.VisaType) *visatype.VisaType {
	if vt == nil {
		return nil
	}

	out := *vt
	out.Requirements = append(pq.StringArray{}, vt.Requirements...)
	return &out
}

func (s *InMemoryVisaTypeStore) Create(ctx context.Context, vt *visatype.VisaType) error {
	return s.InMemoryStore.Create(ctx, vt.ID, copyVisaType(vt))
}

func (s *InMemoryVisaTypeStore) Get(ctx context.Context, id string) (*visatype.VisaType, error) {
	vt, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyVisaType(vt), nil
}

func (s *InMemoryVisaTypeStore) List(ctx context.Context, filter *types.VisaTypeFilter) ([]*visatype.VisaType, error) {
	items, err := s.InMemoryStore.List(ctx, filter, visaTypeFilterFn, visaTypeSortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(vt *visatype.VisaType, _ int) *visatype.VisaType {
		return copyVisaType(vt)
	}), nil
}

func (s *InMemoryVisaTypeStore) Count(ctx context.Context, filter *types.VisaTypeFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, visaTypeFilterFn)
}

func (s *InMemoryVisaTypeStore) Update(ctx context.Context, vt *visatype.VisaType) error {
	return s.InMemoryStore.Update(ctx, vt.ID, copyVisaType(vt))
}

func visaTypeFilterFn(_ context.Context, vt *visatype.VisaType, filter interface{}) bool {
	f, ok := filter.(*types.VisaTypeFilter)
	if !ok || f == nil {
		return true
	}

	if !f.IncludeInactive && !vt.IsActive {
		return false
	}

	if f.CountryID != "" && vt.CountryID != f.CountryID {
		return false
	}

	if f.Category != "" && vt.Category != f.Category {
		return false
	}

	return true
}

func visaTypeSortFn(i, j *visatype.VisaType) bool {
	if !i.CreatedAt.Equal(j.CreatedAt) {
		return i.CreatedAt.After(j.CreatedAt)
	}
	return i.ID > j.ID
}
