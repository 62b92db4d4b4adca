package memory

import (
	"context"

	"github.com/samber/lo"
	"github.com/visahub/visahub/internal/domain/application"
	"github.com/visahub/visahub/internal/types"
)

// InMemoryApplicationStore implements application.Repository
type InMemoryApplicationStore struct {
	*InMemoryStore[*application.Application]
}

// NewInMemoryApplicationStore creates a new in-memory application store
func NewInMemoryApplicationStore() *InMemoryApplicationStore {
	return &InMemoryApplicationStore{
		InMemoryStore: NewInMemoryStore[*application.Application](),
	}
}

func copyApplication(a *application.Application) *application.Application {
	if a == nil {
		return nil
	}

	out := *a
	out.Documents = append(application.DocumentList{}, a.Documents...)
	return &out
}

func (s *InMemoryApplicationStore) Create(ctx context.Context, a *application.Application) error {
	return s.InMemoryStore.Create(ctx, a.ID, copyApplication(a))
}

func (s *InMemoryApplicationStore) Get(ctx context.Context, id string) (*application.Application, error) {
	a, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyApplication(a), nil
}

func (s *InMemoryApplicationStore) List(ctx context.Context, filter *types.ApplicationFilter) ([]*application.Application, error) {
	items, err := s.InMemoryStore.List(ctx, filter, applicationFilterFn, applicationSortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(a *application.Application, _ int) *application.Application {
		return copyApplication(a)
	}), nil
}

func (s *InMemoryApplicationStore) Count(ctx context.Context, filter *types.ApplicationFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, applicationFilterFn)
}

func (s *InMemoryApplicationStore) Update(ctx context.Context, a *application.Application) error {
	return s.InMemoryStore.Update(ctx, a.ID, copyApplication(a))
}

func (s *InMemoryApplicationStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

// applicationFilterFn implements filtering logic for applications
func applicationFilterFn(_ context.Context, a *application.Application, filter interface{}) bool {
	f, ok := filter.(*types.ApplicationFilter)
	if !ok || f == nil {
		return true
	}

	if f.Status != "" && a.Status != f.Status {
		return false
	}

	if f.Country != "" && a.Country != f.Country {
		return false
	}

	return true
}

// applicationSortFn sorts newest-first with id as a deterministic tiebreak
func applicationSortFn(i, j *application.Application) bool {
	if !i.CreatedAt.Equal(j.CreatedAt) {
		return i.CreatedAt.After(j.CreatedAt)
	}
	return i.ID > j.ID
}
