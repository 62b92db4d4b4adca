package memory

import (
	"context"

	"github.com/samber/lo"
	"github.com/visahub/visahub/internal/domain/country"
	"github.com/visahub/visahub/internal/types"
)

// InMemoryCountryStore implements country.Repository
type InMemoryCountryStore struct {
	*InMemoryStore[*country.Country]
}

// NewInMemoryCountryStore creates a new in-memory country store
func NewInMemoryCountryStore() *InMemoryCountryStore {
	return &InMemoryCountryStore{
		InMemoryStore: NewInMemoryStore[*country.Country](),
	}
}

func copyCountry(c *country.Country) *country.Country {
	if c == nil {
		return nil
	}

	out := *c
	return &out
}

func (s *InMemoryCountryStore) Create(ctx context.Context, c *country.Country) error {
	return s.InMemoryStore.Create(ctx, c.ID, copyCountry(c))
}

func (s *InMemoryCountryStore) Get(ctx context.Context, id string) (*country.Country, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyCountry(c), nil
}

func (s *InMemoryCountryStore) List(ctx context.Context, filter *types.CountryFilter) ([]*country.Country, error) {
	items, err := s.InMemoryStore.List(ctx, filter, countryFilterFn, countrySortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(c *country.Country, _ int) *country.Country {
		return copyCountry(c)
	}), nil
}

func (s *InMemoryCountryStore) Count(ctx context.Context, filter *types.CountryFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, countryFilterFn)
}

func (s *InMemoryCountryStore) Update(ctx context.Context, c *country.Country) error {
	return s.InMemoryStore.Update(ctx, c.ID, copyCountry(c))
}

func countryFilterFn(_ context.Context, c *country.Country, filter interface{}) bool {
	f, ok := filter.(*types.CountryFilter)
	if !ok || f == nil {
		return true
	}

	if !f.IncludeInactive && !c.IsActive {
		return false
	}

	if f.Popular != nil && c.IsPopular != *f.Popular {
		return false
	}

	return true
}

func countrySortFn(i, j *country.Country) bool {
	if !i.CreatedAt.Equal(j.CreatedAt) {
		return i.CreatedAt.After(j.CreatedAt)
	}
	return i.ID > j.ID
}
