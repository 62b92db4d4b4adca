package country

import (
	"context"

	"github.com/visahub/visahub/internal/types"
)

// Repository defines the interface for country data access
type Repository interface {
	Create(ctx context.Context, c *Country) error
	Get(ctx context.Context, id string) (*Country, error)
	List(ctx context.Context, filter *types.CountryFilter) ([]*Country, error)
	Count(ctx context.Context, filter *types.CountryFilter) (int, error)
	Update(ctx context.Context, c *Country) error
}
