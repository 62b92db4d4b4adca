package blogpost

import (
	"context"

	"github.com/visahub/visahub/internal/types"
)

// Repository defines the interface for blog post data access
type Repository interface {
	Create(ctx context.Context, post *BlogPost) error
	Get(ctx context.Context, id string) (*BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)
	List(ctx context.Context, filter *types.BlogPostFilter) ([]*BlogPost, error)
	Count(ctx context.Context, filter *types.BlogPostFilter) (int, error)
	Update(ctx context.Context, post *BlogPost) error
}
