package testimonial

import (
	"context"

	"github.com/visahub/visahub/internal/types"
)

// Repository defines the interface for testimonial data access
type Repository interface {
	Create(ctx context.Context, t *Testimonial) error
	Get(ctx context.Context, id string) (*Testimonial, error)
	List(ctx context.Context, filter *types.TestimonialFilter) ([]*Testimonial, error)
	Count(ctx context.Context, filter *types.TestimonialFilter) (int, error)
	Update(ctx context.Context, t *Testimonial) error
	Delete(ctx context.Context, id string) error
}
