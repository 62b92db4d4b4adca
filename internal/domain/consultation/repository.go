package consultation

import (
	"context"

	"github.com/visahub/visahub/internal/types"
)

// Repository defines the interface for consultation data access
type Repository interface {
	Create(ctx context.Context, c *Consultation) error
	Get(ctx context.Context, id string) (*Consultation, error)
	List(ctx context.Context, filter *types.ConsultationFilter) ([]*Consultation, error)
	Count(ctx context.Context, filter *types.ConsultationFilter) (int, error)
	Update(ctx context.Context, c *Consultation) error
	Delete(ctx context.Context, id string) error
}
