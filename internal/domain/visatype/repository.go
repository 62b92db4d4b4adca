package visatype

import (
	"context"

	"github.com/visahub/visahub/internal/types"
)

// Repository defines the interface for visa type data access
type Repository interface {
	Create(ctx context.Context, vt *VisaType) error
	Get(ctx context.Context, id string) (*VisaType, error)
	List(ctx context.Context, filter *types.VisaTypeFilter) ([]*VisaType, error)
	Count(ctx context.Context, filter *types.VisaTypeFilter) (int, error)
	Update(ctx context.Context, vt *VisaType) error
}
