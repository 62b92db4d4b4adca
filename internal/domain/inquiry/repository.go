package inquiry

import (
	"context"

	"github.com/visahub/visahub/internal/types"
)

// Repository defines the interface for inquiry data access
type Repository interface {
	Create(ctx context.Context, inq *Inquiry) error
	Get(ctx context.Context, id string) (*Inquiry, error)
	List(ctx context.Context, filter *types.InquiryFilter) ([]*Inquiry, error)
	Count(ctx context.Context, filter *types.InquiryFilter) (int, error)
	Update(ctx context.Context, inq *Inquiry) error
	Delete(ctx context.Context, id string) error
}
