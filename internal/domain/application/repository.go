package application

import (
	"context"

	"github.com/visahub/visahub/internal/types"
)

// Repository defines the interface for application data access
type Repository interface {
	Create(ctx context.Context, app *Application) error
	Get(ctx context.Context, id string) (*Application, error)
	List(ctx context.Context, filter *types.ApplicationFilter) ([]*Application, error)
	Count(ctx context.Context, filter *types.ApplicationFilter) (int, error)
	Update(ctx context.Context, app *Application) error
	Delete(ctx context.Context, id string) error
}
