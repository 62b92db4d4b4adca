package auth

import (
	"context"

	"github.com/visahub/visahub/internal/config"
	"github.com/visahub/visahub/internal/types"
)

// Claims is the identity carried by a validated admin token
type Claims struct {
	UserID string
	Email  string
}

type AuthRequest struct {
	Email    string
	Password string
}

type AuthResponse struct {
	AuthToken string
	UserID    string
}

// Provider verifies admin credentials and tokens
type Provider interface {
	GetProvider() types.AuthProvider
	Login(ctx context.Context, req AuthRequest) (*AuthResponse, error)
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}

// NewProvider selects the provider from configuration. Config validation
// has already rejected the local provider outside local deployments.
func NewProvider(cfg *config.Configuration) Provider {
	switch types.AuthProvider(cfg.Auth.Provider) {
	case types.AuthProviderLocal:
		return NewLocalAuth(cfg)
	default:
		return NewSupabaseAuth(cfg)
	}
}
