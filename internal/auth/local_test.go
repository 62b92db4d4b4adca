package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visahub/visahub/internal/config"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/types"
	"golang.org/x/crypto/bcrypt"
)

func newLocalTestConfig(t *testing.T, password string) *config.Configuration {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Configuration{
		Auth: config.AuthConfig{
			Provider: string(types.AuthProviderLocal),
			Secret:   "test-signing-secret",
			Local: config.LocalAuthConfig{
				AdminEmail:        "admin@visahub.test",
				AdminPasswordHash: string(hash),
			},
		},
	}
}

func TestLocalAuthLogin(t *testing.T) {
	provider := NewLocalAuth(newLocalTestConfig(t, "correct-horse"))
	ctx := context.Background()

	resp, err := provider.Login(ctx, AuthRequest{
		Email:    "admin@visahub.test",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AuthToken)
	assert.NotEmpty(t, resp.UserID)

	// email comparison is case insensitive
	_, err = provider.Login(ctx, AuthRequest{
		Email:    "Admin@VisaHub.Test",
		Password: "correct-horse",
	})
	assert.NoError(t, err)
}

func TestLocalAuthLoginRejectsBadCredentials(t *testing.T) {
	provider := NewLocalAuth(newLocalTestConfig(t, "correct-horse"))
	ctx := context.Background()

	_, err := provider.Login(ctx, AuthRequest{
		Email:    "admin@visahub.test",
		Password: "wrong-password",
	})
	require.Error(t, err)
	assert.True(t, ierr.IsUnauthorized(err))

	_, err = provider.Login(ctx, AuthRequest{
		Email:    "intruder@visahub.test",
		Password: "correct-horse",
	})
	require.Error(t, err)
	assert.True(t, ierr.IsUnauthorized(err))
}

func TestLocalAuthValidateToken(t *testing.T) {
	provider := NewLocalAuth(newLocalTestConfig(t, "correct-horse"))
	ctx := context.Background()

	resp, err := provider.Login(ctx, AuthRequest{
		Email:    "admin@visahub.test",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	claims, err := provider.ValidateToken(ctx, resp.AuthToken)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, claims.UserID)
	assert.Equal(t, "admin@visahub.test", claims.Email)

	_, err = provider.ValidateToken(ctx, "not-a-jwt")
	require.Error(t, err)
	assert.True(t, ierr.IsUnauthorized(err))
}
