package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/visahub/visahub/internal/api/dto"
	"github.com/visahub/visahub/internal/auth"
	"github.com/visahub/visahub/internal/config"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/logger"
	"github.com/visahub/visahub/internal/types"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Configuration{
		Auth: config.AuthConfig{
			Provider: string(types.AuthProviderLocal),
			Secret:   "test-signing-secret",
			Local: config.LocalAuthConfig{
				AdminEmail:        "admin@visahub.test",
				AdminPasswordHash: string(hash),
			},
		},
	}

	return NewAuthService(auth.NewLocalAuth(cfg), logger.NewNopLogger())
}

func TestAuthServiceLogin(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@visahub.test",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.UserID)
}

func TestAuthServiceLoginValidation(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@visahub.test",
		Password: "short",
	})
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

func TestAuthServiceLoginBadPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@visahub.test",
		Password: "wrong-password",
	})
	require.Error(t, err)
	assert.True(t, ierr.IsUnauthorized(err))
}
