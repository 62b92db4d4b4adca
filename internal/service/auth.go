package service

import (
	"context"

	"github.com/visahub/visahub/internal/api/dto"
	"github.com/visahub/visahub/internal/auth"
	"github.com/visahub/visahub/internal/logger"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	provider auth.Provider
	logger   *logger.Logger
}

func NewAuthService(provider auth.Provider, logger *logger.Logger) AuthService {
	return &authService{
		provider: provider,
		logger:   logger,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.provider.Login(ctx, auth.AuthRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		s.logger.Debugw("admin login failed", "email", req.Email, "error", err)
		return nil, err
	}

	s.logger.Infow("admin login", "email", req.Email, "provider", s.provider.GetProvider())

	return &dto.AuthResponse{
		Token:  resp.AuthToken,
		UserID: resp.UserID,
	}, nil
}
