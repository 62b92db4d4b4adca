package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"
	"github.com/visahub/visahub/internal/config"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/types"
	"golang.org/x/crypto/bcrypt"
)

// localAuth verifies against a single admin credential pair from the
// configuration file. It exists so local deployments can run without a
// Supabase project; config validation rejects it in production mode.
type localAuth struct {
	authConfig config.AuthConfig
	userID     string
}

func NewLocalAuth(cfg *config.Configuration) Provider {
	return &localAuth{
		authConfig: cfg.Auth,
		userID:     types.GenerateUUIDWithPrefix(types.UUID_PREFIX_USER),
	}
}

func (l *localAuth) GetProvider() types.AuthProvider {
	return types.AuthProviderLocal
}

func (l *localAuth) Login(ctx context.Context, req AuthRequest) (*AuthResponse, error) {
	if !strings.EqualFold(req.Email, l.authConfig.Local.AdminEmail) {
		return nil, ierr.NewError("invalid credentials").
			WithHint("Invalid email or password").
			Mark(ierr.ErrUnauthorized)
	}

	err := bcrypt.CompareHashAndPassword([]byte(l.authConfig.Local.AdminPasswordHash), []byte(req.Password))
	if err != nil {
		return nil, ierr.NewError("invalid credentials").
			WithHint("Invalid email or password").
			Mark(ierr.ErrUnauthorized)
	}

	authToken, err := l.generateToken()
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to generate token").
			Mark(ierr.ErrSystem)
	}

	return &AuthResponse{
		AuthToken: authToken,
		UserID:    l.userID,
	}, nil
}

func (l *localAuth) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(l.authConfig.Secret), nil
	})
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Token parse error").
			Mark(ierr.ErrUnauthorized)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ierr.NewError("invalid token claims").
			WithHint("Invalid token claims").
			Mark(ierr.ErrUnauthorized)
	}

	userID, userOk := claims["user_id"].(string)
	if !userOk {
		return nil, ierr.NewError("token missing user ID").
			WithHint("Token missing user ID").
			Mark(ierr.ErrUnauthorized)
	}

	email, _ := claims["email"].(string)

	return &Claims{UserID: userID, Email: email}, nil
}

func (l *localAuth) generateToken() (string, error) {
	expiration := time.Now().Add(30 * 24 * time.Hour)

	claims := jwt.MapClaims{
		"user_id": l.userID,
		"email":   l.authConfig.Local.AdminEmail,
		"exp":     expiration.Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(l.authConfig.Secret))
}
