package dto

import (
	"github.com/visahub/visahub/internal/validator"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required,min=8"`
}

func (r *LoginRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type AuthResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}
