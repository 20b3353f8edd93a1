package handler

import (
	"context"

	"koperasi-portal/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login exchanges a member number and PIN for a session token
// POST /trpc/login {"memberNumber":"MB001234","pin":"123456"}
func (h *AuthHandler) Login(ctx context.Context, in *LoginInput) (interface{}, error) {
	response, err := h.authService.Login(ctx, in.MemberNumber, in.Pin)
	if err != nil {
		return nil, err
	}
	return response, nil
}
