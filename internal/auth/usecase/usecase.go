package usecase

import (
	authdomain "mocni-backend/internal/auth/domain"
	authdto "mocni-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	RefreshToken(refreshToken string) (*authdto.TokenResponse, error)
	Logout(refreshToken string) error
	ValidateToken(tokenString string) (*authdomain.User, error)

	RegisterFCMToken(userID, token, deviceInfo string) error
	UnregisterFCMToken(token string) error
}
