package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/staffpulse/attendance-backend-go/internal/domain/auth"
	"github.com/staffpulse/attendance-backend-go/internal/domain/user"
	"github.com/staffpulse/attendance-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register implements auth.AuthService. New accounts get the employee
// role; admins are promoted outside this service.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.userRepo.Create(ctx, user.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         user.RoleEmployee,
	})
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return a.buildAuthResponse(created)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	u, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	return a.buildAuthResponse(u)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenResponse, error) {
	userID, err := a.jwtService.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, err
	}

	return a.issueTokens(u)
}

func (a *AuthServiceImpl) issueTokens(u user.User) (auth.TokenResponse, error) {
	accessToken, accessExp, err := a.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, refreshExp, err := a.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}

func (a *AuthServiceImpl) buildAuthResponse(u user.User) (auth.AuthResponse, error) {
	tokens, err := a.issueTokens(u)
	if err != nil {
		return auth.AuthResponse{}, err
	}
	return auth.AuthResponse{
		User: auth.UserResponse{
			ID:       u.ID,
			FullName: u.FullName,
			Email:    u.Email,
			Role:     string(u.Role),
		},
		Token: tokens,
	}, nil
}
