package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MyResearchRoom/mrrhr/internal/domain/auth"
	"github.com/MyResearchRoom/mrrhr/internal/domain/user"
	"github.com/MyResearchRoom/mrrhr/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	users  user.UserRepository
	jwt    jwt.Service
	logger *slog.Logger
}

func NewService(users user.UserRepository, jwtService jwt.Service, logger *slog.Logger) auth.AuthService {
	return &service{
		users:  users,
		jwt:    jwtService,
		logger: logger,
	}
}

func (s *service) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, "", 0, err
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	resp, err := s.loginResponse(u)
	if err != nil {
		return auth.LoginResponse{}, "", 0, err
	}

	refreshToken, refreshExpiresAt, err := s.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in", "user_id", u.ID, "role", u.Role)

	return resp, refreshToken, refreshExpiresAt, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	token, err := jwtauth.VerifyToken(s.jwt.JWTAuth(), refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	if typ, ok := token.Get("type"); !ok || typ != "refresh" {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	userID, ok := token.Get("user_id")
	if !ok {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	u, err := s.users.GetByID(ctx, fmt.Sprint(userID))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidToken
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}

	return s.loginResponse(u)
}

func (s *service) loginResponse(u user.User) (auth.LoginResponse, error) {
	employeeID := ""
	if u.EmployeeID != nil {
		employeeID = *u.EmployeeID
	}

	accessToken, expiresAt, err := s.jwt.GenerateAccessToken(u.ID, employeeID, u.Role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		UserID:      u.ID,
		EmployeeID:  employeeID,
		Name:        u.Name,
		Role:        string(u.Role),
	}, nil
}
