package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/mtendere/educonsult-admin/internal/app/models"
	"github.com/mtendere/educonsult-admin/internal/app/models/dto"
	"github.com/mtendere/educonsult-admin/internal/app/repositories"
	"github.com/mtendere/educonsult-admin/internal/pkg/apperrors"
	"github.com/mtendere/educonsult-admin/internal/pkg/auth"
)

// authUserRepository is the slice of user persistence the auth service needs.
type authUserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo   authUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo authUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates an admin and issues an access token. Unknown email,
// wrong password and non-admin role all produce the same invalid-credentials
// error so the response does not reveal which check failed.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Msg("Failed to look up user during login")
		return nil, fmt.Errorf("error during login: %w", err)
	}

	if !auth.CheckPassword(user.HashedPassword, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Role != models.RoleAdmin {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate access token")
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("email", user.Email).Msg("Admin logged in")

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
