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
	"github.com/mtendere/educonsult-admin/internal/pkg/email"
)

type userRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
	CountByRole(ctx context.Context, role models.UserRole) (int64, error)
}

// UserService defines the interface for user management operations
type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo userRepository
	mailer   email.Service
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo userRepository, mailer email.Service, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		mailer:   mailer,
		logger:   logger,
	}
}

func parseUserRole(raw string) (models.UserRole, error) {
	switch models.UserRole(raw) {
	case models.RoleAdmin, models.RoleUser, models.RoleApplicant:
		return models.UserRole(raw), nil
	case "":
		return models.RoleUser, nil
	}
	return "", apperrors.NewBadRequestError(fmt.Sprintf("unknown role: %s", raw))
}

// CreateUser creates a user account with a bcrypt-hashed password
func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	role, err := parseUserRole(req.Role)
	if err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:          req.Email,
		HashedPassword: hashed,
		FullName:       req.FullName,
		Phone:          req.Phone,
		Role:           role,
		IsActive:       true,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.notifyChange("User", "created", fmt.Sprintf("User %s (%s) was created.", user.FullName, user.Email))
	return user, nil
}

// GetUser retrieves a user by ID
func (s *userServiceImpl) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ListUsers retrieves all users
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// UpdateUser merges the provided fields over the stored user. A nil field in
// the request keeps the stored value.
func (s *userServiceImpl) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Role != nil {
		role, err := parseUserRole(*req.Role)
		if err != nil {
			return nil, err
		}
		// Demoting the only remaining admin would lock everyone out.
		if user.Role == models.RoleAdmin && role != models.RoleAdmin {
			if err := s.checkNotLastAdmin(ctx); err != nil {
				return nil, err
			}
		}
		user.Role = role
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		user.HashedPassword = hashed
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.IsActive != nil {
		if user.Role == models.RoleAdmin && !*req.IsActive {
			if err := s.checkNotLastAdmin(ctx); err != nil {
				return nil, err
			}
		}
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	s.notifyChange("User", "updated", fmt.Sprintf("User %s (%s) was updated.", user.FullName, user.Email))
	return user, nil
}

// DeleteUser removes a user. The last admin account cannot be deleted.
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	if user.Role == models.RoleAdmin {
		if err := s.checkNotLastAdmin(ctx); err != nil {
			return err
		}
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	s.notifyChange("User", "deleted", fmt.Sprintf("User %s (%s) was deleted.", user.FullName, user.Email))
	return nil
}

func (s *userServiceImpl) checkNotLastAdmin(ctx context.Context) error {
	count, err := s.userRepo.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("error counting admin users: %w", err)
	}
	if count <= 1 {
		return apperrors.ErrLastAdmin
	}
	return nil
}

func (s *userServiceImpl) notifyChange(entity, action, summary string) {
	notifyAdmin(s.mailer, s.logger, entity, action, summary)
}
