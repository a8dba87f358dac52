package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/mtendere/educonsult-admin/internal/app/models"
	"github.com/mtendere/educonsult-admin/internal/app/repositories"
	"github.com/mtendere/educonsult-admin/internal/pkg/apperrors"
	"github.com/mtendere/educonsult-admin/internal/pkg/auth"
)

// DefaultAdminEmail and DefaultAdminPassword seed the first admin account
// when the users table has none. The password must be rotated after first
// login on any real deployment.
const (
	DefaultAdminEmail    = "admin@mtendereeduconsult.com"
	DefaultAdminPassword = "admin123"
	DefaultAdminName     = "Administrator"
)

type userStore interface {
	CountByRole(ctx context.Context, role models.UserRole) (int64, error)
	Create(ctx context.Context, user *models.User) (int64, error)
}

// CreateDefaultAdmin creates the default admin account when no admin user is
// present. It is safe to call on every startup.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	return ensureAdmin(ctx, repositories.NewUserRepository(dbPool), lgr)
}

func ensureAdmin(ctx context.Context, users userStore, lgr zerolog.Logger) error {
	count, err := users.CountByRole(ctx, models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("error counting admin users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("error hashing default admin password: %w", err)
	}

	admin := &models.User{
		Email:          DefaultAdminEmail,
		HashedPassword: hashed,
		FullName:       DefaultAdminName,
		Role:           models.RoleAdmin,
		IsActive:       true,
	}

	id, err := users.Create(ctx, admin)
	if err != nil {
		// Another instance may have seeded the account first.
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return fmt.Errorf("error creating default admin: %w", err)
	}

	// The credentials are logged exactly once, on first creation, so the
	// operator can log in before rotating them.
	lgr.Info().Int64("userID", id).Str("email", DefaultAdminEmail).Str("password", DefaultAdminPassword).
		Msg("Default admin account created; change the password immediately")
	return nil
}
