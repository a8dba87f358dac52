package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtendere/educonsult-admin/internal/app/models"
	"github.com/mtendere/educonsult-admin/internal/app/models/dto"
	"github.com/mtendere/educonsult-admin/internal/app/repositories"
	"github.com/mtendere/educonsult-admin/internal/pkg/apperrors"
	"github.com/mtendere/educonsult-admin/internal/pkg/auth"
)

type fakeAuthUserRepo struct {
	users map[string]*models.User
}

func (f *fakeAuthUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func newAuthFixture(t *testing.T, role models.UserRole, active bool) (AuthService, string) {
	t.Helper()

	hashed, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	repo := &fakeAuthUserRepo{users: map[string]*models.User{
		"admin@example.com": {
			ID:             1,
			Email:          "admin@example.com",
			HashedPassword: hashed,
			Role:           role,
			IsActive:       active,
		},
	}}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
	})

	return NewAuthService(repo, jwtService, zerolog.Nop()), "admin@example.com"
}

func TestLoginSuccess(t *testing.T) {
	svc, email := newAuthFixture(t, models.RoleAdmin, true)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: email, Password: "correct-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
}

// Unknown email, wrong password and non-admin role must be indistinguishable
// to the caller.
func TestLoginUniformInvalidCredentials(t *testing.T) {
	tests := []struct {
		name     string
		role     models.UserRole
		email    string
		password string
	}{
		{"unknown email", models.RoleAdmin, "nobody@example.com", "correct-password"},
		{"wrong password", models.RoleAdmin, "admin@example.com", "wrong-password"},
		{"non-admin role", models.RoleUser, "admin@example.com", "correct-password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newAuthFixture(t, tt.role, true)

			_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: tt.email, Password: tt.password})
			assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		})
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, email := newAuthFixture(t, models.RoleAdmin, false)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: email, Password: "correct-password"})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}
