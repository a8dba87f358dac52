package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtendere/educonsult-admin/internal/app/models"
	"github.com/mtendere/educonsult-admin/internal/app/models/dto"
	"github.com/mtendere/educonsult-admin/internal/app/repositories"
	"github.com/mtendere/educonsult-admin/internal/pkg/apperrors"
	"github.com/mtendere/educonsult-admin/internal/pkg/auth"
)

type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	id := f.nextID
	f.nextID++
	stored := *user
	stored.ID = id
	f.users[id] = &stored
	return id, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]*models.User, error) {
	out := make([]*models.User, 0, len(f.users))
	for _, u := range f.users {
		copied := *u
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) CountByRole(ctx context.Context, role models.UserRole) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func createTestUser(t *testing.T, svc UserService, email, role string) *models.User {
	t.Helper()
	user, err := svc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Email:    email,
		Password: "password-123",
		FullName: "Test User",
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), &fakeMailer{}, zerolog.Nop())

	user := createTestUser(t, svc, "user@example.com", "")

	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "password-123", user.HashedPassword)
	assert.True(t, auth.CheckPassword(user.HashedPassword, "password-123"))
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), &fakeMailer{}, zerolog.Nop())

	_, err := svc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Email:    "user@example.com",
		Password: "password-123",
		FullName: "Test User",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestUpdateUserMergesFields(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), &fakeMailer{}, zerolog.Nop())
	user := createTestUser(t, svc, "user@example.com", "user")

	updated, err := svc.UpdateUser(context.Background(), user.ID, &dto.UpdateUserRequest{
		FullName: strPtr("Renamed User"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed User", updated.FullName)
	assert.Equal(t, "user@example.com", updated.Email)
}

func TestCannotDemoteLastAdmin(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), &fakeMailer{}, zerolog.Nop())
	admin := createTestUser(t, svc, "admin@example.com", "admin")

	_, err := svc.UpdateUser(context.Background(), admin.ID, &dto.UpdateUserRequest{Role: strPtr("user")})
	assert.ErrorIs(t, err, apperrors.ErrLastAdmin)

	_, err = svc.UpdateUser(context.Background(), admin.ID, &dto.UpdateUserRequest{IsActive: boolPtr(false)})
	assert.ErrorIs(t, err, apperrors.ErrLastAdmin)
}

func TestCannotDeleteLastAdmin(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), &fakeMailer{}, zerolog.Nop())
	admin := createTestUser(t, svc, "admin@example.com", "admin")

	err := svc.DeleteUser(context.Background(), admin.ID)
	assert.ErrorIs(t, err, apperrors.ErrLastAdmin)
}

func TestCanDemoteAdminWhenAnotherRemains(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), &fakeMailer{}, zerolog.Nop())
	first := createTestUser(t, svc, "first@example.com", "admin")
	createTestUser(t, svc, "second@example.com", "admin")

	updated, err := svc.UpdateUser(context.Background(), first.ID, &dto.UpdateUserRequest{Role: strPtr("user")})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, updated.Role)
}

func TestDeleteUserNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), &fakeMailer{}, zerolog.Nop())

	err := svc.DeleteUser(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
