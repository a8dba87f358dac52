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
)

type fakeTeamRepo struct {
	items  map[int64]*models.TeamMember
	nextID int64
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{items: map[int64]*models.TeamMember{}, nextID: 1}
}

func (f *fakeTeamRepo) Create(ctx context.Context, m *models.TeamMember) (int64, error) {
	id := f.nextID
	f.nextID++
	stored := *m
	stored.ID = id
	f.items[id] = &stored
	return id, nil
}

func (f *fakeTeamRepo) GetByID(ctx context.Context, id int64) (*models.TeamMember, error) {
	m, ok := f.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakeTeamRepo) GetAll(ctx context.Context) ([]*models.TeamMember, error) {
	out := make([]*models.TeamMember, 0, len(f.items))
	for _, m := range f.items {
		copied := *m
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeTeamRepo) Update(ctx context.Context, m *models.TeamMember) error {
	if _, ok := f.items[m.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *m
	f.items[m.ID] = &stored
	return nil
}

func (f *fakeTeamRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func TestCreateMemberDefaultsActive(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewTeamService(newFakeTeamRepo(), mailer, zerolog.Nop())

	m, err := svc.CreateMember(context.Background(), &dto.CreateTeamMemberRequest{
		Name:     "Grace Kamanga",
		Position: "Senior Counselor",
	})
	require.NoError(t, err)

	assert.True(t, m.IsActive)
	assert.Equal(t, 0, m.SortOrder)
	require.Len(t, mailer.adminNotices, 1)
	assert.Contains(t, mailer.adminNotices[0], "Team Member created")
}

func TestCreateMemberHonorsSortOrder(t *testing.T) {
	svc := NewTeamService(newFakeTeamRepo(), &fakeMailer{}, zerolog.Nop())

	m, err := svc.CreateMember(context.Background(), &dto.CreateTeamMemberRequest{
		Name:      "Peter Gondwe",
		Position:  "Director",
		SortOrder: intPtr(3),
		IsActive:  boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, m.SortOrder)
	assert.False(t, m.IsActive)
}

func TestUpdateMemberMergesFields(t *testing.T) {
	svc := NewTeamService(newFakeTeamRepo(), &fakeMailer{}, zerolog.Nop())

	m, err := svc.CreateMember(context.Background(), &dto.CreateTeamMemberRequest{
		Name:     "Grace Kamanga",
		Position: "Senior Counselor",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateMember(context.Background(), m.ID, &dto.UpdateTeamMemberRequest{
		Position:    strPtr("Head of Counseling"),
		LinkedinURL: strPtr("https://linkedin.com/in/gracekamanga"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Grace Kamanga", updated.Name)
	assert.Equal(t, "Head of Counseling", updated.Position)
	require.NotNil(t, updated.LinkedinURL)
	assert.Equal(t, "https://linkedin.com/in/gracekamanga", *updated.LinkedinURL)
}

func TestUpdateMemberNotFound(t *testing.T) {
	svc := NewTeamService(newFakeTeamRepo(), &fakeMailer{}, zerolog.Nop())

	_, err := svc.UpdateMember(context.Background(), 99, &dto.UpdateTeamMemberRequest{
		Position: strPtr("Director"),
	})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDeleteMemberNotifiesAdmin(t *testing.T) {
	mailer := &fakeMailer{}
	repo := newFakeTeamRepo()
	svc := NewTeamService(repo, mailer, zerolog.Nop())

	m, err := svc.CreateMember(context.Background(), &dto.CreateTeamMemberRequest{
		Name:     "Grace Kamanga",
		Position: "Senior Counselor",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMember(context.Background(), m.ID))
	_, err = repo.GetByID(context.Background(), m.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	require.Len(t, mailer.adminNotices, 2)
	assert.Contains(t, mailer.adminNotices[1], "Team Member deleted")
}
