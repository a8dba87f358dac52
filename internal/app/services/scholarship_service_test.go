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

type fakeScholarshipRepo struct {
	items  map[int64]*models.Scholarship
	nextID int64
}

func newFakeScholarshipRepo() *fakeScholarshipRepo {
	return &fakeScholarshipRepo{items: map[int64]*models.Scholarship{}, nextID: 1}
}

func (f *fakeScholarshipRepo) Create(ctx context.Context, s *models.Scholarship) (int64, error) {
	id := f.nextID
	f.nextID++
	stored := *s
	stored.ID = id
	f.items[id] = &stored
	return id, nil
}

func (f *fakeScholarshipRepo) GetByID(ctx context.Context, id int64) (*models.Scholarship, error) {
	s, ok := f.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeScholarshipRepo) GetAll(ctx context.Context) ([]*models.Scholarship, error) {
	out := make([]*models.Scholarship, 0, len(f.items))
	for _, s := range f.items {
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeScholarshipRepo) Update(ctx context.Context, s *models.Scholarship) error {
	if _, ok := f.items[s.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *s
	f.items[s.ID] = &stored
	return nil
}

func (f *fakeScholarshipRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func createTestScholarship(t *testing.T, svc ScholarshipService) *models.Scholarship {
	t.Helper()
	sch, err := svc.CreateScholarship(context.Background(), &dto.CreateScholarshipRequest{
		Title:       "Commonwealth Shared Scholarship",
		Description: "Fully funded master's study in the UK",
		Amount:      floatPtr(30000),
	})
	require.NoError(t, err)
	return sch
}

func TestCreateScholarshipRejectsNegativeAmount(t *testing.T) {
	svc := NewScholarshipService(newFakeScholarshipRepo(), &fakeMailer{}, zerolog.Nop())

	_, err := svc.CreateScholarship(context.Background(), &dto.CreateScholarshipRequest{
		Title:       "Broken listing",
		Description: "Amount below zero",
		Amount:      floatPtr(-500),
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestCreateScholarshipDefaultsActive(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewScholarshipService(newFakeScholarshipRepo(), mailer, zerolog.Nop())

	sch := createTestScholarship(t, svc)
	assert.True(t, sch.IsActive)
	require.NotNil(t, sch.Amount)
	assert.Equal(t, float64(30000), *sch.Amount)
	require.Len(t, mailer.adminNotices, 1)
	assert.Contains(t, mailer.adminNotices[0], "Scholarship created")
}

func TestUpdateScholarshipRejectsNegativeAmount(t *testing.T) {
	repo := newFakeScholarshipRepo()
	svc := NewScholarshipService(repo, &fakeMailer{}, zerolog.Nop())
	sch := createTestScholarship(t, svc)

	_, err := svc.UpdateScholarship(context.Background(), sch.ID, &dto.UpdateScholarshipRequest{
		Amount: floatPtr(-1),
	})
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	stored, err := repo.GetByID(context.Background(), sch.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Amount)
	assert.Equal(t, float64(30000), *stored.Amount)
}

func TestUpdateScholarshipMergesFields(t *testing.T) {
	svc := NewScholarshipService(newFakeScholarshipRepo(), &fakeMailer{}, zerolog.Nop())
	sch := createTestScholarship(t, svc)

	updated, err := svc.UpdateScholarship(context.Background(), sch.ID, &dto.UpdateScholarshipRequest{
		Amount:   floatPtr(25000),
		Country:  strPtr("United Kingdom"),
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, "Commonwealth Shared Scholarship", updated.Title)
	require.NotNil(t, updated.Amount)
	assert.Equal(t, float64(25000), *updated.Amount)
	require.NotNil(t, updated.Country)
	assert.Equal(t, "United Kingdom", *updated.Country)
	assert.False(t, updated.IsActive)
}

func TestDeleteScholarshipNotFound(t *testing.T) {
	svc := NewScholarshipService(newFakeScholarshipRepo(), &fakeMailer{}, zerolog.Nop())

	err := svc.DeleteScholarship(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
