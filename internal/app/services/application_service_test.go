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

type fakeApplicationRepo struct {
	apps   map[int64]*models.Application
	nextID int64
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[int64]*models.Application{}, nextID: 1}
}

func (f *fakeApplicationRepo) Create(ctx context.Context, a *models.Application) (int64, error) {
	id := f.nextID
	f.nextID++
	stored := *a
	stored.ID = id
	f.apps[id] = &stored
	return id, nil
}

func (f *fakeApplicationRepo) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	a, ok := f.apps[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeApplicationRepo) GetAll(ctx context.Context) ([]*models.Application, error) {
	out := make([]*models.Application, 0, len(f.apps))
	for _, a := range f.apps {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeApplicationRepo) Update(ctx context.Context, a *models.Application) error {
	if _, ok := f.apps[a.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *a
	f.apps[a.ID] = &stored
	return nil
}

func (f *fakeApplicationRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.apps[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.apps, id)
	return nil
}

func submitTestApplication(t *testing.T, svc ApplicationService) *models.Application {
	t.Helper()
	a, err := svc.SubmitApplication(context.Background(), &dto.CreateApplicationRequest{
		FullName:        "Jane Phiri",
		Email:           "jane@example.com",
		Phone:           "+265999000111",
		Country:         "Malawi",
		FieldOfInterest: "Medicine",
		EducationLevel:  "Undergraduate",
	})
	require.NoError(t, err)
	return a
}

func TestSubmitApplicationStartsPending(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewApplicationService(newFakeApplicationRepo(), mailer, zerolog.Nop())

	a := submitTestApplication(t, svc)

	assert.Equal(t, models.StatusPending, a.Status)
	assert.NotZero(t, a.ID)
	assert.Len(t, mailer.adminNotices, 1)
}

func TestUpdateStatusEmailsApplicant(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewApplicationService(newFakeApplicationRepo(), mailer, zerolog.Nop())
	a := submitTestApplication(t, svc)

	updated, err := svc.UpdateStatus(context.Background(), a.ID, 7, &dto.UpdateApplicationStatusRequest{
		Status:     models.StatusApproved,
		AdminNotes: strPtr("Congratulations"),
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusApproved, updated.Status)
	require.NotNil(t, updated.ReviewedBy)
	assert.Equal(t, int64(7), *updated.ReviewedBy)
	assert.NotNil(t, updated.ReviewedAt)

	require.Len(t, mailer.statusEmails, 1)
	sent := mailer.statusEmails[0]
	assert.Equal(t, "jane@example.com", sent.to)
	assert.Equal(t, "approved", sent.status)
	assert.Equal(t, "Congratulations", sent.notes)
}

func TestUpdateStatusNoEmailWhenUnchanged(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewApplicationService(newFakeApplicationRepo(), mailer, zerolog.Nop())
	a := submitTestApplication(t, svc)

	_, err := svc.UpdateStatus(context.Background(), a.ID, 7, &dto.UpdateApplicationStatusRequest{
		Status: models.StatusPending,
	})
	require.NoError(t, err)

	assert.Empty(t, mailer.statusEmails)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewApplicationService(newFakeApplicationRepo(), &fakeMailer{}, zerolog.Nop())
	a := submitTestApplication(t, svc)

	_, err := svc.UpdateStatus(context.Background(), a.ID, 7, &dto.UpdateApplicationStatusRequest{
		Status: models.ApplicationStatus("archived"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidApplicationState)
}

// A failed status email does not roll back the review outcome.
func TestUpdateStatusSurvivesEmailFailure(t *testing.T) {
	mailer := &fakeMailer{statusErr: assert.AnError}
	repo := newFakeApplicationRepo()
	svc := NewApplicationService(repo, mailer, zerolog.Nop())
	a := submitTestApplication(t, svc)

	updated, err := svc.UpdateStatus(context.Background(), a.ID, 7, &dto.UpdateApplicationStatusRequest{
		Status: models.StatusRejected,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, updated.Status)

	stored, err := repo.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, stored.Status)
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc := NewApplicationService(newFakeApplicationRepo(), &fakeMailer{}, zerolog.Nop())

	_, err := svc.UpdateStatus(context.Background(), 999, 7, &dto.UpdateApplicationStatusRequest{
		Status: models.StatusApproved,
	})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDeleteApplication(t *testing.T) {
	repo := newFakeApplicationRepo()
	svc := NewApplicationService(repo, &fakeMailer{}, zerolog.Nop())
	a := submitTestApplication(t, svc)

	require.NoError(t, svc.DeleteApplication(context.Background(), a.ID))

	_, err := repo.GetByID(context.Background(), a.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUpdateStatusNotifiesAdmin(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewApplicationService(newFakeApplicationRepo(), mailer, zerolog.Nop())
	a := submitTestApplication(t, svc)

	_, err := svc.UpdateStatus(context.Background(), a.ID, 7, &dto.UpdateApplicationStatusRequest{
		Status: models.StatusUnderReview,
	})
	require.NoError(t, err)

	require.Len(t, mailer.adminNotices, 2)
	assert.Contains(t, mailer.adminNotices[1], "Application updated")
	assert.Contains(t, mailer.adminNotices[1], "jane@example.com")
}
