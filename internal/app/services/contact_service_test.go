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
)

type fakeContactRepo struct {
	items  map[int64]*models.ContactInquiry
	nextID int64
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{items: map[int64]*models.ContactInquiry{}, nextID: 1}
}

func (f *fakeContactRepo) Create(ctx context.Context, c *models.ContactInquiry) error {
	c.ID = f.nextID
	f.nextID++
	c.CreatedAt = time.Now()
	stored := *c
	f.items[c.ID] = &stored
	return nil
}

func (f *fakeContactRepo) GetByID(ctx context.Context, id int64) (*models.ContactInquiry, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeContactRepo) GetAll(ctx context.Context, limit, offset uint64) ([]*models.ContactInquiry, error) {
	out := make([]*models.ContactInquiry, 0, len(f.items))
	for _, item := range f.items {
		copied := *item
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeContactRepo) Update(ctx context.Context, c *models.ContactInquiry) error {
	if _, ok := f.items[c.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *c
	f.items[c.ID] = &stored
	return nil
}

func (f *fakeContactRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func submitTestInquiry(t *testing.T, svc ContactService) *models.ContactInquiry {
	t.Helper()
	c, err := svc.SubmitInquiry(context.Background(), &dto.CreateContactInquiryRequest{
		Name:    "Thoko Mwale",
		Email:   "thoko@example.com",
		Subject: "Scholarship question",
		Message: "Which scholarships cover nursing?",
	})
	require.NoError(t, err)
	return c
}

func TestSubmitInquiryNotifiesAdmin(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewContactService(newFakeContactRepo(), mailer, zerolog.Nop())

	c := submitTestInquiry(t, svc)

	assert.False(t, c.IsResolved)
	assert.Len(t, mailer.adminNotices, 1)
}

func TestUpdateInquiryResolveStampsResolver(t *testing.T) {
	svc := NewContactService(newFakeContactRepo(), &fakeMailer{}, zerolog.Nop())
	c := submitTestInquiry(t, svc)

	resolved, err := svc.UpdateInquiry(context.Background(), c.ID, 5, &dto.UpdateContactInquiryRequest{
		IsResolved: boolPtr(true),
	})
	require.NoError(t, err)

	assert.True(t, resolved.IsResolved)
	require.NotNil(t, resolved.ResolvedBy)
	assert.Equal(t, int64(5), *resolved.ResolvedBy)
	assert.NotNil(t, resolved.ResolvedAt)

	reopened, err := svc.UpdateInquiry(context.Background(), c.ID, 5, &dto.UpdateContactInquiryRequest{
		IsResolved: boolPtr(false),
	})
	require.NoError(t, err)

	assert.False(t, reopened.IsResolved)
	assert.Nil(t, reopened.ResolvedAt)
	assert.Nil(t, reopened.ResolvedBy)
}

func TestRespondToInquirySendsEmailAndResolves(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewContactService(newFakeContactRepo(), mailer, zerolog.Nop())
	c := submitTestInquiry(t, svc)

	answered, err := svc.RespondToInquiry(context.Background(), c.ID, 5, &dto.RespondContactInquiryRequest{
		Message: "These three scholarships cover nursing.",
	})
	require.NoError(t, err)

	assert.True(t, answered.IsResolved)
	require.Len(t, mailer.responses, 1)
	sent := mailer.responses[0]
	assert.Equal(t, "thoko@example.com", sent.to)
	assert.Equal(t, "Scholarship question", sent.subject)
}

// A failed response email must leave the inquiry unresolved.
func TestRespondToInquiryEmailFailureLeavesOpen(t *testing.T) {
	mailer := &fakeMailer{responseErr: assert.AnError}
	repo := newFakeContactRepo()
	svc := NewContactService(repo, mailer, zerolog.Nop())
	c := submitTestInquiry(t, svc)

	_, err := svc.RespondToInquiry(context.Background(), c.ID, 5, &dto.RespondContactInquiryRequest{
		Message: "reply",
	})
	require.Error(t, err)

	stored, err := repo.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsResolved)
	assert.Nil(t, stored.ResolvedAt)
}

func TestUpdateInquiryNotifiesAdmin(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewContactService(newFakeContactRepo(), mailer, zerolog.Nop())
	c := submitTestInquiry(t, svc)

	_, err := svc.UpdateInquiry(context.Background(), c.ID, 5, &dto.UpdateContactInquiryRequest{
		Subject: strPtr("Visa question"),
	})
	require.NoError(t, err)

	require.Len(t, mailer.adminNotices, 2)
	assert.Contains(t, mailer.adminNotices[1], "Contact Inquiry updated")
	assert.Contains(t, mailer.adminNotices[1], "thoko@example.com")
}
