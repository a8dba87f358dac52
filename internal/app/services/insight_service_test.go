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

type fakeInsightRepo struct {
	items  map[int64]*models.Insight
	nextID int64
}

func newFakeInsightRepo() *fakeInsightRepo {
	return &fakeInsightRepo{items: map[int64]*models.Insight{}, nextID: 1}
}

func (f *fakeInsightRepo) Create(ctx context.Context, i *models.Insight) (int64, error) {
	id := f.nextID
	f.nextID++
	stored := *i
	stored.ID = id
	f.items[id] = &stored
	return id, nil
}

func (f *fakeInsightRepo) GetByID(ctx context.Context, id int64) (*models.Insight, error) {
	i, ok := f.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *i
	return &copied, nil
}

func (f *fakeInsightRepo) GetAll(ctx context.Context) ([]*models.Insight, error) {
	out := make([]*models.Insight, 0, len(f.items))
	for _, i := range f.items {
		copied := *i
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeInsightRepo) Update(ctx context.Context, i *models.Insight) error {
	if _, ok := f.items[i.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *i
	f.items[i.ID] = &stored
	return nil
}

func (f *fakeInsightRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func TestCreateInsightAttributesAuthor(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewInsightService(newFakeInsightRepo(), mailer, zerolog.Nop())

	ins, err := svc.CreateInsight(context.Background(), 4, &dto.CreateInsightRequest{
		Title:    "Studying abroad on a budget",
		Content:  "Start with scholarship deadlines.",
		Category: "study-tips",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), ins.AuthorID)
	assert.False(t, ins.IsFeatured)
	assert.False(t, ins.IsPublished)
	require.Len(t, mailer.adminNotices, 1)
	assert.Contains(t, mailer.adminNotices[0], "Insight created")
}

func TestCreateInsightHonorsFlags(t *testing.T) {
	svc := NewInsightService(newFakeInsightRepo(), &fakeMailer{}, zerolog.Nop())

	ins, err := svc.CreateInsight(context.Background(), 4, &dto.CreateInsightRequest{
		Title:       "Visa interview checklist",
		Content:     "Bring every original document.",
		Category:    "visas",
		IsFeatured:  boolPtr(true),
		IsPublished: boolPtr(true),
	})
	require.NoError(t, err)

	assert.True(t, ins.IsFeatured)
	assert.True(t, ins.IsPublished)
}

func TestUpdateInsightMergesFields(t *testing.T) {
	svc := NewInsightService(newFakeInsightRepo(), &fakeMailer{}, zerolog.Nop())

	ins, err := svc.CreateInsight(context.Background(), 4, &dto.CreateInsightRequest{
		Title:    "Studying abroad on a budget",
		Content:  "Start with scholarship deadlines.",
		Category: "study-tips",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateInsight(context.Background(), ins.ID, &dto.UpdateInsightRequest{
		Category:    strPtr("funding"),
		IsPublished: boolPtr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "Studying abroad on a budget", updated.Title)
	assert.Equal(t, "funding", updated.Category)
	assert.True(t, updated.IsPublished)
	assert.Equal(t, int64(4), updated.AuthorID)
}

func TestUpdateInsightNotFound(t *testing.T) {
	svc := NewInsightService(newFakeInsightRepo(), &fakeMailer{}, zerolog.Nop())

	_, err := svc.UpdateInsight(context.Background(), 12, &dto.UpdateInsightRequest{
		Title: strPtr("Missing"),
	})
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestDeleteInsight(t *testing.T) {
	repo := newFakeInsightRepo()
	svc := NewInsightService(repo, &fakeMailer{}, zerolog.Nop())

	ins, err := svc.CreateInsight(context.Background(), 4, &dto.CreateInsightRequest{
		Title:    "Studying abroad on a budget",
		Content:  "Start with scholarship deadlines.",
		Category: "study-tips",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteInsight(context.Background(), ins.ID))
	_, err = repo.GetByID(context.Background(), ins.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
