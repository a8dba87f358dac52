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

type fakeBlogPostRepo struct {
	posts  map[int64]*models.BlogPost
	nextID int64
}

func newFakeBlogPostRepo() *fakeBlogPostRepo {
	return &fakeBlogPostRepo{posts: map[int64]*models.BlogPost{}, nextID: 1}
}

func (f *fakeBlogPostRepo) Create(ctx context.Context, post *models.BlogPost) (int64, error) {
	id := f.nextID
	f.nextID++
	stored := *post
	stored.ID = id
	f.posts[id] = &stored
	return id, nil
}

func (f *fakeBlogPostRepo) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (f *fakeBlogPostRepo) GetAll(ctx context.Context) ([]*models.BlogPost, error) {
	out := make([]*models.BlogPost, 0, len(f.posts))
	for _, post := range f.posts {
		copied := *post
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeBlogPostRepo) Update(ctx context.Context, post *models.BlogPost) error {
	if _, ok := f.posts[post.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *post
	f.posts[post.ID] = &stored
	return nil
}

func (f *fakeBlogPostRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.posts[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakeBlogPostRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	for _, post := range f.posts {
		if post.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func TestCreatePostDerivesSlugFromTitle(t *testing.T) {
	svc := NewBlogService(newFakeBlogPostRepo(), &fakeMailer{}, zerolog.Nop())

	post, err := svc.CreatePost(context.Background(), 1, &dto.CreateBlogPostRequest{
		Title:   "Study in Canada This Year",
		Content: "body",
	})
	require.NoError(t, err)

	assert.Equal(t, "study-in-canada-this-year", post.Slug)
	assert.Equal(t, int64(1), post.AuthorID)
	assert.False(t, post.IsPublished)
	assert.Nil(t, post.PublishedAt)
}

func TestCreatePostDisambiguatesDuplicateSlug(t *testing.T) {
	repo := newFakeBlogPostRepo()
	svc := NewBlogService(repo, &fakeMailer{}, zerolog.Nop())

	first, err := svc.CreatePost(context.Background(), 1, &dto.CreateBlogPostRequest{Title: "Visa Guide", Content: "a"})
	require.NoError(t, err)
	second, err := svc.CreatePost(context.Background(), 1, &dto.CreateBlogPostRequest{Title: "Visa Guide", Content: "b"})
	require.NoError(t, err)
	third, err := svc.CreatePost(context.Background(), 1, &dto.CreateBlogPostRequest{Title: "Visa Guide", Content: "c"})
	require.NoError(t, err)

	assert.Equal(t, "visa-guide", first.Slug)
	assert.Equal(t, "visa-guide-1", second.Slug)
	assert.Equal(t, "visa-guide-2", third.Slug)
}

func TestCreatePostHonorsExplicitSlug(t *testing.T) {
	svc := NewBlogService(newFakeBlogPostRepo(), &fakeMailer{}, zerolog.Nop())

	post, err := svc.CreatePost(context.Background(), 1, &dto.CreateBlogPostRequest{
		Title:   "Anything",
		Slug:    "custom-slug",
		Content: "body",
	})
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", post.Slug)
}

func TestCreatePublishedPostStampsPublishedAt(t *testing.T) {
	svc := NewBlogService(newFakeBlogPostRepo(), &fakeMailer{}, zerolog.Nop())

	post, err := svc.CreatePost(context.Background(), 1, &dto.CreateBlogPostRequest{
		Title:       "Launch",
		Content:     "body",
		IsPublished: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, post.IsPublished)
	assert.NotNil(t, post.PublishedAt)
}

func TestUpdatePostStampsPublishedAtOnTransition(t *testing.T) {
	repo := newFakeBlogPostRepo()
	svc := NewBlogService(repo, &fakeMailer{}, zerolog.Nop())

	post, err := svc.CreatePost(context.Background(), 1, &dto.CreateBlogPostRequest{Title: "Draft", Content: "body"})
	require.NoError(t, err)
	require.Nil(t, post.PublishedAt)

	published, err := svc.UpdatePost(context.Background(), post.ID, &dto.UpdateBlogPostRequest{IsPublished: boolPtr(true)})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstStamp := *published.PublishedAt

	// Re-publishing an already published post keeps the original stamp.
	again, err := svc.UpdatePost(context.Background(), post.ID, &dto.UpdateBlogPostRequest{IsPublished: boolPtr(true)})
	require.NoError(t, err)
	require.NotNil(t, again.PublishedAt)
	assert.Equal(t, firstStamp, *again.PublishedAt)
}

func TestUpdatePostMergesFields(t *testing.T) {
	svc := NewBlogService(newFakeBlogPostRepo(), &fakeMailer{}, zerolog.Nop())

	post, err := svc.CreatePost(context.Background(), 1, &dto.CreateBlogPostRequest{
		Title:   "Original",
		Content: "original body",
		Excerpt: strPtr("short"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdatePost(context.Background(), post.ID, &dto.UpdateBlogPostRequest{
		Title: strPtr("Renamed"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "original body", updated.Content)
	require.NotNil(t, updated.Excerpt)
	assert.Equal(t, "short", *updated.Excerpt)
}

func TestGetPostNotFound(t *testing.T) {
	svc := NewBlogService(newFakeBlogPostRepo(), &fakeMailer{}, zerolog.Nop())

	_, err := svc.GetPost(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}
