package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtendere/educonsult-admin/internal/app/models"
	"github.com/mtendere/educonsult-admin/internal/pkg/apperrors"
	"github.com/mtendere/educonsult-admin/internal/pkg/logger"
)

// BlogPostRepository handles blog post database operations
type BlogPostRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewBlogPostRepository creates a new BlogPostRepository
func NewBlogPostRepository(db *pgxpool.Pool) *BlogPostRepository {
	return &BlogPostRepository{
		db: db,
		sb: statementBuilder(),
	}
}

var blogPostColumns = []string{
	"id", "title", "slug", "excerpt", "content", "featured_image_url",
	"is_published", "meta_description", "tags", "author_id",
	"created_at", "updated_at", "published_at",
}

func scanBlogPost(row pgx.Row) (*models.BlogPost, error) {
	post := &models.BlogPost{}
	err := row.Scan(
		&post.ID, &post.Title, &post.Slug, &post.Excerpt, &post.Content,
		&post.FeaturedImageURL, &post.IsPublished, &post.MetaDescription,
		&post.Tags, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt, &post.PublishedAt,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// Create inserts a new blog post and returns its identity
func (r *BlogPostRepository) Create(ctx context.Context, post *models.BlogPost) (int64, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("blog_posts").
		Columns("title", "slug", "excerpt", "content", "featured_image_url",
			"is_published", "meta_description", "tags", "author_id",
			"created_at", "updated_at", "published_at").
		Values(post.Title, post.Slug, post.Excerpt, post.Content, post.FeaturedImageURL,
			post.IsPublished, post.MetaDescription, post.Tags, post.AuthorID,
			now, now, post.PublishedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create blog post query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrSlugAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create blog post query")
		return 0, fmt.Errorf("error creating blog post: %w", err)
	}

	return id, nil
}

// GetByID retrieves a blog post by ID
func (r *BlogPostRepository) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	sql, args, err := r.sb.Select(blogPostColumns...).
		From("blog_posts").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get blog post query: %w", err)
	}

	post, err := scanBlogPost(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("postID", id).Msg("Error scanning blog post row")
		return nil, fmt.Errorf("error getting blog post by ID: %w", err)
	}

	return post, nil
}

// GetAll retrieves all blog posts, newest first
func (r *BlogPostRepository) GetAll(ctx context.Context) ([]*models.BlogPost, error) {
	sql, args, err := r.sb.Select(blogPostColumns...).
		From("blog_posts").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all blog posts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all blog posts query")
		return nil, fmt.Errorf("error querying blog posts: %w", err)
	}
	defer rows.Close()

	posts := []*models.BlogPost{}
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning blog post row: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blog post rows: %w", err)
	}

	return posts, nil
}

// Update persists an existing blog post
func (r *BlogPostRepository) Update(ctx context.Context, post *models.BlogPost) error {
	sql, args, err := r.sb.Update("blog_posts").
		SetMap(map[string]interface{}{
			"title":              post.Title,
			"slug":               post.Slug,
			"excerpt":            post.Excerpt,
			"content":            post.Content,
			"featured_image_url": post.FeaturedImageURL,
			"is_published":       post.IsPublished,
			"meta_description":   post.MetaDescription,
			"tags":               post.Tags,
			"published_at":       post.PublishedAt,
			"updated_at":         time.Now(),
		}).
		Where(squirrel.Eq{"id": post.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update blog post query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrSlugAlreadyExists
		}
		logger.Error().Err(err).Int64("postID", post.ID).Msg("Error executing update blog post query")
		return fmt.Errorf("error updating blog post: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a blog post by ID
func (r *BlogPostRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("blog_posts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete blog post query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("postID", id).Msg("Error executing delete blog post query")
		return fmt.Errorf("error deleting blog post: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// SlugExists reports whether a blog post already uses the given slug
func (r *BlogPostRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("blog_posts").
		Where(squirrel.Eq{"slug": slug}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build slug existence query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking slug existence: %w", err)
	}

	return exists, nil
}

// Count returns the total number of blog posts
func (r *BlogPostRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}

// CountPublished returns the number of published blog posts
func (r *BlogPostRepository) CountPublished(ctx context.Context) (int64, error) {
	return r.count(ctx, squirrel.Eq{"is_published": true})
}

func (r *BlogPostRepository) count(ctx context.Context, where interface{}) (int64, error) {
	query := r.sb.Select("COUNT(*)").From("blog_posts")
	if where != nil {
		query = query.Where(where)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count blog posts query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting blog posts: %w", err)
	}

	return count, nil
}
