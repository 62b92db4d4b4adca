package postgres

import (
	"context"
	"database/sql"

	"github.com/visahub/visahub/internal/domain/blogpost"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/logger"
	"github.com/visahub/visahub/internal/postgres"
	"github.com/visahub/visahub/internal/types"
)

type blogPostRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewBlogPostRepository(db *postgres.DB, logger *logger.Logger) blogpost.Repository {
	return &blogPostRepository{db: db, logger: logger}
}

func (r *blogPostRepository) Create(ctx context.Context, post *blogpost.BlogPost) error {
	query := `
		INSERT INTO blog_posts (
			id, slug, title, excerpt, content, author, tags, is_published,
			published_at, status, created_at, updated_at
		) VALUES (
			:id, :slug, :title, :excerpt, :content, :author, :tags, :is_published,
			:published_at, :status, :created_at, :updated_at
		)`

	r.logger.Debugw("creating blog post", "post_id", post.ID, "slug", post.Slug)

	if _, err := r.db.NamedExecContext(ctx, query, post); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to save the blog post").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *blogPostRepository) Get(ctx context.Context, id string) (*blogpost.BlogPost, error) {
	var post blogpost.BlogPost
	err := r.db.GetContext(ctx, &post, "SELECT * FROM blog_posts WHERE id = $1", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewErrorf("blog post %s not found", id).
				WithHint("The specified blog post does not exist").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch the blog post").
			Mark(ierr.ErrDatabase)
	}
	return &post, nil
}

func (r *blogPostRepository) GetBySlug(ctx context.Context, slug string) (*blogpost.BlogPost, error) {
	var post blogpost.BlogPost
	err := r.db.GetContext(ctx, &post, "SELECT * FROM blog_posts WHERE slug = $1", slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewErrorf("blog post with slug %s not found", slug).
				WithHint("The specified blog post does not exist").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to fetch the blog post").
			Mark(ierr.ErrDatabase)
	}
	return &post, nil
}

func blogPostWhere(filter *types.BlogPostFilter, args map[string]interface{}) string {
	query := ""
	if filter.PublishedOnly {
		query += ` AND is_published = true`
	}
	if filter.Status != "" {
		query += ` AND status = :status`
		args["status"] = filter.Status
	}
	if filter.Tag != "" {
		query += ` AND :tag = ANY(tags)`
		args["tag"] = filter.Tag
	}
	return query
}

func (r *blogPostRepository) List(ctx context.Context, filter *types.BlogPostFilter) ([]*blogpost.BlogPost, error) {
	args := map[string]interface{}{
		"limit":  filter.GetLimit(),
		"offset": filter.GetOffset(),
	}
	query := `SELECT * FROM blog_posts WHERE 1=1` + blogPostWhere(filter, args)

	query += ` ORDER BY created_at DESC, id DESC`
	if !filter.IsUnlimited() {
		query += ` LIMIT :limit OFFSET :offset`
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list blog posts").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var posts []*blogpost.BlogPost
	for rows.Next() {
		var post blogpost.BlogPost
		if err := rows.StructScan(&post); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Failed to scan blog post row").
				Mark(ierr.ErrDatabase)
		}
		posts = append(posts, &post)
	}
	return posts, nil
}

func (r *blogPostRepository) Count(ctx context.Context, filter *types.BlogPostFilter) (int, error) {
	args := map[string]interface{}{}
	query := `SELECT COUNT(*) FROM blog_posts WHERE 1=1` + blogPostWhere(filter, args)
	return namedCount(ctx, r.db, query, args)
}

func (r *blogPostRepository) Update(ctx context.Context, post *blogpost.BlogPost) error {
	query := `
		UPDATE blog_posts SET
			slug = :slug,
			title = :title,
			excerpt = :excerpt,
			content = :content,
			author = :author,
			tags = :tags,
			is_published = :is_published,
			published_at = :published_at,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id`

	r.logger.Debugw("updating blog post", "post_id", post.ID, "status", post.Status)

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to update the blog post").
			Mark(ierr.ErrDatabase)
	}
	return requireRowAffected(result, post.ID)
}
