package dto

import (
	"time"

	"github.com/visahub/visahub/internal/domain/blogpost"
	"github.com/visahub/visahub/internal/types"
	"github.com/visahub/visahub/internal/validator"
)

// CreateBlogPostRequest is the admin payload for a new post. Posts
// always start as drafts; publishing is a separate status update.
type CreateBlogPostRequest struct {
	Title   string   `json:"title" binding:"required" validate:"required"`
	Slug    string   `json:"slug" validate:"omitempty,max=200"`
	Excerpt string   `json:"excerpt" validate:"omitempty,max=500"`
	Content string   `json:"content" binding:"required" validate:"required"`
	Author  string   `json:"author" binding:"required" validate:"required"`
	Tags    []string `json:"tags" validate:"omitempty"`
}

func (r *CreateBlogPostRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateBlogPostRequest) ToBlogPost() *blogpost.BlogPost {
	slug := r.Slug
	if slug == "" {
		slug = blogpost.Slugify(r.Title)
	}
	return &blogpost.BlogPost{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BLOG_POST),
		Slug:        slug,
		Title:       r.Title,
		Excerpt:     r.Excerpt,
		Content:     r.Content,
		Author:      r.Author,
		Tags:        r.Tags,
		IsPublished: false,
		Status:      types.BlogPostStatusDraft,
		BaseModel:   types.GetDefaultBaseModel(),
	}
}

// UpdateBlogPostRequest carries content edits; nil fields are untouched
type UpdateBlogPostRequest struct {
	Title   *string   `json:"title,omitempty"`
	Slug    *string   `json:"slug,omitempty"`
	Excerpt *string   `json:"excerpt,omitempty"`
	Content *string   `json:"content,omitempty"`
	Author  *string   `json:"author,omitempty"`
	Tags    *[]string `json:"tags,omitempty"`
}

// UpdateBlogPostStatusRequest moves a post between editorial states
type UpdateBlogPostStatusRequest struct {
	Status types.BlogPostStatus `json:"status" binding:"required"`
}

func (r *UpdateBlogPostStatusRequest) Validate() error {
	return r.Status.Validate()
}

// GenerateBlogPostRequest asks for a canned draft on a topic
type GenerateBlogPostRequest struct {
	Topic    string   `json:"topic" binding:"required" validate:"required"`
	Country  string   `json:"country" validate:"omitempty"`
	Keywords []string `json:"keywords" validate:"omitempty,max=10"`
	Author   string   `json:"author" validate:"omitempty"`
}

func (r *GenerateBlogPostRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type BlogPostResponse struct {
	*blogpost.BlogPost
}

// BlogPostListItem omits the full content for listing pages
type BlogPostListItem struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Author      string     `json:"author"`
	Tags        []string   `json:"tags"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewBlogPostListItem(p *blogpost.BlogPost) *BlogPostListItem {
	return &BlogPostListItem{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Author:      p.Author,
		Tags:        p.Tags,
		PublishedAt: p.PublishedAt,
		Status:      p.Status.String(),
		CreatedAt:   p.CreatedAt,
	}
}

// ListBlogPostsResponse represents a paginated list of posts
type ListBlogPostsResponse = types.ListResponse[*BlogPostListItem]
