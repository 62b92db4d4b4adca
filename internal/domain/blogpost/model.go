package blogpost

import (
	"time"

	"github.com/lib/pq"
	"github.com/visahub/visahub/internal/types"
)

// BlogPost represents an article on the public site. Posts are
// soft-deleted: archiving drops them from public listings but keeps
// the row for admin tooling.
type BlogPost struct {
	// ID is the unique identifier for the post
	ID string `db:"id" json:"id"`

	// Slug is the URL-safe identifier used by the public site
	Slug string `db:"slug" json:"slug"`

	// Title is the post title
	Title string `db:"title" json:"title"`

	// Excerpt is the short summary shown in listings
	Excerpt string `db:"excerpt" json:"excerpt"`

	// Content is the full article body
	Content string `db:"content" json:"content"`

	// Author is the display name of the writer
	Author string `db:"author" json:"author"`

	// Tags categorize the post
	Tags pq.StringArray `db:"tags" json:"tags"`

	// IsPublished mirrors Status for cheap public-listing filters
	IsPublished bool `db:"is_published" json:"is_published"`

	// PublishedAt is set the first time the post is published
	PublishedAt *time.Time `db:"published_at" json:"published_at,omitempty"`

	// Status is the editorial state
	Status types.BlogPostStatus `db:"status" json:"status"`

	types.BaseModel
}
