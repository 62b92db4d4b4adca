package memory

import (
	"context"

	"github.com/lib/pq"
	"github.com/samber/lo"
	"github.com/visahub/visahub/internal/domain/blogpost"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/types"
)

// InMemoryBlogPostStore implements blogpost.Repository
type InMemoryBlogPostStore struct {
	*InMemoryStore[*blogpost.BlogPost]
}

// NewInMemoryBlogPostStore creates a new in-memory blog post store
func NewInMemoryBlogPostStore() *InMemoryBlogPostStore {
	return &InMemoryBlogPostStore{
		InMemoryStore: NewInMemoryStore[*blogpost.BlogPost](),
	}
}

func copyBlogPost(p *blogpost.BlogPost) *blogpost.BlogPost {
	if p == nil {
		return nil
	}

	out := *p
	out.Tags = append(pq.StringArray{}, p.Tags...)
	if p.PublishedAt != nil {
		t := *p.PublishedAt
		out.PublishedAt = &t
	}
	return &out
}

func (s *InMemoryBlogPostStore) Create(ctx context.Context, p *blogpost.BlogPost) error {
	return s.InMemoryStore.Create(ctx, p.ID, copyBlogPost(p))
}

func (s *InMemoryBlogPostStore) Get(ctx context.Context, id string) (*blogpost.BlogPost, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyBlogPost(p), nil
}

func (s *InMemoryBlogPostStore) GetBySlug(ctx context.Context, slug string) (*blogpost.BlogPost, error) {
	filterFn := func(_ context.Context, p *blogpost.BlogPost, _ interface{}) bool {
		return p.Slug == slug
	}

	posts, err := s.InMemoryStore.List(ctx, nil, filterFn, nil)
	if err != nil {
		return nil, err
	}

	if len(posts) == 0 {
		return nil, ierr.NewErrorf("post with slug %s not found", slug).
			Mark(ierr.ErrNotFound)
	}

	return copyBlogPost(posts[0]), nil
}

func (s *InMemoryBlogPostStore) List(ctx context.Context, filter *types.BlogPostFilter) ([]*blogpost.BlogPost, error) {
	items, err := s.InMemoryStore.List(ctx, filter, blogPostFilterFn, blogPostSortFn)
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(p *blogpost.BlogPost, _ int) *blogpost.BlogPost {
		return copyBlogPost(p)
	}), nil
}

func (s *InMemoryBlogPostStore) Count(ctx context.Context, filter *types.BlogPostFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, blogPostFilterFn)
}

func (s *InMemoryBlogPostStore) Update(ctx context.Context, p *blogpost.BlogPost) error {
	return s.InMemoryStore.Update(ctx, p.ID, copyBlogPost(p))
}

func blogPostFilterFn(_ context.Context, p *blogpost.BlogPost, filter interface{}) bool {
	f, ok := filter.(*types.BlogPostFilter)
	if !ok || f == nil {
		return true
	}

	if f.PublishedOnly && !p.IsPublished {
		return false
	}

	if f.Status != "" && p.Status != f.Status {
		return false
	}

	if f.Tag != "" && !lo.Contains([]string(p.Tags), f.Tag) {
		return false
	}

	return true
}

func blogPostSortFn(i, j *blogpost.BlogPost) bool {
	if !i.CreatedAt.Equal(j.CreatedAt) {
		return i.CreatedAt.After(j.CreatedAt)
	}
	return i.ID > j.ID
}
