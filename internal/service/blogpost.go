package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/visahub/visahub/internal/api/dto"
	"github.com/visahub/visahub/internal/cache"
	"github.com/visahub/visahub/internal/domain/blogpost"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/types"
)

type BlogPostService interface {
	CreateBlogPost(ctx context.Context, req dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error)
	GetBlogPost(ctx context.Context, id string) (*dto.BlogPostResponse, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*dto.BlogPostResponse, error)
	ListBlogPosts(ctx context.Context, filter *types.BlogPostFilter) (*dto.ListBlogPostsResponse, error)
	ListPublishedPosts(ctx context.Context, tag string, filter *types.QueryFilter) (*dto.ListBlogPostsResponse, error)
	UpdateBlogPost(ctx context.Context, id string, req dto.UpdateBlogPostRequest) (*dto.BlogPostResponse, error)
	UpdateBlogPostStatus(ctx context.Context, id string, req dto.UpdateBlogPostStatusRequest) (*dto.BlogPostResponse, error)
	ArchiveBlogPost(ctx context.Context, id string) error
	GenerateDraft(ctx context.Context, req dto.GenerateBlogPostRequest) (*dto.BlogPostResponse, error)
}

type blogPostService struct {
	ServiceParams
}

func NewBlogPostService(params ServiceParams) BlogPostService {
	return &blogPostService{
		ServiceParams: params,
	}
}

func (s *blogPostService) CreateBlogPost(ctx context.Context, req dto.CreateBlogPostRequest) (*dto.BlogPostResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	post := req.ToBlogPost()
	if err := s.BlogPostRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.Cache.DeleteByPrefix(ctx, cache.PrefixBlogPost)

	return &dto.BlogPostResponse{BlogPost: post}, nil
}

func (s *blogPostService) GetBlogPost(ctx context.Context, id string) (*dto.BlogPostResponse, error) {
	post, err := s.BlogPostRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.BlogPostResponse{BlogPost: post}, nil
}

// GetPublishedBySlug serves the public article page. Unpublished posts
// are reported as not found, never as forbidden.
func (s *blogPostService) GetPublishedBySlug(ctx context.Context, slug string) (*dto.BlogPostResponse, error) {
	key := cache.GenerateKey(cache.PrefixBlogPost, "slug", slug)
	if cached, found := s.Cache.Get(ctx, key); found {
		if resp, ok := cached.(*dto.BlogPostResponse); ok {
			return resp, nil
		}
	}

	post, err := s.BlogPostRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished {
		return nil, ierr.NewErrorf("post not found: %s", slug).
			WithHint("Post not found").
			Mark(ierr.ErrNotFound)
	}

	resp := &dto.BlogPostResponse{BlogPost: post}
	s.Cache.Set(ctx, key, resp, cache.DefaultExpiration)
	return resp, nil
}

func (s *blogPostService) ListBlogPosts(ctx context.Context, filter *types.BlogPostFilter) (*dto.ListBlogPostsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultBlogPostFilter()
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	posts, err := s.BlogPostRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.BlogPostRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(posts, func(p *blogpost.BlogPost, _ int) *dto.BlogPostListItem {
		return dto.NewBlogPostListItem(p)
	})

	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetPage())
	return &resp, nil
}

// ListPublishedPosts serves the public blog index; cached until the
// next editorial write.
func (s *blogPostService) ListPublishedPosts(ctx context.Context, tag string, qf *types.QueryFilter) (*dto.ListBlogPostsResponse, error) {
	if qf == nil {
		qf = types.NewDefaultQueryFilter()
	}

	key := cache.GenerateKey(cache.PrefixBlogPost, "public", tag, qf.GetPage(), qf.GetLimit())
	if cached, found := s.Cache.Get(ctx, key); found {
		if resp, ok := cached.(*dto.ListBlogPostsResponse); ok {
			return resp, nil
		}
	}

	filter := &types.BlogPostFilter{
		QueryFilter:   qf,
		Tag:           tag,
		PublishedOnly: true,
	}

	resp, err := s.ListBlogPosts(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(ctx, key, resp, cache.DefaultExpiration)
	return resp, nil
}

func (s *blogPostService) UpdateBlogPost(ctx context.Context, id string, req dto.UpdateBlogPostRequest) (*dto.BlogPostResponse, error) {
	post, err := s.BlogPostRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Slug != nil {
		post.Slug = *req.Slug
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Author != nil {
		post.Author = *req.Author
	}
	if req.Tags != nil {
		post.Tags = *req.Tags
	}
	post.Touch()

	if err := s.BlogPostRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.Cache.DeleteByPrefix(ctx, cache.PrefixBlogPost)

	return &dto.BlogPostResponse{BlogPost: post}, nil
}

func (s *blogPostService) UpdateBlogPostStatus(ctx context.Context, id string, req dto.UpdateBlogPostStatusRequest) (*dto.BlogPostResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	post, err := s.BlogPostRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Status = req.Status
	switch req.Status {
	case types.BlogPostStatusPublished:
		post.IsPublished = true
		if post.PublishedAt == nil {
			now := time.Now().UTC()
			post.PublishedAt = &now
		}
	default:
		post.IsPublished = false
	}
	post.Touch()

	if err := s.BlogPostRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.Cache.DeleteByPrefix(ctx, cache.PrefixBlogPost)

	return &dto.BlogPostResponse{BlogPost: post}, nil
}

// ArchiveBlogPost is the delete operation for posts: the row stays for
// admin tooling, the public site never sees it again.
func (s *blogPostService) ArchiveBlogPost(ctx context.Context, id string) error {
	_, err := s.UpdateBlogPostStatus(ctx, id, dto.UpdateBlogPostStatusRequest{
		Status: types.BlogPostStatusArchived,
	})
	return err
}

// GenerateDraft fills a canned article skeleton from the topic and
// keywords and saves the result as a draft for editorial cleanup.
func (s *blogPostService) GenerateDraft(ctx context.Context, req dto.GenerateBlogPostRequest) (*dto.BlogPostResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	title := fmt.Sprintf("A Practical Guide to %s", req.Topic)
	if req.Country != "" {
		title = fmt.Sprintf("A Practical Guide to %s in %s", req.Topic, req.Country)
	}

	author := req.Author
	if author == "" {
		author = "VisaHub Editorial"
	}

	createReq := dto.CreateBlogPostRequest{
		Title:   title,
		Excerpt: fmt.Sprintf("Everything you need to know about %s, from requirements to timelines.", req.Topic),
		Content: generateDraftBody(req.Topic, req.Country, req.Keywords),
		Author:  author,
		Tags:    req.Keywords,
	}

	return s.CreateBlogPost(ctx, createReq)
}

func generateDraftBody(topic, country string, keywords []string) string {
	where := "your destination country"
	if country != "" {
		where = country
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## Why %s matters\n\n", topic)
	fmt.Fprintf(&b, "If you are planning a move to %s, understanding %s early saves weeks of back and forth with the embassy. ", where, topic)
	b.WriteString("This guide walks through the essentials our consultants cover in every session.\n\n")

	fmt.Fprintf(&b, "## What to prepare\n\n")
	fmt.Fprintf(&b, "Start by collecting your identity documents, proof of funds, and any paperwork specific to %s. ", topic)
	b.WriteString("Requirements vary by nationality, so confirm the current checklist before you book an appointment.\n\n")

	if len(keywords) > 0 {
		b.WriteString("## Key points\n\n")
		for _, kw := range keywords {
			fmt.Fprintf(&b, "- %s: what it means for your application and how to address it.\n", kw)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Next steps\n\n")
	fmt.Fprintf(&b, "Book a consultation with our team to review your situation around %s in detail. ", topic)
	b.WriteString("We will map your documents against the latest requirements and build a filing timeline that fits your travel plans.\n")

	return b.String()
}
