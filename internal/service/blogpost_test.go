package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"github.com/visahub/visahub/internal/api/dto"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/testutil"
	"github.com/visahub/visahub/internal/types"
)

type BlogPostServiceSuite struct {
	testutil.BaseServiceTestSuite
	service BlogPostService
}

func TestBlogPostService(t *testing.T) {
	suite.Run(t, new(BlogPostServiceSuite))
}

func (s *BlogPostServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewBlogPostService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *BlogPostServiceSuite) newCreateRequest() dto.CreateBlogPostRequest {
	return dto.CreateBlogPostRequest{
		Title:   "Schengen Visa Checklist for 2026",
		Excerpt: "The documents consulates actually ask for.",
		Content: "## Documents\n\nPassport, itinerary, insurance.",
		Author:  "Ana Silva",
		Tags:    []string{"schengen", "checklist"},
	}
}

func (s *BlogPostServiceSuite) TestCreateBlogPostStartsAsDraft() {
	resp, err := s.service.CreateBlogPost(s.GetContext(), s.newCreateRequest())
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal(types.BlogPostStatusDraft, resp.Status)
	s.False(resp.IsPublished)
	s.Nil(resp.PublishedAt)
	s.Equal("schengen-visa-checklist-for-2026", resp.Slug)
}

func (s *BlogPostServiceSuite) TestCreateBlogPostKeepsExplicitSlug() {
	req := s.newCreateRequest()
	req.Slug = "schengen-2026"

	resp, err := s.service.CreateBlogPost(s.GetContext(), req)
	s.NoError(err)
	s.Equal("schengen-2026", resp.Slug)
}

func (s *BlogPostServiceSuite) TestPublishSetsPublishedAtOnce() {
	created, err := s.service.CreateBlogPost(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	published, err := s.service.UpdateBlogPostStatus(s.GetContext(), created.ID, dto.UpdateBlogPostStatusRequest{
		Status: types.BlogPostStatusPublished,
	})
	s.NoError(err)
	s.True(published.IsPublished)
	s.Require().NotNil(published.PublishedAt)
	firstPublish := *published.PublishedAt

	// unpublish then republish keeps the original publication time
	_, err = s.service.UpdateBlogPostStatus(s.GetContext(), created.ID, dto.UpdateBlogPostStatusRequest{
		Status: types.BlogPostStatusDraft,
	})
	s.NoError(err)

	again, err := s.service.UpdateBlogPostStatus(s.GetContext(), created.ID, dto.UpdateBlogPostStatusRequest{
		Status: types.BlogPostStatusPublished,
	})
	s.NoError(err)
	s.Require().NotNil(again.PublishedAt)
	s.True(again.PublishedAt.Equal(firstPublish))
}

func (s *BlogPostServiceSuite) TestGetPublishedBySlug() {
	created, err := s.service.CreateBlogPost(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	// drafts are invisible on the public surface
	_, err = s.service.GetPublishedBySlug(s.GetContext(), created.Slug)
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	_, err = s.service.UpdateBlogPostStatus(s.GetContext(), created.ID, dto.UpdateBlogPostStatusRequest{
		Status: types.BlogPostStatusPublished,
	})
	s.NoError(err)

	post, err := s.service.GetPublishedBySlug(s.GetContext(), created.Slug)
	s.NoError(err)
	s.Equal(created.ID, post.ID)
}

func (s *BlogPostServiceSuite) TestArchiveHidesFromPublicList() {
	created, err := s.service.CreateBlogPost(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	_, err = s.service.UpdateBlogPostStatus(s.GetContext(), created.ID, dto.UpdateBlogPostStatusRequest{
		Status: types.BlogPostStatusPublished,
	})
	s.NoError(err)

	public, err := s.service.ListPublishedPosts(s.GetContext(), "", nil)
	s.NoError(err)
	s.Len(public.Items, 1)

	s.NoError(s.service.ArchiveBlogPost(s.GetContext(), created.ID))

	public, err = s.service.ListPublishedPosts(s.GetContext(), "", nil)
	s.NoError(err)
	s.Empty(public.Items)

	// archived posts stay readable through the admin surface
	admin, err := s.service.GetBlogPost(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.BlogPostStatusArchived, admin.Status)
}

func (s *BlogPostServiceSuite) TestListPublishedPostsByTag() {
	first, err := s.service.CreateBlogPost(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	second := s.newCreateRequest()
	second.Title = "Work Permits in Canada"
	second.Tags = []string{"canada", "work"}
	secondResp, err := s.service.CreateBlogPost(s.GetContext(), second)
	s.NoError(err)

	for _, id := range []string{first.ID, secondResp.ID} {
		_, err = s.service.UpdateBlogPostStatus(s.GetContext(), id, dto.UpdateBlogPostStatusRequest{
			Status: types.BlogPostStatusPublished,
		})
		s.NoError(err)
	}

	resp, err := s.service.ListPublishedPosts(s.GetContext(), "canada", nil)
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal(secondResp.ID, resp.Items[0].ID)
}

func (s *BlogPostServiceSuite) TestUpdateBlogPost() {
	created, err := s.service.CreateBlogPost(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	updated, err := s.service.UpdateBlogPost(s.GetContext(), created.ID, dto.UpdateBlogPostRequest{
		Title:   lo.ToPtr("Schengen Visa Checklist, Revised"),
		Content: lo.ToPtr("## Revised\n\nUpdated requirements."),
	})
	s.NoError(err)
	s.Equal("Schengen Visa Checklist, Revised", updated.Title)
	s.Equal(created.Slug, updated.Slug)
}

func (s *BlogPostServiceSuite) TestGenerateDraft() {
	resp, err := s.service.GenerateDraft(s.GetContext(), dto.GenerateBlogPostRequest{
		Topic:    "student visas",
		Country:  "Australia",
		Keywords: []string{"study", "australia"},
	})
	s.NoError(err)
	s.Equal("A Practical Guide to student visas in Australia", resp.Title)
	s.Equal("VisaHub Editorial", resp.Author)
	s.Equal(types.BlogPostStatusDraft, resp.Status)
	s.False(resp.IsPublished)
	s.NotEmpty(resp.Slug)
	s.Contains(resp.Content, "student visas")
	s.ElementsMatch([]string{"study", "australia"}, []string(resp.Tags))
}
