package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"github.com/visahub/visahub/internal/api/dto"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/testutil"
)

type TestimonialServiceSuite struct {
	testutil.BaseServiceTestSuite
	service TestimonialService
}

func TestTestimonialService(t *testing.T) {
	suite.Run(t, new(TestimonialServiceSuite))
}

func (s *TestimonialServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewTestimonialService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *TestimonialServiceSuite) newCreateRequest() dto.CreateTestimonialRequest {
	return dto.CreateTestimonialRequest{
		ClientName:    "Priya Sharma",
		ClientEmail:   "priya@example.com",
		ClientCountry: "India",
		VisaType:      "Study Permit",
		Rating:        5,
		Text:          "The team walked me through every step of the process.",
	}
}

func (s *TestimonialServiceSuite) TestCreateTestimonialStartsUnapproved() {
	resp, err := s.service.CreateTestimonial(s.GetContext(), s.newCreateRequest())
	s.NoError(err)
	s.NotEmpty(resp.ID)

	stored, err := s.service.GetTestimonial(s.GetContext(), resp.ID)
	s.NoError(err)
	s.False(stored.IsApproved)
	s.False(stored.IsFeatured)
}

func (s *TestimonialServiceSuite) TestCreateTestimonialRatingBounds() {
	req := s.newCreateRequest()
	req.Rating = 6

	_, err := s.service.CreateTestimonial(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *TestimonialServiceSuite) TestPublicListOnlyApproved() {
	created, err := s.service.CreateTestimonial(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	public, err := s.service.ListPublicTestimonials(s.GetContext(), nil, nil)
	s.NoError(err)
	s.Empty(public.Items)

	_, err = s.service.UpdateTestimonial(s.GetContext(), created.ID, dto.UpdateTestimonialRequest{
		IsApproved: lo.ToPtr(true),
	})
	s.NoError(err)

	public, err = s.service.ListPublicTestimonials(s.GetContext(), nil, nil)
	s.NoError(err)
	s.Len(public.Items, 1)
	s.Equal(created.ID, public.Items[0].ID)
}

func (s *TestimonialServiceSuite) TestPublicListFeaturedFilter() {
	first, err := s.service.CreateTestimonial(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	second := s.newCreateRequest()
	second.ClientEmail = "raj@example.com"
	secondResp, err := s.service.CreateTestimonial(s.GetContext(), second)
	s.NoError(err)

	_, err = s.service.UpdateTestimonial(s.GetContext(), first.ID, dto.UpdateTestimonialRequest{
		IsApproved: lo.ToPtr(true),
	})
	s.NoError(err)
	_, err = s.service.UpdateTestimonial(s.GetContext(), secondResp.ID, dto.UpdateTestimonialRequest{
		IsApproved: lo.ToPtr(true),
		IsFeatured: lo.ToPtr(true),
	})
	s.NoError(err)

	featured, err := s.service.ListPublicTestimonials(s.GetContext(), lo.ToPtr(true), nil)
	s.NoError(err)
	s.Len(featured.Items, 1)
	s.Equal(secondResp.ID, featured.Items[0].ID)
}

func (s *TestimonialServiceSuite) TestAdminListIncludesUnapproved() {
	_, err := s.service.CreateTestimonial(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	resp, err := s.service.ListTestimonials(s.GetContext(), nil)
	s.NoError(err)
	s.Len(resp.Items, 1)
}

func (s *TestimonialServiceSuite) TestDeleteTestimonial() {
	created, err := s.service.CreateTestimonial(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	s.NoError(s.service.DeleteTestimonial(s.GetContext(), created.ID))

	_, err = s.service.GetTestimonial(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
