package service

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/visahub/visahub/internal/api/dto"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/testutil"
	"github.com/visahub/visahub/internal/types"
)

type InquiryServiceSuite struct {
	testutil.BaseServiceTestSuite
	service InquiryService
}

func TestInquiryService(t *testing.T) {
	suite.Run(t, new(InquiryServiceSuite))
}

func (s *InquiryServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewInquiryService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *InquiryServiceSuite) newCreateRequest() dto.CreateInquiryRequest {
	return dto.CreateInquiryRequest{
		Name:    "Miguel Torres",
		Email:   "miguel@example.com",
		Subject: "Processing times for Schengen visas",
		Message: "How long does a short-stay visa usually take?",
	}
}

func (s *InquiryServiceSuite) TestCreateInquiry() {
	resp, err := s.service.CreateInquiry(s.GetContext(), s.newCreateRequest())
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal(types.InquiryStatusNew.String(), resp.Status)

	stored, err := s.service.GetInquiry(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Equal("Miguel Torres", stored.Name)
	s.Empty(stored.AdminReply)
}

func (s *InquiryServiceSuite) TestCreateInquiryValidation() {
	req := s.newCreateRequest()
	req.Email = ""

	_, err := s.service.CreateInquiry(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *InquiryServiceSuite) TestUpdateInquiryStatus() {
	created, err := s.service.CreateInquiry(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	updated, err := s.service.UpdateInquiryStatus(s.GetContext(), created.ID, dto.UpdateInquiryStatusRequest{
		Status: types.InquiryStatusRead,
	})
	s.NoError(err)
	s.Equal(types.InquiryStatusRead, updated.Status)
}

func (s *InquiryServiceSuite) TestReplyInquiry() {
	created, err := s.service.CreateInquiry(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	updated, err := s.service.ReplyInquiry(s.GetContext(), created.ID, dto.ReplyInquiryRequest{
		Reply: "Short-stay applications are typically decided within 15 calendar days.",
	})
	s.NoError(err)
	s.Equal(types.InquiryStatusReplied, updated.Status)
	s.Equal("Short-stay applications are typically decided within 15 calendar days.", updated.AdminReply)
}

func (s *InquiryServiceSuite) TestReplyInquiryNotFound() {
	_, err := s.service.ReplyInquiry(s.GetContext(), "inq_missing", dto.ReplyInquiryRequest{Reply: "hello"})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *InquiryServiceSuite) TestListInquiriesByStatus() {
	first, err := s.service.CreateInquiry(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	second := s.newCreateRequest()
	second.Email = "laura@example.com"
	_, err = s.service.CreateInquiry(s.GetContext(), second)
	s.NoError(err)

	_, err = s.service.ReplyInquiry(s.GetContext(), first.ID, dto.ReplyInquiryRequest{Reply: "done"})
	s.NoError(err)

	resp, err := s.service.ListInquiries(s.GetContext(), &types.InquiryFilter{
		Status: types.InquiryStatusNew,
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
}

func (s *InquiryServiceSuite) TestDeleteInquiry() {
	created, err := s.service.CreateInquiry(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	s.NoError(s.service.DeleteInquiry(s.GetContext(), created.ID))

	_, err = s.service.GetInquiry(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
