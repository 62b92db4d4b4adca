package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/visahub/visahub/internal/api/dto"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/testutil"
	"github.com/visahub/visahub/internal/types"
)

type ApplicationServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ApplicationService
}

func TestApplicationService(t *testing.T) {
	suite.Run(t, new(ApplicationServiceSuite))
}

func (s *ApplicationServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewApplicationService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *ApplicationServiceSuite) newCreateRequest() dto.CreateApplicationRequest {
	return dto.CreateApplicationRequest{
		PersonalInfo: dto.PersonalInfo{
			FirstName:   "Ana",
			LastName:    "Silva",
			Email:       "ana.silva@example.com",
			Phone:       "+351912345678",
			Nationality: "Portuguese",
			DateOfBirth: "1990-04-12",
		},
		VisaInfo: dto.VisaInfo{
			Country:            "Canada",
			VisaType:           "Work Permit",
			PurposeOfTravel:    "Employment",
			IntendedTravelDate: "2026-11-01",
		},
	}
}

func (s *ApplicationServiceSuite) TestCreateApplication() {
	resp, err := s.service.CreateApplication(s.GetContext(), s.newCreateRequest())
	s.NoError(err)
	s.NotNil(resp)
	s.NotEmpty(resp.ID)
	s.True(strings.HasPrefix(resp.ID, types.UUID_PREFIX_APPLICATION+"_"))
	s.True(strings.HasPrefix(resp.ReferenceNumber, types.REFERENCE_PREFIX_APPLICATION+"-"))
	s.Equal(types.ApplicationStatusPending.String(), resp.Status)

	stored, err := s.service.GetApplication(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Equal("Ana", stored.FirstName)
	s.Equal("Silva", stored.LastName)
	s.Equal("Canada", stored.Country)
	s.Equal(types.ApplicationStatusPending, stored.Status)
	s.Empty(stored.Documents)
}

func (s *ApplicationServiceSuite) TestCreateApplicationValidation() {
	req := s.newCreateRequest()
	req.PersonalInfo.Email = "not-an-email"

	resp, err := s.service.CreateApplication(s.GetContext(), req)
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsValidation(err))
}

func (s *ApplicationServiceSuite) TestGetApplicationNotFound() {
	resp, err := s.service.GetApplication(s.GetContext(), "app_missing")
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsNotFound(err))
}

func (s *ApplicationServiceSuite) TestUpdateApplicationStatus() {
	created, err := s.service.CreateApplication(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	notes := "documents look complete"
	updated, err := s.service.UpdateApplicationStatus(s.GetContext(), created.ID, dto.UpdateApplicationStatusRequest{
		Status: types.ApplicationStatusUnderReview,
		Notes:  &notes,
	})
	s.NoError(err)
	s.Equal(types.ApplicationStatusUnderReview, updated.Status)
	s.Equal(notes, updated.Notes)
}

func (s *ApplicationServiceSuite) TestUpdateApplicationStatusInvalid() {
	created, err := s.service.CreateApplication(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	_, err = s.service.UpdateApplicationStatus(s.GetContext(), created.ID, dto.UpdateApplicationStatusRequest{
		Status: types.ApplicationStatus("escalated"),
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	// the rejected update must not touch the stored row
	stored, err := s.service.GetApplication(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.ApplicationStatusPending, stored.Status)
}

func (s *ApplicationServiceSuite) TestListApplicationsPagination() {
	for i := 0; i < 25; i++ {
		req := s.newCreateRequest()
		req.PersonalInfo.Email = fmt.Sprintf("applicant%02d@example.com", i)
		_, err := s.service.CreateApplication(s.GetContext(), req)
		s.NoError(err)
	}

	page := 2
	limit := 10
	resp, err := s.service.ListApplications(s.GetContext(), &types.ApplicationFilter{
		QueryFilter: &types.QueryFilter{Page: &page, Limit: &limit},
	})
	s.NoError(err)
	s.Len(resp.Items, 10)
	s.Equal(25, resp.Pagination.Total)
	s.Equal(3, resp.Pagination.TotalPages)
	s.Equal(2, resp.Pagination.CurrentPage)
	s.Equal(10, resp.Pagination.Limit)
}

func (s *ApplicationServiceSuite) TestListApplicationsByStatus() {
	created, err := s.service.CreateApplication(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	other := s.newCreateRequest()
	other.PersonalInfo.Email = "second@example.com"
	_, err = s.service.CreateApplication(s.GetContext(), other)
	s.NoError(err)

	_, err = s.service.UpdateApplicationStatus(s.GetContext(), created.ID, dto.UpdateApplicationStatusRequest{
		Status: types.ApplicationStatusApproved,
	})
	s.NoError(err)

	resp, err := s.service.ListApplications(s.GetContext(), &types.ApplicationFilter{
		Status: types.ApplicationStatusApproved,
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal(created.ID, resp.Items[0].ID)
}

func (s *ApplicationServiceSuite) TestAddDocument() {
	created, err := s.service.CreateApplication(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	resp, err := s.service.AddDocument(s.GetContext(), created.ID, "passport.pdf", "application/pdf", []byte("%PDF-1.4"))
	s.NoError(err)
	s.NotEmpty(resp.DocumentID)
	s.Equal("passport.pdf", resp.FileName)
	s.True(strings.HasPrefix(resp.StorageRef, "local://"))

	stored, err := s.service.GetApplication(s.GetContext(), created.ID)
	s.NoError(err)
	s.Len(stored.Documents, 1)
	s.Equal(resp.DocumentID, stored.Documents[0].ID)
	s.Equal("application/pdf", stored.Documents[0].ContentType)
}

func (s *ApplicationServiceSuite) TestAddDocumentUnknownApplication() {
	_, err := s.service.AddDocument(s.GetContext(), "app_missing", "passport.pdf", "application/pdf", []byte("x"))
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ApplicationServiceSuite) TestDeleteApplication() {
	created, err := s.service.CreateApplication(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	s.NoError(s.service.DeleteApplication(s.GetContext(), created.ID))

	_, err = s.service.GetApplication(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
