package service

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"github.com/visahub/visahub/internal/api/dto"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/testutil"
	"github.com/visahub/visahub/internal/types"
)

type ConsultationServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ConsultationService
}

func TestConsultationService(t *testing.T) {
	suite.Run(t, new(ConsultationServiceSuite))
}

func (s *ConsultationServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewConsultationService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *ConsultationServiceSuite) newCreateRequest() dto.CreateConsultationRequest {
	return dto.CreateConsultationRequest{
		ClientInfo: dto.ClientInfo{
			Name:  "Ana Silva",
			Email: "ana.silva@example.com",
			Phone: "+351912345678",
		},
		ConsultationDetails: dto.ConsultationDetails{
			VisaType:      "Student Visa",
			Country:       "Australia",
			PreferredDate: "2026-09-15",
			PreferredTime: "morning",
			Message:       "Looking for guidance on the GTE statement.",
		},
	}
}

func (s *ConsultationServiceSuite) TestCreateConsultation() {
	resp, err := s.service.CreateConsultation(s.GetContext(), s.newCreateRequest())
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal(types.ConsultationStatusPending.String(), resp.Status)

	stored, err := s.service.GetConsultation(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Equal("Ana Silva", stored.ClientName)
	s.Equal("Australia", stored.Country)
	s.Equal(types.ConsultationStatusPending, stored.Status)
	s.Nil(stored.ScheduledAt)
}

func (s *ConsultationServiceSuite) TestCreateConsultationValidation() {
	req := s.newCreateRequest()
	req.ConsultationDetails.PreferredDate = "15/09/2026"

	_, err := s.service.CreateConsultation(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ConsultationServiceSuite) TestConfirmRequiresSchedule() {
	created, err := s.service.CreateConsultation(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	_, err = s.service.UpdateConsultationStatus(s.GetContext(), created.ID, dto.UpdateConsultationStatusRequest{
		Status: types.ConsultationStatusConfirmed,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	stored, err := s.service.GetConsultation(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.ConsultationStatusPending, stored.Status)
}

func (s *ConsultationServiceSuite) TestConfirmConsultation() {
	created, err := s.service.CreateConsultation(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	scheduledAt := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	updated, err := s.service.UpdateConsultationStatus(s.GetContext(), created.ID, dto.UpdateConsultationStatusRequest{
		Status:      types.ConsultationStatusConfirmed,
		AdminNotes:  lo.ToPtr("assigned to senior consultant"),
		ScheduledAt: &scheduledAt,
	})
	s.NoError(err)
	s.Equal(types.ConsultationStatusConfirmed, updated.Status)
	s.NotNil(updated.ScheduledAt)
	s.True(updated.ScheduledAt.Equal(scheduledAt))
	s.Equal("assigned to senior consultant", updated.AdminNotes)
}

func (s *ConsultationServiceSuite) TestCancelConsultation() {
	created, err := s.service.CreateConsultation(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	updated, err := s.service.UpdateConsultationStatus(s.GetContext(), created.ID, dto.UpdateConsultationStatusRequest{
		Status: types.ConsultationStatusCancelled,
	})
	s.NoError(err)
	s.Equal(types.ConsultationStatusCancelled, updated.Status)
}

func (s *ConsultationServiceSuite) TestListConsultationsByStatus() {
	first, err := s.service.CreateConsultation(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	second := s.newCreateRequest()
	second.ClientInfo.Email = "joao@example.com"
	_, err = s.service.CreateConsultation(s.GetContext(), second)
	s.NoError(err)

	scheduledAt := time.Date(2026, 9, 20, 14, 0, 0, 0, time.UTC)
	_, err = s.service.UpdateConsultationStatus(s.GetContext(), first.ID, dto.UpdateConsultationStatusRequest{
		Status:      types.ConsultationStatusConfirmed,
		ScheduledAt: &scheduledAt,
	})
	s.NoError(err)

	resp, err := s.service.ListConsultations(s.GetContext(), &types.ConsultationFilter{
		Status: types.ConsultationStatusConfirmed,
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal(first.ID, resp.Items[0].ID)

	all, err := s.service.ListConsultations(s.GetContext(), nil)
	s.NoError(err)
	s.Equal(2, all.Pagination.Total)
}

func (s *ConsultationServiceSuite) TestDeleteConsultation() {
	created, err := s.service.CreateConsultation(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	s.NoError(s.service.DeleteConsultation(s.GetContext(), created.ID))

	_, err = s.service.GetConsultation(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
