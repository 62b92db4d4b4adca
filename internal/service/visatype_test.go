package service

import (
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/visahub/visahub/internal/api/dto"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/testutil"
	"github.com/visahub/visahub/internal/types"
)

type VisaTypeServiceSuite struct {
	testutil.BaseServiceTestSuite
	service   VisaTypeService
	countries CountryService
	countryID string
}

func TestVisaTypeService(t *testing.T) {
	suite.Run(t, new(VisaTypeServiceSuite))
}

func (s *VisaTypeServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestParams(&s.BaseServiceTestSuite)
	s.service = NewVisaTypeService(params)
	s.countries = NewCountryService(params)

	country, err := s.countries.CreateCountry(s.GetContext(), dto.CreateCountryRequest{
		Name: "Australia",
		Code: "au",
	})
	s.Require().NoError(err)
	s.countryID = country.ID
}

func (s *VisaTypeServiceSuite) newCreateRequest() dto.CreateVisaTypeRequest {
	return dto.CreateVisaTypeRequest{
		Name:           "Student Visa (Subclass 500)",
		CountryID:      s.countryID,
		Category:       "study",
		Description:    "Full-time study at a registered institution.",
		Requirements:   []string{"CoE", "GTE statement", "OSHC"},
		ProcessingTime: "4-6 weeks",
		GovernmentFee:  decimal.NewFromInt(710),
		ServiceFee:     decimal.NewFromInt(250),
	}
}

func (s *VisaTypeServiceSuite) TestCreateVisaType() {
	resp, err := s.service.CreateVisaType(s.GetContext(), s.newCreateRequest())
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.True(resp.IsActive)
	s.Equal(s.countryID, resp.CountryID)
	s.True(resp.GovernmentFee.Equal(decimal.NewFromInt(710)))
}

func (s *VisaTypeServiceSuite) TestCreateVisaTypeNegativeFee() {
	req := s.newCreateRequest()
	req.ServiceFee = decimal.NewFromInt(-1)

	_, err := s.service.CreateVisaType(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *VisaTypeServiceSuite) TestCreateVisaTypeUnknownCountry() {
	req := s.newCreateRequest()
	req.CountryID = "ctry_missing"

	_, err := s.service.CreateVisaType(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *VisaTypeServiceSuite) TestCreateVisaTypeInactiveCountry() {
	s.NoError(s.countries.DeleteCountry(s.GetContext(), s.countryID))

	_, err := s.service.CreateVisaType(s.GetContext(), s.newCreateRequest())
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *VisaTypeServiceSuite) TestUpdateVisaType() {
	created, err := s.service.CreateVisaType(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	fee := decimal.NewFromInt(300)
	updated, err := s.service.UpdateVisaType(s.GetContext(), created.ID, dto.UpdateVisaTypeRequest{
		ServiceFee:     &fee,
		ProcessingTime: lo.ToPtr("6-8 weeks"),
	})
	s.NoError(err)
	s.True(updated.ServiceFee.Equal(fee))
	s.Equal("6-8 weeks", updated.ProcessingTime)
}

func (s *VisaTypeServiceSuite) TestDeleteVisaTypeIsSoft() {
	created, err := s.service.CreateVisaType(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	s.NoError(s.service.DeleteVisaType(s.GetContext(), created.ID))

	_, err = s.service.GetPublicVisaType(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	admin, err := s.service.GetVisaType(s.GetContext(), created.ID)
	s.NoError(err)
	s.False(admin.IsActive)
}

func (s *VisaTypeServiceSuite) TestListPublicVisaTypesByCountry() {
	_, err := s.service.CreateVisaType(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	other, err := s.countries.CreateCountry(s.GetContext(), dto.CreateCountryRequest{
		Name: "Canada",
		Code: "ca",
	})
	s.NoError(err)

	second := s.newCreateRequest()
	second.Name = "Work Permit"
	second.Category = "work"
	second.CountryID = other.ID
	_, err = s.service.CreateVisaType(s.GetContext(), second)
	s.NoError(err)

	resp, err := s.service.ListPublicVisaTypes(s.GetContext(), s.countryID, "", nil)
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal(s.countryID, resp.Items[0].CountryID)

	byCategory, err := s.service.ListPublicVisaTypes(s.GetContext(), "", "work", nil)
	s.NoError(err)
	s.Len(byCategory.Items, 1)
	s.Equal("Work Permit", byCategory.Items[0].Name)
}

func (s *VisaTypeServiceSuite) TestAdminListIncludeInactive() {
	created, err := s.service.CreateVisaType(s.GetContext(), s.newCreateRequest())
	s.NoError(err)
	s.NoError(s.service.DeleteVisaType(s.GetContext(), created.ID))

	resp, err := s.service.ListVisaTypes(s.GetContext(), &types.VisaTypeFilter{IncludeInactive: true})
	s.NoError(err)
	s.Len(resp.Items, 1)

	active, err := s.service.ListVisaTypes(s.GetContext(), nil)
	s.NoError(err)
	s.Empty(active.Items)
}
