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

type CountryServiceSuite struct {
	testutil.BaseServiceTestSuite
	service CountryService
}

func TestCountryService(t *testing.T) {
	suite.Run(t, new(CountryServiceSuite))
}

func (s *CountryServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewCountryService(newTestParams(&s.BaseServiceTestSuite))
}

func (s *CountryServiceSuite) newCreateRequest() dto.CreateCountryRequest {
	return dto.CreateCountryRequest{
		Name:           "Canada",
		Code:           "ca",
		FlagEmoji:      "🇨🇦",
		Summary:        "Work, study and express entry streams.",
		ProcessingTime: "4-8 weeks",
		IsPopular:      true,
	}
}

func (s *CountryServiceSuite) TestCreateCountry() {
	resp, err := s.service.CreateCountry(s.GetContext(), s.newCreateRequest())
	s.NoError(err)
	s.NotEmpty(resp.ID)
	s.Equal("CA", resp.Code)
	s.True(resp.IsActive)
}

func (s *CountryServiceSuite) TestCreateCountryCodeValidation() {
	req := s.newCreateRequest()
	req.Code = "CAN"

	_, err := s.service.CreateCountry(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *CountryServiceSuite) TestUpdateCountry() {
	created, err := s.service.CreateCountry(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	updated, err := s.service.UpdateCountry(s.GetContext(), created.ID, dto.UpdateCountryRequest{
		Summary:   lo.ToPtr("Updated overview of immigration streams."),
		IsPopular: lo.ToPtr(false),
	})
	s.NoError(err)
	s.Equal("Updated overview of immigration streams.", updated.Summary)
	s.False(updated.IsPopular)
	s.Equal("CA", updated.Code)
}

func (s *CountryServiceSuite) TestDeleteCountryIsSoft() {
	created, err := s.service.CreateCountry(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	s.NoError(s.service.DeleteCountry(s.GetContext(), created.ID))

	// public surface treats the row as gone
	_, err = s.service.GetPublicCountry(s.GetContext(), created.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	public, err := s.service.ListPublicCountries(s.GetContext(), nil, nil)
	s.NoError(err)
	s.Empty(public.Items)

	// the admin surface still sees the row, flagged inactive
	admin, err := s.service.GetCountry(s.GetContext(), created.ID)
	s.NoError(err)
	s.False(admin.IsActive)
}

func (s *CountryServiceSuite) TestListPublicCountriesPopularFilter() {
	popular, err := s.service.CreateCountry(s.GetContext(), s.newCreateRequest())
	s.NoError(err)

	other := s.newCreateRequest()
	other.Name = "Portugal"
	other.Code = "pt"
	other.IsPopular = false
	_, err = s.service.CreateCountry(s.GetContext(), other)
	s.NoError(err)

	resp, err := s.service.ListPublicCountries(s.GetContext(), lo.ToPtr(true), nil)
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.Equal(popular.ID, resp.Items[0].ID)
}

func (s *CountryServiceSuite) TestAdminListIncludeInactive() {
	created, err := s.service.CreateCountry(s.GetContext(), s.newCreateRequest())
	s.NoError(err)
	s.NoError(s.service.DeleteCountry(s.GetContext(), created.ID))

	resp, err := s.service.ListCountries(s.GetContext(), &types.CountryFilter{IncludeInactive: true})
	s.NoError(err)
	s.Len(resp.Items, 1)

	active, err := s.service.ListCountries(s.GetContext(), nil)
	s.NoError(err)
	s.Empty(active.Items)
}
