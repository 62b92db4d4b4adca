package service

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/visahub/visahub/internal/api/dto"
	"github.com/visahub/visahub/internal/cache"
	"github.com/visahub/visahub/internal/domain/country"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/types"
)

type CountryService interface {
	CreateCountry(ctx context.Context, req dto.CreateCountryRequest) (*dto.CountryResponse, error)
	GetCountry(ctx context.Context, id string) (*dto.CountryResponse, error)
	GetPublicCountry(ctx context.Context, id string) (*dto.CountryResponse, error)
	ListCountries(ctx context.Context, filter *types.CountryFilter) (*dto.ListCountriesResponse, error)
	ListPublicCountries(ctx context.Context, popular *bool, filter *types.QueryFilter) (*dto.ListCountriesResponse, error)
	UpdateCountry(ctx context.Context, id string, req dto.UpdateCountryRequest) (*dto.CountryResponse, error)
	DeleteCountry(ctx context.Context, id string) error
}

type countryService struct {
	ServiceParams
}

func NewCountryService(params ServiceParams) CountryService {
	return &countryService{
		ServiceParams: params,
	}
}

func (s *countryService) CreateCountry(ctx context.Context, req dto.CreateCountryRequest) (*dto.CountryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := req.ToCountry()
	if err := s.CountryRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.Cache.DeleteByPrefix(ctx, cache.PrefixCountry)

	return &dto.CountryResponse{Country: c}, nil
}

// GetCountry is the admin read; it returns the row even when inactive.
func (s *countryService) GetCountry(ctx context.Context, id string) (*dto.CountryResponse, error) {
	c, err := s.CountryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.CountryResponse{Country: c}, nil
}

// GetPublicCountry hides soft-deleted rows behind NotFound.
func (s *countryService) GetPublicCountry(ctx context.Context, id string) (*dto.CountryResponse, error) {
	c, err := s.CountryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.IsActive {
		return nil, ierr.NewErrorf("country not found: %s", id).
			WithHint("Country not found").
			Mark(ierr.ErrNotFound)
	}
	return &dto.CountryResponse{Country: c}, nil
}

func (s *countryService) ListCountries(ctx context.Context, filter *types.CountryFilter) (*dto.ListCountriesResponse, error) {
	if filter == nil {
		filter = types.NewDefaultCountryFilter()
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	list, err := s.CountryRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.CountryRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(list, func(c *country.Country, _ int) *dto.CountryResponse {
		return &dto.CountryResponse{Country: c}
	})

	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetPage())
	return &resp, nil
}

// ListPublicCountries serves the public site; only active rows, cached.
func (s *countryService) ListPublicCountries(ctx context.Context, popular *bool, qf *types.QueryFilter) (*dto.ListCountriesResponse, error) {
	if qf == nil {
		qf = types.NewDefaultQueryFilter()
	}

	key := cache.GenerateKey(cache.PrefixCountry, "public", popular != nil && *popular, qf.GetPage(), qf.GetLimit())
	if cached, found := s.Cache.Get(ctx, key); found {
		if resp, ok := cached.(*dto.ListCountriesResponse); ok {
			return resp, nil
		}
	}

	filter := &types.CountryFilter{
		QueryFilter: qf,
		Popular:     popular,
	}

	resp, err := s.ListCountries(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(ctx, key, resp, cache.DefaultExpiration)
	return resp, nil
}

func (s *countryService) UpdateCountry(ctx context.Context, id string, req dto.UpdateCountryRequest) (*dto.CountryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.CountryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Code != nil {
		c.Code = strings.ToUpper(*req.Code)
	}
	if req.FlagEmoji != nil {
		c.FlagEmoji = *req.FlagEmoji
	}
	if req.Summary != nil {
		c.Summary = *req.Summary
	}
	if req.ProcessingTime != nil {
		c.ProcessingTime = *req.ProcessingTime
	}
	if req.IsPopular != nil {
		c.IsPopular = *req.IsPopular
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	c.Touch()

	if err := s.CountryRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.Cache.DeleteByPrefix(ctx, cache.PrefixCountry)

	return &dto.CountryResponse{Country: c}, nil
}

// DeleteCountry soft-deletes: the flag flips, the row stays.
func (s *countryService) DeleteCountry(ctx context.Context, id string) error {
	c, err := s.CountryRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	c.IsActive = false
	c.Touch()

	if err := s.CountryRepo.Update(ctx, c); err != nil {
		return err
	}

	s.Cache.DeleteByPrefix(ctx, cache.PrefixCountry)
	return nil
}
