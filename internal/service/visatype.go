package service

import (
	"context"

	"github.com/samber/lo"
	"github.com/visahub/visahub/internal/api/dto"
	"github.com/visahub/visahub/internal/cache"
	"github.com/visahub/visahub/internal/domain/visatype"
	ierr "github.com/visahub/visahub/internal/errors"
	"github.com/visahub/visahub/internal/types"
)

type VisaTypeService interface {
	CreateVisaType(ctx context.Context, req dto.CreateVisaTypeRequest) (*dto.VisaTypeResponse, error)
	GetVisaType(ctx context.Context, id string) (*dto.VisaTypeResponse, error)
	GetPublicVisaType(ctx context.Context, id string) (*dto.VisaTypeResponse, error)
	ListVisaTypes(ctx context.Context, filter *types.VisaTypeFilter) (*dto.ListVisaTypesResponse, error)
	ListPublicVisaTypes(ctx context.Context, countryID, category string, filter *types.QueryFilter) (*dto.ListVisaTypesResponse, error)
	UpdateVisaType(ctx context.Context, id string, req dto.UpdateVisaTypeRequest) (*dto.VisaTypeResponse, error)
	DeleteVisaType(ctx context.Context, id string) error
}

type visaTypeService struct {
	ServiceParams
}

func NewVisaTypeService(params ServiceParams) VisaTypeService {
	return &visaTypeService{
		ServiceParams: params,
	}
}

func (s *visaTypeService) CreateVisaType(ctx context.Context, req dto.CreateVisaTypeRequest) (*dto.VisaTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// the country must exist and be live before a visa type can point at it
	c, err := s.CountryRepo.Get(ctx, req.CountryID)
	if err != nil {
		return nil, err
	}
	if !c.IsActive {
		return nil, ierr.NewErrorf("country is inactive: %s", req.CountryID).
			WithHint("Cannot add a visa type to an inactive country").
			Mark(ierr.ErrInvalidOperation)
	}

	v := req.ToVisaType()
	if err := s.VisaTypeRepo.Create(ctx, v); err != nil {
		return nil, err
	}

	s.Cache.DeleteByPrefix(ctx, cache.PrefixVisaType)

	return &dto.VisaTypeResponse{VisaType: v}, nil
}

// GetVisaType is the admin read; inactive rows come back too.
func (s *visaTypeService) GetVisaType(ctx context.Context, id string) (*dto.VisaTypeResponse, error) {
	v, err := s.VisaTypeRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.VisaTypeResponse{VisaType: v}, nil
}

// GetPublicVisaType hides soft-deleted rows behind NotFound.
func (s *visaTypeService) GetPublicVisaType(ctx context.Context, id string) (*dto.VisaTypeResponse, error) {
	v, err := s.VisaTypeRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !v.IsActive {
		return nil, ierr.NewErrorf("visa type not found: %s", id).
			WithHint("Visa type not found").
			Mark(ierr.ErrNotFound)
	}
	return &dto.VisaTypeResponse{VisaType: v}, nil
}

func (s *visaTypeService) ListVisaTypes(ctx context.Context, filter *types.VisaTypeFilter) (*dto.ListVisaTypesResponse, error) {
	if filter == nil {
		filter = types.NewDefaultVisaTypeFilter()
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	list, err := s.VisaTypeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.VisaTypeRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(list, func(v *visatype.VisaType, _ int) *dto.VisaTypeResponse {
		return &dto.VisaTypeResponse{VisaType: v}
	})

	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetPage())
	return &resp, nil
}

// ListPublicVisaTypes serves the public site; only active rows, cached.
func (s *visaTypeService) ListPublicVisaTypes(ctx context.Context, countryID, category string, qf *types.QueryFilter) (*dto.ListVisaTypesResponse, error) {
	if qf == nil {
		qf = types.NewDefaultQueryFilter()
	}

	key := cache.GenerateKey(cache.PrefixVisaType, "public", countryID, category, qf.GetPage(), qf.GetLimit())
	if cached, found := s.Cache.Get(ctx, key); found {
		if resp, ok := cached.(*dto.ListVisaTypesResponse); ok {
			return resp, nil
		}
	}

	filter := &types.VisaTypeFilter{
		QueryFilter: qf,
		CountryID:   countryID,
		Category:    category,
	}

	resp, err := s.ListVisaTypes(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(ctx, key, resp, cache.DefaultExpiration)
	return resp, nil
}

func (s *visaTypeService) UpdateVisaType(ctx context.Context, id string, req dto.UpdateVisaTypeRequest) (*dto.VisaTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	v, err := s.VisaTypeRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.Category != nil {
		v.Category = *req.Category
	}
	if req.Description != nil {
		v.Description = *req.Description
	}
	if req.Requirements != nil {
		v.Requirements = *req.Requirements
	}
	if req.ProcessingTime != nil {
		v.ProcessingTime = *req.ProcessingTime
	}
	if req.GovernmentFee != nil {
		v.GovernmentFee = *req.GovernmentFee
	}
	if req.ServiceFee != nil {
		v.ServiceFee = *req.ServiceFee
	}
	if req.IsActive != nil {
		v.IsActive = *req.IsActive
	}
	v.Touch()

	if err := s.VisaTypeRepo.Update(ctx, v); err != nil {
		return nil, err
	}

	s.Cache.DeleteByPrefix(ctx, cache.PrefixVisaType)

	return &dto.VisaTypeResponse{VisaType: v}, nil
}

// DeleteVisaType soft-deletes: the flag flips, the row stays.
func (s *visaTypeService) DeleteVisaType(ctx context.Context, id string) error {
	v, err := s.VisaTypeRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	v.IsActive = false
	v.Touch()

	if err := s.VisaTypeRepo.Update(ctx, v); err != nil {
		return err
	}

	s.Cache.DeleteByPrefix(ctx, cache.PrefixVisaType)
	return nil
}
