package service

import (
	"context"

	"github.com/samber/lo"
	"github.com/visahub/visahub/internal/api/dto"
	"github.com/visahub/visahub/internal/cache"
	"github.com/visahub/visahub/internal/domain/testimonial"
	"github.com/visahub/visahub/internal/email"
	"github.com/visahub/visahub/internal/types"
)

type TestimonialService interface {
	CreateTestimonial(ctx context.Context, req dto.CreateTestimonialRequest) (*dto.CreateTestimonialResponse, error)
	GetTestimonial(ctx context.Context, id string) (*dto.TestimonialResponse, error)
	ListTestimonials(ctx context.Context, filter *types.TestimonialFilter) (*dto.ListTestimonialsResponse, error)
	ListPublicTestimonials(ctx context.Context, featured *bool, filter *types.QueryFilter) (*dto.ListTestimonialsResponse, error)
	UpdateTestimonial(ctx context.Context, id string, req dto.UpdateTestimonialRequest) (*dto.TestimonialResponse, error)
	DeleteTestimonial(ctx context.Context, id string) error
}

type testimonialService struct {
	ServiceParams
}

func NewTestimonialService(params ServiceParams) TestimonialService {
	return &testimonialService{
		ServiceParams: params,
	}
}

func (s *testimonialService) CreateTestimonial(ctx context.Context, req dto.CreateTestimonialRequest) (*dto.CreateTestimonialResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t := req.ToTestimonial()
	if err := s.TestimonialRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.notify(t.ClientEmail, email.TestimonialThanksMessage(t.ClientName))

	return &dto.CreateTestimonialResponse{
		ID:        t.ID,
		Message:   "Thank you for your testimonial, it will appear once reviewed",
		CreatedAt: t.CreatedAt,
	}, nil
}

func (s *testimonialService) GetTestimonial(ctx context.Context, id string) (*dto.TestimonialResponse, error) {
	t, err := s.TestimonialRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.TestimonialResponse{Testimonial: t}, nil
}

func (s *testimonialService) ListTestimonials(ctx context.Context, filter *types.TestimonialFilter) (*dto.ListTestimonialsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultTestimonialFilter()
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	list, err := s.TestimonialRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.TestimonialRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(list, func(t *testimonial.Testimonial, _ int) *dto.TestimonialResponse {
		return &dto.TestimonialResponse{Testimonial: t}
	})

	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetPage())
	return &resp, nil
}

// ListPublicTestimonials returns approved testimonials only, whatever
// the caller asks for. Results are cached until the next admin write.
func (s *testimonialService) ListPublicTestimonials(ctx context.Context, featured *bool, qf *types.QueryFilter) (*dto.ListTestimonialsResponse, error) {
	if qf == nil {
		qf = types.NewDefaultQueryFilter()
	}

	key := cache.GenerateKey(cache.PrefixTestimonial, "public", featured != nil && *featured, qf.GetPage(), qf.GetLimit())
	if cached, found := s.Cache.Get(ctx, key); found {
		if resp, ok := cached.(*dto.ListTestimonialsResponse); ok {
			return resp, nil
		}
	}

	filter := &types.TestimonialFilter{
		QueryFilter: qf,
		IsApproved:  lo.ToPtr(true),
		IsFeatured:  featured,
	}

	resp, err := s.ListTestimonials(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(ctx, key, resp, cache.DefaultExpiration)
	return resp, nil
}

func (s *testimonialService) UpdateTestimonial(ctx context.Context, id string, req dto.UpdateTestimonialRequest) (*dto.TestimonialResponse, error) {
	t, err := s.TestimonialRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IsApproved != nil {
		t.IsApproved = *req.IsApproved
	}
	if req.IsFeatured != nil {
		t.IsFeatured = *req.IsFeatured
	}
	t.Touch()

	if err := s.TestimonialRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	s.Cache.DeleteByPrefix(ctx, cache.PrefixTestimonial)

	return &dto.TestimonialResponse{Testimonial: t}, nil
}

func (s *testimonialService) DeleteTestimonial(ctx context.Context, id string) error {
	if err := s.TestimonialRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.Cache.DeleteByPrefix(ctx, cache.PrefixTestimonial)
	return nil
}
