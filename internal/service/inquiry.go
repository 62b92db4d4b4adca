package service

import (
	"context"

	"github.com/samber/lo"
	"github.com/visahub/visahub/internal/api/dto"
	"github.com/visahub/visahub/internal/domain/inquiry"
	"github.com/visahub/visahub/internal/email"
	"github.com/visahub/visahub/internal/types"
)

type InquiryService interface {
	CreateInquiry(ctx context.Context, req dto.CreateInquiryRequest) (*dto.CreateInquiryResponse, error)
	GetInquiry(ctx context.Context, id string) (*dto.InquiryResponse, error)
	ListInquiries(ctx context.Context, filter *types.InquiryFilter) (*dto.ListInquiriesResponse, error)
	UpdateInquiryStatus(ctx context.Context, id string, req dto.UpdateInquiryStatusRequest) (*dto.InquiryResponse, error)
	ReplyInquiry(ctx context.Context, id string, req dto.ReplyInquiryRequest) (*dto.InquiryResponse, error)
	DeleteInquiry(ctx context.Context, id string) error
}

type inquiryService struct {
	ServiceParams
}

func NewInquiryService(params ServiceParams) InquiryService {
	return &inquiryService{
		ServiceParams: params,
	}
}

func (s *inquiryService) CreateInquiry(ctx context.Context, req dto.CreateInquiryRequest) (*dto.CreateInquiryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inq := req.ToInquiry()
	if err := s.InquiryRepo.Create(ctx, inq); err != nil {
		return nil, err
	}

	s.notify(inq.Email, email.InquiryReceivedMessage(inq.Name))

	return &dto.CreateInquiryResponse{
		ID:        inq.ID,
		Status:    inq.Status.String(),
		Message:   "Inquiry submitted successfully",
		CreatedAt: inq.CreatedAt,
	}, nil
}

func (s *inquiryService) GetInquiry(ctx context.Context, id string) (*dto.InquiryResponse, error) {
	inq, err := s.InquiryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.InquiryResponse{Inquiry: inq}, nil
}

func (s *inquiryService) ListInquiries(ctx context.Context, filter *types.InquiryFilter) (*dto.ListInquiriesResponse, error) {
	if filter == nil {
		filter = types.NewDefaultInquiryFilter()
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	list, err := s.InquiryRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.InquiryRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(list, func(i *inquiry.Inquiry, _ int) *dto.InquiryResponse {
		return &dto.InquiryResponse{Inquiry: i}
	})

	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetPage())
	return &resp, nil
}

func (s *inquiryService) UpdateInquiryStatus(ctx context.Context, id string, req dto.UpdateInquiryStatusRequest) (*dto.InquiryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inq, err := s.InquiryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	inq.Status = req.Status
	inq.Touch()

	if err := s.InquiryRepo.Update(ctx, inq); err != nil {
		return nil, err
	}
	return &dto.InquiryResponse{Inquiry: inq}, nil
}

// ReplyInquiry records the reply, emails the submitter, and moves the
// inquiry to replied.
func (s *inquiryService) ReplyInquiry(ctx context.Context, id string, req dto.ReplyInquiryRequest) (*dto.InquiryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inq, err := s.InquiryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	inq.AdminReply = req.Reply
	inq.Status = types.InquiryStatusReplied
	inq.Touch()

	if err := s.InquiryRepo.Update(ctx, inq); err != nil {
		return nil, err
	}

	s.notify(inq.Email, email.InquiryReplyMessage(inq.Name, inq.Subject, inq.AdminReply))

	return &dto.InquiryResponse{Inquiry: inq}, nil
}

func (s *inquiryService) DeleteInquiry(ctx context.Context, id string) error {
	return s.InquiryRepo.Delete(ctx, id)
}
