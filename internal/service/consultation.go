package service

import (
	"context"

	"github.com/samber/lo"
	"github.com/visahub/visahub/internal/api/dto"
	"github.com/visahub/visahub/internal/domain/consultation"
	"github.com/visahub/visahub/internal/email"
	"github.com/visahub/visahub/internal/types"
)

type ConsultationService interface {
	CreateConsultation(ctx context.Context, req dto.CreateConsultationRequest) (*dto.CreateConsultationResponse, error)
	GetConsultation(ctx context.Context, id string) (*dto.ConsultationResponse, error)
	ListConsultations(ctx context.Context, filter *types.ConsultationFilter) (*dto.ListConsultationsResponse, error)
	UpdateConsultationStatus(ctx context.Context, id string, req dto.UpdateConsultationStatusRequest) (*dto.ConsultationResponse, error)
	DeleteConsultation(ctx context.Context, id string) error
}

type consultationService struct {
	ServiceParams
}

func NewConsultationService(params ServiceParams) ConsultationService {
	return &consultationService{
		ServiceParams: params,
	}
}

func (s *consultationService) CreateConsultation(ctx context.Context, req dto.CreateConsultationRequest) (*dto.CreateConsultationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cons := req.ToConsultation()
	if err := s.ConsultationRepo.Create(ctx, cons); err != nil {
		return nil, err
	}

	s.notify(cons.ClientEmail, email.ConsultationReceivedMessage(cons.ClientName, cons.VisaType))

	return &dto.CreateConsultationResponse{
		ID:        cons.ID,
		Status:    cons.Status.String(),
		Message:   "Consultation request submitted successfully",
		CreatedAt: cons.CreatedAt,
	}, nil
}

func (s *consultationService) GetConsultation(ctx context.Context, id string) (*dto.ConsultationResponse, error) {
	cons, err := s.ConsultationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ConsultationResponse{Consultation: cons}, nil
}

func (s *consultationService) ListConsultations(ctx context.Context, filter *types.ConsultationFilter) (*dto.ListConsultationsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultConsultationFilter()
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	list, err := s.ConsultationRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.ConsultationRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(list, func(c *consultation.Consultation, _ int) *dto.ConsultationResponse {
		return &dto.ConsultationResponse{Consultation: c}
	})

	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetPage())
	return &resp, nil
}

func (s *consultationService) UpdateConsultationStatus(ctx context.Context, id string, req dto.UpdateConsultationStatusRequest) (*dto.ConsultationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cons, err := s.ConsultationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := cons.Status
	cons.Status = req.Status
	if req.AdminNotes != nil {
		cons.AdminNotes = *req.AdminNotes
	}
	if req.ScheduledAt != nil {
		cons.ScheduledAt = req.ScheduledAt
	}
	cons.Touch()

	if err := s.ConsultationRepo.Update(ctx, cons); err != nil {
		return nil, err
	}

	if cons.Status == types.ConsultationStatusConfirmed && previous != types.ConsultationStatusConfirmed {
		s.notify(cons.ClientEmail, email.ConsultationConfirmedMessage(
			cons.ClientName,
			cons.ScheduledAt.Format("2006-01-02 15:04 MST"),
		))
	}

	return &dto.ConsultationResponse{Consultation: cons}, nil
}

func (s *consultationService) DeleteConsultation(ctx context.Context, id string) error {
	return s.ConsultationRepo.Delete(ctx, id)
}
