package service

import (
	"context"

	"github.com/samber/lo"
	"github.com/visahub/visahub/internal/api/dto"
	"github.com/visahub/visahub/internal/domain/application"
	"github.com/visahub/visahub/internal/email"
	"github.com/visahub/visahub/internal/types"
)

type ApplicationService interface {
	CreateApplication(ctx context.Context, req dto.CreateApplicationRequest) (*dto.CreateApplicationResponse, error)
	GetApplication(ctx context.Context, id string) (*dto.ApplicationResponse, error)
	ListApplications(ctx context.Context, filter *types.ApplicationFilter) (*dto.ListApplicationsResponse, error)
	UpdateApplicationStatus(ctx context.Context, id string, req dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error)
	DeleteApplication(ctx context.Context, id string) error
	AddDocument(ctx context.Context, id, fileName, contentType string, data []byte) (*dto.UploadDocumentResponse, error)
}

type applicationService struct {
	ServiceParams
}

func NewApplicationService(params ServiceParams) ApplicationService {
	return &applicationService{
		ServiceParams: params,
	}
}

func (s *applicationService) CreateApplication(ctx context.Context, req dto.CreateApplicationRequest) (*dto.CreateApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	app := req.ToApplication()
	if err := s.ApplicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	s.notify(app.Email, email.ApplicationReceivedMessage(
		app.FirstName+" "+app.LastName,
		app.ReferenceNumber,
		app.Country,
	))

	return &dto.CreateApplicationResponse{
		ID:              app.ID,
		ReferenceNumber: app.ReferenceNumber,
		Status:          app.Status.String(),
		Message:         "Application submitted successfully",
		CreatedAt:       app.CreatedAt,
	}, nil
}

func (s *applicationService) GetApplication(ctx context.Context, id string) (*dto.ApplicationResponse, error) {
	app, err := s.ApplicationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ApplicationResponse{Application: app}, nil
}

func (s *applicationService) ListApplications(ctx context.Context, filter *types.ApplicationFilter) (*dto.ListApplicationsResponse, error) {
	if filter == nil {
		filter = types.NewDefaultApplicationFilter()
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	apps, err := s.ApplicationRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.ApplicationRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(apps, func(a *application.Application, _ int) *dto.ApplicationResponse {
		return &dto.ApplicationResponse{Application: a}
	})

	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetPage())
	return &resp, nil
}

func (s *applicationService) UpdateApplicationStatus(ctx context.Context, id string, req dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	app, err := s.ApplicationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	app.Status = req.Status
	if req.Notes != nil {
		app.Notes = *req.Notes
	}
	app.Touch()

	if err := s.ApplicationRepo.Update(ctx, app); err != nil {
		return nil, err
	}
	return &dto.ApplicationResponse{Application: app}, nil
}

func (s *applicationService) DeleteApplication(ctx context.Context, id string) error {
	return s.ApplicationRepo.Delete(ctx, id)
}

func (s *applicationService) AddDocument(ctx context.Context, id, fileName, contentType string, data []byte) (*dto.UploadDocumentResponse, error) {
	app, err := s.ApplicationRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ref, err := s.Docs.Upload(ctx, app.ID, fileName, contentType, data)
	if err != nil {
		return nil, err
	}

	doc := dto.NewDocumentRef(fileName, contentType, ref)
	app.Documents = append(app.Documents, doc)
	app.Touch()

	if err := s.ApplicationRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	return &dto.UploadDocumentResponse{
		DocumentID: doc.ID,
		FileName:   doc.FileName,
		StorageRef: doc.StorageRef,
	}, nil
}
