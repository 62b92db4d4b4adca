package service

import (
	"github.com/visahub/visahub/internal/cache"
	"github.com/visahub/visahub/internal/config"
	"github.com/visahub/visahub/internal/domain/application"
	"github.com/visahub/visahub/internal/domain/blogpost"
	"github.com/visahub/visahub/internal/domain/consultation"
	"github.com/visahub/visahub/internal/domain/country"
	"github.com/visahub/visahub/internal/domain/inquiry"
	"github.com/visahub/visahub/internal/domain/testimonial"
	"github.com/visahub/visahub/internal/domain/visatype"
	"github.com/visahub/visahub/internal/email"
	"github.com/visahub/visahub/internal/logger"
	"github.com/visahub/visahub/internal/repository"
	"github.com/visahub/visahub/internal/storage"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Cache  cache.Cache
	Email  *email.Sender
	Docs   storage.DocumentStore

	// Repositories
	ApplicationRepo  application.Repository
	ConsultationRepo consultation.Repository
	InquiryRepo      inquiry.Repository
	TestimonialRepo  testimonial.Repository
	BlogPostRepo     blogpost.Repository
	CountryRepo      country.Repository
	VisaTypeRepo     visatype.Repository
}

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	cache cache.Cache,
	email *email.Sender,
	docs storage.DocumentStore,
	stores repository.Stores,
) ServiceParams {
	return ServiceParams{
		Logger:           logger,
		Config:           config,
		Cache:            cache,
		Email:            email,
		Docs:             docs,
		ApplicationRepo:  stores.ApplicationRepo,
		ConsultationRepo: stores.ConsultationRepo,
		InquiryRepo:      stores.InquiryRepo,
		TestimonialRepo:  stores.TestimonialRepo,
		BlogPostRepo:     stores.BlogPostRepo,
		CountryRepo:      stores.CountryRepo,
		VisaTypeRepo:     stores.VisaTypeRepo,
	}
}
