package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"
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
	"github.com/visahub/visahub/internal/repository/memory"
	"github.com/visahub/visahub/internal/storage"
	"github.com/visahub/visahub/internal/types"
	"github.com/visahub/visahub/internal/validator"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	ApplicationRepo  application.Repository
	ConsultationRepo consultation.Repository
	InquiryRepo      inquiry.Repository
	TestimonialRepo  testimonial.Repository
	BlogPostRepo     blogpost.Repository
	CountryRepo      country.Repository
	VisaTypeRepo     visatype.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	cache  cache.Cache
	email  *email.Sender
	docs   storage.DocumentStore
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := &config.Configuration{
		Deployment: config.DeploymentConfig{Mode: types.ModeLocal},
		Server:     config.ServerConfig{Address: ":0"},
		Logging: config.LoggingConfig{
			Level: types.LogLevelInfo,
		},
		Cache: config.CacheConfig{Enabled: true},
	}
	s.config = cfg
	s.logger = logger.NewNopLogger()

	s.email = email.NewSender(email.NewClient(email.Config{Enabled: false}), s.logger)

	docs, err := storage.NewDocumentStore(cfg, s.logger)
	if err != nil {
		s.T().Fatalf("failed to create document store: %v", err)
	}
	s.docs = docs
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.cache = cache.NewInMemoryCache(s.config)
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = context.Background()
	s.ctx = context.WithValue(s.ctx, types.CtxRequestID, types.GenerateUUID())
	s.ctx = context.WithValue(s.ctx, types.CtxUserID, "user_test")
	s.ctx = context.WithValue(s.ctx, types.CtxUserEmail, "admin@test.local")
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		ApplicationRepo:  memory.NewInMemoryApplicationStore(),
		ConsultationRepo: memory.NewInMemoryConsultationStore(),
		InquiryRepo:      memory.NewInMemoryInquiryStore(),
		TestimonialRepo:  memory.NewInMemoryTestimonialStore(),
		BlogPostRepo:     memory.NewInMemoryBlogPostStore(),
		CountryRepo:      memory.NewInMemoryCountryStore(),
		VisaTypeRepo:     memory.NewInMemoryVisaTypeStore(),
	}
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.ApplicationRepo.(*memory.InMemoryApplicationStore).Clear()
	s.stores.ConsultationRepo.(*memory.InMemoryConsultationStore).Clear()
	s.stores.InquiryRepo.(*memory.InMemoryInquiryStore).Clear()
	s.stores.TestimonialRepo.(*memory.InMemoryTestimonialStore).Clear()
	s.stores.BlogPostRepo.(*memory.InMemoryBlogPostStore).Clear()
	s.stores.CountryRepo.(*memory.InMemoryCountryStore).Clear()
	s.stores.VisaTypeRepo.(*memory.InMemoryVisaTypeStore).Clear()
}

// ClearStores resets every repository to an empty state
func (s *BaseServiceTestSuite) ClearStores() {
	s.clearStores()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}

// GetCache returns the per-test cache instance
func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

// GetEmail returns the disabled email sender used in tests
func (s *BaseServiceTestSuite) GetEmail() *email.Sender {
	return s.email
}

// GetDocs returns the local document store used in tests
func (s *BaseServiceTestSuite) GetDocs() storage.DocumentStore {
	return s.docs
}
