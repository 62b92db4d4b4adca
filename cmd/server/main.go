package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/visahub/visahub/internal/api"
	v1 "github.com/visahub/visahub/internal/api/v1"
	"github.com/visahub/visahub/internal/auth"
	"github.com/visahub/visahub/internal/cache"
	"github.com/visahub/visahub/internal/config"
	"github.com/visahub/visahub/internal/email"
	"github.com/visahub/visahub/internal/logger"
	"github.com/visahub/visahub/internal/postgres"
	"github.com/visahub/visahub/internal/repository"
	"github.com/visahub/visahub/internal/service"
	"github.com/visahub/visahub/internal/storage"
	"github.com/visahub/visahub/internal/types"
	"github.com/visahub/visahub/internal/validator"
	"go.uber.org/fx"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	app := fx.New(
		fx.Provide(
			validator.NewValidator,
			config.NewConfig,
			logger.NewLogger,

			cache.NewInMemoryCache,
			postgres.NewClient,
			repository.NewStores,

			provideEmailClient,
			email.NewSender,
			storage.NewDocumentStore,
			auth.NewProvider,

			service.NewServiceParams,
			service.NewAuthService,
			service.NewApplicationService,
			service.NewConsultationService,
			service.NewInquiryService,
			service.NewTestimonialService,
			service.NewBlogPostService,
			service.NewCountryService,
			service.NewVisaTypeService,

			provideHandlers,
			provideRouter,
		),
		fx.Invoke(startServer),
	)
	app.Run()
}

func provideEmailClient(cfg *config.Configuration) *email.Client {
	return email.NewClient(email.Config{
		Enabled:     cfg.Email.Enabled,
		APIKey:      cfg.Email.APIKey,
		FromAddress: cfg.Email.FromAddress,
		ReplyTo:     cfg.Email.ReplyTo,
	})
}

func provideHandlers(
	logger *logger.Logger,
	authService service.AuthService,
	applicationService service.ApplicationService,
	consultationService service.ConsultationService,
	inquiryService service.InquiryService,
	testimonialService service.TestimonialService,
	blogPostService service.BlogPostService,
	countryService service.CountryService,
	visaTypeService service.VisaTypeService,
) api.Handlers {
	return api.Handlers{
		Health:       v1.NewHealthHandler(),
		Auth:         v1.NewAuthHandler(authService, logger),
		Application:  v1.NewApplicationHandler(applicationService, logger),
		Consultation: v1.NewConsultationHandler(consultationService, logger),
		Inquiry:      v1.NewInquiryHandler(inquiryService, logger),
		Testimonial:  v1.NewTestimonialHandler(testimonialService, logger),
		BlogPost:     v1.NewBlogPostHandler(blogPostService, logger),
		Country:      v1.NewCountryHandler(countryService, logger),
		VisaType:     v1.NewVisaTypeHandler(visaTypeService, logger),
	}
}

func provideRouter(handlers api.Handlers, provider auth.Provider, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	if cfg.Deployment.Mode == types.ModeProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	return api.NewRouter(handlers, provider, log)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	db *postgres.DB,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting API server", "address", cfg.Server.Address, "mode", cfg.Deployment.Mode)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down server")
			if db != nil {
				return db.Close()
			}
			return nil
		},
	})
}
