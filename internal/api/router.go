package api

import (
	"github.com/gin-gonic/gin"
	v1 "github.com/visahub/visahub/internal/api/v1"
	"github.com/visahub/visahub/internal/auth"
	"github.com/visahub/visahub/internal/logger"
	"github.com/visahub/visahub/internal/rest/middleware"
)

type Handlers struct {
	Health       *v1.HealthHandler
	Auth         *v1.AuthHandler
	Application  *v1.ApplicationHandler
	Consultation *v1.ConsultationHandler
	Inquiry      *v1.InquiryHandler
	Testimonial  *v1.TestimonialHandler
	BlogPost     *v1.BlogPostHandler
	Country      *v1.CountryHandler
	VisaType     *v1.VisaTypeHandler
}

func NewRouter(handlers Handlers, provider auth.Provider, log *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.CORSMiddleware)
	router.Use(middleware.ErrorHandler())

	router.GET("/health", handlers.Health.Health)

	v1Group := router.Group("/v1")
	registerPublicRoutes(v1Group, handlers)

	admin := v1Group.Group("/admin")
	admin.Use(middleware.AdminAuthMiddleware(provider, log))
	registerAdminRoutes(admin, handlers)

	return router
}

// registerPublicRoutes covers lead capture and read-only site content.
func registerPublicRoutes(router *gin.RouterGroup, handlers Handlers) {
	router.POST("/auth/login", handlers.Auth.Login)

	router.POST("/applications", handlers.Application.CreateApplication)
	router.POST("/applications/:id/documents", handlers.Application.UploadDocument)
	router.POST("/consultations", handlers.Consultation.CreateConsultation)
	router.POST("/inquiries", handlers.Inquiry.CreateInquiry)
	router.POST("/testimonials", handlers.Testimonial.CreateTestimonial)

	router.GET("/testimonials", handlers.Testimonial.ListPublicTestimonials)

	router.GET("/countries", handlers.Country.ListPublicCountries)
	router.GET("/countries/:id", handlers.Country.GetPublicCountry)

	router.GET("/visa-types", handlers.VisaType.ListPublicVisaTypes)
	router.GET("/visa-types/:id", handlers.VisaType.GetPublicVisaType)

	router.GET("/blog/posts", handlers.BlogPost.ListPublishedPosts)
	router.GET("/blog/posts/:slug", handlers.BlogPost.GetPublishedBySlug)
}

// registerAdminRoutes covers the bearer-token back office.
func registerAdminRoutes(router *gin.RouterGroup, handlers Handlers) {
	applications := router.Group("/applications")
	{
		applications.GET("", handlers.Application.ListApplications)
		applications.GET("/:id", handlers.Application.GetApplication)
		applications.PUT("/:id/status", handlers.Application.UpdateApplicationStatus)
		applications.DELETE("/:id", handlers.Application.DeleteApplication)
	}

	consultations := router.Group("/consultations")
	{
		consultations.GET("", handlers.Consultation.ListConsultations)
		consultations.GET("/:id", handlers.Consultation.GetConsultation)
		consultations.PUT("/:id/status", handlers.Consultation.UpdateConsultationStatus)
		consultations.DELETE("/:id", handlers.Consultation.DeleteConsultation)
	}

	inquiries := router.Group("/inquiries")
	{
		inquiries.GET("", handlers.Inquiry.ListInquiries)
		inquiries.GET("/:id", handlers.Inquiry.GetInquiry)
		inquiries.PUT("/:id/status", handlers.Inquiry.UpdateInquiryStatus)
		inquiries.POST("/:id/reply", handlers.Inquiry.ReplyInquiry)
		inquiries.DELETE("/:id", handlers.Inquiry.DeleteInquiry)
	}

	testimonials := router.Group("/testimonials")
	{
		testimonials.GET("", handlers.Testimonial.ListTestimonials)
		testimonials.GET("/:id", handlers.Testimonial.GetTestimonial)
		testimonials.PUT("/:id", handlers.Testimonial.UpdateTestimonial)
		testimonials.DELETE("/:id", handlers.Testimonial.DeleteTestimonial)
	}

	posts := router.Group("/blog/posts")
	{
		posts.POST("", handlers.BlogPost.CreateBlogPost)
		posts.POST("/generate", handlers.BlogPost.GenerateBlogPost)
		posts.GET("", handlers.BlogPost.ListBlogPosts)
		posts.GET("/:id", handlers.BlogPost.GetBlogPost)
		posts.PUT("/:id", handlers.BlogPost.UpdateBlogPost)
		posts.PUT("/:id/status", handlers.BlogPost.UpdateBlogPostStatus)
		posts.DELETE("/:id", handlers.BlogPost.DeleteBlogPost)
	}

	countries := router.Group("/countries")
	{
		countries.POST("", handlers.Country.CreateCountry)
		countries.GET("", handlers.Country.ListCountries)
		countries.GET("/:id", handlers.Country.GetCountry)
		countries.PUT("/:id", handlers.Country.UpdateCountry)
		countries.DELETE("/:id", handlers.Country.DeleteCountry)
	}

	visaTypes := router.Group("/visa-types")
	{
		visaTypes.POST("", handlers.VisaType.CreateVisaType)
		visaTypes.GET("", handlers.VisaType.ListVisaTypes)
		visaTypes.GET("/:id", handlers.VisaType.GetVisaType)
		visaTypes.PUT("/:id", handlers.VisaType.UpdateVisaType)
		visaTypes.DELETE("/:id", handlers.VisaType.DeleteVisaType)
	}
}
