package repository

import (
	"github.com/visahub/visahub/internal/domain/application"
	"github.com/visahub/visahub/internal/domain/blogpost"
	"github.com/visahub/visahub/internal/domain/consultation"
	"github.com/visahub/visahub/internal/domain/country"
	"github.com/visahub/visahub/internal/domain/inquiry"
	"github.com/visahub/visahub/internal/domain/testimonial"
	"github.com/visahub/visahub/internal/domain/visatype"
	"github.com/visahub/visahub/internal/logger"
	pgclient "github.com/visahub/visahub/internal/postgres"
	"github.com/visahub/visahub/internal/repository/memory"
	pgrepo "github.com/visahub/visahub/internal/repository/postgres"
)

// Stores bundles every repository behind one injection point.
type Stores struct {
	ApplicationRepo  application.Repository
	ConsultationRepo consultation.Repository
	InquiryRepo      inquiry.Repository
	TestimonialRepo  testimonial.Repository
	BlogPostRepo     blogpost.Repository
	CountryRepo      country.Repository
	VisaTypeRepo     visatype.Repository
}

// NewStores selects the storage mode exactly once. A nil db means no
// backend was configured: every repository is then an in-memory store,
// interchangeable with the Postgres implementations at the interface
// level but not durable. Nothing downstream re-checks the mode.
func NewStores(db *pgclient.DB, log *logger.Logger) Stores {
	if db == nil {
		log.Warnw("running with in-memory stores, data will not survive a restart")
		return Stores{
			ApplicationRepo:  memory.NewInMemoryApplicationStore(),
			ConsultationRepo: memory.NewInMemoryConsultationStore(),
			InquiryRepo:      memory.NewInMemoryInquiryStore(),
			TestimonialRepo:  memory.NewInMemoryTestimonialStore(),
			BlogPostRepo:     memory.NewInMemoryBlogPostStore(),
			CountryRepo:      memory.NewInMemoryCountryStore(),
			VisaTypeRepo:     memory.NewInMemoryVisaTypeStore(),
		}
	}

	return Stores{
		ApplicationRepo:  pgrepo.NewApplicationRepository(db, log),
		ConsultationRepo: pgrepo.NewConsultationRepository(db, log),
		InquiryRepo:      pgrepo.NewInquiryRepository(db, log),
		TestimonialRepo:  pgrepo.NewTestimonialRepository(db, log),
		BlogPostRepo:     pgrepo.NewBlogPostRepository(db, log),
		CountryRepo:      pgrepo.NewCountryRepository(db, log),
		VisaTypeRepo:     pgrepo.NewVisaTypeRepository(db, log),
	}
}
