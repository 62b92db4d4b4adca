package service

import (
	"github.com/visahub/visahub/internal/testutil"
)

// newTestParams assembles ServiceParams over the suite's in-memory
// stores, disabled email sender and local document store.
func newTestParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	stores := s.GetStores()
	return ServiceParams{
		Logger:           s.GetLogger(),
		Config:           s.GetConfig(),
		Cache:            s.GetCache(),
		Email:            s.GetEmail(),
		Docs:             s.GetDocs(),
		ApplicationRepo:  stores.ApplicationRepo,
		ConsultationRepo: stores.ConsultationRepo,
		InquiryRepo:      stores.InquiryRepo,
		TestimonialRepo:  stores.TestimonialRepo,
		BlogPostRepo:     stores.BlogPostRepo,
		CountryRepo:      stores.CountryRepo,
		VisaTypeRepo:     stores.VisaTypeRepo,
	}
}
