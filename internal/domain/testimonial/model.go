package testimonial

import (
	"github.com/visahub/visahub/internal/types"
)

// Testimonial represents a client review. Submissions start unapproved
// and stay out of public listings until an admin approves them.
type Testimonial struct {
	// ID is the unique identifier for the testimonial
	ID string `db:"id" json:"id"`

	// ClientName is the reviewer's name
	ClientName string `db:"client_name" json:"client_name"`

	// ClientEmail is kept for the thank-you note, not shown publicly
	ClientEmail string `db:"client_email" json:"client_email"`

	// ClientCountry is the reviewer's country, shown alongside the text
	ClientCountry string `db:"client_country" json:"client_country"`

	// VisaType is the visa the review is about
	VisaType string `db:"visa_type" json:"visa_type"`

	// Rating is a 1-5 star rating
	Rating int `db:"rating" json:"rating"`

	// Text is the testimonial body
	Text string `db:"text" json:"text"`

	// IsApproved gates public visibility
	IsApproved bool `db:"is_approved" json:"is_approved"`

	// IsFeatured promotes the testimonial on the home page
	IsFeatured bool `db:"is_featured" json:"is_featured"`

	types.BaseModel
}
