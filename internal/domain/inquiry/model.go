package inquiry

import (
	"github.com/visahub/visahub/internal/types"
)

// Inquiry represents a contact-form message from the public site.
type Inquiry struct {
	// ID is the unique identifier for the inquiry
	ID string `db:"id" json:"id"`

	// Name is the sender's name
	Name string `db:"name" json:"name"`

	// Email is the sender's address, used for the admin reply
	Email string `db:"email" json:"email"`

	// Subject is the inquiry subject line
	Subject string `db:"subject" json:"subject"`

	// Message is the inquiry body
	Message string `db:"message" json:"message"`

	// AdminReply is the reply sent by an admin, if any
	AdminReply string `db:"admin_reply" json:"admin_reply"`

	// Status is the triage state
	Status types.InquiryStatus `db:"status" json:"status"`

	types.BaseModel
}
