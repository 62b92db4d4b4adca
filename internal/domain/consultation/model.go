package consultation

import (
	"time"

	"github.com/visahub/visahub/internal/types"
)

// Consultation represents a consultation booking made through the
// public site.
type Consultation struct {
	// ID is the unique identifier for the consultation
	ID string `db:"id" json:"id"`

	// ClientName is the name of the person booking
	ClientName string `db:"client_name" json:"client_name"`

	// ClientEmail receives the booking confirmation
	ClientEmail string `db:"client_email" json:"client_email"`

	// ClientPhone is the client's phone number
	ClientPhone string `db:"client_phone" json:"client_phone"`

	// VisaType is the visa category the client wants to discuss
	VisaType string `db:"visa_type" json:"visa_type"`

	// Country is the destination country of interest
	Country string `db:"country" json:"country"`

	// PreferredDate is the requested date (YYYY-MM-DD)
	PreferredDate string `db:"preferred_date" json:"preferred_date"`

	// PreferredTime is the requested time slot as free text
	PreferredTime string `db:"preferred_time" json:"preferred_time"`

	// Message is an optional note from the client
	Message string `db:"message" json:"message"`

	// AdminNotes holds internal remarks added by admins
	AdminNotes string `db:"admin_notes" json:"admin_notes"`

	// ScheduledAt is the confirmed slot, set when an admin confirms
	ScheduledAt *time.Time `db:"scheduled_at" json:"scheduled_at,omitempty"`

	// Status is the booking state
	Status types.ConsultationStatus `db:"status" json:"status"`

	types.BaseModel
}
