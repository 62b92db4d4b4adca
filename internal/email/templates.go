package email

import "fmt"

// Message is a rendered notification ready to hand to the client
type Message struct {
	Subject string
	Text    string
}

// ApplicationReceivedMessage renders the acknowledgement sent to an
// applicant right after their visa application is recorded.
func ApplicationReceivedMessage(fullName, referenceNumber, destinationCountry string) Message {
	return Message{
		Subject: fmt.Sprintf("We received your visa application (%s)", referenceNumber),
		Text: fmt.Sprintf(
			"Hi %s,\n\n"+
				"Thank you for applying through VisaHub. Your application for %s has been received and assigned reference number %s.\n\n"+
				"Our consultants will review your documents and reach out with the next steps. You can quote the reference number in any correspondence with us.\n\n"+
				"Best regards,\nThe VisaHub Team",
			fullName, destinationCountry, referenceNumber),
	}
}

// ConsultationReceivedMessage renders the acknowledgement for a new
// consultation booking request.
func ConsultationReceivedMessage(fullName, consultationType string) Message {
	return Message{
		Subject: "Your consultation request has been received",
		Text: fmt.Sprintf(
			"Hi %s,\n\n"+
				"We have received your request for a %s consultation. A member of our team will confirm the schedule with you shortly.\n\n"+
				"Best regards,\nThe VisaHub Team",
			fullName, consultationType),
	}
}

// ConsultationConfirmedMessage renders the booking confirmation once an
// admin moves a consultation to confirmed.
func ConsultationConfirmedMessage(fullName, scheduledFor string) Message {
	return Message{
		Subject: "Your consultation is confirmed",
		Text: fmt.Sprintf(
			"Hi %s,\n\n"+
				"Your consultation has been confirmed for %s. If the time no longer works for you, reply to this email and we will reschedule.\n\n"+
				"Best regards,\nThe VisaHub Team",
			fullName, scheduledFor),
	}
}

// InquiryReceivedMessage renders the acknowledgement for a new contact
// inquiry.
func InquiryReceivedMessage(fullName string) Message {
	return Message{
		Subject: "We received your message",
		Text: fmt.Sprintf(
			"Hi %s,\n\n"+
				"Thank you for contacting VisaHub. We have received your message and will get back to you within one business day.\n\n"+
				"Best regards,\nThe VisaHub Team",
			fullName),
	}
}

// InquiryReplyMessage wraps an admin's reply to a contact inquiry.
func InquiryReplyMessage(fullName, subject, replyBody string) Message {
	if subject == "" {
		subject = "Re: your inquiry"
	} else {
		subject = "Re: " + subject
	}
	return Message{
		Subject: subject,
		Text: fmt.Sprintf(
			"Hi %s,\n\n%s\n\nBest regards,\nThe VisaHub Team",
			fullName, replyBody),
	}
}

// TestimonialThanksMessage renders the thank-you note for a submitted
// testimonial.
func TestimonialThanksMessage(fullName string) Message {
	return Message{
		Subject: "Thank you for your feedback",
		Text: fmt.Sprintf(
			"Hi %s,\n\n"+
				"Thank you for sharing your experience with VisaHub. Your testimonial has been received and will appear on our website once it is reviewed.\n\n"+
				"Best regards,\nThe VisaHub Team",
			fullName),
	}
}
