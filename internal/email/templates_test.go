package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationReceivedMessage(t *testing.T) {
	msg := ApplicationReceivedMessage("Ana Silva", "APP-X4QZ19", "Canada")
	assert.Contains(t, msg.Subject, "APP-X4QZ19")
	assert.Contains(t, msg.Text, "Ana Silva")
	assert.Contains(t, msg.Text, "Canada")
	assert.Contains(t, msg.Text, "APP-X4QZ19")
}

func TestConsultationConfirmedMessage(t *testing.T) {
	msg := ConsultationConfirmedMessage("Ana Silva", "2026-09-15 10:00 UTC")
	assert.Equal(t, "Your consultation is confirmed", msg.Subject)
	assert.Contains(t, msg.Text, "2026-09-15 10:00 UTC")
}

func TestInquiryReplyMessageSubject(t *testing.T) {
	msg := InquiryReplyMessage("Miguel", "Processing times", "It takes 15 days.")
	assert.Equal(t, "Re: Processing times", msg.Subject)
	assert.Contains(t, msg.Text, "It takes 15 days.")

	msg = InquiryReplyMessage("Miguel", "", "It takes 15 days.")
	assert.Equal(t, "Re: your inquiry", msg.Subject)
}
