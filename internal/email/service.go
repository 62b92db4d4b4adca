package email

import (
	"context"

	"github.com/visahub/visahub/internal/logger"
)

// SendResult reports what happened to a single outbound message
type SendResult struct {
	MessageID string
	Success   bool
	Error     string
}

// Sender dispatches rendered messages through the client. It never
// returns an error: notification delivery is best effort and callers
// must not fail their own operation when a send does.
type Sender struct {
	client *Client
	logger *logger.Logger
}

// NewSender creates a new email sender
func NewSender(client *Client, logger *logger.Logger) *Sender {
	return &Sender{
		client: client,
		logger: logger,
	}
}

// Send delivers a message to a single recipient
func (s *Sender) Send(ctx context.Context, to string, msg Message) SendResult {
	if !s.client.IsEnabled() {
		s.logger.Debugw("email client is disabled, skipping send",
			"to", to,
			"subject", msg.Subject,
		)
		return SendResult{Success: false, Error: "email client is disabled"}
	}

	messageID, err := s.client.Send(ctx, s.client.GetFromAddress(), to, msg.Subject, "", msg.Text)
	if err != nil {
		s.logger.Errorw("failed to send email",
			"error", err,
			"to", to,
			"subject", msg.Subject,
		)
		return SendResult{Success: false, Error: err.Error()}
	}

	s.logger.Infow("email sent",
		"message_id", messageID,
		"to", to,
		"subject", msg.Subject,
	)
	return SendResult{MessageID: messageID, Success: true}
}
