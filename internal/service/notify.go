package service

import (
	"context"
	"time"

	"github.com/visahub/visahub/internal/email"
)

const notifyTimeout = 15 * time.Second

// notify dispatches a message on a detached goroutine with its own
// context, so a slow or failing email channel can never delay or fail
// the request that triggered it. Outcomes are logged by the sender.
func (p ServiceParams) notify(to string, msg email.Message) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		p.Email.Send(ctx, to, msg)
	}()
}
