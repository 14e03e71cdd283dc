// Package notification emails clients about their tickets.
package notification

import (
	"oficina/internal/domain/client"
	"oficina/internal/domain/ticket"
	"oficina/internal/infrastructure/email"
	"oficina/internal/shared/goroutine"
	"oficina/internal/shared/logger"
)

// TicketNotifier sends ticket emails in the background. Delivery failures
// are logged and never reach the request that triggered them.
type TicketNotifier struct {
	templates *email.Templates
	sender    email.Sender
	logger    logger.Interface
}

func NewTicketNotifier(templates *email.Templates, sender email.Sender, logger logger.Interface) *TicketNotifier {
	return &TicketNotifier{templates: templates, sender: sender, logger: logger}
}

// TicketCreated emails the tracking link to the client. Clients without an
// email address and a disabled sender are skipped.
func (n *TicketNotifier) TicketCreated(c *client.Client, t *ticket.Ticket) {
	n.notify(c, t)
}

// notify returns a channel closed once delivery has finished, or nil when
// nothing was sent.
func (n *TicketNotifier) notify(c *client.Client, t *ticket.Ticket) <-chan struct{} {
	if c.Email() == "" {
		return nil
	}
	if !n.sender.Enabled() {
		n.logger.Debugw("skipping ticket email, sender disabled", "ticket_id", t.ID())
		return nil
	}

	msg, err := n.templates.TicketCreated([]string{c.Email()}, t.TrackingCode())
	if err != nil {
		n.logger.Warnw("failed to render ticket email", "ticket_id", t.ID(), "error", err)
		return nil
	}

	ticketID := t.ID()
	return goroutine.SafeGo(n.logger, "ticket-created-email", func() {
		if err := n.sender.Send(msg); err != nil {
			n.logger.Warnw("failed to send ticket email", "ticket_id", ticketID, "error", err)
			return
		}
		n.logger.Infow("ticket email sent", "ticket_id", ticketID)
	})
}
