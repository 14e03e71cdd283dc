// Package access resolves whether an admin may see a client, ticket or
// update log. Ownership is walked ticket -> client -> admin and a denial is
// reported exactly like a missing record.
package access

import (
	"context"

	"oficina/internal/domain/client"
	"oficina/internal/domain/ticket"
	"oficina/internal/domain/updatelog"
	"oficina/internal/shared/errors"
)

const (
	msgClientNotFound    = "Client not found"
	msgTicketNotFound    = "Ticket not found"
	msgUpdateLogNotFound = "Update log not found"
)

// Guard loads records on behalf of an acting admin.
type Guard struct {
	clients client.Repository
	tickets ticket.Repository
	logs    updatelog.Repository
}

func NewGuard(clients client.Repository, tickets ticket.Repository, logs updatelog.Repository) *Guard {
	return &Guard{clients: clients, tickets: tickets, logs: logs}
}

// Client returns the client when actor may see it.
func (g *Guard) Client(ctx context.Context, actor, clientID uint) (*client.Client, error) {
	c, err := g.clients.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if c == nil || !c.VisibleTo(actor) {
		return nil, errors.NewNotFoundError(msgClientNotFound)
	}
	return c, nil
}

// Ticket returns the ticket and its client when actor may see the client.
func (g *Guard) Ticket(ctx context.Context, actor, ticketID uint) (*ticket.Ticket, *client.Client, error) {
	t, err := g.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, nil, err
	}
	return g.resolveTicket(ctx, actor, t)
}

// TicketByCode is Ticket addressed by tracking code.
func (g *Guard) TicketByCode(ctx context.Context, actor uint, code string) (*ticket.Ticket, *client.Client, error) {
	t, err := g.tickets.GetByCode(ctx, code)
	if err != nil {
		return nil, nil, err
	}
	return g.resolveTicket(ctx, actor, t)
}

func (g *Guard) resolveTicket(ctx context.Context, actor uint, t *ticket.Ticket) (*ticket.Ticket, *client.Client, error) {
	if t == nil {
		return nil, nil, errors.NewNotFoundError(msgTicketNotFound)
	}
	c, err := g.clients.GetByID(ctx, t.ClientID())
	if err != nil {
		return nil, nil, err
	}
	if c == nil || !c.VisibleTo(actor) {
		return nil, nil, errors.NewNotFoundError(msgTicketNotFound)
	}
	return t, c, nil
}

// UpdateLog returns the log when its ticket is visible to actor.
func (g *Guard) UpdateLog(ctx context.Context, actor, logID uint) (*updatelog.UpdateLog, error) {
	l, err := g.logs.GetByID(ctx, logID)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, errors.NewNotFoundError(msgUpdateLogNotFound)
	}
	if _, _, err := g.Ticket(ctx, actor, l.TicketID()); err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError(msgUpdateLogNotFound)
		}
		return nil, err
	}
	return l, nil
}
