package usecases

import (
	"context"

	"oficina/internal/domain/client"
	"oficina/internal/domain/ticket"
)

// TicketAccess loads clients and tickets on behalf of an admin. Records the
// admin may not see are reported as not found.
type TicketAccess interface {
	Client(ctx context.Context, actor, clientID uint) (*client.Client, error)
	Ticket(ctx context.Context, actor, ticketID uint) (*ticket.Ticket, *client.Client, error)
	TicketByCode(ctx context.Context, actor uint, code string) (*ticket.Ticket, *client.Client, error)
}

type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CreationNotifier tells a client that a ticket was opened for them. It
// must not block the caller.
type CreationNotifier interface {
	TicketCreated(c *client.Client, t *ticket.Ticket)
}

// ReceiptRenderer produces the printable receipt of a ticket.
type ReceiptRenderer interface {
	Render(t *ticket.Ticket, c *client.Client) ([]byte, error)
}
