package ticket

import (
	"context"
	"time"
)

// ListFilter selects tickets whose client is visible to AdminID.
type ListFilter struct {
	AdminID     uint
	Query       string
	Status      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Page        int
	PageSize    int
}

// Summary is a ticket listed together with its client's name.
type Summary struct {
	Ticket     *Ticket
	ClientName string
}

type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	// GetByID and GetByCode return nil without error when nothing matches.
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	GetByCode(ctx context.Context, code string) (*Ticket, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]Summary, int64, error)
	ListByClient(ctx context.Context, clientID uint, page, pageSize int) ([]*Ticket, int64, error)
	// ListOwnedBy returns the newest tickets of clients explicitly owned by adminID.
	ListOwnedBy(ctx context.Context, adminID uint, limit int) ([]*Ticket, error)
	// CreatedSince returns creation times of tickets of clients explicitly
	// owned by adminID.
	CreatedSince(ctx context.Context, adminID uint, since time.Time) ([]time.Time, error)
}
