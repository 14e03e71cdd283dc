package client

import "context"

// ListFilter selects clients visible to AdminID.
type ListFilter struct {
	AdminID  uint
	Query    string
	Page     int
	PageSize int
}

type Repository interface {
	Create(ctx context.Context, c *Client) error
	// GetByID returns nil without error when the client does not exist.
	GetByID(ctx context.Context, id uint) (*Client, error)
	Update(ctx context.Context, c *Client) error
	// Delete removes the client together with its tickets and their logs.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter ListFilter) ([]*Client, int64, error)
	Search(ctx context.Context, adminID uint, query string, limit int) ([]*Client, error)
}
