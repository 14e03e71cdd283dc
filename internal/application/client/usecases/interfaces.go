package usecases

import (
	"context"

	"oficina/internal/domain/client"
)

// ClientAccess loads a client on behalf of an admin, reporting records the
// admin may not see as not found.
type ClientAccess interface {
	Client(ctx context.Context, actor, clientID uint) (*client.Client, error)
}
