package client

import (
	"context"

	"oficina/internal/application/client/dto"
	"oficina/internal/application/client/usecases"
)

type createClientUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateClientCommand) (*dto.ClientDTO, error)
}

type listClientsUseCase interface {
	Execute(ctx context.Context, query usecases.ListClientsQuery) (*usecases.ListClientsResult, error)
}

type searchClientsUseCase interface {
	Execute(ctx context.Context, adminID uint, term string) ([]*dto.ClientDTO, error)
}

type getClientUseCase interface {
	Execute(ctx context.Context, query usecases.GetClientQuery) (*dto.ClientDetailDTO, error)
}

type listClientTicketsUseCase interface {
	Execute(ctx context.Context, query usecases.ListClientTicketsQuery) (*usecases.ListClientTicketsResult, error)
}

type updateClientUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateClientCommand) (*dto.ClientDTO, error)
}

type deleteClientUseCase interface {
	Execute(ctx context.Context, adminID, clientID uint) error
}
