package usecases

import (
	"context"

	"oficina/internal/application/client/dto"
	"oficina/internal/domain/client"
	"oficina/internal/shared/errors"
	"oficina/internal/shared/logger"
)

type UpdateClientCommand struct {
	AdminID  uint
	ClientID uint
	Patch    client.Patch
}

type UpdateClientUseCase struct {
	access  ClientAccess
	clients client.Repository
	logger  logger.Interface
}

func NewUpdateClientUseCase(access ClientAccess, clients client.Repository, logger logger.Interface) *UpdateClientUseCase {
	return &UpdateClientUseCase{access: access, clients: clients, logger: logger}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, cmd UpdateClientCommand) (*dto.ClientDTO, error) {
	c, err := uc.access.Client(ctx, cmd.AdminID, cmd.ClientID)
	if err != nil {
		return nil, err
	}

	changed, err := c.Apply(cmd.Patch)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if !changed {
		return dto.ToClientDTO(c), nil
	}

	if err := uc.clients.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update client", "client_id", c.ID(), "error", err)
		return nil, err
	}
	uc.logger.Infow("client updated", "client_id", c.ID(), "admin_id", cmd.AdminID)
	return dto.ToClientDTO(c), nil
}

type DeleteClientUseCase struct {
	access  ClientAccess
	clients client.Repository
	logger  logger.Interface
}

func NewDeleteClientUseCase(access ClientAccess, clients client.Repository, logger logger.Interface) *DeleteClientUseCase {
	return &DeleteClientUseCase{access: access, clients: clients, logger: logger}
}

// Execute deletes the client together with its tickets and their logs.
func (uc *DeleteClientUseCase) Execute(ctx context.Context, adminID, clientID uint) error {
	c, err := uc.access.Client(ctx, adminID, clientID)
	if err != nil {
		return err
	}
	if err := uc.clients.Delete(ctx, c.ID()); err != nil {
		uc.logger.Errorw("failed to delete client", "client_id", c.ID(), "error", err)
		return err
	}
	uc.logger.Infow("client deleted", "client_id", c.ID(), "admin_id", adminID)
	return nil
}
