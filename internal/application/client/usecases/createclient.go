package usecases

import (
	"context"

	"oficina/internal/application/client/dto"
	"oficina/internal/domain/client"
	"oficina/internal/domain/tenant"
	"oficina/internal/shared/errors"
	"oficina/internal/shared/logger"
)

type CreateClientCommand struct {
	AdminID uint
	Details client.Details
}

type CreateClientUseCase struct {
	clients client.Repository
	logger  logger.Interface
}

func NewCreateClientUseCase(clients client.Repository, logger logger.Interface) *CreateClientUseCase {
	return &CreateClientUseCase{clients: clients, logger: logger}
}

// Execute registers a client owned by the acting admin.
func (uc *CreateClientUseCase) Execute(ctx context.Context, cmd CreateClientCommand) (*dto.ClientDTO, error) {
	c, err := client.NewClient(cmd.Details, tenant.OwnedBy(cmd.AdminID))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.clients.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to create client", "admin_id", cmd.AdminID, "error", err)
		return nil, err
	}

	uc.logger.Infow("client created", "client_id", c.ID(), "admin_id", cmd.AdminID)
	return dto.ToClientDTO(c), nil
}
