package ticket

import (
	"context"

	"oficina/internal/application/ticket/dto"
	"oficina/internal/application/ticket/usecases"
)

type createTicketUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*dto.TicketDTO, error)
}

type listTicketsUseCase interface {
	Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

type listMyTicketsUseCase interface {
	Execute(ctx context.Context, query usecases.ListMyTicketsQuery) (*usecases.ListMyTicketsResult, error)
}

type getTicketByCodeUseCase interface {
	Execute(ctx context.Context, adminID uint, code string) (*dto.TicketDTO, error)
}

type getTicketDetailUseCase interface {
	Execute(ctx context.Context, adminID, ticketID uint) (*usecases.TicketDetailDTO, error)
}

type trackTicketUseCase interface {
	Execute(ctx context.Context, code string) (*dto.TrackingDTO, error)
}

type updateTicketUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateTicketCommand) (*dto.TicketDTO, error)
}

type generateReceiptUseCase interface {
	Execute(ctx context.Context, adminID, ticketID uint) (*usecases.Receipt, error)
}

type addUpdateLogUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddUpdateLogCommand) (*dto.UpdateLogDTO, error)
}

type listUpdateLogsUseCase interface {
	Execute(ctx context.Context, adminID, ticketID uint) ([]*dto.UpdateLogDTO, error)
}

type ticketStatsUseCase interface {
	Execute(ctx context.Context, adminID uint, months int) ([]*dto.MonthlyCountDTO, error)
}
