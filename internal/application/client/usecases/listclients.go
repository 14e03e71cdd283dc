package usecases

import (
	"context"
	"strings"

	"oficina/internal/application/client/dto"
	"oficina/internal/domain/client"
	"oficina/internal/shared/constants"
	"oficina/internal/shared/logger"
)

type ListClientsQuery struct {
	AdminID  uint
	Query    string
	Page     int
	PageSize int
}

type ListClientsResult struct {
	Items []*dto.ClientDTO
	Total int64
}

type ListClientsUseCase struct {
	clients client.Repository
	logger  logger.Interface
}

func NewListClientsUseCase(clients client.Repository, logger logger.Interface) *ListClientsUseCase {
	return &ListClientsUseCase{clients: clients, logger: logger}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context, query ListClientsQuery) (*ListClientsResult, error) {
	clients, total, err := uc.clients.List(ctx, client.ListFilter{
		AdminID:  query.AdminID,
		Query:    query.Query,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		return nil, err
	}
	return &ListClientsResult{Items: dto.ToClientDTOs(clients), Total: total}, nil
}

type SearchClientsUseCase struct {
	clients client.Repository
	logger  logger.Interface
}

func NewSearchClientsUseCase(clients client.Repository, logger logger.Interface) *SearchClientsUseCase {
	return &SearchClientsUseCase{clients: clients, logger: logger}
}

// Execute returns at most ClientSearchLimit matches ordered by name. Terms
// shorter than ClientSearchMinChars match nothing.
func (uc *SearchClientsUseCase) Execute(ctx context.Context, adminID uint, term string) ([]*dto.ClientDTO, error) {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < constants.ClientSearchMinChars {
		return []*dto.ClientDTO{}, nil
	}
	clients, err := uc.clients.Search(ctx, adminID, term, constants.ClientSearchLimit)
	if err != nil {
		return nil, err
	}
	return dto.ToClientDTOs(clients), nil
}
