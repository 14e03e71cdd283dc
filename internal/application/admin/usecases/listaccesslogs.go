package usecases

import (
	"context"

	"oficina/internal/application/admin/dto"
	"oficina/internal/domain/accesslog"
	"oficina/internal/shared/logger"
)

type ListAccessLogsQuery struct {
	AdminID  uint
	Page     int
	PageSize int
}

type ListAccessLogsResult struct {
	Items []*dto.AccessLogDTO
	Total int64
}

type ListAccessLogsUseCase struct {
	accessLogs accesslog.Repository
	logger     logger.Interface
}

func NewListAccessLogsUseCase(accessLogs accesslog.Repository, logger logger.Interface) *ListAccessLogsUseCase {
	return &ListAccessLogsUseCase{accessLogs: accessLogs, logger: logger}
}

func (uc *ListAccessLogsUseCase) Execute(ctx context.Context, query ListAccessLogsQuery) (*ListAccessLogsResult, error) {
	logs, total, err := uc.accessLogs.ListByAdmin(ctx, query.AdminID, query.Page, query.PageSize)
	if err != nil {
		return nil, err
	}
	return &ListAccessLogsResult{Items: dto.ToAccessLogDTOs(logs), Total: total}, nil
}
