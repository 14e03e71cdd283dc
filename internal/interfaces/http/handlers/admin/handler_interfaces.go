package admin

import (
	"context"

	"oficina/internal/application/admin/dto"
	"oficina/internal/application/admin/usecases"
)

// Use case interfaces for AdminHandler - enables unit testing with mocks.

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type getProfileUseCase interface {
	Execute(ctx context.Context, adminID uint) (*dto.ProfileDTO, error)
}

type uploadPhotoUseCase interface {
	Execute(ctx context.Context, cmd usecases.UploadPhotoCommand) (string, error)
}

type listAccessLogsUseCase interface {
	Execute(ctx context.Context, query usecases.ListAccessLogsQuery) (*usecases.ListAccessLogsResult, error)
}
