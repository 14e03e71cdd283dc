package usecases

import (
	"context"

	"oficina/internal/domain/admin"
	"oficina/internal/shared/errors"
	"oficina/internal/shared/logger"
)

type UploadPhotoCommand struct {
	AdminID     uint
	Data        []byte
	ContentType string
}

type UploadPhotoUseCase struct {
	admins admin.Repository
	photos PhotoStorage
	logger logger.Interface
}

func NewUploadPhotoUseCase(admins admin.Repository, photos PhotoStorage, logger logger.Interface) *UploadPhotoUseCase {
	return &UploadPhotoUseCase{admins: admins, photos: photos, logger: logger}
}

// Execute stores the new photo and returns its public path. The previous
// photo is removed only after the new path is saved.
func (uc *UploadPhotoUseCase) Execute(ctx context.Context, cmd UploadPhotoCommand) (string, error) {
	a, err := uc.admins.GetByID(ctx, cmd.AdminID)
	if err != nil {
		return "", err
	}
	if a == nil {
		return "", errors.NewNotFoundError("Admin not found")
	}

	path, err := uc.photos.Save(a.ID(), cmd.Data, cmd.ContentType)
	if err != nil {
		return "", err
	}

	if err := uc.admins.UpdatePhoto(ctx, a.ID(), path); err != nil {
		uc.photos.Remove(path)
		return "", err
	}

	if old := a.ChangePhoto(path); old != "" {
		uc.photos.Remove(old)
	}
	uc.logger.Infow("profile photo updated", "admin_id", a.ID(), "path", path)
	return path, nil
}
