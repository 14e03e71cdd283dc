// Package storage keeps uploaded profile photos on the local filesystem.
package storage

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp"

	"oficina/internal/shared/constants"
	"oficina/internal/shared/errors"
	"oficina/internal/shared/logger"
)

const DefaultMaxPhotoBytes = 11 * 1024 * 1024

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var extensions = map[string]string{
	"jpeg": "jpg",
	"png":  "png",
	"webp": "webp",
}

// PhotoStore writes photos to <staticDir>/fotos and addresses them by the
// public path /static/fotos/<name>.
type PhotoStore struct {
	dir      string
	maxBytes int64
	logger   logger.Interface
}

func NewPhotoStore(staticDir string, maxBytes int64, log logger.Interface) *PhotoStore {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxPhotoBytes
	}
	return &PhotoStore{
		dir:      filepath.Join(staticDir, "fotos"),
		maxBytes: maxBytes,
		logger:   log,
	}
}

func (s *PhotoStore) MaxBytes() int64 { return s.maxBytes }

// Save validates the image by decoding it and stores it as
// <adminID>_<uuid>.<ext>. It returns the public path.
func (s *PhotoStore) Save(adminID uint, data []byte, contentType string) (string, error) {
	if int64(len(data)) > s.maxBytes {
		return "", errors.NewPayloadTooLargeError(
			fmt.Sprintf("File too large. Maximum allowed size is %dMB", s.maxBytes/(1024*1024)))
	}
	if !allowedContentTypes[strings.ToLower(contentType)] {
		return "", errors.NewBadRequestError("Invalid file format. Only JPEG, PNG or WEBP are allowed")
	}

	_, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", errors.NewBadRequestError("Invalid or corrupted image file")
	}
	ext, ok := extensions[format]
	if !ok {
		return "", errors.NewBadRequestError("Invalid file format. Only JPEG, PNG or WEBP are allowed")
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create photo directory: %w", err)
	}
	name := fmt.Sprintf("%d_%s.%s", adminID, strings.ReplaceAll(uuid.NewString(), "-", ""), ext)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write photo: %w", err)
	}
	return constants.PhotoURLPrefix + name, nil
}

// Remove deletes a previously saved photo. Paths outside the photo
// directory and missing files are ignored.
func (s *PhotoStore) Remove(publicPath string) {
	if !strings.HasPrefix(publicPath, constants.PhotoURLPrefix) {
		return
	}
	name := path.Base(publicPath)
	if name == "." || name == "/" || name != strings.TrimPrefix(publicPath, constants.PhotoURLPrefix) {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		s.logger.Warnw("failed to remove old photo", "path", publicPath, "error", err)
	}
}
