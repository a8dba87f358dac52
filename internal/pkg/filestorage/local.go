package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mtendere/educonsult-admin/internal/pkg/apperrors"
	"github.com/mtendere/educonsult-admin/internal/pkg/logger"
)

// LocalStorage saves uploaded files to the local filesystem, enforcing the
// configured maximum size and allowed extensions.
type LocalStorage struct {
	basePath    string
	maxFileSize int64
	allowedExts map[string]struct{}
}

// NewLocalStorage creates a new LocalStorage rooted at basePath.
func NewLocalStorage(basePath string, maxFileSize int64, allowedExtensions []string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	exts := make(map[string]struct{}, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		exts[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}

	return &LocalStorage{
		basePath:    basePath,
		maxFileSize: maxFileSize,
		allowedExts: exts,
	}, nil
}

// Validate checks the uploaded file against the size and extension limits.
func (ls *LocalStorage) Validate(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > ls.maxFileSize {
		return fmt.Errorf("%w: file exceeds maximum size of %d bytes", apperrors.ErrValidationFailed, ls.maxFileSize)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))
	if _, ok := ls.allowedExts[ext]; !ok {
		return fmt.Errorf("%w: file extension %q is not allowed", apperrors.ErrValidationFailed, ext)
	}

	return nil
}

// SaveFile validates and stores an uploaded file, returning its accessible
// relative path. Filenames are replaced with UUIDs to prevent collisions.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("%w: no file uploaded", apperrors.ErrValidationFailed)
	}

	if err := ls.Validate(fileHeader); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	uniqueFilename := uuid.New().String() + ext
	dstPath := filepath.Join(ls.basePath, uniqueFilename)

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	accessiblePath := filepath.ToSlash(filepath.Join("uploads", uniqueFilename))
	logger.Info().Str("filename", fileHeader.Filename).Str("saved_as", uniqueFilename).Msg("File saved")
	return accessiblePath, nil
}

// DeleteFile removes a stored file by its accessible path.
func (ls *LocalStorage) DeleteFile(filePath string) error {
	filename := filepath.Base(filePath)
	fullPath := filepath.Join(ls.basePath, filename)

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete file %s: %w", fullPath, err)
	}
	return nil
}
