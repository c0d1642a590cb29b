package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dtroode/atlas-server/internal/logger"
	"github.com/dtroode/atlas-server/internal/model"
)

const (
	defaultContentType = "application/octet-stream"

	// Both columns are VARCHAR(255).
	maxFileNameLen    = 255
	maxContentTypeLen = 255
)

// File manages uploaded files. Metadata lives in the FileStore, payloads in Storage.
type File struct {
	store    model.FileStore
	storage  model.Storage
	maxBytes int64
	logger   *logger.Logger
}

func NewFile(store model.FileStore, storage model.Storage, maxBytes int64, logger *logger.Logger) *File {
	return &File{
		store:    store,
		storage:  storage,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// Upload stores a new file. The metadata row is inserted first so the
// (owner, name) constraint rejects duplicates before any bytes are written.
func (s *File) Upload(ctx context.Context, ownerID uuid.UUID, params model.UploadFileParams) (model.File, error) {
	name, err := cleanFileName(params.Name, "fileUpload")
	if err != nil {
		return model.File{}, err
	}
	if len(params.Data) == 0 {
		return model.File{}, model.NewValidationError("fileUpload", "file is empty")
	}
	if s.maxBytes > 0 && int64(len(params.Data)) > s.maxBytes {
		return model.File{}, model.NewValidationError("fileUpload", fmt.Sprintf("file exceeds %d bytes", s.maxBytes))
	}

	contentType := cleanContentType(params.ContentType)

	file, err := s.store.Create(ctx, model.File{
		OwnerID:     ownerID,
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(params.Data)),
		ObjectKey:   objectKey(ownerID),
	})
	if err != nil {
		return model.File{}, fmt.Errorf("failed to create file: %w", err)
	}

	if err := s.storage.Upload(ctx, file.ObjectKey, bytes.NewReader(params.Data), file.Size, contentType); err != nil {
		s.logger.Error("File service: failed to upload payload", "file_id", file.ID, "error", err)
		if _, delErr := s.store.Delete(ctx, file.ID, ownerID); delErr != nil {
			s.logger.Error("File service: failed to roll back file row", "file_id", file.ID, "error", delErr)
		}
		return model.File{}, fmt.Errorf("failed to upload file: %w", err)
	}

	s.logger.Info("File service: file uploaded", "owner_id", ownerID, "file_id", file.ID, "size", file.Size)
	return file, nil
}

// Download returns the file and its whole payload.
func (s *File) Download(ctx context.Context, id int64, ownerID uuid.UUID) (model.FileContent, error) {
	file, err := s.store.GetByID(ctx, id, ownerID)
	if err != nil {
		return model.FileContent{}, fmt.Errorf("failed to get file: %w", err)
	}

	ok, err := s.storage.Exists(ctx, file.ObjectKey)
	if err != nil {
		return model.FileContent{}, fmt.Errorf("failed to check file payload: %w", err)
	}
	if !ok {
		s.logger.Warn("File service: payload missing", "file_id", file.ID, "key", file.ObjectKey)
		return model.FileContent{}, fmt.Errorf("failed to download file: %w", model.ErrNotFound)
	}

	rc, err := s.storage.Download(ctx, file.ObjectKey)
	if err != nil {
		return model.FileContent{}, fmt.Errorf("failed to download file: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return model.FileContent{}, fmt.Errorf("failed to read file: %w", err)
	}

	return model.FileContent{File: file, Data: data}, nil
}

// Rename changes the file name, subject to the same per-owner uniqueness as Upload.
func (s *File) Rename(ctx context.Context, id int64, ownerID uuid.UUID, name string) (model.File, error) {
	name, err := cleanFileName(name, "fileName")
	if err != nil {
		return model.File{}, err
	}

	file, err := s.store.Rename(ctx, id, ownerID, name)
	if err != nil {
		return model.File{}, fmt.Errorf("failed to rename file: %w", err)
	}

	s.logger.Debug("File service: file renamed", "owner_id", ownerID, "file_id", id)
	return file, nil
}

// Delete removes the file row, then its payload. A payload that cannot be
// removed is logged and left behind.
func (s *File) Delete(ctx context.Context, id int64, ownerID uuid.UUID) error {
	file, err := s.store.Delete(ctx, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	if err := s.storage.Delete(ctx, file.ObjectKey); err != nil {
		s.logger.Warn("File service: failed to delete payload", "file_id", id, "object_key", file.ObjectKey, "error", err)
	}

	s.logger.Debug("File service: file deleted", "owner_id", ownerID, "file_id", id)
	return nil
}

func (s *File) List(ctx context.Context, ownerID uuid.UUID) ([]model.File, error) {
	files, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	return files, nil
}

func objectKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("users/%s/%s", ownerID, uuid.NewString())
}

func cleanFileName(name, field string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", model.NewValidationError(field, "file name is required")
	}
	if utf8.RuneCountInString(name) > maxFileNameLen {
		return "", model.NewValidationError(field, fmt.Sprintf("file name exceeds %d characters", maxFileNameLen))
	}
	return name, nil
}

// cleanContentType falls back to the default for missing, malformed or
// over-long client-supplied types.
func cleanContentType(contentType string) string {
	if contentType == "" || len(contentType) > maxContentTypeLen {
		return defaultContentType
	}
	if _, _, err := mime.ParseMediaType(contentType); err != nil {
		return defaultContentType
	}
	return contentType
}
