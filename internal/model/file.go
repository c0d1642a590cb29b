package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FileStore defines owner-scoped persistence operations for file metadata.
type FileStore interface {
	Create(ctx context.Context, file File) (File, error)
	Rename(ctx context.Context, id int64, ownerID uuid.UUID, name string) (File, error)
	Delete(ctx context.Context, id int64, ownerID uuid.UUID) (File, error)
	GetByID(ctx context.Context, id int64, ownerID uuid.UUID) (File, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]File, error)
}

// File describes an uploaded payload. The bytes live in object storage under ObjectKey.
type File struct {
	ID          int64     `json:"fileId"`
	OwnerID     uuid.UUID `json:"-"`
	Name        string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"fileSize"`
	ObjectKey   string    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}

// UploadFileParams contains an uploaded payload.
type UploadFileParams struct {
	Name        string
	ContentType string
	Data        []byte
}

// FileContent is a file together with its payload.
type FileContent struct {
	File File
	Data []byte
}
