package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/atlas-server/internal/model"
)

var _ model.FileStore = (*FileRepository)(nil)

// FileRepository stores file metadata. The (owner_id, name) constraint
// guarantees per-owner unique file names.
type FileRepository struct {
	db DBTX
}

func NewFileRepository(db DBTX) *FileRepository {
	return &FileRepository{db: db}
}

const fileColumns = `id, owner_id, name, content_type, size, object_key, created_at`

func (r *FileRepository) Create(ctx context.Context, f model.File) (model.File, error) {
	query := `INSERT INTO files (owner_id, name, content_type, size, object_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + fileColumns

	saved, err := scanFile(r.db.QueryRowContext(ctx, query, f.OwnerID, f.Name, f.ContentType, f.Size, f.ObjectKey))
	if err != nil {
		if isUniqueViolation(err, constraintFileName) {
			return model.File{}, model.ErrFileNameTaken
		}
		return model.File{}, fmt.Errorf("failed to create file: %w", err)
	}
	return saved, nil
}

func (r *FileRepository) Rename(ctx context.Context, id int64, ownerID uuid.UUID, name string) (model.File, error) {
	query := `UPDATE files SET name = $3
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + fileColumns

	saved, err := scanFile(r.db.QueryRowContext(ctx, query, id, ownerID, name))
	if err != nil {
		if isNoRows(err) {
			return model.File{}, model.ErrNotFound
		}
		if isUniqueViolation(err, constraintFileName) {
			return model.File{}, model.ErrFileNameTaken
		}
		return model.File{}, fmt.Errorf("failed to rename file: %w", err)
	}
	return saved, nil
}

// Delete removes the row and returns it so the caller can drop the stored object.
func (r *FileRepository) Delete(ctx context.Context, id int64, ownerID uuid.UUID) (model.File, error) {
	query := `DELETE FROM files WHERE id = $1 AND owner_id = $2 RETURNING ` + fileColumns

	deleted, err := scanFile(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if isNoRows(err) {
			return model.File{}, model.ErrNotFound
		}
		return model.File{}, fmt.Errorf("failed to delete file: %w", err)
	}
	return deleted, nil
}

func (r *FileRepository) GetByID(ctx context.Context, id int64, ownerID uuid.UUID) (model.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE id = $1 AND owner_id = $2`

	f, err := scanFile(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if isNoRows(err) {
			return model.File{}, model.ErrNotFound
		}
		return model.File{}, fmt.Errorf("failed to get file: %w", err)
	}
	return f, nil
}

func (r *FileRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE owner_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	defer rows.Close()

	result := make([]model.File, 0)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan file: %w", err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate files: %w", err)
	}
	return result, nil
}

func scanFile(row scanner) (model.File, error) {
	var f model.File
	err := row.Scan(&f.ID, &f.OwnerID, &f.Name, &f.ContentType, &f.Size, &f.ObjectKey, &f.CreatedAt)
	return f, err
}
