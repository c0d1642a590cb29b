package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/atlas-server/internal/model"
)

var _ model.NoteStore = (*NoteRepository)(nil)

// NoteRepository stores notes. Every statement filters by owner_id.
type NoteRepository struct {
	db DBTX
}

func NewNoteRepository(db DBTX) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, note model.Note) (model.Note, error) {
	const query = `INSERT INTO notes (owner_id, title, description)
		VALUES ($1, $2, $3)
		RETURNING id, owner_id, title, description`

	saved, err := scanNote(r.db.QueryRowContext(ctx, query, note.OwnerID, note.Title, note.Description))
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}
	return saved, nil
}

func (r *NoteRepository) Update(ctx context.Context, note model.Note) (model.Note, error) {
	const query = `UPDATE notes SET title = $3, description = $4
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, title, description`

	saved, err := scanNote(r.db.QueryRowContext(ctx, query, note.ID, note.OwnerID, note.Title, note.Description))
	if err != nil {
		if isNoRows(err) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to update note: %w", err)
	}
	return saved, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id int64, ownerID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return expectOneRow(res)
}

func (r *NoteRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Note, error) {
	const query = `SELECT id, owner_id, title, description FROM notes
		WHERE owner_id = $1 ORDER BY id`

	return r.list(ctx, query, ownerID)
}

func (r *NoteRepository) FindByTitle(ctx context.Context, ownerID uuid.UUID, title string) ([]model.Note, error) {
	const query = `SELECT id, owner_id, title, description FROM notes
		WHERE owner_id = $1 AND title = $2 ORDER BY id`

	return r.list(ctx, query, ownerID, title)
}

func (r *NoteRepository) list(ctx context.Context, query string, args ...any) ([]model.Note, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]model.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}
	return notes, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (model.Note, error) {
	var note model.Note
	err := row.Scan(&note.ID, &note.OwnerID, &note.Title, &note.Description)
	return note, err
}

// expectOneRow maps a statement that touched no rows to model.ErrNotFound.
func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}
