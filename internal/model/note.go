package model

import (
	"context"

	"github.com/google/uuid"
)

// NoteStore defines owner-scoped persistence operations for notes.
type NoteStore interface {
	Create(ctx context.Context, note Note) (Note, error)
	Update(ctx context.Context, note Note) (Note, error)
	Delete(ctx context.Context, id int64, ownerID uuid.UUID) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Note, error)
	FindByTitle(ctx context.Context, ownerID uuid.UUID, title string) ([]Note, error)
}

// Note is a short titled text owned by one user.
type Note struct {
	ID          int64     `json:"noteId"`
	OwnerID     uuid.UUID `json:"-"`
	Title       string    `json:"noteTitle"`
	Description string    `json:"noteDescription"`
}

// NoteParams contains the editable fields of a note.
type NoteParams struct {
	Title       string `validate:"required,max=20"`
	Description string `validate:"max=1000"`
}
