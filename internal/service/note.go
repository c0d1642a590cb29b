package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/atlas-server/internal/logger"
	"github.com/dtroode/atlas-server/internal/model"
)

// Note manages a user's notes. Every call is scoped to ownerID.
type Note struct {
	store  model.NoteStore
	logger *logger.Logger
}

func NewNote(store model.NoteStore, logger *logger.Logger) *Note {
	return &Note{store: store, logger: logger}
}

func (s *Note) Create(ctx context.Context, ownerID uuid.UUID, params model.NoteParams) (model.Note, error) {
	if err := validateStruct(params); err != nil {
		return model.Note{}, err
	}

	note, err := s.store.Create(ctx, model.Note{
		OwnerID:     ownerID,
		Title:       params.Title,
		Description: params.Description,
	})
	if err != nil {
		s.logger.Error("Note service: failed to create note", "owner_id", ownerID, "error", err)
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	s.logger.Debug("Note service: note created", "owner_id", ownerID, "note_id", note.ID)
	return note, nil
}

// Update replaces the note's fields. A note owned by someone else is reported as model.ErrNotFound.
func (s *Note) Update(ctx context.Context, id int64, ownerID uuid.UUID, params model.NoteParams) (model.Note, error) {
	if err := validateStruct(params); err != nil {
		return model.Note{}, err
	}

	note, err := s.store.Update(ctx, model.Note{
		ID:          id,
		OwnerID:     ownerID,
		Title:       params.Title,
		Description: params.Description,
	})
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to update note: %w", err)
	}

	s.logger.Debug("Note service: note updated", "owner_id", ownerID, "note_id", id)
	return note, nil
}

func (s *Note) Delete(ctx context.Context, id int64, ownerID uuid.UUID) error {
	if err := s.store.Delete(ctx, id, ownerID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	s.logger.Debug("Note service: note deleted", "owner_id", ownerID, "note_id", id)
	return nil
}

func (s *Note) List(ctx context.Context, ownerID uuid.UUID) ([]model.Note, error) {
	notes, err := s.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

func (s *Note) FindByTitle(ctx context.Context, ownerID uuid.UUID, title string) ([]model.Note, error) {
	notes, err := s.store.FindByTitle(ctx, ownerID, title)
	if err != nil {
		return nil, fmt.Errorf("failed to find notes by title: %w", err)
	}
	return notes, nil
}
