package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/atlas-server/internal/api/http/response"
	"github.com/dtroode/atlas-server/internal/logger"
	"github.com/dtroode/atlas-server/internal/model"
)

// NoteService defines owner-scoped note operations.
type NoteService interface {
	Create(ctx context.Context, ownerID uuid.UUID, params model.NoteParams) (model.Note, error)
	Update(ctx context.Context, id int64, ownerID uuid.UUID, params model.NoteParams) (model.Note, error)
	Delete(ctx context.Context, id int64, ownerID uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Note, error)
	FindByTitle(ctx context.Context, ownerID uuid.UUID, title string) ([]model.Note, error)
}

type noteRequest struct {
	ID          int64  `json:"noteId" form:"noteId"`
	Title       string `json:"noteTitle" form:"noteTitle"`
	Description string `json:"noteDescription" form:"noteDescription"`
}

// Note handles the notes endpoints.
type Note struct {
	notes          NoteService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewNote creates a new Note handler.
func NewNote(notes NoteService, contextManager model.ContextManager, logger *logger.Logger) *Note {
	return &Note{notes: notes, contextManager: contextManager, logger: logger}
}

// List returns the caller's notes, or those with an exact title when ?title= is set.
func (h *Note) List(c *gin.Context) {
	p, ok := principalFrom(c, h.contextManager)
	if !ok {
		return
	}

	var (
		notes []model.Note
		err   error
	)
	if title, found := c.GetQuery("title"); found {
		notes, err = h.notes.FindByTitle(c.Request.Context(), p.UserID, title)
	} else {
		notes, err = h.notes.List(c.Request.Context(), p.UserID)
	}
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.OK(c, http.StatusOK, "", notes)
}

// Save creates a note, or updates it when the request carries a note id.
func (h *Note) Save(c *gin.Context) {
	p, ok := principalFrom(c, h.contextManager)
	if !ok {
		return
	}

	var req noteRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, msgBadRequest)
		return
	}
	params := model.NoteParams{Title: req.Title, Description: req.Description}

	if req.ID == 0 {
		note, err := h.notes.Create(c.Request.Context(), p.UserID, params)
		if err != nil {
			handleError(c, h.logger, err)
			return
		}
		response.OK(c, http.StatusCreated, "note created", note)
		return
	}

	note, err := h.notes.Update(c.Request.Context(), req.ID, p.UserID, params)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, http.StatusOK, "note updated", note)
}

// Delete removes a note; the id comes from the path or the ?id= query.
func (h *Note) Delete(c *gin.Context) {
	p, ok := principalFrom(c, h.contextManager)
	if !ok {
		return
	}

	id, err := parseID(idParam(c))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	if err := h.notes.Delete(c.Request.Context(), id, p.UserID); err != nil {
		handleError(c, h.logger, err)
		return
	}

	deleted(c, "note deleted")
}

func idParam(c *gin.Context) string {
	if id := c.Param("id"); id != "" {
		return id
	}
	return c.Query("id")
}

// deleted answers a successful delete. Plain browser GETs go back home.
func deleted(c *gin.Context, msg string) {
	if c.Request.Method == http.MethodGet && !response.WantsJSON(c) {
		c.Redirect(http.StatusSeeOther, "/home")
		return
	}
	response.OK(c, http.StatusOK, msg, nil)
}
