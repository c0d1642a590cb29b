package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/atlas-server/internal/api/http/response"
	"github.com/dtroode/atlas-server/internal/logger"
	"github.com/dtroode/atlas-server/internal/model"
)

type homeResponse struct {
	Username    string             `json:"username"`
	Notes       []model.Note       `json:"notes"`
	Credentials []model.Credential `json:"credentials"`
	Files       []model.File       `json:"files"`
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Home serves the landing view, the caller's profile and the health check.
type Home struct {
	users          UserService
	notes          NoteService
	credentials    CredentialService
	files          FileService
	db             Pinger
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewHome creates a new Home handler.
func NewHome(
	users UserService,
	notes NoteService,
	credentials CredentialService,
	files FileService,
	db Pinger,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Home {
	return &Home{
		users:          users,
		notes:          notes,
		credentials:    credentials,
		files:          files,
		db:             db,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Home returns everything the caller owns.
func (h *Home) Home(c *gin.Context) {
	p, ok := principalFrom(c, h.contextManager)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	notes, err := h.notes.List(ctx, p.UserID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	creds, err := h.credentials.List(ctx, p.UserID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	files, err := h.files.List(ctx, p.UserID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.OK(c, http.StatusOK, "", homeResponse{
		Username:    p.Username,
		Notes:       notes,
		Credentials: creds,
		Files:       files,
	})
}

func (h *Home) Me(c *gin.Context) {
	p, ok := principalFrom(c, h.contextManager)
	if !ok {
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), p.UserID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.OK(c, http.StatusOK, "", userResponse{
		UserID:    user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
}

func (h *Home) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Home handler: database ping failed", "error", err)
		response.Fail(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	response.OK(c, http.StatusOK, "ok", nil)
}
