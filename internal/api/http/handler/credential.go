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

// CredentialService defines owner-scoped credential operations.
type CredentialService interface {
	Create(ctx context.Context, ownerID uuid.UUID, params model.CredentialParams) (model.Credential, error)
	Update(ctx context.Context, id int64, ownerID uuid.UUID, params model.CredentialParams) (model.Credential, error)
	Delete(ctx context.Context, id int64, ownerID uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Credential, error)
	Reveal(ctx context.Context, id int64, ownerID uuid.UUID) (model.Credential, error)
}

type credentialRequest struct {
	ID       int64  `json:"credentialId" form:"credentialId"`
	URL      string `json:"url" form:"url"`
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Credential handles the credentials endpoints.
type Credential struct {
	credentials    CredentialService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewCredential creates a new Credential handler.
func NewCredential(credentials CredentialService, contextManager model.ContextManager, logger *logger.Logger) *Credential {
	return &Credential{credentials: credentials, contextManager: contextManager, logger: logger}
}

// List returns the caller's credentials with passwords still encrypted.
func (h *Credential) List(c *gin.Context) {
	p, ok := principalFrom(c, h.contextManager)
	if !ok {
		return
	}

	list, err := h.credentials.List(c.Request.Context(), p.UserID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.OK(c, http.StatusOK, "", list)
}

// Reveal returns one credential with its password decrypted.
func (h *Credential) Reveal(c *gin.Context) {
	p, ok := principalFrom(c, h.contextManager)
	if !ok {
		return
	}

	id, err := parseID(c.Param("id"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	cred, err := h.credentials.Reveal(c.Request.Context(), id, p.UserID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.OK(c, http.StatusOK, "", cred)
}

func (h *Credential) Save(c *gin.Context) {
	p, ok := principalFrom(c, h.contextManager)
	if !ok {
		return
	}

	var req credentialRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, msgBadRequest)
		return
	}
	params := model.CredentialParams{URL: req.URL, Username: req.Username, Password: req.Password}

	if req.ID == 0 {
		cred, err := h.credentials.Create(c.Request.Context(), p.UserID, params)
		if err != nil {
			handleError(c, h.logger, err)
			return
		}
		response.OK(c, http.StatusCreated, "credential created", cred)
		return
	}

	cred, err := h.credentials.Update(c.Request.Context(), req.ID, p.UserID, params)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, http.StatusOK, "credential updated", cred)
}

func (h *Credential) Delete(c *gin.Context) {
	p, ok := principalFrom(c, h.contextManager)
	if !ok {
		return
	}

	id, err := parseID(idParam(c))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	if err := h.credentials.Delete(c.Request.Context(), id, p.UserID); err != nil {
		handleError(c, h.logger, err)
		return
	}

	deleted(c, "credential deleted")
}
