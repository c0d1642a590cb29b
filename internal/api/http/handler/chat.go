package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/atlas-server/internal/api/http/response"
	"github.com/dtroode/atlas-server/internal/logger"
	"github.com/dtroode/atlas-server/internal/model"
)

// ChatService defines chat log operations.
type ChatService interface {
	Post(ctx context.Context, username, text string, msgType model.MessageType) (model.ChatMessage, error)
	List(ctx context.Context) ([]model.ChatMessage, error)
	ListByUsername(ctx context.Context, username string) ([]model.ChatMessage, error)
}

type chatRequest struct {
	Message     string `json:"message" form:"message"`
	MessageType string `json:"messageType" form:"messageType"`
}

// Chat handles the chat endpoints.
type Chat struct {
	chat           ChatService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewChat creates a new Chat handler.
func NewChat(chat ChatService, contextManager model.ContextManager, logger *logger.Logger) *Chat {
	return &Chat{chat: chat, contextManager: contextManager, logger: logger}
}

func (h *Chat) List(c *gin.Context) {
	var (
		msgs []model.ChatMessage
		err  error
	)
	if username := c.Query("username"); username != "" {
		msgs, err = h.chat.ListByUsername(c.Request.Context(), username)
	} else {
		msgs, err = h.chat.List(c.Request.Context())
	}
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.OK(c, http.StatusOK, "", msgs)
}

// Post appends a message under the caller's username and answers with the
// updated log.
func (h *Chat) Post(c *gin.Context) {
	p, ok := principalFrom(c, h.contextManager)
	if !ok {
		return
	}

	var req chatRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, msgBadRequest)
		return
	}

	if _, err := h.chat.Post(c.Request.Context(), p.Username, req.Message, model.MessageType(req.MessageType)); err != nil {
		handleError(c, h.logger, err)
		return
	}

	msgs, err := h.chat.List(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.OK(c, http.StatusCreated, "", msgs)
}
