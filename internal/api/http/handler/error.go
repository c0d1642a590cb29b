package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/atlas-server/internal/api/http/response"
	"github.com/dtroode/atlas-server/internal/logger"
	"github.com/dtroode/atlas-server/internal/model"
)

const (
	msgBadRequest    = "invalid request"
	msgNotFound      = "resource not found"
	msgAuthFailed    = "invalid username or password"
	msgInvalidToken  = "invalid or expired token"
	msgFiltered      = "message rejected"
	msgInternal      = "internal server error"
	msgUnauthorized  = "authentication required"
	msgUsernameTaken = "username already exists"
	msgFileNameTaken = "file name already exists"
	msgConflict      = "resource already exists"
)

// statusFor maps a service error to an HTTP status and a client-safe message.
func statusFor(err error) (int, string) {
	var vErr *model.ValidationError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest, vErr.Error()
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, msgBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, model.ErrUsernameTaken):
		return http.StatusConflict, msgUsernameTaken
	case errors.Is(err, model.ErrFileNameTaken):
		return http.StatusConflict, msgFileNameTaken
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict, msgConflict
	case errors.Is(err, model.ErrAuthenticationFailed):
		return http.StatusUnauthorized, msgAuthFailed
	case errors.Is(err, model.ErrInvalidToken),
		errors.Is(err, model.ErrTokenRevoked),
		errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrTokenMismatch):
		return http.StatusUnauthorized, msgInvalidToken
	case errors.Is(err, model.ErrMessageFiltered):
		return http.StatusUnprocessableEntity, msgFiltered
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

func handleError(c *gin.Context, log *logger.Logger, err error) {
	status, msg := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", "path", c.FullPath(), "error", err)
		_ = c.Error(err)
	}
	response.Fail(c, status, msg)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, model.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}

// principalFrom returns the authenticated principal or writes 401.
func principalFrom(c *gin.Context, cm model.ContextManager) (model.Principal, bool) {
	p, ok := cm.GetPrincipalFromContext(c.Request.Context())
	if !ok {
		response.AbortFail(c, http.StatusUnauthorized, msgUnauthorized)
		return model.Principal{}, false
	}
	return p, true
}
