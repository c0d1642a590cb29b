package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/atlas-server/internal/api/http/response"
	"github.com/dtroode/atlas-server/internal/api/http/session"
	"github.com/dtroode/atlas-server/internal/logger"
	"github.com/dtroode/atlas-server/internal/model"
)

// UserService defines signup and user lookup operations.
type UserService interface {
	IsUsernameAvailable(ctx context.Context, name string) (bool, error)
	CreateUser(ctx context.Context, params model.SignupParams) (model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

// Authenticator checks a username and password.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (model.Principal, error)
}

// TokenService defines API token operations.
type TokenService interface {
	Issue(ctx context.Context, principal model.Principal) (model.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error)
	RevokeByToken(ctx context.Context, refreshToken string) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}

type signupRequest struct {
	Username  string `json:"username" form:"username"`
	Password  string `json:"password" form:"password"`
	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type userResponse struct {
	UserID    uuid.UUID `json:"userId"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
}

// Auth handles signup, login, logout and API token endpoints.
type Auth struct {
	users          UserService
	authenticator  Authenticator
	tokens         TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(users UserService, authenticator Authenticator, tokens TokenService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		users:          users,
		authenticator:  authenticator,
		tokens:         tokens,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Auth) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, msgBadRequest)
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), model.SignupParams{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	h.logger.Info("Auth handler: signup completed", "user_id", user.ID)
	response.OK(c, http.StatusCreated, "signup successful", userResponse{
		UserID:    user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
}

func (h *Auth) UsernameAvailable(c *gin.Context) {
	name := c.Query("username")
	if name == "" {
		handleError(c, h.logger, model.NewValidationError("username", "is required"))
		return
	}

	ok, err := h.users.IsUsernameAvailable(c.Request.Context(), name)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.OK(c, http.StatusOK, "", gin.H{"available": ok})
}

// Login establishes a cookie session. Browsers are redirected; JSON
// clients receive the envelope.
func (h *Auth) Login(c *gin.Context) {
	wantsJSON := response.WantsJSON(c)

	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.loginFailed(c, wantsJSON, http.StatusBadRequest, msgBadRequest)
		return
	}

	principal, err := h.authenticator.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		status, msg := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("Auth handler: login failed", "error", err)
		}
		h.loginFailed(c, wantsJSON, status, msg)
		return
	}

	if err := session.SetLoginUser(c, principal); err != nil {
		h.logger.Error("Auth handler: failed to save session", "error", err)
		h.loginFailed(c, wantsJSON, http.StatusInternalServerError, msgInternal)
		return
	}

	if !wantsJSON {
		c.Redirect(http.StatusSeeOther, "/home")
		return
	}
	response.OK(c, http.StatusOK, "login successful", userResponse{UserID: principal.UserID, Username: principal.Username})
}

func (h *Auth) loginFailed(c *gin.Context, wantsJSON bool, status int, msg string) {
	if !wantsJSON {
		c.Redirect(http.StatusSeeOther, "/login?error")
		return
	}
	response.Fail(c, status, msg)
}

func (h *Auth) Logout(c *gin.Context) {
	if p, ok := session.GetLoginUser(c); ok {
		h.logger.Info("Auth handler: logged out", "user_id", p.UserID)
	}
	if err := session.ClearSession(c); err != nil {
		h.logger.Warn("Auth handler: failed to clear session", "error", err)
	}

	if !response.WantsJSON(c) {
		c.Redirect(http.StatusSeeOther, "/login?logout")
		return
	}
	response.OK(c, http.StatusOK, "logged out", nil)
}

// Token exchanges a username and password for an access and refresh token.
func (h *Auth) Token(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, msgBadRequest)
		return
	}

	principal, err := h.authenticator.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	pair, err := h.tokens.Issue(c.Request.Context(), principal)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.OK(c, http.StatusOK, "", pair)
}

func (h *Auth) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, msgBadRequest)
		return
	}

	pair, err := h.tokens.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.logger.Debug("Auth handler: refresh failed", "error", err)
		handleError(c, h.logger, err)
		return
	}

	response.OK(c, http.StatusOK, "", pair)
}

func (h *Auth) Revoke(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, msgBadRequest)
		return
	}

	if err := h.tokens.RevokeByToken(c.Request.Context(), req.RefreshToken); err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.OK(c, http.StatusOK, "token revoked", nil)
}

// RevokeAll revokes every refresh token of the caller.
func (h *Auth) RevokeAll(c *gin.Context) {
	principal, ok := principalFrom(c, h.contextManager)
	if !ok {
		return
	}

	if err := h.tokens.RevokeAllForUser(c.Request.Context(), principal.UserID); err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.OK(c, http.StatusOK, "tokens revoked", nil)
}
