package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/atlas-server/internal/api/http/response"
	"github.com/dtroode/atlas-server/internal/api/http/session"
	"github.com/dtroode/atlas-server/internal/logger"
	"github.com/dtroode/atlas-server/internal/model"
)

// TokenService resolves a principal from a bearer token.
type TokenService interface {
	GetPrincipal(ctx context.Context, token string) (model.Principal, error)
}

// Authenticate accepts a session cookie or a bearer token and puts the
// principal into the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

func (m *Authenticate) Handle(c *gin.Context) {
	principal, ok := session.GetLoginUser(c)
	if !ok {
		principal, ok = m.fromBearer(c)
	}

	if !ok {
		if response.WantsJSON(c) {
			response.AbortFail(c, http.StatusUnauthorized, "authentication required")
			return
		}
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}

	c.Request = c.Request.WithContext(m.contextManager.SetPrincipalToContext(c.Request.Context(), principal))
	c.Next()
}

func (m *Authenticate) fromBearer(c *gin.Context) (model.Principal, bool) {
	header := c.GetHeader("Authorization")
	tokenString, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenString == "" {
		return model.Principal{}, false
	}

	principal, err := m.tokenService.GetPrincipal(c.Request.Context(), tokenString)
	if err != nil {
		m.logger.Debug("Authenticate middleware: invalid bearer token", "error", err)
		return model.Principal{}, false
	}
	if principal.Username == "" {
		return model.Principal{}, false
	}

	return principal, true
}
