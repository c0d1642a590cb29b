// Package session keeps the logged-in principal in a signed cookie session.
package session

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/atlas-server/internal/model"
)

const (
	// CookieName is the name of the session cookie.
	CookieName = "atlas_session"

	userIDKey   = "USER_ID"
	usernameKey = "USERNAME"
)

// SetLoginUser stores the principal in the session. Cookie attributes come
// from the store options.
func SetLoginUser(c *gin.Context, principal model.Principal) error {
	s := sessions.Default(c)
	s.Set(userIDKey, principal.UserID.String())
	s.Set(usernameKey, principal.Username)
	return s.Save()
}

func GetLoginUser(c *gin.Context) (model.Principal, bool) {
	s := sessions.Default(c)

	rawID, _ := s.Get(userIDKey).(string)
	username, _ := s.Get(usernameKey).(string)
	if rawID == "" || username == "" {
		return model.Principal{}, false
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return model.Principal{}, false
	}
	return model.Principal{UserID: id, Username: username}, true
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return s.Save()
}
