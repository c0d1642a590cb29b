package router

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/dtroode/atlas-server/internal/api/http/handler"
	"github.com/dtroode/atlas-server/internal/api/http/middleware"
	"github.com/dtroode/atlas-server/internal/api/http/response"
	"github.com/dtroode/atlas-server/internal/api/http/session"
	"github.com/dtroode/atlas-server/internal/logger"
	"github.com/dtroode/atlas-server/internal/model"
)

// Services groups the dependencies the routes are served by.
type Services struct {
	Users       handler.UserService
	Auth        handler.Authenticator
	Tokens      TokenService
	Notes       handler.NoteService
	Credentials handler.CredentialService
	Files       handler.FileService
	Chat        handler.ChatService
	DB          handler.Pinger
}

// TokenService is used both by the token endpoints and by bearer authentication.
type TokenService interface {
	handler.TokenService
	middleware.TokenService
}

// Options configures the session cookie and upload limits.
type Options struct {
	SessionSecret  string
	SessionMaxAge  int
	SecureCookie   bool
	UploadMaxBytes int64
}

// Router builds the gin engine for the application.
type Router struct {
	services       Services
	options        Options
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new Router instance.
func New(services Services, options Options, contextManager model.ContextManager, logger *logger.Logger) *Router {
	return &Router{
		services:       services,
		options:        options,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register wires middleware and all routes into a new engine.
func (r *Router) Register() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.NewLogging(r.logger).Handle)
	engine.Use(gzip.Gzip(
		gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/files/download/"}),
	))

	store := cookie.NewStore([]byte(r.options.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   r.options.SessionMaxAge,
		HttpOnly: true,
		Secure:   r.options.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	engine.Use(sessions.Sessions(session.CookieName, store))

	authenticate := middleware.NewAuthenticate(r.services.Tokens, r.contextManager, r.logger)

	auth := handler.NewAuth(r.services.Users, r.services.Auth, r.services.Tokens, r.contextManager, r.logger)
	home := handler.NewHome(r.services.Users, r.services.Notes, r.services.Credentials, r.services.Files, r.services.DB, r.contextManager, r.logger)
	notes := handler.NewNote(r.services.Notes, r.contextManager, r.logger)
	creds := handler.NewCredential(r.services.Credentials, r.contextManager, r.logger)
	files := handler.NewFile(r.services.Files, r.options.UploadMaxBytes, r.contextManager, r.logger)
	chat := handler.NewChat(r.services.Chat, r.contextManager, r.logger)

	engine.GET("/healthz", home.Health)

	engine.POST("/signup", auth.Signup)
	engine.GET("/signup/available", auth.UsernameAvailable)
	engine.POST("/login", auth.Login)
	engine.GET("/logout", auth.Logout)
	engine.POST("/logout", auth.Logout)

	api := engine.Group("/api/auth")
	{
		api.POST("/token", auth.Token)
		api.POST("/refresh", auth.Refresh)
		api.POST("/revoke", auth.Revoke)
	}

	g := engine.Group("/", authenticate.Handle)
	{
		g.GET("/home", home.Home)
		g.GET("/me", home.Me)
		g.POST("/api/auth/revoke-all", auth.RevokeAll)

		g.GET("/notes", notes.List)
		g.POST("/notes", notes.Save)
		g.GET("/notes/delete", notes.Delete)
		g.DELETE("/notes/:id", notes.Delete)

		g.GET("/credentials", creds.List)
		g.POST("/credentials", creds.Save)
		g.GET("/credentials/delete", creds.Delete)
		g.GET("/credentials/:id", creds.Reveal)
		g.DELETE("/credentials/:id", creds.Delete)

		g.GET("/files", files.List)
		g.POST("/files/upload", files.Upload)
		g.GET("/files/download/:id", files.Download)
		g.POST("/files/:id/rename", files.Rename)
		g.GET("/files/delete/:id", files.Delete)
		g.DELETE("/files/:id", files.Delete)

		g.GET("/chat", chat.List)
		g.POST("/chat", chat.Post)
	}

	engine.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, "resource not found")
	})

	return engine
}
