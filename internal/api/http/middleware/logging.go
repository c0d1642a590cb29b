package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/atlas-server/internal/logger"
)

// Logging logs every HTTP request with its status and duration.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

func (l *Logging) Handle(c *gin.Context) {
	start := time.Now()
	log := l.logger.With("method", c.Request.Method, "path", c.Request.URL.Path)

	c.Next()

	status := c.Writer.Status()
	args := []any{
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
		"size", c.Writer.Size(),
	}

	switch {
	case status >= 500:
		log.Error("HTTP request failed", append(args, "errors", c.Errors.String())...)
	case status >= 400:
		log.Warn("HTTP request rejected", args...)
	default:
		log.Info("HTTP request completed", args...)
	}
}
