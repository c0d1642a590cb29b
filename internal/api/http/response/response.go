// Package response writes the JSON envelope shared by all endpoints.
package response

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Msg is the response envelope.
type Msg struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Obj     any    `json:"obj"`
}

// OK writes a successful envelope.
func OK(c *gin.Context, status int, msg string, obj any) {
	c.JSON(status, Msg{Success: true, Msg: msg, Obj: obj})
}

// Fail writes a failed envelope.
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, Msg{Success: false, Msg: msg})
}

// AbortFail writes a failed envelope and stops the handler chain.
func AbortFail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Msg{Success: false, Msg: msg})
}

// WantsJSON reports whether the client expects a JSON answer rather than a redirect.
func WantsJSON(c *gin.Context) bool {
	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	if c.GetHeader("Authorization") != "" {
		return true
	}
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json") ||
		strings.HasPrefix(c.ContentType(), "application/json")
}
