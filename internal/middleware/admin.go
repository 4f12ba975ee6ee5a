package middleware

import (
	"event_manager/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// AdminOnly stops the request unless the loaded session is an admin session.
// deny renders the refusal; handlers behind it still run their own gate checks.
func AdminOnly(deny func(c *gin.Context, err error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := service.RequireAdmin(CurrentSession(c), c.FullPath()); err != nil {
			deny(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
