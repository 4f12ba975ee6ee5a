package middleware

import (
	"context"
	"net/http"
	"strings"

	"event_manager/internal/domain"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// SessionCookie is the cookie carrying the session handle
const SessionCookie = "session"

const sessionKey = "session"

// SessionResolver turns a handle into a session, nil when there is none
type SessionResolver interface {
	Session(ctx context.Context, handle string) (*domain.Session, error)
}

// LoadSession resolves the caller's session and stores it in the context.
// Requests without a live session continue with no session set.
func LoadSession(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := resolver.Session(c.Request.Context(), SessionHandle(c))
		if err != nil {
			logrus.WithError(err).Error("Session lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Session lookup failed"})
			return
		}
		if sess != nil {
			c.Set(sessionKey, sess)
		}
		c.Next()
	}
}

// SessionHandle returns the handle from the session cookie, or from a Bearer Authorization header
func SessionHandle(c *gin.Context) string {
	if v, err := c.Cookie(SessionCookie); err == nil && v != "" {
		return v
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

// CurrentSession returns the session loaded by LoadSession, or nil
func CurrentSession(c *gin.Context) *domain.Session {
	if v, ok := c.Get(sessionKey); ok {
		if sess, ok := v.(*domain.Session); ok {
			return sess
		}
	}
	return nil
}
