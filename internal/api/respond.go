package api

import (
	"errors"
	"net/http"
	"strconv"

	"event_manager/internal/domain"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Redirect targets used for browser clients
const (
	loginPath = "/login"
	homePath  = "/home"
)

// wantsHTML reports whether the client prefers HTML (a browser) over JSON
func wantsHTML(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML
}

// respond sends body as JSON, or redirects browsers to target when one is given
func respond(c *gin.Context, status int, body any, target string) {
	if target != "" && wantsHTML(c) {
		c.Redirect(http.StatusSeeOther, target)
		return
	}
	c.JSON(status, body)
}

// Deny renders an authorization failure: browsers are redirected, API clients get a status code
func Deny(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		respond(c, http.StatusUnauthorized, gin.H{"error": "Login required"}, loginPath)
	default:
		respond(c, http.StatusForbidden, gin.H{"error": "Admin access required"}, homePath)
	}
}

// respondError maps domain errors to HTTP responses
func respondError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill all fields.", "fields": verr.Fields})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill all fields."})
	case errors.Is(err, domain.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrForbidden):
		Deny(c, err)
	default:
		logrus.WithFields(logrus.Fields{
			"path":  c.FullPath(),
			"error": err.Error(),
		}).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// eventID parses the :id path parameter; it writes a 404 and returns false when it is not an id
func eventID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return uint(id), true
}
