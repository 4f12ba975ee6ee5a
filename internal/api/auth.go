package api

import (
	"errors"
	"net/http"
	"time"

	"event_manager/internal/domain"
	"event_manager/internal/metrics"
	"event_manager/internal/middleware"
	"event_manager/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// AuthResponse is returned by a successful login
type AuthResponse struct {
	Token   string          `json:"token"`   // Session handle, also set as a cookie
	Session *domain.Session `json:"session"` // Who is logged in
}

// RegisterHandler creates an account
func RegisterHandler(accounts *service.Accounts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.NewAccount
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		id, err := accounts.Register(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, gin.H{"message": "User registered successfully", "id": id}, loginPath)
	}
}

// LoginHandler checks credentials and starts a session.
// Any session the caller already holds is ended first.
func LoginHandler(accounts *service.Accounts, ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.Credentials
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		handle, sess, err := accounts.Login(c.Request.Context(), req, middleware.SessionHandle(c))
		if err != nil {
			if errors.Is(err, domain.ErrInvalidCredentials) {
				metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			}
			respondError(c, err)
			return
		}
		metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(middleware.SessionCookie, handle, int(ttl.Seconds()), "/", "", secure, true)
		respond(c, http.StatusOK, AuthResponse{Token: handle, Session: sess}, homePath)
	}
}

// LogoutHandler ends the caller's session and clears the cookie
func LogoutHandler(accounts *service.Accounts, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := accounts.Logout(c.Request.Context(), middleware.SessionHandle(c)); err != nil {
			respondError(c, err)
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", secure, true)
		respond(c, http.StatusOK, gin.H{"message": "Logged out"}, loginPath)
	}
}
