package api

import (
	"net/http"

	"event_manager/internal/metrics"
	"event_manager/internal/middleware"
	"event_manager/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// SubmitRegistrationHandler registers a visitor for an event; no login needed
func SubmitRegistrationHandler(registrations *service.Registrations) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := eventID(c)
		if !ok {
			return
		}
		var req service.RegistrationInput
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		regID, err := registrations.Submit(c.Request.Context(), id, req)
		if err != nil {
			respondError(c, err)
			return
		}
		metrics.RegistrationsTotal.Inc()
		c.JSON(http.StatusCreated, gin.H{"message": "Registration completed successfully!", "id": regID})
	}
}

// ListRegistrationsHandler returns who registered for an event (admin only)
func ListRegistrationsHandler(registrations *service.Registrations) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := eventID(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		list, err := registrations.List(ctx, middleware.CurrentSession(c), id)
		if err != nil {
			respondError(c, err)
			return
		}
		ev, err := registrations.GetEvent(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"event": ev.Name, "registrations": list})
	}
}
