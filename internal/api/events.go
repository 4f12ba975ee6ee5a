package api

import (
	"net/http"

	"event_manager/internal/middleware"
	"event_manager/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// HomeHandler lists all events for a logged-in user
func HomeHandler(events *service.Events) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := middleware.CurrentSession(c)
		list, err := events.List(c.Request.Context(), sess)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"events":   list,
			"username": sess.Username,
			"role":     sess.Role,
		})
	}
}

// CreateEventHandler adds an event (admin only)
func CreateEventHandler(events *service.Events) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.EventInput
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		id, err := events.Create(c.Request.Context(), middleware.CurrentSession(c), req)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, gin.H{"message": "Event created", "id": id}, homePath)
	}
}

// GetEventHandler returns one event; it is public so visitors can register
func GetEventHandler(events *service.Events) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := eventID(c)
		if !ok {
			return
		}
		ev, err := events.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"event": ev})
	}
}

// UpdateEventHandler replaces an event's fields (admin only)
func UpdateEventHandler(events *service.Events) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := eventID(c)
		if !ok {
			return
		}
		var req service.EventInput
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if err := events.Update(c.Request.Context(), middleware.CurrentSession(c), id, req); err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"message": "Event updated"}, homePath)
	}
}

// DeleteEventHandler removes an event and its registrations (admin only)
func DeleteEventHandler(events *service.Events) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := eventID(c)
		if !ok {
			return
		}
		if err := events.Delete(c.Request.Context(), middleware.CurrentSession(c), id); err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, gin.H{"message": "Event deleted"}, homePath)
	}
}
