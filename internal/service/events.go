package service

import (
	"context"
	"strings"

	"event_manager/internal/cache"
	"event_manager/internal/domain"

	"github.com/sirupsen/logrus"
)

// EventInput carries the mutable fields of an event
type EventInput struct {
	Name        string  `json:"name" form:"name" validate:"required,max=255"`
	Date        string  `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Description *string `json:"description" form:"description"`
}

func (in *EventInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Date = strings.TrimSpace(in.Date)
	if in.Description != nil && strings.TrimSpace(*in.Description) == "" {
		in.Description = nil
	}
}

// Events is the admin-gated event CRUD
type Events struct {
	store EventStore
	cache *cache.Cache
}

// NewEvents returns Events; c may be nil to disable list caching
func NewEvents(store EventStore, c *cache.Cache) *Events {
	return &Events{store: store, cache: c}
}

// List returns all events to any logged-in caller
func (e *Events) List(ctx context.Context, sess *domain.Session) ([]domain.Event, error) {
	if err := RequireSession(sess); err != nil {
		return nil, err
	}
	return loadCached(ctx, e.cache, eventsScope, e.store.List) // Same list for every role
}

// Get returns one event. It is public so visitors can see what they register for.
func (e *Events) Get(ctx context.Context, id uint) (*domain.Event, error) {
	return e.store.Get(ctx, id)
}

// Create adds an event and returns its id
func (e *Events) Create(ctx context.Context, sess *domain.Session, in EventInput) (uint, error) {
	if err := RequireAdmin(sess, "create_event"); err != nil {
		return 0, err
	}
	in.normalize() // Trim fields, blank description becomes NULL
	if err := validateStruct(in); err != nil {
		return 0, err
	}
	ev := &domain.Event{Name: in.Name, Date: in.Date, Description: in.Description}
	if err := e.store.Create(ctx, ev); err != nil { // Insert, fills ev.ID
		return 0, err
	}
	invalidate(ctx, e.cache, eventsScope) // Next List reloads
	logrus.WithFields(logrus.Fields{"event_id": ev.ID, "user_id": sess.UserID}).Info("Event created")
	return ev.ID, nil
}

// Update replaces the name, date and description of event id. Last write wins.
func (e *Events) Update(ctx context.Context, sess *domain.Session, id uint, in EventInput) error {
	if err := RequireAdmin(sess, "update_event"); err != nil {
		return err
	}
	in.normalize() // Trim fields, blank description becomes NULL
	if err := validateStruct(in); err != nil {
		return err
	}
	if err := e.store.Update(ctx, &domain.Event{ID: id, Name: in.Name, Date: in.Date, Description: in.Description}); err != nil {
		return err
	}
	invalidate(ctx, e.cache, eventsScope) // Next List reloads
	logrus.WithFields(logrus.Fields{"event_id": id, "user_id": sess.UserID}).Info("Event updated")
	return nil
}

// Delete removes event id together with its registrations
func (e *Events) Delete(ctx context.Context, sess *domain.Session, id uint) error {
	if err := RequireAdmin(sess, "delete_event"); err != nil {
		return err
	}
	if err := e.store.Delete(ctx, id); err != nil { // Cascades to registrations
		return err
	}
	invalidate(ctx, e.cache, eventsScope, registrationsScope(id)) // Registrations went with the event
	logrus.WithFields(logrus.Fields{"event_id": id, "user_id": sess.UserID}).Info("Event deleted")
	return nil
}

