package service

import (
	"context"
	"strings"

	"event_manager/internal/cache"
	"event_manager/internal/domain"

	"github.com/sirupsen/logrus"
)

// RegistrationInput is what a visitor submits to register for an event.
// The email format is not checked and the same email may register twice.
type RegistrationInput struct {
	Name  string `json:"name" form:"name" validate:"required"`
	Email string `json:"email" form:"email" validate:"required"`
}

// Registrations is the public registration workflow plus the admin registrant list
type Registrations struct {
	store  RegistrationStore
	events EventStore
	cache  *cache.Cache
}

// NewRegistrations returns Registrations; c may be nil to disable list caching
func NewRegistrations(store RegistrationStore, events EventStore, c *cache.Cache) *Registrations {
	return &Registrations{store: store, events: events, cache: c}
}

// GetEvent returns the event a visitor is registering for
func (r *Registrations) GetEvent(ctx context.Context, id uint) (*domain.Event, error) {
	return r.events.Get(ctx, id)
}

// Submit records a registration for eventID. No session is needed.
func (r *Registrations) Submit(ctx context.Context, eventID uint, in RegistrationInput) (uint, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := validateStruct(in); err != nil { // Both fields required
		return 0, err
	}
	reg := &domain.Registration{EventID: eventID, Name: in.Name, Email: in.Email}
	if err := r.store.Create(ctx, reg); err != nil { // Fails with ErrNotFound for an unknown event
		return 0, err
	}
	invalidate(ctx, r.cache, registrationsScope(eventID))
	logrus.WithFields(logrus.Fields{"event_id": eventID, "registration_id": reg.ID}).Info("Registration submitted")
	return reg.ID, nil
}

// List returns the name/email pairs registered for eventID to an admin.
// The event is looked up on every call, so a deleted event is never served from cache.
func (r *Registrations) List(ctx context.Context, sess *domain.Session, eventID uint) ([]domain.Registrant, error) {
	if err := RequireAdmin(sess, "list_registrations"); err != nil {
		return nil, err
	}
	if _, err := r.events.Get(ctx, eventID); err != nil { // Event must still exist
		return nil, err
	}
	return loadCached(ctx, r.cache, registrationsScope(eventID), func(ctx context.Context) ([]domain.Registrant, error) {
		return r.store.ListByEvent(ctx, eventID)
	})
}
