// Package service holds the authorization-gated operations over accounts,
// events and registrations. Every gated call takes the caller's session
// explicitly; a nil session means the caller is not logged in.
package service

import (
	"context"

	"event_manager/internal/domain"
)

// AccountStore is the persistence needed by Accounts
type AccountStore interface {
	CreateUser(ctx context.Context, username, credential string, role domain.Role) (uint, error)
	FindUser(ctx context.Context, username, credential string, role domain.Role) (*domain.User, error)
}

// SessionManager issues and resolves session handles
type SessionManager interface {
	Start(ctx context.Context, user *domain.User) (string, error)
	Current(ctx context.Context, handle string) (*domain.Session, error)
	End(ctx context.Context, handle string) error
}

// EventStore is the persistence needed by Events
type EventStore interface {
	List(ctx context.Context) ([]domain.Event, error)
	Get(ctx context.Context, id uint) (*domain.Event, error)
	Create(ctx context.Context, ev *domain.Event) error
	Update(ctx context.Context, ev *domain.Event) error
	Delete(ctx context.Context, id uint) error
}

// RegistrationStore is the persistence needed by Registrations
type RegistrationStore interface {
	Create(ctx context.Context, reg *domain.Registration) error
	ListByEvent(ctx context.Context, eventID uint) ([]domain.Registrant, error)
}
