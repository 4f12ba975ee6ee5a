package service

import (
	"context"
	"errors"
	"strings"

	"event_manager/internal/domain"
	"event_manager/internal/session"

	"github.com/sirupsen/logrus"
)

// NewAccount is the input for creating an account
type NewAccount struct {
	Username string      `json:"username" form:"username" validate:"required,max=191"`
	Password string      `json:"password" form:"password" validate:"required"`
	Role     domain.Role `json:"role" form:"role" validate:"required,oneof=admin user"`
}

// Credentials is the input for logging in. The role is part of what is checked.
type Credentials struct {
	Username string      `json:"username" form:"username" validate:"required"`
	Password string      `json:"password" form:"password" validate:"required"`
	Role     domain.Role `json:"role" form:"role" validate:"required"`
}

// Accounts registers users and manages their login sessions
type Accounts struct {
	store            AccountStore
	sessions         SessionManager
	allowAdminSignup bool
}

// NewAccounts returns Accounts; allowAdminSignup decides whether Register may create admins
func NewAccounts(store AccountStore, sessions SessionManager, allowAdminSignup bool) *Accounts {
	return &Accounts{store: store, sessions: sessions, allowAdminSignup: allowAdminSignup}
}

// Register creates a new account and returns its id
func (a *Accounts) Register(ctx context.Context, in NewAccount) (uint, error) {
	in.Username = strings.TrimSpace(in.Username) // Whitespace-only counts as empty
	if err := validateStruct(in); err != nil {
		return 0, err
	}
	if in.Role == domain.RoleAdmin && !a.allowAdminSignup {
		logrus.WithField("username", in.Username).Warn("Admin signup refused")
		return 0, domain.ErrForbidden
	}
	id, err := a.store.CreateUser(ctx, in.Username, in.Password, in.Role) // Create user
	if err != nil {
		return 0, err
	}
	logrus.WithFields(logrus.Fields{
		"user_id":  id,
		"username": in.Username,
		"role":     in.Role,
	}).Info("User registered")
	return id, nil
}

// Login checks the credentials and starts a session, ending previous first.
// It returns the new handle and the session it names.
func (a *Accounts) Login(ctx context.Context, in Credentials, previous string) (string, *domain.Session, error) {
	in.Username = strings.TrimSpace(in.Username)
	if err := validateStruct(in); err != nil {
		return "", nil, err
	}
	user, err := a.store.FindUser(ctx, in.Username, in.Password, in.Role) // Username, password and role must all match
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			logrus.WithFields(logrus.Fields{"username": in.Username, "role": in.Role}).Info("Login failed")
		}
		return "", nil, err
	}
	if err := a.sessions.End(ctx, previous); err != nil { // One session per login
		return "", nil, err
	}
	handle, err := a.sessions.Start(ctx, user) // Snapshot the account
	if err != nil {
		return "", nil, err
	}
	logrus.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("User logged in")
	return handle, &domain.Session{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// Logout ends the session named by handle. It is idempotent.
func (a *Accounts) Logout(ctx context.Context, handle string) error {
	return a.sessions.End(ctx, handle)
}

// Session resolves handle, returning nil without error when there is no live session
func (a *Accounts) Session(ctx context.Context, handle string) (*domain.Session, error) {
	sess, err := a.sessions.Current(ctx, handle)
	if errors.Is(err, session.ErrNoSession) {
		return nil, nil
	}
	return sess, err
}
