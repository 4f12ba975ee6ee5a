package service

import (
	"event_manager/internal/domain"

	"github.com/sirupsen/logrus"
)

// IsAdmin reports whether the session is present and holds the admin role
func IsAdmin(sess *domain.Session) bool {
	return sess.IsAdmin()
}

// RequireSession fails with domain.ErrUnauthenticated when no one is logged in
func RequireSession(sess *domain.Session) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	return nil
}

// RequireAdmin fails with domain.ErrForbidden unless sess is an admin session.
// An absent session is forbidden too, not unauthenticated.
func RequireAdmin(sess *domain.Session, op string) error {
	if IsAdmin(sess) {
		return nil
	}
	fields := logrus.Fields{"operation": op} // Audit denied attempts
	if sess != nil {
		fields["user_id"] = sess.UserID
		fields["role"] = sess.Role
	}
	logrus.WithFields(fields).Warn("Admin operation denied")
	return domain.ErrForbidden
}
