package domain

// Session is a snapshot of the account taken at login.
//
// It is not re-read from the account store on later requests, so a role or
// username change only takes effect after the user logs in again.
type Session struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether s is present and carries the admin role
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
