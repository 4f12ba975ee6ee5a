package domain

// Role scopes what an authenticated user may do
type Role string

const (
	RoleAdmin Role = "admin" // May manage events and read registrant lists
	RoleUser  Role = "user"  // May browse events
)

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`                                                        // Primary key
	Username string `gorm:"size:191;uniqueIndex;not null" json:"username"`                               // Unique username
	Password string `gorm:"size:255;not null" json:"-"`                                                  // Hashed credential
	Role     Role   `gorm:"size:16;not null;check:chk_users_role,role IN ('admin','user')" json:"role"` // Role: admin or user
}
