package domain

// Registration Model
type Registration struct {
	ID      uint   `gorm:"primaryKey" json:"id"`           // Primary key
	EventID uint   `gorm:"not null;index" json:"event_id"` // Foreign key to Event
	Name    string `gorm:"size:255;not null" json:"name"`  // Registrant name
	Email   string `gorm:"size:255;not null" json:"email"` // Registrant email, format not checked
}

// Registrant is the name/email pair shown to admins for one registration
type Registrant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
