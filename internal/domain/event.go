package domain

// Event Model
type Event struct {
	ID            uint           `gorm:"primaryKey" json:"id"`                  // Primary key
	Name          string         `gorm:"size:255;not null" json:"name"`         // Display name, not unique
	Date          string         `gorm:"size:10;not null" json:"date"`          // Calendar date (YYYY-MM-DD)
	Description   *string        `gorm:"type:text" json:"description"`          // Optional description
	Registrations []Registration `gorm:"constraint:OnDelete:CASCADE;" json:"-"` // One event has many registrations
}
