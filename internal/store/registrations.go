package store

import (
	"context"
	"fmt"

	"event_manager/internal/domain"

	"gorm.io/gorm"
)

// RegistrationStore owns registration records, each bound to one event
type RegistrationStore struct {
	db *gorm.DB
}

func NewRegistrationStore(db *gorm.DB) *RegistrationStore {
	return &RegistrationStore{db: db}
}

// Create inserts reg after checking that its event exists.
// An unknown event yields domain.ErrNotFound and nothing is written.
func (s *RegistrationStore) Create(ctx context.Context, reg *domain.Registration) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := getEvent(tx, reg.EventID); err != nil { // Event must exist
			return err
		}
		if err := tx.Create(reg).Error; err != nil {
			if isForeignKeyViolation(err) { // Event deleted concurrently
				return domain.ErrNotFound
			}
			return fmt.Errorf("create registration: %w", err)
		}
		return nil
	})
}

// ListByEvent returns the name/email pairs registered for eventID, oldest first
func (s *RegistrationStore) ListByEvent(ctx context.Context, eventID uint) ([]domain.Registrant, error) {
	out := []domain.Registrant{}
	err := s.db.WithContext(ctx).
		Model(&domain.Registration{}).
		Select("name", "email"). // Only what admins see
		Where("event_id = ?", eventID).
		Order("id").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return out, nil
}

// CountByEvent returns how many registrations reference eventID
func (s *RegistrationStore) CountByEvent(ctx context.Context, eventID uint) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&domain.Registration{}).Where("event_id = ?", eventID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count registrations: %w", err)
	}
	return n, nil
}
