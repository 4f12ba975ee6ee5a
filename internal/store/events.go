package store

import (
	"context"
	"errors"
	"fmt"

	"event_manager/internal/domain"

	"gorm.io/gorm"
)

// EventStore owns event records
type EventStore struct {
	db *gorm.DB
}

func NewEventStore(db *gorm.DB) *EventStore {
	return &EventStore{db: db}
}

// List returns every event in insertion order
func (s *EventStore) List(ctx context.Context) ([]domain.Event, error) {
	events := []domain.Event{}
	if err := s.db.WithContext(ctx).Order("id").Find(&events).Error; err != nil { // Query all events
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Get returns the event with the given id or domain.ErrNotFound
func (s *EventStore) Get(ctx context.Context, id uint) (*domain.Event, error) {
	return getEvent(s.db.WithContext(ctx), id)
}

// Create inserts ev and fills in its id
func (s *EventStore) Create(ctx context.Context, ev *domain.Event) error {
	if err := s.db.WithContext(ctx).Create(ev).Error; err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// Update overwrites name, date and description of the event with ev.ID.
// The row is looked up first because MySQL reports zero affected rows for unchanged values.
func (s *EventStore) Update(ctx context.Context, ev *domain.Event) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := getEvent(tx, ev.ID) // Missing id is ErrNotFound
		if err != nil {
			return err
		}
		err = tx.Model(existing).
			Select("name", "date", "description"). // Write NULL descriptions too
			Updates(domain.Event{Name: ev.Name, Date: ev.Date, Description: ev.Description}).Error
		if err != nil {
			return fmt.Errorf("update event: %w", err)
		}
		return nil
	})
}

// Delete removes the event and all of its registrations in one transaction
func (s *EventStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := getEvent(tx, id); err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&domain.Registration{}).Error; err != nil { // Children first
			return fmt.Errorf("delete registrations: %w", err)
		}
		if err := tx.Delete(&domain.Event{}, id).Error; err != nil {
			return fmt.Errorf("delete event: %w", err)
		}
		return nil
	})
}

func getEvent(db *gorm.DB, id uint) (*domain.Event, error) {
	var ev domain.Event
	err := db.First(&ev, id).Error // Query by primary key
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &ev, nil
}
