package store

import (
	"context"
	"errors"
	"fmt"

	"event_manager/internal/domain"

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"
)

// AccountStore owns user identity records
type AccountStore struct {
	db   *gorm.DB
	cost int // bcrypt cost
}

// NewAccountStore returns an AccountStore hashing credentials at the given bcrypt cost
func NewAccountStore(db *gorm.DB, cost int) *AccountStore {
	return &AccountStore{db: db, cost: cost}
}

// CreateUser stores a new account and returns its id.
// A taken username yields domain.ErrDuplicateUsername and leaves the existing row untouched.
func (s *AccountStore) CreateUser(ctx context.Context, username, credential string, role domain.Role) (uint, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(credential), s.cost) // Hash the credential
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return 0, &domain.ValidationError{Fields: []string{"password"}}
		}
		return 0, fmt.Errorf("hash credential: %w", err)
	}
	user := domain.User{Username: username, Password: string(hash), Role: role}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isDuplicateKey(err) { // Unique index on username
			return 0, domain.ErrDuplicateUsername
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	return user.ID, nil
}

// FindUser returns the account matching username, credential and role all at once.
// Any mismatch, including a role the account does not hold, yields domain.ErrInvalidCredentials.
func (s *AccountStore) FindUser(ctx context.Context, username, credential string, role domain.Role) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Where("username = ? AND role = ?", username, role).First(&user).Error // Role is part of the match
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(credential)); err != nil { // Compare passwords
		return nil, domain.ErrInvalidCredentials
	}
	return &user, nil
}
