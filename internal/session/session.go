// Package session issues and resolves login sessions.
//
// A session handle is an HS256 JWT. Its jti names a Redis key holding the
// {user_id, username, role} snapshot, so deleting the key ends the session
// even though the token itself is still validly signed.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"event_manager/internal/domain"

	"github.com/golang-jwt/jwt/v5" // JWT library
	"github.com/google/uuid"       // Session ids
	"github.com/redis/go-redis/v9" // Redis client
)

// ErrNoSession is returned by Current when the handle does not name a live session
var ErrNoSession = errors.New("no session")

const keyPrefix = "session:"

// Claims carried by a session handle
type Claims struct {
	UserID   uint        `json:"user_id"`
	Username string      `json:"username"`
	Role     domain.Role `json:"role"`
	// Standard JWT claims, ID holds the session id
	jwt.RegisteredClaims
}

// Manager starts, resolves and ends sessions
type Manager struct {
	rdb    *redis.Client
	secret []byte
	ttl    time.Duration
}

// NewManager returns a Manager signing handles with secret; sessions expire after ttl
func NewManager(rdb *redis.Client, secret string, ttl time.Duration) *Manager {
	return &Manager{rdb: rdb, secret: []byte(secret), ttl: ttl}
}

// Start opens a session for user and returns its opaque handle
func (m *Manager) Start(ctx context.Context, user *domain.User) (string, error) {
	snap := domain.Session{UserID: user.ID, Username: user.Username, Role: user.Role}
	id := uuid.NewString()
	now := time.Now()

	claims := Claims{
		UserID:   snap.UserID,
		Username: snap.Username,
		Role:     snap.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}

	b, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}
	if err := m.rdb.Set(ctx, keyPrefix+id, b, m.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Current resolves handle to its session snapshot.
// A malformed, expired or ended handle yields ErrNoSession.
func (m *Manager) Current(ctx context.Context, handle string) (*domain.Session, error) {
	if handle == "" {
		return nil, ErrNoSession
	}
	claims, err := m.parse(handle)
	if err != nil {
		return nil, ErrNoSession
	}

	val, err := m.rdb.Get(ctx, keyPrefix+claims.ID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	var snap domain.Session
	if err := json.Unmarshal(val, &snap); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &snap, nil
}

// End clears the session named by handle. Ending an absent session is not an error.
func (m *Manager) End(ctx context.Context, handle string) error {
	if handle == "" {
		return nil
	}
	// Expired handles still name a key that may not have been evicted yet
	claims, err := m.parse(handle, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil
	}
	if err := m.rdb.Del(ctx, keyPrefix+claims.ID).Err(); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

func (m *Manager) parse(handle string, opts ...jwt.ParserOption) (*Claims, error) {
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := jwt.ParseWithClaims(handle, &Claims{}, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.ID == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
