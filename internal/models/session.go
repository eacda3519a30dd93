package models

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront-backend/internal/cart"
)

// Session is one storefront page visit. It exclusively owns its Cart;
// callers hold the session lock for the whole of an operation on it.
type Session struct {
	ID        uuid.UUID
	Cart      *cart.Cart
	CreatedAt time.Time
	ExpiresAt time.Time

	mu sync.Mutex
}

func NewSession(now time.Time, ttl time.Duration) *Session {
	return &Session{
		ID:        uuid.New(),
		Cart:      cart.New(),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func (s *Session) Lock() {
	s.mu.Lock()
}

func (s *Session) Unlock() {
	s.mu.Unlock()
}
