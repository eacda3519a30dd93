package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"storefront-backend/internal/models"
)

// sessionRepository keeps sessions in process memory only. Entries expire
// after ttl and the least recently used one is evicted once capacity is
// reached; either way the session's cart is gone.
type sessionRepository struct {
	sessions *expirable.LRU[uuid.UUID, *models.Session]
}

func NewSessionRepository(capacity int, ttl time.Duration, onEvict func(*models.Session)) SessionRepository {
	var evict func(uuid.UUID, *models.Session)
	if onEvict != nil {
		evict = func(_ uuid.UUID, s *models.Session) { onEvict(s) }
	}
	return &sessionRepository{
		sessions: expirable.NewLRU[uuid.UUID, *models.Session](capacity, evict, ttl),
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *models.Session) error {
	r.sessions.Add(session.ID, session)
	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	session, ok := r.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if !r.sessions.Remove(id) {
		return ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepository) Count(ctx context.Context) int {
	return r.sessions.Len()
}
