package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"storefront-backend/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository interface for in-memory storefront sessions
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) int
}
