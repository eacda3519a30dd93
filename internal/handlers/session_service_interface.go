package handlers

import (
	"context"

	"storefront-backend/internal/services"
)

// SessionServiceInterface defines the contract for session service
type SessionServiceInterface interface {
	StartSession(ctx context.Context) (*services.SessionResponse, error)
	EndSession(ctx context.Context, sessionID string) error
}
