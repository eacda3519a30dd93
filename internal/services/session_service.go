package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-backend/internal/models"
	"storefront-backend/internal/repositories"
	"storefront-backend/pkg/session"
)

type SessionService struct {
	sessions repositories.SessionRepository
	tokens   *session.TokenManager
	logger   *zap.Logger
	now      func() time.Time
}

func NewSessionService(sessions repositories.SessionRepository, tokens *session.TokenManager, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
		now:      time.Now,
	}
}

type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// StartSession opens a session with an empty cart. The page calls it on
// load, so a reload starts over with a new cart.
func (s *SessionService) StartSession(ctx context.Context) (*SessionResponse, error) {
	sess := models.NewSession(s.now(), s.tokens.TTL())

	token, expiresAt, err := s.tokens.Issue(sess.ID.String())
	if err != nil {
		return nil, err
	}
	sess.ExpiresAt = expiresAt

	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}

	s.logger.Info("session started",
		zap.String("session_id", sess.ID.String()),
		zap.Time("expires_at", expiresAt),
		zap.Int("active_sessions", s.sessions.Count(ctx)),
	)

	return &SessionResponse{
		SessionID: sess.ID.String(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// EndSession discards the session and its cart.
func (s *SessionService) EndSession(ctx context.Context, sessionID string) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return ErrSessionNotFound
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("session ended", zap.String("session_id", sessionID))
	return nil
}
