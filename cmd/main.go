package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"storefront-backend/configs"
	"storefront-backend/internal/handlers"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/models"
	"storefront-backend/internal/order"
	"storefront-backend/internal/repositories"
	"storefront-backend/internal/services"
	"storefront-backend/pkg/session"
	"storefront-backend/pkg/whatsapp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	config := configs.LoadConfig()

	logger, err := newLogger(config.Log)
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	if err := config.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	if config.Session.UsesDefaultSecret() {
		logger.Warn("SESSION_SECRET is not set; session tokens are signed with the default key")
	}

	// Set Gin mode
	gin.SetMode(config.Server.Mode)

	// Sessions live in memory only; eviction discards the cart with them
	sessionRepo := repositories.NewSessionRepository(config.Session.Capacity, config.Session.TTL, func(s *models.Session) {
		logger.Debug("session evicted", zap.String("session_id", s.ID.String()))
	})
	tokenManager := session.NewTokenManager(config.Session.Secret, config.Session.TTL)

	// Initialize services
	composer := order.NewComposer(whatsapp.NewLinkBuilder(config.Store.LinkBaseURL))
	sessionService := services.NewSessionService(sessionRepo, tokenManager, logger)
	cartService := services.NewCartService(sessionRepo, composer, config.Store, logger)

	router := handlers.NewRouter(handlers.RouterDeps{
		Logger:            logger,
		AllowedOrigins:    config.Server.AllowedOrigins,
		SessionMiddleware: middleware.NewSessionMiddleware(tokenManager),
		SessionHandler:    handlers.NewSessionHandler(sessionService),
		CartHandler:       handlers.NewCartHandler(cartService),
	})

	server := &http.Server{
		Addr:    net.JoinHostPort(config.Server.Host, config.Server.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			zap.String("addr", server.Addr),
			zap.String("store", config.Store.Name),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("server shutting down")
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg configs.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zapConfig := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	return zapConfig.Build()
}
