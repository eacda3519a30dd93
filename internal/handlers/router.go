package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-backend/internal/middleware"
)

type RouterDeps struct {
	Logger            *zap.Logger
	AllowedOrigins    []string
	SessionMiddleware *middleware.SessionMiddleware
	SessionHandler    *SessionHandler
	CartHandler       *CartHandler
}

// NewRouter wires middleware and routes. Gin mode is set by the caller.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(deps.AllowedOrigins))
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.RecoveryMiddleware(deps.Logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "storefront-backend",
		})
	})

	api := router.Group("/api/v1")
	deps.SessionHandler.RegisterRoutes(api, deps.SessionMiddleware)
	deps.CartHandler.RegisterRoutes(api, deps.SessionMiddleware)

	return router
}
