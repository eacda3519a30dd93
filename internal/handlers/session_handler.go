package handlers

import (
	"net/http"

	"storefront-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService SessionServiceInterface
}

func NewSessionHandler(sessionService SessionServiceInterface) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// RegisterRoutes registers the routes for storefront sessions
func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup, sessionMiddleware *middleware.SessionMiddleware) {
	sessions := router.Group("/sessions")
	{
		sessions.POST("", h.StartSession)
		sessions.DELETE("", sessionMiddleware.SessionRequired(), h.EndSession)
	}
}

// StartSession godoc
// @Summary Start a storefront session with an empty cart
// @Tags sessions
// @Produce json
// @Success 201 {object} services.SessionResponse
// @Router /sessions [post]
func (h *SessionHandler) StartSession(c *gin.Context) {
	session, err := h.sessionService.StartSession(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to start session", err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// EndSession godoc
// @Summary End the session and discard its cart
// @Tags sessions
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /sessions [delete]
func (h *SessionHandler) EndSession(c *gin.Context) {
	if err := h.sessionService.EndSession(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		respondError(c, "Failed to end session", err)
		return
	}

	c.Status(http.StatusNoContent)
}
