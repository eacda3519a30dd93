package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-backend/internal/cart"
	"storefront-backend/internal/order"
	"storefront-backend/internal/services"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// respondError maps service errors onto status codes. title is the
// operation that failed, shown as the error field.
func respondError(c *gin.Context, title string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrInvalidPrice),
		errors.Is(err, cart.ErrUnknownUnit):
		status = http.StatusBadRequest
	case errors.Is(err, order.ErrEmptyCart):
		status = http.StatusConflict
	case errors.Is(err, services.ErrSessionNotFound):
		status = http.StatusNotFound
	}

	_ = c.Error(err)
	c.JSON(status, ErrorResponse{
		Error:   title,
		Message: err.Error(),
	})
}
