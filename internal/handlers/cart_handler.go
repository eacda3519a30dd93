package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"storefront-backend/internal/middleware"
	"storefront-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService CartServiceInterface
}

func NewCartHandler(cartService CartServiceInterface) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// RegisterRoutes registers the routes for cart management
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup, sessionMiddleware *middleware.SessionMiddleware) {
	// All cart routes belong to a session
	cart := router.Group("/cart", sessionMiddleware.SessionRequired())
	{
		cart.GET("", h.GetCart)
		cart.GET("/count", h.GetItemCount)
		cart.POST("/items", h.AddToCart)
		cart.DELETE("", h.ClearCart)
		cart.GET("/summary", h.GetSummary)
		cart.POST("/checkout", h.Checkout)
	}
}

// GetCart godoc
// @Summary Get the session's cart
// @Tags cart
// @Produce json
// @Success 200 {object} services.CartResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.cartService.GetCart(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		respondError(c, "Failed to get cart", err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// GetItemCount godoc
// @Summary Get the number of items for the cart badge
// @Tags cart
// @Produce json
// @Success 200 {object} ItemCountResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/count [get]
func (h *CartHandler) GetItemCount(c *gin.Context) {
	count, err := h.cartService.ItemCount(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		respondError(c, "Failed to count items", err)
		return
	}

	c.JSON(http.StatusOK, ItemCountResponse{ItemCount: count})
}

// AddToCart godoc
// @Summary Add item to cart
// @Description Adds quantity of a product in the chosen unit; repeated adds of the same product and unit merge
// @Tags cart
// @Accept json
// @Produce json
// @Param item body AddToCartRequest true "Cart item data"
// @Success 200 {object} services.CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart/items [post]
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	// The first storefront revision had no quantity stepper and added one.
	quantity := req.Quantity.String()
	if quantity == "" {
		quantity = "1"
	}

	serviceReq := &services.AddToCartRequest{
		ProductID:   req.ProductID,
		Unit:        req.Unit,
		UnitPrice:   req.UnitPrice.String(),
		Name:        req.Name,
		UnitDisplay: req.UnitDisplay,
		Quantity:    quantity,
	}

	cart, err := h.cartService.AddToCart(c.Request.Context(), middleware.GetSessionID(c), serviceReq)
	if err != nil {
		respondError(c, "Failed to add item to cart", err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// ClearCart godoc
// @Summary Clear the session's cart
// @Tags cart
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cartService.ClearCart(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		respondError(c, "Failed to clear cart", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetSummary godoc
// @Summary Get the order summary
// @Tags cart
// @Produce json
// @Success 200 {object} services.SummaryResponse
// @Failure 409 {object} ErrorResponse
// @Router /cart/summary [get]
func (h *CartHandler) GetSummary(c *gin.Context) {
	summary, err := h.cartService.GetSummary(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		respondError(c, "Failed to build summary", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Checkout godoc
// @Summary Generate the order message and WhatsApp link
// @Tags cart
// @Produce json
// @Param clear query bool false "Empty the cart once the message is generated"
// @Success 200 {object} services.CheckoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	clearAfter, err := strconv.ParseBool(c.DefaultQuery("clear", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid clear parameter",
			Message: err.Error(),
		})
		return
	}

	checkout, err := h.cartService.Checkout(c.Request.Context(), middleware.GetSessionID(c), clearAfter)
	if err != nil {
		respondError(c, "Failed to checkout", err)
		return
	}

	c.JSON(http.StatusOK, checkout)
}

// Request/Response types
type AddToCartRequest struct {
	ProductID   string      `json:"product_id" binding:"required"`
	Unit        string      `json:"unit" binding:"required"`
	UnitPrice   json.Number `json:"unit_price" binding:"required"`
	Name        string      `json:"name" binding:"required"`
	UnitDisplay string      `json:"unit_display"`
	Quantity    json.Number `json:"quantity"`
}

type ItemCountResponse struct {
	ItemCount int `json:"item_count"`
}
