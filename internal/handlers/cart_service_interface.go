package handlers

import (
	"context"

	"storefront-backend/internal/services"
)

// CartServiceInterface defines the contract for cart service
type CartServiceInterface interface {
	AddToCart(ctx context.Context, sessionID string, req *services.AddToCartRequest) (*services.CartResponse, error)
	GetCart(ctx context.Context, sessionID string) (*services.CartResponse, error)
	ItemCount(ctx context.Context, sessionID string) (int, error)
	ClearCart(ctx context.Context, sessionID string) error
	GetSummary(ctx context.Context, sessionID string) (*services.SummaryResponse, error)
	Checkout(ctx context.Context, sessionID string, clearAfter bool) (*services.CheckoutResponse, error)
}
