package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront-backend/configs"
	"storefront-backend/internal/cart"
	"storefront-backend/internal/models"
	"storefront-backend/internal/order"
	"storefront-backend/internal/repositories"
)

var ErrSessionNotFound = repositories.ErrSessionNotFound

type CartService struct {
	sessions repositories.SessionRepository
	composer *order.Composer
	store    configs.StoreConfig
	logger   *zap.Logger
}

func NewCartService(
	sessions repositories.SessionRepository,
	composer *order.Composer,
	store configs.StoreConfig,
	logger *zap.Logger,
) *CartService {
	return &CartService{
		sessions: sessions,
		composer: composer,
		store:    store,
		logger:   logger,
	}
}

// AddToCartRequest carries the values the page read from a product card.
// Numbers arrive as their decimal text so validation can tell a fractional
// quantity from a malformed one.
type AddToCartRequest struct {
	ProductID   string
	Unit        string
	UnitPrice   string
	Name        string
	UnitDisplay string
	Quantity    string
}

type CartItemResponse struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Unit        string `json:"unit"`
	UnitDisplay string `json:"unit_display"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	LineTotal   string `json:"line_total"`
}

type CartResponse struct {
	SessionID  string             `json:"session_id"`
	Items      []CartItemResponse `json:"items"`
	ItemCount  int                `json:"item_count"`
	GrandTotal string             `json:"grand_total"`
}

type SummaryResponse struct {
	Items      []CartItemResponse `json:"items"`
	ItemCount  int                `json:"item_count"`
	GrandTotal string             `json:"grand_total"`
}

type CheckoutResponse struct {
	Summary     SummaryResponse `json:"summary"`
	Message     string          `json:"message"`
	WhatsAppURL string          `json:"whatsapp_url"`
	Cleared     bool            `json:"cleared"`
}

func (s *CartService) AddToCart(ctx context.Context, sessionID string, req *AddToCartRequest) (*CartResponse, error) {
	unit, err := cart.ParseUnit(req.Unit)
	if err != nil {
		return nil, err
	}
	quantity, err := cart.ParseQuantity(req.Quantity)
	if err != nil {
		return nil, err
	}
	unitPrice, err := cart.ParsePrice(req.UnitPrice)
	if err != nil {
		return nil, err
	}
	unitDisplay := req.UnitDisplay
	if unitDisplay == "" {
		unitDisplay = unit.DefaultLabel()
	}

	var response *CartResponse
	err = s.withSession(ctx, sessionID, func(sess *models.Session) error {
		if err := sess.Cart.AddItem(req.ProductID, unit, unitPrice, req.Name, unitDisplay, quantity); err != nil {
			return err
		}
		s.logger.Info("item added to cart",
			zap.String("session_id", sessionID),
			zap.String("product_id", req.ProductID),
			zap.String("unit", unit.String()),
			zap.Int("quantity", quantity),
			zap.Int("item_count", sess.Cart.TotalItemCount()),
		)
		response = buildCartResponse(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (*CartResponse, error) {
	var response *CartResponse
	err := s.withSession(ctx, sessionID, func(sess *models.Session) error {
		response = buildCartResponse(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// ItemCount is the number shown on the cart badge.
func (s *CartService) ItemCount(ctx context.Context, sessionID string) (int, error) {
	count := 0
	err := s.withSession(ctx, sessionID, func(sess *models.Session) error {
		count = sess.Cart.TotalItemCount()
		return nil
	})
	return count, err
}

func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	return s.withSession(ctx, sessionID, func(sess *models.Session) error {
		sess.Cart.Clear()
		s.logger.Info("cart cleared", zap.String("session_id", sessionID))
		return nil
	})
}

func (s *CartService) GetSummary(ctx context.Context, sessionID string) (*SummaryResponse, error) {
	var response *SummaryResponse
	err := s.withSession(ctx, sessionID, func(sess *models.Session) error {
		summary, err := order.BuildSummary(sess.Cart)
		if err != nil {
			return err
		}
		response = buildSummaryResponse(summary)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// Checkout renders the order message for the session's cart. The cart is
// emptied afterwards only when clearAfter is set.
func (s *CartService) Checkout(ctx context.Context, sessionID string, clearAfter bool) (*CheckoutResponse, error) {
	var response *CheckoutResponse
	err := s.withSession(ctx, sessionID, func(sess *models.Session) error {
		summary, err := order.BuildSummary(sess.Cart)
		if err != nil {
			return err
		}
		msg, err := s.composer.RenderMessage(summary, s.store.Name, s.store.ContactPhone)
		if err != nil {
			return err
		}
		if clearAfter {
			sess.Cart.Clear()
		}

		s.logger.Info("order message generated",
			zap.String("session_id", sessionID),
			zap.Int("lines", len(summary.Lines)),
			zap.Int("item_count", summary.ItemCount),
			zap.String("grand_total", order.FormatAmount(summary.GrandTotal)),
			zap.Bool("cleared", clearAfter),
		)

		response = &CheckoutResponse{
			Summary:     *buildSummaryResponse(summary),
			Message:     msg.Text,
			WhatsAppURL: msg.URL,
			Cleared:     clearAfter,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// withSession runs fn while holding the session lock so that operations on
// one cart never interleave.
func (s *CartService) withSession(ctx context.Context, sessionID string, fn func(*models.Session) error) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrSessionNotFound, sessionID)
	}
	sess, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return err
	}

	sess.Lock()
	defer sess.Unlock()
	return fn(sess)
}

func buildCartResponse(sess *models.Session) *CartResponse {
	response := &CartResponse{
		SessionID:  sess.ID.String(),
		Items:      []CartItemResponse{},
		ItemCount:  sess.Cart.TotalItemCount(),
		GrandTotal: order.FormatAmount(decimal.Zero),
	}
	summary, err := order.BuildSummary(sess.Cart)
	if err != nil {
		// Empty cart: no lines and a zero total.
		return response
	}
	response.Items = buildItemResponses(summary)
	response.GrandTotal = order.FormatAmount(summary.GrandTotal)
	return response
}

func buildSummaryResponse(summary *order.Summary) *SummaryResponse {
	return &SummaryResponse{
		Items:      buildItemResponses(summary),
		ItemCount:  summary.ItemCount,
		GrandTotal: order.FormatAmount(summary.GrandTotal),
	}
}

func buildItemResponses(summary *order.Summary) []CartItemResponse {
	items := make([]CartItemResponse, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		items = append(items, CartItemResponse{
			ProductID:   line.Item.ProductID,
			Name:        line.Item.Name,
			Unit:        line.Item.Unit.String(),
			UnitDisplay: line.Item.UnitDisplay,
			Quantity:    line.Item.Quantity,
			UnitPrice:   order.FormatAmount(line.Item.UnitPrice),
			LineTotal:   order.FormatAmount(line.LineTotal),
		})
	}
	return items
}
