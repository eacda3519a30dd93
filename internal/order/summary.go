// Package order turns a cart into an order summary and the outbound
// order message.
package order

import (
	"errors"

	"github.com/shopspring/decimal"

	"storefront-backend/internal/cart"
)

// MoneyPlaces is the number of decimals every amount is shown with.
const MoneyPlaces = 3

var ErrEmptyCart = errors.New("cart is empty")

// Line pairs a cart line item with quantity × unit price.
type Line struct {
	Item      cart.LineItem
	LineTotal decimal.Decimal
}

// Summary is a read-only view of a cart, lines in insertion order.
type Summary struct {
	Lines      []Line
	GrandTotal decimal.Decimal
	ItemCount  int
}

// BuildSummary reads c without modifying it. Totals are summed on exact
// decimals; rounding happens only when formatting.
func BuildSummary(c *cart.Cart) (*Summary, error) {
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	items := c.Items()
	summary := &Summary{
		Lines:      make([]Line, 0, len(items)),
		GrandTotal: decimal.Zero,
	}
	for _, item := range items {
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		summary.Lines = append(summary.Lines, Line{Item: item, LineTotal: lineTotal})
		summary.GrandTotal = summary.GrandTotal.Add(lineTotal)
		summary.ItemCount += item.Quantity
	}
	return summary, nil
}

// FormatAmount renders d with MoneyPlaces decimals, rounding half away
// from zero.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(MoneyPlaces)
}
