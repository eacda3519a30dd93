// Package cart holds the line items a shopper has picked during one session.
package cart

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LineItem is one distinct (product, unit) combination and its accumulated
// quantity. Name, UnitDisplay and UnitPrice are captured by the first add.
type LineItem struct {
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	Unit        Unit            `json:"unit"`
	UnitDisplay string          `json:"unit_display"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

type itemKey struct {
	productID string
	unit      Unit
}

// Cart maps (product, unit) to a LineItem and remembers the order in which
// keys were first added. A Cart is not safe for concurrent use; its owner
// sequences every call.
type Cart struct {
	items map[itemKey]*LineItem
	order []itemKey
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{
		items: make(map[itemKey]*LineItem),
	}
}

// AddItem adds quantity units of a product. Adding a key that is already in
// the cart increases its quantity and keeps the first price and labels.
func (c *Cart) AddItem(productID string, unit Unit, unitPrice decimal.Decimal, name, unitDisplay string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if unitPrice.IsNegative() {
		return fmt.Errorf("%w: got %s", ErrInvalidPrice, unitPrice.String())
	}
	if !unit.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownUnit, string(unit))
	}

	if c.items == nil {
		c.items = make(map[itemKey]*LineItem)
	}

	key := itemKey{productID: productID, unit: unit}
	if item, ok := c.items[key]; ok {
		item.Quantity += quantity
		return nil
	}

	c.items[key] = &LineItem{
		ProductID:   productID,
		Name:        name,
		Unit:        unit,
		UnitDisplay: unitDisplay,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
	}
	c.order = append(c.order, key)
	return nil
}

// TotalItemCount is the sum of quantities over all line items.
func (c *Cart) TotalItemCount() int {
	if c == nil {
		return 0
	}
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Clear removes every line item.
func (c *Cart) Clear() {
	if c == nil {
		return
	}
	c.items = make(map[itemKey]*LineItem)
	c.order = nil
}

// Len is the number of distinct line items.
func (c *Cart) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return c.Len() == 0
}

// Get returns a copy of the line item stored for (productID, unit).
func (c *Cart) Get(productID string, unit Unit) (LineItem, bool) {
	if c == nil {
		return LineItem{}, false
	}
	item, ok := c.items[itemKey{productID: productID, unit: unit}]
	if !ok {
		return LineItem{}, false
	}
	return *item, true
}

// Items returns copies of the line items in the order they were first added.
func (c *Cart) Items() []LineItem {
	if c == nil {
		return nil
	}
	out := make([]LineItem, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, *c.items[key])
	}
	return out
}
