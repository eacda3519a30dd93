package cart

import "errors"

// Validation errors returned by AddItem and the Parse helpers.
// The cart is never modified when one of these is returned.
var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrInvalidPrice    = errors.New("unit price must be a finite non-negative amount")
	ErrUnknownUnit     = errors.New("unit must be piece or carton")
)
