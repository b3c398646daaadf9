package domain

import "time"

// CartItem is one line in the cart, keyed by product+variant identity.
// Price is a snapshot captured at add-time; later catalog price changes do
// not retroactively alter cart totals.
type CartItem struct {
	ID        string
	ProductID string
	Product   *Product
	VariantID string
	Variant   *ProductVariant
	Quantity  int
	Price     float64
	AddedAt   time.Time
}

// Subtotal is the line's contribution to the cart subtotal.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
