package model

// CartLine pairs a product with a positive quantity. The cart keeps at
// most one line per product id; a quantity of zero means the line is gone,
// not that it exists empty.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is the line price, price times quantity.
func (l CartLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}
