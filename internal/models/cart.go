package models

// CartItem is a single entry in a user's cart. The product is copied in at
// add time so the cart keeps the price and Stripe price id it was built with.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price * quantity for this entry.
func (i CartItem) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}
