package models

// CartItem is a single line in the shopping cart. The cart holds at most one
// line per product ID; adding the same product again merges quantities.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
