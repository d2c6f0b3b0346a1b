package services

import (
	"fmt"

	"lumina/internal/models"
	"lumina/internal/store"
)

// CartService handles the shopping cart: merge-on-add lines keyed by product
// ID, quantity updates, and the resolved view used by the cart and checkout
// pages.
type CartService struct {
	store *store.Store
}

// NewCartService creates a new CartService.
func NewCartService(st *store.Store) *CartService {
	return &CartService{store: st}
}

// Add puts quantity units of a product into the cart. If the product already
// has a line, quantities are merged so the cart holds at most one line per
// product. Quantities below 1 are rejected. Available stock is deliberately
// not checked.
func (s *CartService) Add(productID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("add %d of %s: %w", quantity, productID, ErrInvalidQuantity)
	}

	return s.store.Update("cart.add", func(state *models.AppState) error {
		if i := state.CartLineIndex(productID); i >= 0 {
			state.Cart[i].Quantity += quantity
		} else {
			state.Cart = append(state.Cart, models.CartItem{ProductID: productID, Quantity: quantity})
		}
		return nil
	})
}

// Remove deletes the cart line for productID. Returns ErrNotFound when the
// product has no line.
func (s *CartService) Remove(productID string) error {
	return s.store.Update("cart.remove", func(state *models.AppState) error {
		i := state.CartLineIndex(productID)
		if i < 0 {
			return fmt.Errorf("cart line for product %s: %w", productID, ErrNotFound)
		}
		state.Cart = append(state.Cart[:i], state.Cart[i+1:]...)
		return nil
	})
}

// UpdateQuantity replaces the quantity on the cart line for productID.
// Quantities below 1 are rejected; use Remove to drop a line.
func (s *CartService) UpdateQuantity(productID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("set quantity %d for %s: %w", quantity, productID, ErrInvalidQuantity)
	}

	return s.store.Update("cart.updateQuantity", func(state *models.AppState) error {
		i := state.CartLineIndex(productID)
		if i < 0 {
			return fmt.Errorf("cart line for product %s: %w", productID, ErrNotFound)
		}
		state.Cart[i].Quantity = quantity
		return nil
	})
}

// CartLine is a cart entry resolved against the live catalog.
type CartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"` // discount price when one is set
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// Items resolves the cart against the current catalog. Lines whose product no
// longer exists are filtered out, not surfaced as errors.
func (s *CartService) Items() []CartLine {
	state := s.store.Current()
	lines := make([]CartLine, 0, len(state.Cart))
	for _, item := range state.Cart {
		p := state.ProductByID(item.ProductID)
		if p == nil {
			continue
		}
		unit := p.SalePrice()
		lines = append(lines, CartLine{
			ProductID: item.ProductID,
			Name:      p.Name,
			UnitPrice: unit,
			Quantity:  item.Quantity,
			LineTotal: unit * float64(item.Quantity),
		})
	}
	return lines
}

// Subtotal sums the resolved line totals.
func (s *CartService) Subtotal() float64 {
	var total float64
	for _, line := range s.Items() {
		total += line.LineTotal
	}
	return total
}
