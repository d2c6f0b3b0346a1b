package services

import "errors"

// Sentinel errors returned by the operation surface. The original demo
// resolved most of these situations with silent no-ops; surfacing them lets
// callers distinguish "nothing matched" from "done".
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNotAuthenticated  = errors.New("no user is signed in")
)
