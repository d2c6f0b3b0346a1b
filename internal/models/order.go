package models

import "time"

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPlaced    OrderStatus = "PLACED"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
	OrderReturned  OrderStatus = "RETURNED"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPlaced, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled, OrderReturned:
		return true
	}
	return false
}

// Terminal reports whether s is a final state that admits no further
// transitions.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderDelivered, OrderCancelled, OrderReturned:
		return true
	}
	return false
}

// statusSuccessor maps each non-terminal status to its fulfilment successor.
var statusSuccessor = map[OrderStatus]OrderStatus{
	OrderPlaced:    OrderConfirmed,
	OrderConfirmed: OrderShipped,
	OrderShipped:   OrderDelivered,
}

// CanTransitionTo reports whether an order in status s may move to target.
// Fulfilment advances one step at a time (PLACED -> CONFIRMED -> SHIPPED ->
// DELIVERED); CANCELLED and RETURNED are reachable from any non-terminal
// status.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if s.Terminal() || !target.Valid() {
		return false
	}
	if target == OrderCancelled || target == OrderReturned {
		return true
	}
	return statusSuccessor[s] == target
}

// PaymentMethod is how an order was paid for.
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "CARD"
	PaymentUPI  PaymentMethod = "UPI"
	PaymentCOD  PaymentMethod = "COD"
)

// OrderItem is a purchased line. Name and Price are captured at checkout so
// later catalog edits never alter past orders.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"` // unit price at the time of order
	Name      string  `json:"name"`  // product name at the time of order
}

// Order is a placed customer order.
type Order struct {
	ID              string        `json:"id"`
	UserID          string        `json:"userId"`
	Items           []OrderItem   `json:"items"`
	TotalAmount     float64       `json:"totalAmount"`
	Status          OrderStatus   `json:"status"`
	ShippingAddress Address       `json:"shippingAddress"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// Clone returns a deep copy of the order.
func (o Order) Clone() Order {
	c := o
	c.Items = cloneSlice(o.Items)
	return c
}
