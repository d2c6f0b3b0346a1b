package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"lumina/internal/models"
	"lumina/internal/store"
	"lumina/pkg/rabbitmq"
)

// OrderService handles checkout and the admin order workflow. When a broker
// client is configured, order creation publishes an event for downstream
// consumers (inventory, email); a nil client skips publication.
type OrderService struct {
	store    *store.Store
	mqClient *rabbitmq.Client
	validate *validator.Validate
}

// NewOrderService creates a new OrderService. mqClient may be nil.
func NewOrderService(st *store.Store, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		store:    st,
		mqClient: mqClient,
		validate: validator.New(),
	}
}

// CheckoutRequest carries everything an order needs beyond the cart itself.
type CheckoutRequest struct {
	UserID          string               `json:"userId" validate:"required"`
	ShippingAddress models.Address       `json:"shippingAddress"`
	PaymentMethod   models.PaymentMethod `json:"paymentMethod" validate:"required,oneof=CARD UPI COD"`
}

// Create places an order from the current cart: each line is snapshotted with
// the product's name and sale price at this moment, so later catalog edits
// never alter the order. The new order is prepended (newest first) and the
// cart is emptied as part of the same commit. Stock is not decremented.
func (s *OrderService) Create(req CheckoutRequest) (*models.Order, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid checkout request: %w", err)
	}

	var newOrder models.Order
	err := s.store.Update("orders.create", func(state *models.AppState) error {
		if len(state.Cart) == 0 {
			return ErrEmptyCart
		}

		var items []models.OrderItem
		var totalAmount float64
		for _, line := range state.Cart {
			product := state.ProductByID(line.ProductID)
			if product == nil {
				// Dangling cart line; the product was deleted after it was added.
				continue
			}
			unit := product.SalePrice()
			items = append(items, models.OrderItem{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     unit,
				Name:      product.Name,
			})
			totalAmount += unit * float64(line.Quantity)
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		newOrder = models.Order{
			ID:              newOrderID(),
			UserID:          req.UserID,
			Items:           items,
			TotalAmount:     totalAmount,
			Status:          models.OrderPlaced,
			ShippingAddress: req.ShippingAddress,
			PaymentMethod:   req.PaymentMethod,
			CreatedAt:       time.Now(),
		}

		state.Orders = append([]models.Order{newOrder.Clone()}, state.Orders...)
		state.Cart = []models.CartItem{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent("order.created", map[string]interface{}{
		"orderID": newOrder.ID,
		"userID":  newOrder.UserID,
		"status":  newOrder.Status,
		"total":   newOrder.TotalAmount,
	})

	return &newOrder, nil
}

// UpdateStatus moves an order to a new status. Fulfilment advances one step
// at a time; CANCELLED and RETURNED are reachable from any non-terminal
// status. Illegal moves return ErrInvalidTransition.
func (s *OrderService) UpdateStatus(id string, status models.OrderStatus) error {
	err := s.store.Update("orders.updateStatus", func(state *models.AppState) error {
		order := state.OrderByID(id)
		if order == nil {
			return fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
		}
		if !order.Status.CanTransitionTo(status) {
			return fmt.Errorf("order %s: %s -> %s: %w", id, order.Status, status, ErrInvalidTransition)
		}
		order.Status = status
		return nil
	})
	if err != nil {
		return err
	}

	s.publishEvent("order.status_updated", map[string]interface{}{
		"orderID": id,
		"status":  status,
	})
	return nil
}

// GetAll returns every order, newest first.
func (s *OrderService) GetAll() []models.Order {
	return s.store.Current().Orders
}

// GetByID returns the order with the given ID, or ErrNotFound.
func (s *OrderService) GetByID(id string) (*models.Order, error) {
	state := s.store.Current()
	order := state.OrderByID(id)
	if order == nil {
		return nil, fmt.Errorf("order with ID %s: %w", id, ErrNotFound)
	}
	return order, nil
}

// GetByUser returns the orders placed by userID, newest first (creation
// order is preserved).
func (s *OrderService) GetByUser(userID string) []models.Order {
	orders := []models.Order{}
	for _, o := range s.store.Current().Orders {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders
}

// publishEvent sends an event to the broker, logging instead of failing when
// the broker is unavailable. Order flow must not depend on the broker.
func (s *OrderService) publishEvent(eventType string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := s.mqClient.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}

// newOrderID returns an order ID in the demo's ORD-XXXXXXXXX format.
func newOrderID() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "ORD-" + token[:9]
}
