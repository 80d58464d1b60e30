// Package checkout captures an order from the current cart snapshot.
// There is no payment gateway or fulfillment backend: a placed order is
// validated, numbered, recorded for the confirmation page, and the cart
// is cleared.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"storefront-service/internal/cart"
	"storefront-service/internal/domain"
	"storefront-service/internal/store"
)

var (
	// ErrEmptyCart rejects checkout on a cart with no lines.
	ErrEmptyCart = errors.New("checkout: cart is empty")
	// ErrNoOrder is returned when a session has no recorded order.
	ErrNoOrder = errors.New("checkout: no order recorded for session")
)

// Contact is the buyer contact section of the checkout form.
type Contact struct {
	EmailOrPhone string `json:"email_or_phone" validate:"required"`
	Subscribe    bool   `json:"subscribe"`
}

// ShippingAddress is the delivery section of the checkout form. Required
// fields mirror the storefront form validation.
type ShippingAddress struct {
	Country   string `json:"country" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Company   string `json:"company,omitempty"`
	Address1  string `json:"address1" validate:"required"`
	City      string `json:"city" validate:"required"`
	Postal    string `json:"postal,omitempty"`
	Phone     string `json:"phone" validate:"required"`
}

// Totals is the order money summary. Shipping is currently always zero.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Total    int64 `json:"total"`
}

// Order is the captured order payload shown on the confirmation page.
type Order struct {
	OrderNumber     string            `json:"order_number"`
	PlacedAt        time.Time         `json:"placed_at"`
	Contact         Contact           `json:"contact"`
	ShippingAddress ShippingAddress   `json:"shipping_address"`
	Items           []domain.CartLine `json:"items"`
	Totals          Totals            `json:"totals"`
}

// Service validates and records orders.
type Service struct {
	sessions store.SessionStorer
	validate *validator.Validate
	// now is swappable for tests.
	now func() time.Time
}

// NewService creates a checkout Service.
func NewService(sessions store.SessionStorer) *Service {
	return &Service{
		sessions: sessions,
		validate: validator.New(),
		now:      time.Now,
	}
}

func lastOrderKey(sessionID string) string { return "last_order_" + sessionID }

// PlaceOrder captures the cart snapshot into an Order, persists it for
// the confirmation page, and clears the cart. The cart is only cleared
// after the order is recorded. The service reads the cart snapshot; it
// never mutates lines directly.
func (s *Service) PlaceOrder(ctx context.Context, c *cart.Store, sessionID string, contact Contact, addr ShippingAddress) (*Order, error) {
	if err := s.validate.Struct(contact); err != nil {
		return nil, fmt.Errorf("checkout: invalid contact: %w", err)
	}
	if err := s.validate.Struct(addr); err != nil {
		return nil, fmt.Errorf("checkout: invalid shipping address: %w", err)
	}

	items := c.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	placedAt := s.now()
	subtotal := c.Subtotal()
	order := &Order{
		OrderNumber:     fmt.Sprintf("ORD-%d", placedAt.UnixMilli()),
		PlacedAt:        placedAt,
		Contact:         contact,
		ShippingAddress: addr,
		Items:           items,
		Totals:          Totals{Subtotal: subtotal, Shipping: 0, Total: subtotal},
	}

	if s.sessions != nil {
		raw, err := json.Marshal(order)
		if err != nil {
			return nil, fmt.Errorf("checkout: marshal order: %w", err)
		}
		if err := s.sessions.Put(ctx, lastOrderKey(sessionID), raw); err != nil {
			return nil, fmt.Errorf("checkout: record order: %w", err)
		}
	}

	c.Clear(ctx)
	return order, nil
}

// LastOrder returns the most recently recorded order for the session.
func (s *Service) LastOrder(ctx context.Context, sessionID string) (*Order, error) {
	if s.sessions == nil {
		return nil, ErrNoOrder
	}
	raw, err := s.sessions.Get(ctx, lastOrderKey(sessionID))
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return nil, ErrNoOrder
		}
		return nil, fmt.Errorf("checkout: read order: %w", err)
	}
	var order Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, fmt.Errorf("checkout: decode order: %w", err)
	}
	return &order, nil
}
