package checkout

import (
	"context"
	"testing"
	"time"

	"storefront-service/internal/cart"
	"storefront-service/internal/domain"
	"storefront-service/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContact() Contact {
	return Contact{EmailOrPhone: "jordan@example.com", Subscribe: true}
}

func validAddress() ShippingAddress {
	return ShippingAddress{
		Country:   "KZ",
		FirstName: "Jordan",
		LastName:  "Lee",
		Address1:  "12 Abay Ave",
		City:      "Almaty",
		Phone:     "+7 700 000 0000",
	}
}

func cartWithOneLine(t *testing.T, sessions store.SessionStorer, sessionID string) *cart.Store {
	t.Helper()
	c := cart.NewStore(context.Background(), sessions, sessionID)
	entry := &domain.CatalogEntry{
		Kind:     domain.KindSingle,
		ID:       "hc1",
		Slug:     "signature-crown-curl-oil",
		Name:     "Signature Hair Oil",
		Category: domain.CategoryHairCare,
		Price:    1499,
	}
	c.AddItem(context.Background(), entry, cart.AddInput{Qty: 2})
	return c
}

func TestPlaceOrder_ValidationFailures(t *testing.T) {
	ctx := context.Background()
	sessions := store.NewMemoryStore()
	svc := NewService(sessions)
	c := cartWithOneLine(t, sessions, "sess-1")

	_, err := svc.PlaceOrder(ctx, c, "sess-1", Contact{}, validAddress())
	require.Error(t, err)
	var vErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &vErrs)

	addr := validAddress()
	addr.City = ""
	_, err = svc.PlaceOrder(ctx, c, "sess-1", validContact(), addr)
	require.Error(t, err)
	assert.ErrorAs(t, err, &vErrs)

	// Failed validation never touches the cart.
	assert.Len(t, c.Items(), 1)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	ctx := context.Background()
	sessions := store.NewMemoryStore()
	svc := NewService(sessions)
	empty := cart.NewStore(ctx, sessions, "sess-empty")

	_, err := svc.PlaceOrder(ctx, empty, "sess-empty", validContact(), validAddress())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrder_Success(t *testing.T) {
	ctx := context.Background()
	sessions := store.NewMemoryStore()
	svc := NewService(sessions)
	placedAt := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return placedAt }

	c := cartWithOneLine(t, sessions, "sess-1")

	order, err := svc.PlaceOrder(ctx, c, "sess-1", validContact(), validAddress())
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, "ORD-1788177600000", order.OrderNumber)
	assert.Equal(t, placedAt, order.PlacedAt)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Qty)
	assert.Equal(t, int64(2998), order.Totals.Subtotal)
	assert.Zero(t, order.Totals.Shipping)
	assert.Equal(t, int64(2998), order.Totals.Total)

	// Cart is cleared only after the order is recorded.
	assert.Empty(t, c.Items())
}

func TestLastOrder_RoundTrip(t *testing.T) {
	ctx := context.Background()
	sessions := store.NewMemoryStore()
	svc := NewService(sessions)
	c := cartWithOneLine(t, sessions, "sess-1")

	placed, err := svc.PlaceOrder(ctx, c, "sess-1", validContact(), validAddress())
	require.NoError(t, err)

	got, err := svc.LastOrder(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, placed.OrderNumber, got.OrderNumber)
	assert.Equal(t, placed.Totals, got.Totals)
	assert.Equal(t, placed.Items, got.Items)
}

func TestLastOrder_NoOrderRecorded(t *testing.T) {
	svc := NewService(store.NewMemoryStore())

	_, err := svc.LastOrder(context.Background(), "sess-new")
	assert.ErrorIs(t, err, ErrNoOrder)
}

func TestLastOrder_IsolatedPerSession(t *testing.T) {
	ctx := context.Background()
	sessions := store.NewMemoryStore()
	svc := NewService(sessions)
	c := cartWithOneLine(t, sessions, "sess-a")

	_, err := svc.PlaceOrder(ctx, c, "sess-a", validContact(), validAddress())
	require.NoError(t, err)

	_, err = svc.LastOrder(ctx, "sess-b")
	assert.ErrorIs(t, err, ErrNoOrder)
}
