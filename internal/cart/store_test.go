package cart

import (
	"context"
	"testing"

	"storefront-service/internal/domain"
	"storefront-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrTo[T any](v T) *T { return &v }

func hairOil() *domain.CatalogEntry {
	return &domain.CatalogEntry{
		Kind:           domain.KindSingle,
		ID:             "hc1",
		Slug:           "signature-crown-curl-oil",
		Name:           "Signature Hair Oil",
		Category:       domain.CategoryHairCare,
		Image:          "/images/oil1.png",
		SizeLabel:      ptrTo("120 ml"),
		Price:          1499,
		CompareAtPrice: ptrTo(int64(1999)),
		Bundles: []domain.BundleTier{
			{Quantity: 1, Price: 1499, CompareAtPrice: ptrTo(int64(1999))},
			{Quantity: 2, Price: 2699, CompareAtPrice: ptrTo(int64(3998))},
		},
		Stock: 19,
	}
}

func scrunchies() *domain.CatalogEntry {
	return &domain.CatalogEntry{
		Kind:                 domain.KindSingle,
		ID:                   "ac1",
		Slug:                 "silk-scrunchies-set",
		Name:                 "Pure Silk Scrunchies",
		Category:             domain.CategoryAccessories,
		Image:                "/images/scrunchies-1.png",
		Price:                899,
		Colors:               []string{"Black", "Beige", "Blush"},
		AllowDuplicateColors: true,
		Stock:                15,
	}
}

func essentialsKit() *domain.CatalogEntry {
	return &domain.CatalogEntry{
		Kind:           domain.KindKit,
		ID:             "kit-hair-care-essentials",
		Slug:           "hair-care-essentials-bundle",
		Name:           "Hair Care Essentials Bundle",
		Category:       domain.CategoryBundles,
		Image:          "/images/bundles/essentials.jpg",
		Price:          2299,
		CompareAtPrice: ptrTo(int64(3297)),
		Items: []domain.KitItemRef{
			{ProductID: "hc1", Quantity: 1},
			{ProductID: "ac1", Quantity: 2},
		},
	}
}

func newMemoryCart(t *testing.T) *Store {
	t.Helper()
	return NewStore(context.Background(), store.NewMemoryStore(), "sess-test")
}

func TestAddItem_MergeIdempotence(t *testing.T) {
	ctx := context.Background()
	s := newMemoryCart(t)
	oil := hairOil()
	tier := &oil.Bundles[1]

	s.AddItem(ctx, oil, AddInput{Bundle: tier, Qty: 1})
	s.AddItem(ctx, oil, AddInput{Bundle: tier, Qty: 1})

	items := s.Items()
	require.Len(t, items, 1, "identical configurations must merge, never duplicate")
	assert.Equal(t, 2, items[0].Qty)
	assert.Equal(t, int64(2699), items[0].UnitPrice)
	assert.Equal(t, int64(5398), s.Subtotal())
}

func TestAddItem_BundleTierDiscrimination(t *testing.T) {
	ctx := context.Background()
	s := newMemoryCart(t)
	oil := hairOil()

	s.AddItem(ctx, oil, AddInput{Bundle: &oil.Bundles[0], Qty: 1})
	s.AddItem(ctx, oil, AddInput{Bundle: &oil.Bundles[1], Qty: 1})

	assert.Len(t, s.Items(), 2, "different pack sizes are distinct lines")
}

func TestAddItem_ColorOrderSplitsConsistently(t *testing.T) {
	ctx := context.Background()
	s := newMemoryCart(t)
	sc := scrunchies()

	s.AddItem(ctx, sc, AddInput{SelectedOptions: &domain.SelectedOptions{Colors: []string{"Black", "Beige"}}})
	s.AddItem(ctx, sc, AddInput{SelectedOptions: &domain.SelectedOptions{Colors: []string{"Beige", "Black"}}})
	s.AddItem(ctx, sc, AddInput{SelectedOptions: &domain.SelectedOptions{Colors: []string{"Black", "Beige"}}})

	items := s.Items()
	require.Len(t, items, 2, "order-sensitive policy: the two orderings always split")
	assert.Equal(t, 2, items[0].Qty)
	assert.Equal(t, 1, items[1].Qty)
}

func TestAddItem_PriceResolution(t *testing.T) {
	ctx := context.Background()
	s := newMemoryCart(t)

	// Single with no bundle: base price and compare-at.
	line := s.AddItem(ctx, hairOil(), AddInput{})
	assert.Equal(t, int64(1499), line.UnitPrice)
	require.NotNil(t, line.UnitCompareAtPrice)
	assert.Equal(t, int64(1999), *line.UnitCompareAtPrice)

	// Kit: always its own price, never a tier's.
	line = s.AddItem(ctx, essentialsKit(), AddInput{})
	assert.Equal(t, int64(2299), line.UnitPrice)
	assert.True(t, line.IsKit)
}

func TestAddItem_QtyBelowOneCountsAsOne(t *testing.T) {
	ctx := context.Background()
	s := newMemoryCart(t)

	s.AddItem(ctx, hairOil(), AddInput{Qty: 0})
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Qty)

	s.AddItem(ctx, hairOil(), AddInput{Qty: -3})
	items = s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Qty)
}

func TestAddItem_OpensDrawer(t *testing.T) {
	ctx := context.Background()
	s := newMemoryCart(t)
	assert.False(t, s.IsOpen())

	s.AddItem(ctx, hairOil(), AddInput{})
	assert.True(t, s.IsOpen())
}

func TestUpdateQty_FloorAtOne(t *testing.T) {
	ctx := context.Background()
	s := newMemoryCart(t)
	line := s.AddItem(ctx, hairOil(), AddInput{Qty: 3})

	require.NoError(t, s.UpdateQty(ctx, line.LineID, 0))
	assert.Equal(t, 1, s.Items()[0].Qty, "qty 0 clamps to 1, line survives")

	require.NoError(t, s.UpdateQty(ctx, line.LineID, -5))
	assert.Equal(t, 1, s.Items()[0].Qty, "negative qty clamps to 1")

	assert.ErrorIs(t, s.UpdateQty(ctx, "missing-line", 2), ErrLineNotFound)
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	s := newMemoryCart(t)
	line := s.AddItem(ctx, hairOil(), AddInput{Qty: 5})

	s.RemoveItem(ctx, line.LineID)
	assert.Empty(t, s.Items(), "remove deletes the line regardless of quantity")

	// Removing an absent line is a no-op.
	s.RemoveItem(ctx, "missing-line")
	assert.Empty(t, s.Items())
}

func TestClear_LeavesVisibilityAlone(t *testing.T) {
	ctx := context.Background()
	s := newMemoryCart(t)
	s.AddItem(ctx, hairOil(), AddInput{})
	require.True(t, s.IsOpen())

	s.Clear(ctx)
	assert.Empty(t, s.Items())
	assert.Zero(t, s.Count())
	assert.Zero(t, s.Subtotal())
	assert.True(t, s.IsOpen(), "clear does not touch the drawer flag")
}

func TestVisibilityTransitions(t *testing.T) {
	s := newMemoryCart(t)

	s.Open()
	assert.True(t, s.IsOpen())
	s.Close()
	assert.False(t, s.IsOpen())
	s.Toggle()
	assert.True(t, s.IsOpen())
	s.Toggle()
	assert.False(t, s.IsOpen())
}

func TestSubtotalAndCount_RecomputedFromLines(t *testing.T) {
	ctx := context.Background()
	s := newMemoryCart(t)
	oil := hairOil()

	s.AddItem(ctx, oil, AddInput{Bundle: &oil.Bundles[1], Qty: 2}) // 2 x 2699
	line := s.AddItem(ctx, scrunchies(), AddInput{Qty: 1})         // 1 x 899

	assert.Equal(t, 3, s.Count())
	assert.Equal(t, int64(2*2699+899), s.Subtotal())

	require.NoError(t, s.UpdateQty(ctx, line.LineID, 4))
	assert.Equal(t, 6, s.Count())
	assert.Equal(t, int64(2*2699+4*899), s.Subtotal())
}

func TestPersistence_RoundTrip(t *testing.T) {
	ctx := context.Background()
	sessions := store.NewMemoryStore()

	original := NewStore(ctx, sessions, "sess-rt")
	oil := hairOil()
	original.AddItem(ctx, oil, AddInput{Bundle: &oil.Bundles[1], Qty: 1})
	original.AddItem(ctx, scrunchies(), AddInput{
		SelectedOptions: &domain.SelectedOptions{Colors: []string{"Black", "Black", "Beige"}},
		Qty:             2,
	})
	original.AddItem(ctx, essentialsKit(), AddInput{
		KitSelectedOptions: domain.KitSelectedOptions{"ac1": {Colors: []string{"Blush", "Grey"}}},
	})

	reloaded := NewStore(ctx, sessions, "sess-rt")
	assert.Equal(t, original.Items(), reloaded.Items(), "rehydrated lines must be element-wise equal")
	assert.Equal(t, original.Subtotal(), reloaded.Subtotal())
	assert.Equal(t, original.Count(), reloaded.Count())
}

func TestPersistence_CorruptPayloadRecoversEmpty(t *testing.T) {
	ctx := context.Background()
	sessions := store.NewMemoryStore()
	require.NoError(t, sessions.Put(ctx, "cart_sess-bad_v5", []byte("{definitely not json")))

	s := NewStore(ctx, sessions, "sess-bad")
	assert.Empty(t, s.Items(), "corrupt storage degrades to an empty cart")
}

func TestPersistence_WrongShapeRecoversEmpty(t *testing.T) {
	ctx := context.Background()
	sessions := store.NewMemoryStore()
	// Valid JSON, but an object rather than a line array.
	require.NoError(t, sessions.Put(ctx, "cart_sess-shape_v5", []byte(`{"items": 42}`)))

	s := NewStore(ctx, sessions, "sess-shape")
	assert.Empty(t, s.Items())
}

func TestPersistence_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	sessions := store.NewMemoryStore()

	a := NewStore(ctx, sessions, "sess-a")
	a.AddItem(ctx, hairOil(), AddInput{})

	b := NewStore(ctx, sessions, "sess-b")
	assert.Empty(t, b.Items())
}

func TestManager_ReturnsSameStorePerSession(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemoryStore())

	first := m.ForSession(ctx, "sess-1")
	second := m.ForSession(ctx, "sess-1")
	assert.Same(t, first, second)

	other := m.ForSession(ctx, "sess-2")
	assert.NotSame(t, first, other)
}

func TestManager_EvictRehydratesFromStorage(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemoryStore())

	c := m.ForSession(ctx, "sess-1")
	c.AddItem(ctx, hairOil(), AddInput{Qty: 2})

	m.Evict("sess-1")
	reloaded := m.ForSession(ctx, "sess-1")
	assert.NotSame(t, c, reloaded)
	require.Len(t, reloaded.Items(), 1)
	assert.Equal(t, 2, reloaded.Items()[0].Qty)
}
