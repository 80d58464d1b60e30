package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"storefront-service/internal/domain"
	"storefront-service/internal/store"
)

// storageKeyVersion is bumped whenever the persisted CartLine shape
// changes incompatibly, so stale payloads from older schemas are simply
// ignored on rehydration instead of half-loaded.
const storageKeyVersion = "v5"

// ErrLineNotFound is returned when an operation targets a line id that is
// not in the cart.
var ErrLineNotFound = errors.New("cart: line not found")

// storageKey is the versioned per-session persistence key.
func storageKey(sessionID string) string {
	return "cart_" + sessionID + "_" + storageKeyVersion
}

// Store is one browsing session's cart: an ordered line list plus the
// open/closed drawer flag. Count and subtotal are always recomputed from
// the line list, never cached, so they cannot drift.
//
// Every committed mutation re-serializes the full line list to the
// session storer; persistence failures are logged and swallowed because
// the stored cart is a convenience cache, not a record of truth.
type Store struct {
	mu        sync.Mutex
	sessionID string
	sessions  store.SessionStorer
	items     []domain.CartLine
	isOpen    bool
}

// NewStore constructs the cart for a session, rehydrating any previously
// persisted line list. Corrupt or missing payloads degrade to an empty
// cart; rehydration never fails. A nil storer yields a memory-only cart.
func NewStore(ctx context.Context, sessions store.SessionStorer, sessionID string) *Store {
	s := &Store{sessionID: sessionID, sessions: sessions}
	s.rehydrate(ctx)
	return s
}

func (s *Store) rehydrate(ctx context.Context) {
	if s.sessions == nil {
		return
	}
	raw, err := s.sessions.Get(ctx, storageKey(s.sessionID))
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			log.Printf("WARN: cart rehydration read failed for session %s: %v", s.sessionID, err)
		}
		return
	}
	var items []domain.CartLine
	if err := json.Unmarshal(raw, &items); err != nil {
		// Corrupt payload: silent recovery to an empty cart.
		log.Printf("WARN: cart payload for session %s is unreadable, starting empty: %v", s.sessionID, err)
		return
	}
	s.items = items
}

// persistLocked writes the full current line list. Callers hold s.mu.
func (s *Store) persistLocked(ctx context.Context) {
	if s.sessions == nil {
		return
	}
	raw, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("ERROR: cart serialization failed for session %s: %v", s.sessionID, err)
		return
	}
	if err := s.sessions.Put(ctx, storageKey(s.sessionID), raw); err != nil {
		log.Printf("WARN: cart persistence write failed for session %s: %v", s.sessionID, err)
	}
}

// AddInput carries the user's configuration choices for an AddItem call.
type AddInput struct {
	Bundle             *domain.BundleTier
	SelectedOptions    *domain.SelectedOptions
	KitSelectedOptions domain.KitSelectedOptions
	Qty                int
}

// AddItem adds the chosen configuration of a catalog entry to the cart.
// If a line with the same identity already exists the quantities merge;
// otherwise a new line is appended. Kits always use their own price;
// singles use the chosen bundle tier's price when one was chosen. The
// drawer opens on every add. Requested quantities below 1 count as 1.
func (s *Store) AddItem(ctx context.Context, entry *domain.CatalogEntry, in AddInput) domain.CartLine {
	qty := in.Qty
	if qty < 1 {
		qty = 1
	}

	isKit := entry.IsKit()

	var unitPrice int64
	var unitCompareAt *int64
	switch {
	case isKit:
		unitPrice = entry.Price
		unitCompareAt = entry.CompareAtPrice
	case in.Bundle != nil:
		unitPrice = in.Bundle.Price
		unitCompareAt = in.Bundle.CompareAtPrice
		if unitCompareAt == nil {
			unitCompareAt = entry.CompareAtPrice
		}
	default:
		unitPrice = entry.Price
		unitCompareAt = entry.CompareAtPrice
	}

	selected := NormalizeSelection(in.SelectedOptions)
	lineID := LineID(entry.ID, entry.Slug, isKit, in.Bundle, selected, in.KitSelectedOptions)

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].LineID == lineID {
			s.items[i].Qty += qty
			s.isOpen = true
			s.persistLocked(ctx)
			return s.items[i]
		}
	}

	line := domain.CartLine{
		LineID:             lineID,
		ProductID:          entry.ID,
		Slug:               entry.Slug,
		Name:               entry.Name,
		Image:              entry.Image,
		Category:           entry.Category,
		SizeLabel:          entry.SizeLabel,
		UnitPrice:          unitPrice,
		UnitCompareAtPrice: unitCompareAt,
		Bundle:             in.Bundle,
		SelectedOptions:    selected,
		KitSelectedOptions: in.KitSelectedOptions,
		Qty:                qty,
		IsKit:              isKit,
	}
	s.items = append(s.items, line)
	s.isOpen = true
	s.persistLocked(ctx)
	return line
}

// UpdateQty sets a line's quantity, clamped to a minimum of 1. It never
// removes the line; removal is a distinct explicit operation.
func (s *Store) UpdateQty(ctx context.Context, lineID string, qty int) error {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].LineID == lineID {
			s.items[i].Qty = qty
			s.persistLocked(ctx)
			return nil
		}
	}
	return ErrLineNotFound
}

// RemoveItem deletes the line outright regardless of quantity. Removing
// an absent line is a no-op.
func (s *Store) RemoveItem(ctx context.Context, lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, l := range s.items {
		if l.LineID != lineID {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(s.items) {
		return
	}
	s.items = kept
	s.persistLocked(ctx)
}

// Clear empties all lines. The drawer visibility flag is unaffected.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persistLocked(ctx)
}

// Items returns a snapshot of the lines in display order.
func (s *Store) Items() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.items))
	copy(out, s.items)
	return out
}

// Count is the total unit count across all lines.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.items {
		n += l.Qty
	}
	return n
}

// Subtotal is the sum of unit price times quantity across all lines,
// recomputed fresh on every call.
func (s *Store) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum int64
	for _, l := range s.items {
		sum += l.UnitPrice * int64(l.Qty)
	}
	return sum
}

// IsOpen reports the cart drawer visibility flag.
func (s *Store) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isOpen
}

// Open makes the cart drawer visible.
func (s *Store) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = true
}

// Close hides the cart drawer.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = false
}

// Toggle flips the drawer visibility.
func (s *Store) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = !s.isOpen
}
