// Package cart implements the session-scoped shopping cart: the
// deterministic line-identity key that decides whether an add merges into
// an existing line, and the mutable store holding the ordered line list.
package cart

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"storefront-service/internal/domain"
)

// lineKey is the canonical structured form a line's identity is computed
// from. It is hashed rather than string-concatenated so product names or
// color labels can never collide with a separator. Changing this struct
// changes every LineID, which is a persistence-schema change: bump the
// cart storage key version alongside it.
type lineKey struct {
	ProductID    string     `json:"product_id"`
	Slug         string     `json:"slug"`
	Pack         int        `json:"pack"`
	SingleColors []string   `json:"single_colors,omitempty"`
	KitColors    []childKey `json:"kit_colors,omitempty"`
	IsKit        bool       `json:"is_kit"`
}

// childKey is the per-kit-child portion of a lineKey, ordered by child
// product id for determinism.
type childKey struct {
	ProductID string   `json:"product_id"`
	Colors    []string `json:"colors,omitempty"`
}

// NormalizeSelection folds the one-pick Color convenience field into the
// Colors sequence. Nil input stays nil; selection order is preserved.
func NormalizeSelection(sel *domain.SelectedOptions) *domain.SelectedOptions {
	if sel == nil {
		return nil
	}
	colors := sel.Colors
	if len(colors) == 0 && sel.Color != "" {
		colors = []string{sel.Color}
	}
	return &domain.SelectedOptions{Color: sel.Color, Colors: colors}
}

// LineID computes the stable identity key for a prospective cart line.
// Two semantically identical configurations always produce the same key;
// two different ones never share it.
//
// Color selections are compared in selection order: ["Black","Beige"] and
// ["Beige","Black"] are distinct configurations. Kit children are sorted
// by child product id so map iteration order cannot leak into the key.
func LineID(productID, slug string, isKit bool, bundle *domain.BundleTier, sel *domain.SelectedOptions, kitSel domain.KitSelectedOptions) string {
	key := lineKey{
		ProductID: productID,
		Slug:      slug,
		Pack:      1,
		IsKit:     isKit,
	}
	if bundle != nil {
		key.Pack = bundle.Quantity
	}
	if norm := NormalizeSelection(sel); norm != nil && len(norm.Colors) > 0 {
		key.SingleColors = norm.Colors
	}
	if len(kitSel) > 0 {
		key.KitColors = make([]childKey, 0, len(kitSel))
		for pid, opts := range kitSel {
			key.KitColors = append(key.KitColors, childKey{ProductID: pid, Colors: opts.Colors})
		}
		sort.Slice(key.KitColors, func(i, j int) bool {
			return key.KitColors[i].ProductID < key.KitColors[j].ProductID
		})
	}

	// Struct marshaling emits fields in declaration order, so the
	// canonical form is deterministic.
	raw, err := json.Marshal(key)
	if err != nil {
		// Marshaling a struct of strings and ints cannot fail.
		panic("cart: marshal line key: " + err.Error())
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
