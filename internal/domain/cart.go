package domain

// SelectedOptions carries the color picks for a single product. Color is
// the one-pick convenience form; Colors is the multi-pick form used by
// bundle tiers where one color is chosen per unit in the pack. A bare
// Color is normalized into a one-element Colors sequence before identity
// computation. Selection order is preserved and significant.
type SelectedOptions struct {
	Color  string   `json:"color,omitempty"`
	Colors []string `json:"colors,omitempty"`
}

// KitSelectedOptions maps a kit child product id to the colors chosen for
// that child. Only children that actually offer colors appear here.
type KitSelectedOptions map[string]ChildOptions

// ChildOptions holds the per-child color picks inside a kit selection.
type ChildOptions struct {
	Colors []string `json:"colors,omitempty"`
}

// CartLine is one distinct row in the cart: a unique (product,
// configuration) pair and the quantity of that exact configuration.
// Fields are denormalized snapshots of the catalog entry at add time so
// the cart renders without further catalog lookups.
type CartLine struct {
	LineID    string       `json:"line_id"`
	ProductID string       `json:"product_id"`
	Slug      string       `json:"slug"`
	Name      string       `json:"name"`
	Image     string       `json:"image"`
	Category  CategorySlug `json:"category"`
	SizeLabel *string      `json:"size_label,omitempty"`

	// UnitPrice is the resolved effective price: the chosen bundle tier's
	// price when one was chosen, otherwise the base price. A compare-at
	// value <= UnitPrice means "no discount" and must be ignored.
	UnitPrice          int64  `json:"unit_price"`
	UnitCompareAtPrice *int64 `json:"unit_compare_at_price,omitempty"`

	Bundle             *BundleTier        `json:"bundle,omitempty"`
	SelectedOptions    *SelectedOptions   `json:"selected_options,omitempty"`
	KitSelectedOptions KitSelectedOptions `json:"kit_selected_options,omitempty"`

	Qty   int  `json:"qty"`
	IsKit bool `json:"is_kit"`
}
