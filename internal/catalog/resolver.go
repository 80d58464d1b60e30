package catalog

import (
	"fmt"
	"strings"

	"storefront-service/internal/domain"
)

// Display caps for merged kit lists. These are presentation policy, not
// data invariants; adjusting them does not affect correctness.
const (
	maxKitBenefits    = 6
	maxKitKeyFeatures = 8
	maxKitIngredients = 40
	maxKitBadges      = 6
	maxKitHowToSteps  = 4
	maxSnippetItems   = 3
)

// howToContinuation is appended to every synthesized how-to step except
// the last one.
const howToContinuation = " Then continue to the next step."

// allergenWords drives the ContainsAllergens flag. This is a heuristic
// substring scan, not a certified allergen database.
var allergenWords = []string{"Almond", "Peanut", "Walnut", "Hazelnut"}

// ResolutionError reports a kit whose item refs cannot be resolved to
// single products. This is a catalog authoring bug, not a runtime
// condition: it should fail loudly in development and be caught at the
// page boundary in production rendering.
type ResolutionError struct {
	KitID     string
	ProductID string
	Reason    string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("catalog: kit %q references product %q: %s", e.KitID, e.ProductID, e.Reason)
}

// KitComponent is one resolved constituent of a kit.
type KitComponent struct {
	Product  *domain.CatalogEntry `json:"product"`
	Quantity int                  `json:"quantity"`
}

// ResolveKit expands a kit's item refs into concrete single-product
// records with quantities, in the order the refs are authored. It returns
// a ResolutionError, and no partial list, when a ref is missing or points
// at something other than a single product.
func (c *Catalog) ResolveKit(kit *domain.CatalogEntry) ([]KitComponent, error) {
	if !kit.IsKit() {
		return nil, &ResolutionError{KitID: kit.ID, ProductID: kit.ID, Reason: "entry is not a kit"}
	}
	components := make([]KitComponent, 0, len(kit.Items))
	for _, ref := range kit.Items {
		entry, err := c.FindByID(ref.ProductID)
		if err != nil {
			return nil, &ResolutionError{KitID: kit.ID, ProductID: ref.ProductID, Reason: "missing product"}
		}
		if !entry.IsSingle() {
			return nil, &ResolutionError{KitID: kit.ID, ProductID: ref.ProductID, Reason: "resolves to a non-single entry"}
		}
		components = append(components, KitComponent{Product: entry, Quantity: ref.Quantity})
	}
	return components, nil
}

// KitMeta is the derived presentation data for a kit: merged lists from
// its constituents, a human-readable contents summary, the separate-parts
// value, and the assembly-limited stock. Derived on demand, never stored.
type KitMeta struct {
	Items             []KitComponent        `json:"items"`
	SumParts          int64                 `json:"sum_parts"`
	Benefits          []string              `json:"benefits"`
	KeyFeatures       []string              `json:"key_features"`
	Ingredients       []string              `json:"ingredients"`
	Badges            []string              `json:"badges"`
	HowTo             []domain.HowToUseStep `json:"how_to"`
	ContentsSnippet   string                `json:"contents_snippet"`
	Stock             int                   `json:"stock"`
	ContainsAllergens bool                  `json:"contains_allergens"`
}

// KitMeta derives the aggregate view data for a kit. It propagates the
// ResolutionError from ResolveKit unchanged.
func (c *Catalog) KitMeta(kit *domain.CatalogEntry) (*KitMeta, error) {
	items, err := c.ResolveKit(kit)
	if err != nil {
		return nil, err
	}

	meta := &KitMeta{Items: items}

	var benefits, keyFeatures, ingredients, badges []string
	for _, it := range items {
		p := it.Product
		meta.SumParts += partValue(p) * int64(it.Quantity)
		benefits = append(benefits, p.Benefits...)
		keyFeatures = append(keyFeatures, p.KeyFeatures...)
		ingredients = append(ingredients, p.Ingredients...)
		badges = append(badges, p.Badges...)
	}
	meta.Benefits = uniqueHead(benefits, maxKitBenefits)
	meta.KeyFeatures = uniqueHead(keyFeatures, maxKitKeyFeatures)
	meta.Ingredients = uniqueHead(ingredients, maxKitIngredients)
	meta.Badges = uniqueHead(badges, maxKitBadges)

	meta.HowTo = mergedHowTo(items)
	meta.ContentsSnippet = contentsSnippet(items)
	meta.Stock = derivedStock(items)
	meta.ContainsAllergens = containsAllergens(meta.Ingredients)

	return meta, nil
}

// partValue is what one unit of a constituent is "worth" when bought
// separately: the compare-at price when present, else the base price.
func partValue(p *domain.CatalogEntry) int64 {
	if p.CompareAtPrice != nil {
		return *p.CompareAtPrice
	}
	return p.Price
}

// uniqueHead deduplicates preserving first-seen order and truncates to n.
func uniqueHead(values []string, n int) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, n)
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

// mergedHowTo synthesizes one step per constituent, in resolution order,
// appending the continuation phrase to all but the last step.
func mergedHowTo(items []KitComponent) []domain.HowToUseStep {
	steps := make([]domain.HowToUseStep, 0, len(items))
	for i, it := range items {
		text := "Use as directed."
		if len(it.Product.HowToUse) > 0 {
			text = it.Product.HowToUse[0].Text
		}
		if i < len(items)-1 {
			text += howToContinuation
		}
		steps = append(steps, domain.HowToUseStep{Title: it.Product.Name, Text: text})
	}
	if len(steps) > maxKitHowToSteps {
		steps = steps[:maxKitHowToSteps]
	}
	return steps
}

// contentsSnippet joins the first few constituents as a one-line summary,
// e.g. "x2 Pure Silk Scrunchies (Set of 3) · Neem Wood Wide-Tooth Comb".
// The quantity prefix is omitted for single units.
func contentsSnippet(items []KitComponent) string {
	parts := make([]string, 0, maxSnippetItems)
	for _, it := range items {
		if len(parts) == maxSnippetItems {
			break
		}
		s := it.Product.Name
		if it.Quantity > 1 {
			s = fmt.Sprintf("x%d %s", it.Quantity, s)
		}
		if it.Product.SizeLabel != nil {
			s = fmt.Sprintf("%s (%s)", s, *it.Product.SizeLabel)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " · ")
}

// derivedStock is how many times the kit can be assembled: the minimum
// over constituents of floor(stock / required quantity). The kit cannot
// be built more times than its scarcest ingredient allows.
func derivedStock(items []KitComponent) int {
	stock := -1
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		n := it.Product.Stock / it.Quantity
		if stock < 0 || n < stock {
			stock = n
		}
	}
	if stock < 0 {
		return 0
	}
	return stock
}

// containsAllergens flags any merged ingredient that case-insensitively
// contains a known allergen word. Heuristic only.
func containsAllergens(ingredients []string) bool {
	for _, ing := range ingredients {
		lower := strings.ToLower(ing)
		for _, a := range allergenWords {
			if strings.Contains(lower, strings.ToLower(a)) {
				return true
			}
		}
	}
	return false
}
