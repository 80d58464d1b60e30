package domain

// Kind discriminates the two catalog entry variants. Every consumer of a
// CatalogEntry must switch on Kind rather than probe optional fields, so a
// kit is never silently treated as a standalone product.
type Kind string

const (
	KindSingle Kind = "single"
	KindKit    Kind = "kit"
)

// CategorySlug identifies one of the fixed storefront categories.
type CategorySlug string

const (
	CategoryHairCare       CategorySlug = "hair-care"
	CategoryHealthWellness CategorySlug = "health-wellness"
	CategorySkincareBody   CategorySlug = "skincare-body"
	CategoryAccessories    CategorySlug = "accessories"
	CategoryBundles        CategorySlug = "bundles"
)

// Category is the display registry entry for a category slug.
type Category struct {
	Slug  CategorySlug `json:"slug"`
	Title string       `json:"title"`
	Blurb string       `json:"blurb"`
}

// GalleryImage is one entry of a product's ordered image gallery.
type GalleryImage struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

// HowToUseStep is one titled usage instruction.
type HowToUseStep struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// FAQ is one question/answer pair shown on a product page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// BundleTier is a quantity/price option for a single product, e.g.
// "buy 3, pay 3599". Price is for the pack as a whole, not per unit.
// Tiers are normally authored in ascending quantity but callers must not
// rely on ordering beyond what is given.
type BundleTier struct {
	Quantity       int     `json:"quantity"`
	Price          int64   `json:"price"`
	CompareAtPrice *int64  `json:"compare_at_price,omitempty"`
	Badge          *string `json:"badge,omitempty"`
	Savings        *string `json:"savings,omitempty"`
}

// KitItemRef points a kit at one of its constituent single products.
type KitItemRef struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CatalogEntry is a tagged union over the two purchasable shapes: a
// standalone single product (Kind == KindSingle) or a kit composed of
// fixed quantities of other single products (Kind == KindKit).
//
// All prices are whole currency units, never fractional. CompareAtPrice
// is a pre-discount reference price and is only meaningful for display
// when strictly greater than Price.
type CatalogEntry struct {
	Kind     Kind         `json:"kind"`
	ID       string       `json:"id"`
	Slug     string       `json:"slug"`
	Name     string       `json:"name"`
	Category CategorySlug `json:"category"`
	Image    string       `json:"image"`

	Gallery      []GalleryImage `json:"gallery,omitempty"`
	Description  string         `json:"description"`
	Badges       []string       `json:"badges,omitempty"`
	Rating       *float64       `json:"rating,omitempty"`
	ReviewsCount *int           `json:"reviews_count,omitempty"`

	Price          int64  `json:"price"`
	CompareAtPrice *int64 `json:"compare_at_price,omitempty"`

	// Single-only fields. Zero values on a kit entry.
	Benefits             []string       `json:"benefits,omitempty"`
	KeyFeatures          []string       `json:"key_features,omitempty"`
	IdealFor             []string       `json:"ideal_for,omitempty"`
	HowToUse             []HowToUseStep `json:"how_to_use,omitempty"`
	Ingredients          []string       `json:"ingredients,omitempty"`
	FAQs                 []FAQ          `json:"faqs,omitempty"`
	Bundles              []BundleTier   `json:"bundles,omitempty"`
	Stock                int            `json:"stock"`
	SizeLabel            *string        `json:"size_label,omitempty"`
	Colors               []string       `json:"colors,omitempty"`
	AllowDuplicateColors bool           `json:"allow_duplicate_colors,omitempty"`

	// Kit-only field. Each ref must resolve to a single product.
	Items []KitItemRef `json:"items,omitempty"`
}

// IsSingle reports whether the entry is a standalone product.
func (e *CatalogEntry) IsSingle() bool { return e.Kind == KindSingle }

// IsKit reports whether the entry is a composite kit product.
func (e *CatalogEntry) IsKit() bool { return e.Kind == KindKit }

// EffectiveCompareAt returns the compare-at price when it is meaningful
// for discount display (strictly greater than the given price), else nil.
func EffectiveCompareAt(compareAt *int64, price int64) *int64 {
	if compareAt != nil && *compareAt > price {
		return compareAt
	}
	return nil
}
