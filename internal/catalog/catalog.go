// Package catalog holds the static storefront catalog and the pure
// resolution/aggregation functions over it. The catalog is loaded once at
// startup and is read-only afterwards; lookups never fail loudly for
// unknown identifiers coming from user navigation.
package catalog

import (
	"errors"

	"storefront-service/internal/domain"
)

// ErrEntryNotFound is returned by lookups for unknown slugs or ids. This
// is an expected condition on the browsing path (bad URL, stale link);
// callers render a not-found state rather than failing the request.
var ErrEntryNotFound = errors.New("catalog: entry not found")

// Catalog answers identity lookups over a fixed set of entries plus the
// category registry. Construct once with NewCatalog; no mutation after.
type Catalog struct {
	entries    []domain.CatalogEntry
	byID       map[string]*domain.CatalogEntry
	bySlug     map[string]*domain.CatalogEntry
	categories []domain.Category
}

// NewCatalog indexes the given entries and categories. Insertion order of
// entries is preserved for listing.
func NewCatalog(entries []domain.CatalogEntry, categories []domain.Category) *Catalog {
	c := &Catalog{
		entries:    entries,
		byID:       make(map[string]*domain.CatalogEntry, len(entries)),
		bySlug:     make(map[string]*domain.CatalogEntry, len(entries)),
		categories: categories,
	}
	for i := range c.entries {
		e := &c.entries[i]
		c.byID[e.ID] = e
		c.bySlug[e.Slug] = e
	}
	return c
}

// FindByID returns the entry with the given id, or ErrEntryNotFound.
func (c *Catalog) FindByID(id string) (*domain.CatalogEntry, error) {
	if e, ok := c.byID[id]; ok {
		return e, nil
	}
	return nil, ErrEntryNotFound
}

// FindBySlug returns the entry with the given URL slug, or ErrEntryNotFound.
func (c *Catalog) FindBySlug(slug string) (*domain.CatalogEntry, error) {
	if e, ok := c.bySlug[slug]; ok {
		return e, nil
	}
	return nil, ErrEntryNotFound
}

// ListByCategory returns all entries in the given category in stable
// insertion order. An unknown category yields an empty list, not an error.
func (c *Catalog) ListByCategory(category domain.CategorySlug) []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, 0)
	for _, e := range c.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// List returns all entries in insertion order.
func (c *Catalog) List() []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Categories returns the category registry in display order.
func (c *Catalog) Categories() []domain.Category {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}
