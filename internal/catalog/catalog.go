// Package catalog provides the pure domain layer for the storefront:
// products, their image sets, orders, and users, plus the repository
// interfaces the SQLite infrastructure implements. No infrastructure
// imports live here.
package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category buckets products for grid filtering.
type Category string

const (
	CategoryApparel     Category = "apparel"
	CategoryHomewares   Category = "homewares"
	CategoryStationery  Category = "stationery"
	CategoryAccessories Category = "accessories"
)

// IsValid returns true if the category is recognized.
func (c Category) IsValid() bool {
	switch c {
	case CategoryApparel, CategoryHomewares, CategoryStationery, CategoryAccessories:
		return true
	default:
		return false
	}
}

// SizeClass selects which rendition of an image a surface wants. Cards
// use thumbnails, the detail page and carousel use full previews.
type SizeClass string

const (
	SizeThumb SizeClass = "thumb"
	SizeFull  SizeClass = "full"
)

// Image is one stored product image. Art holds the pre-rendered terminal
// block for the size class; Alt is the text fallback shown while art is
// loading or missing.
type Image struct {
	ID        string
	ProductID string
	Size      SizeClass
	Alt       string
	Art       string
	Position  int
}

// ImageSet is a product's ordered image sequence plus which member is the
// resting (default) image. The default is what a card shows when no
// rotation is active and what leave-restore returns to.
type ImageSet struct {
	Images       []Image
	DefaultIndex int
}

// Refs returns the stable per-image identifiers in sequence order.
func (s ImageSet) Refs() []string {
	refs := make([]string, len(s.Images))
	for i, img := range s.Images {
		refs[i] = img.ID
	}
	return refs
}

// Default returns the resting image. The zero ImageSet returns a zero
// Image.
func (s ImageSet) Default() Image {
	if s.DefaultIndex < 0 || s.DefaultIndex >= len(s.Images) {
		return Image{}
	}
	return s.Images[s.DefaultIndex]
}

// Product is a catalog entry. Description is markdown, rendered by the
// detail page. Price uses decimal arithmetic; never float.
type Product struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Category    Category
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct creates a product with a fresh identifier and timestamps.
// The slug is derived from the name when empty.
func NewProduct(name string, price decimal.Decimal, category Category) *Product {
	now := time.Now()
	return &Product{
		ID:        uuid.NewString(),
		Name:      name,
		Slug:      Slugify(name),
		Price:     price,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate reports the first field constraint the product violates.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	if !p.Category.IsValid() {
		return ErrUnknownCategory
	}
	return nil
}

// InStock reports whether the product can currently be added to a cart.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// Slugify lowercases a name and collapses runs of non-alphanumerics into
// single hyphens. Empty input yields an empty slug.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
