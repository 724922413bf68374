package testutil

import (
	"github.com/shopspring/decimal"

	"github.com/zjrosen/vitrine/internal/catalog"
)

// ProductOption configures a product fixture.
type ProductOption func(*catalog.Product)

// Price sets the product price from a decimal string.
func Price(s string) ProductOption {
	return func(p *catalog.Product) {
		p.Price = decimal.RequireFromString(s)
	}
}

// Stock sets the stock count.
func Stock(n int) ProductOption {
	return func(p *catalog.Product) {
		p.Stock = n
	}
}

// InCategory sets the product category.
func InCategory(c catalog.Category) ProductOption {
	return func(p *catalog.Product) {
		p.Category = c
	}
}

// Featured marks the product for the carousel.
func Featured() ProductOption {
	return func(p *catalog.Product) {
		p.Featured = true
	}
}

// Description sets the markdown description.
func Description(md string) ProductOption {
	return func(p *catalog.Product) {
		p.Description = md
	}
}

// ImageData describes one image fixture attached to a product.
type ImageData struct {
	Size catalog.SizeClass
	Alt  string
	Art  string
}

// Thumb creates a thumbnail image fixture.
func Thumb(alt, art string) ImageData {
	return ImageData{Size: catalog.SizeThumb, Alt: alt, Art: art}
}

// Full creates a full-size image fixture.
func Full(alt, art string) ImageData {
	return ImageData{Size: catalog.SizeFull, Alt: alt, Art: art}
}
