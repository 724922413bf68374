// Package cart implements the in-memory shopping cart. Carts are not
// persisted; checkout turns a cart into an order through the catalog
// repositories.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/zjrosen/vitrine/internal/catalog"
	"github.com/zjrosen/vitrine/internal/log"
)

// Line is one product in the cart with its quantity. UnitPrice is the
// price at the time the product was added.
type Line struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Subtotal is UnitPrice times Quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds lines in insertion order. The zero value is an empty,
// usable cart. Carts are confined to the UI goroutine and need no lock.
type Cart struct {
	lines []Line
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts quantity units of a product in the cart, merging with an
// existing line for the same product. Quantities below one are clamped
// to one.
func (c *Cart) Add(p *catalog.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity += quantity
			log.Debug(log.CatCart, "quantity merged", "product", p.ID, "quantity", c.lines[i].Quantity)
			return
		}
	}
	c.lines = append(c.lines, Line{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    quantity,
		UnitPrice:   p.Price,
	})
	log.Debug(log.CatCart, "line added", "product", p.ID, "quantity", quantity)
}

// Remove drops a product's line entirely. Unknown products are a no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces a line's quantity. Zero or negative removes the
// line; unknown products are a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity < 1 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len reports the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Units reports the total unit count across all lines.
func (c *Cart) Units() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Total sums every line subtotal.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// ToOrderLines converts the cart into order lines for checkout.
func (c *Cart) ToOrderLines() []catalog.OrderLine {
	out := make([]catalog.OrderLine, len(c.lines))
	for i, l := range c.lines {
		out[i] = catalog.OrderLine{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		}
	}
	return out
}
