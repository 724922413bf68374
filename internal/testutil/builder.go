package testutil

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vitrine/internal/catalog"
	"github.com/zjrosen/vitrine/internal/infrastructure/sqlite"
)

// productData pairs a product fixture with its image fixtures.
type productData struct {
	product *catalog.Product
	images  []ImageData
}

// Builder accumulates catalog fixtures and inserts them in the correct
// order: products before images, users before orders.
type Builder struct {
	t        *testing.T
	db       *sqlite.DB
	products []*productData
	users    []*catalog.User
	orders   []*catalog.Order
}

// NewBuilder creates a builder for the given test database.
func NewBuilder(t *testing.T, db *sqlite.DB) *Builder {
	t.Helper()
	return &Builder{t: t, db: db}
}

// WithProduct adds a product fixture with optional configuration. The
// default fixture is in stock, unfeatured, and priced at 25.00.
func (b *Builder) WithProduct(name string, opts ...ProductOption) *Builder {
	p := catalog.NewProduct(name, decimal.RequireFromString("25.00"), catalog.CategoryHomewares)
	p.Stock = 5
	for _, opt := range opts {
		opt(p)
	}
	b.products = append(b.products, &productData{product: p})
	return b
}

// WithImages attaches image fixtures to the most recently added product.
// Image ids are derived from the slug so tests can reference them.
func (b *Builder) WithImages(images ...ImageData) *Builder {
	require.NotEmpty(b.t, b.products, "WithImages requires a preceding WithProduct")
	last := b.products[len(b.products)-1]
	last.images = append(last.images, images...)
	return b
}

// WithUser adds a user fixture.
func (b *Builder) WithUser(email, name string) *Builder {
	b.users = append(b.users, catalog.NewUser(email, name))
	return b
}

// WithOrder adds an order fixture for the most recently added user,
// containing one line per given product name. Products must already be
// part of the builder.
func (b *Builder) WithOrder(productNames ...string) *Builder {
	require.NotEmpty(b.t, b.users, "WithOrder requires a preceding WithUser")
	user := b.users[len(b.users)-1]

	var lines []catalog.OrderLine
	for _, name := range productNames {
		p := b.findProduct(name)
		lines = append(lines, catalog.OrderLine{
			ProductID:   p.ID,
			ProductName: p.Name,
			UnitPrice:   p.Price,
			Quantity:    1,
		})
	}
	b.orders = append(b.orders, catalog.NewOrder(user.ID, lines))
	return b
}

// Build inserts all accumulated fixtures.
func (b *Builder) Build() {
	b.t.Helper()

	products := b.db.ProductRepository()
	images := b.db.ImageRepository()
	users := b.db.UserRepository()
	orders := b.db.OrderRepository()

	for _, pd := range b.products {
		require.NoError(b.t, products.Save(pd.product))
		for i, img := range pd.images {
			stored := &catalog.Image{
				ID:        fmt.Sprintf("%s-%s-%d", pd.product.Slug, img.Size, i),
				ProductID: pd.product.ID,
				Size:      img.Size,
				Alt:       img.Alt,
				Art:       img.Art,
				Position:  i,
			}
			require.NoError(b.t, images.Save(stored))
		}
	}
	for _, u := range b.users {
		require.NoError(b.t, users.Save(u))
	}
	for _, o := range b.orders {
		require.NoError(b.t, orders.Save(o))
	}
}

// Product returns an inserted product fixture by name.
func (b *Builder) Product(name string) *catalog.Product {
	return b.findProduct(name)
}

func (b *Builder) findProduct(name string) *catalog.Product {
	b.t.Helper()
	for _, pd := range b.products {
		if pd.product.Name == name {
			return pd.product
		}
	}
	b.t.Fatalf("no product fixture named %q", name)
	return nil
}
