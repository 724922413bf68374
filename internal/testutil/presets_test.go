package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vitrine/internal/catalog"
)

func TestPreset_StandardCatalog(t *testing.T) {
	db := NewTestDB(t)

	b := NewBuilder(t, db).WithStandardCatalog()
	b.Build()

	count, err := db.ProductRepository().Count(catalog.ListFilter{})
	require.NoError(t, err)
	require.Equal(t, 6, count, "expected 6 products")

	featured, err := db.ProductRepository().List(catalog.ListFilter{Featured: true})
	require.NoError(t, err)
	require.Len(t, featured, 2)

	for _, cat := range []catalog.Category{
		catalog.CategoryApparel, catalog.CategoryHomewares,
		catalog.CategoryStationery, catalog.CategoryAccessories,
	} {
		n, err := db.ProductRepository().Count(catalog.ListFilter{Category: cat})
		require.NoError(t, err)
		require.Positive(t, n, "expected products in category %s", cat)
	}

	scarf := b.Product("Wool Scarf")
	thumbs, err := db.ImageRepository().ImageSet(scarf.ID, catalog.SizeThumb)
	require.NoError(t, err)
	require.Len(t, thumbs.Images, 3, "scarf should have a rotating thumb set")

	fulls, err := db.ImageRepository().ImageSet(scarf.ID, catalog.SizeFull)
	require.NoError(t, err)
	require.Len(t, fulls.Images, 2)
}

func TestPreset_StandardUsers(t *testing.T) {
	db := NewTestDB(t)

	NewBuilder(t, db).
		WithStandardCatalog().
		WithStandardUsers().
		Build()

	users, err := db.UserRepository().List()
	require.NoError(t, err)
	require.Len(t, users, 2)

	alice, err := db.UserRepository().FindByEmail("alice@example.com")
	require.NoError(t, err)

	orders, err := db.OrderRepository().ListByUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Lines, 2)
	require.Equal(t, "71.50", orders[0].Total().StringFixed(2))
}
