package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vitrine/internal/catalog"
	"github.com/zjrosen/vitrine/internal/config"
	"github.com/zjrosen/vitrine/internal/infrastructure/sqlite"
)

// seedInto runs the seed command against a database at dbPath.
func seedInto(t *testing.T, dbPath string) string {
	t.Helper()

	prev := cfg
	cfg = config.Defaults()
	cfg.DBPath = dbPath
	t.Cleanup(func() { cfg = prev })

	var out bytes.Buffer
	seedCmd.SetOut(&out)
	require.NoError(t, runSeed(seedCmd, nil))
	return out.String()
}

func TestSeed_CreatesSampleCatalog(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	out := seedInto(t, dbPath)
	require.Contains(t, out, "Seeded 8 products")

	db, err := sqlite.NewDB(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	products, err := db.ProductRepository().List(catalog.ListFilter{})
	require.NoError(t, err)
	require.Len(t, products, 8)

	featured, err := db.ProductRepository().List(catalog.ListFilter{Featured: true})
	require.NoError(t, err)
	require.Len(t, featured, 3)

	scarf, err := db.ProductRepository().FindBySlug("wool-scarf")
	require.NoError(t, err)
	set, err := db.ImageRepository().ImageSet(scarf.ID, catalog.SizeThumb)
	require.NoError(t, err)
	require.Len(t, set.Images, 3)

	admin, err := db.UserRepository().FindByEmail("admin@vitrine.local")
	require.NoError(t, err)
	require.Equal(t, catalog.RoleAdmin, admin.Role)
}

func TestSeed_IsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	seedInto(t, dbPath)
	out := seedInto(t, dbPath)
	require.Contains(t, out, "Seeded 0 products", "existing slugs are left untouched")

	db, err := sqlite.NewDB(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	products, err := db.ProductRepository().List(catalog.ListFilter{})
	require.NoError(t, err)
	require.Len(t, products, 8)

	users, err := db.UserRepository().List()
	require.NoError(t, err)
	require.Len(t, users, 1)
}
