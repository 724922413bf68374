package card

import (
	"os"
	"testing"

	zone "github.com/lrstanley/bubblezone"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vitrine/internal/catalog"
	"github.com/zjrosen/vitrine/internal/rotation"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func testProduct() catalog.Product {
	p := catalog.NewProduct("Wool Scarf", decimal.NewFromFloat(29.50), catalog.CategoryApparel)
	p.Stock = 10
	return *p
}

func TestZoneID_RoundTrip(t *testing.T) {
	id := ZoneID("wool-scarf")
	require.Equal(t, "card:wool-scarf", id)

	slug, ok := SlugFromZoneID(id)
	require.True(t, ok)
	require.Equal(t, "wool-scarf", slug)
}

func TestSlugFromZoneID_ForeignZone(t *testing.T) {
	_, ok := SlugFromZoneID("table:row:3")
	require.False(t, ok)
}

func TestView_ContainsProductInfo(t *testing.T) {
	m := New(testProduct()).SetSize(30, 12)
	out := m.View()
	require.Contains(t, out, "Wool Scarf")
	require.Contains(t, out, "$29.50")
	require.Contains(t, out, "in stock")
	require.Contains(t, out, "apparel")
}

func TestView_StockStates(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		expected string
	}{
		{"in stock", 10, "in stock"},
		{"low stock", 2, "low stock"},
		{"sold out", 0, "sold out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProduct()
			p.Stock = tt.stock
			out := New(p).SetSize(30, 12).View()
			require.Contains(t, out, tt.expected)
		})
	}
}

func TestView_FeaturedBadge(t *testing.T) {
	p := testProduct()
	p.Featured = true
	out := New(p).SetSize(30, 12).View()
	require.Contains(t, out, "featured")
}

func TestView_AltTextWhenNoArt(t *testing.T) {
	m := New(testProduct()).SetArt("", "scarf on a hook").SetSize(30, 12)
	require.Contains(t, m.View(), "scarf on a hook")
}

func TestView_IndicatorDots(t *testing.T) {
	m := New(testProduct()).
		SetIndicator(rotation.Project("wool-scarf", 1, 3)).
		SetSize(30, 12)
	out := m.View()
	require.Contains(t, out, "●")
	require.Contains(t, out, "2/3")
}

func TestView_NoIndicatorForSingleImage(t *testing.T) {
	m := New(testProduct()).
		SetIndicator(rotation.Project("wool-scarf", 0, 1)).
		SetSize(30, 12)
	require.NotContains(t, m.View(), "●")
}

func TestSetters_ReturnUpdatedCopies(t *testing.T) {
	m := New(testProduct())
	require.False(t, m.Hovered())

	hovered := m.SetHovered(true)
	require.True(t, hovered.Hovered())
	require.False(t, m.Hovered(), "original model should be unchanged")
}

func TestView_FadingStillShowsArt(t *testing.T) {
	m := New(testProduct()).
		SetArt("▒▒▒▒\n▒▒▒▒", "scarf").
		SetFading(true).
		SetSize(30, 12)
	require.Contains(t, m.View(), "▒▒▒▒")
}
