package table

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vitrine/internal/ui/styles"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	m.Run()
}

type productRow struct {
	Name  string
	Price string
	Stock int
}

func productColumns() []ColumnConfig {
	return []ColumnConfig{
		{Key: "name", Header: "Name", MinWidth: 10, Render: func(row any, _ string, w int, _ bool) string {
			return styles.TruncateString(row.(*productRow).Name, w)
		}},
		{Key: "price", Header: "Price", Width: 9, Align: lipgloss.Right, Type: ColumnTypeNumber, Render: func(row any, _ string, w int, _ bool) string {
			return row.(*productRow).Price
		}},
		{Key: "stock", Header: "Stock", Width: 6, Align: lipgloss.Right, Type: ColumnTypeNumber, Render: func(row any, _ string, w int, _ bool) string {
			return fmt.Sprintf("%d", row.(*productRow).Stock)
		}},
	}
}

func sampleRows() []any {
	return []any{
		&productRow{Name: "Wool Scarf", Price: "$29.50", Stock: 10},
		&productRow{Name: "Ceramic Bowl", Price: "$42.00", Stock: 3},
	}
}

func TestNew_PanicsWithoutColumns(t *testing.T) {
	require.Panics(t, func() { New(TableConfig{}) })
}

func TestNew_PanicsOnNilRender(t *testing.T) {
	require.Panics(t, func() {
		New(TableConfig{Columns: []ColumnConfig{{Key: "name", Header: "Name"}}})
	})
}

func TestView_RendersHeaderAndRows(t *testing.T) {
	m := New(TableConfig{Columns: productColumns(), ShowHeader: true}).
		SetRows(sampleRows()).
		SetSize(50, 10)

	out := m.View()
	require.Contains(t, out, "Name")
	require.Contains(t, out, "Wool Scarf")
	require.Contains(t, out, "$42.00")
}

func TestView_EmptyStateMessage(t *testing.T) {
	m := New(TableConfig{
		Columns:      productColumns(),
		EmptyMessage: "No products yet",
	}).SetSize(40, 8)

	require.Contains(t, m.View(), "No products yet")
}

func TestView_BorderCarriesTitle(t *testing.T) {
	m := New(TableConfig{
		Columns:    productColumns(),
		ShowBorder: true,
		Title:      "Products",
	}).SetRows(sampleRows()).SetSize(50, 10)

	out := m.View()
	require.Contains(t, out, "Products")
	require.Contains(t, out, "╭")
	require.Contains(t, out, "╯")
}

func TestViewWithSelection_HighlightsRow(t *testing.T) {
	m := New(TableConfig{Columns: productColumns(), Selectable: true}).
		SetRows(sampleRows()).
		SetSize(50, 10)

	plain := m.ViewWithSelection(-1)
	selected := m.ViewWithSelection(0)
	require.NotEqual(t, plain, selected, "selection must change the rendered output")
}

func TestView_RowZoneMarksApplied(t *testing.T) {
	m := New(TableConfig{
		Columns:   productColumns(),
		RowZoneID: func(i int, _ any) string { return fmt.Sprintf("row-%d", i) },
	}).SetRows(sampleRows()).SetSize(50, 10)

	raw := m.View()
	// Scanning strips the zone markers and registers them.
	scanned := zone.Scan(raw)
	require.NotEqual(t, raw, scanned, "zone markers should be present before scanning")
	require.Contains(t, scanned, "Wool Scarf")
}

func TestRenderCallbackPanicShowsPlaceholder(t *testing.T) {
	col := ColumnConfig{Key: "boom", Header: "Boom", Width: 20, Render: func(row any, _ string, _ int, _ bool) string {
		// Wrong type assertion, the usual caller mistake.
		return row.(*productRow).Name
	}}

	out := safeRenderCallback("not a product row", col, 20, false)
	require.Contains(t, out, "!ERR")
}

func TestCalculateColumnWidths_FlexSharesRemainder(t *testing.T) {
	cols := []ColumnConfig{
		{Key: "a", Width: 10, Render: noopRender},
		{Key: "b", Render: noopRender},
		{Key: "c", Render: noopRender},
	}
	widths := calculateColumnWidths(cols, 40)

	require.Equal(t, 10, widths[0])
	// 40 - 2 separators - 10 fixed = 28 split across two flex columns.
	require.Equal(t, 28, widths[1]+widths[2])
}

func TestCalculateColumnWidths_RespectsMinAndMax(t *testing.T) {
	cols := []ColumnConfig{
		{Key: "a", MinWidth: 12, Render: noopRender},
		{Key: "b", MaxWidth: 5, Render: noopRender},
	}
	widths := calculateColumnWidths(cols, 12)

	require.GreaterOrEqual(t, widths[0], 12)
	require.LessOrEqual(t, widths[1], 5)
}

func TestFilterVisibleColumns_HidesBelowThreshold(t *testing.T) {
	cols := []ColumnConfig{
		{Key: "name", Render: noopRender},
		{Key: "alt", HideBelow: 100, Render: noopRender},
	}

	wide := filterVisibleColumns(cols, 120)
	require.Len(t, wide, 2)

	narrow := filterVisibleColumns(cols, 80)
	require.Len(t, narrow, 1)
	require.Equal(t, "name", narrow[0].Key)
}

func TestView_WideRowTruncated(t *testing.T) {
	m := New(TableConfig{Columns: productColumns()}).
		SetRows([]any{&productRow{Name: strings.Repeat("Very Long Product Name ", 5), Price: "$1.00"}}).
		SetSize(30, 5)

	for _, line := range strings.Split(m.View(), "\n") {
		require.LessOrEqual(t, lipgloss.Width(line), 30)
	}
}

func noopRender(any, string, int, bool) string { return "" }
