// Package table provides a config-driven table component shared by the
// back-office tabs and the cart page.
//
// The table is a pure render component: callers own selection and row
// state, and pass column configurations with Render callbacks. The
// component handles border wrapping, header rendering, flex column
// sizing, cell truncation, and selection highlighting.
//
//	cfg := table.TableConfig{
//	    Columns: []table.ColumnConfig{
//	        {Key: "name", Header: "Name", MinWidth: 10, Render: func(row any, _ string, w int, _ bool) string {
//	            return styles.TruncateString(row.(*catalog.Product).Name, w)
//	        }},
//	    },
//	    ShowHeader: true,
//	    ShowBorder: true,
//	}
//	view := table.New(cfg).SetRows(rows).SetSize(80, 20).ViewWithSelection(selected)
package table

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ColumnType documents the semantic content of a column. Rendering is
// always driven by the Render callback.
type ColumnType int

const (
	ColumnTypeText ColumnType = iota
	ColumnTypeIcon
	ColumnTypeDate
	ColumnTypeNumber
)

// ColumnConfig defines a single table column.
//
// A zero Width makes the column flex: leftover space after fixed columns
// is shared between flex columns, bounded by MinWidth and MaxWidth.
//
// The Render callback receives the row (caller performs the type
// assertion), the column key, the resolved cell width, and whether the
// row is selected.
type ColumnConfig struct {
	Key      string
	Header   string
	Type     ColumnType
	Width    int // fixed width, 0 = flex
	MinWidth int // minimum width for flex columns
	MaxWidth int // maximum width for flex columns, 0 = no limit
	Align    lipgloss.Position

	// HideBelow drops the column when the total table width is narrower
	// than this threshold. 0 always shows the column.
	HideBelow int

	Render func(row any, key string, width int, selected bool) string
}

// TableConfig defines the complete table configuration.
type TableConfig struct {
	Columns      []ColumnConfig
	ShowHeader   bool
	ShowBorder   bool
	Title        string // rendered into the top border
	EmptyMessage string // shown centered when there are no rows

	// Selectable documents that the caller highlights rows; selection
	// state itself lives with the caller.
	Selectable bool

	// RowZoneID returns a bubblezone id for a row so mouse clicks can be
	// resolved back to it. Empty return skips marking.
	RowZoneID func(index int, row any) string

	BorderColor        lipgloss.TerminalColor
	Focused            bool
	FocusedBorderColor lipgloss.TerminalColor
}

// ValidateConfig rejects configurations the renderer cannot work with:
// no columns, or a column without a Render callback.
func ValidateConfig(cfg TableConfig) error {
	if len(cfg.Columns) == 0 {
		return errors.New("table config: at least one column is required")
	}
	for i, col := range cfg.Columns {
		if col.Render == nil {
			if col.Key != "" {
				return fmt.Errorf("table config: column %q has nil Render callback", col.Key)
			}
			return fmt.Errorf("table config: column %d has nil Render callback", i)
		}
	}
	return nil
}
