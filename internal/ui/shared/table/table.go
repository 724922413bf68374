package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/vitrine/internal/ui/shared/panes"
	"github.com/zjrosen/vitrine/internal/ui/styles"
)

// Model holds table rendering state. Methods return new values so the
// model composes with Bubble Tea's immutable update style.
type Model struct {
	config TableConfig
	rows   []any
	width  int
	height int
}

// New creates a table with the given configuration.
// Panics on an invalid configuration, which is a programming error.
func New(cfg TableConfig) Model {
	if err := ValidateConfig(cfg); err != nil {
		panic(err)
	}
	if cfg.EmptyMessage == "" {
		cfg.EmptyMessage = "No data"
	}
	return Model{
		config: cfg,
		rows:   make([]any, 0),
	}
}

// SetRows replaces the row data.
func (m Model) SetRows(rows []any) Model {
	m.rows = rows
	return m
}

// SetSize sets the total dimensions including any border.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// RowCount returns the number of rows.
func (m Model) RowCount() int {
	return len(m.rows)
}

// View renders the table without selection highlighting.
func (m Model) View() string {
	return m.render(-1)
}

// ViewWithSelection renders the table with the given row highlighted.
// An out-of-bounds index means no selection.
func (m Model) ViewWithSelection(selectedIndex int) string {
	return m.render(selectedIndex)
}

func (m Model) render(selectedIndex int) string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	innerWidth := m.width
	innerHeight := m.height
	if m.config.ShowBorder {
		innerWidth -= 2
		innerHeight -= 2
	}
	if innerWidth <= 0 || innerHeight <= 0 {
		return ""
	}

	visible := filterVisibleColumns(m.config.Columns, m.width)
	widths := calculateColumnWidths(visible, innerWidth)

	contentHeight := innerHeight
	if m.config.ShowHeader {
		contentHeight--
	}

	var content string
	if len(m.rows) == 0 {
		content = renderEmptyState(m.config.EmptyMessage, innerWidth, innerHeight)
	} else {
		content = m.renderRows(visible, widths, innerWidth, innerHeight, contentHeight, selectedIndex)
	}

	if m.config.ShowBorder {
		return panes.BorderedPane(panes.BorderConfig{
			Content:            content,
			Width:              m.width,
			Height:             m.height,
			TopLeft:            m.config.Title,
			BorderColor:        m.config.BorderColor,
			Focused:            m.config.Focused,
			FocusedBorderColor: m.config.FocusedBorderColor,
			// Rows are already padded to innerWidth, a second wrap would
			// mangle the ANSI selection background.
			PreWrapped: true,
		})
	}
	return content
}

func (m Model) renderRows(visible []ColumnConfig, widths []int, innerWidth, innerHeight, contentHeight, selectedIndex int) string {
	var lines []string

	if m.config.ShowHeader {
		header := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(renderHeader(visible, widths))
		lines = append(lines, header)
	}

	shown := min(len(m.rows), contentHeight)
	for i := range shown {
		line := renderRow(m.rows[i], visible, widths, i == selectedIndex, innerWidth)
		if m.config.RowZoneID != nil {
			if id := m.config.RowZoneID(i, m.rows[i]); id != "" {
				line = zone.Mark(id, line)
			}
		}
		lines = append(lines, line)
	}

	for len(lines) < innerHeight {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// filterVisibleColumns drops columns whose HideBelow threshold exceeds
// the current table width.
func filterVisibleColumns(cols []ColumnConfig, tableWidth int) []ColumnConfig {
	visible := make([]ColumnConfig, 0, len(cols))
	for _, col := range cols {
		if col.HideBelow > 0 && tableWidth < col.HideBelow {
			continue
		}
		visible = append(visible, col)
	}
	// Never hide every column; fall back to the full set.
	if len(visible) == 0 {
		return cols
	}
	return visible
}

// calculateColumnWidths resolves each column's width within innerWidth.
// Fixed columns keep their Width; remaining space is split between flex
// columns, honoring MinWidth (floor 3) and MaxWidth.
func calculateColumnWidths(cols []ColumnConfig, innerWidth int) []int {
	if len(cols) == 0 {
		return nil
	}

	widths := make([]int, len(cols))
	remaining := innerWidth - (len(cols) - 1) // single space separators

	var flex []int
	for i, col := range cols {
		if col.Width > 0 {
			widths[i] = col.Width
			remaining -= col.Width
		} else {
			flex = append(flex, i)
		}
	}

	if len(flex) > 0 {
		share := remaining / len(flex)
		extra := remaining % len(flex)
		for j, i := range flex {
			w := share
			if j < extra {
				w++
			}
			minW := max(cols[i].MinWidth, 3)
			w = max(w, minW)
			if cols[i].MaxWidth > 0 && w > cols[i].MaxWidth {
				w = cols[i].MaxWidth
			}
			widths[i] = w
		}
	}

	for i := range widths {
		widths[i] = max(widths[i], 1)
	}
	return widths
}
