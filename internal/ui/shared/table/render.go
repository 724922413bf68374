package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/vitrine/internal/ui/styles"
)

var selectionBgStyle = lipgloss.NewStyle().Background(styles.SelectionBackgroundColor)

// selectionBgPrefix is the raw ANSI prefix that turns the selection
// background on, computed once at init.
var selectionBgPrefix string

func init() {
	rendered := selectionBgStyle.Render(" ")
	selectionBgPrefix = strings.TrimSuffix(rendered, " \x1b[0m")
}

func renderHeader(cols []ColumnConfig, widths []int) string {
	if len(cols) == 0 || len(widths) == 0 {
		return ""
	}

	parts := make([]string, 0, len(cols))
	for i, col := range cols {
		header := col.Header
		if lipgloss.Width(header) > widths[i] {
			header = styles.TruncateString(header, widths[i])
		}
		parts = append(parts, alignText(header, widths[i], col.Align))
	}
	return strings.Join(parts, " ")
}

// renderRow renders one data row. fullWidth extends the selection
// background to the right edge of the table.
func renderRow(row any, cols []ColumnConfig, widths []int, selected bool, fullWidth int) string {
	if len(cols) == 0 || len(widths) == 0 {
		return ""
	}

	var out strings.Builder
	for i, col := range cols {
		if i > 0 {
			if selected {
				out.WriteString(selectionBgStyle.Render(" "))
			} else {
				out.WriteString(" ")
			}
		}
		out.WriteString(renderCell(row, col, widths[i], selected))
	}

	content := out.String()
	if selected {
		if w := lipgloss.Width(content); w < fullWidth {
			content += selectionBgStyle.Render(strings.Repeat(" ", fullWidth-w))
		}
	}
	return content
}

// renderCell renders a single cell, applying the selection background to
// both the content and its alignment padding.
func renderCell(row any, col ColumnConfig, width int, selected bool) string {
	content := safeRenderCallback(row, col, width, selected)
	if lipgloss.Width(content) > width {
		content = styles.TruncateString(content, width)
	}

	if !selected {
		return alignText(content, width, col.Align)
	}

	padding := width - lipgloss.Width(content)
	pad := func(n int) string {
		if n <= 0 {
			return ""
		}
		return selectionBgStyle.Render(strings.Repeat(" ", n))
	}

	switch col.Align {
	case lipgloss.Right:
		return pad(padding) + withSelectionBackground(content)
	case lipgloss.Center:
		left := padding / 2
		return pad(left) + withSelectionBackground(content) + pad(padding-left)
	default:
		return withSelectionBackground(content) + pad(padding)
	}
}

// withSelectionBackground applies the selection background to content
// that may already carry foreground styling. ANSI full resets inside the
// content would drop the background, so each reset is followed by a
// background restore.
func withSelectionBackground(content string) string {
	if !strings.Contains(content, "\x1b[") {
		return selectionBgStyle.Render(content)
	}
	restored := strings.ReplaceAll(content, "\x1b[0m", "\x1b[0m"+selectionBgPrefix)
	return selectionBgPrefix + restored + "\x1b[0m"
}

// safeRenderCallback invokes the column's Render callback, converting a
// panic (typically a bad type assertion) into a visible placeholder
// instead of crashing the program.
func safeRenderCallback(row any, col ColumnConfig, width int, selected bool) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = styles.TruncateString(fmt.Sprintf("!ERR:%v", r), width)
		}
	}()
	return col.Render(row, col.Key, width, selected)
}

// renderEmptyState centers the empty message in the available space.
func renderEmptyState(msg string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if msg == "" {
		msg = "No data"
	}

	styled := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(msg)
	msgWidth := lipgloss.Width(styled)
	if msgWidth > width {
		styled = styles.TruncateString(msg, width)
		msgWidth = lipgloss.Width(styled)
	}

	leftPad := max((width-msgWidth)/2, 0)
	line := strings.Repeat(" ", leftPad) + styled

	topPad := max((height-1)/2, 0)
	lines := make([]string, 0, height)
	for range topPad {
		lines = append(lines, "")
	}
	lines = append(lines, line)
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func alignText(text string, width int, align lipgloss.Position) string {
	padding := width - lipgloss.Width(text)
	if padding <= 0 {
		return text
	}
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", padding) + text
	case lipgloss.Center:
		left := padding / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", padding-left)
	default:
		return text + strings.Repeat(" ", padding)
	}
}
