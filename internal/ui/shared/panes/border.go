// Package panes renders bordered panels with titles embedded in the
// border line, used by the back-office tables and detail panels.
package panes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/vitrine/internal/ui/styles"
)

// Rounded border characters.
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// BorderConfig configures a bordered panel.
type BorderConfig struct {
	Content string
	Width   int // total width including borders
	Height  int // total height including borders

	// Titles rendered into the border lines. Empty strings are omitted.
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string

	Focused            bool
	TitleColor         lipgloss.TerminalColor
	BorderColor        lipgloss.TerminalColor
	FocusedBorderColor lipgloss.TerminalColor

	// PreWrapped skips the lipgloss width/height constraint on Content.
	// Set it when the content already sizes itself, otherwise double
	// wrapping mangles wide rows.
	PreWrapped bool
}

// BorderedPane renders content inside a rounded border with optional
// titles on the top and bottom border lines.
func (cfg BorderConfig) render() string {
	borderColor := cfg.effectiveBorderColor()
	titleColor := cfg.TitleColor
	if titleColor == nil {
		titleColor = styles.BorderDefaultColor
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor)

	innerWidth := max(cfg.Width-2, 1)
	contentHeight := max(cfg.Height-2, 1)

	top := titleBorder(cfg.TopLeft, cfg.TopRight, borderTopLeft, borderTopRight, innerWidth, borderStyle, titleStyle)
	bottom := titleBorder(cfg.BottomLeft, cfg.BottomRight, borderBottomLeft, borderBottomRight, innerWidth, borderStyle, titleStyle)

	content := cfg.Content
	if !cfg.PreWrapped {
		content = lipgloss.NewStyle().Width(innerWidth).Height(contentHeight).Render(content)
	}

	contentLines := strings.Split(content, "\n")
	paddedLines := make([]string, contentHeight)
	for i := range contentHeight {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		// Pad each line so the right border column aligns.
		if w := lipgloss.Width(line); w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		paddedLines[i] = borderStyle.Render(borderVertical) + line + borderStyle.Render(borderVertical)
	}

	var out strings.Builder
	out.WriteString(top)
	out.WriteString("\n")
	out.WriteString(strings.Join(paddedLines, "\n"))
	out.WriteString("\n")
	out.WriteString(bottom)
	return out.String()
}

// BorderedPane renders content within a bordered panel per cfg.
func BorderedPane(cfg BorderConfig) string {
	return cfg.render()
}

// effectiveBorderColor resolves the border color for the current focus
// state. A nil FocusedBorderColor inherits BorderColor; both nil falls
// back to the default border color.
func (cfg BorderConfig) effectiveBorderColor() lipgloss.TerminalColor {
	unfocused := cfg.BorderColor
	if unfocused == nil {
		unfocused = styles.BorderDefaultColor
	}
	if !cfg.Focused {
		return unfocused
	}
	if cfg.FocusedBorderColor != nil {
		return cfg.FocusedBorderColor
	}
	if cfg.BorderColor != nil {
		return cfg.BorderColor
	}
	return styles.BorderDefaultColor
}

// titleBorder builds one border line with optional left and right titles:
//
//	╭─ Left ───────── Right ─╮
//
// Titles that do not fit are dropped, right first, then the left title is
// truncated with an ellipsis.
func titleBorder(left, right, cornerL, cornerR string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	if innerWidth < 1 {
		return borderStyle.Render(cornerL + cornerR)
	}

	plain := func() string {
		return borderStyle.Render(cornerL + strings.Repeat(borderHorizontal, innerWidth) + cornerR)
	}
	if left == "" && right == "" {
		return plain()
	}

	// Width budget: "─ " + left + " " + middle + " " + right + " ─".
	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	if right != "" && innerWidth < leftWidth+rightWidth+7 {
		right = ""
		rightWidth = 0
	}
	if left != "" && innerWidth < leftWidth+4 {
		if innerWidth < 5 {
			return plain()
		}
		left = styles.TruncateString(left, innerWidth-4)
		leftWidth = lipgloss.Width(left)
	}
	if left == "" && right == "" {
		return plain()
	}

	var middle int
	switch {
	case left != "" && right != "":
		middle = innerWidth - leftWidth - rightWidth - 6
	case left != "":
		middle = innerWidth - leftWidth - 3
	default:
		middle = innerWidth - rightWidth - 3
	}
	middle = max(middle, 1)

	var out strings.Builder
	out.WriteString(borderStyle.Render(cornerL))
	if left != "" {
		out.WriteString(borderStyle.Render(borderHorizontal + " "))
		out.WriteString(titleStyle.Render(left))
		out.WriteString(borderStyle.Render(" "))
	}
	out.WriteString(borderStyle.Render(strings.Repeat(borderHorizontal, middle)))
	if right != "" {
		out.WriteString(borderStyle.Render(" "))
		out.WriteString(titleStyle.Render(right))
		out.WriteString(borderStyle.Render(" " + borderHorizontal))
	}
	out.WriteString(borderStyle.Render(cornerR))
	return out.String()
}
