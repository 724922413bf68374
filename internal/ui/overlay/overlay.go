// Package overlay composites modal content on top of a background view
// without clearing the screen. Both layers keep their ANSI styling.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position specifies where the overlay sits in the viewport.
type Position int

const (
	Center Position = iota
	Top
	Bottom
)

// Config controls overlay placement.
type Config struct {
	Width    int // viewport width
	Height   int // viewport height
	Position Position
	PadY     int // vertical inset for Top and Bottom placement
	PadX     int // reserved for edge-aligned placements
}

// Place renders fg on top of bg at the configured position. Splicing is
// ANSI-aware so styled background rows survive on either side of the
// overlay.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}

	startX, startY := origin(cfg, lipgloss.Width(fg), len(fgLines))

	for i, fgLine := range fgLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		bgLines[y] = spliceLine(bgLines[y], fgLine, startX)
	}

	return strings.Join(bgLines, "\n")
}

// spliceLine overwrites bgLine with fgLine starting at column x, keeping
// whatever background remains visible to the left and right.
func spliceLine(bgLine, fgLine string, x int) string {
	left := ansi.Truncate(bgLine, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	end := x + ansi.StringWidth(fgLine)
	var right string
	if end < ansi.StringWidth(bgLine) {
		right = ansi.TruncateLeft(bgLine, end, "")
	}

	return left + fgLine + right
}

// origin resolves the top-left cell of the overlay. Results are clamped
// to the viewport so oversized overlays degrade to the top-left corner.
func origin(cfg Config, fgWidth, fgHeight int) (x, y int) {
	x = (cfg.Width - fgWidth) / 2
	switch cfg.Position {
	case Top:
		y = cfg.PadY
	case Bottom:
		y = cfg.Height - fgHeight - cfg.PadY
	default:
		y = (cfg.Height - fgHeight) / 2
	}
	return max(x, 0), max(y, 0)
}
