// Package indicator renders the dot strip and counter that track a
// rotating surface's committed image index.
package indicator

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/vitrine/internal/rotation"
	"github.com/zjrosen/vitrine/internal/ui/styles"
)

const (
	dotActive   = "●"
	dotInactive = "○"
)

// Render returns the styled dot strip for a committed index, followed by
// the "current/total" counter. Single-image surfaces render nothing; a dot
// strip over one dot is noise.
func Render(ind rotation.Indicator) string {
	if ind.Total <= 1 {
		return ""
	}

	var b strings.Builder
	for i := 0; i < ind.Total; i++ {
		if i == ind.Index {
			b.WriteString(styles.IndicatorActiveStyle.Render(dotActive))
		} else {
			b.WriteString(styles.IndicatorInactiveStyle.Render(dotInactive))
		}
	}

	counter := styles.FormatImageCounter(ind.Index, ind.Total)
	counterStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	return b.String() + " " + counterStyle.Render(counter)
}

// RenderPlain returns the unstyled dot strip, used where ANSI sequences
// would confuse width math (inside pre-measured card rows).
func RenderPlain(ind rotation.Indicator) string {
	if ind.Total <= 1 {
		return ""
	}
	return ind.Dots + " " + styles.FormatImageCounter(ind.Index, ind.Total)
}
