// Package carousel renders the featured-product strip. A rotation
// LoopDriver owns the scroll position; this model is the windowed
// projection of that position over the slide track.
package carousel

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/vitrine/internal/catalog"
	"github.com/zjrosen/vitrine/internal/rotation"
	"github.com/zjrosen/vitrine/internal/ui/indicator"
	"github.com/zjrosen/vitrine/internal/ui/styles"
)

// ZoneID is the hover/click zone covering the whole strip.
const ZoneID = "carousel"

// EntityID keys the carousel in rotation indicator projections.
const EntityID = "carousel"

// Slide is one featured product and its full-size art.
type Slide struct {
	Product catalog.Product
	Art     string
}

// Model is the carousel renderer. The position is pushed in after every
// loop-driver frame; the model never advances itself.
type Model struct {
	slides     []Slide
	pos        float64
	slideWidth int
	width      int
	height     int
	paused     bool
	ind        rotation.Indicator
}

// New creates an empty carousel with the given per-slide width.
func New(slideWidth int) Model {
	if slideWidth < 8 {
		slideWidth = 8
	}
	return Model{slideWidth: slideWidth, width: slideWidth, height: 8}
}

// SetSlides replaces the featured set. The indicator resets to the first
// slide.
func (m Model) SetSlides(slides []Slide) Model {
	m.slides = slides
	m.ind = rotation.Project(EntityID, 0, len(slides))
	return m
}

// SetPosition updates the scroll position in cells.
func (m Model) SetPosition(pos float64) Model {
	m.pos = pos
	return m
}

// SetPaused marks the post-navigation cooldown window.
func (m Model) SetPaused(paused bool) Model {
	m.paused = paused
	return m
}

// SetIndicator updates the slide indicator after a manual snap.
func (m Model) SetIndicator(ind rotation.Indicator) Model {
	m.ind = ind
	return m
}

// SetSize updates the rendered viewport dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// SlideCount returns the number of slides in one track cycle.
func (m Model) SlideCount() int {
	return len(m.slides)
}

// SlideWidth returns the configured per-slide width in cells.
func (m Model) SlideWidth() int {
	return m.slideWidth
}

// CurrentSlide returns the slide the position currently sits in.
func (m Model) CurrentSlide() int {
	if len(m.slides) == 0 {
		return 0
	}
	idx := int(math.Floor(m.pos/float64(m.slideWidth))) % len(m.slides)
	if idx < 0 {
		idx += len(m.slides)
	}
	return idx
}

// CurrentProduct returns the product under the window's left edge.
func (m Model) CurrentProduct() (catalog.Product, bool) {
	if len(m.slides) == 0 {
		return catalog.Product{}, false
	}
	return m.slides[m.CurrentSlide()].Product, true
}

// View renders the visible window of the slide track plus the indicator
// row. The track is laid out twice so the window can straddle the wrap
// seam without a visual jump.
func (m Model) View() string {
	if len(m.slides) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			Italic(true).
			Padding(1, 2)
		return empty.Render("No featured products")
	}

	slideViews := make([]string, len(m.slides))
	for i, s := range m.slides {
		slideViews[i] = m.renderSlide(s)
	}
	track := lipgloss.JoinHorizontal(lipgloss.Top, slideViews...)
	trackWidth := m.slideWidth * len(m.slides)

	offset := int(m.pos) % trackWidth
	if offset < 0 {
		offset += trackWidth
	}

	doubled := lipgloss.JoinHorizontal(lipgloss.Top, track, track)
	var window []string
	for _, line := range strings.Split(doubled, "\n") {
		window = append(window, ansi.Cut(line, offset, offset+m.width))
	}

	strip := strings.Join(window, "\n")
	footer := m.footer()

	return zone.Mark(ZoneID, strip+"\n"+footer)
}

func (m Model) renderSlide(s Slide) string {
	innerWidth := m.slideWidth - 2

	var lines []string
	for _, line := range strings.Split(s.Art, "\n") {
		lines = append(lines, styles.TruncateString(line, innerWidth))
	}
	lines = append(lines, styles.TruncateString(s.Product.Name, innerWidth))
	lines = append(lines, styles.PriceStyle.Render("$"+s.Product.Price.StringFixed(2)))

	box := lipgloss.NewStyle().
		Width(m.slideWidth).
		Padding(0, 1).
		Height(m.height - 2)
	return box.Render(strings.Join(lines, "\n"))
}

func (m Model) footer() string {
	footer := indicator.Render(m.ind)
	if m.paused {
		pausedStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
		footer += pausedStyle.Render(" ⏸")
	}
	return footer
}
