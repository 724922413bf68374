// Package card renders one product tile on the catalog grid: bordered art
// with name, price, stock, and the rotation indicator. The card is a pure
// projection; hover and fade state are pushed in by the owning mode.
package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/vitrine/internal/catalog"
	"github.com/zjrosen/vitrine/internal/rotation"
	"github.com/zjrosen/vitrine/internal/ui/indicator"
	"github.com/zjrosen/vitrine/internal/ui/styles"
)

// ZonePrefix namespaces card hover zones in the global bubblezone manager.
const ZonePrefix = "card:"

// ZoneID returns the hover zone id for a product slug. The slug doubles as
// the rotation entity id, so zone hits map straight onto interest signals.
func ZoneID(slug string) string {
	return ZonePrefix + slug
}

// SlugFromZoneID inverts ZoneID. Returns false for zones owned by other
// components.
func SlugFromZoneID(id string) (string, bool) {
	if !strings.HasPrefix(id, ZonePrefix) {
		return "", false
	}
	return strings.TrimPrefix(id, ZonePrefix), true
}

// Model is one rendered product card.
type Model struct {
	product   catalog.Product
	art       string
	alt       string
	ind       rotation.Indicator
	width     int
	height    int
	hovered   bool
	selected  bool
	fading    bool
}

// New creates a card for a product.
func New(p catalog.Product) Model {
	return Model{product: p, width: 24, height: 10}
}

// SetArt sets the rendered art block and its text fallback.
func (m Model) SetArt(art, alt string) Model {
	m.art = art
	m.alt = alt
	return m
}

// SetIndicator updates the committed-index projection shown under the art.
func (m Model) SetIndicator(ind rotation.Indicator) Model {
	m.ind = ind
	return m
}

// SetSize updates card dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// SetHovered sets whether the pointer is over this card.
func (m Model) SetHovered(hovered bool) Model {
	m.hovered = hovered
	return m
}

// SetSelected sets whether keyboard focus is on this card.
func (m Model) SetSelected(selected bool) Model {
	m.selected = selected
	return m
}

// SetFading marks the card as mid-crossfade; the art renders dimmed until
// the transition settles.
func (m Model) SetFading(fading bool) Model {
	m.fading = fading
	return m
}

// Product returns the product this card renders.
func (m Model) Product() catalog.Product {
	return m.product
}

// Hovered reports whether the card is currently hovered.
func (m Model) Hovered() bool {
	return m.hovered
}

// View renders the card and marks it as a hover zone.
func (m Model) View() string {
	innerWidth := m.width - 2
	if innerWidth < 4 {
		innerWidth = 4
	}

	var lines []string

	lines = append(lines, m.artLines(innerWidth)...)
	lines = append(lines, m.priceLine(innerWidth))
	lines = append(lines, m.badgeLine())

	if dots := indicator.Render(m.ind); dots != "" {
		lines = append(lines, dots)
	}

	content := strings.Join(lines, "\n")
	focused := m.hovered || m.selected
	rendered := styles.RenderWithTitleBorder(
		content,
		styles.TruncateString(m.product.Name, innerWidth-4),
		m.width, m.height, focused,
		styles.TextPrimaryColor,
		styles.BorderHighlightFocusColor,
	)

	return zone.Mark(ZoneID(m.product.Slug), rendered)
}

// artLines returns the art block constrained to the card width, or the alt
// text while no art is resident. Mid-fade the whole block dims.
func (m Model) artLines(innerWidth int) []string {
	if m.art == "" {
		altStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Italic(true)
		alt := m.alt
		if alt == "" {
			alt = "no preview"
		}
		return []string{altStyle.Render(styles.TruncateString(alt, innerWidth))}
	}

	raw := strings.Split(m.art, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = styles.TruncateString(line, innerWidth)
		if m.fading {
			line = styles.FadeDimStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return lines
}

func (m Model) priceLine(innerWidth int) string {
	price := styles.PriceStyle.Render("$" + m.product.Price.StringFixed(2))

	var stock string
	switch {
	case m.product.Stock == 0:
		stock = styles.StockOutStyle.Render("sold out")
	case m.product.Stock <= 3:
		stock = styles.StockLowStyle.Render("low stock")
	default:
		stock = styles.StockInStyle.Render("in stock")
	}

	gap := innerWidth - lipgloss.Width(price) - lipgloss.Width(stock)
	if gap < 1 {
		gap = 1
	}
	return price + strings.Repeat(" ", gap) + stock
}

func (m Model) badgeLine() string {
	badge := CategoryStyle(m.product.Category).Render(string(m.product.Category))
	if m.product.Featured {
		badge += " " + styles.BadgeFeaturedStyle.Render("★ featured")
	}
	return badge
}

// CategoryStyle returns the badge style for a product category.
func CategoryStyle(c catalog.Category) lipgloss.Style {
	switch c {
	case catalog.CategoryApparel:
		return styles.CategoryApparelStyle
	case catalog.CategoryHomewares:
		return styles.CategoryHomewaresStyle
	case catalog.CategoryStationery:
		return styles.CategoryStationeryStyle
	case catalog.CategoryAccessories:
		return styles.CategoryAccessoriesStyle
	default:
		return lipgloss.NewStyle()
	}
}
