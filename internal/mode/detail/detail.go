// Package detail implements the product detail mode: a full-size image
// panel with a thumbnail navigator, the markdown description, and cart
// actions. The image shares the rotation engine with the browse grid but
// registers under its own entity id, so switching modes never aliases
// timers.
package detail

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/vitrine/internal/catalog"
	"github.com/zjrosen/vitrine/internal/keys"
	"github.com/zjrosen/vitrine/internal/log"
	"github.com/zjrosen/vitrine/internal/mode"
	"github.com/zjrosen/vitrine/internal/pubsub"
	"github.com/zjrosen/vitrine/internal/rotation"
	"github.com/zjrosen/vitrine/internal/ui/card"
	"github.com/zjrosen/vitrine/internal/ui/indicator"
	"github.com/zjrosen/vitrine/internal/ui/shared/markdown"
	"github.com/zjrosen/vitrine/internal/ui/styles"
	"github.com/zjrosen/vitrine/internal/ui/toaster"
)

// EntityPrefix namespaces detail rotation entities away from the grid's.
const EntityPrefix = "detail:"

// imageZoneID is the hover zone covering the full-size image panel.
const imageZoneID = "detail:image"

// thumbZoneID returns the click zone for one thumbnail position.
func thumbZoneID(i int) string {
	return fmt.Sprintf("detail:thumb:%d", i)
}

// Model holds the detail mode state.
type Model struct {
	services mode.Services
	keys     keys.KeyMap

	slug    string
	product catalog.Product
	set     catalog.ImageSet

	committed int
	art       string
	fading    bool
	hovering  bool

	desc    string
	loadErr error

	width  int
	height int
}

// productLoadedMsg carries the product and its full-size image set.
type productLoadedMsg struct {
	product catalog.Product
	set     catalog.ImageSet
	err     error
}

// New creates the detail mode controller for one product slug.
func New(services mode.Services, slug string) Model {
	return Model{
		services: services,
		keys:     keys.DefaultKeyMap(),
		slug:     slug,
	}
}

// Init loads the product.
func (m Model) Init() tea.Cmd {
	products := m.services.Products
	images := m.services.Images
	slug := m.slug

	return func() tea.Msg {
		p, err := products.FindBySlug(slug)
		if err != nil {
			return productLoadedMsg{err: err}
		}
		set, err := images.ImageSet(p.ID, catalog.SizeFull)
		if err != nil {
			return productLoadedMsg{err: err}
		}
		return productLoadedMsg{product: *p, set: set}
	}
}

// EntityID returns the rotation entity id this page registers.
func (m Model) EntityID() string {
	return EntityPrefix + m.slug
}

// SetSize handles terminal resize.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	if m.product.ID != "" {
		m = m.renderDescription()
	}
	return m
}

// Teardown disposes the page's rotation entity. The app calls it when
// navigating away.
func (m Model) Teardown() Model {
	m.services.Rotator.Dispose(m.EntityID())
	m.hovering = false
	return m
}

// CommittedIndex exposes the current image index for tests.
func (m Model) CommittedIndex() int {
	return m.committed
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case productLoadedMsg:
		return m.handleProductLoaded(msg)

	case pubsub.Event[pubsub.RotationUpdate]:
		return m.handleRotationUpdate(msg), nil
	}
	return m, nil
}

// handleProductLoaded registers the rotation entity and renders the
// description. Re-registering on reload disposes the old entity first.
func (m Model) handleProductLoaded(msg productLoadedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		m.loadErr = msg.err
		log.ErrorErr(log.CatMode, "product load failed", msg.err, "slug", m.slug)
		return m, nil
	}
	m.loadErr = nil
	m.product = msg.product
	m.set = msg.set
	m.committed = msg.set.DefaultIndex
	m.fading = false

	if len(msg.set.Images) > 0 {
		refs := make([]rotation.ImageRef, len(msg.set.Images))
		for i, id := range msg.set.Refs() {
			refs[i] = rotation.ImageRef(id)
		}
		m.services.Rotator.Register(m.EntityID(), refs, rotation.ImageRef(msg.set.Default().ID))
		m.art = m.artFor(msg.set.Default())
	}

	return m.renderDescription(), nil
}

// renderDescription runs the product markdown through glamour at the
// current panel width.
func (m Model) renderDescription() Model {
	if m.product.Description == "" {
		m.desc = ""
		return m
	}
	style := "dark"
	if cfg := m.services.Config; cfg != nil && cfg.UI.MarkdownStyle != "" {
		style = cfg.UI.MarkdownStyle
	}
	r, err := markdown.New(max(m.infoWidth()-2, 20), style)
	if err != nil {
		m.desc = m.product.Description
		return m
	}
	rendered, err := r.Render(m.product.Description)
	if err != nil {
		m.desc = m.product.Description
		return m
	}
	m.desc = strings.TrimRight(rendered, "\n")
	return m
}

func (m Model) artFor(img catalog.Image) string {
	if m.services.Preview != nil {
		if art, ok := m.services.Preview.Art(img.ID); ok {
			return art
		}
	}
	return img.Art
}

// handleRotationUpdate applies scheduler events for this page's entity.
func (m Model) handleRotationUpdate(ev pubsub.Event[pubsub.RotationUpdate]) Model {
	if ev.Payload.EntityID != m.EntityID() {
		return m
	}
	switch ev.Type {
	case pubsub.TransitionStartedEvent:
		m.fading = true
	case pubsub.ImageCommittedEvent:
		m.committed = ev.Payload.Index
		for _, img := range m.set.Images {
			if img.ID == ev.Payload.Ref {
				m.art = m.artFor(img)
				break
			}
		}
	case pubsub.TransitionSettledEvent:
		m.fading = false
	}
	return m
}

// handleMouse maps hover over the image panel to interest signals and
// thumbnail clicks to explicit navigation.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	hovering := zone.Get(imageZoneID).InBounds(msg)
	if hovering != m.hovering {
		if hovering {
			m.services.Rotator.OnInterestEnter(m.EntityID())
		} else {
			m.services.Rotator.OnInterestLeave(m.EntityID())
		}
		m.hovering = hovering
	}

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		for i := range m.set.Images {
			if zone.Get(thumbZoneID(i)).InBounds(msg) {
				m.services.Rotator.NavigateTo(m.EntityID(), i)
				return m, nil
			}
		}
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// Digit keys select a thumbnail directly.
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		idx, _ := strconv.Atoi(s)
		if idx <= len(m.set.Images) {
			m.services.Rotator.NavigateTo(m.EntityID(), idx-1)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		return m, mode.Switch(mode.ModeBrowse)

	case key.Matches(msg, m.keys.NextImage), key.Matches(msg, m.keys.Right):
		m.services.Rotator.Navigate(m.EntityID(), rotation.Next)
		return m, nil

	case key.Matches(msg, m.keys.PrevImage), key.Matches(msg, m.keys.Left):
		m.services.Rotator.Navigate(m.EntityID(), rotation.Prev)
		return m, nil

	case key.Matches(msg, m.keys.AddToCart):
		return m.addToCart()

	case key.Matches(msg, m.keys.ToggleCart):
		return m, mode.Switch(mode.ModeCart)
	}
	return m, nil
}

func (m Model) addToCart() (Model, tea.Cmd) {
	if m.product.ID == "" {
		return m, nil
	}
	if !m.product.InStock() {
		return m, func() tea.Msg {
			return mode.ShowToastMsg{Message: m.product.Name + " is sold out", Style: toaster.StyleWarn}
		}
	}
	p := m.product
	m.services.Cart.Add(&p, 1)
	return m, func() tea.Msg {
		return mode.ShowToastMsg{Message: "Added " + p.Name + " to cart", Style: toaster.StyleSuccess}
	}
}

// View renders the image panel beside the product info column.
func (m Model) View() string {
	if m.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(styles.StatusErrorColor).Padding(1, 2)
		return errStyle.Render("Error: " + m.loadErr.Error())
	}
	if m.product.ID == "" {
		return lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Padding(1, 2).Render("Loading...")
	}

	left := m.renderImagePanel()
	right := m.renderInfoPanel()
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m Model) imageWidth() int {
	w := m.width / 2
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) infoWidth() int {
	w := m.width - m.imageWidth() - 1
	if w < 20 {
		w = 20
	}
	return w
}

// renderImagePanel shows the committed full-size image, dimmed mid-fade,
// with the thumbnail navigator and indicator dots underneath.
func (m Model) renderImagePanel() string {
	width := m.imageWidth()
	var lines []string

	if m.art == "" {
		alt := "no preview"
		if len(m.set.Images) > 0 {
			alt = m.set.Images[m.committed].Alt
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.TextMutedColor).Italic(true).Render(alt))
	} else {
		for _, line := range strings.Split(m.art, "\n") {
			line = styles.TruncateString(line, width-4)
			if m.fading {
				line = styles.FadeDimStyle.Render(line)
			}
			lines = append(lines, line)
		}
	}

	lines = append(lines, "")
	lines = append(lines, m.renderThumbStrip())
	if dots := indicator.Render(rotation.Project(m.EntityID(), m.committed, len(m.set.Images))); dots != "" {
		lines = append(lines, dots)
	}

	content := strings.Join(lines, "\n")
	height := max(len(lines)+2, 10)
	panel := styles.RenderWithTitleBorder(
		content, m.product.Name, width, height, m.hovering,
		styles.TextPrimaryColor, styles.BorderHighlightFocusColor,
	)
	return zone.Mark(imageZoneID, panel)
}

// renderThumbStrip shows one numbered chip per image; the committed chip
// is highlighted. Chips are click zones for explicit selection.
func (m Model) renderThumbStrip() string {
	if len(m.set.Images) < 2 {
		return ""
	}
	chips := make([]string, 0, len(m.set.Images))
	for i := range m.set.Images {
		label := fmt.Sprintf(" %d ", i+1)
		style := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)
		if i == m.committed {
			style = lipgloss.NewStyle().
				Foreground(styles.TextPrimaryColor).
				Background(styles.BorderHighlightFocusColor).
				Bold(true)
		}
		chips = append(chips, zone.Mark(thumbZoneID(i), style.Render(label)))
	}
	return strings.Join(chips, " ")
}

// renderInfoPanel shows price, stock, category, and the description.
func (m Model) renderInfoPanel() string {
	width := m.infoWidth()
	var sb strings.Builder

	sb.WriteString(styles.PriceStyle.Render("$" + m.product.Price.StringFixed(2)))
	sb.WriteString("   ")
	switch {
	case m.product.Stock == 0:
		sb.WriteString(styles.StockOutStyle.Render("sold out"))
	case m.product.Stock <= 3:
		sb.WriteString(styles.StockLowStyle.Render(fmt.Sprintf("low stock (%d left)", m.product.Stock)))
	default:
		sb.WriteString(styles.StockInStyle.Render("in stock"))
	}
	sb.WriteString("\n")

	sb.WriteString(card.CategoryStyle(m.product.Category).Render(string(m.product.Category)))
	if m.product.Featured {
		sb.WriteString(" " + styles.BadgeFeaturedStyle.Render("★ featured"))
	}
	sb.WriteString("\n\n")

	if m.desc != "" {
		sb.WriteString(m.desc)
		sb.WriteString("\n\n")
	}

	hint := lipgloss.NewStyle().Foreground(styles.TextMutedColor).
		Render("n/p images · 1-9 select · a add to cart · esc back")
	sb.WriteString(hint)

	return lipgloss.NewStyle().Width(width).Render(sb.String())
}
