// Package browse implements the storefront's main mode: the featured
// carousel strip above a product card grid. Hovering a card starts its
// image rotation; the grid re-registers every visible entity with the
// rotator on each rebuild so redraws never accumulate timers.
package browse

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
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
	"github.com/zjrosen/vitrine/internal/ui/carousel"
	"github.com/zjrosen/vitrine/internal/ui/help"
	"github.com/zjrosen/vitrine/internal/ui/styles"
	"github.com/zjrosen/vitrine/internal/ui/toaster"
)

// ViewState represents overlay states within browse mode.
type ViewState int

const (
	ViewGrid ViewState = iota
	ViewHelp
)

const (
	cardWidth      = 26
	cardHeight     = 11
	carouselHeight = 9
	slideWidth     = 24

	// carouselRate is how many cells the strip advances per frame.
	carouselRate = 0.25

	filterDebounce = 300 * time.Millisecond
)

// Model holds the browse mode state.
type Model struct {
	services mode.Services
	keys     keys.KeyMap

	// Featured strip
	carousel carousel.Model
	loop     *rotation.LoopDriver

	// Grid state
	products []*catalog.Product
	cards    []card.Model
	sets     map[string]catalog.ImageSet

	columns     int
	selectedIdx int
	hoveredSlug string
	overStrip   bool

	// Filtering
	searchInput   textinput.Model
	searching     bool
	filterVersion int
	category      catalog.Category

	// Overlays
	view ViewState
	help help.Model

	loadErr error

	width  int
	height int
}

// catalogLoadedMsg carries a reloaded grid and featured strip.
type catalogLoadedMsg struct {
	products []*catalog.Product
	sets     map[string]catalog.ImageSet
	featured []carousel.Slide
	err      error
}

// debounceFilterMsg triggers a reload after the filter debounce delay.
type debounceFilterMsg struct {
	version int
}

// New creates the browse mode controller.
func New(services mode.Services) Model {
	input := textinput.New()
	input.Placeholder = "Search products..."
	input.CharLimit = 60

	return Model{
		services:    services,
		keys:        keys.DefaultKeyMap(),
		carousel:    carousel.New(slideWidth),
		searchInput: input,
		help:        help.New(),
		view:        ViewGrid,
		columns:     1,
	}
}

// Init returns initial commands for the mode.
func (m Model) Init() tea.Cmd {
	return m.loadCatalog()
}

// SetSize handles terminal resize.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	if width == 0 || height == 0 {
		return m
	}

	m.columns = m.gridColumns()
	m.carousel = m.carousel.SetSize(width, carouselHeight)
	m.help = m.help.SetSize(width, height)
	m.searchInput.Width = max(width/3, 20)

	for i := range m.cards {
		m.cards[i] = m.cards[i].SetSize(cardWidth, cardHeight)
	}
	return m
}

// gridColumns derives the column count from config or terminal width.
func (m Model) gridColumns() int {
	if cfg := m.services.Config; cfg != nil && cfg.UI.GridColumns > 0 {
		return cfg.UI.GridColumns
	}
	cols := m.width / (cardWidth + 1)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case catalogLoadedMsg:
		return m.handleCatalogLoaded(msg)

	case debounceFilterMsg:
		if msg.version == m.filterVersion {
			return m, m.loadCatalog()
		}
		return m, nil

	case pubsub.Event[pubsub.RotationUpdate]:
		return m.handleRotationUpdate(msg), nil

	case pubsub.Event[pubsub.CarouselFrame]:
		return m.handleCarouselFrame(msg), nil
	}

	return m, nil
}

// View renders the browse mode.
func (m Model) View() string {
	if m.view == ViewHelp {
		return m.help.Overlay(m.renderMain())
	}
	return m.renderMain()
}

// Teardown releases everything browse holds outside the Bubble Tea loop:
// the carousel loop driver and every grid rotation entity. The app calls
// it when switching away and on catalog reload.
func (m Model) Teardown() Model {
	if m.loop != nil {
		m.loop.Stop()
		m.loop = nil
	}
	for slug := range m.sets {
		m.services.Rotator.Dispose(slug)
	}
	m.hoveredSlug = ""
	return m
}

// Reload re-queries the catalog, used after external database changes.
func (m Model) Reload() (Model, tea.Cmd) {
	return m, m.loadCatalog()
}

// HoveredSlug exposes the current hover target for tests and the app
// status bar.
func (m Model) HoveredSlug() string {
	return m.hoveredSlug
}

// SelectedProduct returns the product under keyboard focus.
func (m Model) SelectedProduct() (catalog.Product, bool) {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.cards) {
		return catalog.Product{}, false
	}
	return m.cards[m.selectedIdx].Product(), true
}

// Category returns the active category filter, empty for all.
func (m Model) Category() catalog.Category {
	return m.category
}

// loadCatalog queries products for the current filter plus the global
// featured set for the carousel.
func (m Model) loadCatalog() tea.Cmd {
	filter := catalog.ListFilter{
		Category: m.category,
		Search:   strings.TrimSpace(m.searchInput.Value()),
	}
	products := m.services.Products
	images := m.services.Images

	return func() tea.Msg {
		list, err := products.List(filter)
		if err != nil {
			return catalogLoadedMsg{err: err}
		}

		sets := make(map[string]catalog.ImageSet, len(list))
		for _, p := range list {
			set, err := images.ImageSet(p.ID, catalog.SizeThumb)
			if err != nil {
				return catalogLoadedMsg{err: err}
			}
			sets[p.Slug] = set
		}

		featured, err := products.List(catalog.ListFilter{Featured: true})
		if err != nil {
			return catalogLoadedMsg{err: err}
		}
		slides := make([]carousel.Slide, 0, len(featured))
		for _, p := range featured {
			set, err := images.ImageSet(p.ID, catalog.SizeFull)
			if err != nil {
				return catalogLoadedMsg{err: err}
			}
			slides = append(slides, carousel.Slide{Product: *p, Art: set.Default().Art})
		}

		return catalogLoadedMsg{products: list, sets: sets, featured: slides}
	}
}

// handleCatalogLoaded rebuilds the grid and the featured strip. Every
// multi-image product re-registers with the rotator; registering an
// existing id disposes it first, so rebuilds never leak timers.
func (m Model) handleCatalogLoaded(msg catalogLoadedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		m.loadErr = msg.err
		log.ErrorErr(log.CatMode, "catalog load failed", msg.err)
		return m, nil
	}
	m.loadErr = nil

	// Entities that vanished from the grid must not keep rotating.
	for slug := range m.sets {
		if _, ok := msg.sets[slug]; !ok {
			m.services.Rotator.Dispose(slug)
		}
	}

	m.products = msg.products
	m.sets = msg.sets
	m.cards = make([]card.Model, len(msg.products))
	for i, p := range msg.products {
		set := msg.sets[p.Slug]
		c := card.New(*p).SetSize(cardWidth, cardHeight)

		if len(set.Images) > 0 {
			refs := make([]rotation.ImageRef, len(set.Images))
			for j, id := range set.Refs() {
				refs[j] = rotation.ImageRef(id)
			}
			m.services.Rotator.Register(p.Slug, refs, rotation.ImageRef(set.Default().ID))

			def := set.Default()
			c = c.SetArt(m.artFor(def), def.Alt).
				SetIndicator(rotation.Project(p.Slug, set.DefaultIndex, len(set.Images)))
		}
		m.cards[i] = c
	}

	if m.selectedIdx >= len(m.cards) {
		m.selectedIdx = max(len(m.cards)-1, 0)
	}
	m.hoveredSlug = ""

	return m.rebuildCarousel(msg.featured), nil
}

// rebuildCarousel swaps the featured slides and restarts the loop driver
// sized for the new track.
func (m Model) rebuildCarousel(slides []carousel.Slide) Model {
	if m.loop != nil {
		m.loop.Stop()
		m.loop = nil
	}

	m.carousel = m.carousel.SetSlides(slides).SetPosition(0).SetPaused(false)
	if len(slides) < 2 {
		return m
	}

	var timings rotation.Timings
	frames := m.services.Frames
	if cfg := m.services.Config; cfg != nil {
		_, _, _, cooldown := cfg.Rotation.Durations()
		timings.ResumeCooldown = cooldown
	}
	count := len(slides)
	m.loop = rotation.NewLoopDriver(rotation.LoopConfig{
		Timings:    timings,
		Rate:       carouselRate,
		SlideWidth: float64(m.carousel.SlideWidth()),
		SlideCount: count,
		OnFrame: func(pos float64) {
			frames.Publish(pubsub.CarouselFrameEvent, pubsub.CarouselFrame{Position: pos})
		},
		OnSnap: func(slide int, _ rotation.Indicator) {
			frames.Publish(pubsub.CarouselSnapEvent, pubsub.CarouselFrame{Slide: slide, Total: count})
		},
	})
	m.loop.Start()
	return m
}

// artFor resolves an image's art through the preview cache, falling back
// to the stored art when the loader is absent.
func (m Model) artFor(img catalog.Image) string {
	if m.services.Preview != nil {
		if art, ok := m.services.Preview.Art(img.ID); ok {
			return art
		}
	}
	return img.Art
}

// handleRotationUpdate projects scheduler events onto the affected card:
// fade start dims the art, commit swaps art and indicator, settle clears
// the dim.
func (m Model) handleRotationUpdate(ev pubsub.Event[pubsub.RotationUpdate]) Model {
	idx := -1
	for i := range m.cards {
		if m.cards[i].Product().Slug == ev.Payload.EntityID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return m
	}

	switch ev.Type {
	case pubsub.TransitionStartedEvent:
		m.cards[idx] = m.cards[idx].SetFading(true)

	case pubsub.ImageCommittedEvent:
		slug := ev.Payload.EntityID
		alt := ""
		var img catalog.Image
		for _, candidate := range m.sets[slug].Images {
			if candidate.ID == ev.Payload.Ref {
				img = candidate
				alt = candidate.Alt
				break
			}
		}
		m.cards[idx] = m.cards[idx].
			SetArt(m.artFor(img), alt).
			SetIndicator(rotation.Project(slug, ev.Payload.Index, ev.Payload.Total))

	case pubsub.TransitionSettledEvent:
		m.cards[idx] = m.cards[idx].SetFading(false)
	}
	return m
}

// handleCarouselFrame applies loop driver positions to the strip.
func (m Model) handleCarouselFrame(ev pubsub.Event[pubsub.CarouselFrame]) Model {
	switch ev.Type {
	case pubsub.CarouselFrameEvent:
		paused := m.loop != nil && m.loop.Paused()
		m.carousel = m.carousel.SetPosition(ev.Payload.Position).SetPaused(paused)
	case pubsub.CarouselSnapEvent:
		m.carousel = m.carousel.
			SetIndicator(rotation.Project(carousel.EntityID, ev.Payload.Slide, ev.Payload.Total)).
			SetPaused(true)
	}
	return m
}

// handleMouse tracks hover transitions across card zones and routes wheel
// events over the featured strip to the loop driver.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.view == ViewHelp {
		return m, nil
	}

	m.overStrip = zone.Get(carousel.ZoneID).InBounds(msg)

	if m.overStrip && msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.nudgeCarousel(rotation.Prev)
			return m, nil
		case tea.MouseButtonWheelDown:
			m.nudgeCarousel(rotation.Next)
			return m, nil
		}
	}

	hovered := ""
	for i := range m.cards {
		slug := m.cards[i].Product().Slug
		if zone.Get(card.ZoneID(slug)).InBounds(msg) {
			hovered = slug
			break
		}
	}

	if hovered != m.hoveredSlug {
		if m.hoveredSlug != "" {
			m.services.Rotator.OnInterestLeave(m.hoveredSlug)
		}
		if hovered != "" {
			m.services.Rotator.OnInterestEnter(hovered)
		}
		m = m.setHovered(hovered)
	}

	if hovered != "" && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		for i := range m.cards {
			if m.cards[i].Product().Slug == hovered {
				m = m.selectCard(i)
				return m, mode.SwitchToDetail(hovered)
			}
		}
	}

	return m, nil
}

// setHovered moves the hover highlight between cards.
func (m Model) setHovered(slug string) Model {
	for i := range m.cards {
		m.cards[i] = m.cards[i].SetHovered(m.cards[i].Product().Slug == slug)
	}
	m.hoveredSlug = slug
	return m
}

// selectCard moves keyboard focus to the card at idx.
func (m Model) selectCard(idx int) Model {
	if idx < 0 || idx >= len(m.cards) {
		return m
	}
	m.cards[m.selectedIdx] = m.cards[m.selectedIdx].SetSelected(false)
	m.selectedIdx = idx
	m.cards[idx] = m.cards[idx].SetSelected(true)
	return m
}

func (m *Model) nudgeCarousel(dir rotation.Direction) {
	if m.loop != nil {
		m.loop.Nudge(dir)
	}
}

// activeSlug is the card rotation operations target: the hovered card
// first, else the keyboard selection.
func (m Model) activeSlug() string {
	if m.hoveredSlug != "" {
		return m.hoveredSlug
	}
	if m.selectedIdx >= 0 && m.selectedIdx < len(m.cards) {
		return m.cards[m.selectedIdx].Product().Slug
	}
	return ""
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.view == ViewHelp {
		if msg.String() == "esc" || msg.String() == "?" {
			m.view = ViewGrid
		}
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.view = ViewHelp
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.selectCard(m.selectedIdx - m.columns), nil

	case key.Matches(msg, m.keys.Down):
		return m.selectCard(m.selectedIdx + m.columns), nil

	case key.Matches(msg, m.keys.Left):
		if m.overStrip {
			m.nudgeCarousel(rotation.Prev)
			return m, nil
		}
		return m.selectCard(m.selectedIdx - 1), nil

	case key.Matches(msg, m.keys.Right):
		if m.overStrip {
			m.nudgeCarousel(rotation.Next)
			return m, nil
		}
		return m.selectCard(m.selectedIdx + 1), nil

	case key.Matches(msg, m.keys.Enter):
		if p, ok := m.SelectedProduct(); ok {
			return m, mode.SwitchToDetail(p.Slug)
		}
		return m, nil

	case key.Matches(msg, m.keys.AddToCart):
		return m.addToCart()

	case key.Matches(msg, m.keys.NextImage):
		if slug := m.activeSlug(); slug != "" {
			m.services.Rotator.Navigate(slug, rotation.Next)
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevImage):
		if slug := m.activeSlug(); slug != "" {
			m.services.Rotator.Navigate(slug, rotation.Prev)
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Category):
		m.category = nextCategory(m.category)
		return m, m.loadCatalog()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadCatalog()

	case key.Matches(msg, m.keys.ToggleCart):
		return m, mode.Switch(mode.ModeCart)

	case key.Matches(msg, m.keys.AdminMode):
		return m, mode.Switch(mode.ModeAdmin)

	case key.Matches(msg, m.keys.Escape):
		if m.category != "" || m.searchInput.Value() != "" {
			m.category = ""
			m.searchInput.SetValue("")
			return m, m.loadCatalog()
		}
		return m, nil
	}

	return m, nil
}

// handleSearchKey routes input to the search box, debouncing reloads the
// same way the hover debounce coalesces pointer passes.
func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, m.loadCatalog()
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, m.loadCatalog()
	}

	oldValue := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	if m.searchInput.Value() != oldValue {
		m.filterVersion++
		version := m.filterVersion
		debounce := tea.Tick(filterDebounce, func(time.Time) tea.Msg {
			return debounceFilterMsg{version: version}
		})
		return m, tea.Batch(cmd, debounce)
	}
	return m, cmd
}

// addToCart puts the focused product in the cart, refusing sold-out stock.
func (m Model) addToCart() (Model, tea.Cmd) {
	p, ok := m.SelectedProduct()
	if !ok {
		return m, nil
	}
	if !p.InStock() {
		return m, func() tea.Msg {
			return mode.ShowToastMsg{Message: p.Name + " is sold out", Style: toaster.StyleWarn}
		}
	}
	m.services.Cart.Add(&p, 1)
	return m, func() tea.Msg {
		return mode.ShowToastMsg{Message: "Added " + p.Name + " to cart", Style: toaster.StyleSuccess}
	}
}

// nextCategory cycles all → apparel → homewares → stationery → accessories.
func nextCategory(c catalog.Category) catalog.Category {
	switch c {
	case "":
		return catalog.CategoryApparel
	case catalog.CategoryApparel:
		return catalog.CategoryHomewares
	case catalog.CategoryHomewares:
		return catalog.CategoryStationery
	case catalog.CategoryStationery:
		return catalog.CategoryAccessories
	default:
		return ""
	}
}

// renderMain renders the carousel strip, the card grid, and the footer.
func (m Model) renderMain() string {
	var sb strings.Builder

	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")

	if m.carousel.SlideCount() > 0 {
		sb.WriteString(m.carousel.View())
		sb.WriteString("\n")
	}

	if m.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(styles.StatusErrorColor).Padding(1, 2)
		sb.WriteString(errStyle.Render("Error: " + m.loadErr.Error()))
		return sb.String()
	}

	sb.WriteString(m.renderGrid())
	return sb.String()
}

// renderHeader shows the filter state, the search box while active, and
// the cart count.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor).Render("Vitrine")

	filter := "all products"
	if m.category != "" {
		filter = string(m.category)
	}
	if q := strings.TrimSpace(m.searchInput.Value()); q != "" && !m.searching {
		filter += fmt.Sprintf(" · %q", q)
	}
	filterText := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Render(filter)

	var search string
	if m.searching {
		search = " " + m.searchInput.View()
	}

	cartText := ""
	if m.services.Cart != nil && m.services.Cart.Len() > 0 {
		cartText = lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).
			Render(fmt.Sprintf("  cart: %d", m.services.Cart.Units()))
	}

	return title + "  " + filterText + search + cartText
}

// renderGrid lays cards out in rows of m.columns.
func (m Model) renderGrid() string {
	if len(m.cards) == 0 {
		empty := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Italic(true).Padding(1, 2)
		return empty.Render("No products match")
	}

	var rows []string
	for start := 0; start < len(m.cards); start += m.columns {
		end := min(start+m.columns, len(m.cards))
		views := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			views = append(views, m.cards[i].View())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, views...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
