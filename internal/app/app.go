// Package app contains the root application model. It owns mode switching,
// the toast overlay, the pubsub listeners that feed rotation and carousel
// events into the Bubble Tea loop, and the database watcher for live reload.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/vitrine/internal/log"
	"github.com/zjrosen/vitrine/internal/mode"
	"github.com/zjrosen/vitrine/internal/mode/admin"
	"github.com/zjrosen/vitrine/internal/mode/browse"
	"github.com/zjrosen/vitrine/internal/mode/cartview"
	"github.com/zjrosen/vitrine/internal/mode/detail"
	"github.com/zjrosen/vitrine/internal/pubsub"
	"github.com/zjrosen/vitrine/internal/ui/styles"
	"github.com/zjrosen/vitrine/internal/ui/toaster"
	"github.com/zjrosen/vitrine/internal/watcher"
)

const toastDuration = 3 * time.Second

// catalogChangedMsg signals an external write to the catalog database.
type catalogChangedMsg struct{}

// Model is the root application state.
type Model struct {
	// Mode management. Browse persists across switches so grid position and
	// filters survive; the other modes are rebuilt on entry.
	currentMode mode.AppMode
	browse      browse.Model
	detail      detail.Model
	cart        cartview.Model
	admin       mode.Controller

	// The detail slug is remembered so a catalog reload can rebuild the page.
	detailSlug string

	// Shared services (passed to mode controllers)
	services mode.Services

	width  int
	height int

	// Centralized toaster - owned by app, not individual modes
	toaster toaster.Model

	// Pubsub listeners bridging scheduler timers into the update loop
	listenerCtx    context.Context
	listenerCancel context.CancelFunc
	updates        *pubsub.ContinuousListener[pubsub.RotationUpdate]
	frames         *pubsub.ContinuousListener[pubsub.CarouselFrame]

	// File watcher for auto-refresh
	watcherHandle *watcher.Watcher
	watcherCh     <-chan struct{}
}

// New creates the root application model. The database watcher starts only
// when auto-refresh is enabled and a database path is known; the app works
// without live reload, so watcher init errors are not fatal.
func New(services mode.Services) Model {
	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		currentMode:    mode.ModeBrowse,
		browse:         browse.New(services),
		services:       services,
		toaster:        toaster.New(),
		listenerCtx:    ctx,
		listenerCancel: cancel,
	}

	if services.Updates != nil {
		m.updates = pubsub.NewContinuousListener(ctx, services.Updates)
	}
	if services.Frames != nil {
		m.frames = pubsub.NewContinuousListener(ctx, services.Frames)
	}

	if cfg := services.Config; cfg != nil && cfg.AutoRefresh && services.DBPath != "" {
		w, err := watcher.New(watcher.DefaultConfig(services.DBPath))
		if err != nil {
			log.Warn(log.CatWatcher, "watcher init failed", "error", err)
			return m
		}
		ch, err := w.Start()
		if err != nil {
			log.Warn(log.CatWatcher, "watcher start failed", "error", err)
			_ = w.Stop()
			return m
		}
		m.watcherHandle = w
		m.watcherCh = ch
	}

	return m
}

// Init implements tea.Model. The app opens in browse mode with both pubsub
// listeners armed.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.browse.Init()}

	if m.updates != nil {
		cmds = append(cmds, m.updates.Listen())
	}
	if m.frames != nil {
		cmds = append(cmds, m.frames.Listen())
	}
	if m.watcherCh != nil {
		cmds = append(cmds, m.watchCatalog())
	}
	return tea.Batch(cmds...)
}

// watchCatalog waits for the next debounced database change.
func (m Model) watchCatalog() tea.Cmd {
	ctx := m.listenerCtx
	ch := m.watcherCh
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ch:
			if !ok {
				return nil
			}
			return catalogChangedMsg{}
		}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.toaster = m.toaster.SetSize(msg.Width, msg.Height)
		m.browse = m.browse.SetSize(msg.Width, msg.Height)
		switch m.currentMode {
		case mode.ModeDetail:
			m.detail = m.detail.SetSize(msg.Width, msg.Height)
		case mode.ModeCart:
			m.cart = m.cart.SetSize(msg.Width, msg.Height)
		case mode.ModeAdmin:
			m.admin = m.admin.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case pubsub.Event[pubsub.RotationUpdate]:
		// Scheduler timers fire outside the loop; the active mode projects
		// the event onto its view, then the listener re-arms.
		next, cmd := m.delegate(msg)
		if next.updates != nil {
			cmd = tea.Batch(cmd, next.updates.Listen())
		}
		return next, cmd

	case pubsub.Event[pubsub.CarouselFrame]:
		next, cmd := m.delegate(msg)
		if next.frames != nil {
			cmd = tea.Batch(cmd, next.frames.Listen())
		}
		return next, cmd

	case catalogChangedMsg:
		return m.handleCatalogChanged()

	case mode.SwitchMsg:
		return m.switchTo(msg)

	case mode.ShowToastMsg:
		m.toaster = m.toaster.Show(msg.Message, msg.Style)
		return m, toaster.ScheduleDismiss(toastDuration)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Hide()
		return m, nil
	}

	return m.delegate(msg)
}

// delegate routes a message to the active mode controller.
func (m Model) delegate(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentMode {
	case mode.ModeDetail:
		m.detail, cmd = m.detail.Update(msg)
	case mode.ModeCart:
		m.cart, cmd = m.cart.Update(msg)
	case mode.ModeAdmin:
		m.admin, cmd = m.admin.Update(msg)
	default:
		m.browse, cmd = m.browse.Update(msg)
	}
	return m, cmd
}

// switchTo tears down the outgoing mode's rotation state and activates the
// target. Returning to browse re-queries the catalog so edits made in the
// back office and stock changes from checkout show up immediately.
func (m Model) switchTo(msg mode.SwitchMsg) (Model, tea.Cmd) {
	if msg.Target == m.currentMode && msg.Target != mode.ModeDetail {
		return m, nil
	}

	log.Info(log.CatMode, "switching mode",
		"from", modeName(m.currentMode), "to", modeName(msg.Target), "slug", msg.Slug)

	switch m.currentMode {
	case mode.ModeBrowse:
		m.browse = m.browse.Teardown()
	case mode.ModeDetail:
		m.detail = m.detail.Teardown()
	}

	m.currentMode = msg.Target
	switch msg.Target {
	case mode.ModeBrowse:
		var cmd tea.Cmd
		m.browse, cmd = m.browse.Reload()
		return m, cmd

	case mode.ModeDetail:
		m.detailSlug = msg.Slug
		m.detail = detail.New(m.services, msg.Slug).SetSize(m.width, m.height)
		return m, m.detail.Init()

	case mode.ModeCart:
		m.cart = cartview.New(m.services).SetSize(m.width, m.height)
		return m, m.cart.Init()

	case mode.ModeAdmin:
		m.admin = admin.New(m.services).SetSize(m.width, m.height)
		return m, m.admin.Init()
	}
	return m, nil
}

// handleCatalogChanged reacts to an external database write: the preview
// cache is flushed and the active mode rebuilt from fresh queries.
func (m Model) handleCatalogChanged() (Model, tea.Cmd) {
	log.Info(log.CatWatcher, "catalog changed on disk, reloading", "mode", modeName(m.currentMode))

	if m.services.Preview != nil {
		m.services.Preview.Flush()
	}

	var cmd tea.Cmd
	switch m.currentMode {
	case mode.ModeBrowse:
		m.browse = m.browse.Teardown()
		m.browse, cmd = m.browse.Reload()

	case mode.ModeDetail:
		m.detail = m.detail.Teardown()
		m.detail = detail.New(m.services, m.detailSlug).SetSize(m.width, m.height)
		cmd = m.detail.Init()

	case mode.ModeCart:
		m.cart = cartview.New(m.services).SetSize(m.width, m.height)
		cmd = m.cart.Init()

	case mode.ModeAdmin:
		m.admin = admin.New(m.services).SetSize(m.width, m.height)
		cmd = m.admin.Init()
	}

	if m.watcherCh != nil {
		return m, tea.Batch(cmd, m.watchCatalog())
	}
	return m, cmd
}

// View implements tea.Model. The whole frame passes through zone.Scan so
// hover and click hit testing stays in sync with what is on screen.
func (m Model) View() string {
	var view string
	switch m.currentMode {
	case mode.ModeDetail:
		view = m.detail.View()
	case mode.ModeCart:
		view = m.cart.View()
	case mode.ModeAdmin:
		view = m.admin.View()
	default:
		view = m.browse.View()
	}

	if cfg := m.services.Config; cfg != nil && cfg.UI.ShowStatusBar {
		view = lipgloss.JoinVertical(lipgloss.Left, view, m.statusBar())
	}

	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}

	return zone.Scan(view)
}

// statusBar shows the active mode, the cart summary, and the hovered card.
func (m Model) statusBar() string {
	muted := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	parts := []string{muted.Render("[" + modeName(m.currentMode) + "]")}

	if c := m.services.Cart; c != nil && c.Len() > 0 {
		parts = append(parts, muted.Render(
			fmt.Sprintf("cart %d · $%s", c.Units(), c.Total().StringFixed(2))))
	}

	if m.currentMode == mode.ModeBrowse {
		if slug := m.browse.HoveredSlug(); slug != "" {
			parts = append(parts, muted.Render(slug))
		}
	}

	return strings.Join(parts, "  ")
}

func modeName(am mode.AppMode) string {
	switch am {
	case mode.ModeDetail:
		return "detail"
	case mode.ModeCart:
		return "cart"
	case mode.ModeAdmin:
		return "admin"
	default:
		return "browse"
	}
}

// Close releases resources held by the application: pubsub subscriptions,
// every live rotation timer, and the database watcher.
func (m *Model) Close() error {
	m.listenerCancel()

	switch m.currentMode {
	case mode.ModeBrowse:
		m.browse = m.browse.Teardown()
	case mode.ModeDetail:
		m.detail = m.detail.Teardown()
	}
	if m.services.Rotator != nil {
		m.services.Rotator.DisposeAll()
	}

	if m.watcherHandle != nil {
		return m.watcherHandle.Stop()
	}
	return nil
}
