// Package mode defines the mode controller interface and shared services.
package mode

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/vitrine/internal/cart"
	"github.com/zjrosen/vitrine/internal/catalog"
	"github.com/zjrosen/vitrine/internal/config"
	"github.com/zjrosen/vitrine/internal/preview"
	"github.com/zjrosen/vitrine/internal/pubsub"
	"github.com/zjrosen/vitrine/internal/rotation"
	"github.com/zjrosen/vitrine/internal/ui/toaster"
)

// AppMode identifies the current application mode.
type AppMode int

const (
	ModeBrowse AppMode = iota
	ModeDetail
	ModeCart
	ModeAdmin
)

// Controller defines the interface all modes must implement.
type Controller interface {
	// Init returns initial commands for the mode.
	Init() tea.Cmd

	// Update handles messages and returns updated model and commands.
	Update(msg tea.Msg) (Controller, tea.Cmd)

	// View renders the mode's UI.
	View() string

	// SetSize handles terminal resize events.
	SetSize(width, height int) Controller
}

// SwitchMsg requests a mode change. Modes emit it; the app model owns the
// actual switch.
type SwitchMsg struct {
	Target AppMode

	// Slug selects the product when switching to detail mode.
	Slug string
}

// Switch returns a command that switches to the target mode.
func Switch(target AppMode) tea.Cmd {
	return func() tea.Msg {
		return SwitchMsg{Target: target}
	}
}

// SwitchToDetail returns a command that opens one product's detail page.
func SwitchToDetail(slug string) tea.Cmd {
	return func() tea.Msg {
		return SwitchMsg{Target: ModeDetail, Slug: slug}
	}
}

// ShowToastMsg asks the app to flash a toast notification. Modes emit it;
// the app model owns the toaster.
type ShowToastMsg struct {
	Message string
	Style   toaster.Style
}

// Services contains shared dependencies injected into mode controllers.
type Services struct {
	Products catalog.ProductRepository
	Images   catalog.ImageRepository
	Orders   catalog.OrderRepository
	Users    catalog.UserRepository

	Cart    *cart.Cart
	Rotator *rotation.Rotator
	Preview *preview.Loader

	// Updates carries rotation lifecycle events from scheduler timers into
	// the Bubble Tea loop.
	Updates *pubsub.Broker[pubsub.RotationUpdate]

	// Frames carries carousel loop positions from the loop driver into the
	// Bubble Tea loop.
	Frames *pubsub.Broker[pubsub.CarouselFrame]

	Config     *config.Config
	ConfigPath string
	DBPath     string
}
