package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vitrine/internal/cart"
	"github.com/zjrosen/vitrine/internal/catalog"
	"github.com/zjrosen/vitrine/internal/config"
	"github.com/zjrosen/vitrine/internal/mode"
	"github.com/zjrosen/vitrine/internal/preview"
	"github.com/zjrosen/vitrine/internal/pubsub"
	"github.com/zjrosen/vitrine/internal/rotation"
	"github.com/zjrosen/vitrine/internal/testutil"
	"github.com/zjrosen/vitrine/internal/ui/toaster"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	m.Run()
}

// newTestServices builds mode services over the standard catalog with a
// manual clock. The rotator runs without a preloader so manual navigation
// commits synchronously.
func newTestServices(t *testing.T) (mode.Services, *rotation.ManualClock) {
	t.Helper()

	db := testutil.NewTestDB(t)
	testutil.NewBuilder(t, db).WithStandardCatalog().Build()

	updates := pubsub.NewBroker[pubsub.RotationUpdate]()
	frames := pubsub.NewBroker[pubsub.CarouselFrame]()
	t.Cleanup(func() {
		updates.Close()
		frames.Close()
	})

	clock := rotation.NewManualClock()
	rot := rotation.New(rotation.Config{
		Clock: clock,
		Sink:  pubsub.NewRotationSink(updates),
	})
	t.Cleanup(rot.DisposeAll)

	cfg := config.Defaults()
	return mode.Services{
		Products: db.ProductRepository(),
		Images:   db.ImageRepository(),
		Orders:   db.OrderRepository(),
		Users:    db.UserRepository(),
		Cart:     cart.New(),
		Rotator:  rot,
		Preview:  preview.NewLoader(db.ImageRepository(), false),
		Updates:  updates,
		Frames:   frames,
		Config:   &cfg,
	}, clock
}

// update unwraps tea.Model back to the concrete root model.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	mm, cmd := m.Update(msg)
	next, ok := mm.(Model)
	require.True(t, ok)
	return next, cmd
}

// loadedApp returns a root model sized and with the browse catalog loaded,
// feeding messages the way the program loop would.
func loadedApp(t *testing.T, services mode.Services) Model {
	t.Helper()
	m := New(services)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(t, m, m.browse.Init()())
	return m
}

func TestNew_SubscribesListeners(t *testing.T) {
	services, _ := newTestServices(t)
	m := New(services)
	defer func() { _ = m.Close() }()

	require.NotNil(t, m.Init())
	require.Equal(t, 1, services.Updates.SubscriberCount())
	require.Equal(t, 1, services.Frames.SubscriberCount())
}

func TestOpensInBrowse(t *testing.T) {
	services, _ := newTestServices(t)
	m := loadedApp(t, services)

	require.Equal(t, mode.ModeBrowse, m.currentMode)
	view := m.View()
	require.Contains(t, view, "Vitrine")
	require.Contains(t, view, "Wool Scarf")
}

func TestSwitchToDetail_LoadsProductAndTearsDownGrid(t *testing.T) {
	services, _ := newTestServices(t)
	m := loadedApp(t, services)
	require.True(t, services.Rotator.Registered("wool-scarf"))

	m, cmd := update(t, m, mode.SwitchMsg{Target: mode.ModeDetail, Slug: "wool-scarf"})
	require.Equal(t, mode.ModeDetail, m.currentMode)
	require.False(t, services.Rotator.Registered("wool-scarf"), "grid entities disposed on switch")

	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	require.Contains(t, m.View(), "Wool Scarf")
	require.True(t, services.Rotator.Registered(m.detail.EntityID()))
}

func TestSwitchBackToBrowse_Reloads(t *testing.T) {
	services, _ := newTestServices(t)
	m := loadedApp(t, services)

	m, cmd := update(t, m, mode.SwitchMsg{Target: mode.ModeDetail, Slug: "wool-scarf"})
	m, _ = update(t, m, cmd())
	entityID := m.detail.EntityID()

	m, cmd = update(t, m, mode.SwitchMsg{Target: mode.ModeBrowse})
	require.Equal(t, mode.ModeBrowse, m.currentMode)
	require.False(t, services.Rotator.Registered(entityID), "detail entity disposed on switch")

	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	require.True(t, services.Rotator.Registered("wool-scarf"), "reload re-registers the grid")
	require.Contains(t, m.View(), "Ceramic Bowl")
}

func TestSwitch_SameModeIgnored(t *testing.T) {
	services, _ := newTestServices(t)
	m := loadedApp(t, services)

	_, cmd := update(t, m, mode.SwitchMsg{Target: mode.ModeBrowse})
	require.Nil(t, cmd)
}

func TestSwitchToCart_ShowsCartContents(t *testing.T) {
	services, _ := newTestServices(t)
	m := loadedApp(t, services)

	p, err := services.Products.FindBySlug("wool-scarf")
	require.NoError(t, err)
	services.Cart.Add(p, 2)

	m, _ = update(t, m, mode.SwitchMsg{Target: mode.ModeCart})
	require.Equal(t, mode.ModeCart, m.currentMode)
	require.Contains(t, m.View(), "Wool Scarf")
	require.Contains(t, m.View(), "$59.00")
}

func TestSwitchToAdmin_LoadsBackOffice(t *testing.T) {
	services, _ := newTestServices(t)
	m := loadedApp(t, services)

	m, cmd := update(t, m, mode.SwitchMsg{Target: mode.ModeAdmin})
	require.Equal(t, mode.ModeAdmin, m.currentMode)
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	require.Contains(t, m.View(), "back office")
}

func TestToast_ShowsAndDismisses(t *testing.T) {
	services, _ := newTestServices(t)
	m := loadedApp(t, services)

	m, cmd := update(t, m, mode.ShowToastMsg{Message: "saved", Style: toaster.StyleSuccess})
	require.NotNil(t, cmd, "a dismiss is scheduled")
	require.Contains(t, m.View(), "saved")

	m, _ = update(t, m, toaster.DismissMsg{})
	require.NotContains(t, m.View(), "saved")
}

func TestRotationUpdate_ProjectsAndRearms(t *testing.T) {
	services, _ := newTestServices(t)
	m := loadedApp(t, services)

	// Without a preloader manual navigation commits synchronously, so the
	// event is already buffered when the listener runs.
	services.Rotator.Navigate("wool-scarf", rotation.Next)
	msg := m.updates.Listen()()
	ev, ok := msg.(pubsub.Event[pubsub.RotationUpdate])
	require.True(t, ok)
	require.Equal(t, pubsub.ImageCommittedEvent, ev.Type)
	require.Equal(t, "wool-scarf", ev.Payload.EntityID)
	require.Equal(t, 1, ev.Payload.Index)

	_, cmd := update(t, m, ev)
	require.NotNil(t, cmd, "the listener re-arms after each event")
}

func TestCatalogChanged_ReloadsBrowse(t *testing.T) {
	services, _ := newTestServices(t)
	m := loadedApp(t, services)

	p := catalog.NewProduct("Velvet Cushion", decimal.RequireFromString("33.00"), catalog.CategoryHomewares)
	require.NoError(t, services.Products.Save(p))

	m, cmd := update(t, m, catalogChangedMsg{})
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	require.Contains(t, m.View(), "Velvet Cushion")
}

func TestStatusBar_ShowsCartSummary(t *testing.T) {
	services, _ := newTestServices(t)
	m := loadedApp(t, services)

	p, err := services.Products.FindBySlug("ceramic-bowl")
	require.NoError(t, err)
	services.Cart.Add(p, 1)

	require.Contains(t, m.View(), "cart 1 · $42.00")
}

func TestWindowSize_Propagates(t *testing.T) {
	services, _ := newTestServices(t)
	m := loadedApp(t, services)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	require.Equal(t, 80, m.width)
	require.Equal(t, 24, m.height)
}

func TestClose_ReleasesRotationState(t *testing.T) {
	services, _ := newTestServices(t)
	m := loadedApp(t, services)
	require.True(t, services.Rotator.Registered("wool-scarf"))

	require.NoError(t, m.Close())
	require.False(t, services.Rotator.Registered("wool-scarf"))
	require.Zero(t, services.Rotator.ActiveTimerCount())
}
