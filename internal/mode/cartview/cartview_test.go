package cartview

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vitrine/internal/cart"
	"github.com/zjrosen/vitrine/internal/config"
	"github.com/zjrosen/vitrine/internal/mode"
	"github.com/zjrosen/vitrine/internal/testutil"
	"github.com/zjrosen/vitrine/internal/ui/toaster"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	m.Run()
}

func newTestServices(t *testing.T) mode.Services {
	t.Helper()

	db := testutil.NewTestDB(t)
	testutil.NewBuilder(t, db).WithStandardCatalog().Build()

	cfg := config.Defaults()
	return mode.Services{
		Products: db.ProductRepository(),
		Images:   db.ImageRepository(),
		Orders:   db.OrderRepository(),
		Users:    db.UserRepository(),
		Cart:     cart.New(),
		Config:   &cfg,
	}
}

func addToCart(t *testing.T, services mode.Services, slug string, quantity int) {
	t.Helper()
	p, err := services.Products.FindBySlug(slug)
	require.NoError(t, err)
	services.Cart.Add(p, quantity)
}

func filledModel(t *testing.T, services mode.Services, slugs ...string) Model {
	t.Helper()
	for _, slug := range slugs {
		addToCart(t, services, slug, 1)
	}
	return New(services).SetSize(90, 30)
}

func TestView_EmptyCart(t *testing.T) {
	services := newTestServices(t)
	m := New(services).SetSize(90, 30)

	require.Contains(t, m.View(), "Your cart is empty")
	require.Contains(t, m.View(), "$0.00")
}

func TestView_RendersLinesAndTotal(t *testing.T) {
	services := newTestServices(t)
	m := filledModel(t, services, "wool-scarf", "ceramic-bowl")

	view := zone.Scan(m.View())
	require.Contains(t, view, "Wool Scarf")
	require.Contains(t, view, "Ceramic Bowl")
	require.Contains(t, view, "$29.50")
	require.Contains(t, view, "$42.00")
	require.Contains(t, view, "$71.50")
}

func TestQuantityKeys_AdjustLine(t *testing.T) {
	services := newTestServices(t)
	m := filledModel(t, services, "wool-scarf")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")})
	require.Equal(t, 2, services.Cart.Lines()[0].Quantity)
	require.Equal(t, "59.00", services.Cart.Total().StringFixed(2))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")})
	require.Equal(t, 1, services.Cart.Lines()[0].Quantity)

	// Dropping below one removes the line entirely.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")})
	require.Zero(t, services.Cart.Len())
	require.Zero(t, m.table.RowCount())
}

func TestRemoveKey_DropsLine(t *testing.T) {
	services := newTestServices(t)
	m := filledModel(t, services, "wool-scarf", "canvas-tote")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	require.NotNil(t, cmd)
	toast := cmd().(mode.ShowToastMsg)
	require.Equal(t, toaster.StyleInfo, toast.Style)
	require.Contains(t, toast.Message, "Wool Scarf")

	require.Equal(t, 1, services.Cart.Len())
	require.Equal(t, "Canvas Tote", services.Cart.Lines()[0].ProductName)
}

func TestSelection_StaysInBounds(t *testing.T) {
	services := newTestServices(t)
	m := filledModel(t, services, "wool-scarf", "ceramic-bowl")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	require.Equal(t, 0, m.selected)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	require.Equal(t, 1, m.selected)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	require.Equal(t, 1, m.selected)
}

func TestMouse_ClickSelectsRow(t *testing.T) {
	services := newTestServices(t)
	m := filledModel(t, services, "wool-scarf", "ceramic-bowl")

	// Zone registration runs on a channel worker, so retry the scan.
	var clicked bool
	for retries := 0; retries < 50; retries++ {
		_ = zone.Scan(m.View())
		z := zone.Get(rowZoneID(1))
		if z != nil && !z.IsZero() {
			m, _ = m.Update(tea.MouseMsg{
				X:      z.StartX + 1,
				Y:      z.StartY,
				Action: tea.MouseActionPress,
				Button: tea.MouseButtonLeft,
			})
			clicked = true
			break
		}
		time.Sleep(time.Millisecond)
	}
	require.True(t, clicked, "row zone never registered")
	require.Equal(t, 1, m.selected)
}

func TestCheckout_PlacesGuestOrder(t *testing.T) {
	services := newTestServices(t)
	m := filledModel(t, services, "wool-scarf", "ceramic-bowl")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	done := cmd().(checkoutDoneMsg)
	require.NoError(t, done.err)
	require.Equal(t, "71.50", done.total)

	guest, err := services.Users.FindByEmail("guest@vitrine.local")
	require.NoError(t, err)
	orders, err := services.Orders.ListByUser(guest.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Lines, 2)
	require.Equal(t, "71.50", orders[0].Total().StringFixed(2))

	// The cart empties and stock comes down by the ordered quantity.
	require.Zero(t, services.Cart.Len())
	scarf, err := services.Products.FindBySlug("wool-scarf")
	require.NoError(t, err)
	require.Equal(t, 9, scarf.Stock)

	m, cmd = m.Update(done)
	require.NotNil(t, cmd)
	toast := cmd().(mode.ShowToastMsg)
	require.Equal(t, toaster.StyleSuccess, toast.Style)
	require.Contains(t, toast.Message, "$71.50")
	require.Equal(t, orders[0].ID, m.LastOrderID())
	require.Contains(t, m.View(), "thank you")
}

func TestCheckout_EmptyCartWarns(t *testing.T) {
	services := newTestServices(t)
	m := New(services).SetSize(90, 30)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	toast := cmd().(mode.ShowToastMsg)
	require.Equal(t, toaster.StyleWarn, toast.Style)
}

func TestCheckout_ReusesGuestAccount(t *testing.T) {
	services := newTestServices(t)
	m := filledModel(t, services, "wool-scarf")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NoError(t, cmd().(checkoutDoneMsg).err)

	addToCart(t, services, "canvas-tote", 1)
	m = m.refresh()
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NoError(t, cmd().(checkoutDoneMsg).err)

	users, err := services.Users.List()
	require.NoError(t, err)
	require.Len(t, users, 1, "one guest account across checkouts")

	orders, err := services.Orders.List()
	require.NoError(t, err)
	require.Len(t, orders, 2)
}

func TestEscape_ReturnsToBrowse(t *testing.T) {
	services := newTestServices(t)
	m := filledModel(t, services, "wool-scarf")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	require.NotNil(t, cmd)
	require.Equal(t, mode.ModeBrowse, cmd().(mode.SwitchMsg).Target)
}
