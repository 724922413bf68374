package admin

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/vitrine/internal/cart"
	"github.com/zjrosen/vitrine/internal/catalog"
	"github.com/zjrosen/vitrine/internal/config"
	"github.com/zjrosen/vitrine/internal/mode"
	"github.com/zjrosen/vitrine/internal/testutil"
	"github.com/zjrosen/vitrine/internal/ui/form"
	"github.com/zjrosen/vitrine/internal/ui/modal"
	"github.com/zjrosen/vitrine/internal/ui/toaster"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	m.Run()
}

func newTestServices(t *testing.T) mode.Services {
	t.Helper()

	db := testutil.NewTestDB(t)
	testutil.NewBuilder(t, db).
		WithStandardCatalog().
		WithStandardUsers().
		Build()

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

// update unwraps the mode.Controller interface back to the concrete model.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	ctrl, cmd := m.Update(msg)
	next, ok := ctrl.(Model)
	require.True(t, ok)
	return next, cmd
}

func loadedModel(t *testing.T, services mode.Services) Model {
	t.Helper()
	m := New(services).SetSize(120, 40).(Model)
	m, _ = update(t, m, m.Init()())
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLoad_PopulatesAllTabs(t *testing.T) {
	services := newTestServices(t)
	m := loadedModel(t, services)

	require.Len(t, m.products, 6)
	require.Len(t, m.orders, 1)
	require.Len(t, m.users, 2)
	require.Len(t, m.images, 12)
}

func TestTabKeys_Cycle(t *testing.T) {
	services := newTestServices(t)
	m := loadedModel(t, services)

	m, _ = update(t, m, keyRunes("]"))
	require.Equal(t, TabOrders, m.tab)
	m, _ = update(t, m, keyRunes("]"))
	require.Equal(t, TabUsers, m.tab)

	m, _ = update(t, m, keyRunes("["))
	require.Equal(t, TabOrders, m.tab)

	// Wrapping backwards from the first tab lands on the last.
	m.tab = TabProducts
	m, _ = update(t, m, keyRunes("["))
	require.Equal(t, TabImages, m.tab)
}

func TestNewProduct_Saved(t *testing.T) {
	services := newTestServices(t)
	m := loadedModel(t, services)

	m, _ = update(t, m, keyRunes("n"))
	require.NotNil(t, m.editor)

	m, cmd := update(t, m, form.SubmitMsg{Values: map[string]string{
		"name":        "Velvet Cushion",
		"price":       "33.00",
		"stock":       "4",
		"category":    "homewares",
		"featured":    "no",
		"description": "Plush velvet cushion.",
	}})
	require.Nil(t, m.editor)
	require.NotNil(t, cmd)

	p, err := services.Products.FindBySlug("velvet-cushion")
	require.NoError(t, err)
	require.Equal(t, "33.00", p.Price.StringFixed(2))
	require.Equal(t, 4, p.Stock)
	require.Equal(t, catalog.CategoryHomewares, p.Category)
}

func TestEditProduct_InvalidPriceKeepsFormOpen(t *testing.T) {
	services := newTestServices(t)
	m := loadedModel(t, services)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.editor)

	m, cmd := update(t, m, form.SubmitMsg{Values: map[string]string{
		"name":        "Brass Keyring",
		"price":       "abc",
		"stock":       "0",
		"category":    "accessories",
		"featured":    "no",
		"description": "",
	}})
	require.Nil(t, cmd)
	require.NotNil(t, m.editor, "validation failure keeps the form open")
	require.Contains(t, m.View(), "not a number")
}

func TestEditProduct_UpdatesFields(t *testing.T) {
	services := newTestServices(t)
	m := loadedModel(t, services)

	// Products list alphabetically; index 0 is the keyring.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, form.SubmitMsg{Values: map[string]string{
		"name":        "Brass Keyring",
		"price":       "11.00",
		"stock":       "6",
		"category":    "accessories",
		"featured":    "yes",
		"description": "Solid brass keyring.",
	}})
	require.Nil(t, m.editor)

	p, err := services.Products.FindBySlug("brass-keyring")
	require.NoError(t, err)
	require.Equal(t, "11.00", p.Price.StringFixed(2))
	require.Equal(t, 6, p.Stock)
	require.True(t, p.Featured)
	require.Equal(t, "brass-keyring", p.Slug, "slug survives edits")
}

func TestOrderStatus_Transitions(t *testing.T) {
	services := newTestServices(t)
	m := loadedModel(t, services)
	m.tab = TabOrders
	orderID := m.orders[0].ID

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.editor)
	m, _ = update(t, m, form.SubmitMsg{Values: map[string]string{"status": "cancelled"}})
	require.Nil(t, m.editor)

	o, err := services.Orders.FindByID(orderID)
	require.NoError(t, err)
	require.Equal(t, catalog.OrderStatusCancelled, o.Status)
}

func TestOrderStatus_TerminalRejected(t *testing.T) {
	services := newTestServices(t)
	m := loadedModel(t, services)
	m.tab = TabOrders

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, form.SubmitMsg{Values: map[string]string{"status": "cancelled"}})
	m, _ = update(t, m, m.loadRecords()())

	// Cancelled is terminal; trying to revive the order fails in the form.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, form.SubmitMsg{Values: map[string]string{"status": "paid"}})
	require.Nil(t, cmd)
	require.NotNil(t, m.editor, "invalid transition keeps the form open")
}

func TestDeleteUser_Confirmed(t *testing.T) {
	services := newTestServices(t)
	m := loadedModel(t, services)
	m.tab = TabUsers

	// Users list by email; bob is second and has no orders.
	m, _ = update(t, m, keyRunes("j"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	require.NotNil(t, m.confirm)

	m, cmd := update(t, m, modal.SubmitMsg{})
	require.Nil(t, m.confirm)
	require.NotNil(t, cmd)

	users, err := services.Users.List()
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "alice@example.com", users[0].Email)
}

func TestDeleteCancelled_KeepsRecord(t *testing.T) {
	services := newTestServices(t)
	m := loadedModel(t, services)
	m.tab = TabUsers

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlD})
	require.NotNil(t, m.confirm)
	m, _ = update(t, m, modal.CancelMsg{})
	require.Nil(t, m.confirm)

	users, err := services.Users.List()
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func TestNewImage_AppendsAtNextPosition(t *testing.T) {
	services := newTestServices(t)
	m := loadedModel(t, services)
	m.tab = TabImages

	m, _ = update(t, m, keyRunes("n"))
	require.NotNil(t, m.editor)
	m, _ = update(t, m, form.SubmitMsg{Values: map[string]string{
		"product": "wool-scarf",
		"size":    "thumb",
		"alt":     "scarf rolled",
		"art":     "@@@@\n@@@@",
	}})
	require.Nil(t, m.editor)

	p, err := services.Products.FindBySlug("wool-scarf")
	require.NoError(t, err)
	set, err := services.Images.ImageSet(p.ID, catalog.SizeThumb)
	require.NoError(t, err)
	require.Len(t, set.Images, 4)
	require.Equal(t, "wool-scarf-thumb-3", set.Images[3].ID)
	require.Equal(t, 3, set.Images[3].Position)
}

func TestYank_ShowsRecordID(t *testing.T) {
	services := newTestServices(t)
	m := loadedModel(t, services)

	_, cmd := update(t, m, keyRunes("y"))
	require.NotNil(t, cmd)
	toast := cmd().(mode.ShowToastMsg)
	require.Equal(t, toaster.StyleInfo, toast.Style)
	require.Contains(t, toast.Message, m.products[0].ID)
}

func TestSwitchMode_ReturnsToStore(t *testing.T) {
	services := newTestServices(t)
	m := loadedModel(t, services)

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlA})
	require.NotNil(t, cmd)
	require.Equal(t, mode.ModeBrowse, cmd().(mode.SwitchMsg).Target)
}

func TestHelpOverlay(t *testing.T) {
	services := newTestServices(t)
	m := loadedModel(t, services)

	m, _ = update(t, m, keyRunes("?"))
	require.Contains(t, m.View(), "Admin Keybindings")

	m, _ = update(t, m, keyRunes("j"))
	require.NotContains(t, m.View(), "Admin Keybindings", "any key closes help")
}

func TestView_RendersTabsAndRows(t *testing.T) {
	services := newTestServices(t)
	m := loadedModel(t, services)

	view := zone.Scan(m.View())
	require.Contains(t, view, "back office")
	require.Contains(t, view, "Products")
	require.Contains(t, view, "Wool Scarf")
	require.Contains(t, view, "$29.50")
}

func TestEditOverlay_ShowsDescriptionDiff(t *testing.T) {
	services := newTestServices(t)
	m := loadedModel(t, services)

	// Index 0 is the keyring with an empty description.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.editor)

	// Tab to the description textarea (last field) and type.
	for range 5 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	m, _ = update(t, m, keyRunes("S"))

	require.Contains(t, m.View(), "Description changes")
}
