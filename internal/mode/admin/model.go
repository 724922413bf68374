// Package admin implements the back-office TUI mode.
//
// The back office provides tabbed CRUD over the catalog:
//   - Products: create, edit (with a live description diff), delete
//   - Orders: inspect, advance status, delete
//   - Users: create, edit, delete
//   - Images: attach art to products, retitle, delete
package admin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/shopspring/decimal"

	"github.com/zjrosen/vitrine/internal/catalog"
	"github.com/zjrosen/vitrine/internal/keys"
	"github.com/zjrosen/vitrine/internal/log"
	"github.com/zjrosen/vitrine/internal/mode"
	"github.com/zjrosen/vitrine/internal/ui/form"
	"github.com/zjrosen/vitrine/internal/ui/help"
	"github.com/zjrosen/vitrine/internal/ui/modal"
	"github.com/zjrosen/vitrine/internal/ui/shared/table"
	"github.com/zjrosen/vitrine/internal/ui/toaster"
)

// Tab identifies a back-office record collection.
type Tab int

const (
	TabProducts Tab = iota
	TabOrders
	TabUsers
	TabImages
)

var tabTitles = [...]string{"Products", "Orders", "Users", "Images"}

func (t Tab) String() string { return tabTitles[t] }

func tabZoneID(t Tab) string { return fmt.Sprintf("admin:tab:%d", t) }

func rowZoneID(i int) string { return fmt.Sprintf("admin:row:%d", i) }

// imageRow pairs an image with its owning product for list rendering.
type imageRow struct {
	product *catalog.Product
	image   catalog.Image
}

// recordsLoadedMsg carries a full snapshot of the back-office data.
type recordsLoadedMsg struct {
	products []*catalog.Product
	orders   []*catalog.Order
	users    []*catalog.User
	images   []imageRow
	err      error
}

// editTarget tracks what the open form edits. An empty id means create.
type editTarget struct {
	tab Tab
	id  string

	// savedDescription feeds the live diff panel on product forms.
	savedDescription string
}

// Model holds the back-office mode state. It implements mode.Controller.
type Model struct {
	services mode.Services
	keys     keys.AdminKeyMap

	tab      Tab
	selected [len(tabTitles)]int
	tables   [len(tabTitles)]table.Model

	products []*catalog.Product
	orders   []*catalog.Order
	users    []*catalog.User
	images   []imageRow

	// editor is non-nil while a record form is open.
	editor *form.Model
	target editTarget

	// confirm is non-nil while a delete confirmation is open.
	confirm   *modal.Model
	deleteTab Tab
	deleteID  string

	showHelp bool
	help     help.Model
	loadErr  error

	width  int
	height int
}

// New creates the back-office mode.
func New(services mode.Services) Model {
	m := Model{
		services: services,
		keys:     keys.DefaultAdminKeyMap(),
		help:     help.NewAdmin(),
	}
	m.tables[TabProducts] = table.New(m.productTableConfig())
	m.tables[TabOrders] = table.New(m.orderTableConfig())
	m.tables[TabUsers] = table.New(m.userTableConfig())
	m.tables[TabImages] = table.New(m.imageTableConfig())
	return m
}

// Init loads the record snapshot.
func (m Model) Init() tea.Cmd {
	return m.loadRecords()
}

// SetSize handles terminal resize events.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	m.help = m.help.SetSize(width, height)
	tableHeight := max(height-5, 6)
	for i := range m.tables {
		m.tables[i] = m.tables[i].SetSize(width, tableHeight)
	}
	return m
}

// loadRecords snapshots every repository for the tab tables.
func (m Model) loadRecords() tea.Cmd {
	products := m.services.Products
	orders := m.services.Orders
	users := m.services.Users
	imageRepo := m.services.Images
	return func() tea.Msg {
		prods, err := products.List(catalog.ListFilter{})
		if err != nil {
			return recordsLoadedMsg{err: err}
		}
		ords, err := orders.List()
		if err != nil {
			return recordsLoadedMsg{err: err}
		}
		us, err := users.List()
		if err != nil {
			return recordsLoadedMsg{err: err}
		}

		var imgs []imageRow
		for _, p := range prods {
			for _, size := range []catalog.SizeClass{catalog.SizeThumb, catalog.SizeFull} {
				set, err := imageRepo.ImageSet(p.ID, size)
				if err != nil {
					return recordsLoadedMsg{err: err}
				}
				for _, img := range set.Images {
					imgs = append(imgs, imageRow{product: p, image: img})
				}
			}
		}
		return recordsLoadedMsg{products: prods, orders: ords, users: us, images: imgs}
	}
}

// Update handles messages and returns the updated controller.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsLoadedMsg:
		return m.handleRecordsLoaded(msg)

	case form.SubmitMsg:
		if m.editor != nil {
			return m.handleFormSubmit(msg)
		}
		return m, nil

	case form.CancelMsg:
		m.editor = nil
		return m, nil

	case modal.SubmitMsg:
		if m.confirm != nil {
			return m.handleDeleteConfirmed()
		}
		return m, nil

	case modal.CancelMsg:
		m.confirm = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	if m.editor != nil {
		editor, cmd := m.editor.Update(msg)
		m.editor = &editor
		return m, cmd
	}
	return m, nil
}

func (m Model) handleRecordsLoaded(msg recordsLoadedMsg) (mode.Controller, tea.Cmd) {
	if msg.err != nil {
		m.loadErr = msg.err
		log.ErrorErr(log.CatAdmin, "record load failed", msg.err)
		return m, nil
	}
	m.loadErr = nil
	m.products = msg.products
	m.orders = msg.orders
	m.users = msg.users
	m.images = msg.images

	m.tables[TabProducts] = m.tables[TabProducts].SetRows(toRows(msg.products))
	m.tables[TabOrders] = m.tables[TabOrders].SetRows(toRows(msg.orders))
	m.tables[TabUsers] = m.tables[TabUsers].SetRows(toRows(msg.users))
	m.tables[TabImages] = m.tables[TabImages].SetRows(toRows(msg.images))

	for t := range m.selected {
		if m.selected[t] >= m.tables[t].RowCount() {
			m.selected[t] = max(m.tables[t].RowCount()-1, 0)
		}
	}
	return m, nil
}

func toRows[T any](items []T) []any {
	rows := make([]any, len(items))
	for i, item := range items {
		rows[i] = item
	}
	return rows
}

func (m Model) handleKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	if m.editor != nil {
		editor, cmd := m.editor.Update(msg)
		m.editor = &editor
		return m, cmd
	}
	if m.confirm != nil {
		confirm, cmd := m.confirm.Update(msg)
		m.confirm = &confirm
		return m, cmd
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.SwitchMode), key.Matches(msg, m.keys.Escape):
		return m, mode.Switch(mode.ModeBrowse)

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % Tab(len(tabTitles))
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab - 1 + Tab(len(tabTitles))) % Tab(len(tabTitles))
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected[m.tab] > 0 {
			m.selected[m.tab]--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected[m.tab] < m.tables[m.tab].RowCount()-1 {
			m.selected[m.tab]++
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		return m.openCreateForm()

	case key.Matches(msg, m.keys.Edit):
		return m.openEditForm()

	case key.Matches(msg, m.keys.Delete):
		return m.openDeleteConfirm()

	case key.Matches(msg, m.keys.Yank):
		if id, ok := m.selectedID(); ok {
			return m, toast(fmt.Sprintf("id: %s", id), toaster.StyleInfo)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (mode.Controller, tea.Cmd) {
	if m.editor != nil || m.confirm != nil || m.showHelp {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for t := range tabTitles {
		if zone.Get(tabZoneID(Tab(t))).InBounds(msg) {
			m.tab = Tab(t)
			return m, nil
		}
	}
	for i := 0; i < m.tables[m.tab].RowCount(); i++ {
		if zone.Get(rowZoneID(i)).InBounds(msg) {
			m.selected[m.tab] = i
			return m, nil
		}
	}
	return m, nil
}

// selectedID returns the id of the highlighted record on the active tab.
func (m Model) selectedID() (string, bool) {
	idx := m.selected[m.tab]
	switch m.tab {
	case TabProducts:
		if idx < len(m.products) {
			return m.products[idx].ID, true
		}
	case TabOrders:
		if idx < len(m.orders) {
			return m.orders[idx].ID, true
		}
	case TabUsers:
		if idx < len(m.users) {
			return m.users[idx].ID, true
		}
	case TabImages:
		if idx < len(m.images) {
			return m.images[idx].image.ID, true
		}
	}
	return "", false
}

func (m Model) openDeleteConfirm() (mode.Controller, tea.Cmd) {
	id, ok := m.selectedID()
	if !ok {
		return m, nil
	}
	var label string
	switch m.tab {
	case TabProducts:
		label = m.products[m.selected[m.tab]].Name
	case TabOrders:
		label = "order " + shortID(id)
	case TabUsers:
		label = m.users[m.selected[m.tab]].Email
	case TabImages:
		label = m.images[m.selected[m.tab]].image.ID
	}

	confirm := modal.New(modal.Config{
		Title:          "Delete " + strings.TrimSuffix(m.tab.String(), "s"),
		Message:        fmt.Sprintf("Delete %s? This cannot be undone.", label),
		ConfirmVariant: modal.ButtonDanger,
	})
	confirm.SetSize(m.width, m.height)
	m.confirm = &confirm
	m.deleteTab = m.tab
	m.deleteID = id
	return m, nil
}

func (m Model) handleDeleteConfirmed() (mode.Controller, tea.Cmd) {
	m.confirm = nil
	var err error
	switch m.deleteTab {
	case TabProducts:
		err = m.services.Products.Delete(m.deleteID)
	case TabOrders:
		err = m.services.Orders.Delete(m.deleteID)
	case TabUsers:
		err = m.services.Users.Delete(m.deleteID)
	case TabImages:
		err = m.services.Images.Delete(m.deleteID)
	}
	if err != nil {
		log.ErrorErr(log.CatAdmin, "delete failed", err, "id", m.deleteID)
		return m, toast(fmt.Sprintf("delete failed: %v", err), toaster.StyleError)
	}
	log.Info(log.CatAdmin, "record deleted", "tab", m.deleteTab.String(), "id", m.deleteID)
	return m, tea.Batch(
		m.loadRecords(),
		toast("deleted", toaster.StyleSuccess),
	)
}

func toast(message string, style toaster.Style) tea.Cmd {
	return func() tea.Msg {
		return mode.ShowToastMsg{Message: message, Style: style}
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func parsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("price %q is not a number", s)
	}
	return d, nil
}

func parseStock(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("stock %q is not a whole number", s)
	}
	return n, nil
}
