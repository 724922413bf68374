// Package cartview implements the cart mode: reviewing cart lines,
// adjusting quantities, and placing an order.
package cartview

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/vitrine/internal/cart"
	"github.com/zjrosen/vitrine/internal/catalog"
	"github.com/zjrosen/vitrine/internal/keys"
	"github.com/zjrosen/vitrine/internal/log"
	"github.com/zjrosen/vitrine/internal/mode"
	"github.com/zjrosen/vitrine/internal/ui/shared/table"
	"github.com/zjrosen/vitrine/internal/ui/styles"
	"github.com/zjrosen/vitrine/internal/ui/toaster"
)

// guestEmail identifies the walk-in account that owns orders placed
// without signing in.
const guestEmail = "guest@vitrine.local"

// checkoutDoneMsg reports the result of placing an order.
type checkoutDoneMsg struct {
	orderID string
	total   string
	err     error
}

// Model is the cart mode controller.
type Model struct {
	services mode.Services
	keys     keys.CartKeyMap

	table    table.Model
	lines    []cart.Line
	selected int

	// lastOrderID is set after a successful checkout so the confirmation
	// banner can reference the order.
	lastOrderID string

	width  int
	height int
}

// New creates the cart mode controller.
func New(services mode.Services) Model {
	m := Model{
		services: services,
		keys:     keys.DefaultCartKeyMap(),
	}
	m.table = table.New(m.tableConfig())
	return m.refresh()
}

func (m Model) tableConfig() table.TableConfig {
	return table.TableConfig{
		Columns: []table.ColumnConfig{
			{Key: "product", Header: "Product", MinWidth: 16, Render: func(row any, _ string, w int, _ bool) string {
				return styles.TruncateString(row.(cart.Line).ProductName, w)
			}},
			{Key: "qty", Header: "Qty", Width: 5, Align: lipgloss.Right, Type: table.ColumnTypeNumber, Render: func(row any, _ string, w int, _ bool) string {
				return fmt.Sprintf("%*d", w, row.(cart.Line).Quantity)
			}},
			{Key: "unit", Header: "Unit", Width: 10, Align: lipgloss.Right, Type: table.ColumnTypeNumber, Render: func(row any, _ string, w int, _ bool) string {
				return fmt.Sprintf("%*s", w, "$"+row.(cart.Line).UnitPrice.StringFixed(2))
			}},
			{Key: "subtotal", Header: "Subtotal", Width: 12, Align: lipgloss.Right, Type: table.ColumnTypeNumber, Render: func(row any, _ string, w int, _ bool) string {
				return fmt.Sprintf("%*s", w, "$"+row.(cart.Line).Subtotal().StringFixed(2))
			}},
		},
		ShowHeader:   true,
		ShowBorder:   true,
		Title:        "Cart",
		EmptyMessage: "Your cart is empty",
		Selectable:   true,
		RowZoneID: func(i int, _ any) string {
			return rowZoneID(i)
		},
	}
}

func rowZoneID(i int) string {
	return fmt.Sprintf("cart:row:%d", i)
}

// refresh snapshots the cart into the table and clamps the selection.
func (m Model) refresh() Model {
	m.lines = m.services.Cart.Lines()
	rows := make([]any, len(m.lines))
	for i, l := range m.lines {
		rows[i] = l
	}
	m.table = m.table.SetRows(rows)
	if m.selected >= len(m.lines) {
		m.selected = len(m.lines) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	return m
}

// Init implements the mode contract. The cart lives in memory, so there
// is nothing to load.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize handles terminal resize events.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.table = m.table.SetSize(width, max(height-4, 5))
	return m
}

// Update handles messages for cart mode.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case checkoutDoneMsg:
		return m.handleCheckoutDone(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		return m, mode.Switch(mode.ModeBrowse)

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.lines)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Increase):
		if line, ok := m.selectedLine(); ok {
			m.services.Cart.SetQuantity(line.ProductID, line.Quantity+1)
			m = m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Decrease):
		if line, ok := m.selectedLine(); ok {
			m.services.Cart.SetQuantity(line.ProductID, line.Quantity-1)
			m = m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		if line, ok := m.selectedLine(); ok {
			m.services.Cart.Remove(line.ProductID)
			m = m.refresh()
			return m, toast(fmt.Sprintf("removed %s", line.ProductName), toaster.StyleInfo)
		}
		return m, nil

	case key.Matches(msg, m.keys.Checkout):
		return m.checkout()
	}
	return m, nil
}

// handleMouse selects cart rows by click and supports wheel scrolling
// through the lines.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case tea.MouseButtonWheelDown:
			if m.selected < len(m.lines)-1 {
				m.selected++
			}
			return m, nil
		case tea.MouseButtonLeft:
			for i := range m.lines {
				if zone.Get(rowZoneID(i)).InBounds(msg) {
					m.selected = i
					return m, nil
				}
			}
		}
	}
	return m, nil
}

func (m Model) selectedLine() (cart.Line, bool) {
	if m.selected < 0 || m.selected >= len(m.lines) {
		return cart.Line{}, false
	}
	return m.lines[m.selected], true
}

// checkout turns the cart into a pending order owned by the guest
// account. The cart is cleared only after the order persists.
func (m Model) checkout() (Model, tea.Cmd) {
	if m.services.Cart.Len() == 0 {
		return m, toast("nothing to check out", toaster.StyleWarn)
	}

	user, err := m.guestUser()
	if err != nil {
		return m, func() tea.Msg { return checkoutDoneMsg{err: err} }
	}

	order := catalog.NewOrder(user.ID, m.services.Cart.ToOrderLines())
	if err := m.services.Orders.Save(order); err != nil {
		return m, func() tea.Msg { return checkoutDoneMsg{err: err} }
	}

	m.reduceStock(order.Lines)

	total := order.Total().StringFixed(2)
	m.services.Cart.Clear()
	log.Info(log.CatCart, "order placed", "order", order.ID, "lines", len(order.Lines), "total", total)

	return m, func() tea.Msg {
		return checkoutDoneMsg{orderID: order.ID, total: total}
	}
}

// guestUser finds the walk-in account, creating it on first checkout.
func (m Model) guestUser() (*catalog.User, error) {
	user, err := m.services.Users.FindByEmail(guestEmail)
	if err == nil {
		return user, nil
	}
	var notFound *catalog.UserNotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}
	user = catalog.NewUser(guestEmail, "Guest")
	if err := m.services.Users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// reduceStock decrements stock for each ordered line. Failures are
// logged rather than unwinding the already-persisted order.
func (m Model) reduceStock(lines []catalog.OrderLine) {
	for _, line := range lines {
		p, err := m.services.Products.FindByID(line.ProductID)
		if err != nil {
			log.Warn(log.CatCart, "stock update skipped", "product", line.ProductID, "error", err)
			continue
		}
		p.Stock -= line.Quantity
		if p.Stock < 0 {
			p.Stock = 0
		}
		if err := m.services.Products.Save(p); err != nil {
			log.Warn(log.CatCart, "stock update failed", "product", p.ID, "error", err)
		}
	}
}

func (m Model) handleCheckoutDone(msg checkoutDoneMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		log.Error(log.CatCart, "checkout failed", "error", msg.err)
		return m, toast(fmt.Sprintf("checkout failed: %v", msg.err), toaster.StyleError)
	}
	m.lastOrderID = msg.orderID
	m = m.refresh()
	return m, toast(fmt.Sprintf("order placed · $%s", msg.total), toaster.StyleSuccess)
}

func toast(message string, style toaster.Style) tea.Cmd {
	return func() tea.Msg {
		return mode.ShowToastMsg{Message: message, Style: style}
	}
}

// LastOrderID returns the id of the most recently placed order, if any.
func (m Model) LastOrderID() string {
	return m.lastOrderID
}

// View renders the cart table with a totals footer.
func (m Model) View() string {
	header := lipgloss.NewStyle().
		Foreground(styles.TextPrimaryColor).
		Bold(true).
		Render(fmt.Sprintf("Vitrine · cart (%d items)", m.services.Cart.Units()))

	body := m.table.ViewWithSelection(m.selected)

	totalLabel := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Render("Total ")
	total := styles.PriceStyle.Render("$" + m.services.Cart.Total().StringFixed(2))
	footer := lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Right).
		Render(totalLabel + total)

	hint := lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		Render("+/- quantity · d remove · enter place order · esc back")

	if m.lastOrderID != "" && len(m.lines) == 0 {
		confirm := lipgloss.NewStyle().
			Foreground(styles.StatusSuccessColor).
			Render(fmt.Sprintf("Order %s placed. Thank you!", shortID(m.lastOrderID)))
		return lipgloss.JoinVertical(lipgloss.Left, header, body, confirm, hint)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer, hint)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
