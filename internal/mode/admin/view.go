package admin

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/vitrine/internal/catalog"
	"github.com/zjrosen/vitrine/internal/ui/diffpreview"
	"github.com/zjrosen/vitrine/internal/ui/overlay"
	"github.com/zjrosen/vitrine/internal/ui/shared/table"
	"github.com/zjrosen/vitrine/internal/ui/styles"
)

const timestampLayout = "2006-01-02 15:04"

func (m Model) productTableConfig() table.TableConfig {
	return table.TableConfig{
		Columns: []table.ColumnConfig{
			{Key: "name", Header: "Name", MinWidth: 14, Render: func(row any, _ string, w int, _ bool) string {
				return styles.TruncateString(row.(*catalog.Product).Name, w)
			}},
			{Key: "slug", Header: "Slug", MinWidth: 12, HideBelow: 90, Render: func(row any, _ string, w int, _ bool) string {
				return styles.TruncateString(row.(*catalog.Product).Slug, w)
			}},
			{Key: "price", Header: "Price", Width: 9, Align: lipgloss.Right, Type: table.ColumnTypeNumber, Render: func(row any, _ string, w int, _ bool) string {
				return fmt.Sprintf("%*s", w, "$"+row.(*catalog.Product).Price.StringFixed(2))
			}},
			{Key: "stock", Header: "Stock", Width: 6, Align: lipgloss.Right, Type: table.ColumnTypeNumber, Render: func(row any, _ string, w int, _ bool) string {
				return fmt.Sprintf("%*d", w, row.(*catalog.Product).Stock)
			}},
			{Key: "category", Header: "Category", Width: 12, Render: func(row any, _ string, w int, _ bool) string {
				return styles.TruncateString(string(row.(*catalog.Product).Category), w)
			}},
			{Key: "featured", Header: "Feat", Width: 4, Type: table.ColumnTypeIcon, Render: func(row any, _ string, _ int, _ bool) string {
				if row.(*catalog.Product).Featured {
					return "★"
				}
				return ""
			}},
		},
		ShowHeader:   true,
		ShowBorder:   true,
		Title:        "Products",
		EmptyMessage: "No products yet · n creates one",
		Selectable:   true,
		RowZoneID:    func(i int, _ any) string { return rowZoneID(i) },
	}
}

func (m Model) orderTableConfig() table.TableConfig {
	return table.TableConfig{
		Columns: []table.ColumnConfig{
			{Key: "id", Header: "Order", Width: 10, Render: func(row any, _ string, w int, _ bool) string {
				return styles.TruncateString(shortID(row.(*catalog.Order).ID), w)
			}},
			{Key: "status", Header: "Status", Width: 10, Render: func(row any, _ string, w int, _ bool) string {
				return styles.TruncateString(string(row.(*catalog.Order).Status), w)
			}},
			{Key: "lines", Header: "Lines", Width: 6, Align: lipgloss.Right, Type: table.ColumnTypeNumber, Render: func(row any, _ string, w int, _ bool) string {
				return fmt.Sprintf("%*d", w, len(row.(*catalog.Order).Lines))
			}},
			{Key: "total", Header: "Total", Width: 10, Align: lipgloss.Right, Type: table.ColumnTypeNumber, Render: func(row any, _ string, w int, _ bool) string {
				return fmt.Sprintf("%*s", w, "$"+row.(*catalog.Order).Total().StringFixed(2))
			}},
			{Key: "created", Header: "Placed", MinWidth: 16, Type: table.ColumnTypeDate, Render: func(row any, _ string, w int, _ bool) string {
				return styles.TruncateString(row.(*catalog.Order).CreatedAt.Format(timestampLayout), w)
			}},
		},
		ShowHeader:   true,
		ShowBorder:   true,
		Title:        "Orders",
		EmptyMessage: "No orders yet",
		Selectable:   true,
		RowZoneID:    func(i int, _ any) string { return rowZoneID(i) },
	}
}

func (m Model) userTableConfig() table.TableConfig {
	return table.TableConfig{
		Columns: []table.ColumnConfig{
			{Key: "email", Header: "Email", MinWidth: 18, Render: func(row any, _ string, w int, _ bool) string {
				return styles.TruncateString(row.(*catalog.User).Email, w)
			}},
			{Key: "name", Header: "Name", MinWidth: 12, Render: func(row any, _ string, w int, _ bool) string {
				return styles.TruncateString(row.(*catalog.User).Name, w)
			}},
			{Key: "role", Header: "Role", Width: 10, Render: func(row any, _ string, w int, _ bool) string {
				return styles.TruncateString(string(row.(*catalog.User).Role), w)
			}},
			{Key: "created", Header: "Joined", Width: 16, Type: table.ColumnTypeDate, Render: func(row any, _ string, w int, _ bool) string {
				return styles.TruncateString(row.(*catalog.User).CreatedAt.Format(timestampLayout), w)
			}},
		},
		ShowHeader:   true,
		ShowBorder:   true,
		Title:        "Users",
		EmptyMessage: "No users yet · n creates one",
		Selectable:   true,
		RowZoneID:    func(i int, _ any) string { return rowZoneID(i) },
	}
}

func (m Model) imageTableConfig() table.TableConfig {
	return table.TableConfig{
		Columns: []table.ColumnConfig{
			{Key: "product", Header: "Product", MinWidth: 14, Render: func(row any, _ string, w int, _ bool) string {
				return styles.TruncateString(row.(imageRow).product.Name, w)
			}},
			{Key: "id", Header: "Image", MinWidth: 16, Render: func(row any, _ string, w int, _ bool) string {
				return styles.TruncateString(row.(imageRow).image.ID, w)
			}},
			{Key: "size", Header: "Size", Width: 6, Render: func(row any, _ string, w int, _ bool) string {
				return styles.TruncateString(string(row.(imageRow).image.Size), w)
			}},
			{Key: "pos", Header: "Pos", Width: 4, Align: lipgloss.Right, Type: table.ColumnTypeNumber, Render: func(row any, _ string, w int, _ bool) string {
				return fmt.Sprintf("%*d", w, row.(imageRow).image.Position)
			}},
			{Key: "alt", Header: "Alt", MinWidth: 12, HideBelow: 100, Render: func(row any, _ string, w int, _ bool) string {
				return styles.TruncateString(row.(imageRow).image.Alt, w)
			}},
		},
		ShowHeader:   true,
		ShowBorder:   true,
		Title:        "Images",
		EmptyMessage: "No images yet · n attaches one",
		Selectable:   true,
		RowZoneID:    func(i int, _ any) string { return rowZoneID(i) },
	}
}

// View renders the back office: tab bar, active table, hint line, and any
// open overlay.
func (m Model) View() string {
	base := m.renderMain()

	switch {
	case m.editor != nil:
		return m.renderEditorOverlay(base)
	case m.confirm != nil:
		return m.confirm.Overlay(base)
	case m.showHelp:
		return m.helpOverlay(base)
	}
	return base
}

func (m Model) renderMain() string {
	header := m.renderTabBar()

	var body string
	if m.loadErr != nil {
		body = lipgloss.NewStyle().
			Foreground(styles.StatusErrorColor).
			Render("Error: " + m.loadErr.Error())
	} else {
		body = m.tables[m.tab].ViewWithSelection(m.selected[m.tab])
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderHint())
}

func (m Model) renderTabBar() string {
	title := lipgloss.NewStyle().
		Foreground(styles.TextPrimaryColor).
		Bold(true).
		Render("Vitrine · back office")

	var tabs []string
	for t := range tabTitles {
		style := lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			Padding(0, 1)
		if Tab(t) == m.tab {
			style = style.
				Foreground(styles.TextPrimaryColor).
				Bold(true).
				Underline(true)
		}
		tabs = append(tabs, zone.Mark(tabZoneID(Tab(t)), style.Render(tabTitles[t])))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		title, "  ", strings.Join(tabs, " "))
}

func (m Model) renderHint() string {
	hint := "n new · enter edit · ctrl+d delete · y id · ]/[ tabs · ctrl+a store · ? help"
	if m.tab == TabOrders {
		hint = "enter status · ctrl+d delete · y id · ]/[ tabs · ctrl+a store · ? help"
	}
	return lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render(hint)
}

// renderEditorOverlay centers the form, with a live description diff panel
// when a product edit changed its description.
func (m Model) renderEditorOverlay(base string) string {
	fg := m.editor.View()

	if m.target.tab == TabProducts && m.target.id != "" {
		segments := diffpreview.Compute(m.target.savedDescription, m.editor.Value("description"))
		if diffpreview.Changed(segments) {
			rendered := diffpreview.Render(segments)
			panel := styles.RenderWithTitleBorder(
				rendered,
				"Description changes",
				lipgloss.Width(fg), strings.Count(rendered, "\n")+3,
				false, styles.TextSecondaryColor, styles.BorderHighlightFocusColor)
			fg = lipgloss.JoinVertical(lipgloss.Left, fg, panel)
		}
	}

	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, fg, base)
}

func (m Model) helpOverlay(base string) string {
	return m.help.Overlay(base)
}
