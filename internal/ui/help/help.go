// Package help contains the help overlay component.
package help

import (
	"strings"

	"github.com/zjrosen/vitrine/internal/keys"
	"github.com/zjrosen/vitrine/internal/ui/overlay"
	"github.com/zjrosen/vitrine/internal/ui/styles"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
			Foreground(styles.OverlayBorderColor)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Width(11)

	descStyle = lipgloss.NewStyle().
			Foreground(styles.TextDescriptionColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.OverlayBorderColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// HelpMode indicates which mode's help to display.
type HelpMode int

const (
	ModeBrowse HelpMode = iota
	ModeAdmin
)

// Model holds the help view state.
type Model struct {
	keys      keys.KeyMap
	adminKeys keys.AdminKeyMap
	mode      HelpMode
	width     int
	height    int
}

// New creates a new help view for browse mode.
func New() Model {
	return Model{
		keys: keys.DefaultKeyMap(),
		mode: ModeBrowse,
	}
}

// NewAdmin creates a new help view for admin mode.
func NewAdmin() Model {
	return Model{
		adminKeys: keys.DefaultAdminKeyMap(),
		mode:      ModeAdmin,
	}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help overlay (standalone, no background).
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	helpBox := m.renderContent()

	if background == "" {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			helpBox,
		)
	}

	// Use shared overlay package
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, helpBox, background)
}

// renderContent builds the help box content.
func (m Model) renderContent() string {
	if m.mode == ModeAdmin {
		return m.renderAdminContent()
	}
	return m.renderBrowseContent()
}

// renderBrowseContent renders the storefront browse mode help.
func (m Model) renderBrowseContent() string {
	// Column style with right margin for spacing
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	// Navigation column
	var navCol strings.Builder
	navCol.WriteString(sectionStyle.Render("Navigation"))
	navCol.WriteString("\n")
	navCol.WriteString(renderKeyDesc("h/l", "left/right"))
	navCol.WriteString(renderKeyDesc("j/k", "up/down"))
	navCol.WriteString(m.renderBinding(m.keys.Enter))
	navCol.WriteString(m.renderBinding(m.keys.Escape))

	// Product column
	var productCol strings.Builder
	productCol.WriteString(sectionStyle.Render("Product"))
	productCol.WriteString("\n")
	productCol.WriteString(m.renderBinding(m.keys.AddToCart))
	productCol.WriteString(m.renderBinding(m.keys.NextImage))
	productCol.WriteString(m.renderBinding(m.keys.PrevImage))
	productCol.WriteString(m.renderBinding(m.keys.ToggleCart))

	// Catalog column
	var catalogCol strings.Builder
	catalogCol.WriteString(sectionStyle.Render("Catalog"))
	catalogCol.WriteString("\n")
	catalogCol.WriteString(m.renderBinding(m.keys.Search))
	catalogCol.WriteString(m.renderBinding(m.keys.Category))
	catalogCol.WriteString(m.renderBinding(m.keys.Refresh))

	// General column
	var generalCol strings.Builder
	generalCol.WriteString(sectionStyle.Render("General"))
	generalCol.WriteString("\n")
	generalCol.WriteString(m.renderBinding(m.keys.AdminMode))
	generalCol.WriteString(m.renderBinding(m.keys.Help))
	generalCol.WriteString(m.renderBinding(m.keys.ToggleStatus))
	generalCol.WriteString(m.renderBinding(m.keys.Quit))

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(navCol.String()),
		columnStyle.Render(productCol.String()),
		columnStyle.Render(catalogCol.String()),
		generalCol.String(), // Last column doesn't need right margin
	)

	return m.renderBox("Keybindings", columns)
}

// renderAdminContent renders the admin mode help.
func (m Model) renderAdminContent() string {
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	var navCol strings.Builder
	navCol.WriteString(sectionStyle.Render("Navigation"))
	navCol.WriteString("\n")
	navCol.WriteString(renderKeyDesc("j/k", "up/down"))
	navCol.WriteString(m.renderBinding(m.adminKeys.NextTab))
	navCol.WriteString(m.renderBinding(m.adminKeys.PrevTab))

	var editCol strings.Builder
	editCol.WriteString(sectionStyle.Render("Editing"))
	editCol.WriteString("\n")
	editCol.WriteString(m.renderBinding(m.adminKeys.New))
	editCol.WriteString(m.renderBinding(m.adminKeys.Edit))
	editCol.WriteString(m.renderBinding(m.adminKeys.Delete))
	editCol.WriteString(m.renderBinding(m.adminKeys.Save))
	editCol.WriteString(m.renderBinding(m.adminKeys.Yank))

	var generalCol strings.Builder
	generalCol.WriteString(sectionStyle.Render("General"))
	generalCol.WriteString("\n")
	generalCol.WriteString(m.renderBinding(m.adminKeys.SwitchMode))
	generalCol.WriteString(m.renderBinding(m.adminKeys.Help))
	generalCol.WriteString(m.renderBinding(m.adminKeys.Escape))
	generalCol.WriteString(m.renderBinding(m.adminKeys.Quit))

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(navCol.String()),
		columnStyle.Render(editCol.String()),
		generalCol.String(),
	)

	return m.renderBox("Admin Keybindings", columns)
}

// renderBox wraps columns in the titled, bordered help box.
func (m Model) renderBox(title, columns string) string {
	columnsWidth := lipgloss.Width(columns)
	boxWidth := columnsWidth + 4 // Add horizontal padding (2 each side)

	body := contentStyle.Render(columns + "\n" + footerStyle.Render("Press ? or Esc to close"))

	// Divider spans full box width
	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	content.WriteString(titleStyle.Render(title))
	content.WriteString("\n")
	content.WriteString(divider)
	content.WriteString("\n")
	content.WriteString(body)

	return boxStyle.Width(boxWidth).Render(content.String())
}

func (m Model) renderBinding(b key.Binding) string {
	help := b.Help()
	return renderKeyDesc(help.Key, help.Desc)
}

func renderKeyDesc(key, desc string) string {
	return keyStyle.Render(key) + descStyle.Render(desc) + "\n"
}
