// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for browse mode.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Actions
	Enter      key.Binding
	Refresh    key.Binding
	AddToCart  key.Binding
	NextImage  key.Binding
	PrevImage  key.Binding
	Search     key.Binding
	Category   key.Binding
	ToggleCart key.Binding

	// General
	AdminMode    key.Binding
	Help         key.Binding
	Escape       key.Binding
	Quit         key.Binding
	ToggleStatus key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "move right"),
		),

		// Actions
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view product"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh catalog"),
		),
		AddToCart: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add to cart"),
		),
		NextImage: key.NewBinding(
			key.WithKeys("n", "tab"),
			key.WithHelp("n", "next image"),
		),
		PrevImage: key.NewBinding(
			key.WithKeys("p", "shift+tab"),
			key.WithHelp("p", "previous image"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search products"),
		),
		Category: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter category"),
		),
		ToggleCart: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "view cart"),
		),

		// General
		AdminMode: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "admin mode"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "go back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleStatus: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "toggle status bar"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},                                // Navigation
		{k.Enter, k.AddToCart, k.NextImage, k.PrevImage},               // Product
		{k.Search, k.Category, k.ToggleCart, k.Refresh},                // Catalog
		{k.AdminMode, k.Help, k.ToggleStatus, k.Escape, k.Quit},        // General
	}
}

// CartKeyMap defines the keybindings for cart mode.
type CartKeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Line editing
	Increase key.Binding
	Decrease key.Binding
	Remove   key.Binding

	// Actions
	Checkout key.Binding

	// General
	Escape key.Binding
	Quit   key.Binding
}

// DefaultCartKeyMap returns the keybindings for cart mode.
func DefaultCartKeyMap() CartKeyMap {
	return CartKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		Increase: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more of this"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "fewer of this"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "remove line"),
		),
		Checkout: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "place order"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc", "c"),
			key.WithHelp("esc", "back to store"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k CartKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Checkout, k.Escape, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k CartKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Increase, k.Decrease, k.Remove},
		{k.Checkout, k.Escape, k.Quit},
	}
}

// AdminKeyMap defines the keybindings for admin mode.
type AdminKeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Tabs
	NextTab key.Binding
	PrevTab key.Binding

	// Editing
	New    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Save   key.Binding
	Yank   key.Binding

	// General
	SwitchMode key.Binding
	Help       key.Binding
	Escape     key.Binding
	Quit       key.Binding
}

// DefaultAdminKeyMap returns the keybindings for admin mode.
func DefaultAdminKeyMap() AdminKeyMap {
	return AdminKeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "focus list"),
		),
		Right: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "focus details"),
		),

		// Tabs
		NextTab: key.NewBinding(
			key.WithKeys("]", "ctrl+n"),
			key.WithHelp("]", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("[", "ctrl+p"),
			key.WithHelp("[", "previous tab"),
		),

		// Editing
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new record"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter", "edit record"),
		),
		Delete: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete record"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save changes"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy record ID"),
		),

		// General
		SwitchMode: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "back to store"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "go back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k AdminKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k AdminKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},        // Navigation
		{k.NextTab, k.PrevTab},                 // Tabs
		{k.New, k.Edit, k.Delete, k.Save},      // Editing
		{k.SwitchMode, k.Help, k.Escape, k.Quit}, // General
	}
}
