// Package modal provides a reusable dialog for confirmation prompts and
// small input forms, used by the back office for destructive actions.
package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/vitrine/internal/ui/overlay"
	"github.com/zjrosen/vitrine/internal/ui/styles"
)

// ButtonVariant controls the styling of the confirm button.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonDanger  // destructive actions
)

// InputConfig defines a single input field.
type InputConfig struct {
	Key         string // identifier used in SubmitMsg.Values
	Label       string // shown in the input section border
	Placeholder string
	Value       string // initial value
	MaxLength   int    // 0 = unlimited
}

// Config controls modal appearance and behavior. With no Inputs the
// modal is a plain confirm/cancel dialog.
type Config struct {
	Title          string
	Message        string
	Inputs         []InputConfig
	ConfirmVariant ButtonVariant
	MinWidth       int // 0 = default 40
}

// SubmitMsg is emitted when the user confirms. Values holds input values
// keyed by InputConfig.Key.
type SubmitMsg struct {
	Values map[string]string
}

// CancelMsg is emitted when the user cancels with Esc or the Cancel
// button.
type CancelMsg struct{}

// Field identifies which button is focused.
type Field int

const (
	FieldSave Field = iota
	FieldCancel
)

// Model is the modal component state. focusedInput is -1 while focus
// sits on the buttons.
type Model struct {
	config       Config
	inputs       []textinput.Model
	inputKeys    []string
	hasInputs    bool
	focusedInput int
	focusedField Field
	width        int
	height       int
}

// New creates a modal. The first input starts focused; a confirmation
// dialog starts on the confirm button.
func New(cfg Config) Model {
	m := Model{
		config:       cfg,
		hasInputs:    len(cfg.Inputs) > 0,
		focusedField: FieldSave,
	}

	if !m.hasInputs {
		m.focusedInput = -1
		return m
	}

	m.inputs = make([]textinput.Model, len(cfg.Inputs))
	m.inputKeys = make([]string, len(cfg.Inputs))
	for i, inputCfg := range cfg.Inputs {
		ti := textinput.New()
		ti.Placeholder = inputCfg.Placeholder
		ti.Width = 36 // fits the default 40 wide box minus padding
		ti.Prompt = ""
		if inputCfg.MaxLength > 0 {
			ti.CharLimit = inputCfg.MaxLength
		}
		if inputCfg.Value != "" {
			ti.SetValue(inputCfg.Value)
		}
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
		m.inputKeys[i] = inputCfg.Key
	}
	return m
}

// Init starts the cursor blink in input mode.
func (m Model) Init() tea.Cmd {
	if m.hasInputs {
		return textinput.Blink
	}
	return nil
}

// Update handles key navigation and forwards everything else to the
// focused text input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down", "ctrl+n":
			return m.focusNext(), nil

		case "shift+tab", "up", "ctrl+p":
			return m.focusPrev(), nil

		case "left", "h":
			if m.focusedInput == -1 && m.focusedField == FieldCancel {
				m.focusedField = FieldSave
				return m, nil
			}

		case "right", "l":
			if m.focusedInput == -1 && m.focusedField == FieldSave {
				m.focusedField = FieldCancel
				return m, nil
			}

		case "enter":
			if m.focusedInput >= 0 {
				return m.focusNext(), nil
			}
			if m.focusedField == FieldCancel {
				return m, func() tea.Msg { return CancelMsg{} }
			}
			return m.submit()

		case "esc":
			return m, func() tea.Msg { return CancelMsg{} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	if m.hasInputs && m.focusedInput >= 0 && m.focusedInput < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focusedInput], cmd = m.inputs[m.focusedInput].Update(msg)
		return m, cmd
	}

	return m, nil
}

// submit emits SubmitMsg unless any input is still empty.
func (m Model) submit() (Model, tea.Cmd) {
	for _, input := range m.inputs {
		if input.Value() == "" {
			return m, nil
		}
	}
	values := make(map[string]string)
	for i, input := range m.inputs {
		values[m.inputKeys[i]] = input.Value()
	}
	return m, func() tea.Msg { return SubmitMsg{Values: values} }
}

// focusNext cycles inputs first, then Save, then Cancel, then wraps.
func (m Model) focusNext() Model {
	if m.focusedInput >= 0 {
		m.inputs[m.focusedInput].Blur()
		if m.focusedInput < len(m.inputs)-1 {
			m.focusedInput++
			m.inputs[m.focusedInput].Focus()
		} else {
			m.focusedInput = -1
			m.focusedField = FieldSave
		}
		return m
	}

	if m.focusedField == FieldSave {
		m.focusedField = FieldCancel
	} else if m.hasInputs {
		m.focusedInput = 0
		m.inputs[0].Focus()
	} else {
		m.focusedField = FieldSave
	}
	return m
}

// focusPrev is the reverse of focusNext.
func (m Model) focusPrev() Model {
	if m.focusedInput >= 0 {
		m.inputs[m.focusedInput].Blur()
		if m.focusedInput > 0 {
			m.focusedInput--
			m.inputs[m.focusedInput].Focus()
		} else {
			m.focusedInput = -1
			m.focusedField = FieldCancel
		}
		return m
	}

	if m.focusedField == FieldCancel {
		m.focusedField = FieldSave
	} else if m.hasInputs {
		m.focusedInput = len(m.inputs) - 1
		m.inputs[m.focusedInput].Focus()
	} else {
		m.focusedField = FieldCancel
	}
	return m
}

// View renders the modal box without the overlay.
func (m Model) View() string {
	contentWidth := max(m.config.MinWidth, 40)
	contentWidth = max(contentWidth, lipgloss.Width(m.config.Title))
	boxWidth := contentWidth + 2 // content padding

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)
	divider := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	if m.config.Message != "" {
		msgStyle := lipgloss.NewStyle().
			Foreground(styles.TextPrimaryColor).
			Width(contentWidth)
		content.WriteString(msgStyle.Render(m.config.Message))
		content.WriteString("\n\n")
	}
	for i, inputCfg := range m.config.Inputs {
		content.WriteString(m.renderInputSection(i, inputCfg.Label, contentWidth))
		content.WriteString("\n\n")
	}
	content.WriteString(m.renderButtons())

	var box strings.Builder
	box.WriteString(titleStyle.Render(m.config.Title))
	box.WriteString("\n")
	box.WriteString(divider)
	box.WriteString("\n")
	box.WriteString(lipgloss.NewStyle().Padding(1, 1).Render(content.String()))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth).
		Render(box.String())
}

func (m Model) renderInputSection(index int, label string, width int) string {
	if label == "" {
		label = "Input"
	}
	focused := m.focusedInput == index
	return styles.RenderFormSection([]string{m.inputs[index].View()}, label, "", width, focused, styles.BorderHighlightFocusColor)
}

func (m Model) renderButtons() string {
	onButtons := m.focusedInput == -1

	var saveStyle lipgloss.Style
	switch m.config.ConfirmVariant {
	case ButtonDanger:
		saveStyle = styles.DangerButtonStyle
		if onButtons && m.focusedField == FieldSave {
			saveStyle = styles.DangerButtonFocusedStyle
		}
	default:
		saveStyle = styles.PrimaryButtonStyle
		if onButtons && m.focusedField == FieldSave {
			saveStyle = styles.PrimaryButtonFocusedStyle
		}
	}

	saveLabel := "Confirm"
	if m.hasInputs {
		saveLabel = "Save"
	}

	cancelStyle := styles.SecondaryButtonStyle
	if onButtons && m.focusedField == FieldCancel {
		cancelStyle = styles.SecondaryButtonFocusedStyle
	}

	return saveStyle.Render(saveLabel) + "  " + cancelStyle.Render("Cancel")
}

// Overlay renders the modal centered on bg.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

// SetSize records the viewport size used for centering.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// FocusedInput returns the focused input index, -1 while on buttons.
func (m Model) FocusedInput() int {
	return m.focusedInput
}

// FocusedField returns the focused button.
func (m Model) FocusedField() Field {
	return m.focusedField
}
