// Package form provides a config-driven record editor used by admin mode.
//
// A form is built from field configs (text, textarea, select), navigated
// with tab/shift+tab or arrow keys, and submitted with ctrl+s or the Save
// button. Values are returned as strings keyed by FieldConfig.Key; the
// caller parses prices, quantities and enums.
package form

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/vitrine/internal/ui/overlay"
	"github.com/zjrosen/vitrine/internal/ui/styles"
)

// FieldType selects the widget backing a field.
type FieldType int

const (
	// FieldText is a single-line text input.
	FieldText FieldType = iota
	// FieldTextArea is a multi-line editor.
	FieldTextArea
	// FieldSelect cycles through a fixed option list.
	FieldSelect
)

// FieldConfig defines one form field.
type FieldConfig struct {
	Key         string
	Label       string
	Placeholder string
	Value       string
	Type        FieldType

	// Options lists the choices for FieldSelect. Value selects the initial
	// option; an unknown value falls back to the first option.
	Options []string

	// CharLimit caps text input length. Zero means unlimited.
	CharLimit int

	// Lines sets the textarea height. Zero means 4.
	Lines int
}

// Config defines the whole form.
type Config struct {
	Title  string
	Fields []FieldConfig

	// Validate inspects the values before submit. A non-nil error keeps the
	// form open and shows the message.
	Validate func(values map[string]string) error
}

// SubmitMsg carries the submitted values, keyed by FieldConfig.Key.
type SubmitMsg struct {
	Values map[string]string
}

// CancelMsg is sent when the form is dismissed.
type CancelMsg struct{}

type fieldState struct {
	config    FieldConfig
	input     textinput.Model
	area      textarea.Model
	optionIdx int
}

func (fs *fieldState) value() string {
	switch fs.config.Type {
	case FieldTextArea:
		return fs.area.Value()
	case FieldSelect:
		if len(fs.config.Options) == 0 {
			return ""
		}
		return fs.config.Options[fs.optionIdx]
	default:
		return fs.input.Value()
	}
}

func (fs *fieldState) focus() tea.Cmd {
	switch fs.config.Type {
	case FieldText:
		fs.input.Focus()
		return textinput.Blink
	case FieldTextArea:
		fs.area.Focus()
		return textarea.Blink
	}
	return nil
}

func (fs *fieldState) blur() {
	fs.input.Blur()
	fs.area.Blur()
}

// Model is the form state. Focus index -1 means the buttons row.
type Model struct {
	config  Config
	fields  []fieldState
	focused int
	// onCancelButton tracks which button has focus when focused == -1.
	onCancelButton bool

	errText string

	width  int
	height int
}

// New creates a form with focus on the first field.
func New(cfg Config) Model {
	m := Model{
		config: cfg,
		fields: make([]fieldState, len(cfg.Fields)),
	}
	for i, fc := range cfg.Fields {
		fs := fieldState{config: fc}
		switch fc.Type {
		case FieldTextArea:
			ta := textarea.New()
			ta.Placeholder = fc.Placeholder
			ta.SetWidth(formInnerWidth)
			lines := fc.Lines
			if lines == 0 {
				lines = 4
			}
			ta.SetHeight(lines)
			ta.SetValue(fc.Value)
			fs.area = ta
		case FieldSelect:
			for j, opt := range fc.Options {
				if opt == fc.Value {
					fs.optionIdx = j
				}
			}
		default:
			ti := textinput.New()
			ti.Placeholder = fc.Placeholder
			ti.Prompt = ""
			ti.Width = formInnerWidth
			if fc.CharLimit > 0 {
				ti.CharLimit = fc.CharLimit
			}
			ti.SetValue(fc.Value)
			fs.input = ti
		}
		m.fields[i] = fs
	}
	if len(m.fields) > 0 {
		m.fields[0].focus()
	} else {
		m.focused = -1
	}
	return m
}

const formInnerWidth = 46

// Init starts the cursor blink for the first field.
func (m Model) Init() tea.Cmd {
	if m.focused >= 0 && m.focused < len(m.fields) {
		switch m.fields[m.focused].config.Type {
		case FieldText:
			return textinput.Blink
		case FieldTextArea:
			return textarea.Blink
		}
	}
	return nil
}

// SetSize records viewport dimensions for overlay centering.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// SetError shows a validation message under the fields.
func (m Model) SetError(text string) Model {
	m.errText = text
	return m
}

// Value returns a field's current value by key.
func (m Model) Value(key string) string {
	for i := range m.fields {
		if m.fields[i].config.Key == key {
			return m.fields[i].value()
		}
	}
	return ""
}

// Update handles key input for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forward(msg)
	}

	switch key.String() {
	case "esc":
		return m, func() tea.Msg { return CancelMsg{} }

	case "ctrl+s":
		return m.submit()

	case "tab", "ctrl+n":
		return m.moveFocus(1)

	case "shift+tab", "ctrl+p":
		return m.moveFocus(-1)

	case "up", "down":
		// Textareas consume vertical arrows for cursor movement.
		if m.onTextArea() {
			return m.forward(msg)
		}
		if key.String() == "down" {
			return m.moveFocus(1)
		}
		return m.moveFocus(-1)

	case "left", "right":
		if fs, ok := m.focusedSelect(); ok {
			if key.String() == "right" {
				fs.optionIdx = (fs.optionIdx + 1) % len(fs.config.Options)
			} else {
				fs.optionIdx = (fs.optionIdx - 1 + len(fs.config.Options)) % len(fs.config.Options)
			}
			return m, nil
		}
		if m.focused == -1 {
			m.onCancelButton = key.String() == "right"
			return m, nil
		}
		return m.forward(msg)

	case " ":
		if fs, ok := m.focusedSelect(); ok {
			fs.optionIdx = (fs.optionIdx + 1) % len(fs.config.Options)
			return m, nil
		}
		return m.forward(msg)

	case "enter":
		if m.focused == -1 {
			if m.onCancelButton {
				return m, func() tea.Msg { return CancelMsg{} }
			}
			return m.submit()
		}
		if m.onTextArea() {
			return m.forward(msg)
		}
		return m.moveFocus(1)
	}

	return m.forward(msg)
}

func (m Model) onTextArea() bool {
	return m.focused >= 0 && m.focused < len(m.fields) &&
		m.fields[m.focused].config.Type == FieldTextArea
}

func (m *Model) focusedSelect() (*fieldState, bool) {
	if m.focused < 0 || m.focused >= len(m.fields) {
		return nil, false
	}
	fs := &m.fields[m.focused]
	if fs.config.Type != FieldSelect || len(fs.config.Options) == 0 {
		return nil, false
	}
	return fs, true
}

// forward routes a message to the focused text widget.
func (m Model) forward(msg tea.Msg) (Model, tea.Cmd) {
	if m.focused < 0 || m.focused >= len(m.fields) {
		return m, nil
	}
	fs := &m.fields[m.focused]
	var cmd tea.Cmd
	switch fs.config.Type {
	case FieldText:
		fs.input, cmd = fs.input.Update(msg)
	case FieldTextArea:
		fs.area, cmd = fs.area.Update(msg)
	}
	return m, cmd
}

// moveFocus shifts focus by delta through fields then buttons, wrapping.
func (m Model) moveFocus(delta int) (Model, tea.Cmd) {
	if m.focused >= 0 && m.focused < len(m.fields) {
		m.fields[m.focused].blur()
	}

	// Positions: 0..len(fields)-1 are fields, len(fields) is Save,
	// len(fields)+1 is Cancel.
	total := len(m.fields) + 2
	pos := m.focused
	if pos == -1 {
		pos = len(m.fields)
		if m.onCancelButton {
			pos++
		}
	}
	pos = (pos + delta + total) % total

	if pos < len(m.fields) {
		m.focused = pos
		return m, m.fields[pos].focus()
	}
	m.focused = -1
	m.onCancelButton = pos == len(m.fields)+1
	return m, nil
}

// submit validates and emits the values.
func (m Model) submit() (Model, tea.Cmd) {
	values := m.values()
	if m.config.Validate != nil {
		if err := m.config.Validate(values); err != nil {
			m.errText = err.Error()
			return m, nil
		}
	}
	m.errText = ""
	return m, func() tea.Msg { return SubmitMsg{Values: values} }
}

func (m Model) values() map[string]string {
	values := make(map[string]string, len(m.fields))
	for i := range m.fields {
		values[m.fields[i].config.Key] = m.fields[i].value()
	}
	return values
}

// View renders the form box.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)
	divider := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", formInnerWidth+4))

	var body strings.Builder
	for i := range m.fields {
		body.WriteString(m.renderField(i))
		body.WriteString("\n\n")
	}
	if m.errText != "" {
		errStyle := lipgloss.NewStyle().Foreground(styles.StatusErrorColor)
		body.WriteString(errStyle.Render(m.errText))
		body.WriteString("\n\n")
	}
	body.WriteString(m.renderButtons())

	var out strings.Builder
	out.WriteString(titleStyle.Render(m.config.Title))
	out.WriteString("\n")
	out.WriteString(divider)
	out.WriteString("\n")
	out.WriteString(lipgloss.NewStyle().Padding(1, 1).Render(body.String()))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(formInnerWidth + 4).
		Render(out.String())
}

func (m Model) renderField(i int) string {
	fs := &m.fields[i]
	focused := m.focused == i

	var content string
	switch fs.config.Type {
	case FieldTextArea:
		content = fs.area.View()
	case FieldSelect:
		content = m.renderSelect(fs, focused)
	default:
		content = fs.input.View()
	}

	return styles.RenderFormSection(
		[]string{content}, fs.config.Label, "", formInnerWidth,
		focused, styles.BorderHighlightFocusColor)
}

func (m Model) renderSelect(fs *fieldState, focused bool) string {
	var parts []string
	for j, opt := range fs.config.Options {
		style := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
		if j == fs.optionIdx {
			style = lipgloss.NewStyle().
				Foreground(styles.TextPrimaryColor).
				Bold(true)
			if focused {
				style = style.Underline(true)
			}
			parts = append(parts, style.Render("["+opt+"]"))
			continue
		}
		parts = append(parts, style.Render(opt))
	}
	return strings.Join(parts, " ")
}

func (m Model) renderButtons() string {
	onButtons := m.focused == -1

	saveStyle := styles.PrimaryButtonStyle
	if onButtons && !m.onCancelButton {
		saveStyle = styles.PrimaryButtonFocusedStyle
	}
	cancelStyle := styles.SecondaryButtonStyle
	if onButtons && m.onCancelButton {
		cancelStyle = styles.SecondaryButtonFocusedStyle
	}
	return saveStyle.Render("Save") + "  " + cancelStyle.Render("Cancel")
}

// Overlay renders the form centered over the background.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}
