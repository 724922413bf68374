package modal

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InputMode(t *testing.T) {
	m := New(Config{
		Title: "Rename Product",
		Inputs: []InputConfig{
			{Key: "name", Label: "Name", Placeholder: "Product name..."},
		},
	})

	assert.True(t, m.hasInputs)
	require.Len(t, m.inputs, 1)
	assert.Equal(t, "Product name...", m.inputs[0].Placeholder)
	assert.Equal(t, 0, m.FocusedInput(), "first input starts focused")
}

func TestNew_ConfirmMode(t *testing.T) {
	m := New(Config{
		Title:   "Delete Product",
		Message: "Delete Wool Scarf? This cannot be undone.",
	})

	assert.False(t, m.hasInputs)
	assert.Equal(t, -1, m.FocusedInput())
	assert.Equal(t, FieldSave, m.FocusedField())
}

func TestNew_InitialValueAndMaxLength(t *testing.T) {
	m := New(Config{
		Title: "Edit SKU",
		Inputs: []InputConfig{
			{Key: "sku", Label: "SKU", Placeholder: "SKU...", Value: "SCARF-01", MaxLength: 12},
		},
	})

	assert.Equal(t, "SCARF-01", m.inputs[0].Value())
	assert.Equal(t, 12, m.inputs[0].CharLimit)
}

func TestNew_MultipleInputs(t *testing.T) {
	m := New(Config{
		Title: "New Discount",
		Inputs: []InputConfig{
			{Key: "code", Label: "Code", Placeholder: "SUMMER10"},
			{Key: "percent", Label: "Percent", Placeholder: "10"},
		},
	})

	require.Len(t, m.inputs, 2)
	assert.Equal(t, []string{"code", "percent"}, m.inputKeys)
}

func TestInit(t *testing.T) {
	withInput := New(Config{
		Title:  "Rename",
		Inputs: []InputConfig{{Key: "name", Label: "Name"}},
	})
	assert.NotNil(t, withInput.Init(), "input mode starts the cursor blink")

	confirm := New(Config{Title: "Confirm"})
	assert.Nil(t, confirm.Init())
}

func TestUpdate_Submit(t *testing.T) {
	m := New(Config{
		Title: "Rename Product",
		Inputs: []InputConfig{
			{Key: "name", Label: "Name", Value: "Ceramic Bowl"},
		},
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, -1, m.FocusedInput())
	require.Equal(t, FieldSave, m.FocusedField())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	submit, ok := cmd().(SubmitMsg)
	require.True(t, ok, "enter on Save emits SubmitMsg")
	assert.Equal(t, "Ceramic Bowl", submit.Values["name"])
}

func TestUpdate_EscCancels(t *testing.T) {
	m := New(Config{
		Title:  "Rename Product",
		Inputs: []InputConfig{{Key: "name", Label: "Name"}},
	})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.IsType(t, CancelMsg{}, cmd())
}

func TestUpdate_CancelButton(t *testing.T) {
	m := New(Config{
		Title:  "Rename Product",
		Inputs: []InputConfig{{Key: "name", Label: "Name"}},
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, FieldCancel, m.FocusedField())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, CancelMsg{}, cmd())
}

func TestUpdate_EmptyInputBlocksSubmit(t *testing.T) {
	m := New(Config{
		Title:  "Rename Product",
		Inputs: []InputConfig{{Key: "name", Label: "Name"}},
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		_, submitted := cmd().(SubmitMsg)
		assert.False(t, submitted, "empty input must not submit")
	}
}

func TestUpdate_ConfirmSubmitsImmediately(t *testing.T) {
	m := New(Config{
		Title:          "Delete Product",
		Message:        "Delete Brass Keyring?",
		ConfirmVariant: ButtonDanger,
	})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	submit, ok := cmd().(SubmitMsg)
	require.True(t, ok)
	assert.Empty(t, submit.Values)
}

func TestUpdate_WindowSize(t *testing.T) {
	m := New(Config{Title: "Delete Product"})

	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Equal(t, 100, m.width)
	assert.Equal(t, 50, m.height)
}

func TestUpdate_TabCycle(t *testing.T) {
	m := New(Config{
		Title: "New Discount",
		Inputs: []InputConfig{
			{Key: "code", Label: "Code"},
			{Key: "percent", Label: "Percent"},
		},
	})
	require.Equal(t, 0, m.FocusedInput())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.FocusedInput())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, -1, m.FocusedInput())
	assert.Equal(t, FieldSave, m.FocusedField())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldCancel, m.FocusedField())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.FocusedInput(), "tab wraps back to the first input")
}

func TestUpdate_ShiftTabCycle(t *testing.T) {
	m := New(Config{
		Title:  "Rename Product",
		Inputs: []InputConfig{{Key: "name", Label: "Name"}},
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FieldCancel, m.FocusedField())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FieldSave, m.FocusedField())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 0, m.FocusedInput(), "shift+tab wraps back to the last input")
}

func TestUpdate_LeftRightBetweenButtons(t *testing.T) {
	m := New(Config{Title: "Delete Product"})
	require.Equal(t, FieldSave, m.FocusedField())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, FieldCancel, m.FocusedField())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, FieldSave, m.FocusedField())
}

func TestView_InputMode(t *testing.T) {
	view := New(Config{
		Title: "Rename Product",
		Inputs: []InputConfig{
			{Key: "name", Label: "Product Name", Placeholder: "Name..."},
		},
	}).View()

	assert.Contains(t, view, "Rename Product")
	assert.Contains(t, view, "Product Name")
	assert.Contains(t, view, "Save")
	assert.Contains(t, view, "Cancel")
}

func TestView_ConfirmMode(t *testing.T) {
	view := New(Config{
		Title:          "Delete Product",
		Message:        "Delete Wool Scarf? Existing orders keep their line items.",
		ConfirmVariant: ButtonDanger,
	}).View()

	assert.Contains(t, view, "Delete Product")
	assert.Contains(t, view, "Delete Wool Scarf?")
	assert.Contains(t, view, "Confirm")
	assert.Contains(t, view, "Cancel")
}

func TestSetSize(t *testing.T) {
	m := New(Config{Title: "Delete Product"})

	m.SetSize(200, 100)

	assert.Equal(t, 200, m.width)
	assert.Equal(t, 100, m.height)
}

func TestOverlay_CentersOverBackground(t *testing.T) {
	m := New(Config{Title: "Delete Product", Message: "Delete Ceramic Bowl?"})
	m.SetSize(80, 24)

	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 80)+"\n", 24), "\n")
	result := m.Overlay(bg)

	assert.Contains(t, result, "Delete Product")
	assert.Contains(t, result, "....", "background remains visible around the modal")
}
