package toaster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_HiddenAndEmpty(t *testing.T) {
	m := New()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow_ReplacesExisting(t *testing.T) {
	m := New().
		Show("Added Wool Scarf to cart", StyleSuccess).
		Show("Out of stock", StyleError)

	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "Out of stock")
	assert.NotContains(t, m.View(), "Wool Scarf")
}

func TestHide_ClearsMessage(t *testing.T) {
	m := New().Show("Added to cart", StyleSuccess).Hide()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestView_EmptyWhenMessageEmpty(t *testing.T) {
	m := Model{visible: true, message: ""}
	assert.Empty(t, m.View())
}

func TestView_StylesCarryEmojiAndBorder(t *testing.T) {
	tests := []struct {
		style Style
		emoji string
	}{
		{StyleSuccess, "✅"},
		{StyleError, "❌"},
		{StyleInfo, "ℹ️"},
		{StyleWarn, "⚠️"},
	}
	for _, tt := range tests {
		view := New().Show("catalog reloaded", tt.style).View()
		assert.Contains(t, view, tt.emoji)
		assert.Contains(t, view, "catalog reloaded")
		assert.Contains(t, view, "╭", "toast box keeps its rounded border")
	}
}

func TestOverlay_NotVisibleReturnsBackground(t *testing.T) {
	bg := "Background\nContent"
	assert.Equal(t, bg, New().Overlay(bg, 20, 10))
}

func TestOverlay_EmptyMessageReturnsBackground(t *testing.T) {
	m := Model{visible: true, message: ""}
	assert.Equal(t, "Background", m.Overlay("Background", 20, 10))
}

func TestOverlay_VisiblePlacesAtBottom(t *testing.T) {
	m := New().Show("Order placed", StyleSuccess)
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 30)+"\n", 12), "\n")

	result := m.Overlay(bg, 30, 12)

	lines := strings.Split(result, "\n")
	found := false
	for _, line := range lines[len(lines)-5:] {
		if strings.Contains(line, "Order placed") {
			found = true
			break
		}
	}
	assert.True(t, found, "toast should appear near the bottom of the view")
	assert.Equal(t, strings.Repeat(".", 30), lines[0], "top of the background stays untouched")
}

func TestScheduleDismiss_ReturnsCmd(t *testing.T) {
	assert.NotNil(t, ScheduleDismiss(0))
}

func TestShow_ImmutableModel(t *testing.T) {
	m1 := New()
	m2 := m1.Show("Added to cart", StyleSuccess)

	assert.False(t, m1.Visible())
	assert.True(t, m2.Visible())
}
