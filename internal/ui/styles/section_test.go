package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderFormSection(t *testing.T) {
	focusColor := lipgloss.Color("#54A0FF")

	tests := []struct {
		name           string
		content        []string
		title          string
		hint           string
		width          int
		focused        bool
		wantContains   []string
		wantNotContain []string
	}{
		{
			name:         "basic section with title",
			content:      []string{"  Wool Scarf"},
			title:        "Name",
			width:        30,
			wantContains: []string{"╭─ Name", "│", "Wool Scarf", "╰"},
		},
		{
			name:         "section with title and hint",
			content:      []string{"  29.50"},
			title:        "Price",
			hint:         "USD",
			width:        40,
			wantContains: []string{"╭─ Price", "(USD)", "│", "29.50", "╰"},
		},
		{
			name:           "empty title renders plain border",
			content:        []string{"Content"},
			title:          "",
			width:          20,
			wantContains:   []string{"╭", "─", "╮", "│", "Content", "╰", "╯"},
			wantNotContain: []string{"╭─ "},
		},
		{
			name:         "multiple content lines",
			content:      []string{"SCARF-01", "BOWL-02", "KEYRING-03"},
			title:        "SKUs",
			width:        25,
			wantContains: []string{"SCARF-01", "BOWL-02", "KEYRING-03"},
		},
		{
			name:         "focused section",
			content:      []string{"Quantity"},
			title:        "Stock",
			width:        30,
			focused:      true,
			wantContains: []string{"╭─ Stock", "│", "Quantity", "╰"},
		},
		{
			name:         "narrow width handles gracefully",
			content:      []string{"X"},
			title:        "T",
			width:        5,
			wantContains: []string{"╭", "╮", "│", "X", "╰", "╯"},
		},
		{
			name:         "minimum width",
			content:      []string{"A"},
			width:        3,
			wantContains: []string{"╭", "╮", "│", "╰", "╯"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderFormSection(tt.content, tt.title, tt.hint, tt.width, tt.focused, focusColor)

			for _, want := range tt.wantContains {
				assert.Contains(t, result, want)
			}
			for _, notWant := range tt.wantNotContain {
				assert.NotContains(t, result, notWant)
			}
		})
	}
}

func TestRenderFormSection_FocusChangesColor(t *testing.T) {
	// Force ANSI output so the focus color survives the test environment.
	lipgloss.SetColorProfile(termenv.ANSI256)

	focusColor := lipgloss.Color("#54A0FF")
	unfocused := RenderFormSection([]string{"Content"}, "Slug", "", 30, false, focusColor)
	focused := RenderFormSection([]string{"Content"}, "Slug", "", 30, true, focusColor)

	for _, want := range []string{"╭", "╮", "│", "╰", "╯", "Content", "Slug"} {
		assert.Contains(t, unfocused, want)
		assert.Contains(t, focused, want)
	}
	assert.NotEqual(t, unfocused, focused, "focus swaps the border color codes")
}

func TestRenderFormSection_ContentPadding(t *testing.T) {
	result := RenderFormSection([]string{"Short"}, "Name", "", 30, false, BorderHighlightFocusColor)

	lines := strings.Split(result, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[1], "│", "content row keeps both side borders")
}

func TestRenderFormSection_HintFormatting(t *testing.T) {
	result := RenderFormSection([]string{"Content"}, "Discount", "percent", 40, false, BorderHighlightFocusColor)

	assert.Contains(t, result, "(percent)")
}

func TestRenderFormSection_EmptyContent(t *testing.T) {
	result := RenderFormSection([]string{}, "Images", "", 30, false, BorderHighlightFocusColor)

	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestRenderFormSection_LongTitle(t *testing.T) {
	longTitle := "Hand Thrown Ceramic Bowl With Speckled Glaze And Matching Saucer"
	result := RenderFormSection([]string{"Content"}, longTitle, "", 30, false, BorderHighlightFocusColor)

	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╮")
	assert.Contains(t, result, "Hand", "leading part of the title survives")
}
