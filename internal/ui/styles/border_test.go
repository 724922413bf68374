package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testColorRed   = lipgloss.Color("#FF0000")
	testColorGreen = lipgloss.Color("#00FF00")
)

func TestRenderWithTitleBorder_Basic(t *testing.T) {
	result := RenderWithTitleBorder("Wool Scarf", "Featured", 20, 5, false, testColorGreen, testColorGreen)

	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╮")
	assert.Contains(t, result, "╰")
	assert.Contains(t, result, "╯")

	lines := strings.Split(result, "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "Featured", "title sits in the top edge")
}

func TestRenderWithTitleBorder_FocusKeepsStructure(t *testing.T) {
	unfocused := RenderWithTitleBorder("content", "Cart", 20, 5, false, testColorGreen, testColorGreen)
	focused := RenderWithTitleBorder("content", "Cart", 20, 5, true, testColorGreen, testColorGreen)

	assert.Equal(t, len(strings.Split(unfocused, "\n")), len(strings.Split(focused, "\n")))
	assert.Contains(t, unfocused, "Cart")
	assert.Contains(t, focused, "Cart")
}

func TestRenderWithTitleBorder_LongTitleTruncated(t *testing.T) {
	longTitle := "Hand Thrown Ceramic Bowl With Speckled Glaze"
	result := RenderWithTitleBorder("content", longTitle, 20, 5, false, testColorRed, testColorRed)

	lines := strings.Split(result, "\n")
	require.NotEmpty(t, lines)
	assert.LessOrEqual(t, lipgloss.Width(lines[0]), 20)
	assert.Contains(t, lines[0], "...")
}

func TestRenderWithTitleBorder_EmptyContent(t *testing.T) {
	result := RenderWithTitleBorder("", "Orders", 20, 5, false, testColorRed, testColorRed)

	assert.Contains(t, result, "Orders")
	// top border + 3 content rows + bottom border
	assert.Len(t, strings.Split(result, "\n"), 5)
}

func TestRenderWithTitleBorder_NarrowWidth(t *testing.T) {
	result := RenderWithTitleBorder("x", "T", 6, 3, false, testColorRed, testColorRed)

	for i, line := range strings.Split(result, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 6, "line %d too wide: %q", i, line)
	}
}

func TestRenderWithTitleBorder_MinimalWidth(t *testing.T) {
	result := RenderWithTitleBorder("", "", 3, 3, false, BorderDefaultColor, BorderDefaultColor)

	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╯")
}

func TestRenderWithTitleBorder_EmptyTitlePlainEdge(t *testing.T) {
	result := RenderWithTitleBorder("content", "", 20, 5, false, testColorGreen, testColorGreen)

	lines := strings.Split(result, "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.NotContains(t, lines[0], " ", "plain top edge has no title gap")
}

func TestRenderWithTitleBorder_MultilineContent(t *testing.T) {
	content := "Merino wool\nHand wash only\n$29.50"
	result := RenderWithTitleBorder(content, "Details", 20, 7, false, testColorRed, testColorRed)

	assert.Contains(t, result, "Merino wool")
	assert.Contains(t, result, "Hand wash only")
	assert.Contains(t, result, "$29.50")
}

func TestRenderWithTitleBorder_RowsPaddedToWidth(t *testing.T) {
	result := RenderWithTitleBorder("Hi", "Cart", 20, 5, false, testColorRed, testColorRed)

	lines := strings.Split(result, "\n")
	for i := 1; i < len(lines)-1; i++ {
		assert.Equal(t, 20, lipgloss.Width(lines[i]), "row %d: %q", i, lines[i])
	}
}

func TestTruncateString_Border(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "Scarf", 10, "Scarf"},
		{"exact", "Scarf", 5, "Scarf"},
		{"truncate", "Wool Scarf", 8, "Wool ..."},
		{"very short", "Scarf", 3, "..."},
		{"minimal", "Scarf", 1, "."},
		{"zero", "Scarf", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateString(tt.input, tt.maxWidth))
		})
	}
}

func TestBuildTopBorder(t *testing.T) {
	borderStyle := lipgloss.NewStyle().Foreground(BorderDefaultColor)
	titleStyle := lipgloss.NewStyle().Foreground(testColorGreen)

	tests := []struct {
		name       string
		title      string
		innerWidth int
		wantTitle  bool
	}{
		{"normal", "Products", 20, true},
		{"empty title", "", 20, false},
		{"too narrow for title", "Products", 3, false},
		{"just enough", "P", 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildTopBorder(tt.title, tt.innerWidth, borderStyle, titleStyle)

			assert.True(t, strings.HasPrefix(got, "╭"))
			assert.True(t, strings.HasSuffix(got, "╮"))
			if tt.wantTitle {
				assert.Contains(t, got, tt.title)
			}
		})
	}
}
