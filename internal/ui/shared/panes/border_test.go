package panes

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestBorderedPane_Dimensions(t *testing.T) {
	out := BorderedPane(BorderConfig{
		Content: "Wool Scarf\n$29.50",
		Width:   30,
		Height:  6,
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	for i, line := range lines {
		require.Equal(t, 30, lipgloss.Width(line), "line %d", i)
	}
}

func TestBorderedPane_TopLeftTitle(t *testing.T) {
	out := BorderedPane(BorderConfig{
		Content: "3 items",
		Width:   30,
		Height:  4,
		TopLeft: "Orders",
	})

	top := strings.Split(out, "\n")[0]
	require.Contains(t, top, "Orders")
	require.True(t, strings.HasPrefix(top, "╭"))
	require.True(t, strings.HasSuffix(top, "╮"))
}

func TestBorderedPane_BottomRightTitle(t *testing.T) {
	out := BorderedPane(BorderConfig{
		Content:     "rows",
		Width:       30,
		Height:      4,
		BottomRight: "2 of 8",
	})

	lines := strings.Split(out, "\n")
	require.Contains(t, lines[len(lines)-1], "2 of 8")
}

func TestBorderedPane_TitleTruncatedWhenNarrow(t *testing.T) {
	out := BorderedPane(BorderConfig{
		Content: "x",
		Width:   12,
		Height:  3,
		TopLeft: "An Extremely Long Panel Title",
	})

	top := strings.Split(out, "\n")[0]
	require.Equal(t, 12, lipgloss.Width(top))
	require.Contains(t, top, "...")
}

func TestBorderedPane_RightTitleDroppedBeforeLeft(t *testing.T) {
	out := BorderedPane(BorderConfig{
		Content:  "x",
		Width:    14,
		Height:   3,
		TopLeft:  "Products",
		TopRight: "8 rows",
	})

	top := strings.Split(out, "\n")[0]
	require.Contains(t, top, "Products")
	require.NotContains(t, top, "8 rows")
}

func TestBorderedPane_PreWrappedContentKeptVerbatim(t *testing.T) {
	out := BorderedPane(BorderConfig{
		Content:    "row one\nrow two",
		Width:      20,
		Height:     4,
		PreWrapped: true,
	})

	lines := strings.Split(out, "\n")
	require.Contains(t, lines[1], "row one")
	require.Contains(t, lines[2], "row two")
	for i, line := range lines {
		require.Equal(t, 20, lipgloss.Width(line), "line %d", i)
	}
}

func TestBorderedPane_TallContentClamped(t *testing.T) {
	out := BorderedPane(BorderConfig{
		Content: strings.Repeat("line\n", 10),
		Width:   16,
		Height:  5,
	})

	require.Len(t, strings.Split(out, "\n"), 5)
}

func TestBorderConfig_EffectiveBorderColor(t *testing.T) {
	base := lipgloss.Color("63")
	focus := lipgloss.Color("205")

	tests := []struct {
		name string
		cfg  BorderConfig
		want lipgloss.TerminalColor
	}{
		{"unfocused uses border color", BorderConfig{BorderColor: base}, base},
		{"focused inherits border color when no focus color", BorderConfig{BorderColor: base, Focused: true}, base},
		{"focused prefers focus color", BorderConfig{BorderColor: base, FocusedBorderColor: focus, Focused: true}, focus},
		{"unfocused with only focus color falls back to default", BorderConfig{FocusedBorderColor: focus}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.effectiveBorderColor()
			if tt.want == nil {
				require.NotEqual(t, focus, got)
				return
			}
			require.Equal(t, tt.want, got)
		})
	}
}
