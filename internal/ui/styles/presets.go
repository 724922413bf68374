// Package styles contains Lip Gloss style definitions.
package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"catppuccin-latte": CatppuccinLattePreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset is the stock vitrine color scheme.
// Color values match the styles.go AdaptiveColor definitions (Dark values).
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default vitrine theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#CCCCCC",
		TokenTextSecondary:   "#BBBBBB",
		TokenTextMuted:       "#696969",
		TokenTextDescription: "#999999",
		TokenTextPlaceholder: "#777777",

		// Borders
		TokenBorderDefault:   "#696969",
		TokenBorderFocus:     "#FFFFFF",
		TokenBorderHighlight: "#54A0FF",

		// Status indicators
		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		// Selection
		TokenSelectionIndicator:  "#FFFFFF",
		TokenSelectionBackground: "#3A3A3A",

		// Buttons
		TokenButtonText:             "#FFFFFF",
		TokenButtonPrimaryBg:        "#1A5276",
		TokenButtonPrimaryFocusBg:   "#3498DB",
		TokenButtonSecondaryBg:      "#2D3436",
		TokenButtonSecondaryFocusBg: "#636E72",
		TokenButtonDangerBg:         "#922B21",
		TokenButtonDangerFocusBg:    "#E74C3C",
		TokenButtonDisabledBg:       "#2D2D2D",

		// Forms
		TokenFormBorder:      "#8C8C8C",
		TokenFormBorderFocus: "#FFFFFF",
		TokenFormLabel:       "#8C8C8C",
		TokenFormLabelFocus:  "#FFFFFF",

		// Overlays/Modals
		TokenOverlayTitle:  "#C9C9C9",
		TokenOverlayBorder: "#8C8C8C",

		// Toast notifications
		TokenToastSuccess: "#73F59F",
		TokenToastError:   "#FF8787",
		TokenToastInfo:    "#54A0FF",
		TokenToastWarn:    "#FECA57",

		// Product presentation
		TokenPrice:         "#73F59F",
		TokenPriceSale:     "#FF8787",
		TokenBadgeFeatured: "#7D56F4",

		// Stock levels
		TokenStockIn:  "#73F59F",
		TokenStockLow: "#FECA57",
		TokenStockOut: "#FF8787",

		// Category badges
		TokenCategoryApparel:     "#54A0FF",
		TokenCategoryHomewares:   "#FF9F43",
		TokenCategoryStationery:  "#73F59F",
		TokenCategoryAccessories: "#7D56F4",

		// Rotation indicators
		TokenIndicatorActive:   "#FFFFFF",
		TokenIndicatorInactive: "#696969",

		// Crossfade dimming
		TokenFadeDim: "#555555",

		// Misc
		TokenSpinner: "#FFFFFF",
	},
}

// CatppuccinMochaPreset is the Catppuccin Mocha (dark) theme.
// Colors from: https://catppuccin.com/palette
// Mocha flavor - warm, cozy dark theme with pastel colors.
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Catppuccin Mocha - warm, cozy dark theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#CDD6F4", // text
		TokenTextSecondary:   "#BAC2DE", // subtext1
		TokenTextMuted:       "#6C7086", // overlay0
		TokenTextDescription: "#A6ADC8", // subtext0
		TokenTextPlaceholder: "#585B70", // surface2

		// Borders
		TokenBorderDefault:   "#6C7086", // overlay0
		TokenBorderFocus:     "#CDD6F4", // text
		TokenBorderHighlight: "#89B4FA", // blue

		// Status indicators
		TokenStatusSuccess: "#A6E3A1", // green
		TokenStatusWarning: "#F9E2AF", // yellow
		TokenStatusError:   "#F38BA8", // red

		// Selection
		TokenSelectionIndicator:  "#CDD6F4", // text
		TokenSelectionBackground: "#313244", // surface0

		// Buttons
		TokenButtonText:             "#1E1E2E", // base
		TokenButtonPrimaryBg:        "#89B4FA", // blue
		TokenButtonPrimaryFocusBg:   "#B4BEFE", // lavender
		TokenButtonSecondaryBg:      "#45475A", // surface1
		TokenButtonSecondaryFocusBg: "#585B70", // surface2
		TokenButtonDangerBg:         "#F38BA8", // red
		TokenButtonDangerFocusBg:    "#EBA0AC", // maroon
		TokenButtonDisabledBg:       "#313244", // surface0

		// Forms
		TokenFormBorder:      "#6C7086", // overlay0
		TokenFormBorderFocus: "#CDD6F4", // text
		TokenFormLabel:       "#6C7086", // overlay0
		TokenFormLabelFocus:  "#CDD6F4", // text

		// Overlays/Modals
		TokenOverlayTitle:  "#CDD6F4", // text
		TokenOverlayBorder: "#6C7086", // overlay0

		// Toast notifications
		TokenToastSuccess: "#A6E3A1", // green
		TokenToastError:   "#F38BA8", // red
		TokenToastInfo:    "#89B4FA", // blue
		TokenToastWarn:    "#F9E2AF", // yellow

		// Product presentation
		TokenPrice:         "#A6E3A1", // green
		TokenPriceSale:     "#F38BA8", // red
		TokenBadgeFeatured: "#CBA6F7", // mauve

		// Stock levels
		TokenStockIn:  "#A6E3A1", // green
		TokenStockLow: "#F9E2AF", // yellow
		TokenStockOut: "#F38BA8", // red

		// Category badges
		TokenCategoryApparel:     "#89B4FA", // blue
		TokenCategoryHomewares:   "#FAB387", // peach
		TokenCategoryStationery:  "#94E2D5", // teal
		TokenCategoryAccessories: "#CBA6F7", // mauve

		// Rotation indicators
		TokenIndicatorActive:   "#CDD6F4", // text
		TokenIndicatorInactive: "#585B70", // surface2

		// Crossfade dimming
		TokenFadeDim: "#45475A", // surface1

		// Misc
		TokenSpinner: "#CBA6F7", // mauve
	},
}

// CatppuccinLattePreset is the Catppuccin Latte (light) theme.
// Colors from: https://catppuccin.com/palette
// Latte flavor - light theme for bright environments.
var CatppuccinLattePreset = Preset{
	Name:        "catppuccin-latte",
	Description: "Catppuccin Latte - warm, cozy light theme",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#4C4F69", // text
		TokenTextSecondary:   "#5C5F77", // subtext1
		TokenTextMuted:       "#9CA0B0", // overlay0
		TokenTextDescription: "#6C6F85", // subtext0
		TokenTextPlaceholder: "#ACB0BE", // surface2

		// Borders
		TokenBorderDefault:   "#9CA0B0", // overlay0
		TokenBorderFocus:     "#4C4F69", // text
		TokenBorderHighlight: "#1E66F5", // blue

		// Status indicators
		TokenStatusSuccess: "#40A02B", // green
		TokenStatusWarning: "#DF8E1D", // yellow
		TokenStatusError:   "#D20F39", // red

		// Selection
		TokenSelectionIndicator:  "#4C4F69", // text
		TokenSelectionBackground: "#CCD0DA", // surface0

		// Buttons
		TokenButtonText:             "#EFF1F5", // base
		TokenButtonPrimaryBg:        "#1E66F5", // blue
		TokenButtonPrimaryFocusBg:   "#7287FD", // lavender
		TokenButtonSecondaryBg:      "#BCC0CC", // surface1
		TokenButtonSecondaryFocusBg: "#ACB0BE", // surface2
		TokenButtonDangerBg:         "#D20F39", // red
		TokenButtonDangerFocusBg:    "#E64553", // maroon
		TokenButtonDisabledBg:       "#CCD0DA", // surface0

		// Forms
		TokenFormBorder:      "#9CA0B0", // overlay0
		TokenFormBorderFocus: "#4C4F69", // text
		TokenFormLabel:       "#9CA0B0", // overlay0
		TokenFormLabelFocus:  "#4C4F69", // text

		// Overlays/Modals
		TokenOverlayTitle:  "#4C4F69", // text
		TokenOverlayBorder: "#9CA0B0", // overlay0

		// Toast notifications
		TokenToastSuccess: "#40A02B", // green
		TokenToastError:   "#D20F39", // red
		TokenToastInfo:    "#1E66F5", // blue
		TokenToastWarn:    "#DF8E1D", // yellow

		// Product presentation
		TokenPrice:         "#40A02B", // green
		TokenPriceSale:     "#D20F39", // red
		TokenBadgeFeatured: "#8839EF", // mauve

		// Stock levels
		TokenStockIn:  "#40A02B", // green
		TokenStockLow: "#DF8E1D", // yellow
		TokenStockOut: "#D20F39", // red

		// Category badges
		TokenCategoryApparel:     "#1E66F5", // blue
		TokenCategoryHomewares:   "#FE640B", // peach
		TokenCategoryStationery:  "#179299", // teal
		TokenCategoryAccessories: "#8839EF", // mauve

		// Rotation indicators
		TokenIndicatorActive:   "#4C4F69", // text
		TokenIndicatorInactive: "#ACB0BE", // surface2

		// Crossfade dimming
		TokenFadeDim: "#BCC0CC", // surface1

		// Misc
		TokenSpinner: "#8839EF", // mauve
	},
}

// DraculaPreset is the Dracula theme.
// Colors from: https://draculatheme.com/contribute
// Dark theme with vibrant, high-contrast colors.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula - dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#F8F8F2", // foreground
		TokenTextSecondary:   "#F8F8F2", // foreground
		TokenTextMuted:       "#6272A4", // comment
		TokenTextDescription: "#F8F8F2", // foreground
		TokenTextPlaceholder: "#6272A4", // comment

		// Borders
		TokenBorderDefault:   "#6272A4", // comment
		TokenBorderFocus:     "#F8F8F2", // foreground
		TokenBorderHighlight: "#BD93F9", // purple

		// Status indicators
		TokenStatusSuccess: "#50FA7B", // green
		TokenStatusWarning: "#F1FA8C", // yellow
		TokenStatusError:   "#FF5555", // red

		// Selection
		TokenSelectionIndicator:  "#F8F8F2", // foreground
		TokenSelectionBackground: "#44475A", // current line

		// Buttons
		TokenButtonText:             "#282A36", // background
		TokenButtonPrimaryBg:        "#BD93F9", // purple
		TokenButtonPrimaryFocusBg:   "#FF79C6", // pink
		TokenButtonSecondaryBg:      "#44475A", // current line
		TokenButtonSecondaryFocusBg: "#6272A4", // comment
		TokenButtonDangerBg:         "#FF5555", // red
		TokenButtonDangerFocusBg:    "#FF6E6E", // lighter red
		TokenButtonDisabledBg:       "#44475A", // current line

		// Forms
		TokenFormBorder:      "#6272A4", // comment
		TokenFormBorderFocus: "#F8F8F2", // foreground
		TokenFormLabel:       "#6272A4", // comment
		TokenFormLabelFocus:  "#F8F8F2", // foreground

		// Overlays/Modals
		TokenOverlayTitle:  "#F8F8F2", // foreground
		TokenOverlayBorder: "#6272A4", // comment

		// Toast notifications
		TokenToastSuccess: "#50FA7B", // green
		TokenToastError:   "#FF5555", // red
		TokenToastInfo:    "#8BE9FD", // cyan
		TokenToastWarn:    "#F1FA8C", // yellow

		// Product presentation
		TokenPrice:         "#50FA7B", // green
		TokenPriceSale:     "#FF5555", // red
		TokenBadgeFeatured: "#BD93F9", // purple

		// Stock levels
		TokenStockIn:  "#50FA7B", // green
		TokenStockLow: "#F1FA8C", // yellow
		TokenStockOut: "#FF5555", // red

		// Category badges
		TokenCategoryApparel:     "#8BE9FD", // cyan
		TokenCategoryHomewares:   "#FFB86C", // orange
		TokenCategoryStationery:  "#50FA7B", // green
		TokenCategoryAccessories: "#BD93F9", // purple

		// Rotation indicators
		TokenIndicatorActive:   "#F8F8F2", // foreground
		TokenIndicatorInactive: "#6272A4", // comment

		// Crossfade dimming
		TokenFadeDim: "#44475A", // current line

		// Misc
		TokenSpinner: "#BD93F9", // purple
	},
}

// NordPreset is the Nord theme.
// Colors from: https://www.nordtheme.com/docs/colors-and-palettes
// Arctic, north-bluish color palette with calm, muted tones.
// Polar Night: #2E3440, #3B4252, #434C5E, #4C566A (backgrounds)
// Snow Storm: #D8DEE9, #E5E9F0, #ECEFF4 (text)
// Frost: #8FBCBB, #88C0D0, #81A1C1, #5E81AC (accents)
// Aurora: #BF616A (red), #D08770 (orange), #EBCB8B (yellow), #A3BE8C (green), #B48EAD (purple)
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		// Text hierarchy
		TokenTextPrimary:     "#ECEFF4", // snow storm 3
		TokenTextSecondary:   "#E5E9F0", // snow storm 2
		TokenTextMuted:       "#4C566A", // polar night 4
		TokenTextDescription: "#D8DEE9", // snow storm 1
		TokenTextPlaceholder: "#4C566A", // polar night 4

		// Borders
		TokenBorderDefault:   "#4C566A", // polar night 4
		TokenBorderFocus:     "#ECEFF4", // snow storm 3
		TokenBorderHighlight: "#88C0D0", // frost 2

		// Status indicators
		TokenStatusSuccess: "#A3BE8C", // aurora green
		TokenStatusWarning: "#EBCB8B", // aurora yellow
		TokenStatusError:   "#BF616A", // aurora red

		// Selection
		TokenSelectionIndicator:  "#ECEFF4", // snow storm 3
		TokenSelectionBackground: "#434C5E", // polar night 3

		// Buttons
		TokenButtonText:             "#2E3440", // polar night 1
		TokenButtonPrimaryBg:        "#5E81AC", // frost 4
		TokenButtonPrimaryFocusBg:   "#81A1C1", // frost 3
		TokenButtonSecondaryBg:      "#434C5E", // polar night 3
		TokenButtonSecondaryFocusBg: "#4C566A", // polar night 4
		TokenButtonDangerBg:         "#BF616A", // aurora red
		TokenButtonDangerFocusBg:    "#D08770", // aurora orange
		TokenButtonDisabledBg:       "#3B4252", // polar night 2

		// Forms
		TokenFormBorder:      "#4C566A", // polar night 4
		TokenFormBorderFocus: "#ECEFF4", // snow storm 3
		TokenFormLabel:       "#4C566A", // polar night 4
		TokenFormLabelFocus:  "#ECEFF4", // snow storm 3

		// Overlays/Modals
		TokenOverlayTitle:  "#ECEFF4", // snow storm 3
		TokenOverlayBorder: "#4C566A", // polar night 4

		// Toast notifications
		TokenToastSuccess: "#A3BE8C", // aurora green
		TokenToastError:   "#BF616A", // aurora red
		TokenToastInfo:    "#81A1C1", // frost 3
		TokenToastWarn:    "#EBCB8B", // aurora yellow

		// Product presentation
		TokenPrice:         "#A3BE8C", // aurora green
		TokenPriceSale:     "#BF616A", // aurora red
		TokenBadgeFeatured: "#B48EAD", // aurora purple

		// Stock levels
		TokenStockIn:  "#A3BE8C", // aurora green
		TokenStockLow: "#EBCB8B", // aurora yellow
		TokenStockOut: "#BF616A", // aurora red

		// Category badges
		TokenCategoryApparel:     "#88C0D0", // frost 2
		TokenCategoryHomewares:   "#D08770", // aurora orange
		TokenCategoryStationery:  "#8FBCBB", // frost 1
		TokenCategoryAccessories: "#B48EAD", // aurora purple

		// Rotation indicators
		TokenIndicatorActive:   "#ECEFF4", // snow storm 3
		TokenIndicatorInactive: "#4C566A", // polar night 4

		// Crossfade dimming
		TokenFadeDim: "#434C5E", // polar night 3

		// Misc
		TokenSpinner: "#88C0D0", // frost 2
	},
}

// HighContrastPreset is a high contrast theme for accessibility.
// Designed for users with visual impairments or those who prefer maximum visibility.
// All colors meet WCAG AAA contrast requirements (7:1 minimum ratio against black).
// No subtle or muted colors - everything is clearly visible.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		// Text hierarchy - pure white for maximum visibility
		TokenTextPrimary:     "#FFFFFF",
		TokenTextSecondary:   "#FFFFFF",
		TokenTextMuted:       "#FFFFFF", // no muted colors in high contrast
		TokenTextDescription: "#FFFFFF",
		TokenTextPlaceholder: "#CCCCCC", // slightly dimmed but still readable

		// Borders - white for maximum visibility
		TokenBorderDefault:   "#FFFFFF",
		TokenBorderFocus:     "#FFFF00", // bright yellow for focus
		TokenBorderHighlight: "#00FFFF", // cyan for highlights

		// Status indicators - pure, saturated colors
		TokenStatusSuccess: "#00FF00", // pure green
		TokenStatusWarning: "#FFFF00", // pure yellow
		TokenStatusError:   "#FF0000", // pure red

		// Selection - bright indicator
		TokenSelectionIndicator:  "#FFFF00", // yellow for visibility
		TokenSelectionBackground: "#333333", // dark gray

		// Buttons - high contrast backgrounds
		TokenButtonText:             "#000000", // black text on bright buttons
		TokenButtonPrimaryBg:        "#00FFFF", // cyan
		TokenButtonPrimaryFocusBg:   "#FFFFFF", // white when focused
		TokenButtonSecondaryBg:      "#808080", // gray
		TokenButtonSecondaryFocusBg: "#FFFFFF", // white when focused
		TokenButtonDangerBg:         "#FF0000", // red
		TokenButtonDangerFocusBg:    "#FF6666", // lighter red
		TokenButtonDisabledBg:       "#404040", // dark gray

		// Forms - white borders for visibility
		TokenFormBorder:      "#FFFFFF",
		TokenFormBorderFocus: "#FFFF00", // yellow focus
		TokenFormLabel:       "#FFFFFF",
		TokenFormLabelFocus:  "#FFFF00",

		// Overlays/Modals - white borders
		TokenOverlayTitle:  "#FFFFFF",
		TokenOverlayBorder: "#FFFFFF",

		// Toast notifications - pure colors
		TokenToastSuccess: "#00FF00",
		TokenToastError:   "#FF0000",
		TokenToastInfo:    "#00FFFF",
		TokenToastWarn:    "#FFFF00",

		// Product presentation - saturated colors
		TokenPrice:         "#00FF00", // green
		TokenPriceSale:     "#FF0000", // red
		TokenBadgeFeatured: "#FF00FF", // magenta

		// Stock levels
		TokenStockIn:  "#00FF00", // green
		TokenStockLow: "#FFFF00", // yellow
		TokenStockOut: "#FF0000", // red

		// Category badges - distinct colors
		TokenCategoryApparel:     "#00FFFF", // cyan
		TokenCategoryHomewares:   "#FF8800", // orange
		TokenCategoryStationery:  "#00FF00", // green
		TokenCategoryAccessories: "#FF00FF", // magenta

		// Rotation indicators
		TokenIndicatorActive:   "#FFFF00", // yellow for visibility
		TokenIndicatorInactive: "#808080", // gray (inactive is the one muted color)

		// Crossfade dimming
		TokenFadeDim: "#808080", // gray

		// Misc
		TokenSpinner: "#FFFF00", // yellow for visibility
	},
}
