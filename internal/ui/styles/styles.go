// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#CCCCCC"} // Main/primary text
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#BBBBBB"} // Slugs, secondary info
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Hints, help text, footers
	TextDescriptionColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"} // Description/body text
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Input placeholders

	// Semantic color names - Border
	BorderDefaultColor        = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Unfocused borders
	BorderHighlightFocusColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"} // Hovered/focused cards

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Success states
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Warnings
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors

	// Selection indicator color (used for ">" prefix in lists)
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}

	// Selected table row background
	SelectionBackgroundColor = lipgloss.AdaptiveColor{Light: "#DDDDDD", Dark: "#3A3A3A"}

	// Button colors
	ButtonTextColor             = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonPrimaryBgColor        = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	ButtonPrimaryFocusBgColor   = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}
	ButtonSecondaryBgColor      = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#2D3436"}
	ButtonSecondaryFocusBgColor = lipgloss.AdaptiveColor{Light: "#636E72", Dark: "#636E72"}
	ButtonDangerBgColor         = lipgloss.AdaptiveColor{Light: "#922B21", Dark: "#922B21"}
	ButtonDangerFocusBgColor    = lipgloss.AdaptiveColor{Light: "#E74C3C", Dark: "#E74C3C"}
	ButtonDisabledBgColor       = lipgloss.AdaptiveColor{Light: "#2D2D2D", Dark: "#2D2D2D"}

	// Form colors
	FormTextInputBorderColor        = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}
	FormTextInputFocusedBorderColor = lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}
	FormTextInputLabelColor         = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}
	FormTextInputFocusedLabelColor  = lipgloss.AdaptiveColor{Light: "#FFF", Dark: "#FFF"}

	// Overlay colors
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8C8C8C"}

	// Toast notification colors
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ToastBorderWarnColor    = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}

	// Product presentation colors
	PriceColor         = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	PriceSaleColor     = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}
	BadgeFeaturedColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// Stock level colors
	StockInColor  = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StockLowColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StockOutColor = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Category badge colors
	CategoryApparelColor     = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	CategoryHomewaresColor   = lipgloss.AdaptiveColor{Light: "#FF9F43", Dark: "#FF9F43"}
	CategoryStationeryColor  = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	CategoryAccessoriesColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// Rotation indicator colors
	IndicatorActiveColor   = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	IndicatorInactiveColor = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"}

	// Crossfade dimming color, applied to art mid-transition
	FadeDimColor = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#555555"}

	// Loading spinner color
	SpinnerColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#FFF"}

	// Selection indicator style (used for ">" prefix in lists: picker, tables, etc.)
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	baseButtonStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true)

	PrimaryButtonStyle = baseButtonStyle.
				Foreground(ButtonTextColor).
				Background(ButtonPrimaryBgColor)

	PrimaryButtonFocusedStyle = baseButtonStyle.
					Foreground(ButtonTextColor).
					Background(ButtonPrimaryFocusBgColor).
					Underline(true).
					UnderlineSpaces(true)

	SecondaryButtonStyle = baseButtonStyle.
				Foreground(ButtonTextColor).
				Background(ButtonSecondaryBgColor)

	SecondaryButtonFocusedStyle = baseButtonStyle.
					Foreground(ButtonTextColor).
					Background(ButtonSecondaryFocusBgColor).
					Underline(true).
					UnderlineSpaces(true)

	DangerButtonStyle = baseButtonStyle.
				Foreground(ButtonTextColor).
				Background(ButtonDangerBgColor)

	DangerButtonFocusedStyle = baseButtonStyle.
					Foreground(ButtonTextColor).
					Background(ButtonDangerFocusBgColor).
					Underline(true).
					UnderlineSpaces(true)

	// Product styles
	PriceStyle         = lipgloss.NewStyle().Foreground(PriceColor).Bold(true)
	PriceSaleStyle     = lipgloss.NewStyle().Foreground(PriceSaleColor).Bold(true)
	BadgeFeaturedStyle = lipgloss.NewStyle().Foreground(BadgeFeaturedColor).Bold(true)

	// Stock styles
	StockInStyle  = lipgloss.NewStyle().Foreground(StockInColor)
	StockLowStyle = lipgloss.NewStyle().Foreground(StockLowColor)
	StockOutStyle = lipgloss.NewStyle().Foreground(StockOutColor).Bold(true)

	// Category styles
	CategoryApparelStyle     = lipgloss.NewStyle().Foreground(CategoryApparelColor)
	CategoryHomewaresStyle   = lipgloss.NewStyle().Foreground(CategoryHomewaresColor)
	CategoryStationeryStyle  = lipgloss.NewStyle().Foreground(CategoryStationeryColor)
	CategoryAccessoriesStyle = lipgloss.NewStyle().Foreground(CategoryAccessoriesColor)

	// Rotation indicator styles
	IndicatorActiveStyle   = lipgloss.NewStyle().Foreground(IndicatorActiveColor).Bold(true)
	IndicatorInactiveStyle = lipgloss.NewStyle().Foreground(IndicatorInactiveColor)

	// Crossfade dim style
	FadeDimStyle = lipgloss.NewStyle().Foreground(FadeDimColor)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	// Error display
	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true).
			Padding(1, 2)
)
