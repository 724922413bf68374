// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Text hierarchy
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextSecondary   ColorToken = "text.secondary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextDescription ColorToken = "text.description"
	TokenTextPlaceholder ColorToken = "text.placeholder"

	// Borders
	TokenBorderDefault   ColorToken = "border.default"
	TokenBorderFocus     ColorToken = "border.focus"
	TokenBorderHighlight ColorToken = "border.highlight"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Selection
	TokenSelectionIndicator  ColorToken = "selection.indicator"
	TokenSelectionBackground ColorToken = "selection.background"

	// Buttons
	TokenButtonText             ColorToken = "button.text"
	TokenButtonPrimaryBg        ColorToken = "button.primary.bg"
	TokenButtonPrimaryFocusBg   ColorToken = "button.primary.focus"
	TokenButtonSecondaryBg      ColorToken = "button.secondary.bg"
	TokenButtonSecondaryFocusBg ColorToken = "button.secondary.focus"
	TokenButtonDangerBg         ColorToken = "button.danger.bg"
	TokenButtonDangerFocusBg    ColorToken = "button.danger.focus"
	TokenButtonDisabledBg       ColorToken = "button.disabled.bg"

	// Forms
	TokenFormBorder      ColorToken = "form.border"
	TokenFormBorderFocus ColorToken = "form.border.focus" //nolint:gosec // UI color token, not credentials
	TokenFormLabel       ColorToken = "form.label"
	TokenFormLabelFocus  ColorToken = "form.label.focus"

	// Overlays/Modals
	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"

	// Toast notifications
	TokenToastSuccess ColorToken = "toast.success"
	TokenToastError   ColorToken = "toast.error"
	TokenToastInfo    ColorToken = "toast.info"
	TokenToastWarn    ColorToken = "toast.warn"

	// Product presentation
	TokenPrice         ColorToken = "price"
	TokenPriceSale     ColorToken = "price.sale"
	TokenBadgeFeatured ColorToken = "badge.featured"

	// Stock levels
	TokenStockIn  ColorToken = "stock.in"
	TokenStockLow ColorToken = "stock.low"
	TokenStockOut ColorToken = "stock.out"

	// Category badges
	TokenCategoryApparel     ColorToken = "category.apparel"
	TokenCategoryHomewares   ColorToken = "category.homewares"
	TokenCategoryStationery  ColorToken = "category.stationery"
	TokenCategoryAccessories ColorToken = "category.accessories"

	// Rotation indicators
	TokenIndicatorActive   ColorToken = "indicator.active"
	TokenIndicatorInactive ColorToken = "indicator.inactive"

	// Crossfade dimming
	TokenFadeDim ColorToken = "fade.dim"

	// Misc
	TokenSpinner ColorToken = "spinner"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		// Text hierarchy
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,
		TokenTextDescription,
		TokenTextPlaceholder,

		// Borders
		TokenBorderDefault,
		TokenBorderFocus,
		TokenBorderHighlight,

		// Status indicators
		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,

		// Selection
		TokenSelectionIndicator,
		TokenSelectionBackground,

		// Buttons
		TokenButtonText,
		TokenButtonPrimaryBg,
		TokenButtonPrimaryFocusBg,
		TokenButtonSecondaryBg,
		TokenButtonSecondaryFocusBg,
		TokenButtonDangerBg,
		TokenButtonDangerFocusBg,
		TokenButtonDisabledBg,

		// Forms
		TokenFormBorder,
		TokenFormBorderFocus,
		TokenFormLabel,
		TokenFormLabelFocus,

		// Overlays/Modals
		TokenOverlayTitle,
		TokenOverlayBorder,

		// Toast notifications
		TokenToastSuccess,
		TokenToastError,
		TokenToastInfo,
		TokenToastWarn,

		// Product presentation
		TokenPrice,
		TokenPriceSale,
		TokenBadgeFeatured,

		// Stock levels
		TokenStockIn,
		TokenStockLow,
		TokenStockOut,

		// Category badges
		TokenCategoryApparel,
		TokenCategoryHomewares,
		TokenCategoryStationery,
		TokenCategoryAccessories,

		// Rotation indicators
		TokenIndicatorActive,
		TokenIndicatorInactive,

		// Crossfade dimming
		TokenFadeDim,

		// Misc
		TokenSpinner,
	}
}
