// Package config provides configuration types and defaults for vitrine.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/vitrine/internal/log"
	"github.com/zjrosen/vitrine/internal/tracing"
)

// Config holds all configuration options for vitrine.
type Config struct {
	DBPath      string          `mapstructure:"db_path"`
	AutoRefresh bool            `mapstructure:"auto_refresh"`
	SkipCache   bool            `mapstructure:"skip_cache"`
	UI          UIConfig        `mapstructure:"ui"`
	Theme       ThemeConfig     `mapstructure:"theme"`
	Rotation    RotationConfig  `mapstructure:"rotation"`
	Tracing     tracing.Config  `mapstructure:"tracing"`
	Flags       map[string]bool `mapstructure:"flags"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
	ShowPrices    bool   `mapstructure:"show_prices"`
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
	GridColumns   int    `mapstructure:"grid_columns"`   // 0 = derive from terminal width
}

// RotationConfig holds overrides for the media rotation timings.
// Zero values fall back to the engine defaults.
type RotationConfig struct {
	// HoverDebounceMs delays rotation start after the pointer enters a card.
	HoverDebounceMs int `mapstructure:"hover_debounce_ms"`

	// TickIntervalMs is the dwell time between automatic advances.
	TickIntervalMs int `mapstructure:"tick_interval_ms"`

	// FadeHalfMs is the duration of each crossfade half (out, then in).
	FadeHalfMs int `mapstructure:"fade_half_ms"`

	// CarouselCooldownMs is the pause at the end of a carousel sweep.
	CarouselCooldownMs int `mapstructure:"carousel_cooldown_ms"`

	// ReducedMotion disables crossfades; images swap instantly.
	ReducedMotion bool `mapstructure:"reduced_motion"`
}

// Durations converts the millisecond overrides into durations, using
// zero for unset fields so the engine applies its own defaults.
func (r RotationConfig) Durations() (debounce, tick, fadeHalf, cooldown time.Duration) {
	return time.Duration(r.HoverDebounceMs) * time.Millisecond,
		time.Duration(r.TickIntervalMs) * time.Millisecond,
		time.Duration(r.FadeHalfMs) * time.Millisecond,
		time.Duration(r.CarouselCooldownMs) * time.Millisecond
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "catppuccin-mocha", "catppuccin-latte",
	// "dracula", "nord", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`

	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     text:
	//       primary: "#FF0000"
	// Or quoted dot notation:
	//   colors:
	//     "text.primary": "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// flattenColors recursively flattens a nested map into dot-notation keys.
func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// DefaultDBPath returns the default path for the catalog database.
// Returns ~/.vitrine/catalog.db or empty string if home dir unavailable.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vitrine", "catalog.db")
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/vitrine/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "vitrine", "traces", "traces.jsonl")
}

// ValidateRotation checks rotation timing overrides for errors.
// Returns nil if the configuration is valid (zero values use defaults).
func ValidateRotation(rot RotationConfig) error {
	check := func(name string, v int) error {
		if v < 0 {
			return fmt.Errorf("rotation.%s must not be negative, got %d", name, v)
		}
		return nil
	}
	if err := check("hover_debounce_ms", rot.HoverDebounceMs); err != nil {
		return err
	}
	if err := check("tick_interval_ms", rot.TickIntervalMs); err != nil {
		return err
	}
	if err := check("fade_half_ms", rot.FadeHalfMs); err != nil {
		return err
	}
	if err := check("carousel_cooldown_ms", rot.CarouselCooldownMs); err != nil {
		return err
	}
	if rot.FadeHalfMs > 0 && rot.TickIntervalMs > 0 && 2*rot.FadeHalfMs > rot.TickIntervalMs {
		return fmt.Errorf("rotation.fade_half_ms * 2 (%dms) must not exceed rotation.tick_interval_ms (%dms)",
			2*rot.FadeHalfMs, rot.TickIntervalMs)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(cfg tracing.Config) error {
	if cfg.SampleRate < 0.0 || cfg.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", cfg.SampleRate)
	}

	if cfg.Exporter != "" {
		switch cfg.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", cfg.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if cfg.Enabled {
		if cfg.Exporter == "file" && cfg.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if cfg.Exporter == "otlp" && cfg.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// ValidateUI checks UI configuration for errors.
func ValidateUI(ui UIConfig) error {
	if ui.MarkdownStyle != "" && ui.MarkdownStyle != "dark" && ui.MarkdownStyle != "light" {
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", ui.MarkdownStyle)
	}
	if ui.GridColumns < 0 {
		return fmt.Errorf("ui.grid_columns must not be negative, got %d", ui.GridColumns)
	}
	return nil
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if err := ValidateUI(c.UI); err != nil {
		return err
	}
	if err := ValidateRotation(c.Rotation); err != nil {
		return err
	}
	return ValidateTracing(c.Tracing)
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		DBPath:      DefaultDBPath(),
		AutoRefresh: true,
		SkipCache:   false,
		UI: UIConfig{
			ShowStatusBar: true,
			ShowPrices:    true,
			MarkdownStyle: "dark",
			GridColumns:   0,
		},
		Theme: ThemeConfig{
			Preset: "",
		},
		Rotation: RotationConfig{
			// Zero values defer to the engine defaults
			ReducedMotion: false,
		},
		Tracing: tracing.DefaultConfig(),
	}
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Vitrine Configuration

# Path to the catalog database (default: ~/.vitrine/catalog.db)
# db_path: /path/to/catalog.db

# Auto-refresh when the database changes on disk
auto_refresh: true

# Bypass the in-memory caches (useful when debugging catalog edits)
# skip_cache: true

# UI settings
ui:
  show_status_bar: true   # Show status bar at bottom
  show_prices: true       # Show prices on product cards
  # markdown_style: dark  # Markdown rendering style: "dark" (default) or "light"
  # grid_columns: 0       # Fixed grid column count (0 = derive from width)

# Theme configuration
# Use a preset theme or customize individual colors
theme:
  # Use a preset:
  # preset: catppuccin-mocha
  #
  # Available presets:
  #   default           - Default vitrine theme
  #   catppuccin-mocha  - Warm, cozy dark theme
  #   catppuccin-latte  - Warm, cozy light theme
  #   dracula           - Dark theme with vibrant colors
  #   nord              - Arctic, north-bluish palette
  #   high-contrast     - High contrast for accessibility
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   text.primary: "#FFFFFF"
  #   status.error: "#FF0000"

# Media rotation timings (milliseconds). Unset values use the defaults:
# 200ms hover debounce, 1500ms dwell, 400ms per fade half, 2000ms cooldown.
# rotation:
#   hover_debounce_ms: 200
#   tick_interval_ms: 1500
#   fade_half_ms: 400
#   carousel_cooldown_ms: 2000
#   reduced_motion: false   # Swap images instantly instead of crossfading

# Tracing configuration
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp
#   file_path: ~/.config/vitrine/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
