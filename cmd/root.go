// Package cmd wires the CLI: flags, config loading, and the storefront
// program itself.
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/vitrine/internal/app"
	"github.com/zjrosen/vitrine/internal/cart"
	"github.com/zjrosen/vitrine/internal/config"
	"github.com/zjrosen/vitrine/internal/infrastructure/sqlite"
	"github.com/zjrosen/vitrine/internal/log"
	"github.com/zjrosen/vitrine/internal/mode"
	"github.com/zjrosen/vitrine/internal/preview"
	"github.com/zjrosen/vitrine/internal/pubsub"
	"github.com/zjrosen/vitrine/internal/rotation"
	"github.com/zjrosen/vitrine/internal/tracing"
	"github.com/zjrosen/vitrine/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "vitrine",
	Short:   "A terminal storefront",
	Long:    `A terminal storefront: browse the product grid, hover a card to rotate through its images, and manage the catalog from the built-in back office.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/vitrine/config.yaml)")
	rootCmd.PersistentFlags().String("db", "",
		"path to the catalog database")
	rootCmd.Flags().Bool("no-auto-refresh", false,
		"disable live reload when the database changes on disk")
	rootCmd.Flags().Bool("reduced-motion", false,
		"swap images instantly instead of crossfading")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write a structured debug log (also VITRINE_DEBUG=1)")

	// Bind flags to viper
	_ = viper.BindPFlag("db_path", rootCmd.PersistentFlags().Lookup("db"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("db_path", defaults.DBPath)
	viper.SetDefault("auto_refresh", defaults.AutoRefresh)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.show_prices", defaults.UI.ShowPrices)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .vitrine/config.yaml (current directory)
		// 2. ~/.config/vitrine/config.yaml (user config)
		if _, err := os.Stat(".vitrine/config.yaml"); err == nil {
			viper.SetConfigFile(".vitrine/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "vitrine"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create a commented default
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			home, homeErr := os.UserHomeDir()
			if homeErr == nil {
				defaultPath := filepath.Join(home, ".config", "vitrine", "config.yaml")
				if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
					viper.SetConfigFile(defaultPath)
					_ = viper.ReadInConfig()
				}
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Debug logging via flag or env var. Writes next to the binary unless
	// VITRINE_LOG points elsewhere.
	if os.Getenv("VITRINE_DEBUG") != "" || debugFlag {
		logPath := os.Getenv("VITRINE_LOG")
		if logPath == "" {
			logPath = "debug.log"
		}
		cleanup, err := log.InitWithTeaLog(logPath, "vitrine")
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		defer cleanup()

		log.Info(log.CatConfig, "vitrine starting", "debug", true, "logPath", logPath)
	}

	if noAutoRefresh, _ := cmd.Flags().GetBool("no-auto-refresh"); noAutoRefresh {
		cfg.AutoRefresh = false
	}
	if reduced, _ := cmd.Flags().GetBool("reduced-motion"); reduced {
		cfg.Rotation.ReducedMotion = true
	}

	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Mode:   cfg.Theme.Mode,
		Colors: cfg.Theme.FlattenedColors(),
	}); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	if cfg.Tracing.Enabled && cfg.Tracing.Exporter == "file" && cfg.Tracing.FilePath == "" {
		cfg.Tracing.FilePath = config.DefaultTracesFilePath()
	}
	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_ = provider.Shutdown(ctx)
		cancel()
	}()

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}
	db, err := sqlite.NewDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening catalog database: %w\nRun 'vitrine seed' to create a sample catalog", err)
	}
	defer func() { _ = db.Close() }()

	services, err := buildServices(db, &cfg, dbPath, provider)
	if err != nil {
		return err
	}
	defer services.Updates.Close()
	defer services.Frames.Close()

	model := app.New(services)
	zone.NewGlobal()
	p := tea.NewProgram(
		&model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	// Clean up watcher and rotation resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// buildServices assembles the shared dependency set every mode receives.
func buildServices(db *sqlite.DB, cfg *config.Config, dbPath string, provider *tracing.Provider) (mode.Services, error) {
	updates := pubsub.NewBroker[pubsub.RotationUpdate]()
	frames := pubsub.NewBroker[pubsub.CarouselFrame]()

	loader := preview.NewLoader(db.ImageRepository(), cfg.SkipCache)

	debounce, tick, fadeHalf, cooldown := cfg.Rotation.Durations()
	rotator := rotation.New(rotation.Config{
		Timings: rotation.Timings{
			StartDelay:     debounce,
			TickPeriod:     tick,
			FadeDuration:   fadeHalf,
			ResumeCooldown: cooldown,
		},
		Preloader:     loader,
		Sink:          tracing.NewRotationSink(pubsub.NewRotationSink(updates), provider.Tracer()),
		ReducedMotion: cfg.Rotation.ReducedMotion,
	})

	return mode.Services{
		Products:   db.ProductRepository(),
		Images:     db.ImageRepository(),
		Orders:     db.OrderRepository(),
		Users:      db.UserRepository(),
		Cart:       cart.New(),
		Rotator:    rotator,
		Preview:    loader,
		Updates:    updates,
		Frames:     frames,
		Config:     cfg,
		ConfigPath: viper.ConfigFileUsed(),
		DBPath:     dbPath,
	}, nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
