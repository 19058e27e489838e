package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"infinite-slider/deck"
	"infinite-slider/session"
	"infinite-slider/settings"
	"infinite-slider/watch"
)

var (
	cfgFile string
	verbose bool

	logger *zap.Logger
)

// Flag values. They only override the config file when set.
var (
	flagDeck     string
	flagStart    int
	flagAutoplay bool
	flagInterval int
	flagResume   bool
	flagWatch    bool
)

var rootCmd = &cobra.Command{
	Use:   "infinite-slider",
	Short: "An infinite looping image carousel",
	Long: `Shows a deck of slides as a carousel that loops in both directions.

Drag or swipe the track, click the arrows or dots, or use the Left/Right keys.
Space toggles autoplay, F12 saves a screenshot.

Decks are YAML files or Starlark scripts (.star) that define a "slides" list.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runCarousel,
}

var exportCmd = &cobra.Command{
	Use:   "export [out.yaml]",
	Short: "Write the configured deck as YAML",
	Long: `Loads the deck the carousel would show and writes it as a YAML deck.
Useful to freeze the output of a Starlark deck script.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		slides, _, err := loadDeck(cfg)
		if err != nil {
			return err
		}
		if err := ExportDeck(slides, args[0]); err != nil {
			return err
		}
		logger.Info("deck exported", zap.String("path", args[0]), zap.Int("slides", len(slides)))
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config [out.yaml]",
	Short: "Write the effective configuration as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return cfg.Save(args[0])
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "slider.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging and on-screen state")
	rootCmd.PersistentFlags().StringVar(&flagDeck, "deck", "", "deck file (.yaml or .star)")

	rootCmd.Flags().IntVar(&flagStart, "start", 0, "real slide to start on")
	rootCmd.Flags().BoolVar(&flagAutoplay, "autoplay", true, "advance automatically")
	rootCmd.Flags().IntVar(&flagInterval, "interval", 3000, "autoplay interval in milliseconds")
	rootCmd.Flags().BoolVar(&flagResume, "resume", false, "start on the slide shown when last closed")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "reload the deck when its file changes")

	rootCmd.AddCommand(exportCmd, configCmd)
}

// loadConfig layers the flags that were set over the config file.
func loadConfig(cmd *cobra.Command) (*settings.Config, error) {
	cfg, err := settings.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("deck") {
		cfg.Deck = flagDeck
	}
	if flags.Changed("start") {
		cfg.Slider.StartAtIndex = flagStart
	}
	if flags.Changed("autoplay") {
		cfg.Slider.AutoPlay = flagAutoplay
	}
	if flags.Changed("interval") {
		cfg.Slider.TimeIntervalMs = flagInterval
	}
	if flags.Changed("resume") {
		cfg.Resume = flagResume
	}
	if flags.Changed("watch") {
		cfg.Watch = flagWatch
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDeck returns the configured deck and the id sessions are keyed by.
func loadDeck(cfg *settings.Config) ([]deck.Slide, string, error) {
	if cfg.Deck == "" {
		return deck.Default(), DemoDeckID, nil
	}
	slides, err := deck.Load(cfg.Deck)
	if err != nil {
		return nil, "", err
	}
	id, err := filepath.Abs(cfg.Deck)
	if err != nil {
		id = cfg.Deck
	}
	return slides, id, nil
}

// resumeSession picks the real slide to open on. When resuming the same
// deck it also restores the autoplay toggle saved with the session.
func resumeSession(cfg *settings.Config, store *session.Store, deckID string, n int) int {
	start := cfg.Slider.StartAtIndex
	if !cfg.Resume || store == nil {
		return start
	}
	st, ok, err := store.Load()
	if err != nil {
		logger.Warn("loading session", zap.Error(err))
		return start
	}
	if !ok || st.DeckID != deckID {
		return start
	}
	cfg.Slider.AutoPlay = st.AutoPlay
	return st.Resume(deckID, n, start)
}

func runCarousel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	slides, deckID, err := loadDeck(cfg)
	if err != nil {
		return err
	}

	store := session.Open(AppName, logger.Named("session"))
	start := resumeSession(cfg, store, deckID, len(slides))

	face := LoadUIFont(FontPath, FontSize, logger)
	game, err := NewGame(cfg, slides, deckID, start, store, face, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Watch && cfg.Deck != "" {
		w, err := watch.New(cfg.Deck, logger.Named("watch"))
		if err != nil {
			return fmt.Errorf("watching deck: %w", err)
		}
		go w.Run(ctx)
		defer func() {
			cancel()
			<-w.Done()
		}()
		game.WatchDeck(w.Decks())
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("starting carousel", zap.Int("slides", len(slides)), zap.Int("start", start))
	return ebiten.RunGame(game)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
