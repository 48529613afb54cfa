// phaseshift is a single-screen platformer with teleporting platforms.
//
// Usage:
//
//	phaseshift                 - Play, starting at the first level
//	phaseshift levels          - List available levels
//	phaseshift stats [level]   - Show recorded run statistics
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/phaseshift/config"
	"github.com/milk9111/phaseshift/levels"
	"github.com/milk9111/phaseshift/storage"
)

var (
	flagLevel    string
	flagDebug    bool
	flagWatch    bool
	flagMute     bool
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "phaseshift",
	Short: "A platformer about platforms that jump between two places",
	Long: `phaseshift is a single-screen platformer. Move with A/D or the arrow
keys, jump with Space, flick your tongue with Q and shift every
teleporting platform with Shift. R restarts the level and N skips to the
next one.

Examples:
  phaseshift
  phaseshift --level level3 --watch
  phaseshift stats`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to statistics database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Level to start on")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Show frame and body counters")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the level when its file under ./levels changes")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound cues")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(statsCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "phaseshift",
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

func loadConfig(logger *log.Logger) config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
	}
	return cfg
}

// openStore returns nil when statistics are disabled or unavailable.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	path := flagDBPath
	if path == "" {
		path = cfg.Storage.Path
	}
	if path == "" {
		return nil
	}
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("run statistics disabled", "err", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg := loadConfig(logger)

	store := openStore(cfg, logger)
	defer store.Close()

	var watcher *levels.Watcher
	if flagWatch {
		w, err := levels.NewWatcher()
		if err != nil {
			logger.Warn("level watching disabled", "dir", levels.Dir, "err", err)
		} else {
			watcher = w
		}
	}

	game, err := NewGame(cfg, logger, gameOptions{
		level:   flagLevel,
		debug:   flagDebug,
		muted:   flagMute,
		store:   store,
		watcher: watcher,
	})
	if err != nil {
		if watcher != nil {
			_ = watcher.Close()
		}
		return err
	}
	defer game.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	return ebiten.RunGame(game)
}
