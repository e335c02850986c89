// flappy is a terminal side-scroller: keep the body airborne through the
// gaps in scrolling obstacles.
//
// Usage:
//
//	flappy                   - Play (same as flappy play)
//	flappy play              - Play in the terminal
//	flappy sim               - Run a headless simulation
//	flappy runs              - List recorded runs
//	flappy replay <id>       - Re-simulate a recorded run and check its outcome
//	flappy config            - Print the effective configuration
//	flappy list              - List available games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.flappy/runs.db)
//	--config <path>     - Load gameplay constants from a YAML or TOML file
//	--log-level <level> - Override the configured log level
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/logging"

	// Import games to register them
	_ "github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - a side-scroller in your terminal",
	Long: `Flappy is a terminal side-scroller. Flap to keep the body in the air
and steer it through the gaps between obstacles.

Available commands:
  play     - Play in the terminal (default)
  sim      - Run a headless simulation
  runs     - List recorded runs
  replay   - Re-simulate a recorded run
  config   - Print the effective configuration
  list     - Show available games

Examples:
  flappy
  flappy play --seed 42
  flappy sim --autopilot --save
  flappy runs --top
  flappy replay 0b8f...`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to gameplay config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

// loadSettings loads the gameplay config and validates it for the tick rate.
func loadSettings() (config.FlappyConfig, error) {
	if flagFPS <= 0 {
		return config.FlappyConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	settings, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	if err := settings.Sim(flagFPS).Validate(); err != nil {
		return config.FlappyConfig{}, err
	}
	return settings, nil
}

// newLogger builds the command logger. Without --log-file it writes to
// fallback, or to defaultFile when fallback is nil. The returned func closes
// any opened file.
func newLogger(settings config.FlappyConfig, fallback io.Writer, defaultFile string) (*log.Logger, func(), error) {
	level := settings.Logging.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}

	path := flagLogFile
	if path == "" && fallback == nil {
		path = defaultFile
	}
	if path == "" {
		logger, err := logging.New(fallback, level)
		return logger, func() {}, err
	}

	logger, f, err := logging.OpenFile(path, level)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// runSeed returns the --seed value, or a time-based seed when unset.
func runSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
