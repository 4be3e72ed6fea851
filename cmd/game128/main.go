// game128 is a terminal sliding-tile puzzle: join equal tiles on a 4x4 board
// until one of them reaches 128.
//
// Usage:
//
//	game128 play     - Play on the local board
//	game128 serve    - Start SSH server for remote play
//	game128 show     - Print the saved board
//	game128 reset    - Delete the saved board
//
// Global flags:
//
//	--config <path>     - Config YAML (default search: ~/.game128, ./configs)
//	--db <path>         - Override the board database path
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <name>  - debug, info, warn or error
package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/user"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-128/internal/config"
	"github.com/vovakirdan/tui-128/internal/game"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagLogLevel string

	// Board selection for show and reset
	flagPlayer string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game128",
	Short: "128 - A sliding-tile puzzle in your terminal",
	Long: `128 is a sliding-tile puzzle played on a 4x4 board.

Every move slides all tiles toward one edge. Two equal tiles that meet
merge into their sum. The game ends when a tile reaches 128.

Available commands:
  play     - Play on the local board
  serve    - Start SSH server for remote play
  show     - Print the saved board
  reset    - Delete the saved board

Examples:
  game128 play
  game128 play --seed 42
  game128 serve --ssh :2222
  game128 show`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to boards database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(resetCmd)
}

// loadConfig loads the config file and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func gameConfig(cfg config.Config) game.Config {
	return game.Config{TerminalValue: cfg.Game.TerminalValue}
}

// newRNG returns the gameplay random source for seed, using the clock when
// seed is zero.
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) //nolint:gosec // gameplay randomness
}

// localPlayer names the board used by play, show and reset.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "local"
}
