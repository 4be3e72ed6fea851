package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/game128.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration, used when no YAML parses.
func Default() Config {
	return Config{
		Game: GameConfig{
			TerminalValue: 128,
		},
		Storage: StorageConfig{
			DBPath: "~/.game128/state.db",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
