// Package config provides YAML-based configuration loading for the 128
// puzzle: game rules, storage location, SSH server and logging settings.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("config: invalid")

// Config contains all application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig defines the rules of a single game.
type GameConfig struct {
	TerminalValue int `yaml:"terminal_value"` // Tile that ends the game
}

// StorageConfig defines where boards are persisted.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // Empty means ~/.game128/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines logger output.
type LogConfig struct {
	Level      string `yaml:"level"` // debug, info, warn, error
	File       string `yaml:"file"`  // Empty means stderr
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Validate checks that the configuration can run a game.
func (c Config) Validate() error {
	tv := c.Game.TerminalValue
	if tv < 4 || tv&(tv-1) != 0 {
		return fmt.Errorf("%w: terminal_value %d is not a power of two >= 4", ErrInvalid, tv)
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("%w: storage.db_path is empty", ErrInvalid)
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("%w: server.idle_timeout is negative", ErrInvalid)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}
