package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-128/internal/logging"
	"github.com/vovakirdan/tui-128/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH user gets their own saved board, keyed by the login name.
Reconnecting resumes the board.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.game128/host_key

Examples:
  game128 serve                           # Listen on :23234 with auto-generated key
  game128 serve --ssh :2222               # Listen on port 2222
  game128 serve --host-key ./my_host_key  # Use specific host key
  game128 serve --idle-timeout 10m

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (overrides config)")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	srvCfg := tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKeyPath,
		DBPath:      cfg.Storage.DBPath,
		IdleTimeout: cfg.Server.IdleTimeout,
		Game:        gameConfig(cfg),
	}
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = flagIdleTimeout
	}

	logger, closer := logging.New(cfg.Log, "game128-ssh", os.Stderr)
	defer closer.Close()

	server, err := tui.NewSSHServer(srvCfg, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting 128 SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
