package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/beatsnake/internal/audio"
	"github.com/vovakirdan/beatsnake/internal/games/snake"
	"github.com/vovakirdan/beatsnake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session and its own game. Sessions play
silently: the beat still drives the apples, only the sound stays on the
server side. Runs are stored per server under the SSH user name, so all
users share one scoreboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.beatsnake/host_key

Examples:
  beatsnake serve                           # Listen on :23234
  beatsnake serve --ssh :2222               # Listen on port 2222
  beatsnake serve --host-key ./my_host_key  # Use specific host key
  beatsnake serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	a, err := loadAssets()
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Session = a.sessionOptions("")
	cfg.Factory = func() (tui.Game, error) {
		return snake.New(a.cfg, a.track, audio.Silent{})
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	logger.Info("connect with", "cmd", "ssh localhost -p 23234", "address", server.Addr())
	return server.ListenAndServe()
}
