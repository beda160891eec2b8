package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lawn-defense/internal/platform/tui"
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

Each SSH connection gets its own run with the title menu. All users
share the server's scoreboard; runs are recorded under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.lawn/host_key

Examples:
  lawn serve                           # Listen on :23234
  lawn serve --ssh :2222               # Listen on port 2222
  lawn serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	logConfig(logger)

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	return server.ListenAndServe()
}
