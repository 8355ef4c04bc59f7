package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ricochet/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ricochet SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own board built with a fresh seed.
All sessions are recorded to the server's history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.ricochet/host_key

Examples:
  ricochet serve                           # Listen on the configured address
  ricochet serve --ssh :2222               # Listen on port 2222
  ricochet serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", -1, "Idle timeout in minutes (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := app.cfg
	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout >= 0 {
		cfg.SSH.IdleTimeoutMinutes = flagIdleTimeout
	}

	opts, err := gameOptions(cfg, "")
	if err != nil {
		return err
	}

	var rec tui.MoveRecorder
	store, err := openStore()
	if err != nil {
		app.logger.Warn("serving without history", "error", err)
	} else {
		defer store.Close()
		rec = store
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: cfg.SSH.HostKeyPath,
		IdleTimeout: cfg.IdleTimeout(),
		Game:        opts,
	}, rec, app.logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting ricochet SSH server on %s\n", server.Addr())
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	return server.ListenAndServe(cmd.Context())
}
