package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexfleet/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hexfleet SSH server",
	Long: `Start an SSH server that allows users to connect and move ships.

Each SSH connection gets its own session with a scenario picker. All
sessions write to the same move log (--db).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.hexfleet/host_key

Examples:
  hexfleet serve                           # Listen on :23235 with auto-generated key
  hexfleet serve --ssh :2222               # Listen on port 2222
  hexfleet serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagSpecDir, "specs", "", "Directory searched for ship specs first")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		SpecDir:     flagSpecDir,
		Edge:        flagEdge,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("hexfleet-ssh"))
	if err != nil {
		fail(fmt.Errorf("creating server: %w", err))
	}

	fmt.Printf("Starting hexfleet SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		fail(fmt.Errorf("server: %w", err))
	}
}
