package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickgame/internal/platform/tui"
)

var (
	flagSSHAddr string
	flagHostKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the brickgame SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a game picker menu.
Scores are stored per-server (all users share the same high scores).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses ssh.host_key from the config, generated on first start

Examples:
  brickgame serve                           # Listen on the configured address
  brickgame serve --ssh :2222               # Listen on port 2222
  brickgame serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 2222`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port), overrides config")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file, overrides config")
}

func runServe(_ *cobra.Command, _ []string) {
	a := mustSetup(false)
	defer a.Close()

	if flagSSHAddr != "" {
		a.cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		a.cfg.SSH.HostKey = flagHostKey
	}

	server, err := tui.NewSSHServer(a.cfg, a.backends, a.logger.WithPrefix("brickgame-ssh"), flagSeed)
	if err != nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting brickgame SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
