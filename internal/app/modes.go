package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"toolctl/internal/bridge"
	"toolctl/internal/tui"
	"toolctl/pkg/logging"
)

// runBridgeMode starts the local MCP bridge and blocks until interrupted
func runBridgeMode(ctx context.Context, config *Config, services *Services) error {
	srv := bridge.NewServer(config.ToolctlConfig.Bridge, services.Catalog)

	if err := srv.Start(ctx); err != nil {
		logging.Error("Bridge", err, "Failed to start MCP bridge")
		return err
	}

	logging.Info("Bridge", "MCP bridge listening on %s", srv.Endpoint())
	logging.Info("Bridge", "Press Ctrl+C to stop.")

	// Wait for interrupt signal to gracefully shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigChan:
	case <-ctx.Done():
	}

	logging.Info("Bridge", "--- Shutting down MCP bridge ---")
	return srv.Stop(context.Background())
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, services *Services) error {
	logging.Info("TUI-Lifecycle", "Starting TUI mode...")

	// Switch logging to channel-based delivery so entries land in the TUI
	// log overlay instead of corrupting the alternate screen.
	logLevel := logging.LevelInfo
	if config.Debug {
		logLevel = logging.LevelDebug
	}
	logChan := logging.InitForTUI(logLevel)
	defer logging.CloseTUIChannel()

	p := tui.NewProgram(services.Catalog, logChan)
	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}
