package app

import (
	"context"
	"fmt"
	"os"

	"toolctl/internal/config"
	"toolctl/pkg/logging"
)

// Application is the main application structure that bootstraps and runs toolctl
type Application struct {
	config   *Config
	services *Services
}

// NewApplication creates and initializes a new application instance
func NewApplication(cfg *Config) (*Application, error) {
	// Configure logging based on debug flag
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Initialize logging for CLI output (replaced when the TUI takes over)
	logging.InitForCLI(appLogLevel, os.Stderr)

	// Load layered configuration
	toolctlCfg, err := config.LoadConfig()
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load toolctl configuration")
		return nil, fmt.Errorf("failed to load toolctl configuration: %w", err)
	}
	cfg.ToolctlConfig = &toolctlCfg

	// Initialize services
	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Services exposes the initialized service stack. CLI commands reach the
// catalog through this without entering a UI mode.
func (a *Application) Services() *Services {
	return a.services
}

// Config returns the application configuration, including the loaded
// workspace configuration.
func (a *Application) Config() *Config {
	return a.config
}

// Run executes the application in the appropriate mode
func (a *Application) Run(ctx context.Context) error {
	if a.config.Bridge {
		return a.runBridgeMode(ctx)
	}
	return a.runTUIMode(ctx)
}

// runBridgeMode runs the local MCP bridge server
func (a *Application) runBridgeMode(ctx context.Context) error {
	return runBridgeMode(ctx, a.config, a.services)
}

// runTUIMode runs the application in interactive TUI mode
func (a *Application) runTUIMode(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.services)
}
