package app

import (
	"toolctl/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Bridge mode: serve the MCP bridge instead of the interactive console
	Bridge bool

	// Debug settings
	Debug bool

	// Workspace configuration
	ToolctlConfig *config.ToolctlConfig
}

// NewConfig creates a new application configuration
func NewConfig(bridge, debug bool) *Config {
	return &Config{
		Bridge: bridge,
		Debug:  debug,
	}
}
