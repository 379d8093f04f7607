package config

import (
	"fmt"
	"time"
)

// ToolctlConfig is the top-level configuration structure for toolctl.
type ToolctlConfig struct {
	GlobalSettings GlobalSettings  `yaml:"globalSettings"`
	Workspace      WorkspaceConfig `yaml:"workspace"`
	Bridge         BridgeConfig    `yaml:"bridge"`
}

// GlobalSettings holds preferences that apply to every command.
type GlobalSettings struct {
	// Output selects the default rendering for list commands: "table" or "json".
	Output string `yaml:"output,omitempty"`
	// LogLevel filters log output: debug, info, warn or error.
	LogLevel string `yaml:"logLevel,omitempty"`
}

// WorkspaceConfig points the client at a workspace console API.
type WorkspaceConfig struct {
	// URL is the base URL of the workspace console API.
	URL string `yaml:"url,omitempty"`
	// Token authenticates requests. The TOOLCTL_TOKEN environment variable
	// overrides this so tokens can stay out of config files.
	Token string `yaml:"token,omitempty"`
	// TimeoutSeconds bounds each HTTP request (default 30).
	TimeoutSeconds int `yaml:"timeoutSeconds,omitempty"`
	// RetryCount retries transient failures (default 3).
	RetryCount int `yaml:"retryCount,omitempty"`
}

// Timeout returns the request timeout as a duration.
func (w WorkspaceConfig) Timeout() time.Duration {
	if w.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(w.TimeoutSeconds) * time.Second
}

// BridgeConfig defines the MCP bridge endpoint exposed by `toolctl bridge`.
type BridgeConfig struct {
	// Port for the bridge SSE endpoint (default 8092).
	Port int `yaml:"port,omitempty"`
	// Host to bind to (default localhost).
	Host string `yaml:"host,omitempty"`
	// ToolPrefix is prepended to every exposed tool name (default "workspace").
	ToolPrefix string `yaml:"toolPrefix,omitempty"`
}

// BaseURL returns the bridge's own base URL, used when advertising the SSE
// endpoint to clients.
func (b BridgeConfig) BaseURL() string {
	return fmt.Sprintf("http://%s:%d", b.Host, b.Port)
}
