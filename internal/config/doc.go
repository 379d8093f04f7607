// Package config provides configuration management for toolctl.
//
// This package implements a layered configuration system that allows users to
// customize toolctl's behavior through YAML files. Configuration is loaded
// from multiple sources and merged in a specific order, with later sources
// overriding earlier ones.
//
// # Configuration Layers
//
// Configuration is loaded and merged in the following order:
//
//  1. Default Configuration (embedded in binary)
//     - Provides sensible defaults for all settings
//     - Ensures toolctl works out-of-the-box against a local workspace API
//
//  2. User Configuration (~/.config/toolctl/config.yaml)
//     - User-specific settings that apply to all projects
//     - Useful for personal preferences and common overrides
//
//  3. Project Configuration (./.toolctl/config.yaml)
//     - Project-specific settings in the current directory
//     - Allows teams to share configuration via version control
//
//  4. Environment Variables
//     - TOOLCTL_WORKSPACE_URL overrides workspace.url
//     - TOOLCTL_TOKEN overrides workspace.token
//
// # Configuration Structure
//
// The configuration file uses YAML format with the following sections:
//
//	globalSettings:
//	  output: "table"        # or "json"
//	  logLevel: "info"       # debug, info, warn, error
//
//	workspace:
//	  url: "http://localhost:5001"
//	  token: "wk-..."        # prefer TOOLCTL_TOKEN instead
//	  timeoutSeconds: 30
//	  retryCount: 3
//
//	bridge:
//	  host: "localhost"
//	  port: 8092
//	  toolPrefix: "workspace"
//
// # Usage Example
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := workspace.NewClient(cfg.Workspace)
package config
