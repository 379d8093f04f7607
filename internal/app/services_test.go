package app

import (
	"testing"

	"toolctl/internal/config"
)

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		expectError bool
	}{
		{
			name: "valid workspace configuration",
			config: &Config{
				ToolctlConfig: &config.ToolctlConfig{
					Workspace: config.WorkspaceConfig{
						URL:   "http://workspace.test/api",
						Token: "tok",
					},
				},
			},
			expectError: false,
		},
		{
			name: "missing workspace URL",
			config: &Config{
				ToolctlConfig: &config.ToolctlConfig{},
			},
			expectError: true,
		},
		{
			name:        "configuration not loaded",
			config:      &Config{},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, err := InitializeServices(tt.config)

			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if services.Client == nil {
				t.Error("Client should not be nil")
			}
			if services.Store == nil {
				t.Error("Store should not be nil")
			}
			if services.Catalog == nil {
				t.Error("Catalog should not be nil")
			}
		})
	}
}

func TestModeSelection(t *testing.T) {
	tests := []struct {
		name         string
		bridge       bool
		expectBridge bool
	}{
		{
			name:         "bridge mode selected",
			bridge:       true,
			expectBridge: true,
		},
		{
			name:         "TUI mode selected",
			bridge:       false,
			expectBridge: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(tt.bridge, false)

			if cfg.Bridge != tt.expectBridge {
				t.Errorf("Bridge = %v, want %v", cfg.Bridge, tt.expectBridge)
			}
		})
	}
}
