package app

import (
	"testing"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name   string
		bridge bool
		debug  bool
	}{
		{
			name:   "bridge with debug",
			bridge: true,
			debug:  true,
		},
		{
			name:   "interactive console",
			bridge: false,
			debug:  false,
		},
		{
			name:   "debug only",
			bridge: false,
			debug:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig(tt.bridge, tt.debug)

			if cfg.Bridge != tt.bridge {
				t.Errorf("Bridge = %v, want %v", cfg.Bridge, tt.bridge)
			}
			if cfg.Debug != tt.debug {
				t.Errorf("Debug = %v, want %v", cfg.Debug, tt.debug)
			}
			if cfg.ToolctlConfig != nil {
				t.Error("ToolctlConfig should be nil before loading")
			}
		})
	}
}
