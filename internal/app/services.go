package app

import (
	"fmt"

	"toolctl/internal/cache"
	"toolctl/internal/catalog"
	"toolctl/internal/workspace"
)

// Services holds the initialized service stack shared by every mode: the
// REST client, the session cache and the catalog service bound to both.
type Services struct {
	Client  *workspace.Client
	Store   cache.Store
	Catalog *catalog.Service
}

// InitializeServices wires the workspace client, cache and catalog service.
// The cache lives for the process; CLI one-shots get a fresh store per
// invocation, the TUI and bridge keep it warm across reads.
func InitializeServices(cfg *Config) (*Services, error) {
	if cfg.ToolctlConfig == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	if cfg.ToolctlConfig.Workspace.URL == "" {
		return nil, fmt.Errorf("no workspace URL configured (set workspace.url in config or TOOLCTL_WORKSPACE_URL)")
	}

	client := workspace.NewClient(cfg.ToolctlConfig.Workspace)
	store := cache.NewStore()

	return &Services{
		Client:  client,
		Store:   store,
		Catalog: catalog.NewService(client, store),
	}, nil
}
