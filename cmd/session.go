package cmd

import (
	"fmt"
	"os"

	"toolctl/internal/app"
	"toolctl/internal/catalog"
	"toolctl/internal/config"
	"toolctl/pkg/logging"
)

// session is what a one-shot command needs: the catalog service plus the
// loaded configuration. Each RunE builds a fresh one; nothing is shared
// across invocations.
type session struct {
	catalog *catalog.Service
	cfg     *config.ToolctlConfig
}

// newSession loads configuration, points logging at stderr and wires the
// service stack for a single CLI invocation.
func newSession() (*session, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level, err := logging.ParseLevel(cfg.GlobalSettings.LogLevel)
	if err != nil {
		level = logging.LevelInfo
	}
	logging.InitForCLI(level, os.Stderr)

	appCfg := app.NewConfig(false, false)
	appCfg.ToolctlConfig = &cfg

	services, err := app.InitializeServices(appCfg)
	if err != nil {
		return nil, err
	}

	return &session{
		catalog: services.Catalog,
		cfg:     &cfg,
	}, nil
}

// useJSON decides between table and JSON output: the per-command flag wins,
// otherwise the configured default output format applies.
func (s *session) useJSON(flag bool) bool {
	return flag || s.cfg.GlobalSettings.Output == "json"
}
