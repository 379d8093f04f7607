package config

// GetDefaultConfig returns the built-in defaults. They make toolctl work
// against a locally running workspace API without any config file.
func GetDefaultConfig() ToolctlConfig {
	return ToolctlConfig{
		GlobalSettings: GlobalSettings{
			Output:   "table",
			LogLevel: "info",
		},
		Workspace: WorkspaceConfig{
			URL:            "http://localhost:5001",
			TimeoutSeconds: 30,
			RetryCount:     3,
		},
		Bridge: BridgeConfig{
			Port:       8092,
			Host:       "localhost",
			ToolPrefix: "workspace",
		},
	}
}
