package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/toolctl"
	projectConfigDir = ".toolctl"
	configFileName   = "config.yaml"
)

// LoadConfig loads the toolctl configuration by layering default, user, and
// project settings, then applying environment overrides.
func LoadConfig() (ToolctlConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional; warn and continue with defaults.
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else {
		if _, err := os.Stat(userConfigPath); !os.IsNotExist(err) {
			userConfig, err := loadConfigFromFile(userConfigPath)
			if err != nil {
				return ToolctlConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
			}
			config = mergeConfigs(config, userConfig)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else {
		if _, err := os.Stat(projectConfigPath); !os.IsNotExist(err) {
			projectConfig, err := loadConfigFromFile(projectConfigPath)
			if err != nil {
				return ToolctlConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
			}
			config = mergeConfigs(config, projectConfig)
		}
	}

	applyEnvOverrides(&config)

	return config, nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a ToolctlConfig from a YAML file.
func loadConfigFromFile(filePath string) (ToolctlConfig, error) {
	var config ToolctlConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return ToolctlConfig{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return ToolctlConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Zero values in
// the overlay leave the base value untouched.
func mergeConfigs(base, overlay ToolctlConfig) ToolctlConfig {
	merged := base

	if overlay.GlobalSettings.Output != "" {
		merged.GlobalSettings.Output = overlay.GlobalSettings.Output
	}
	if overlay.GlobalSettings.LogLevel != "" {
		merged.GlobalSettings.LogLevel = overlay.GlobalSettings.LogLevel
	}

	if overlay.Workspace.URL != "" {
		merged.Workspace.URL = overlay.Workspace.URL
	}
	if overlay.Workspace.Token != "" {
		merged.Workspace.Token = overlay.Workspace.Token
	}
	if overlay.Workspace.TimeoutSeconds != 0 {
		merged.Workspace.TimeoutSeconds = overlay.Workspace.TimeoutSeconds
	}
	if overlay.Workspace.RetryCount != 0 {
		merged.Workspace.RetryCount = overlay.Workspace.RetryCount
	}

	if overlay.Bridge.Port != 0 {
		merged.Bridge.Port = overlay.Bridge.Port
	}
	if overlay.Bridge.Host != "" {
		merged.Bridge.Host = overlay.Bridge.Host
	}
	if overlay.Bridge.ToolPrefix != "" {
		merged.Bridge.ToolPrefix = overlay.Bridge.ToolPrefix
	}

	return merged
}

// applyEnvOverrides lets the environment trump every file layer. Tokens in
// particular should not have to live in config files.
func applyEnvOverrides(config *ToolctlConfig) {
	if url := os.Getenv("TOOLCTL_WORKSPACE_URL"); url != "" {
		config.Workspace.URL = url
	}
	if token := os.Getenv("TOOLCTL_TOKEN"); token != "" {
		config.Workspace.Token = token
	}
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
