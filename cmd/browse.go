package cmd

import (
	"context"
	"fmt"

	"toolctl/internal/app"

	"github.com/spf13/cobra"
)

// browseDebug enables verbose logging across the application.
// Debug entries show up in the TUI log overlay.
var browseDebug bool

// browseCmd defines the browse command structure.
// This is the main command of toolctl: it opens the interactive console
// on the workspace's skill providers and tool catalog.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the workspace tool catalog in an interactive console",
	Long: `Opens the interactive terminal console for the workspace.

The console shows the installed skill providers and the tool catalog side
by side, with inline filtering, a detail view, an install overlay (git URL
or .zip upload), deletion with confirmation, and a log overlay.

Keys:
  tab switch tab, / filter, enter detail, i install, d delete, r refresh,
  y copy source URL, L logs, ? help, esc back, q quit.

Configuration:
  toolctl loads configuration from ~/.config/toolctl/config.yaml and
  ./.toolctl/config.yaml. The TOOLCTL_WORKSPACE_URL and TOOLCTL_TOKEN
  environment variables override the configured workspace URL and API token.`,
	Args: cobra.NoArgs, // No arguments required
	RunE: runBrowse,
}

// runBrowse is the main entry point for the browse command
func runBrowse(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(false, browseDebug)

	// Create and initialize the application
	application, err := app.NewApplication(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	// Run the application
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

// init registers the browse command and its flags with the root command.
// This is called automatically when the package is imported.
func init() {
	rootCmd.AddCommand(browseCmd)

	// Register command flags
	browseCmd.Flags().BoolVar(&browseDebug, "debug", false, "Enable debug logging in the log overlay")
}
