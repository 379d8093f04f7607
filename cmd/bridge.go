package cmd

import (
	"context"
	"fmt"

	"toolctl/internal/app"

	"github.com/spf13/cobra"
)

// bridgeDebug enables verbose logging across the application.
var bridgeDebug bool

// bridgeCmd defines the bridge command structure.
// The bridge serves the workspace catalog to local MCP clients over SSE.
var bridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Serve the workspace catalog to local MCP clients",
	Long: `Starts a local MCP server (SSE transport) that exposes the workspace
catalog as read-only tools: skill_list, skill_show, tool_list and
skill_validate.

Point an MCP-capable editor or agent at the printed endpoint to give it
access to the workspace's skills and tools. The bridge only reads:
install, update and remove stay in the CLI and the interactive console.

Host, port and the tool name prefix come from the bridge section of the
configuration (default localhost:8092, prefix "workspace"). The server
runs until interrupted with Ctrl+C.`,
	Args: cobra.NoArgs, // No arguments required
	RunE: runBridgeCmd,
}

// runBridgeCmd is the main entry point for the bridge command
func runBridgeCmd(cmd *cobra.Command, args []string) error {
	cfg := app.NewConfig(true, bridgeDebug)

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

// init registers the bridge command and its flags with the root command.
// This is called automatically when the package is imported.
func init() {
	rootCmd.AddCommand(bridgeCmd)

	// Register command flags
	bridgeCmd.Flags().BoolVar(&bridgeDebug, "debug", false, "Enable general debug logging")
}
