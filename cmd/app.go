package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"toolctl/internal/workspace"

	"github.com/spf13/cobra"
)

var (
	appJSON bool
	appID   string

	appServerDescription string
	appServerStatus      string
	appServerParameters  string

	appTriggerDisable bool
)

// appCmd represents the app command
var appCmd = &cobra.Command{
	Use:   "app",
	Short: "Manage an app's MCP server and triggers",
	Long: `Manage the MCP server and automation triggers of one app.

Every subcommand scopes to a single app via the required --app flag.

Available commands:
  server          - Show the app's MCP server
  server-create   - Create the app's MCP server
  server-update   - Update the app's MCP server
  server-refresh  - Regenerate the app's server code
  triggers        - List the app's triggers
  trigger-enable  - Enable or disable one trigger`,
}

// appServerCmd shows the app's MCP server
var appServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Show the app's MCP server",
	Long: `Show the MCP server record of the app: status, URL, server code and
parameters.`,
	Args: cobra.NoArgs,
	RunE: runAppServer,
}

// appServerCreateCmd creates the app's MCP server
var appServerCreateCmd = &cobra.Command{
	Use:   "server-create",
	Short: "Create the app's MCP server",
	Long: `Create an MCP server for the app.

--parameters takes the server parameters as a raw JSON object.`,
	Args: cobra.NoArgs,
	RunE: runAppServerCreate,
}

// appServerUpdateCmd updates the app's MCP server
var appServerUpdateCmd = &cobra.Command{
	Use:   "server-update",
	Short: "Update the app's MCP server",
	Long: `Update the app's MCP server. Only the flags given change; omitted
fields keep their server-side value.`,
	Args: cobra.NoArgs,
	RunE: runAppServerUpdate,
}

// appServerRefreshCmd regenerates the app's server code
var appServerRefreshCmd = &cobra.Command{
	Use:   "server-refresh",
	Short: "Regenerate the app's server code",
	Long:  `Ask the backend to regenerate the app's MCP server code.`,
	Args:  cobra.NoArgs,
	RunE:  runAppServerRefresh,
}

// appTriggersCmd lists the app's triggers
var appTriggersCmd = &cobra.Command{
	Use:   "triggers",
	Short: "List the app's triggers",
	Long:  `List the automation triggers attached to the app.`,
	Args:  cobra.NoArgs,
	RunE:  runAppTriggers,
}

// appTriggerEnableCmd toggles one trigger
var appTriggerEnableCmd = &cobra.Command{
	Use:   "trigger-enable <trigger-id>",
	Short: "Enable or disable one trigger",
	Long: `Enable a trigger, or disable it with --disable.

Use 'toolctl app triggers --app <id>' to find trigger ids.`,
	Args: cobra.ExactArgs(1),
	RunE: runAppTriggerEnable,
}

func init() {
	rootCmd.AddCommand(appCmd)

	// Add subcommands
	appCmd.AddCommand(appServerCmd)
	appCmd.AddCommand(appServerCreateCmd)
	appCmd.AddCommand(appServerUpdateCmd)
	appCmd.AddCommand(appServerRefreshCmd)
	appCmd.AddCommand(appTriggersCmd)
	appCmd.AddCommand(appTriggerEnableCmd)

	// Add flags to the parent command
	appCmd.PersistentFlags().BoolVar(&appJSON, "json", false, "Print raw JSON instead of tables")
	appCmd.PersistentFlags().StringVar(&appID, "app", "", "App id the command applies to (required)")

	for _, c := range []*cobra.Command{appServerCreateCmd, appServerUpdateCmd} {
		c.Flags().StringVar(&appServerDescription, "description", "", "Server description")
		c.Flags().StringVar(&appServerStatus, "status", "", "Server status (active, inactive)")
		c.Flags().StringVar(&appServerParameters, "parameters", "", "Server parameters as a JSON object")
	}

	appTriggerEnableCmd.Flags().BoolVar(&appTriggerDisable, "disable", false, "Disable the trigger instead of enabling it")
}

// requireApp rejects app subcommands invoked without --app.
func requireApp() error {
	if strings.TrimSpace(appID) == "" {
		return fmt.Errorf("--app is required")
	}
	return nil
}

func runAppServer(cmd *cobra.Command, args []string) error {
	if err := requireApp(); err != nil {
		return err
	}

	sess, err := newSession()
	if err != nil {
		return err
	}

	server, err := sess.catalog.AppServer(cmd.Context(), appID, false)
	if err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			fmt.Printf("App %s has no MCP server yet.\n", appID)
			fmt.Printf("Create one with 'toolctl app server-create --app %s'.\n", appID)
			return nil
		}
		return err
	}

	if sess.useJSON(appJSON) {
		return printJSON(os.Stdout, server)
	}

	printAppServer(server)
	return nil
}

func printAppServer(server *workspace.AppServer) {
	fmt.Printf("MCP server for app %s\n", dash(server.AppID))
	fmt.Printf("  id:          %s\n", server.ID)
	fmt.Printf("  status:      %s\n", dash(server.Status))
	fmt.Printf("  url:         %s\n", dash(server.URL))
	if server.Description != "" {
		fmt.Printf("  description: %s\n", server.Description)
	}
	if len(server.Parameters) > 0 {
		fmt.Printf("  parameters:  %s\n", string(server.Parameters))
	}
	if server.ServerCode != "" {
		fmt.Println("\nServer code:")
		fmt.Println(server.ServerCode)
	}
}

func runAppServerCreate(cmd *cobra.Command, args []string) error {
	if err := requireApp(); err != nil {
		return err
	}

	payload, err := appServerPayload()
	if err != nil {
		return err
	}

	sess, err := newSession()
	if err != nil {
		return err
	}

	server, err := sess.catalog.CreateAppServer(cmd.Context(), appID, payload)
	if err != nil {
		return err
	}
	sess.catalog.InvalidateAppServer(appID)

	if sess.useJSON(appJSON) {
		return printJSON(os.Stdout, server)
	}

	successf("Created MCP server for app %s (id %s, status %s)", appID, server.ID, dash(server.Status))
	return nil
}

func runAppServerUpdate(cmd *cobra.Command, args []string) error {
	if err := requireApp(); err != nil {
		return err
	}

	payload, err := appServerPayload()
	if err != nil {
		return err
	}

	sess, err := newSession()
	if err != nil {
		return err
	}

	server, err := sess.catalog.UpdateAppServer(cmd.Context(), appID, payload)
	if err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			return fmt.Errorf("app %s has no MCP server to update", appID)
		}
		return err
	}
	sess.catalog.InvalidateAppServer(appID)

	if sess.useJSON(appJSON) {
		return printJSON(os.Stdout, server)
	}

	successf("Updated MCP server for app %s (status %s)", appID, dash(server.Status))
	return nil
}

func runAppServerRefresh(cmd *cobra.Command, args []string) error {
	if err := requireApp(); err != nil {
		return err
	}

	sess, err := newSession()
	if err != nil {
		return err
	}

	server, err := sess.catalog.RefreshAppServerCode(cmd.Context(), appID)
	if err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			return fmt.Errorf("app %s has no MCP server to refresh", appID)
		}
		return err
	}
	sess.catalog.InvalidateAppServer(appID)

	if sess.useJSON(appJSON) {
		return printJSON(os.Stdout, server)
	}

	successf("Regenerated server code for app %s (status %s)", appID, dash(server.Status))
	return nil
}

func runAppTriggers(cmd *cobra.Command, args []string) error {
	if err := requireApp(); err != nil {
		return err
	}

	sess, err := newSession()
	if err != nil {
		return err
	}

	triggers, err := sess.catalog.AppTriggers(cmd.Context(), appID, false)
	if err != nil {
		return err
	}

	if sess.useJSON(appJSON) {
		return printJSON(os.Stdout, triggers)
	}

	if len(triggers) == 0 {
		fmt.Printf("App %s has no triggers.\n", appID)
		return nil
	}

	table := newTable(os.Stdout, "ID", "Name", "Type", "Status")
	for _, trg := range triggers {
		table.Append(trg.ID, dash(trg.Name), dash(trg.Type), enabledText(trg.Enabled))
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("\nTotal: %d triggers\n", len(triggers))
	return nil
}

func runAppTriggerEnable(cmd *cobra.Command, args []string) error {
	if err := requireApp(); err != nil {
		return err
	}

	sess, err := newSession()
	if err != nil {
		return err
	}

	payload := workspace.TriggerEnablePayload{
		TriggerID: args[0],
		Enabled:   !appTriggerDisable,
	}
	if err := sess.catalog.SetAppTriggerEnabled(cmd.Context(), appID, payload); err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			return fmt.Errorf("no trigger with id %q on app %s", args[0], appID)
		}
		return err
	}
	sess.catalog.InvalidateAppTriggers(appID)

	if payload.Enabled {
		successf("Enabled trigger %s", args[0])
	} else {
		successf("Disabled trigger %s", args[0])
	}
	return nil
}

// appServerPayload assembles the server payload shared by create and update.
func appServerPayload() (workspace.AppServerPayload, error) {
	payload := workspace.AppServerPayload{
		Description: strings.TrimSpace(appServerDescription),
		Status:      strings.TrimSpace(appServerStatus),
	}

	if params := strings.TrimSpace(appServerParameters); params != "" {
		if !json.Valid([]byte(params)) {
			return workspace.AppServerPayload{}, fmt.Errorf("--parameters is not valid JSON")
		}
		payload.Parameters = json.RawMessage(params)
	}
	return payload, nil
}
