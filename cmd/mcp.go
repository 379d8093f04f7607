package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"toolctl/internal/workspace"

	"github.com/spf13/cobra"
)

var (
	mcpJSON bool

	mcpName       string
	mcpServerURL  string
	mcpIdentifier string
	mcpHeaders    []string
	mcpTimeout    float64

	mcpAuthCode string
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Manage MCP tool providers",
	Long: `Manage the MCP tool providers connected to the workspace.

An MCP provider points the workspace at an external MCP server and imports
its tools into the catalog. Providers that require OAuth go through
'toolctl mcp auth' and 'toolctl mcp token'.

Available commands:
  list     - List MCP providers
  add      - Connect a new MCP server
  update   - Update an MCP provider
  remove   - Remove an MCP provider
  auth     - Start the OAuth authorization flow
  token    - Complete the OAuth flow with an authorization code
  tools    - Show one provider with the tools it exposes
  refresh  - Re-import a provider's tools from its server`,
}

// mcpListCmd lists the MCP providers
var mcpListCmd = &cobra.Command{
	Use:   "list",
	Short: "List MCP providers",
	Long: `List the MCP tool providers connected to the workspace.

Use 'toolctl mcp tools <provider-id>' for a provider's auth status and
tool list.`,
	Args: cobra.NoArgs,
	RunE: runMCPList,
}

// mcpAddCmd connects a new MCP server
var mcpAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Connect a new MCP server",
	Long: `Connect an external MCP server to the workspace.

The server URL is required. Extra request headers (for bearer tokens and
the like) are given as repeated --header Key=Value flags. When the server
requires OAuth, the created provider starts unauthorized and the response
carries an authorization URL to visit.`,
	Args: cobra.NoArgs,
	RunE: runMCPAdd,
}

// mcpUpdateCmd updates an MCP provider
var mcpUpdateCmd = &cobra.Command{
	Use:   "update <provider-id>",
	Short: "Update an MCP provider",
	Long: `Update an MCP provider's name, server URL, headers or timeout.

Only the flags given change; omitted fields keep their server-side value.
Use 'toolctl mcp list' to find provider ids.`,
	Args: cobra.ExactArgs(1),
	RunE: runMCPUpdate,
}

// mcpRemoveCmd removes an MCP provider
var mcpRemoveCmd = &cobra.Command{
	Use:   "remove <provider-id>",
	Short: "Remove an MCP provider",
	Long: `Remove an MCP provider and its imported tools from the workspace.

Use 'toolctl mcp list' to find provider ids.`,
	Args: cobra.ExactArgs(1),
	RunE: runMCPRemove,
}

// mcpAuthCmd starts the OAuth authorization flow
var mcpAuthCmd = &cobra.Command{
	Use:   "auth <provider-id>",
	Short: "Start the OAuth authorization flow",
	Long: `Start the OAuth flow for an MCP provider that requires authorization.

The backend returns an authorization URL to open in a browser. After
granting access, finish the flow with:
  toolctl mcp token <provider-id> --code <authorization-code>`,
	Args: cobra.ExactArgs(1),
	RunE: runMCPAuth,
}

// mcpTokenCmd completes the OAuth flow
var mcpTokenCmd = &cobra.Command{
	Use:   "token <provider-id>",
	Short: "Complete the OAuth flow with an authorization code",
	Long: `Exchange an OAuth authorization code for provider credentials.

The code is the value the authorization server hands back after
'toolctl mcp auth'.`,
	Args: cobra.ExactArgs(1),
	RunE: runMCPToken,
}

// mcpToolsCmd shows one provider with its tools
var mcpToolsCmd = &cobra.Command{
	Use:   "tools <provider-id>",
	Short: "Show one provider with the tools it exposes",
	Long: `Show an MCP provider's auth status and the tools imported from its
server.`,
	Args: cobra.ExactArgs(1),
	RunE: runMCPTools,
}

// mcpRefreshCmd re-imports a provider's tools
var mcpRefreshCmd = &cobra.Command{
	Use:   "refresh <provider-id>",
	Short: "Re-import a provider's tools from its server",
	Long: `Ask the backend to reconnect to the provider's MCP server and re-import
its tool list.`,
	Args: cobra.ExactArgs(1),
	RunE: runMCPRefresh,
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	// Add subcommands
	mcpCmd.AddCommand(mcpListCmd)
	mcpCmd.AddCommand(mcpAddCmd)
	mcpCmd.AddCommand(mcpUpdateCmd)
	mcpCmd.AddCommand(mcpRemoveCmd)
	mcpCmd.AddCommand(mcpAuthCmd)
	mcpCmd.AddCommand(mcpTokenCmd)
	mcpCmd.AddCommand(mcpToolsCmd)
	mcpCmd.AddCommand(mcpRefreshCmd)

	// Add flags to the parent command
	mcpCmd.PersistentFlags().BoolVar(&mcpJSON, "json", false, "Print raw JSON instead of tables")

	for _, c := range []*cobra.Command{mcpAddCmd, mcpUpdateCmd} {
		c.Flags().StringVar(&mcpName, "name", "", "Display name for the provider")
		c.Flags().StringVar(&mcpServerURL, "server-url", "", "MCP server URL")
		c.Flags().StringVar(&mcpIdentifier, "identifier", "", "Server identifier (when one URL hosts several servers)")
		c.Flags().StringArrayVar(&mcpHeaders, "header", nil, "Extra request header as Key=Value (repeatable)")
		c.Flags().Float64Var(&mcpTimeout, "timeout", 0, "Per-request timeout in seconds")
	}

	mcpTokenCmd.Flags().StringVar(&mcpAuthCode, "code", "", "OAuth authorization code (required)")
}

func runMCPList(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}

	providers, err := sess.catalog.ToolProviders(cmd.Context(), false)
	if err != nil {
		return err
	}

	var mcps []workspace.ToolProvider
	for _, p := range providers {
		if p.Type == string(workspace.ToolKindMCP) {
			mcps = append(mcps, p)
		}
	}

	if sess.useJSON(mcpJSON) {
		return printJSON(os.Stdout, mcps)
	}

	if len(mcps) == 0 {
		fmt.Println("No MCP providers connected.")
		fmt.Println("Connect one with 'toolctl mcp add --server-url <url>'.")
		return nil
	}

	table := newTable(os.Stdout, "ID", "Name", "Tools")
	for _, p := range mcps {
		table.Append(p.ID, p.Name, fmt.Sprintf("%d", len(p.Tools)))
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("\nTotal: %d MCP providers\n", len(mcps))
	return nil
}

func runMCPAdd(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(mcpServerURL) == "" {
		return fmt.Errorf("--server-url is required")
	}

	payload, err := mcpPayload("")
	if err != nil {
		return err
	}

	sess, err := newSession()
	if err != nil {
		return err
	}

	detail, err := sess.catalog.CreateMCPProvider(cmd.Context(), payload)
	if err != nil {
		return err
	}
	sess.catalog.InvalidateMCPProviders()

	if sess.useJSON(mcpJSON) {
		return printJSON(os.Stdout, detail)
	}

	successf("Connected %q (id %s)", detail.Name, detail.ID)
	fmt.Printf("  auth status: %s\n", authStatusText(detail.AuthStatus))
	fmt.Printf("  tools:       %d\n", len(detail.Tools))
	if detail.AuthorizationURL != "" {
		fmt.Printf("\nAuthorization required. Open:\n  %s\nthen run 'toolctl mcp token %s --code <code>'.\n", detail.AuthorizationURL, detail.ID)
	}
	return nil
}

func runMCPUpdate(cmd *cobra.Command, args []string) error {
	payload, err := mcpPayload(args[0])
	if err != nil {
		return err
	}

	sess, err := newSession()
	if err != nil {
		return err
	}

	detail, err := sess.catalog.UpdateMCPProvider(cmd.Context(), payload)
	if err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			return fmt.Errorf("no MCP provider with id %q", args[0])
		}
		return err
	}
	sess.catalog.InvalidateMCPProviders()
	sess.catalog.InvalidateMCPTools(args[0])

	if sess.useJSON(mcpJSON) {
		return printJSON(os.Stdout, detail)
	}

	successf("Updated %q (id %s)", detail.Name, detail.ID)
	fmt.Printf("  auth status: %s\n", authStatusText(detail.AuthStatus))
	fmt.Printf("  tools:       %d\n", len(detail.Tools))
	return nil
}

func runMCPRemove(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}

	id := args[0]
	if err := sess.catalog.DeleteMCPProvider(cmd.Context(), id); err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			return fmt.Errorf("no MCP provider with id %q", id)
		}
		return err
	}
	sess.catalog.InvalidateMCPProviders()
	sess.catalog.InvalidateMCPTools(id)

	successf("Removed MCP provider %s", id)
	return nil
}

func runMCPAuth(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}

	id := args[0]
	result, err := sess.catalog.AuthorizeMCPProvider(cmd.Context(), id)
	if err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			return fmt.Errorf("no MCP provider with id %q", id)
		}
		return err
	}
	sess.catalog.InvalidateMCPTools(id)

	if sess.useJSON(mcpJSON) {
		return printJSON(os.Stdout, result)
	}

	if result.AuthorizationURL != "" {
		fmt.Printf("Open this URL to authorize the provider:\n  %s\n\nThen finish with 'toolctl mcp token %s --code <code>'.\n", result.AuthorizationURL, id)
		return nil
	}

	successf("Provider %s authorized (%s)", id, dash(result.Result))
	return nil
}

func runMCPToken(cmd *cobra.Command, args []string) error {
	code := strings.TrimSpace(mcpAuthCode)
	if code == "" {
		return fmt.Errorf("--code is required")
	}

	sess, err := newSession()
	if err != nil {
		return err
	}

	id := args[0]
	result, err := sess.catalog.ExchangeMCPToken(cmd.Context(), id, code)
	if err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			return fmt.Errorf("no MCP provider with id %q", id)
		}
		return err
	}
	sess.catalog.InvalidateMCPProviders()
	sess.catalog.InvalidateMCPTools(id)

	if sess.useJSON(mcpJSON) {
		return printJSON(os.Stdout, result)
	}

	successf("Token exchange complete for provider %s (%s)", id, dash(result.Result))
	return nil
}

func runMCPTools(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}

	detail, err := sess.catalog.MCPTools(cmd.Context(), args[0], false)
	if err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			return fmt.Errorf("no MCP provider with id %q", args[0])
		}
		return err
	}

	if sess.useJSON(mcpJSON) {
		return printJSON(os.Stdout, detail)
	}

	printMCPDetail(detail)
	return nil
}

func printMCPDetail(detail *workspace.MCPProviderDetail) {
	fmt.Println(detail.Name)
	fmt.Printf("  id:          %s\n", detail.ID)
	fmt.Printf("  server url:  %s\n", dash(detail.ServerURL))
	if detail.ServerIdentifier != "" {
		fmt.Printf("  identifier:  %s\n", detail.ServerIdentifier)
	}
	fmt.Printf("  auth status: %s\n", authStatusText(detail.AuthStatus))
	if detail.AuthorizationURL != "" {
		fmt.Printf("  authorize:   %s\n", detail.AuthorizationURL)
	}
	if len(detail.MaskedCredentials) > 0 {
		fmt.Println("  credentials:")
		for k, v := range detail.MaskedCredentials {
			fmt.Printf("    %s: %s\n", k, v)
		}
	}

	if len(detail.Tools) == 0 {
		fmt.Println("\nNo tools imported from this provider.")
		return
	}

	fmt.Printf("\nTools (%d):\n", len(detail.Tools))
	for _, t := range detail.Tools {
		if t.Description != "" {
			fmt.Printf("  %s - %s\n", t.Name, truncate(t.Description, 70))
		} else {
			fmt.Printf("  %s\n", t.Name)
		}
	}
}

func runMCPRefresh(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}

	id := args[0]
	detail, err := sess.catalog.RefreshMCPTools(cmd.Context(), id)
	if err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			return fmt.Errorf("no MCP provider with id %q", id)
		}
		return err
	}
	sess.catalog.InvalidateMCPTools(id)

	if sess.useJSON(mcpJSON) {
		return printJSON(os.Stdout, detail)
	}

	successf("Refreshed %q: %d tools", detail.Name, len(detail.Tools))
	return nil
}

// mcpPayload assembles the provider payload shared by add and update.
func mcpPayload(providerID string) (workspace.MCPProviderPayload, error) {
	headers, err := parseKeyValues(mcpHeaders, "header")
	if err != nil {
		return workspace.MCPProviderPayload{}, err
	}

	return workspace.MCPProviderPayload{
		ProviderID:       providerID,
		Name:             strings.TrimSpace(mcpName),
		ServerURL:        strings.TrimSpace(mcpServerURL),
		ServerIdentifier: strings.TrimSpace(mcpIdentifier),
		Headers:          headers,
		TimeoutSeconds:   mcpTimeout,
	}, nil
}

// parseKeyValues turns repeated Key=Value flags into a map. what names the
// flag's noun in error messages ("header", "credential").
func parseKeyValues(pairs []string, what string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	m := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("invalid %s %q (expected Key=Value)", what, pair)
		}
		m[strings.TrimSpace(k)] = v
	}
	return m, nil
}
