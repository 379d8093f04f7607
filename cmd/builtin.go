package cmd

import (
	"errors"
	"fmt"
	"os"

	"toolctl/internal/workspace"

	"github.com/spf13/cobra"
)

var (
	builtinJSON        bool
	builtinCredentials []string
)

// builtinCmd represents the builtin command
var builtinCmd = &cobra.Command{
	Use:   "builtin",
	Short: "Inspect builtin tool providers",
	Long: `Inspect the builtin tool providers the workspace ships with and manage
their credentials.

Builtin providers are addressed by name (for example "search" or "email"),
not by id.

Available commands:
  info                - Show one builtin provider
  tools               - List a builtin provider's tools
  credentials         - Set a builtin provider's credentials
  credentials-delete  - Delete a builtin provider's credentials`,
}

// builtinInfoCmd shows one builtin provider
var builtinInfoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show one builtin provider",
	Long:  `Show a builtin provider's description and tool count.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBuiltinInfo,
}

// builtinToolsCmd lists a builtin provider's tools
var builtinToolsCmd = &cobra.Command{
	Use:   "tools <name>",
	Short: "List a builtin provider's tools",
	Long:  `List the tools a builtin provider exposes.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBuiltinTools,
}

// builtinCredentialsCmd sets a builtin provider's credentials
var builtinCredentialsCmd = &cobra.Command{
	Use:   "credentials <name>",
	Short: "Set a builtin provider's credentials",
	Long: `Set credentials for a builtin provider, as repeated --set Key=Value
flags:
  toolctl builtin credentials search --set api_key=...`,
	Args: cobra.ExactArgs(1),
	RunE: runBuiltinCredentials,
}

// builtinCredentialsDeleteCmd deletes a builtin provider's credentials
var builtinCredentialsDeleteCmd = &cobra.Command{
	Use:   "credentials-delete <name>",
	Short: "Delete a builtin provider's credentials",
	Long:  `Delete the stored credentials of a builtin provider.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runBuiltinCredentialsDelete,
}

func init() {
	rootCmd.AddCommand(builtinCmd)

	// Add subcommands
	builtinCmd.AddCommand(builtinInfoCmd)
	builtinCmd.AddCommand(builtinToolsCmd)
	builtinCmd.AddCommand(builtinCredentialsCmd)
	builtinCmd.AddCommand(builtinCredentialsDeleteCmd)

	// Add flags to the parent command
	builtinCmd.PersistentFlags().BoolVar(&builtinJSON, "json", false, "Print raw JSON instead of tables")

	builtinCredentialsCmd.Flags().StringArrayVar(&builtinCredentials, "set", nil, "Credential as Key=Value (repeatable, required)")
}

func runBuiltinInfo(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}

	provider, err := sess.catalog.GetBuiltinProvider(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			return fmt.Errorf("no builtin provider named %q", args[0])
		}
		return err
	}

	if sess.useJSON(builtinJSON) {
		return printJSON(os.Stdout, provider)
	}

	if glyph := provider.Icon.String(); glyph != "" {
		fmt.Printf("%s %s\n", glyph, provider.Name)
	} else {
		fmt.Println(provider.Name)
	}
	fmt.Printf("  id:          %s\n", provider.ID)
	if provider.Description != "" {
		fmt.Printf("  description: %s\n", provider.Description)
	}
	fmt.Printf("  tools:       %d\n", len(provider.Tools))
	return nil
}

func runBuiltinTools(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}

	tools, err := sess.catalog.ListBuiltinTools(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			return fmt.Errorf("no builtin provider named %q", args[0])
		}
		return err
	}

	if sess.useJSON(builtinJSON) {
		return printJSON(os.Stdout, tools)
	}

	if len(tools) == 0 {
		fmt.Printf("Builtin provider %q exposes no tools.\n", args[0])
		return nil
	}

	table := newTable(os.Stdout, "Name", "Label", "Description")
	for _, t := range tools {
		table.Append(t.Name, dash(t.Label), truncate(t.Description, 60))
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("\nTotal: %d tools\n", len(tools))
	return nil
}

func runBuiltinCredentials(cmd *cobra.Command, args []string) error {
	if len(builtinCredentials) == 0 {
		return fmt.Errorf("at least one --set Key=Value is required")
	}

	credentials, err := parseKeyValues(builtinCredentials, "credential")
	if err != nil {
		return err
	}

	sess, err := newSession()
	if err != nil {
		return err
	}

	name := args[0]
	if err := sess.catalog.UpdateBuiltinCredentials(cmd.Context(), name, credentials); err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			return fmt.Errorf("no builtin provider named %q", name)
		}
		return err
	}
	sess.catalog.InvalidateProviderType("builtIn")

	successf("Updated credentials for builtin provider %s", name)
	return nil
}

func runBuiltinCredentialsDelete(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}

	name := args[0]
	if err := sess.catalog.DeleteBuiltinCredentials(cmd.Context(), name); err != nil {
		if errors.Is(err, workspace.ErrNotFound) {
			return fmt.Errorf("no builtin provider named %q", name)
		}
		return err
	}
	sess.catalog.InvalidateProviderType("builtIn")

	successf("Deleted credentials for builtin provider %s", name)
	return nil
}
