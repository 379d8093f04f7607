package cmd

import (
	"fmt"
	"os"

	"toolctl/internal/workspace"

	"github.com/spf13/cobra"
)

var (
	toolsJSON bool
	toolsType string

	toolsRecommendedType string
)

// toolsCmd lists the workspace tool catalog
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the workspace tool catalog",
	Long: `List the tools available in the workspace.

Without --type the catalog is summarized per provider; with --type the
tools of one partition are listed in full.

Provider types: builtin, api, workflow, mcp, skill.`,
	Args: cobra.NoArgs,
	RunE: runTools,
}

// toolsRecommendedCmd lists marketplace suggestions for a provider type
var toolsRecommendedCmd = &cobra.Command{
	Use:   "recommended",
	Short: "List recommended plugins for a provider type",
	Long: `List the plugins the workspace recommends for a provider type.

Recommendations are suggestions only; installing them happens in the web
console's marketplace.`,
	Args: cobra.NoArgs,
	RunE: runToolsRecommended,
}

func init() {
	rootCmd.AddCommand(toolsCmd)

	toolsCmd.AddCommand(toolsRecommendedCmd)

	toolsCmd.PersistentFlags().BoolVar(&toolsJSON, "json", false, "Print raw JSON instead of tables")
	toolsCmd.Flags().StringVar(&toolsType, "type", "", "Restrict the listing to one provider type")

	toolsRecommendedCmd.Flags().StringVar(&toolsRecommendedType, "type", "", "Provider type to recommend plugins for (required)")
}

func runTools(cmd *cobra.Command, args []string) error {
	sess, err := newSession()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if toolsType == "" {
		providers, err := sess.catalog.ToolProviders(ctx, false)
		if err != nil {
			return err
		}

		if sess.useJSON(toolsJSON) {
			return printJSON(os.Stdout, providers)
		}

		if len(providers) == 0 {
			fmt.Println("The workspace has no tool providers.")
			return nil
		}

		table := newTable(os.Stdout, "ID", "Name", "Type", "Tools")
		for _, p := range providers {
			table.Append(p.ID, p.Name, p.Type, fmt.Sprintf("%d", len(p.Tools)))
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		fmt.Printf("\nTotal: %d providers\n", len(providers))
		return nil
	}

	kind, err := parseToolKind(toolsType)
	if err != nil {
		return err
	}

	tools, err := sess.catalog.Tools(ctx, kind, false)
	if err != nil {
		return err
	}

	if sess.useJSON(toolsJSON) {
		return printJSON(os.Stdout, tools)
	}

	if len(tools) == 0 {
		fmt.Printf("No %s tools in the workspace.\n", kind)
		return nil
	}

	table := newTable(os.Stdout, "Name", "Label", "Provider", "Description")
	for _, t := range tools {
		table.Append(t.Name, dash(t.Label), dash(t.ProviderID), truncate(t.Description, 60))
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("\nTotal: %d %s tools\n", len(tools), kind)
	return nil
}

// parseToolKind maps the --type flag onto a catalog partition.
func parseToolKind(s string) (workspace.ToolKind, error) {
	for _, k := range workspace.ToolKinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown provider type %q (expected builtin, api, workflow, mcp or skill)", s)
}

func runToolsRecommended(cmd *cobra.Command, args []string) error {
	if toolsRecommendedType == "" {
		return fmt.Errorf("--type is required")
	}

	sess, err := newSession()
	if err != nil {
		return err
	}

	plugins, err := sess.catalog.RecommendedPlugins(cmd.Context(), toolsRecommendedType)
	if err != nil {
		return err
	}

	if sess.useJSON(toolsJSON) {
		return printJSON(os.Stdout, plugins)
	}

	if len(plugins) == 0 {
		fmt.Printf("No recommended plugins for type %q.\n", toolsRecommendedType)
		return nil
	}

	table := newTable(os.Stdout, "Plugin ID", "Name", "Brief")
	for _, p := range plugins {
		table.Append(p.PluginID, p.Name, truncate(p.Brief, 60))
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("\nTotal: %d recommendations\n", len(plugins))
	return nil
}
