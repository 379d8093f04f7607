package cmd

import (
	"bytes"
	"testing"

	"toolctl/internal/workspace"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolsCmd(t *testing.T) {
	cmd := toolsCmd

	assert.NotNil(t, cmd)
	assert.Equal(t, "tools", cmd.Use)
	assert.Contains(t, cmd.Short, "tool catalog")
	assert.NotNil(t, cmd.RunE)

	found := false
	for _, child := range cmd.Commands() {
		if child.Name() == "recommended" {
			found = true
			break
		}
	}
	assert.True(t, found, "Subcommand recommended not found")
}

func TestToolsCmd_Flags(t *testing.T) {
	typeFlag := toolsCmd.Flags().Lookup("type")
	require.NotNil(t, typeFlag)
	assert.Equal(t, "", typeFlag.DefValue)

	jsonFlag := toolsCmd.PersistentFlags().Lookup("json")
	require.NotNil(t, jsonFlag)
	assert.Equal(t, "false", jsonFlag.DefValue)

	recTypeFlag := toolsRecommendedCmd.Flags().Lookup("type")
	require.NotNil(t, recTypeFlag)
}

func TestParseToolKind(t *testing.T) {
	for _, kind := range workspace.ToolKinds() {
		parsed, err := parseToolKind(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := parseToolKind("plugin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider type")
}

func TestToolsCmd_Integration(t *testing.T) {
	// Test the full command structure
	rootCmd := &cobra.Command{Use: "toolctl"}
	rootCmd.AddCommand(toolsCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"tools", "--help"})

	err := rootCmd.Execute()
	assert.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "tool catalog")
	assert.Contains(t, output, "recommended")
	assert.Contains(t, output, "--type")
}
