package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPCmd(t *testing.T) {
	cmd := mcpCmd

	assert.NotNil(t, cmd)
	assert.Equal(t, "mcp", cmd.Use)
	assert.Contains(t, cmd.Short, "MCP tool providers")
	assert.True(t, cmd.HasSubCommands())

	// Check that all expected subcommands exist
	subcommands := []string{"list", "add", "update", "remove", "auth", "token", "tools", "refresh"}
	for _, subcmd := range subcommands {
		found := false
		for _, child := range cmd.Commands() {
			if child.Name() == subcmd {
				found = true
				break
			}
		}
		assert.True(t, found, "Subcommand %s not found", subcmd)
	}
}

func TestMCPCmd_Flags(t *testing.T) {
	jsonFlag := mcpCmd.PersistentFlags().Lookup("json")
	require.NotNil(t, jsonFlag)
	assert.Equal(t, "false", jsonFlag.DefValue)

	for _, c := range []*cobra.Command{mcpAddCmd, mcpUpdateCmd} {
		require.NotNil(t, c.Flags().Lookup("server-url"), "%s misses --server-url", c.Name())
		require.NotNil(t, c.Flags().Lookup("name"), "%s misses --name", c.Name())
		require.NotNil(t, c.Flags().Lookup("header"), "%s misses --header", c.Name())
		require.NotNil(t, c.Flags().Lookup("timeout"), "%s misses --timeout", c.Name())
	}

	codeFlag := mcpTokenCmd.Flags().Lookup("code")
	require.NotNil(t, codeFlag)
}

func TestParseKeyValues(t *testing.T) {
	m, err := parseKeyValues([]string{"Authorization=Bearer abc", "X-Team=core"}, "header")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"Authorization": "Bearer abc",
		"X-Team":        "core",
	}, m)

	// Values may contain '='; only the first one splits.
	m, err = parseKeyValues([]string{"query=a=b"}, "header")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"query": "a=b"}, m)

	m, err = parseKeyValues(nil, "header")
	require.NoError(t, err)
	assert.Nil(t, m)

	_, err = parseKeyValues([]string{"no-separator"}, "header")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid header")

	_, err = parseKeyValues([]string{"=value"}, "credential")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credential")
}

func TestMCPPayload(t *testing.T) {
	origName, origURL, origID, origHeaders, origTimeout := mcpName, mcpServerURL, mcpIdentifier, mcpHeaders, mcpTimeout
	defer func() {
		mcpName, mcpServerURL, mcpIdentifier, mcpHeaders, mcpTimeout = origName, origURL, origID, origHeaders, origTimeout
	}()

	mcpName = " GitHub "
	mcpServerURL = "https://mcp.example.com/sse"
	mcpIdentifier = ""
	mcpHeaders = []string{"Authorization=Bearer abc"}
	mcpTimeout = 15

	payload, err := mcpPayload("prov-1")
	require.NoError(t, err)

	assert.Equal(t, "prov-1", payload.ProviderID)
	assert.Equal(t, "GitHub", payload.Name)
	assert.Equal(t, "https://mcp.example.com/sse", payload.ServerURL)
	assert.Equal(t, map[string]string{"Authorization": "Bearer abc"}, payload.Headers)
	assert.Equal(t, float64(15), payload.TimeoutSeconds)

	mcpHeaders = []string{"broken"}
	_, err = mcpPayload("prov-1")
	require.Error(t, err)
}

func TestMCPCmd_Integration(t *testing.T) {
	// Test the full command structure
	rootCmd := &cobra.Command{Use: "toolctl"}
	rootCmd.AddCommand(mcpCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"mcp", "--help"})

	err := rootCmd.Execute()
	assert.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "MCP tool providers")
	assert.Contains(t, output, "Available Commands:")
	assert.Contains(t, output, "add")
	assert.Contains(t, output, "auth")
	assert.Contains(t, output, "refresh")
}
