package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	err := printJSON(&buf, map[string]string{"id": "sp-1"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"id": "sp-1"`)
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestNewTable(t *testing.T) {
	var buf bytes.Buffer
	table := newTable(&buf, "Name", "Type")
	table.Append("alpha", "skill")
	require.NoError(t, table.Render())

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "NAME")
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "skill")
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "yes", yesNo(true))
	assert.Equal(t, "no", yesNo(false))
}

func TestDash(t *testing.T) {
	assert.Equal(t, "-", dash(""))
	assert.Equal(t, "v1.2", dash("v1.2"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 20))
	assert.Equal(t, "multi line", truncate("multi\nline", 20))

	long := strings.Repeat("a", 30)
	got := truncate(long, 10)
	assert.True(t, strings.HasSuffix(got, "…"), "expected ellipsis, got %q", got)
	assert.LessOrEqual(t, len([]rune(got)), 10)
}

func TestEnabledText(t *testing.T) {
	// Color output is disabled outside a terminal; match on the text.
	assert.Contains(t, enabledText(true), "enabled")
	assert.Contains(t, enabledText(false), "disabled")
}

func TestAuthStatusText(t *testing.T) {
	assert.Contains(t, authStatusText("authorized"), "authorized")
	assert.Contains(t, authStatusText("pending"), "pending")
	assert.Contains(t, authStatusText("unauthorized"), "unauthorized")
	assert.Equal(t, "weird", authStatusText("weird"))
}
