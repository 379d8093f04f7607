package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want string
	}{
		{"without scope", KeySkillProviders, "workspace/skill-providers"},
		{"with scope", ToolPartitionKey("builtin"), "workspace/tools/builtin"},
		{"mcp provider scope", MCPToolsKey("m1"), "workspace/mcp-tools/m1"},
		{"app triggers", AppTriggersKey("app-1"), "apps/triggers/app-1"},
		{"app server", AppServerKey("app-1"), "apps/server/app-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.String())
		})
	}
}

func TestKeyIsZero(t *testing.T) {
	assert.True(t, Key{}.IsZero())
	assert.False(t, KeySkillProviders.IsZero())
	assert.False(t, Key{Scope: "x"}.IsZero())
}

func TestKeyForProviderType(t *testing.T) {
	tests := []struct {
		providerType string
		want         Key
		ok           bool
	}{
		{"builtIn", ToolPartitionKey("builtin"), true},
		{"builtin", ToolPartitionKey("builtin"), true},
		{"api", ToolPartitionKey("api"), true},
		{"custom", ToolPartitionKey("api"), true},
		{"workflow", ToolPartitionKey("workflow"), true},
		{"mcp", ToolPartitionKey("mcp"), true},
		{"skill", ToolPartitionKey("skill"), true},
		{"webhook", Key{}, false},
		{"Skill", Key{}, false},
		{"", Key{}, false},
	}

	for _, tt := range tests {
		t.Run("type "+tt.providerType, func(t *testing.T) {
			key, ok := KeyForProviderType(tt.providerType)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, key)
		})
	}
}
