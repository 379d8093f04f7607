package cache

// Key identifies one cached collection. Namespace groups related resources,
// Resource names the collection, and Scope narrows it to a single owner
// (a provider id, an app id) when the collection is per-entity.
type Key struct {
	Namespace string
	Resource  string
	Scope     string
}

// String renders "namespace/resource" or "namespace/resource/scope".
func (k Key) String() string {
	if k.Scope == "" {
		return k.Namespace + "/" + k.Resource
	}
	return k.Namespace + "/" + k.Resource + "/" + k.Scope
}

// IsZero reports whether the key is the zero value, which no store
// operation acts on.
func (k Key) IsZero() bool {
	return k == Key{}
}

const (
	workspaceNamespace = "workspace"
	appNamespace       = "apps"
)

// Fixed keys for the workspace-wide collections.
var (
	// KeySkillProviders caches the installed skill provider list.
	KeySkillProviders = Key{Namespace: workspaceNamespace, Resource: "skill-providers"}
	// KeyToolProviders caches the cross-type provider catalog.
	KeyToolProviders = Key{Namespace: workspaceNamespace, Resource: "tool-providers"}
)

// ToolPartitionKey returns the key of one tool-catalog partition
// (builtin, api, workflow, mcp or skill).
func ToolPartitionKey(kind string) Key {
	return Key{Namespace: workspaceNamespace, Resource: "tools", Scope: kind}
}

// MCPToolsKey returns the key of one MCP provider's discovered tool list.
func MCPToolsKey(providerID string) Key {
	return Key{Namespace: workspaceNamespace, Resource: "mcp-tools", Scope: providerID}
}

// AppTriggersKey returns the key of one app's trigger list.
func AppTriggersKey(appID string) Key {
	return Key{Namespace: appNamespace, Resource: "triggers", Scope: appID}
}

// AppServerKey returns the key of one app's server record.
func AppServerKey(appID string) Key {
	return Key{Namespace: appNamespace, Resource: "server", Scope: appID}
}

// KeyForProviderType resolves a provider-type string to the tool-catalog
// partition that type's mutations touch. The table is deliberately static:
// "api" and "custom" are two names for the same partition, "builtIn" keeps
// the backend's camel-case spelling. An unrecognized type returns
// (Key{}, false) so the caller's invalidation becomes a no-op instead of
// clearing an unrelated partition.
func KeyForProviderType(providerType string) (Key, bool) {
	switch providerType {
	case "builtIn", "builtin":
		return ToolPartitionKey("builtin"), true
	case "api", "custom":
		return ToolPartitionKey("api"), true
	case "workflow":
		return ToolPartitionKey("workflow"), true
	case "mcp":
		return ToolPartitionKey("mcp"), true
	case "skill":
		return ToolPartitionKey("skill"), true
	default:
		return Key{}, false
	}
}
