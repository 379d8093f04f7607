package workspace

import (
	"encoding/json"
	"fmt"

	"toolctl/internal/skill"
)

// ToolKind names a partition of the workspace tool catalog. The values
// double as the path segment of the per-kind listing endpoint.
type ToolKind string

const (
	ToolKindBuiltin  ToolKind = "builtin"
	ToolKindAPI      ToolKind = "api"
	ToolKindWorkflow ToolKind = "workflow"
	ToolKindMCP      ToolKind = "mcp"
	ToolKindSkill    ToolKind = "skill"
)

// ToolKinds lists every catalog partition in display order.
func ToolKinds() []ToolKind {
	return []ToolKind{ToolKindBuiltin, ToolKindAPI, ToolKindWorkflow, ToolKindMCP, ToolKindSkill}
}

// Icon is a provider icon. The API sends either a plain string (an emoji or
// an image URL) or an object with a background color and content glyph;
// both forms are preserved.
type Icon struct {
	Emoji      string
	Background string
	Content    string
}

func (i *Icon) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &i.Emoji)
	}
	var obj struct {
		Background string `json:"background"`
		Content    string `json:"content"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("icon: %w", err)
	}
	i.Background = obj.Background
	i.Content = obj.Content
	return nil
}

func (i Icon) MarshalJSON() ([]byte, error) {
	if i.Emoji != "" {
		return json.Marshal(i.Emoji)
	}
	if i.Background == "" && i.Content == "" {
		return []byte("null"), nil
	}
	return json.Marshal(struct {
		Background string `json:"background"`
		Content    string `json:"content"`
	}{i.Background, i.Content})
}

// String returns the displayable glyph, whichever form the API sent.
func (i Icon) String() string {
	if i.Emoji != "" {
		return i.Emoji
	}
	return i.Content
}

// SkillProvider is one installed skill as the list endpoint reports it.
type SkillProvider struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	SkillIdentifier string           `json:"skill_identifier"`
	Description     string           `json:"description,omitempty"`
	Icon            Icon             `json:"icon,omitempty"`
	SourceType      skill.SourceType `json:"source_type,omitempty"`
	SourceURL       string           `json:"source_url,omitempty"`
	Version         string           `json:"version,omitempty"`
	Author          string           `json:"author,omitempty"`
	HasScripts      bool             `json:"has_scripts"`
	Enabled         bool             `json:"enabled"`
	CreatedAt       string           `json:"created_at,omitempty"`
	UpdatedAt       string           `json:"updated_at,omitempty"`
}

// SkillProviderDetail extends SkillProvider with the fields only the
// per-provider endpoint returns.
type SkillProviderDetail struct {
	SkillProvider
	License       string         `json:"license,omitempty"`
	Compatibility map[string]any `json:"compatibility,omitempty"`
	FullContent   string         `json:"full_content,omitempty"`
	Scripts       []skill.Script `json:"scripts,omitempty"`
}

// InstallResult is the response shape of the install and upload endpoints.
type InstallResult struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	SkillIdentifier string `json:"skill_identifier"`
	Description     string `json:"description,omitempty"`
}

// InstallSkillRequest is the install endpoint payload. GitURL/GitBranch
// apply to the git source, Path to the path source.
type InstallSkillRequest struct {
	SourceType skill.SourceType `json:"source_type"`
	GitURL     string           `json:"git_url,omitempty"`
	GitBranch  string           `json:"git_branch,omitempty"`
	Path       string           `json:"path,omitempty"`
	Name       string           `json:"name,omitempty"`
}

// ValidationResult is the validate endpoint's verdict on raw SKILL.md
// content.
type ValidationResult struct {
	Valid       bool   `json:"valid"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Error       string `json:"error,omitempty"`
}

// DeleteResult acknowledges a deletion.
type DeleteResult struct {
	Success bool `json:"success"`
}

// Tool is one catalog entry. Parameters stay raw JSON; the client renders
// tools but never interprets their schemas.
type Tool struct {
	Name        string          `json:"name"`
	Label       string          `json:"label,omitempty"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

// ToolWithProvider pairs a tool with the provider exposing it.
type ToolWithProvider struct {
	Tool
	ProviderID   string `json:"provider_id,omitempty"`
	ProviderType string `json:"provider_type,omitempty"`
}

// ToolProvider is one entry of the provider catalog.
type ToolProvider struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Icon        Icon   `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
	Tools       []Tool `json:"tools,omitempty"`
}

// MCPProviderDetail describes one MCP tool provider, including its
// authorization state. AuthorizationURL is set while the provider waits
// for the user to complete the OAuth round trip.
type MCPProviderDetail struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	ServerURL         string            `json:"server_url,omitempty"`
	ServerIdentifier  string            `json:"server_identifier,omitempty"`
	AuthStatus        string            `json:"auth_status,omitempty"`
	AuthorizationURL  string            `json:"authorization_url,omitempty"`
	Tools             []Tool            `json:"tools,omitempty"`
	MaskedCredentials map[string]string `json:"masked_credentials,omitempty"`
	CreatedAt         string            `json:"created_at,omitempty"`
	UpdatedAt         string            `json:"updated_at,omitempty"`
}

// MCPProviderPayload drives MCP provider create, update and delete. Only
// ProviderID matters for delete.
type MCPProviderPayload struct {
	ProviderID       string            `json:"provider_id,omitempty"`
	Name             string            `json:"name,omitempty"`
	ServerURL        string            `json:"server_url,omitempty"`
	ServerIdentifier string            `json:"server_identifier,omitempty"`
	Headers          map[string]string `json:"headers,omitempty"`
	TimeoutSeconds   float64           `json:"timeout,omitempty"`
}

// MCPAuthResult is what the auth and token-exchange endpoints return.
// Either the flow finished (Result "success") or the user must visit
// AuthorizationURL first.
type MCPAuthResult struct {
	Result           string `json:"result,omitempty"`
	AuthorizationURL string `json:"authorization_url,omitempty"`
}

// OperationResult is the generic {"result": "success"} acknowledgment.
type OperationResult struct {
	Result string `json:"result,omitempty"`
}

// AppServer is an app's MCP server record.
type AppServer struct {
	ID          string          `json:"id"`
	AppID       string          `json:"app_id,omitempty"`
	Status      string          `json:"status,omitempty"`
	ServerCode  string          `json:"server_code,omitempty"`
	URL         string          `json:"url,omitempty"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
	CreatedAt   string          `json:"created_at,omitempty"`
	UpdatedAt   string          `json:"updated_at,omitempty"`
}

// AppServerPayload drives app server create and update.
type AppServerPayload struct {
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"`
}

// AppTrigger is one automation trigger attached to an app.
type AppTrigger struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	Type    string `json:"type,omitempty"`
	Enabled bool   `json:"enabled"`
}

// TriggerEnablePayload toggles a single trigger.
type TriggerEnablePayload struct {
	TriggerID string `json:"trigger_id"`
	Enabled   bool   `json:"enabled"`
}

// RecommendedPlugin is one marketplace suggestion for a provider type.
type RecommendedPlugin struct {
	PluginID string `json:"plugin_id"`
	Name     string `json:"name,omitempty"`
	Icon     Icon   `json:"icon,omitempty"`
	Brief    string `json:"brief,omitempty"`
}

type recommendedPluginsEnvelope struct {
	Plugins []RecommendedPlugin `json:"plugins"`
}
