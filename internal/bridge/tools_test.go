package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolctl/internal/cache"
	"toolctl/internal/catalog"
	"toolctl/internal/config"
	"toolctl/internal/workspace"
)

// fakeWorkspace stubs the catalog's client surface; unstubbed methods panic
// through the embedded nil interface.
type fakeWorkspace struct {
	catalog.Workspace

	skillProviders []workspace.SkillProvider
	detailErr      error
	providers      []workspace.ToolProvider
	tools          map[workspace.ToolKind][]workspace.ToolWithProvider
}

func (f *fakeWorkspace) ListSkillProviders(ctx context.Context) ([]workspace.SkillProvider, error) {
	return f.skillProviders, nil
}

func (f *fakeWorkspace) GetSkillProvider(ctx context.Context, id string) (*workspace.SkillProviderDetail, error) {
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	return &workspace.SkillProviderDetail{
		SkillProvider: workspace.SkillProvider{ID: id, Name: "Detail"},
	}, nil
}

func (f *fakeWorkspace) ListToolProviders(ctx context.Context) ([]workspace.ToolProvider, error) {
	return f.providers, nil
}

func (f *fakeWorkspace) ListTools(ctx context.Context, kind workspace.ToolKind) ([]workspace.ToolWithProvider, error) {
	return f.tools[kind], nil
}

func newTestServer(ws *fakeWorkspace, cfg config.BridgeConfig) *Server {
	return NewServer(cfg, catalog.NewService(ws, cache.NewStore()))
}

func callRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	tc, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "Expected TextContent")
	return tc.Text
}

func TestCatalogToolNames(t *testing.T) {
	srv := newTestServer(&fakeWorkspace{}, config.BridgeConfig{})

	names := make(map[string]bool)
	for _, st := range srv.catalogTools() {
		names[st.Tool.Name] = true
	}

	assert.True(t, names["workspace_skill_list"])
	assert.True(t, names["workspace_skill_show"])
	assert.True(t, names["workspace_tool_list"])
	assert.True(t, names["workspace_skill_validate"])
}

func TestCatalogToolNames_CustomPrefix(t *testing.T) {
	srv := newTestServer(&fakeWorkspace{}, config.BridgeConfig{ToolPrefix: "ws"})

	for _, st := range srv.catalogTools() {
		assert.Contains(t, st.Tool.Name, "ws_")
	}
}

func TestHandleSkillList(t *testing.T) {
	srv := newTestServer(&fakeWorkspace{
		skillProviders: []workspace.SkillProvider{
			{ID: "s1", Name: "Alpha", SkillIdentifier: "alpha"},
			{ID: "s2", Name: "Beta", SkillIdentifier: "beta"},
		},
	}, config.BridgeConfig{})

	result, err := srv.handleSkillList(context.Background(), callRequest("workspace_skill_list", nil))
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	var payload struct {
		Providers []workspace.SkillProvider `json:"providers"`
		Total     int                       `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &payload))
	assert.Equal(t, 2, payload.Total)
	assert.Equal(t, "s1", payload.Providers[0].ID)
}

func TestHandleSkillShow_MissingID(t *testing.T) {
	srv := newTestServer(&fakeWorkspace{}, config.BridgeConfig{})

	result, err := srv.handleSkillShow(context.Background(), callRequest("workspace_skill_show", map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleSkillShow_NotFound(t *testing.T) {
	srv := newTestServer(&fakeWorkspace{
		detailErr: &workspace.APIError{Status: http.StatusNotFound},
	}, config.BridgeConfig{})

	result, err := srv.handleSkillShow(context.Background(), callRequest("workspace_skill_show", map[string]interface{}{
		"id": "missing",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textContent(t, result), "missing")
}

func TestHandleSkillShow(t *testing.T) {
	srv := newTestServer(&fakeWorkspace{}, config.BridgeConfig{})

	result, err := srv.handleSkillShow(context.Background(), callRequest("workspace_skill_show", map[string]interface{}{
		"id": "s1",
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var detail workspace.SkillProviderDetail
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &detail))
	assert.Equal(t, "s1", detail.ID)
}

func TestHandleToolList_ByType(t *testing.T) {
	srv := newTestServer(&fakeWorkspace{
		tools: map[workspace.ToolKind][]workspace.ToolWithProvider{
			workspace.ToolKindSkill: {{Tool: workspace.Tool{Name: "my-skill"}}},
		},
	}, config.BridgeConfig{})

	result, err := srv.handleToolList(context.Background(), callRequest("workspace_tool_list", map[string]interface{}{
		"type": "skill",
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var payload struct {
		Type  string                       `json:"type"`
		Tools []workspace.ToolWithProvider `json:"tools"`
		Total int                          `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &payload))
	assert.Equal(t, "skill", payload.Type)
	assert.Equal(t, 1, payload.Total)
}

func TestHandleToolList_AllProviders(t *testing.T) {
	srv := newTestServer(&fakeWorkspace{
		providers: []workspace.ToolProvider{
			{ID: "p1", Name: "Builtin", Type: "builtIn"},
			{ID: "p2", Name: "Slack", Type: "mcp"},
		},
	}, config.BridgeConfig{})

	result, err := srv.handleToolList(context.Background(), callRequest("workspace_tool_list", map[string]interface{}{}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var payload struct {
		Providers []workspace.ToolProvider `json:"providers"`
		Total     int                      `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &payload))
	assert.Equal(t, 2, payload.Total)
}

func TestHandleSkillValidate_Valid(t *testing.T) {
	srv := newTestServer(&fakeWorkspace{}, config.BridgeConfig{})

	content := "---\nname: my-skill\ndescription: Does things\n---\n# Body\n"
	result, err := srv.handleSkillValidate(context.Background(), callRequest("workspace_skill_validate", map[string]interface{}{
		"content": content,
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var verdict workspace.ValidationResult
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &verdict))
	assert.True(t, verdict.Valid)
	assert.Equal(t, "my-skill", verdict.Name)
}

func TestHandleSkillValidate_Invalid(t *testing.T) {
	srv := newTestServer(&fakeWorkspace{}, config.BridgeConfig{})

	// Uppercase names violate the naming rules.
	content := "---\nname: My Skill\ndescription: Does things\n---\n# Body\n"
	result, err := srv.handleSkillValidate(context.Background(), callRequest("workspace_skill_validate", map[string]interface{}{
		"content": content,
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)

	var verdict workspace.ValidationResult
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &verdict))
	assert.False(t, verdict.Valid)
	assert.NotEmpty(t, verdict.Error)
}

func TestHandleSkillValidate_NoFrontmatter(t *testing.T) {
	srv := newTestServer(&fakeWorkspace{}, config.BridgeConfig{})

	result, err := srv.handleSkillValidate(context.Background(), callRequest("workspace_skill_validate", map[string]interface{}{
		"content": "# Just a readme\n",
	}))
	require.NoError(t, err)

	var verdict workspace.ValidationResult
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &verdict))
	assert.False(t, verdict.Valid)
}
