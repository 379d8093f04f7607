package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolctl/internal/cache"
	"toolctl/internal/workspace"
)

// fakeWorkspace stubs the client surface. Unstubbed methods panic through
// the embedded nil interface, which is what a test reaching for them
// deserves.
type fakeWorkspace struct {
	Workspace

	skillProviders     []workspace.SkillProvider
	skillProvidersErr  error
	skillProviderCalls int

	detailCalls int

	tools     map[workspace.ToolKind][]workspace.ToolWithProvider
	toolCalls map[workspace.ToolKind]int

	mcpToolCalls map[string]int

	deleteCalls int
}

func (f *fakeWorkspace) ListSkillProviders(ctx context.Context) ([]workspace.SkillProvider, error) {
	f.skillProviderCalls++
	return f.skillProviders, f.skillProvidersErr
}

func (f *fakeWorkspace) GetSkillProvider(ctx context.Context, id string) (*workspace.SkillProviderDetail, error) {
	f.detailCalls++
	return &workspace.SkillProviderDetail{
		SkillProvider: workspace.SkillProvider{ID: id, Name: "Detail"},
	}, nil
}

func (f *fakeWorkspace) ListTools(ctx context.Context, kind workspace.ToolKind) ([]workspace.ToolWithProvider, error) {
	if f.toolCalls == nil {
		f.toolCalls = make(map[workspace.ToolKind]int)
	}
	f.toolCalls[kind]++
	return f.tools[kind], nil
}

func (f *fakeWorkspace) ListMCPTools(ctx context.Context, providerID string) (*workspace.MCPProviderDetail, error) {
	if f.mcpToolCalls == nil {
		f.mcpToolCalls = make(map[string]int)
	}
	f.mcpToolCalls[providerID]++
	return &workspace.MCPProviderDetail{ID: providerID}, nil
}

func (f *fakeWorkspace) DeleteSkillProvider(ctx context.Context, id string) error {
	f.deleteCalls++
	return nil
}

func newTestService(ws *fakeWorkspace) (*Service, cache.Store) {
	store := cache.NewStore()
	return NewService(ws, store), store
}

func TestSkillProvidersReadThrough(t *testing.T) {
	ws := &fakeWorkspace{skillProviders: []workspace.SkillProvider{{ID: "s1", Name: "Alpha"}}}
	svc, _ := newTestService(ws)
	ctx := context.Background()

	first, err := svc.SkillProviders(ctx, false)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, ws.skillProviderCalls)

	// Second read is served from the cache.
	_, err = svc.SkillProviders(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, ws.skillProviderCalls)

	// refresh bypasses the cache and re-populates it.
	_, err = svc.SkillProviders(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 2, ws.skillProviderCalls)
}

func TestSkillProvidersErrorNotCached(t *testing.T) {
	ws := &fakeWorkspace{skillProvidersErr: errors.New("boom")}
	svc, store := newTestService(ws)
	ctx := context.Background()

	_, err := svc.SkillProviders(ctx, false)
	require.Error(t, err)
	assert.Equal(t, 0, store.Metrics().Entries)

	// The failure was not cached; the next read tries again.
	ws.skillProvidersErr = nil
	_, err = svc.SkillProviders(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 2, ws.skillProviderCalls)
}

func TestSkillProviderDetailNeverCached(t *testing.T) {
	ws := &fakeWorkspace{}
	svc, store := newTestService(ws)
	ctx := context.Background()

	_, err := svc.SkillProviderDetail(ctx, "s1")
	require.NoError(t, err)
	_, err = svc.SkillProviderDetail(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, 2, ws.detailCalls)
	assert.Equal(t, 0, store.Metrics().Entries)
}

func TestToolsCachedPerPartition(t *testing.T) {
	ws := &fakeWorkspace{tools: map[workspace.ToolKind][]workspace.ToolWithProvider{
		workspace.ToolKindBuiltin: {{Tool: workspace.Tool{Name: "web_search"}}},
		workspace.ToolKindSkill:   {{Tool: workspace.Tool{Name: "my-skill"}}},
	}}
	svc, _ := newTestService(ws)
	ctx := context.Background()

	_, err := svc.Tools(ctx, workspace.ToolKindBuiltin, false)
	require.NoError(t, err)
	_, err = svc.Tools(ctx, workspace.ToolKindSkill, false)
	require.NoError(t, err)

	// Dropping the skill partition leaves builtin cached.
	svc.InvalidateProviderType("skill")

	_, err = svc.Tools(ctx, workspace.ToolKindBuiltin, false)
	require.NoError(t, err)
	_, err = svc.Tools(ctx, workspace.ToolKindSkill, false)
	require.NoError(t, err)

	assert.Equal(t, 1, ws.toolCalls[workspace.ToolKindBuiltin])
	assert.Equal(t, 2, ws.toolCalls[workspace.ToolKindSkill])
}

func TestInvalidateProviderTypeUnknownIsNoOp(t *testing.T) {
	ws := &fakeWorkspace{}
	svc, store := newTestService(ws)
	ctx := context.Background()

	_, err := svc.Tools(ctx, workspace.ToolKindBuiltin, false)
	require.NoError(t, err)
	entries := store.Metrics().Entries

	svc.InvalidateProviderType("webhook")

	metrics := store.Metrics()
	assert.Equal(t, entries, metrics.Entries)
	assert.Equal(t, int64(0), metrics.Invalidations)
}

func TestInvalidateSkillProvidersScope(t *testing.T) {
	ws := &fakeWorkspace{tools: map[workspace.ToolKind][]workspace.ToolWithProvider{}}
	svc, store := newTestService(ws)
	ctx := context.Background()

	_, err := svc.SkillProviders(ctx, false)
	require.NoError(t, err)
	_, err = svc.Tools(ctx, workspace.ToolKindSkill, false)
	require.NoError(t, err)
	_, err = svc.Tools(ctx, workspace.ToolKindAPI, false)
	require.NoError(t, err)

	svc.InvalidateSkillProviders()

	_, ok := store.Get(cache.KeySkillProviders)
	assert.False(t, ok)
	_, ok = store.Get(cache.ToolPartitionKey("skill"))
	assert.False(t, ok)
	_, ok = store.Get(cache.ToolPartitionKey("api"))
	assert.True(t, ok, "unrelated partition must survive")
}

func TestMCPToolsScopedPerProvider(t *testing.T) {
	ws := &fakeWorkspace{}
	svc, _ := newTestService(ws)
	ctx := context.Background()

	_, err := svc.MCPTools(ctx, "m1", false)
	require.NoError(t, err)
	_, err = svc.MCPTools(ctx, "m2", false)
	require.NoError(t, err)

	svc.InvalidateMCPTools("m1")

	_, err = svc.MCPTools(ctx, "m1", false)
	require.NoError(t, err)
	_, err = svc.MCPTools(ctx, "m2", false)
	require.NoError(t, err)

	assert.Equal(t, 2, ws.mcpToolCalls["m1"])
	assert.Equal(t, 1, ws.mcpToolCalls["m2"])
}

func TestMutationsLeaveCacheAlone(t *testing.T) {
	ws := &fakeWorkspace{skillProviders: []workspace.SkillProvider{{ID: "s1"}}}
	svc, store := newTestService(ws)
	ctx := context.Background()

	_, err := svc.SkillProviders(ctx, false)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSkillProvider(ctx, "s1"))
	assert.Equal(t, 1, ws.deleteCalls)

	// The stale list is still cached until the caller invalidates.
	_, ok := store.Get(cache.KeySkillProviders)
	assert.True(t, ok)
	assert.Equal(t, int64(0), store.Metrics().Invalidations)
}
