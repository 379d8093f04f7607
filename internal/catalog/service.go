package catalog

import (
	"context"

	"toolctl/internal/cache"
	"toolctl/internal/workspace"
	"toolctl/pkg/logging"
)

const subsystem = "Catalog"

// Workspace is the client surface the catalog consumes. *workspace.Client
// implements it; tests substitute fakes.
type Workspace interface {
	ListSkillProviders(ctx context.Context) ([]workspace.SkillProvider, error)
	GetSkillProvider(ctx context.Context, id string) (*workspace.SkillProviderDetail, error)
	InstallSkill(ctx context.Context, req workspace.InstallSkillRequest) (*workspace.InstallResult, error)
	UploadSkill(ctx context.Context, filename string, content []byte, name string) (*workspace.InstallResult, error)
	DeleteSkillProvider(ctx context.Context, id string) error
	ValidateSkillContent(ctx context.Context, content string) (*workspace.ValidationResult, error)

	ListToolProviders(ctx context.Context) ([]workspace.ToolProvider, error)
	ListTools(ctx context.Context, kind workspace.ToolKind) ([]workspace.ToolWithProvider, error)
	GetBuiltinProvider(ctx context.Context, name string) (*workspace.ToolProvider, error)
	ListBuiltinTools(ctx context.Context, name string) ([]workspace.Tool, error)
	UpdateBuiltinCredentials(ctx context.Context, name string, credentials map[string]string) error
	DeleteBuiltinCredentials(ctx context.Context, name string) error
	ListRecommendedPlugins(ctx context.Context, pluginType string) ([]workspace.RecommendedPlugin, error)

	CreateMCPProvider(ctx context.Context, payload workspace.MCPProviderPayload) (*workspace.MCPProviderDetail, error)
	UpdateMCPProvider(ctx context.Context, payload workspace.MCPProviderPayload) (*workspace.MCPProviderDetail, error)
	DeleteMCPProvider(ctx context.Context, providerID string) error
	AuthorizeMCPProvider(ctx context.Context, providerID string) (*workspace.MCPAuthResult, error)
	ExchangeMCPToken(ctx context.Context, providerID, code string) (*workspace.MCPAuthResult, error)
	ListMCPTools(ctx context.Context, providerID string) (*workspace.MCPProviderDetail, error)
	RefreshMCPTools(ctx context.Context, providerID string) (*workspace.MCPProviderDetail, error)

	GetAppServer(ctx context.Context, appID string) (*workspace.AppServer, error)
	CreateAppServer(ctx context.Context, appID string, payload workspace.AppServerPayload) (*workspace.AppServer, error)
	UpdateAppServer(ctx context.Context, appID string, payload workspace.AppServerPayload) (*workspace.AppServer, error)
	RefreshAppServerCode(ctx context.Context, appID string) (*workspace.AppServer, error)
	ListAppTriggers(ctx context.Context, appID string) ([]workspace.AppTrigger, error)
	SetAppTriggerEnabled(ctx context.Context, appID string, payload workspace.TriggerEnablePayload) error
}

var _ Workspace = (*workspace.Client)(nil)

// Service is the query layer the TUI, CLI and bridge share. Reads go
// through the cache; mutations pass straight to the client and never touch
// the cache themselves — after the server confirms, the caller composes
// the Invalidate helpers for the collections the mutation changed.
type Service struct {
	ws    Workspace
	store cache.Store
}

// NewService binds a workspace client to a cache store.
func NewService(ws Workspace, store cache.Store) *Service {
	return &Service{ws: ws, store: store}
}

// readThrough returns the cached value under key unless refresh is set,
// fetching and caching on a miss. Errors are returned uncached so the next
// read retries.
func readThrough[T any](ctx context.Context, s *Service, key cache.Key, refresh bool, fetch func(context.Context) (T, error)) (T, error) {
	if !refresh {
		if cached, ok := s.store.Get(key); ok {
			if value, ok := cached.(T); ok {
				return value, nil
			}
		}
	}
	logging.Debug(subsystem, "fetching %s", key)
	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	s.store.Set(key, value)
	return value, nil
}

// SkillProviders lists installed skill providers, cached.
func (s *Service) SkillProviders(ctx context.Context, refresh bool) ([]workspace.SkillProvider, error) {
	return readThrough(ctx, s, cache.KeySkillProviders, refresh, s.ws.ListSkillProviders)
}

// SkillProviderDetail fetches one provider's detail. Details are fetched
// lazily per selection and never cached; the list stays the only source of
// truth for what exists.
func (s *Service) SkillProviderDetail(ctx context.Context, id string) (*workspace.SkillProviderDetail, error) {
	return s.ws.GetSkillProvider(ctx, id)
}

// ToolProviders lists the cross-type provider catalog, cached.
func (s *Service) ToolProviders(ctx context.Context, refresh bool) ([]workspace.ToolProvider, error) {
	return readThrough(ctx, s, cache.KeyToolProviders, refresh, s.ws.ListToolProviders)
}

// Tools lists one catalog partition, cached per kind.
func (s *Service) Tools(ctx context.Context, kind workspace.ToolKind, refresh bool) ([]workspace.ToolWithProvider, error) {
	return readThrough(ctx, s, cache.ToolPartitionKey(string(kind)), refresh, func(ctx context.Context) ([]workspace.ToolWithProvider, error) {
		return s.ws.ListTools(ctx, kind)
	})
}

// MCPTools returns one MCP provider's detail with its tool list, cached per
// provider.
func (s *Service) MCPTools(ctx context.Context, providerID string, refresh bool) (*workspace.MCPProviderDetail, error) {
	return readThrough(ctx, s, cache.MCPToolsKey(providerID), refresh, func(ctx context.Context) (*workspace.MCPProviderDetail, error) {
		return s.ws.ListMCPTools(ctx, providerID)
	})
}

// AppTriggers lists one app's triggers, cached per app.
func (s *Service) AppTriggers(ctx context.Context, appID string, refresh bool) ([]workspace.AppTrigger, error) {
	return readThrough(ctx, s, cache.AppTriggersKey(appID), refresh, func(ctx context.Context) ([]workspace.AppTrigger, error) {
		return s.ws.ListAppTriggers(ctx, appID)
	})
}

// AppServer returns one app's server record, cached per app.
func (s *Service) AppServer(ctx context.Context, appID string, refresh bool) (*workspace.AppServer, error) {
	return readThrough(ctx, s, cache.AppServerKey(appID), refresh, func(ctx context.Context) (*workspace.AppServer, error) {
		return s.ws.GetAppServer(ctx, appID)
	})
}

// RecommendedPlugins lists marketplace suggestions. Not cached; it is a
// one-shot CLI listing.
func (s *Service) RecommendedPlugins(ctx context.Context, pluginType string) ([]workspace.RecommendedPlugin, error) {
	return s.ws.ListRecommendedPlugins(ctx, pluginType)
}

// InvalidateSkillProviders drops the skill provider list and the skill tool
// partition. Any skill-provider mutation changes both and nothing else.
func (s *Service) InvalidateSkillProviders() {
	s.store.Invalidate(cache.KeySkillProviders)
	s.store.Invalidate(cache.ToolPartitionKey(string(workspace.ToolKindSkill)))
}

// InvalidateProviderType drops the tool partition a provider-type string
// resolves to. Unknown types invalidate nothing.
func (s *Service) InvalidateProviderType(providerType string) {
	key, ok := cache.KeyForProviderType(providerType)
	if !ok {
		logging.Debug(subsystem, "no cache key for provider type %q", providerType)
		return
	}
	s.store.Invalidate(key)
}

// InvalidateMCPProviders drops the provider catalog and the MCP tool
// partition, the two collections MCP provider mutations change.
func (s *Service) InvalidateMCPProviders() {
	s.store.Invalidate(cache.KeyToolProviders)
	s.store.Invalidate(cache.ToolPartitionKey(string(workspace.ToolKindMCP)))
}

// InvalidateMCPTools drops one provider's cached tool list.
func (s *Service) InvalidateMCPTools(providerID string) {
	s.store.Invalidate(cache.MCPToolsKey(providerID))
}

// InvalidateToolProviders drops the cross-type provider catalog.
func (s *Service) InvalidateToolProviders() {
	s.store.Invalidate(cache.KeyToolProviders)
}

// InvalidateAppTriggers drops one app's cached trigger list.
func (s *Service) InvalidateAppTriggers(appID string) {
	s.store.Invalidate(cache.AppTriggersKey(appID))
}

// InvalidateAppServer drops one app's cached server record.
func (s *Service) InvalidateAppServer(appID string) {
	s.store.Invalidate(cache.AppServerKey(appID))
}

// InvalidateAll drops every cached collection.
func (s *Service) InvalidateAll() {
	s.store.InvalidateAll()
}

// Subscribe registers for cache change events, for views that re-render on
// invalidation. Zero key subscribes to everything.
func (s *Service) Subscribe(key cache.Key) *cache.Subscription {
	return s.store.Subscribe(key)
}

// Unsubscribe removes a cache subscription.
func (s *Service) Unsubscribe(sub *cache.Subscription) {
	s.store.Unsubscribe(sub)
}

// Mutations. Each passes through to the client unchanged; the cache is not
// consulted and not invalidated here.

func (s *Service) InstallSkill(ctx context.Context, req workspace.InstallSkillRequest) (*workspace.InstallResult, error) {
	return s.ws.InstallSkill(ctx, req)
}

func (s *Service) UploadSkill(ctx context.Context, filename string, content []byte, name string) (*workspace.InstallResult, error) {
	return s.ws.UploadSkill(ctx, filename, content, name)
}

func (s *Service) DeleteSkillProvider(ctx context.Context, id string) error {
	return s.ws.DeleteSkillProvider(ctx, id)
}

func (s *Service) ValidateSkillContent(ctx context.Context, content string) (*workspace.ValidationResult, error) {
	return s.ws.ValidateSkillContent(ctx, content)
}

func (s *Service) GetBuiltinProvider(ctx context.Context, name string) (*workspace.ToolProvider, error) {
	return s.ws.GetBuiltinProvider(ctx, name)
}

func (s *Service) ListBuiltinTools(ctx context.Context, name string) ([]workspace.Tool, error) {
	return s.ws.ListBuiltinTools(ctx, name)
}

func (s *Service) UpdateBuiltinCredentials(ctx context.Context, name string, credentials map[string]string) error {
	return s.ws.UpdateBuiltinCredentials(ctx, name, credentials)
}

func (s *Service) DeleteBuiltinCredentials(ctx context.Context, name string) error {
	return s.ws.DeleteBuiltinCredentials(ctx, name)
}

func (s *Service) CreateMCPProvider(ctx context.Context, payload workspace.MCPProviderPayload) (*workspace.MCPProviderDetail, error) {
	return s.ws.CreateMCPProvider(ctx, payload)
}

func (s *Service) UpdateMCPProvider(ctx context.Context, payload workspace.MCPProviderPayload) (*workspace.MCPProviderDetail, error) {
	return s.ws.UpdateMCPProvider(ctx, payload)
}

func (s *Service) DeleteMCPProvider(ctx context.Context, providerID string) error {
	return s.ws.DeleteMCPProvider(ctx, providerID)
}

func (s *Service) AuthorizeMCPProvider(ctx context.Context, providerID string) (*workspace.MCPAuthResult, error) {
	return s.ws.AuthorizeMCPProvider(ctx, providerID)
}

func (s *Service) ExchangeMCPToken(ctx context.Context, providerID, code string) (*workspace.MCPAuthResult, error) {
	return s.ws.ExchangeMCPToken(ctx, providerID, code)
}

func (s *Service) RefreshMCPTools(ctx context.Context, providerID string) (*workspace.MCPProviderDetail, error) {
	return s.ws.RefreshMCPTools(ctx, providerID)
}

func (s *Service) CreateAppServer(ctx context.Context, appID string, payload workspace.AppServerPayload) (*workspace.AppServer, error) {
	return s.ws.CreateAppServer(ctx, appID, payload)
}

func (s *Service) UpdateAppServer(ctx context.Context, appID string, payload workspace.AppServerPayload) (*workspace.AppServer, error) {
	return s.ws.UpdateAppServer(ctx, appID, payload)
}

func (s *Service) RefreshAppServerCode(ctx context.Context, appID string) (*workspace.AppServer, error) {
	return s.ws.RefreshAppServerCode(ctx, appID)
}

func (s *Service) SetAppTriggerEnabled(ctx context.Context, appID string, payload workspace.TriggerEnablePayload) error {
	return s.ws.SetAppTriggerEnabled(ctx, appID, payload)
}
