package workspace

import (
	"context"
	"net/url"
)

// ListToolProviders returns the whole provider catalog across every type.
func (c *Client) ListToolProviders(ctx context.Context) ([]ToolProvider, error) {
	var providers []ToolProvider
	resp, err := c.request(ctx).
		SetResult(&providers).
		Get("/workspaces/current/tool-providers")
	if err := finish("list tool providers", resp, err); err != nil {
		return nil, err
	}
	return providers, nil
}

// ListTools returns one catalog partition.
func (c *Client) ListTools(ctx context.Context, kind ToolKind) ([]ToolWithProvider, error) {
	var tools []ToolWithProvider
	resp, err := c.request(ctx).
		SetResult(&tools).
		Get("/workspaces/current/tools/" + url.PathEscape(string(kind)))
	if err := finish("list tools", resp, err); err != nil {
		return nil, err
	}
	return tools, nil
}

const builtinProviderPath = "/workspaces/current/tool-provider/builtin"

// GetBuiltinProvider fetches a builtin provider's info record.
func (c *Client) GetBuiltinProvider(ctx context.Context, name string) (*ToolProvider, error) {
	var provider ToolProvider
	resp, err := c.request(ctx).
		SetResult(&provider).
		Get(builtinProviderPath + "/" + url.PathEscape(name) + "/info")
	if err := finish("get builtin provider", resp, err); err != nil {
		return nil, err
	}
	return &provider, nil
}

// ListBuiltinTools lists the tools a builtin provider exposes.
func (c *Client) ListBuiltinTools(ctx context.Context, name string) ([]Tool, error) {
	var tools []Tool
	resp, err := c.request(ctx).
		SetResult(&tools).
		Get(builtinProviderPath + "/" + url.PathEscape(name) + "/tools")
	if err := finish("list builtin tools", resp, err); err != nil {
		return nil, err
	}
	return tools, nil
}

// UpdateBuiltinCredentials stores credentials for a builtin provider.
func (c *Client) UpdateBuiltinCredentials(ctx context.Context, name string, credentials map[string]string) error {
	resp, err := c.request(ctx).
		SetBody(map[string]any{"credentials": credentials}).
		Post(builtinProviderPath + "/" + url.PathEscape(name) + "/credentials")
	return finish("update builtin credentials", resp, err)
}

// DeleteBuiltinCredentials removes a builtin provider's stored credentials.
func (c *Client) DeleteBuiltinCredentials(ctx context.Context, name string) error {
	resp, err := c.request(ctx).
		Post(builtinProviderPath + "/" + url.PathEscape(name) + "/credentials/delete")
	return finish("delete builtin credentials", resp, err)
}

// ListRecommendedPlugins lists marketplace suggestions for a provider type.
func (c *Client) ListRecommendedPlugins(ctx context.Context, pluginType string) ([]RecommendedPlugin, error) {
	var envelope recommendedPluginsEnvelope
	resp, err := c.request(ctx).
		SetQueryParam("type", pluginType).
		SetResult(&envelope).
		Get("/rag/pipelines/recommended-plugins")
	if err := finish("list recommended plugins", resp, err); err != nil {
		return nil, err
	}
	return envelope.Plugins, nil
}
