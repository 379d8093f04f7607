package workspace

import (
	"context"
	"net/url"
)

const mcpProviderPath = "/workspaces/current/tool-provider/mcp"

// CreateMCPProvider registers a new MCP tool provider.
func (c *Client) CreateMCPProvider(ctx context.Context, payload MCPProviderPayload) (*MCPProviderDetail, error) {
	var detail MCPProviderDetail
	resp, err := c.request(ctx).
		SetBody(payload).
		SetResult(&detail).
		Post(mcpProviderPath)
	if err := finish("create MCP provider", resp, err); err != nil {
		return nil, err
	}
	return &detail, nil
}

// UpdateMCPProvider reconfigures an existing provider; payload.ProviderID
// selects it.
func (c *Client) UpdateMCPProvider(ctx context.Context, payload MCPProviderPayload) (*MCPProviderDetail, error) {
	var detail MCPProviderDetail
	resp, err := c.request(ctx).
		SetBody(payload).
		SetResult(&detail).
		Put(mcpProviderPath)
	if err := finish("update MCP provider", resp, err); err != nil {
		return nil, err
	}
	return &detail, nil
}

// DeleteMCPProvider removes a provider.
func (c *Client) DeleteMCPProvider(ctx context.Context, providerID string) error {
	resp, err := c.request(ctx).
		SetBody(MCPProviderPayload{ProviderID: providerID}).
		Delete(mcpProviderPath)
	return finish("delete MCP provider", resp, err)
}

// AuthorizeMCPProvider begins the provider's OAuth flow. When the server
// cannot finish it on its own the result carries an authorization URL for
// the user to visit.
func (c *Client) AuthorizeMCPProvider(ctx context.Context, providerID string) (*MCPAuthResult, error) {
	var result MCPAuthResult
	resp, err := c.request(ctx).
		SetBody(map[string]string{"provider_id": providerID}).
		SetResult(&result).
		Post(mcpProviderPath + "/auth")
	if err := finish("authorize MCP provider", resp, err); err != nil {
		return nil, err
	}
	return &result, nil
}

// ExchangeMCPToken completes the OAuth flow with the code the authorization
// server handed back.
func (c *Client) ExchangeMCPToken(ctx context.Context, providerID, code string) (*MCPAuthResult, error) {
	var result MCPAuthResult
	resp, err := c.request(ctx).
		SetQueryParams(map[string]string{
			"provider_id": providerID,
			"code":        code,
		}).
		SetResult(&result).
		Get(mcpProviderPath + "/token")
	if err := finish("exchange MCP token", resp, err); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListMCPTools returns the provider detail including its current tool list.
func (c *Client) ListMCPTools(ctx context.Context, providerID string) (*MCPProviderDetail, error) {
	var detail MCPProviderDetail
	resp, err := c.request(ctx).
		SetResult(&detail).
		Get(mcpProviderPath + "/tools/" + url.PathEscape(providerID))
	if err := finish("list MCP tools", resp, err); err != nil {
		return nil, err
	}
	return &detail, nil
}

// RefreshMCPTools asks the server to re-discover the provider's tools.
func (c *Client) RefreshMCPTools(ctx context.Context, providerID string) (*MCPProviderDetail, error) {
	var detail MCPProviderDetail
	resp, err := c.request(ctx).
		SetResult(&detail).
		Get(mcpProviderPath + "/update/" + url.PathEscape(providerID))
	if err := finish("refresh MCP tools", resp, err); err != nil {
		return nil, err
	}
	return &detail, nil
}
