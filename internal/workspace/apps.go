package workspace

import (
	"context"
	"net/url"
)

func appPath(appID, suffix string) string {
	return "/apps/" + url.PathEscape(appID) + suffix
}

// GetAppServer fetches the app's MCP server record. Apps without a server
// yet return ErrNotFound.
func (c *Client) GetAppServer(ctx context.Context, appID string) (*AppServer, error) {
	var server AppServer
	resp, err := c.request(ctx).
		SetResult(&server).
		Get(appPath(appID, "/server"))
	if err := finish("get app server", resp, err); err != nil {
		return nil, err
	}
	return &server, nil
}

// CreateAppServer provisions an MCP server for the app.
func (c *Client) CreateAppServer(ctx context.Context, appID string, payload AppServerPayload) (*AppServer, error) {
	var server AppServer
	resp, err := c.request(ctx).
		SetBody(payload).
		SetResult(&server).
		Post(appPath(appID, "/server"))
	if err := finish("create app server", resp, err); err != nil {
		return nil, err
	}
	return &server, nil
}

// UpdateAppServer reconfigures the app's MCP server.
func (c *Client) UpdateAppServer(ctx context.Context, appID string, payload AppServerPayload) (*AppServer, error) {
	var server AppServer
	resp, err := c.request(ctx).
		SetBody(payload).
		SetResult(&server).
		Put(appPath(appID, "/server"))
	if err := finish("update app server", resp, err); err != nil {
		return nil, err
	}
	return &server, nil
}

// RefreshAppServerCode rotates the server's access code and returns the
// updated record.
func (c *Client) RefreshAppServerCode(ctx context.Context, appID string) (*AppServer, error) {
	var server AppServer
	resp, err := c.request(ctx).
		SetResult(&server).
		Get(appPath(appID, "/server/refresh"))
	if err := finish("refresh app server code", resp, err); err != nil {
		return nil, err
	}
	return &server, nil
}

// ListAppTriggers lists the app's automation triggers.
func (c *Client) ListAppTriggers(ctx context.Context, appID string) ([]AppTrigger, error) {
	var triggers []AppTrigger
	resp, err := c.request(ctx).
		SetResult(&triggers).
		Get(appPath(appID, "/triggers"))
	if err := finish("list app triggers", resp, err); err != nil {
		return nil, err
	}
	return triggers, nil
}

// SetAppTriggerEnabled toggles one trigger on or off.
func (c *Client) SetAppTriggerEnabled(ctx context.Context, appID string, payload TriggerEnablePayload) error {
	resp, err := c.request(ctx).
		SetBody(payload).
		Post(appPath(appID, "/trigger-enable"))
	return finish("set app trigger enabled", resp, err)
}
