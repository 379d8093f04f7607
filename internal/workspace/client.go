package workspace

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"toolctl/internal/config"
	"toolctl/pkg/logging"
)

const (
	subsystem = "Workspace"
	userAgent = "toolctl"
)

// Client talks to the workspace console API. One instance is shared by the
// TUI, the CLI commands and the bridge; it is safe for concurrent use.
type Client struct {
	http *resty.Client
}

// NewClient builds a client from the workspace section of the config.
func NewClient(cfg config.WorkspaceConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(cfg.Timeout()).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(2 * time.Second).
		SetHeader("User-Agent", userAgent).
		SetError(&errorEnvelope{})

	if cfg.Token != "" {
		httpClient.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.Token))
	}

	// Every request carries a unique id so failures can be correlated with
	// server-side logs.
	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	// Retry covers idempotent reads only. A mutation reaches the server at
	// most once per user action.
	httpClient.AddRetryCondition(func(r *resty.Response, err error) bool {
		if r == nil || r.Request == nil || r.Request.Method != http.MethodGet {
			return false
		}
		return err != nil || r.StatusCode() >= http.StatusInternalServerError
	})

	return &Client{http: httpClient}
}

// request starts a request bound to ctx.
func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx)
}

// finish converts a completed call into the client's error contract:
// transport errors wrap the operation name, non-2xx responses become an
// *APIError carrying the server's message.
func finish(op string, resp *resty.Response, err error) error {
	if err != nil {
		logging.Error(subsystem, err, "%s failed", op)
		return fmt.Errorf("%s: %w", op, err)
	}
	if resp.IsSuccess() {
		return nil
	}
	msg := ""
	if env, ok := resp.Error().(*errorEnvelope); ok {
		msg = env.text()
	}
	logging.Debug(subsystem, "%s returned HTTP %d: %s", op, resp.StatusCode(), msg)
	return &APIError{Status: resp.StatusCode(), Message: msg}
}
