package bridge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolctl/internal/config"
)

func TestNewServerDefaults(t *testing.T) {
	srv := newTestServer(&fakeWorkspace{}, config.BridgeConfig{})

	assert.Equal(t, "localhost", srv.config.Host)
	assert.Equal(t, 8092, srv.config.Port)
	assert.Equal(t, "workspace", srv.config.ToolPrefix)
	assert.Equal(t, "http://localhost:8092/sse", srv.Endpoint())
}

func TestNewServerConfigured(t *testing.T) {
	srv := newTestServer(&fakeWorkspace{}, config.BridgeConfig{
		Host:       "127.0.0.1",
		Port:       9100,
		ToolPrefix: "ws",
	})

	assert.Equal(t, "http://127.0.0.1:9100/sse", srv.Endpoint())
}

func TestServerLifecycle(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(&fakeWorkspace{}, config.BridgeConfig{Port: 0})

	err := srv.Start(ctx)
	require.NoError(t, err)

	// A second start must refuse while running.
	err = srv.Start(ctx)
	assert.Error(t, err)

	err = srv.Stop(ctx)
	require.NoError(t, err)

	// After a stop the server can be started again.
	err = srv.Start(ctx)
	require.NoError(t, err)
	require.NoError(t, srv.Stop(ctx))
}

func TestStopBeforeStart(t *testing.T) {
	srv := newTestServer(&fakeWorkspace{}, config.BridgeConfig{})

	err := srv.Stop(context.Background())
	assert.Error(t, err)
}
