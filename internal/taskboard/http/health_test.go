package http

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t, nil)
	ctx := t.Context()

	live, err := srv.client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := srv.client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.NotNil(t, ready.Checks)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Empty(t, ready.Checks.Relay)

	health, err := srv.client.GetServerHealth(ctx)
	require.NoError(t, err)
	require.Equal(t, "test", health.Environment)
	require.False(t, health.Timestamp.IsZero())
}

func TestReadyzReportsRelay(t *testing.T) {
	srv := newTestServer(t, func(r *Router) {
		r.Relay = pingFunc(func(context.Context) error { return errors.New("connection refused") })
	})

	_, err := srv.client.GetReadiness(t.Context())
	requireAPIError(t, err, http.StatusServiceUnavailable)
}
