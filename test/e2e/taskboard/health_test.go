//go:build e2e

package taskboard_test

import (
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupContainer(t, relaxedLimits)
	defer cleanup()

	client := tasksdk.NewSDKClient(baseURL)

	live, err := client.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, "ok", ready.Checks.Database)

	health, err := client.GetServerHealth(t.Context())
	require.NoError(t, err)
	require.Equal(t, "test", health.Environment)
}
