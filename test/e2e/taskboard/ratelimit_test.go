//go:build e2e

package taskboard_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLogin verifies the strict limit (5 req/min per IP and email)
// on /api/auth/login.
func TestRateLimitLogin(t *testing.T) {
	baseURL, cleanup := setupContainer(t, nil)
	defer cleanup()

	client := tasksdk.NewSDKClient(baseURL)
	req := tasksdk.LoginRequest{Email: "nobody@example.com", Password: "Wrong123"}

	for i := range 5 {
		_, err := client.Login(t.Context(), req)
		require.True(t, tasksdk.IsStatus(err, http.StatusUnauthorized), "request %d: %v", i+1, err)
	}

	_, err := client.Login(t.Context(), req)
	require.True(t, tasksdk.IsStatus(err, http.StatusTooManyRequests), "6th request: %v", err)

	// A different email has its own bucket.
	_, err = client.Login(t.Context(), tasksdk.LoginRequest{Email: "other@example.com", Password: "Wrong123"})
	require.True(t, tasksdk.IsStatus(err, http.StatusUnauthorized), "other email: %v", err)
}
