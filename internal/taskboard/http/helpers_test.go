package http

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/notify"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store/drivers/sqlite"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

const testPassword = "Secret123"

type testServer struct {
	*httptest.Server
	client *tasksdk.SDKClient
	router *Router
	hub    *notify.Hub
}

// newTestServer wires a router over an in-memory store. configure may set
// optional router fields before routes are applied.
func newTestServer(t *testing.T, configure func(*Router)) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations(context.Background()))

	hs, err := jwtx.NewHS256([]byte("0123456789abcdef0123456789abcdef"), "taskboard-test")
	require.NoError(t, err)

	hub := notify.NewHub(notify.ModeScoped, notify.DefaultQueueSize)
	t.Cleanup(hub.Close)

	auth := &service.AuthService{Store: st, Signer: hs, Verifier: hs, Issuer: "taskboard-test"}

	r := NewRouter(hs, "test", "test", st, slogx.Discard(), nil)
	r.AuthService = auth
	r.TaskService = &service.TaskService{Store: st, Notifier: hub}
	r.Push = notify.NewWSHandler(hub, auth, notify.DefaultIdleTimeout, nil)
	if configure != nil {
		configure(r)
	}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, client: tasksdk.NewSDKClient(srv.URL), router: r, hub: hub}
}

func (s *testServer) register(t *testing.T, name, email string) *tasksdk.Session {
	t.Helper()

	sess, err := s.client.Register(t.Context(), tasksdk.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: testPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token())
	return sess
}

// requireAPIError asserts err is an API error with the given status.
func requireAPIError(t *testing.T, err error, code int) *tasksdk.APIError {
	t.Helper()

	require.Error(t, err)
	require.True(t, tasksdk.IsStatus(err, code), "want HTTP %d, got %v", code, err)

	var apiErr *tasksdk.APIError
	require.ErrorAs(t, err, &apiErr)
	return apiErr
}
