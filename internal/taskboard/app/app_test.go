package app

import (
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/notify"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	dir := t.TempDir()
	return Config{
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "json",
		ShutdownGracePeriod: time.Second,
		StoreDriver:         DriverSQLite,
		DatabaseFile:        filepath.Join(dir, "taskboard.db"),
		PepperFile:          filepath.Join(dir, "pepper"),
		JWTIssuer:           "taskboard",
		JWTExpiresIn:        time.Hour,
		FrontendURL:         "http://localhost:3000",
		NotifyDelivery:      notify.ModeScoped,
		WSIdleTimeout:       notify.DefaultIdleTimeout,
	}
}

func TestApplicationServes(t *testing.T) {
	app, err := New(testConfig(t))
	require.NoError(t, err)

	srv := httptest.NewServer(app.router)
	t.Cleanup(func() {
		srv.Close()
		require.NoError(t, app.Shutdown())
	})

	client := tasksdk.NewSDKClient(srv.URL)
	ctx := t.Context()

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)

	sess, err := client.Register(ctx, tasksdk.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "Secret123",
	})
	require.NoError(t, err)

	task, err := sess.CreateTask(ctx, tasksdk.CreateTaskRequest{Title: "First"})
	require.NoError(t, err)
	require.Equal(t, sess.User().ID, task.Owner.ID)
}

func TestNewFailsWhenRedisUnreachable(t *testing.T) {
	// Grab a free port and release it so nothing is listening there.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	cfg := testConfig(t)
	cfg.RedisAddr = addr

	app, err := New(cfg)
	require.Error(t, err)
	require.Nil(t, app)
	require.Contains(t, err.Error(), "failed to connect to redis")
}

func TestOriginChecker(t *testing.T) {
	req := func(origin string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/ws", nil)
		if origin != "" {
			r.Header.Set("Origin", origin)
		}
		return r
	}

	open := originChecker([]string{"*"})
	require.True(t, open(req("https://evil.example")))

	check := originChecker([]string{"https://app.example"})
	require.True(t, check(req("https://app.example")))
	require.True(t, check(req("")))
	require.False(t, check(req("https://evil.example")))
}
