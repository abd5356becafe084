package http

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	srv := newTestServer(t, nil)
	ctx := t.Context()

	alice := srv.register(t, "Alice", "Alice@Example.com")
	require.Equal(t, "alice@example.com", alice.User().Email)
	require.Equal(t, tasksdk.ProviderLocal, alice.User().Provider)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := srv.client.Register(ctx, tasksdk.RegisterRequest{
			Name: "Other", Email: "alice@example.com", Password: testPassword,
		})
		requireAPIError(t, err, http.StatusConflict)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := srv.client.Register(ctx, tasksdk.RegisterRequest{
			Name: "A", Email: "nope", Password: "short",
		})
		apiErr := requireAPIError(t, err, http.StatusBadRequest)
		require.Equal(t, "Validation failed", apiErr.Message)
		require.True(t, apiErr.HasField("name"))
		require.True(t, apiErr.HasField("email"))
		require.True(t, apiErr.HasField("password"))
	})

	t.Run("login", func(t *testing.T) {
		sess, err := srv.client.Login(ctx, tasksdk.LoginRequest{Email: "alice@example.com", Password: testPassword})
		require.NoError(t, err)
		require.Equal(t, alice.User().ID, sess.User().ID)
		require.NotNil(t, sess.User().LastLogin)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := srv.client.Login(ctx, tasksdk.LoginRequest{Email: "alice@example.com", Password: "Wrong123"})
		apiErr := requireAPIError(t, err, http.StatusUnauthorized)
		require.Equal(t, "Invalid email or password", apiErr.Message)
	})

	t.Run("logout", func(t *testing.T) {
		require.NoError(t, srv.client.Logout(ctx))
	})
}

func TestProfile(t *testing.T) {
	srv := newTestServer(t, nil)
	ctx := t.Context()

	alice := srv.register(t, "Alice", "alice@example.com")

	user, err := alice.Verify(ctx)
	require.NoError(t, err)
	require.Equal(t, alice.User().ID, user.ID)

	name := "Alice Liddell"
	user, err = alice.UpdateProfile(ctx, tasksdk.ProfileUpdateRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, name, user.Name)

	user, err = alice.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, name, user.Name)

	short := "A"
	_, err = alice.UpdateProfile(ctx, tasksdk.ProfileUpdateRequest{Name: &short})
	apiErr := requireAPIError(t, err, http.StatusBadRequest)
	require.True(t, apiErr.HasField("name"))
}

func TestBearerRequired(t *testing.T) {
	srv := newTestServer(t, nil)
	ctx := t.Context()

	_, err := srv.client.NewSession("").ListTasks(ctx, tasksdk.ListTasksOptions{})
	apiErr := requireAPIError(t, err, http.StatusUnauthorized)
	require.Equal(t, "Access denied. No token provided.", apiErr.Message)

	_, err = srv.client.NewSession("not-a-jwt").Profile(ctx)
	apiErr = requireAPIError(t, err, http.StatusUnauthorized)
	require.Equal(t, "Invalid token.", apiErr.Message)
}

func TestMalformedBody(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Post(srv.URL+"/api/auth/login", "application/json", http.NoBody)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
