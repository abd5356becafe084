//go:build e2e

package taskboard_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

// TestSharedTaskScenario runs the two-user flow against the container:
// Alice creates and shares, Bob edits, push events reach both.
func TestSharedTaskScenario(t *testing.T) {
	baseURL, cleanup := setupContainer(t, relaxedLimits)
	defer cleanup()

	client := tasksdk.NewSDKClient(baseURL)
	ctx := t.Context()

	alice := register(t, client, "Alice", "alice@example.com")
	bob := register(t, client, "Bob", "bob@example.com")

	aliceSub, err := alice.Subscribe(ctx)
	require.NoError(t, err)
	defer aliceSub.Close()

	bobSub, err := bob.Subscribe(ctx)
	require.NoError(t, err)
	defer bobSub.Close()

	task, err := alice.CreateTask(ctx, tasksdk.CreateTaskRequest{Title: "Quarterly report"})
	require.NoError(t, err)
	require.Equal(t, tasksdk.EventTaskCreated, nextEvent(t, aliceSub).Event)

	_, err = alice.ShareTask(ctx, task.ID, tasksdk.ShareRequest{Email: "bob@example.com", Permission: tasksdk.PermissionEdit})
	require.NoError(t, err)
	require.Equal(t, tasksdk.EventTaskShared, nextEvent(t, aliceSub).Event)
	require.Equal(t, tasksdk.EventTaskShared, nextEvent(t, bobSub).Event)

	_, err = bob.UpdateTask(ctx, task.ID, tasksdk.UpdateTaskRequest{Status: tasksdk.Set(tasksdk.StatusInProgress)})
	require.NoError(t, err)

	msg := nextEvent(t, aliceSub)
	require.Equal(t, tasksdk.EventTaskUpdated, msg.Event)
	require.Equal(t, bob.User().ID, msg.Data.UserID)
	require.Equal(t, tasksdk.StatusInProgress, msg.Data.Task.Status)
	require.Equal(t, tasksdk.EventTaskUpdated, nextEvent(t, bobSub).Event)

	stats, err := bob.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, tasksdk.Stats{Total: 1, InProgress: 1}, *stats)

	err = bob.DeleteTask(ctx, task.ID)
	require.True(t, tasksdk.IsStatus(err, http.StatusForbidden), "sharee delete: %v", err)

	require.NoError(t, alice.DeleteTask(ctx, task.ID))

	msg = nextEvent(t, bobSub)
	require.Equal(t, tasksdk.EventTaskDeleted, msg.Event)
	require.Equal(t, task.ID, msg.Data.TaskID)

	_, err = alice.GetTask(ctx, task.ID)
	require.True(t, tasksdk.IsStatus(err, http.StatusNotFound), "get after delete: %v", err)
}

func TestInvalidToken(t *testing.T) {
	baseURL, cleanup := setupContainer(t, relaxedLimits)
	defer cleanup()

	client := tasksdk.NewSDKClient(baseURL)

	_, err := client.NewSession("invalid-token-12345").ListTasks(t.Context(), tasksdk.ListTasksOptions{})
	require.True(t, tasksdk.IsStatus(err, http.StatusUnauthorized), "got %v", err)
}
