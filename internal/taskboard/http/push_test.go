package http

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func nextEvent(t *testing.T, sub *tasksdk.Subscription) tasksdk.PushMessage {
	t.Helper()

	ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)
	defer cancel()

	msg, err := sub.Next(ctx)
	require.NoError(t, err)
	return msg
}

func TestPushFollowsTaskChanges(t *testing.T) {
	srv := newTestServer(t, nil)
	ctx := t.Context()

	alice := srv.register(t, "Alice", "alice@example.com")
	bob := srv.register(t, "Bob", "bob@example.com")

	aliceSub, err := alice.Subscribe(ctx)
	require.NoError(t, err)
	defer aliceSub.Close()

	bobSub, err := bob.Subscribe(ctx)
	require.NoError(t, err)
	defer bobSub.Close()

	require.Eventually(t, func() bool { return srv.hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	task, err := alice.CreateTask(ctx, tasksdk.CreateTaskRequest{Title: "Groceries"})
	require.NoError(t, err)

	msg := nextEvent(t, aliceSub)
	require.Equal(t, tasksdk.EventTaskCreated, msg.Event)
	require.Equal(t, task.ID, msg.Data.Task.ID)
	require.Equal(t, alice.User().ID, msg.Data.UserID)

	_, err = alice.ShareTask(ctx, task.ID, tasksdk.ShareRequest{Email: "bob@example.com"})
	require.NoError(t, err)

	// Bob was not in the audience of taskCreated, so taskShared is his first frame.
	msg = nextEvent(t, bobSub)
	require.Equal(t, tasksdk.EventTaskShared, msg.Event)
	require.Equal(t, bob.User().ID, msg.Data.SharedWithUserID)

	msg = nextEvent(t, aliceSub)
	require.Equal(t, tasksdk.EventTaskShared, msg.Event)

	_, err = alice.UnshareTask(ctx, task.ID, bob.User().ID)
	require.NoError(t, err)

	msg = nextEvent(t, bobSub)
	require.Equal(t, tasksdk.EventTaskUnshared, msg.Event)
	require.Equal(t, task.ID, msg.Data.TaskID)
	require.Equal(t, bob.User().ID, msg.Data.UnsharedUserID)
}

func TestPushRejectsForeignRoom(t *testing.T) {
	srv := newTestServer(t, nil)
	ctx := t.Context()

	alice := srv.register(t, "Alice", "alice@example.com")
	bob := srv.register(t, "Bob", "bob@example.com")

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(tasksdk.JoinMessage{
		Type:   tasksdk.MessageJoin,
		UserID: alice.User().ID,
		Token:  bob.Token(),
	}))

	var reply tasksdk.PushMessage
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&reply))
	require.Equal(t, tasksdk.EventError, reply.Event)
	require.Equal(t, "Cannot join another user's room", reply.Message)
	require.Zero(t, srv.hub.ClientCount())
}

func TestPushRejectsBadToken(t *testing.T) {
	srv := newTestServer(t, nil)

	sub, err := srv.client.NewSession("garbage").Subscribe(t.Context())
	require.ErrorIs(t, err, tasksdk.ErrJoinRejected)
	require.Nil(t, sub)
}
