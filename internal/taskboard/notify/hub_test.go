package notify

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

func event(typ domain.EventType, audience ...string) domain.Event {
	return domain.Event{Type: typ, TaskID: "t1", ActorID: audience[0], Audience: audience}
}

func drain(c *Client) []tasksdk.PushMessage {
	var out []tasksdk.PushMessage
	for {
		select {
		case msg := <-c.Messages():
			out = append(out, msg)
		default:
			return out
		}
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	require.Equal(t, ModeScoped, m)

	m, err = ParseMode(" Broadcast ")
	require.NoError(t, err)
	require.Equal(t, ModeBroadcast, m)

	_, err = ParseMode("everyone")
	require.Error(t, err)
}

// Scoped delivery is the default; broadcast reproduces the behaviour of
// emitting every event to every socket.
func TestHubDeliveryModes(t *testing.T) {
	ctx := context.Background()

	t.Run("scoped", func(t *testing.T) {
		hub := NewHub(ModeScoped, 8)
		owner := hub.Register("owner")
		sharee := hub.Register("sharee")
		stranger := hub.Register("stranger")

		require.NoError(t, hub.Publish(ctx, event(domain.EventTaskUpdated, "owner", "sharee")))

		require.Len(t, drain(owner), 1)
		require.Len(t, drain(sharee), 1)
		require.Empty(t, drain(stranger))
	})

	t.Run("broadcast", func(t *testing.T) {
		hub := NewHub(ModeBroadcast, 8)
		owner := hub.Register("owner")
		stranger := hub.Register("stranger")

		require.NoError(t, hub.Publish(ctx, event(domain.EventTaskUpdated, "owner")))

		require.Len(t, drain(owner), 1)
		require.Len(t, drain(stranger), 1)
	})

	t.Run("every connection of a user", func(t *testing.T) {
		hub := NewHub(ModeScoped, 8)
		tab1 := hub.Register("owner")
		tab2 := hub.Register("owner")

		n := hub.Deliver(ctx, []string{"owner", "owner"}, tasksdk.PushMessage{Event: tasksdk.EventTaskDeleted})
		require.Equal(t, 2, n)
		require.Len(t, drain(tab1), 1)
		require.Len(t, drain(tab2), 1)
	})

	t.Run("removed sharee still hears the unshare", func(t *testing.T) {
		hub := NewHub(ModeScoped, 8)
		removed := hub.Register("bob")

		require.NoError(t, hub.Publish(ctx, domain.Event{
			Type:         domain.EventTaskUnshared,
			TaskID:       "t1",
			ActorID:      "alice",
			TargetUserID: "bob",
			Audience:     []string{"alice", "bob"},
		}))

		got := drain(removed)
		require.Len(t, got, 1)
		require.Equal(t, tasksdk.EventTaskUnshared, got[0].Event)
		require.Equal(t, "bob", got[0].Data.UnsharedUserID)
	})
}

func TestHubDropsWhenQueueFull(t *testing.T) {
	ctx := context.Background()
	hub := NewHub(ModeScoped, 2)
	slow := hub.Register("u")

	for range 5 {
		hub.Deliver(ctx, []string{"u"}, tasksdk.PushMessage{Event: tasksdk.EventTaskUpdated})
	}
	require.Len(t, drain(slow), 2)

	// The queue drains and accepts again.
	require.Equal(t, 1, hub.Deliver(ctx, []string{"u"}, tasksdk.PushMessage{Event: tasksdk.EventTaskUpdated}))
}

func TestHubPreservesOrder(t *testing.T) {
	ctx := context.Background()
	hub := NewHub(ModeScoped, 32)
	c := hub.Register("u")

	types := []domain.EventType{
		domain.EventTaskCreated,
		domain.EventTaskShared,
		domain.EventTaskUpdated,
		domain.EventTaskUnshared,
		domain.EventTaskDeleted,
	}
	for _, typ := range types {
		require.NoError(t, hub.Publish(ctx, event(typ, "u")))
	}

	got := drain(c)
	require.Len(t, got, len(types))
	for i, typ := range types {
		require.Equal(t, string(typ), got[i].Event)
	}
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub(ModeScoped, 4)
	a := hub.Register("u")
	b := hub.Register("u")
	require.Equal(t, 2, hub.ClientCount())

	hub.Unregister(a)
	hub.Unregister(a)
	require.Equal(t, 1, hub.ClientCount())

	_, open := <-a.Messages()
	require.False(t, open)
	require.False(t, hub.sendTo(a, tasksdk.PushMessage{Event: tasksdk.EventJoined}))

	hub.Close()
	require.Zero(t, hub.ClientCount())
	_, open = <-b.Messages()
	require.False(t, open)

	// Publishing with nobody connected is fine.
	require.Zero(t, hub.Deliver(context.Background(), []string{"u"}, tasksdk.PushMessage{}))
}
