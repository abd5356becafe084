package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/wire"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestRelayHandleSkipsOwnMessages(t *testing.T) {
	ctx := context.Background()
	hub := NewHub(ModeScoped, 8)
	c := hub.Register("bob")
	relay := NewRedisRelay(nil, hub, "")

	rec := wire.Record(event(domain.EventTaskDeleted, "alice", "bob"))

	own, err := json.Marshal(relayMessage{Origin: relay.InstanceID(), Event: rec})
	require.NoError(t, err)
	require.False(t, relay.handle(ctx, string(own)))
	require.Empty(t, drain(c))

	other, err := json.Marshal(relayMessage{Origin: "sibling", Event: rec})
	require.NoError(t, err)
	require.True(t, relay.handle(ctx, string(other)))

	got := drain(c)
	require.Len(t, got, 1)
	require.Equal(t, tasksdk.EventTaskDeleted, got[0].Event)
	require.Equal(t, "t1", got[0].Data.TaskID)

	require.False(t, relay.handle(ctx, "{not json"))
}

// startRedis runs a throwaway Redis and returns its address.
func startRedis(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping Redis container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForListeningPort("6379/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return fmt.Sprintf("%s:%s", host, port.Port())
}

func TestRelayBetweenInstances(t *testing.T) {
	addr := startRedis(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	newInstance := func() (*Hub, *RedisRelay) {
		client := redis.NewClient(&redis.Options{Addr: addr})
		t.Cleanup(func() { _ = client.Close() })

		hub := NewHub(ModeScoped, 8)
		relay := NewRedisRelay(client, hub, "taskboard:test")
		require.NoError(t, relay.Ping(ctx))
		go func() { _ = relay.Run(ctx) }()
		return hub, relay
	}

	hubA, relayA := newInstance()
	hubB, _ := newInstance()

	onA := hubA.Register("bob")
	onB := hubB.Register("bob")

	e := event(domain.EventTaskUpdated, "alice", "bob")

	// Subscriptions are confirmed asynchronously, so keep publishing until
	// the sibling sees one.
	require.Eventually(t, func() bool {
		if err := relayA.Publish(ctx, e); err != nil {
			return false
		}
		select {
		case msg := <-onB.Messages():
			return msg.Event == tasksdk.EventTaskUpdated
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}, 10*time.Second, 50*time.Millisecond)

	// Instance A never delivers its own relayed events.
	require.Empty(t, drain(onA))
}
