package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/wire"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultRelayChannel is the Redis pub/sub channel shared by all instances.
const DefaultRelayChannel = "taskboard:events"

// relayMessage is what goes over Redis. Origin lets an instance skip its own
// events, which it already delivered locally.
type relayMessage struct {
	Origin string           `json:"origin"`
	Event  wire.EventRecord `json:"event"`
}

// RedisRelay shares events between instances through Redis pub/sub so a
// client connected to any instance sees every event meant for it.
type RedisRelay struct {
	client     redis.UniversalClient
	hub        *Hub
	channel    string
	instanceID string
}

func NewRedisRelay(client redis.UniversalClient, hub *Hub, channel string) *RedisRelay {
	if channel == "" {
		channel = DefaultRelayChannel
	}
	return &RedisRelay{
		client:     client,
		hub:        hub,
		channel:    channel,
		instanceID: uuid.NewString(),
	}
}

// InstanceID identifies this process on the relay channel.
func (r *RedisRelay) InstanceID() string { return r.instanceID }

// Publish sends e to the other instances.
func (r *RedisRelay) Publish(ctx context.Context, e domain.Event) error {
	body, err := json.Marshal(relayMessage{Origin: r.instanceID, Event: wire.Record(e)})
	if err != nil {
		return fmt.Errorf("encode relay message: %w", err)
	}
	if err := r.client.Publish(ctx, r.channel, body).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Run subscribes to the relay channel and hands events from other instances
// to the local hub until ctx is cancelled.
func (r *RedisRelay) Run(ctx context.Context) error {
	log := slogx.FromContext(ctx).With(slog.String("component", "relay"))

	sub := r.client.Subscribe(ctx, r.channel)
	defer func() { _ = sub.Close() }()

	// Wait for the subscription to be confirmed before reporting ready.
	if _, err := sub.Receive(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("redis subscribe: %w", err)
	}
	log.Info("relay subscribed", slog.String("channel", r.channel), slog.String("instance_id", r.instanceID))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			r.handle(ctx, msg.Payload)
		}
	}
}

// handle delivers one relayed payload. Returns false when it was skipped.
func (r *RedisRelay) handle(ctx context.Context, payload string) bool {
	var msg relayMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		slogx.FromContext(ctx).Warn("relay message ignored", slog.Any("error", err))
		return false
	}
	if msg.Origin == r.instanceID {
		return false
	}

	r.hub.Deliver(ctx, msg.Event.Audience, msg.Event.Push())
	return true
}

// Ping checks the Redis connection.
func (r *RedisRelay) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
