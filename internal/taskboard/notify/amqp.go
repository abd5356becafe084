package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/wire"
	amqp "github.com/rabbitmq/amqp091-go"
)

// EventsQueue is the durable queue events are exported to.
const EventsQueue = "taskboard.events"

// amqpPublisher is the part of *amqp.Channel the exporter uses.
type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPExporter publishes every event as a persistent JSON message for
// consumers outside this service.
type AMQPExporter struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	pub   amqpPublisher
	queue string

	mu sync.Mutex // amqp channels are not safe for concurrent publishing
}

// DialAMQP connects to url and declares queue as durable. An empty queue
// means EventsQueue.
func DialAMQP(url, queue string) (*AMQPExporter, error) {
	if queue == "" {
		queue = EventsQueue
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("amqp queue declare: %w", err)
	}

	return &AMQPExporter{conn: conn, ch: ch, pub: ch, queue: queue}, nil
}

func (x *AMQPExporter) Publish(ctx context.Context, e domain.Event) error {
	body, err := json.Marshal(wire.Record(e))
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         string(e.Type),
		Body:         body,
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	// Default exchange, routed straight to the queue by name.
	if err := x.pub.PublishWithContext(ctx, "", x.queue, false, false, msg); err != nil {
		return fmt.Errorf("amqp publish: %w", err)
	}
	return nil
}

// Close closes the channel and the connection.
func (x *AMQPExporter) Close() error {
	if x.ch != nil {
		_ = x.ch.Close()
	}
	if x.conn != nil {
		return x.conn.Close()
	}
	return nil
}
