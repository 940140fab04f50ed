// Package events announces listing changes so downstream consumers (search
// indexing) can refresh their copy of a property.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/streadway/amqp"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

type ListingEvent struct {
	Action     string `json:"action"`
	PropertyID string `json:"property_id"`
}

type Publisher interface {
	Publish(ctx context.Context, ev ListingEvent) error
}

// ======================================================
// RabbitMQ
// ======================================================

type AMQPPublisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

func NewAMQPPublisher(url, queue string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	slog.Info("listing events publisher ready", "queue", queue)

	return &AMQPPublisher{conn: conn, channel: ch, queue: queue}, nil
}

func (p *AMQPPublisher) Publish(_ context.Context, ev ListingEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return p.channel.Publish("", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}

// ======================================================
// Noop
// ======================================================

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ListingEvent) error { return nil }

// ======================================================
// Recording (tests)
// ======================================================

type RecordingPublisher struct {
	mu     sync.Mutex
	Events []ListingEvent
}

func (r *RecordingPublisher) Publish(_ context.Context, ev ListingEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, ev)
	return nil
}

func (r *RecordingPublisher) Snapshot() []ListingEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ListingEvent(nil), r.Events...)
}

var (
	_ Publisher = (*AMQPPublisher)(nil)
	_ Publisher = NoopPublisher{}
	_ Publisher = (*RecordingPublisher)(nil)
)
